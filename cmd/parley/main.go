// Parley orchestration server — serves the session HTTP API, owns the
// per-session countdown timers, streams events over WebSocket, and supervises
// LLM agent controllers for running sessions.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/behavelab/parley/ent/session"
	"github.com/behavelab/parley/pkg/api"
	"github.com/behavelab/parley/pkg/cleanup"
	"github.com/behavelab/parley/pkg/config"
	"github.com/behavelab/parley/pkg/database"
	"github.com/behavelab/parley/pkg/engine"
	"github.com/behavelab/parley/pkg/events"
	"github.com/behavelab/parley/pkg/llm"
	"github.com/behavelab/parley/pkg/manager"
	"github.com/behavelab/parley/pkg/models"
	"github.com/behavelab/parley/pkg/store"
	"github.com/behavelab/parley/pkg/timer"
	"github.com/behavelab/parley/pkg/tools"
	"github.com/behavelab/parley/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// Parse command-line flags
	configPath := flag.String("config",
		getEnv("PARLEY_CONFIG", ""),
		"Path to parley.yaml (empty runs on built-in defaults)")
	flag.Parse()

	// Load .env before anything reads the environment
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded, continuing with existing environment", "error", err)
	} else {
		slog.Info("Loaded environment from .env")
	}

	slog.Info("Starting parley",
		"version", version.Full(),
		"config_file", *configPath)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(*configPath)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database (applies embedded migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Store and streaming infrastructure
	st := store.New(dbClient)
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	connManager := events.NewConnectionManager(events.NewEventStoreAdapter(st.Events), 10*time.Second)

	// Start NotifyListener (dedicated pgx connection for LISTEN)
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)

	// Wire listener ↔ manager bidirectional link
	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 4. Timers, engines, tool dispatcher
	timers := timer.NewRegistry(st, eventPublisher)
	engines := engine.NewFactory(st, eventPublisher, timers)
	dispatcher := tools.NewDispatcher(engines)

	// 5. LLM client and agent manager. Without a resolvable provider the
	// server still runs humans-only sessions; agent endpoints answer 503.
	var mgr *manager.Manager
	providerName := cfg.LLM.DefaultProvider
	if providerName == "" {
		providerName = string(llm.DetectProvider())
	}
	if providerName == "" {
		slog.Warn("No LLM provider configured or detectable from environment, agent manager disabled")
	} else {
		provider, err := cfg.Provider(providerName)
		if err != nil {
			slog.Error("Failed to resolve LLM provider", "provider", providerName, "error", err)
			os.Exit(1)
		}
		mode := llm.ModeFunction
		if cfg.LLM.PlanJSON {
			mode = llm.ModeJSON
		}
		llmClient, err := llm.New(llm.Config{
			Provider:    llm.Provider(providerName),
			Model:       provider.Model,
			APIKey:      provider.ResolveKey(),
			BaseURL:     provider.BaseURL,
			Temperature: provider.Temperature,
			MaxTokens:   provider.MaxTokens,
			Mode:        mode,
		})
		if err != nil {
			slog.Error("Failed to initialize LLM client", "provider", providerName, "error", err)
			os.Exit(1)
		}

		mgr = manager.New(manager.Config{
			Engines:    engines,
			Dispatcher: dispatcher,
			Timers:     timers,
			LLM:        llmClient,
			LogDir:     cfg.Agents.LogDir,
			PlanJSON:   cfg.LLM.PlanJSON,
			MaxMemory:  cfg.Agents.MaxMemory,
		})
		timers.SetCompletionHook(mgr.HandleSessionCompleted)
		slog.Info("Agent manager initialized", "provider", providerName, "model", llmClient.Model())
	}

	// 6. Resume sessions that were live when the previous process stopped
	resumeSessions(ctx, st, timers, mgr)

	// 7. Event retention sweeper
	cleanupService := cleanup.NewService(cfg.Retention, st.Events)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 8. Create HTTP server
	gin.SetMode(gin.ReleaseMode)
	httpServer := api.New(api.Deps{
		DB:       dbClient,
		Engines:  engines,
		Timers:   timers,
		Agents:   mgr,
		Conns:    connManager,
		Listener: notifyListener,
	})

	// 9. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		addr := cfg.Server.Addr()
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Parley started successfully", "running_timers", timers.Count())

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: agents first (their final cycles still write
	// through the store), then timers, then the HTTP listener.
	if mgr != nil {
		stopCtx, stopCancel := context.WithTimeout(ctx, 30*time.Second)
		done := make(chan struct{})
		go func() {
			mgr.StopAll(stopCtx)
			close(done)
		}()
		select {
		case <-done:
			slog.Info("Agent manager stopped gracefully")
		case <-stopCtx.Done():
			slog.Warn("Agent shutdown timeout exceeded")
		}
		stopCancel()
	}

	timers.StopAll()

	// Stop HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// resumeSessions restarts timers and agents for sessions left active or
// paused by the previous process. Timer starts derive the remaining time from
// started_at, so a restarted countdown resumes mid-round instead of from the
// top; paused sessions come back with a frozen countdown.
func resumeSessions(ctx context.Context, st *store.Store, timers *timer.Registry, mgr *manager.Manager) {
	for _, status := range []session.Status{session.StatusSessionActive, session.StatusSessionPaused} {
		offset := 0
		for {
			page, err := st.Sessions.List(ctx, models.SessionFilters{
				Status: status.String(),
				Limit:  100,
				Offset: offset,
			})
			if err != nil {
				slog.Error("Listing sessions to resume failed", "status", status, "error", err)
				break
			}

			for _, sess := range page.Sessions {
				if err := timers.Start(ctx, sess.SessionCode); err != nil {
					slog.Warn("Resuming session timer failed",
						"session_code", sess.SessionCode, "error", err)
					continue
				}
				slog.Info("Resumed session timer",
					"session_code", sess.SessionCode, "status", status)

				if mgr == nil {
					continue
				}
				if n, err := mgr.StartSessionAgents(ctx, sess.SessionCode); err != nil {
					slog.Warn("Restarting session agents failed",
						"session_code", sess.SessionCode, "error", err)
				} else if n > 0 {
					slog.Info("Restarted session agents",
						"session_code", sess.SessionCode, "agent_count", n)
				}
			}

			offset += len(page.Sessions)
			if len(page.Sessions) == 0 || offset >= page.TotalCount {
				break
			}
		}
	}
}
