// run-agent attaches one agent controller to a live session for manual
// debugging: same store, engines, and tool dispatcher as the server, no HTTP
// in between. Without --llm it dry-runs perceive-only, printing the status
// update the model would have seen each tick.
//
// Exit codes: 0 normal termination, 1 configuration error, 2 transport error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/behavelab/parley/ent/session"
	"github.com/behavelab/parley/pkg/agent"
	"github.com/behavelab/parley/pkg/agent/prompt"
	"github.com/behavelab/parley/pkg/agentlog"
	"github.com/behavelab/parley/pkg/config"
	"github.com/behavelab/parley/pkg/database"
	"github.com/behavelab/parley/pkg/engine"
	"github.com/behavelab/parley/pkg/events"
	"github.com/behavelab/parley/pkg/fault"
	"github.com/behavelab/parley/pkg/llm"
	"github.com/behavelab/parley/pkg/models"
	"github.com/behavelab/parley/pkg/store"
	"github.com/behavelab/parley/pkg/tools"
)

const (
	exitOK        = 0
	exitConfig    = 1
	exitTransport = 2
)

// tickTimeout bounds one cycle, LLM call included.
const tickTimeout = 2 * time.Minute

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	os.Exit(run())
}

func run() int {
	var (
		participantCode = flag.String("participant", "", "participant code of the agent (required)")
		sessionCode     = flag.String("session", "", "session code to attach to (required)")
		experimentType  = flag.String("experiment-type", "", "expected experiment kind, verified against the session (required)")
		model           = flag.String("model", "", "model name override")
		interval        = flag.Int("interval", 0, "seconds between ticks (0 derives from the session config)")
		minutes         = flag.Int("minutes", 0, "stop after this many minutes (0 runs until the session completes)")
		showMemory      = flag.Bool("memory", false, "print the memory transcript after every tick")
		maxMemory       = flag.Int("max-memory", 0, "memory ring capacity (0 uses the default)")
		useLLM          = flag.Bool("llm", false, "make real LLM calls; off perceives without deciding")
		configPath      = flag.String("config", getEnv("PARLEY_CONFIG", ""), "path to parley.yaml (empty runs on built-in defaults)")
	)
	flag.Parse()

	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env")
	}

	if *participantCode == "" || *sessionCode == "" || *experimentType == "" {
		fmt.Fprintln(os.Stderr, "run-agent: --participant, --session, and --experiment-type are required")
		flag.Usage()
		return exitConfig
	}
	kind := models.ExperimentType(*experimentType)
	if !kind.Valid() {
		fmt.Fprintf(os.Stderr, "run-agent: unknown experiment type %q\n", *experimentType)
		return exitConfig
	}

	cfg, err := config.Initialize(*configPath)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		return exitConfig
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if *minutes > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(*minutes)*time.Minute)
		defer cancel()
	}

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		return exitConfig
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		return exitTransport
	}
	defer func() { _ = dbClient.Close() }()

	st := store.New(dbClient)
	sess, err := st.Sessions.GetByCode(ctx, *sessionCode)
	if err != nil {
		slog.Error("Loading session failed", "session_code", *sessionCode, "error", err)
		return exitFor(err)
	}
	if sess.ExperimentType != string(kind) {
		fmt.Fprintf(os.Stderr, "run-agent: session %s runs %s, not %s\n",
			*sessionCode, sess.ExperimentType, kind)
		return exitConfig
	}
	if _, err := st.Participants.Get(ctx, *sessionCode, *participantCode); err != nil {
		slog.Error("Loading participant failed", "participant_code", *participantCode, "error", err)
		return exitFor(err)
	}

	// Actions taken here publish events like server-side ones, so dashboards
	// watching the session see this agent too.
	pub := events.NewEventPublisher(dbClient.DB())
	engines := engine.NewFactory(st, pub, nil)

	tickEvery := time.Duration(*interval) * time.Second
	if tickEvery <= 0 {
		tickEvery = models.ExperimentConfig(sess.ExperimentConfig).PerceptionWindow()
	}
	log := slog.With("agent_key", *sessionCode+":"+*participantCode, "experiment_type", string(kind))
	log.Info("Attaching to session", "tick_interval", tickEvery, "llm", *useLLM)

	if !*useLLM {
		return dryRun(ctx, st, engines, kind, *sessionCode, *participantCode, tickEvery)
	}

	// Full perceive-decide-act with a real provider
	providerName := cfg.LLM.DefaultProvider
	if providerName == "" {
		providerName = string(llm.DetectProvider())
	}
	provider, err := cfg.Provider(providerName)
	if err != nil {
		slog.Error("Failed to resolve LLM provider", "provider", providerName, "error", err)
		return exitConfig
	}
	if *model != "" {
		provider.Model = *model
	}
	mode := llm.ModeFunction
	if cfg.LLM.PlanJSON {
		mode = llm.ModeJSON
	}
	client, err := llm.New(llm.Config{
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
		return exitConfig
	}
	log.Info("LLM client ready", "provider", providerName, "model", client.Model())

	var sinks *agentlog.Sinks
	if cfg.Agents.LogDir != "" {
		sinks, err = agentlog.New(cfg.Agents.LogDir, *sessionCode, *participantCode)
		if err != nil {
			log.Warn("Agent log sinks unavailable, continuing without file logs", "error", err)
			sinks = nil
		}
	}

	ctrl := agent.NewController(agent.Config{
		SessionCode:     *sessionCode,
		ParticipantCode: *participantCode,
		Kind:            kind,
		LLM:             client,
		Engines:         engines,
		Dispatcher:      tools.NewDispatcher(engines),
		Sinks:           sinks,
		PlanJSON:        cfg.LLM.PlanJSON,
		MaxMemory:       *maxMemory,
	})

	code := tickLoop(ctx, st, ctrl, log, *sessionCode, tickEvery, *showMemory)

	// HiddenProfiles agents owe a final vote on the way out, same as
	// manager-supervised ones.
	if kind == models.ExperimentHiddenProfiles {
		voteCtx, cancel := context.WithTimeout(context.Background(), tickTimeout)
		if !ctrl.FinalVoteCycle(voteCtx) {
			log.Warn("Agent stopped without casting a final vote")
		}
		cancel()
	}
	return code
}

// tickLoop drives the controller until the session leaves the live statuses,
// the run deadline passes, or a signal arrives.
func tickLoop(ctx context.Context, st *store.Store, ctrl *agent.Controller, log *slog.Logger, sessionCode string, tickEvery time.Duration, showMemory bool) int {
	ticker := time.NewTicker(tickEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Run finished", "reason", ctx.Err())
			return exitOK
		case <-ticker.C:
		}

		if done, code := sessionOver(ctx, st, log, sessionCode); done {
			return code
		}

		tickCtx, cancel := context.WithTimeout(ctx, tickTimeout)
		err := ctrl.Tick(tickCtx)
		cancel()
		if err != nil {
			switch fault.KindOf(err) {
			case fault.SessionNotFound, fault.ParticipantNotFound:
				log.Warn("Agent's session is gone, stopping", "error", err)
				return exitOK
			}
			log.Error("Agent cycle failed", "error", err)
			continue
		}
		if showMemory {
			fmt.Println("---- memory ----")
			fmt.Println(ctrl.Memory().Transcript())
		}
	}
}

// dryRun perceives on the tick interval and prints the status update the
// model would have seen. No LLM calls, no actions, nothing marked read.
func dryRun(ctx context.Context, st *store.Store, engines *engine.Factory, kind models.ExperimentType, sessionCode, participantCode string, tickEvery time.Duration) int {
	log := slog.With("agent_key", sessionCode+":"+participantCode)
	prompts := prompt.NewPromptBuilder()
	ticker := time.NewTicker(tickEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Dry run finished", "reason", ctx.Err())
			return exitOK
		case <-ticker.C:
		}

		if done, code := sessionOver(ctx, st, log, sessionCode); done {
			return code
		}

		eng, err := engines.ForSession(ctx, sessionCode)
		if err != nil {
			log.Error("Resolving engine failed", "error", err)
			return exitFor(err)
		}
		state, err := eng.GameState(ctx, sessionCode, participantCode)
		if err != nil {
			log.Error("Perceiving state failed", "error", err)
			return exitFor(err)
		}
		unread, err := st.Messages.Unread(ctx, sessionCode, participantCode)
		if err != nil {
			log.Error("Reading unread messages failed", "error", err)
			return exitFor(err)
		}

		update := prompts.BuildStatusUpdate(prompt.StatusInput{
			ParticipantCode: participantCode,
			Kind:            kind,
			State:           state,
			Timer:           state.PublicState.Timer,
			Unread:          unread,
		})
		fmt.Println("---- status update ----")
		fmt.Println(update)
	}
}

// sessionOver checks the session row and reports whether the run should end.
// A completed session is normal termination; a vanished one too.
func sessionOver(ctx context.Context, st *store.Store, log *slog.Logger, sessionCode string) (bool, int) {
	sess, err := st.Sessions.GetByCode(ctx, sessionCode)
	if err != nil {
		if fault.KindOf(err) == fault.SessionNotFound {
			log.Warn("Session is gone, stopping")
			return true, exitOK
		}
		log.Error("Checking session status failed", "error", err)
		return true, exitTransport
	}
	switch sess.Status {
	case session.StatusSessionActive, session.StatusSessionPaused:
		return false, exitOK
	default:
		log.Info("Session is no longer live, stopping", "status", sess.Status)
		return true, exitOK
	}
}

// exitFor maps a store error to the CLI's exit code: infrastructure failures
// are transport errors, everything else is the operator pointing at the wrong
// thing.
func exitFor(err error) int {
	switch fault.KindOf(err) {
	case fault.StoreError, fault.TransportError:
		return exitTransport
	default:
		return exitConfig
	}
}
