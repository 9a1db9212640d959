// Package e2e provides end-to-end test infrastructure for the parley runtime.
//
// NewTestApp boots the full stack against a containerized PostgreSQL: real
// store, real event publishing with NOTIFY/LISTEN, real timers, engines, tool
// dispatcher, and agent manager, with only the LLM replaced by a scripted
// client. Tests drive the system the way deployments do, over HTTP and
// WebSocket.
package e2e

import (
	"context"
	"fmt"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/behavelab/parley/pkg/api"
	"github.com/behavelab/parley/pkg/database"
	"github.com/behavelab/parley/pkg/engine"
	"github.com/behavelab/parley/pkg/events"
	"github.com/behavelab/parley/pkg/manager"
	"github.com/behavelab/parley/pkg/store"
	"github.com/behavelab/parley/pkg/timer"
	"github.com/behavelab/parley/pkg/tools"
	testdb "github.com/behavelab/parley/test/database"
	"github.com/behavelab/parley/test/util"
)

// TestApp boots a complete parley instance for e2e testing.
type TestApp struct {
	// Core
	DBClient *database.Client
	Store    *store.Store

	// Test wiring
	LLMClient *ScriptedLLMClient

	// Real infrastructure
	EventPublisher *events.EventPublisher
	ConnManager    *events.ConnectionManager
	NotifyListener *events.NotifyListener
	Timers         *timer.Registry
	Engines        *engine.Factory
	Manager        *manager.Manager
	Server         *api.Server

	// Runtime
	BaseURL string // e.g. "http://127.0.0.1:54321"
	WSURL   string // e.g. "ws://127.0.0.1:54321/ws"

	t *testing.T
}

// testAppConfig holds options accumulated before creating the TestApp.
type testAppConfig struct {
	llmClient *ScriptedLLMClient
	logDir    string
	planJSON  bool
	maxMemory int
	dbClient  *database.Client // injected DB client (to share a schema across apps)
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithLLMClient sets a pre-scripted LLM client.
func WithLLMClient(client *ScriptedLLMClient) TestAppOption {
	return func(c *testAppConfig) { c.llmClient = client }
}

// WithAgentLogDir enables per-agent file log sinks under dir.
func WithAgentLogDir(dir string) TestAppOption {
	return func(c *testAppConfig) { c.logDir = dir }
}

// WithPlanJSON switches agent controllers to JSON plan mode instead of
// native tool calling.
func WithPlanJSON() TestAppOption {
	return func(c *testAppConfig) { c.planJSON = true }
}

// WithMaxMemory bounds each agent's conversation ring.
func WithMaxMemory(n int) TestAppOption {
	return func(c *testAppConfig) { c.maxMemory = n }
}

// WithDBClient injects a pre-created database client, skipping the default
// per-test schema creation. Used when several TestApp instances must share
// one schema.
func WithDBClient(client *database.Client) TestAppOption {
	return func(c *testAppConfig) { c.dbClient = client }
}

// NewTestApp creates and starts a full parley test instance.
// Shutdown is registered via t.Cleanup automatically.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()

	tc := &testAppConfig{}
	for _, opt := range opts {
		opt(tc)
	}
	if tc.llmClient == nil {
		tc.llmClient = NewScriptedLLMClient()
	}

	// 1. Database, one schema per test.
	dbClient := tc.dbClient
	if dbClient == nil {
		dbClient = testdb.NewTestClient(t)
	}
	st := store.New(dbClient)

	// 2. Event publishing and streaming, backed by the test DB.
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	connManager := events.NewConnectionManager(events.NewEventStoreAdapter(st.Events), 5*time.Second)

	// 3. NotifyListener on a dedicated connection. NOTIFY/LISTEN is
	// database-level, not schema-level, so the base connection string
	// works even though each test runs in its own schema.
	notifyListener := events.NewNotifyListener(util.GetBaseConnectionString(t), connManager)
	ctx := context.Background()
	require.NoError(t, notifyListener.Start(ctx))
	connManager.SetListener(notifyListener)

	// 4. Timers, engines, tool dispatcher.
	timers := timer.NewRegistry(st, eventPublisher)
	engines := engine.NewFactory(st, eventPublisher, timers)
	dispatcher := tools.NewDispatcher(engines)

	// 5. Agent manager over the scripted LLM.
	mgr := manager.New(manager.Config{
		Engines:    engines,
		Dispatcher: dispatcher,
		Timers:     timers,
		LLM:        tc.llmClient,
		LogDir:     tc.logDir,
		PlanJSON:   tc.planJSON,
		MaxMemory:  tc.maxMemory,
	})
	timers.SetCompletionHook(mgr.HandleSessionCompleted)

	// 6. HTTP server on a random port.
	server := api.New(api.Deps{
		DB:       dbClient,
		Engines:  engines,
		Timers:   timers,
		Agents:   mgr,
		Conns:    connManager,
		Listener: notifyListener,
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() {
		_ = server.StartWithListener(ln)
	}()

	addr := ln.Addr().String()
	app := &TestApp{
		DBClient:       dbClient,
		Store:          st,
		LLMClient:      tc.llmClient,
		EventPublisher: eventPublisher,
		ConnManager:    connManager,
		NotifyListener: notifyListener,
		Timers:         timers,
		Engines:        engines,
		Manager:        mgr,
		Server:         server,
		BaseURL:        fmt.Sprintf("http://%s", addr),
		WSURL:          fmt.Sprintf("ws://%s/ws", addr),
		t:              t,
	}

	// Register cleanup in reverse-creation order.
	t.Cleanup(func() {
		mgr.StopAll(context.Background())
		timers.StopAll()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		notifyListener.Stop(context.Background())
		// DB cleanup handled by testdb.NewTestClient.
	})

	return app
}

// NewSessionCode returns a session code unique across parallel tests. NOTIFY
// channels are database-wide while tests share one PostgreSQL instance, so
// codes must never collide between concurrently running schemas.
func NewSessionCode() string {
	return "E" + strings.ToUpper(uuid.New().String()[:7])
}
