// Package api is the HTTP surface of the runtime. Handlers are thin: they
// validate transport-level input, call into the engines, store, timer
// registry, and agent manager, and translate fault kinds into status codes.
// Game semantics never live here.
package api

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/behavelab/parley/pkg/database"
	"github.com/behavelab/parley/pkg/engine"
	"github.com/behavelab/parley/pkg/events"
	"github.com/behavelab/parley/pkg/export"
	"github.com/behavelab/parley/pkg/manager"
	"github.com/behavelab/parley/pkg/store"
	"github.com/behavelab/parley/pkg/timer"
	"github.com/behavelab/parley/pkg/tools"
)

// Server wires the HTTP surface to the runtime components. Fields may be nil
// in reduced deployments (tests, one-shot CLI runs); handlers that need an
// absent component answer 503.
type Server struct {
	db       *database.Client
	store    *store.Store
	engines  *engine.Factory
	timers   *timer.Registry
	agents   *manager.Manager
	exec     tools.Executor
	exporter *export.Exporter
	conns    *events.ConnectionManager
	listener *events.NotifyListener

	http *http.Server
}

// Deps carries the runtime components the server exposes over HTTP.
type Deps struct {
	DB       *database.Client
	Engines  *engine.Factory
	Timers   *timer.Registry
	Agents   *manager.Manager
	Conns    *events.ConnectionManager
	Listener *events.NotifyListener
}

// New creates the API server. The store and exporter derive from the engine
// factory. Participant actions run through the agent manager's wake-aware
// executor when one is present, so messages sent over HTTP trigger passive
// agents exactly like agent-sent ones; without a manager they fall back to
// the plain dispatcher.
func New(deps Deps) *Server {
	s := &Server{
		db:       deps.DB,
		engines:  deps.Engines,
		timers:   deps.Timers,
		agents:   deps.Agents,
		conns:    deps.Conns,
		listener: deps.Listener,
	}
	if deps.Engines != nil {
		s.store = deps.Engines.Store()
		s.exporter = export.New(s.store)
		s.exec = tools.NewDispatcher(deps.Engines)
	}
	if deps.Agents != nil {
		s.exec = deps.Agents.Executor()
	}
	return s
}

// Start serves the router on addr and blocks until the listener fails or
// Shutdown is called; a clean shutdown returns http.ErrServerClosed. Write
// timeouts stay off so WebSocket connections and long exports are not cut.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// StartWithListener serves the router on an existing listener. Tests use it
// to bind port 0 and read the kernel-assigned address back before serving.
func (s *Server) StartWithListener(ln net.Listener) error {
	s.http = &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.Serve(ln)
}

// Shutdown stops accepting connections and drains in-flight requests until
// ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), securityHeaders())

	r.GET("/health", s.healthHandler)
	r.GET("/ws", s.wsHandler)

	api := r.Group("/api/v1")
	{
		api.POST("/sessions", s.createSessionHandler)
		api.GET("/sessions", s.listSessionsHandler)
		api.GET("/sessions/:code", s.getSessionHandler)
		api.GET("/sessions/:code/state", s.publicStateHandler)
		api.POST("/sessions/:code/start", s.startSessionHandler)
		api.POST("/sessions/:code/pause", s.pauseSessionHandler)
		api.POST("/sessions/:code/resume", s.resumeSessionHandler)
		api.POST("/sessions/:code/end", s.endSessionHandler)
		api.GET("/sessions/:code/export/csv", s.exportCSVHandler)
		api.GET("/sessions/:code/export/xlsx", s.exportWorkbookHandler)
		api.POST("/sessions/:code/agents", s.startSessionAgentsHandler)
		api.DELETE("/sessions/:code/agents", s.stopSessionAgentsHandler)
		api.PUT("/sessions/:code/documents/public", s.setPublicInfoHandler)

		api.POST("/sessions/:code/participants", s.addParticipantHandler)
		api.GET("/sessions/:code/participants", s.listParticipantsHandler)
		api.GET("/sessions/:code/participants/:participant/state", s.gameStateHandler)
		api.POST("/sessions/:code/participants/:participant/login", s.loginHandler)
		api.POST("/sessions/:code/participants/:participant/logout", s.logoutHandler)
		api.GET("/sessions/:code/participants/:participant/messages", s.listMessagesHandler)
		api.POST("/sessions/:code/participants/:participant/messages", s.sendMessageHandler)
		api.POST("/sessions/:code/participants/:participant/messages/read", s.markMessagesReadHandler)
		api.POST("/sessions/:code/participants/:participant/actions", s.actionHandler)
		api.PUT("/sessions/:code/participants/:participant/document", s.assignDocumentHandler)
		api.POST("/sessions/:code/participants/:participant/essays", s.assignEssayHandler)
		api.POST("/sessions/:code/participants/:participant/agent", s.startAgentHandler)
		api.DELETE("/sessions/:code/participants/:participant/agent", s.stopAgentHandler)
	}

	return r
}
