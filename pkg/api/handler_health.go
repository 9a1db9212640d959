package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/behavelab/parley/pkg/database"
	"github.com/behavelab/parley/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health. Only the runtime's own components are
// checked; the LLM providers are deliberately excluded so an upstream outage
// does not make the orchestrator restart us. Components that are not wired
// simply do not appear in the checks map.
func (s *Server) healthHandler(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy
	resp := HealthResponse{Version: version.GitCommit}

	if s.db != nil {
		dbHealth, err := database.Health(reqCtx, s.db.DB())
		resp.Database = dbHealth
		if err != nil {
			status = healthStatusUnhealthy
			checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
		} else {
			checks["database"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	if s.timers != nil {
		resp.Timers = s.timers.Count()
		checks["timers"] = HealthCheck{Status: healthStatusHealthy}
	}

	if s.agents != nil {
		h := s.agents.Health()
		resp.AgentManager = &h
		checks["agent_manager"] = HealthCheck{Status: healthStatusHealthy}
	}

	if s.conns != nil {
		resp.WebSocket = &WebSocketStats{ActiveConnections: s.conns.ActiveConnections()}
		checks["websocket"] = HealthCheck{Status: healthStatusHealthy}
	}

	// A dropped LISTEN connection leaves REST intact but realtime stale:
	// degraded, not unhealthy, so the orchestrator lets it reconnect.
	if s.listener != nil {
		if s.listener.Connected() {
			checks["event_listener"] = HealthCheck{Status: healthStatusHealthy}
		} else {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			checks["event_listener"] = HealthCheck{
				Status:  healthStatusDegraded,
				Message: "LISTEN connection down, reconnecting",
			}
		}
	}

	resp.Status = status
	resp.Checks = checks

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}
	c.JSON(httpStatus, &resp)
}
