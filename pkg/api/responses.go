package api

import (
	"github.com/behavelab/parley/pkg/database"
	"github.com/behavelab/parley/pkg/manager"
)

// StartSessionResponse is returned by POST /api/v1/sessions/:code/start.
type StartSessionResponse struct {
	SessionCode   string `json:"session_code"`
	Status        string `json:"status"`
	AgentsStarted int    `json:"agents_started"`
}

// EndSessionResponse is returned by POST /api/v1/sessions/:code/end.
type EndSessionResponse struct {
	SessionCode   string `json:"session_code"`
	Status        string `json:"status"`
	AgentsStopped int    `json:"agents_stopped"`
}

// AgentsResponse is returned by the session-wide agent start/stop endpoints.
type AgentsResponse struct {
	SessionCode   string `json:"session_code"`
	AgentsStarted int    `json:"agents_started,omitempty"`
	AgentsStopped int    `json:"agents_stopped,omitempty"`
}

// DocumentResponse is returned by the document upload endpoints.
// ReadingComplete reports whether every participant now holds a document and
// the shared brief is set; the flag flips the passive agents awake.
type DocumentResponse struct {
	SessionCode     string `json:"session_code"`
	ParticipantCode string `json:"participant_code,omitempty"`
	Characters      int    `json:"characters"`
	ReadingComplete bool   `json:"reading_complete"`
}

// EssayResponse is returned by POST .../essays. Content stays out: essays can
// run to hundreds of kilobytes and the caller just uploaded it.
type EssayResponse struct {
	EssayID         string `json:"essay_id"`
	ParticipantCode string `json:"participant_code"`
	Title           string `json:"title"`
	Characters      int    `json:"characters"`
}

// HealthCheck is one component's entry in the health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// WebSocketStats reports connection-manager gauges.
type WebSocketStats struct {
	ActiveConnections int `json:"active_connections"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status       string                 `json:"status"`
	Version      string                 `json:"version"`
	Checks       map[string]HealthCheck `json:"checks"`
	Database     *database.HealthStatus `json:"database,omitempty"`
	Timers       int                    `json:"timers"`
	AgentManager *manager.Health        `json:"agent_manager,omitempty"`
	WebSocket    *WebSocketStats        `json:"websocket,omitempty"`
}
