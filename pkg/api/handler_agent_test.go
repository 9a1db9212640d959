package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAgentHandlers_RequireManager(t *testing.T) {
	// A deployment without LLM credentials runs the API without an agent
	// manager; every agent endpoint must answer 503 rather than panic.
	s := &Server{}

	tests := []struct {
		name    string
		handler gin.HandlerFunc
		method  string
		target  string
		params  []gin.Param
	}{
		{
			name:    "start session agents",
			handler: s.startSessionAgentsHandler,
			method:  http.MethodPost,
			target:  "/api/v1/sessions/ROOM42/agents",
			params:  []gin.Param{sessionParam("ROOM42")},
		},
		{
			name:    "stop session agents",
			handler: s.stopSessionAgentsHandler,
			method:  http.MethodDelete,
			target:  "/api/v1/sessions/ROOM42/agents",
			params:  []gin.Param{sessionParam("ROOM42")},
		},
		{
			name:    "start agent",
			handler: s.startAgentHandler,
			method:  http.MethodPost,
			target:  "/api/v1/sessions/ROOM42/participants/Bot1/agent",
			params:  []gin.Param{sessionParam("ROOM42"), participantParam("Bot1")},
		},
		{
			name:    "stop agent",
			handler: s.stopAgentHandler,
			method:  http.MethodDelete,
			target:  "/api/v1/sessions/ROOM42/participants/Bot1/agent",
			params:  []gin.Param{sessionParam("ROOM42"), participantParam("Bot1")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(t, tt.handler, tt.method, tt.target, "", tt.params...)
			assert.Equal(t, http.StatusServiceUnavailable, w.Code)
			assert.Contains(t, w.Body.String(), "agent manager not available")
		})
	}
}

func TestStartAgentHandler_GuardBeforeBody(t *testing.T) {
	// The initiative check sits behind the availability guard, so without a
	// manager the guard answers first even when the body is invalid.
	s := &Server{}

	w := perform(t, s.startAgentHandler, http.MethodPost,
		"/api/v1/sessions/ROOM42/participants/Bot1/agent", `{"initiative":"aggressive"}`,
		sessionParam("ROOM42"), participantParam("Bot1"))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
