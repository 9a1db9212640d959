package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateSessionHandler_Validation(t *testing.T) {
	// We only test request validation (rejected before any component is
	// touched). Happy paths run through the router in server_test.go.
	s := &Server{}

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "malformed json",
			body:    "{not-json",
			wantErr: "invalid request body",
		},
		{
			name:    "missing session code",
			body:    `{"experiment_type":"shapefactory"}`,
			wantErr: "session_code is required",
		},
		{
			name:    "missing experiment type",
			body:    `{"session_code":"ROOM42"}`,
			wantErr: "experiment_type is required",
		},
		{
			name:    "unknown experiment type",
			body:    `{"session_code":"ROOM42","experiment_type":"poker"}`,
			wantErr: "invalid experiment_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(t, s.createSessionHandler, http.MethodPost, "/api/v1/sessions", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantErr)
		})
	}
}

func TestListSessionsHandler_Validation(t *testing.T) {
	s := &Server{}

	tests := []struct {
		name    string
		query   string
		wantErr string
	}{
		{
			name:    "invalid status",
			query:   "status=bogus",
			wantErr: "invalid status",
		},
		{
			name:    "invalid experiment_type",
			query:   "experiment_type=poker",
			wantErr: "invalid experiment_type",
		},
		{
			name:    "limit not a number",
			query:   "limit=abc",
			wantErr: "invalid limit",
		},
		{
			name:    "limit zero",
			query:   "limit=0",
			wantErr: "invalid limit",
		},
		{
			name:    "limit too large",
			query:   "limit=101",
			wantErr: "invalid limit",
		},
		{
			name:    "negative offset",
			query:   "offset=-1",
			wantErr: "invalid offset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(t, s.listSessionsHandler, http.MethodGet, "/api/v1/sessions?"+tt.query, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantErr)
		})
	}
}

func TestPauseResumeHandlers_RequireTimerRegistry(t *testing.T) {
	s := &Server{}

	w := perform(t, s.pauseSessionHandler, http.MethodPost, "/api/v1/sessions/ROOM42/pause", "",
		sessionParam("ROOM42"))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = perform(t, s.resumeSessionHandler, http.MethodPost, "/api/v1/sessions/ROOM42/resume", "",
		sessionParam("ROOM42"))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
