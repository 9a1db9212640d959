package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddParticipantHandler_Validation(t *testing.T) {
	s := &Server{}

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "malformed json",
			body:    `{"participant_code":`,
			wantErr: "invalid request body",
		},
		{
			name:    "missing participant code",
			body:    `{"type":"human"}`,
			wantErr: "participant_code is required",
		},
		{
			name:    "missing type",
			body:    `{"participant_code":"Alice"}`,
			wantErr: "invalid type",
		},
		{
			name:    "unknown type",
			body:    `{"participant_code":"Alice","type":"robot"}`,
			wantErr: "invalid type: must be human or ai_agent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(t, s.addParticipantHandler, http.MethodPost,
				"/api/v1/sessions/ROOM42/participants", tt.body, sessionParam("ROOM42"))
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantErr)
		})
	}
}
