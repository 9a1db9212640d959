package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionHandler_Validation(t *testing.T) {
	s := &Server{}

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "malformed json",
			body:    `{"name": create`,
			wantErr: "invalid request body",
		},
		{
			name:    "missing name",
			body:    `{"args":{"shape":"circle"}}`,
			wantErr: "name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(t, s.actionHandler, http.MethodPost,
				"/api/v1/sessions/ROOM42/participants/Alice/actions", tt.body,
				sessionParam("ROOM42"), participantParam("Alice"))
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantErr)
		})
	}
}
