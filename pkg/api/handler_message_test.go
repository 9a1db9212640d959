package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSendMessageHandler_Validation(t *testing.T) {
	s := &Server{}

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "malformed json",
			body:    `{"content"`,
			wantErr: "invalid request body",
		},
		{
			name:    "missing content",
			body:    `{"recipient":"Bob"}`,
			wantErr: "content is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(t, s.sendMessageHandler, http.MethodPost,
				"/api/v1/sessions/ROOM42/participants/Alice/messages", tt.body,
				sessionParam("ROOM42"), participantParam("Alice"))
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantErr)
		})
	}
}

func TestListMessagesHandler_Validation(t *testing.T) {
	s := &Server{}

	tests := []struct {
		name    string
		query   string
		wantErr string
	}{
		{
			name:    "limit not a number",
			query:   "limit=many",
			wantErr: "invalid limit",
		},
		{
			name:    "limit too large",
			query:   "limit=501",
			wantErr: "invalid limit",
		},
		{
			name:    "unknown view",
			query:   "view=archive",
			wantErr: "invalid view: must be unread, history, or broadcasts",
		},
		{
			name:    "history without with",
			query:   "view=history",
			wantErr: "history view requires the with parameter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(t, s.listMessagesHandler, http.MethodGet,
				"/api/v1/sessions/ROOM42/participants/Alice/messages?"+tt.query, "",
				sessionParam("ROOM42"), participantParam("Alice"))
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantErr)
		})
	}
}

func TestMarkMessagesReadHandler_Validation(t *testing.T) {
	s := &Server{}

	w := perform(t, s.markMessagesReadHandler, http.MethodPost,
		"/api/v1/sessions/ROOM42/participants/Alice/messages/read", `{"message_ids":`,
		sessionParam("ROOM42"), participantParam("Alice"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}
