package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExportCSVHandler_Validation(t *testing.T) {
	s := &Server{}

	tests := []struct {
		name    string
		query   string
		wantErr string
	}{
		{
			name:    "missing entity",
			query:   "",
			wantErr: "entity is required",
		},
		{
			name:    "unknown entity",
			query:   "entity=budgets",
			wantErr: "unknown entity budgets",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(t, s.exportCSVHandler, http.MethodGet,
				"/api/v1/sessions/ROOM42/export/csv?"+tt.query, "", sessionParam("ROOM42"))
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantErr)
			// The error must tell the caller what is valid.
			assert.Contains(t, w.Body.String(), "messages")
		})
	}
}
