package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler_BareServer(t *testing.T) {
	// With nothing wired, nothing can be unhealthy: the endpoint reports
	// healthy with an empty checks map instead of guessing about components
	// it does not have.
	s := &Server{}

	w := perform(t, s.healthHandler, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, healthStatusHealthy, resp.Status)
	assert.NotEmpty(t, resp.Version)
	assert.Empty(t, resp.Checks)
	assert.Nil(t, resp.Database)
	assert.Nil(t, resp.AgentManager)
	assert.Nil(t, resp.WebSocket)
}
