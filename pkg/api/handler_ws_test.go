package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWSHandler_RequiresConnectionManager(t *testing.T) {
	s := &Server{}

	w := perform(t, s.wsHandler, http.MethodGet, "/ws", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "websocket not available")
}
