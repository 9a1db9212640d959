package api

import (
	"net/http"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// wsHandler upgrades GET /ws and hands the connection to the ConnectionManager.
func (s *Server) wsHandler(c *gin.Context) {
	if s.conns == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "websocket not available"})
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		// Experiment UIs are served from researcher-controlled origins and
		// the deployment's reverse proxy enforces the allowlist.
		InsecureSkipVerify: true,
	})
	if err != nil {
		// Accept has already written the HTTP error response.
		return
	}

	// HandleConnection blocks until the WebSocket closes.
	s.conns.HandleConnection(c.Request.Context(), conn)
}
