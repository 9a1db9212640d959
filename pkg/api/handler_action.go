package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// actionHandler handles POST .../participants/:participant/actions: one tool
// call by name, dispatched exactly like an agent tool call. The dispatcher
// injects the caller's identity, applies the communication level, and
// resolves short transaction ids; the response is the same discriminated
// result agents see, so the research UI and the agent runtime share one
// action vocabulary.
func (s *Server) actionHandler(c *gin.Context) {
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	result := s.exec.Execute(c.Request.Context(), c.Param("code"), c.Param("participant"),
		req.Name, req.Args)
	if !result.Success {
		c.JSON(statusFor(result.Err()), result)
		return
	}
	c.JSON(http.StatusOK, result)
}
