package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/behavelab/parley/pkg/models"
)

// requireAgents answers 503 and returns false when no agent manager is wired
// (deployments without LLM credentials run the API without one).
func (s *Server) requireAgents(c *gin.Context) bool {
	if s.agents == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "agent manager not available"})
		return false
	}
	return true
}

// startSessionAgentsHandler handles POST /api/v1/sessions/:code/agents:
// launch every ai_agent participant of the session.
func (s *Server) startSessionAgentsHandler(c *gin.Context) {
	if !s.requireAgents(c) {
		return
	}
	code := c.Param("code")
	n, err := s.agents.StartSessionAgents(c.Request.Context(), code)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, AgentsResponse{SessionCode: code, AgentsStarted: n})
}

// stopSessionAgentsHandler handles DELETE /api/v1/sessions/:code/agents.
func (s *Server) stopSessionAgentsHandler(c *gin.Context) {
	if !s.requireAgents(c) {
		return
	}
	code := c.Param("code")
	n := s.agents.StopSessionAgents(c.Request.Context(), code)
	c.JSON(http.StatusOK, AgentsResponse{SessionCode: code, AgentsStopped: n})
}

// startAgentHandler handles POST .../participants/:participant/agent. The
// optional body picks the initiative; without one it resolves from the
// session config.
func (s *Server) startAgentHandler(c *gin.Context) {
	if !s.requireAgents(c) {
		return
	}
	var req StartAgentRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}
	}
	switch req.Initiative {
	case "", models.InitiativeActive, models.InitiativePassive:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid initiative: must be active or passive"})
		return
	}

	code, pcode := c.Param("code"), c.Param("participant")
	if err := s.agents.StartAgent(c.Request.Context(), code, pcode, req.Initiative); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"session_code":     code,
		"participant_code": pcode,
	})
}

// stopAgentHandler handles DELETE .../participants/:participant/agent.
// Stopping an agent that is not running is a no-op, matching the manager.
func (s *Server) stopAgentHandler(c *gin.Context) {
	if !s.requireAgents(c) {
		return
	}
	code, pcode := c.Param("code"), c.Param("participant")
	s.agents.StopAgent(c.Request.Context(), code, pcode)
	c.JSON(http.StatusOK, gin.H{
		"session_code":     code,
		"participant_code": pcode,
	})
}
