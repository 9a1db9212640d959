package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/behavelab/parley/ent/participant"
	"github.com/behavelab/parley/pkg/models"
)

// addParticipantHandler handles POST /api/v1/sessions/:code/participants.
// Registration is a setup-phase operation; the engine rejects it once the
// session is running.
func (s *Server) addParticipantHandler(c *gin.Context) {
	var req models.CreateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.ParticipantCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "participant_code is required"})
		return
	}
	switch req.Type {
	case models.ParticipantHuman, models.ParticipantAgent:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid type: must be human or ai_agent"})
		return
	}

	code := c.Param("code")
	eng, err := s.engines.ForSession(c.Request.Context(), code)
	if err != nil {
		respondError(c, err)
		return
	}
	p, err := eng.AddParticipant(c.Request.Context(), code, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// listParticipantsHandler handles GET /api/v1/sessions/:code/participants.
func (s *Server) listParticipantsHandler(c *gin.Context) {
	code := c.Param("code")
	parts, err := s.store.Participants.ListBySession(c.Request.Context(), code)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"participants": parts, "count": len(parts)})
}

// gameStateHandler handles GET .../participants/:participant/state: the
// participant's private view combined with the shared public state, the same
// payload the get_game_state tool returns to agents.
func (s *Server) gameStateHandler(c *gin.Context) {
	code := c.Param("code")
	eng, err := s.engines.ForSession(c.Request.Context(), code)
	if err != nil {
		respondError(c, err)
		return
	}
	state, err := eng.GameState(c.Request.Context(), code, c.Param("participant"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// loginHandler handles POST .../participants/:participant/login.
func (s *Server) loginHandler(c *gin.Context) {
	s.setLoginStatus(c, participant.LoginStatusLoggedIn)
}

// logoutHandler handles POST .../participants/:participant/logout.
func (s *Server) logoutHandler(c *gin.Context) {
	s.setLoginStatus(c, participant.LoginStatusNotLoggedIn)
}

func (s *Server) setLoginStatus(c *gin.Context, status participant.LoginStatus) {
	code, pcode := c.Param("code"), c.Param("participant")
	if err := s.store.Participants.UpdateLoginStatus(c.Request.Context(), code, pcode, status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session_code":     code,
		"participant_code": pcode,
		"login_status":     string(status),
	})
}
