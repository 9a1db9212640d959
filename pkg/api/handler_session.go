package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/behavelab/parley/ent/session"
	"github.com/behavelab/parley/pkg/models"
)

// createSessionHandler handles POST /api/v1/sessions.
func (s *Server) createSessionHandler(c *gin.Context) {
	var req models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.SessionCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_code is required"})
		return
	}
	if req.ExperimentType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "experiment_type is required"})
		return
	}
	if !req.ExperimentType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid experiment_type: " + string(req.ExperimentType)})
		return
	}

	eng, err := s.engines.ForType(req.ExperimentType)
	if err != nil {
		respondError(c, err)
		return
	}
	sess, err := eng.CreateSession(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	slog.Info("Session created",
		"session_code", sess.SessionCode,
		"experiment_type", sess.ExperimentType,
		"author", extractAuthor(c))
	c.JSON(http.StatusCreated, sess)
}

// listSessionsHandler handles GET /api/v1/sessions.
func (s *Server) listSessionsHandler(c *gin.Context) {
	filters := models.SessionFilters{Limit: 25}

	if v := c.Query("status"); v != "" {
		if err := session.StatusValidator(session.Status(v)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status: " + v})
			return
		}
		filters.Status = v
	}
	if v := c.Query("experiment_type"); v != "" {
		if !models.ExperimentType(v).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid experiment_type: " + v})
			return
		}
		filters.ExperimentType = v
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit: must be an integer between 1 and 100"})
			return
		}
		filters.Limit = n
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset: must be a non-negative integer"})
			return
		}
		filters.Offset = n
	}

	result, err := s.store.Sessions.List(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// getSessionHandler handles GET /api/v1/sessions/:code.
func (s *Server) getSessionHandler(c *gin.Context) {
	sess, err := s.store.Sessions.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// publicStateHandler handles GET /api/v1/sessions/:code/state: the view every
// participant shares, timer included.
func (s *Server) publicStateHandler(c *gin.Context) {
	code := c.Param("code")
	eng, err := s.engines.ForSession(c.Request.Context(), code)
	if err != nil {
		respondError(c, err)
		return
	}
	state, err := eng.PublicState(c.Request.Context(), code)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// startSessionHandler handles POST /api/v1/sessions/:code/start. It moves the
// session to session_active, spawns the countdown timer, and launches the
// session's agent participants. Agent launch failures do not fail the start:
// the session is usable by humans either way.
func (s *Server) startSessionHandler(c *gin.Context) {
	code := c.Param("code")
	ctx := c.Request.Context()

	eng, err := s.engines.ForSession(ctx, code)
	if err != nil {
		respondError(c, err)
		return
	}
	sess, err := eng.StartSession(ctx, code)
	if err != nil {
		respondError(c, err)
		return
	}
	if s.timers != nil {
		if err := s.timers.Start(ctx, code); err != nil {
			respondError(c, err)
			return
		}
	}

	started := 0
	if s.agents != nil {
		if started, err = s.agents.StartSessionAgents(ctx, code); err != nil {
			slog.Warn("Starting session agents failed",
				"session_code", code, "error", err)
		}
	}

	slog.Info("Session started",
		"session_code", code,
		"agents_started", started,
		"author", extractAuthor(c))
	c.JSON(http.StatusOK, StartSessionResponse{
		SessionCode:   code,
		Status:        sess.Status.String(),
		AgentsStarted: started,
	})
}

// pauseSessionHandler handles POST /api/v1/sessions/:code/pause. The timer
// registry owns the status flip so the countdown and the session row move
// together.
func (s *Server) pauseSessionHandler(c *gin.Context) {
	code := c.Param("code")
	if s.timers == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "timer registry not available"})
		return
	}
	if err := s.timers.Pause(c.Request.Context(), code); err != nil {
		respondError(c, err)
		return
	}
	slog.Info("Session paused", "session_code", code, "author", extractAuthor(c))
	c.JSON(http.StatusOK, gin.H{"session_code": code, "status": string(session.StatusSessionPaused)})
}

// resumeSessionHandler handles POST /api/v1/sessions/:code/resume.
func (s *Server) resumeSessionHandler(c *gin.Context) {
	code := c.Param("code")
	if s.timers == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "timer registry not available"})
		return
	}
	if err := s.timers.Resume(c.Request.Context(), code); err != nil {
		respondError(c, err)
		return
	}
	slog.Info("Session resumed", "session_code", code, "author", extractAuthor(c))
	c.JSON(http.StatusOK, gin.H{"session_code": code, "status": string(session.StatusSessionActive)})
}

// endSessionHandler handles POST /api/v1/sessions/:code/end. Agents are
// stopped after the status flip so hidden-profiles agents cast their final
// vote against the completed session, mirroring what the timer-driven
// completion path does.
func (s *Server) endSessionHandler(c *gin.Context) {
	code := c.Param("code")
	ctx := c.Request.Context()

	eng, err := s.engines.ForSession(ctx, code)
	if err != nil {
		respondError(c, err)
		return
	}
	sess, err := eng.EndSession(ctx, code)
	if err != nil {
		respondError(c, err)
		return
	}

	stopped := 0
	if s.agents != nil {
		stopped = s.agents.StopSessionAgents(ctx, code)
	}
	if s.timers != nil {
		s.timers.Finish(ctx, code)
	}

	slog.Info("Session ended",
		"session_code", code,
		"agents_stopped", stopped,
		"author", extractAuthor(c))
	c.JSON(http.StatusOK, EndSessionResponse{
		SessionCode:   code,
		Status:        sess.Status.String(),
		AgentsStopped: stopped,
	})
}
