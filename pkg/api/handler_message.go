package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/behavelab/parley/ent"
	"github.com/behavelab/parley/pkg/tools"
)

// sendMessageHandler handles POST .../participants/:participant/messages.
// Sends run through the tool executor rather than the engine directly: the
// dispatcher applies the session's communication level, and the manager's
// wake-aware wrapper triggers passive agent recipients, so a human send over
// HTTP behaves exactly like an agent send.
func (s *Server) sendMessageHandler(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}

	result := s.exec.Execute(c.Request.Context(), c.Param("code"), c.Param("participant"),
		tools.ToolSendMessage, map[string]any{"recipient": req.Recipient, "content": req.Content})
	if !result.Success {
		c.JSON(statusFor(result.Err()), result)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// listMessagesHandler handles GET .../participants/:participant/messages.
// view=unread (default) returns the participant's unread set, view=history
// the two-way conversation with the participant named by with=, and
// view=broadcasts the session's broadcast feed.
func (s *Server) listMessagesHandler(c *gin.Context) {
	code, pcode := c.Param("code"), c.Param("participant")

	limit := 50
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 500 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit: must be an integer between 1 and 500"})
			return
		}
		limit = n
	}

	ctx := c.Request.Context()
	var (
		msgs []*ent.Message
		err  error
	)
	switch view := c.DefaultQuery("view", "unread"); view {
	case "unread":
		msgs, err = s.store.Messages.Unread(ctx, code, pcode)
	case "history":
		other := c.Query("with")
		if other == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "history view requires the with parameter"})
			return
		}
		msgs, err = s.store.Messages.History(ctx, code, pcode, other, limit)
	case "broadcasts":
		msgs, err = s.store.Messages.Broadcasts(ctx, code, limit)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid view: must be unread, history, or broadcasts"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs, "count": len(msgs)})
}

// markMessagesReadHandler handles POST .../participants/:participant/messages/read.
// The body is optional; without message_ids the whole unread set is consumed.
func (s *Server) markMessagesReadHandler(c *gin.Context) {
	var req MarkReadRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}
	}

	args := map[string]any{}
	if len(req.MessageIDs) > 0 {
		args["message_ids"] = req.MessageIDs
	}
	result := s.exec.Execute(c.Request.Context(), c.Param("code"), c.Param("participant"),
		tools.ToolMarkMessagesAsRead, args)
	if !result.Success {
		c.JSON(statusFor(result.Err()), result)
		return
	}
	c.JSON(http.StatusOK, result)
}
