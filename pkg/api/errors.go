package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/behavelab/parley/pkg/fault"
)

// statusFor maps fault kinds to HTTP status codes. Lookup failures are 404,
// lifecycle violations 409, game-rule violations 400: the request was
// well-formed but the move is illegal.
func statusFor(err error) int {
	switch fault.KindOf(err) {
	case fault.SessionNotFound, fault.ParticipantNotFound:
		return http.StatusNotFound
	case fault.InvalidState, fault.NotInProposedState, fault.AlreadyProcessed:
		return http.StatusConflict
	case fault.CommunicationLevelViolation:
		return http.StatusForbidden
	case fault.MissingSessionScope,
		fault.InsufficientFunds,
		fault.InsufficientInventory,
		fault.ProductionLimitReached,
		fault.InvalidPrice,
		fault.InvalidShape,
		fault.InvalidQuantity,
		fault.InvalidOrderIndex,
		fault.SelfAcceptForbidden,
		fault.SelfOfferForbidden:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the JSON error response for a fault. Errors without a
// kind (and infrastructure kinds) are logged and answered with an opaque 500:
// they indicate a path that escaped the fault vocabulary, and their messages
// may carry driver internals that do not belong on the wire.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error("Unexpected error reached the HTTP layer",
			"path", c.Request.URL.Path, "error", err)
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error(), "kind": string(fault.KindOf(err))})
}
