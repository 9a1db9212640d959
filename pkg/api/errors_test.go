package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/behavelab/parley/pkg/fault"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect int
	}{
		{
			name:   "session not found maps to 404",
			err:    fault.New(fault.SessionNotFound, "no session"),
			expect: http.StatusNotFound,
		},
		{
			name:   "participant not found maps to 404",
			err:    fault.New(fault.ParticipantNotFound, "no participant"),
			expect: http.StatusNotFound,
		},
		{
			name:   "invalid state maps to 409",
			err:    fault.New(fault.InvalidState, "session is not active"),
			expect: http.StatusConflict,
		},
		{
			name:   "already processed maps to 409",
			err:    fault.New(fault.AlreadyProcessed, "offer already resolved"),
			expect: http.StatusConflict,
		},
		{
			name:   "communication level violation maps to 403",
			err:    fault.New(fault.CommunicationLevelViolation, "messaging is disabled"),
			expect: http.StatusForbidden,
		},
		{
			name:   "insufficient funds maps to 400",
			err:    fault.New(fault.InsufficientFunds, "not enough money"),
			expect: http.StatusBadRequest,
		},
		{
			name:   "invalid shape maps to 400",
			err:    fault.New(fault.InvalidShape, "hexagon is not a shape"),
			expect: http.StatusBadRequest,
		},
		{
			name:   "self accept maps to 400",
			err:    fault.New(fault.SelfAcceptForbidden, "cannot accept your own offer"),
			expect: http.StatusBadRequest,
		},
		{
			name:   "store error maps to 500",
			err:    fault.New(fault.StoreError, "constraint violation"),
			expect: http.StatusInternalServerError,
		},
		{
			name:   "uncategorized error maps to 500",
			err:    errors.New("surprise"),
			expect: http.StatusInternalServerError,
		},
		{
			name:   "wrapped fault keeps its mapping",
			err:    fmt.Errorf("handling request: %w", fault.New(fault.SessionNotFound, "gone")),
			expect: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, statusFor(tt.err))
		})
	}
}

func TestRespondError_ExposesFaultKind(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/sessions/NOPE", nil)

	respondError(c, fault.Errorf(fault.SessionNotFound, "no session with code %q", "NOPE"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "SessionNotFound")
	assert.Contains(t, w.Body.String(), "NOPE")
}

func TestRespondError_HidesInternalDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/sessions", nil)

	respondError(c, fault.Wrap(fault.StoreError, errors.New("pq: connection refused"), "listing sessions"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.NotContains(t, w.Body.String(), "connection refused",
		"driver detail must not leak onto the wire")
}
