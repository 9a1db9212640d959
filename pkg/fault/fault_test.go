package fault

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorString(t *testing.T) {
	err := New(InsufficientFunds, "have 3, need 10")
	assert.Equal(t, "InsufficientFunds: have 3, need 10", err.Error())

	bare := &Error{Kind: StoreError}
	assert.Equal(t, "StoreError", bare.Error())
}

func TestKindOf(t *testing.T) {
	err := Errorf(InvalidShape, "no such shape %q", "hexagon")
	assert.Equal(t, InvalidShape, KindOf(err))

	// Kind survives fmt.Errorf wrapping.
	wrapped := fmt.Errorf("dispatch failed: %w", err)
	assert.Equal(t, InvalidShape, KindOf(wrapped))

	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
	assert.Equal(t, Kind(""), KindOf(nil))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(StoreError, cause, "loading participant")

	require.Error(t, err)
	assert.Equal(t, StoreError, KindOf(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "StoreError: loading participant", err.Error())
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(StoreError, nil, "ignored"))
}

func TestIs(t *testing.T) {
	err := New(NotInProposedState, "transaction already completed")
	assert.True(t, Is(err, NotInProposedState))
	assert.False(t, Is(err, AlreadyProcessed))
}
