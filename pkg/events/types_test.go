package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionChannel(t *testing.T) {
	tests := []struct {
		name        string
		sessionCode string
		want        string
	}{
		{
			name:        "formats session channel correctly",
			sessionCode: "T1A2B3",
			want:        "session:T1A2B3",
		},
		{
			name:        "handles UUID format",
			sessionCode: "550e8400-e29b-41d4-a716-446655440000",
			want:        "session:550e8400-e29b-41d4-a716-446655440000",
		},
		{
			name:        "handles empty string",
			sessionCode: "",
			want:        "session:",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SessionChannel(tt.sessionCode)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEventTypeConstants(t *testing.T) {
	// Verify event types are non-empty and distinct
	types := []string{
		EventTypeNewTradeOffer,
		EventTypeTradeOfferResponse,
		EventTypeTradeCompleted,
		EventTypeTradeOfferCancelled,
		EventTypeNewMessage,
		EventTypeVoteUpdate,
		EventTypeSessionStatus,
		EventTypeTimerUpdate,
	}

	seen := make(map[string]bool)
	for _, typ := range types {
		assert.NotEmpty(t, typ, "event type should not be empty")
		assert.False(t, seen[typ], "duplicate event type: %s", typ)
		seen[typ] = true
	}
}

func TestTradeResponseConstants(t *testing.T) {
	assert.Equal(t, "accepted", TradeResponseAccepted)
	assert.Equal(t, "rejected", TradeResponseRejected)
	assert.NotEqual(t, TradeResponseAccepted, TradeResponseRejected)
}

func TestGlobalSessionsChannel(t *testing.T) {
	assert.Equal(t, "sessions", GlobalSessionsChannel)
}

func TestValidChannel(t *testing.T) {
	tests := []struct {
		channel string
		want    bool
	}{
		{"sessions", true},
		{"session:T1A2B3", true},
		{SessionChannel("E0F1A2B"), true},
		{"session:", false}, // empty session code
		{"session", false},
		{"participants:P1", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidChannel(tt.channel), "channel %q", tt.channel)
	}
}
