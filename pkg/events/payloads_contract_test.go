package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSessionChannelPayloads_ContainSessionCode is a contract test between
// the Go backend and the dashboard WebSocket client.
//
// The frontend routes incoming WS events by inspecting `session_code` in the
// JSON payload. ANY payload broadcast on a session-specific channel
// (session:{code}) MUST include a non-empty `session_code` field — otherwise
// the frontend silently drops it.
//
// All payload structs embed BasePayload which guarantees session_code is
// present. This test guards against:
//   - A new payload struct that forgets to embed BasePayload
//   - A call site that forgets to populate BasePayload.SessionCode
func TestSessionChannelPayloads_ContainSessionCode(t *testing.T) {
	const testSessionCode = "TCONTRACT"

	// Every payload type that flows through SessionChannel(sessionCode).
	// If you add a new payload that goes through a session channel,
	// add it here — the test will fail if session_code is missing.
	tests := []struct {
		name    string
		payload any
	}{
		{
			name: "NewTradeOfferPayload",
			payload: NewTradeOfferPayload{
				BasePayload: BasePayload{
					Type:        EventTypeNewTradeOffer,
					SessionCode: testSessionCode,
					Timestamp:   "2026-01-01T00:00:00Z",
				},
				TransactionID: "trade-1",
				ShortID:       "S1A2-001",
				Proposer:      "P1",
				Recipient:     "P2",
				OfferType:     "sell",
				Shape:         "circle",
				Quantity:      1,
				PricePerUnit:  20,
			},
		},
		{
			name: "TradeOfferResponsePayload",
			payload: TradeOfferResponsePayload{
				BasePayload: BasePayload{
					Type:        EventTypeTradeOfferResponse,
					SessionCode: testSessionCode,
					Timestamp:   "2026-01-01T00:00:00Z",
				},
				TransactionID: "trade-1",
				ShortID:       "S1A2-001",
				Responder:     "P2",
				Response:      TradeResponseAccepted,
			},
		},
		{
			name: "TradeCompletedPayload",
			payload: TradeCompletedPayload{
				BasePayload: BasePayload{
					Type:        EventTypeTradeCompleted,
					SessionCode: testSessionCode,
					Timestamp:   "2026-01-01T00:00:00Z",
				},
				TransactionID: "trade-1",
				ShortID:       "S1A2-001",
				Buyer:         "P2",
				Seller:        "P1",
				Shape:         "circle",
				Quantity:      1,
				PricePerUnit:  20,
				TotalPrice:    20,
			},
		},
		{
			name: "TradeOfferCancelledPayload",
			payload: TradeOfferCancelledPayload{
				BasePayload: BasePayload{
					Type:        EventTypeTradeOfferCancelled,
					SessionCode: testSessionCode,
					Timestamp:   "2026-01-01T00:00:00Z",
				},
				TransactionID: "trade-1",
				ShortID:       "S1A2-001",
				CancelledBy:   "P1",
			},
		},
		{
			name: "NewMessagePayload",
			payload: NewMessagePayload{
				BasePayload: BasePayload{
					Type:        EventTypeNewMessage,
					SessionCode: testSessionCode,
					Timestamp:   "2026-01-01T00:00:00Z",
				},
				MessageID:   "msg-1",
				Sender:      "P1",
				Recipient:   "P2",
				MessageType: "chat",
				Content:     "hello",
			},
		},
		{
			name: "VoteUpdatePayload",
			payload: VoteUpdatePayload{
				BasePayload: BasePayload{
					Type:        EventTypeVoteUpdate,
					SessionCode: testSessionCode,
					Timestamp:   "2026-01-01T00:00:00Z",
				},
				Voter:     "P1",
				Candidate: "Jordan",
				Votes:     map[string]string{"P1": "Jordan"},
			},
		},
		{
			name: "TimerUpdatePayload",
			payload: TimerUpdatePayload{
				BasePayload: BasePayload{
					Type:        EventTypeTimerUpdate,
					SessionCode: testSessionCode,
					Timestamp:   "2026-01-01T00:00:00Z",
				},
				Status:               "active",
				TimeRemainingSeconds: 599,
				RoundDurationMinutes: 10,
				Active:               true,
			},
		},
		{
			name: "SessionStatusPayload",
			payload: SessionStatusPayload{
				BasePayload: BasePayload{
					Type:        EventTypeSessionStatus,
					SessionCode: testSessionCode,
					Timestamp:   "2026-01-01T00:00:00Z",
				},
				Status: "session_active",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.payload)
			require.NoError(t, err, "failed to marshal %s", tt.name)

			var parsed map[string]any
			require.NoError(t, json.Unmarshal(data, &parsed), "failed to unmarshal %s", tt.name)

			code, ok := parsed["session_code"]
			assert.True(t, ok,
				"%s JSON is missing \"session_code\" field — frontend WS routing will silently drop this event", tt.name)
			assert.Equal(t, testSessionCode, code,
				"%s session_code has wrong value", tt.name)

			typ, ok := parsed["type"]
			assert.True(t, ok, "%s JSON is missing \"type\" field", tt.name)
			assert.NotEmpty(t, typ, "%s type is empty", tt.name)
		})
	}
}

// TestBase verifies the BasePayload constructor stamps all routing fields.
func TestBase(t *testing.T) {
	base := Base(EventTypeNewMessage, "T1A2B3")
	assert.Equal(t, EventTypeNewMessage, base.Type)
	assert.Equal(t, "T1A2B3", base.SessionCode)
	assert.NotEmpty(t, base.Timestamp)
}
