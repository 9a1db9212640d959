package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(NewMessagePayload{
			BasePayload: BasePayload{
				Type:        EventTypeNewMessage,
				SessionCode: "T1A2B3",
			},
			MessageID: "msg-1",
			Sender:    "P1",
			Content:   "hello",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeNewMessage)
		assert.Contains(t, result, "T1A2B3")
		assert.Contains(t, result, "hello")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		payload, _ := json.Marshal(NewMessagePayload{
			BasePayload: BasePayload{
				Type:        EventTypeNewMessage,
				SessionCode: "T1A2B3",
			},
			MessageID: "msg-2",
			Sender:    "P1",
			Content:   strings.Repeat("a", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, "truncated")
		assert.Less(t, len(result), 8000)
	})

	t.Run("truncated payload preserves routing fields", func(t *testing.T) {
		payload, _ := json.Marshal(NewMessagePayload{
			BasePayload: BasePayload{
				Type:        EventTypeNewMessage,
				SessionCode: "T9Z8Y7",
			},
			MessageID: "msg-3",
			Sender:    "P2",
			Content:   strings.Repeat("x", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)

		assert.Contains(t, result, EventTypeNewMessage)
		assert.Contains(t, result, "T9Z8Y7")
		assert.Contains(t, result, `"truncated":true`)
		assert.NotContains(t, result, "xxxx")
	})

	t.Run("boundary: payload just under limit is not truncated", func(t *testing.T) {
		// Build a payload whose JSON is just under 7900 bytes.
		// Marshal an empty struct first to measure the overhead of the struct's
		// fixed fields (keys, quotes, separators); the 20-byte safety margin
		// keeps the test from flipping if fields are added later.
		base, _ := json.Marshal(NewMessagePayload{
			BasePayload: BasePayload{Type: "t"},
		})
		contentSize := 7900 - len(base) - 20
		payload, _ := json.Marshal(NewMessagePayload{
			BasePayload: BasePayload{Type: "t"},
			Content:     strings.Repeat("b", contentSize),
		})
		require.LessOrEqual(t, len(payload), 7900, "test payload should be under limit")

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := truncateIfNeeded("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	t.Run("injects db_event_id into normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(NewTradeOfferPayload{
			BasePayload: BasePayload{
				Type:        EventTypeNewTradeOffer,
				SessionCode: "T1A2B3",
			},
			TransactionID: "trade-1",
			ShortID:       "S1A2-001",
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "S1A2-001")
	})

	t.Run("truncated payload preserves db_event_id", func(t *testing.T) {
		payload, _ := json.Marshal(NewMessagePayload{
			BasePayload: BasePayload{
				Type:        EventTypeNewMessage,
				SessionCode: "T9Z8Y7",
			},
			MessageID: "msg-4",
			Content:   strings.Repeat("x", 8000),
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "T9Z8Y7")
	})
}

func TestNewEventPublisher(t *testing.T) {
	publisher := NewEventPublisher(nil)
	assert.NotNil(t, publisher)
	assert.Nil(t, publisher.db)
}

func TestTimerUpdatePayload_JSON(t *testing.T) {
	payload := TimerUpdatePayload{
		BasePayload: BasePayload{
			Type:        EventTypeTimerUpdate,
			SessionCode: "T1A2B3",
			Timestamp:   "2026-02-10T12:00:00Z",
		},
		Status:               "active",
		TimeRemainingSeconds: 540,
		RoundDurationMinutes: 10,
		Active:               true,
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded TimerUpdatePayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeTimerUpdate, decoded.Type)
	assert.Equal(t, "T1A2B3", decoded.SessionCode)
	assert.Equal(t, "active", decoded.Status)
	assert.Equal(t, 540, decoded.TimeRemainingSeconds)
	assert.Equal(t, 10, decoded.RoundDurationMinutes)
	assert.True(t, decoded.Active)
}

func TestNewMessagePayload_BroadcastOmitsRecipient(t *testing.T) {
	payload := NewMessagePayload{
		BasePayload: BasePayload{
			Type:        EventTypeNewMessage,
			SessionCode: "T1A2B3",
			Timestamp:   "2026-02-10T12:00:00Z",
		},
		MessageID:   "msg-5",
		Sender:      "P1",
		MessageType: "chat",
		Content:     "hello everyone",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	// Broadcasts carry no recipient; the field must be omitted, not empty.
	assert.NotContains(t, string(data), "recipient")
}
