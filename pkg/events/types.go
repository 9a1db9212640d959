// Package events provides real-time event delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Events fall into two classes:
//
//   - Persistent: written to the events table and broadcast via NOTIFY in a
//     single transaction. Clients that reconnect catch up from the table
//     using the db_event_id watermark carried in every NOTIFY payload.
//     Trade, message, vote, and session status changes are persistent.
//
//   - Transient: broadcast via NOTIFY only. Timer updates fire once per
//     second per active session; persisting them would bloat the table for
//     no benefit since the next tick supersedes the last.
//
// The core runtime only writes to the bus. Room semantics (who receives
// what) live in the WebSocket layer: clients subscribe to channels and the
// ConnectionManager fans incoming NOTIFY payloads out to subscribers.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	// Trade lifecycle
	EventTypeNewTradeOffer       = "new_trade_offer"
	EventTypeTradeOfferResponse  = "trade_offer_response"
	EventTypeTradeCompleted      = "trade_completed"
	EventTypeTradeOfferCancelled = "trade_offer_cancelled"

	// Messaging
	EventTypeNewMessage = "new_message"

	// HiddenProfiles voting
	EventTypeVoteUpdate = "vote_update"

	// Session lifecycle
	EventTypeSessionStatus = "session_status"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// Timer ticks — 1 Hz per active session, ephemeral.
	EventTypeTimerUpdate = "timer_update"
)

// Trade response values (used in TradeOfferResponsePayload.Response).
const (
	TradeResponseAccepted = "accepted"
	TradeResponseRejected = "rejected"
)

// GlobalSessionsChannel is the channel for session-level status events.
// The session list page subscribes to this for real-time updates.
const GlobalSessionsChannel = "sessions"

// SessionChannel returns the channel name for a specific session's events.
// Format: "session:{session_code}"
func SessionChannel(sessionCode string) string {
	return "session:" + sessionCode
}

// sessionChannelPrefix mirrors SessionChannel; ValidChannel strips it.
const sessionChannelPrefix = "session:"

// ValidChannel reports whether a client-supplied channel name is one parley
// publishes to: the global "sessions" feed or a "session:<code>" room. The
// subscribe path rejects anything else before touching LISTEN.
func ValidChannel(channel string) bool {
	if channel == GlobalSessionsChannel {
		return true
	}
	return len(channel) > len(sessionChannelPrefix) &&
		channel[:len(sessionChannelPrefix)] == sessionChannelPrefix
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "session:T1A2B3")
	LastEventID *int   `json:"last_event_id,omitempty"` // For catchup
}
