package events

import "time"

// BasePayload carries the fields every event payload must have. The frontend
// routes incoming WS events by inspecting `session_code` in the JSON, so any
// payload broadcast on a session channel MUST embed this and populate it.
type BasePayload struct {
	Type        string `json:"type"`
	SessionCode string `json:"session_code"`
	Timestamp   string `json:"timestamp"` // RFC3339Nano
}

// Base builds a BasePayload for an event type and session, stamped now.
func Base(eventType, sessionCode string) BasePayload {
	return BasePayload{
		Type:        eventType,
		SessionCode: sessionCode,
		Timestamp:   time.Now().UTC().Format(time.RFC3339Nano),
	}
}

// NewTradeOfferPayload is the payload for new_trade_offer events.
// Published when a participant proposes a trade.
type NewTradeOfferPayload struct {
	BasePayload
	TransactionID string  `json:"transaction_id"` // trade UUID
	ShortID       string  `json:"short_id"`       // human-readable id, e.g. S1A2-003
	Proposer      string  `json:"proposer"`
	Recipient     string  `json:"recipient"`
	OfferType     string  `json:"offer_type"` // buy or sell, from the proposer's point of view
	Shape         string  `json:"shape"`
	Quantity      int     `json:"quantity"`
	PricePerUnit  float64 `json:"price_per_unit"`
}

// TradeOfferResponsePayload is the payload for trade_offer_response events.
// Published when the recipient accepts or rejects an offer. An accepted
// offer is followed by a trade_completed event once settlement commits.
type TradeOfferResponsePayload struct {
	BasePayload
	TransactionID string `json:"transaction_id"`
	ShortID       string `json:"short_id"`
	Responder     string `json:"responder"`
	Response      string `json:"response"` // accepted or rejected
}

// TradeCompletedPayload is the payload for trade_completed events.
// Published after money and inventory have settled.
type TradeCompletedPayload struct {
	BasePayload
	TransactionID string  `json:"transaction_id"`
	ShortID       string  `json:"short_id"`
	Buyer         string  `json:"buyer"`
	Seller        string  `json:"seller"`
	Shape         string  `json:"shape"`
	Quantity      int     `json:"quantity"`
	PricePerUnit  float64 `json:"price_per_unit"`
	TotalPrice    float64 `json:"total_price"`
}

// TradeOfferCancelledPayload is the payload for trade_offer_cancelled events.
// Published when the proposer withdraws an offer, or when settlement fails
// validation and the offer is cancelled as a side effect.
type TradeOfferCancelledPayload struct {
	BasePayload
	TransactionID string `json:"transaction_id"`
	ShortID       string `json:"short_id"`
	CancelledBy   string `json:"cancelled_by"` // participant code, or "system" for settlement failures
	Reason        string `json:"reason,omitempty"`
}

// NewMessagePayload is the payload for new_message events.
// Recipient is empty for broadcasts.
type NewMessagePayload struct {
	BasePayload
	MessageID   string `json:"message_id"`
	Sender      string `json:"sender"`
	Recipient   string `json:"recipient,omitempty"`
	MessageType string `json:"message_type"` // chat, status_update, system
	Content     string `json:"content"`
}

// VoteUpdatePayload is the payload for vote_update events.
// Votes is the full vote map after the update so a UI can patch state
// without a fresh fetch.
type VoteUpdatePayload struct {
	BasePayload
	Voter     string            `json:"voter"`
	Candidate string            `json:"candidate"`
	Votes     map[string]string `json:"votes"`
}

// TimerUpdatePayload is the payload for timer_update transient events.
// Broadcast every tick, including while paused, so clients resynchronise.
type TimerUpdatePayload struct {
	BasePayload
	Status               string `json:"experiment_status"`
	TimeRemainingSeconds int    `json:"time_remaining_seconds"`
	RoundDurationMinutes int    `json:"round_duration_minutes"`
	Active               bool   `json:"active"`
}

// SessionStatusPayload is the payload for session_status events.
// Published when a session transitions between lifecycle states.
type SessionStatusPayload struct {
	BasePayload
	Status string `json:"status"` // idle, setup_complete, session_active, session_paused, session_completed
}
