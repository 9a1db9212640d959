package models

// Timer experiment_status values surfaced to clients and agents.
const (
	TimerWaiting   = "waiting"
	TimerActive    = "active"
	TimerPaused    = "paused"
	TimerCompleted = "completed"
)

// TimerInfo is the timer snapshot embedded in public state and in
// timer_update events.
type TimerInfo struct {
	TimeRemaining        int    `json:"time_remaining"`
	ExperimentStatus     string `json:"experiment_status"`
	RoundDurationMinutes int    `json:"round_duration_minutes"`
}

// ParticipantSummary is a participant as seen by others. The pointer fields
// are populated only when the session's awarenessDashboard flag is on.
type ParticipantSummary struct {
	ParticipantCode string `json:"participant_code"`
	Type            string `json:"type"`
	LoginStatus     string `json:"login_status"`
	Money           *int   `json:"money,omitempty"`
	OrdersCompleted *int   `json:"orders_completed,omitempty"`
	ProductionCount *int   `json:"production_count,omitempty"`
}

// PublicState is the session view shared by every participant.
type PublicState struct {
	SessionStatus    string               `json:"session_status"`
	ExperimentType   ExperimentType       `json:"experiment_type"`
	Description      string               `json:"description"`
	Participants     []ParticipantSummary `json:"participants"`
	ExperimentConfig ExperimentConfig     `json:"experiment_config"`
	Timer            TimerInfo            `json:"timer"`
}

// GameState is the get_game_state payload.
type GameState struct {
	PrivateState       map[string]any     `json:"private_state"`
	PublicState        PublicState        `json:"public_state"`
	CommunicationLevel CommunicationLevel `json:"communication_level"`
}

// EssayRanking is one entry of a submit_ranking call.
type EssayRanking struct {
	EssayID   string `json:"essay_id"`
	Rank      int    `json:"rank"`
	Reasoning string `json:"reasoning,omitempty"`
}

// FulfillResult reports the outcome of an order fulfilment batch.
type FulfillResult struct {
	OrdersFulfilled int      `json:"orders_fulfilled"`
	ScoreGained     int      `json:"score_gained"`
	NewMoney        int      `json:"new_money"`
	NewOrders       []string `json:"new_orders"`
	NewInventory    []string `json:"new_inventory"`
}

// MessageData wraps the messages.message_data JSON column. For broadcasts it
// carries "seen_by", the participants who have seen the message; the message
// flips to read only once seen_by covers the session.
type MessageData map[string]any

// SeenBy returns the seen_by list, tolerating the []any shape JSON columns
// come back with.
func (d MessageData) SeenBy() []string {
	raw, ok := d["seen_by"].([]any)
	if !ok {
		if typed, ok := d["seen_by"].([]string); ok {
			return typed
		}
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Seen reports whether a participant already appears in seen_by.
func (d MessageData) Seen(participantCode string) bool {
	for _, c := range d.SeenBy() {
		if c == participantCode {
			return true
		}
	}
	return false
}
