package models

import "encoding/json"

// Plan is the structured decision extracted from an LLM reply:
// {"actions": [{"type": "...", ...fields}, ...]}. An empty Actions list is a
// valid decision meaning "do nothing this tick".
type Plan struct {
	Actions []PlanAction `json:"actions"`
}

// PlanAction is one step of a plan. Fields other than "type" are kept as a
// raw bag because each action type carries its own parameters.
type PlanAction struct {
	Type string
	Args map[string]any
}

// Plan action types produced by the decide prompt.
const (
	ActionMessage           = "message"
	ActionProposeTradeOffer = "propose_trade_offer"
	ActionTradeResponse     = "trade_response"
	ActionCancelTradeOffer  = "cancel_trade_offer"
	ActionProduceShape      = "produce_shape"
	ActionFulfillOrder      = "fulfill_order"
	ActionStartProduction   = "start_next_production"
	ActionMakeInvestment    = "make_investment"
	ActionSubmitRanking     = "submit_ranking"
	ActionGetEssays         = "get_assigned_essays"
	ActionGetEssayContent   = "get_essay_content"
	ActionSubmitGuess       = "submit_guess"
	ActionSubmitVote        = "submit_vote"
)

// UnmarshalJSON splits the discriminator from the per-action fields.
func (a *PlanAction) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	a.Type, _ = raw["type"].(string)
	delete(raw, "type")
	a.Args = raw
	return nil
}

// MarshalJSON restores the flat wire shape.
func (a PlanAction) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(a.Args)+1)
	for k, v := range a.Args {
		flat[k] = v
	}
	flat["type"] = a.Type
	return json.Marshal(flat)
}

// Str reads a string argument.
func (a PlanAction) Str(key string) string {
	s, _ := a.Args[key].(string)
	return s
}

// Int reads an integer argument, coercing JSON numbers.
func (a PlanAction) Int(key string, def int) int {
	switch v := a.Args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	}
	return def
}

// Float reads a numeric argument.
func (a PlanAction) Float(key string, def float64) float64 {
	switch v := a.Args[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
	}
	return def
}
