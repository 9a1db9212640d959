package agent

import (
	"log/slog"

	"github.com/behavelab/parley/pkg/engine"
	"github.com/behavelab/parley/pkg/llm"
	"github.com/behavelab/parley/pkg/models"
	"github.com/behavelab/parley/pkg/tools"
)

// MapPlan translates a decide plan into tool calls. Prices are clamped into
// the session's trade band, numeric fields are coerced to the types the
// engines expect, and "decline" is normalised to "reject". Unknown action
// types are dropped with a warning; an empty plan maps to no calls, which is
// a valid decision.
func MapPlan(plan models.Plan, cfg models.ExperimentConfig) []llm.ToolCall {
	calls := make([]llm.ToolCall, 0, len(plan.Actions))
	for _, action := range plan.Actions {
		call, ok := mapAction(action, cfg)
		if !ok {
			slog.Warn("Ignoring unknown plan action", "type", action.Type)
			continue
		}
		calls = append(calls, call)
	}
	return calls
}

func mapAction(a models.PlanAction, cfg models.ExperimentConfig) (llm.ToolCall, bool) {
	switch a.Type {
	case models.ActionMessage:
		return call(tools.ToolSendMessage, map[string]any{
			"recipient": a.Str("recipient"),
			"content":   a.Str("content"),
		}), true

	case models.ActionProposeTradeOffer:
		return call(engine.ToolCreateTradeOffer, map[string]any{
			"recipient":      a.Str("recipient"),
			"offer_type":     a.Str("offer_type"),
			"shape":          a.Str("shape"),
			"quantity":       a.Int("quantity", 1),
			"price_per_unit": clamp(a.Int("price_per_unit", cfg.MinTradePrice()), cfg.MinTradePrice(), cfg.MaxTradePrice()),
		}), true

	case models.ActionTradeResponse:
		response := a.Str("response")
		if response == "decline" {
			response = "reject"
		}
		return call(engine.ToolRespondToTradeOffer, map[string]any{
			"transaction_id": a.Str("transaction_id"),
			"response":       response,
		}), true

	case models.ActionCancelTradeOffer:
		return call(engine.ToolCancelTradeOffer, map[string]any{
			"transaction_id": a.Str("transaction_id"),
		}), true

	case models.ActionProduceShape:
		return call(engine.ToolProduceShape, map[string]any{
			"shape":    a.Str("shape"),
			"quantity": a.Int("quantity", 1),
		}), true

	case models.ActionFulfillOrder:
		return call(engine.ToolFulfillOrders, map[string]any{
			"order_indices": intSlice(a.Args["order_indices"]),
		}), true

	case models.ActionStartProduction:
		return call(engine.ToolStartNextProduction, nil), true

	case models.ActionMakeInvestment:
		price := a.Float("invest_price", float64(cfg.MinTradePrice()))
		return call(engine.ToolMakeInvestment, map[string]any{
			"invest_price":         clampFloat(price, float64(cfg.MinTradePrice()), float64(cfg.MaxTradePrice())),
			"invest_decision_type": a.Str("invest_decision_type"),
		}), true

	case models.ActionSubmitRanking:
		return call(engine.ToolSubmitRanking, map[string]any{
			"rankings": a.Args["rankings"],
		}), true

	case models.ActionGetEssays:
		return call(engine.ToolGetAssignedEssays, nil), true

	case models.ActionGetEssayContent:
		return call(engine.ToolGetEssayContent, map[string]any{
			"essay_id": a.Str("essay_id"),
		}), true

	case models.ActionSubmitGuess:
		text := a.Str("guess_text")
		if text == "" {
			text = a.Str("text")
		}
		return call(engine.ToolSubmitGuess, map[string]any{
			"guess_text": text,
		}), true

	case models.ActionSubmitVote:
		return call(engine.ToolSubmitVote, map[string]any{
			"candidate_name": a.Str("candidate_name"),
		}), true
	}
	return llm.ToolCall{}, false
}

func call(name string, args map[string]any) llm.ToolCall {
	if args == nil {
		args = map[string]any{}
	}
	return llm.ToolCall{Name: name, Arguments: args}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// intSlice coerces a JSON array of numbers into ints, dropping anything
// non-numeric.
func intSlice(v any) []int {
	list, ok := v.([]any)
	if !ok {
		if typed, isTyped := v.([]int); isTyped {
			return typed
		}
		return nil
	}
	out := make([]int, 0, len(list))
	for _, item := range list {
		switch n := item.(type) {
		case float64:
			out = append(out, int(n))
		case int:
			out = append(out, n)
		}
	}
	return out
}
