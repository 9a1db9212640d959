package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/behavelab/parley/pkg/engine"
	"github.com/behavelab/parley/pkg/llm"
	"github.com/behavelab/parley/pkg/models"
	"github.com/behavelab/parley/pkg/tools"
)

func planOf(actions ...models.PlanAction) models.Plan {
	return models.Plan{Actions: actions}
}

func action(kind string, args map[string]any) models.PlanAction {
	return models.PlanAction{Type: kind, Args: args}
}

func TestMapPlan_TradeOfferPriceClamped(t *testing.T) {
	cfg := models.ExperimentConfig{models.KeyMinTradePrice: 15, models.KeyMaxTradePrice: 35}

	calls := MapPlan(planOf(
		action(models.ActionProposeTradeOffer, map[string]any{
			"recipient": "Bob", "offer_type": "sell", "shape": "circle",
			"quantity": 2.0, "price_per_unit": 99.0,
		}),
		action(models.ActionProposeTradeOffer, map[string]any{
			"recipient": "Bob", "offer_type": "buy", "shape": "star",
			"quantity": 1.0, "price_per_unit": 3.0,
		}),
	), cfg)

	require.Len(t, calls, 2)
	assert.Equal(t, engine.ToolCreateTradeOffer, calls[0].Name)
	assert.Equal(t, 35, calls[0].Arguments["price_per_unit"], "clamped down to the band")
	assert.Equal(t, 2, calls[0].Arguments["quantity"], "JSON float coerced to int")
	assert.Equal(t, 15, calls[1].Arguments["price_per_unit"], "clamped up to the band")
}

func TestMapPlan_DeclineBecomesReject(t *testing.T) {
	calls := MapPlan(planOf(
		action(models.ActionTradeResponse, map[string]any{
			"transaction_id": "SAB12-001", "response": "decline",
		}),
	), models.ExperimentConfig{})

	require.Len(t, calls, 1)
	assert.Equal(t, engine.ToolRespondToTradeOffer, calls[0].Name)
	assert.Equal(t, "reject", calls[0].Arguments["response"])
}

func TestMapPlan_MessageAndVote(t *testing.T) {
	calls := MapPlan(planOf(
		action(models.ActionMessage, map[string]any{"recipient": "all", "content": "hello"}),
		action(models.ActionSubmitVote, map[string]any{"candidate_name": "Candidate_A"}),
	), models.ExperimentConfig{})

	require.Len(t, calls, 2)
	assert.Equal(t, tools.ToolSendMessage, calls[0].Name)
	assert.Equal(t, "hello", calls[0].Arguments["content"])
	assert.Equal(t, engine.ToolSubmitVote, calls[1].Name)
	assert.Equal(t, "Candidate_A", calls[1].Arguments["candidate_name"])
}

func TestMapPlan_FulfillOrderIndicesCoerced(t *testing.T) {
	calls := MapPlan(planOf(
		action(models.ActionFulfillOrder, map[string]any{"order_indices": []any{0.0, 2.0, "junk"}}),
	), models.ExperimentConfig{})

	require.Len(t, calls, 1)
	assert.Equal(t, engine.ToolFulfillOrders, calls[0].Name)
	assert.Equal(t, []int{0, 2}, calls[0].Arguments["order_indices"])
}

func TestMapPlan_StartNextProduction(t *testing.T) {
	calls := MapPlan(planOf(
		action(models.ActionStartProduction, nil),
	), models.ExperimentConfig{})

	require.Len(t, calls, 1)
	assert.Equal(t, engine.ToolStartNextProduction, calls[0].Name)
	assert.Empty(t, calls[0].Arguments)
}

func TestMapPlan_InvestmentClampedToBand(t *testing.T) {
	cfg := models.ExperimentConfig{models.KeyMinTradePrice: 10, models.KeyMaxTradePrice: 30}

	calls := MapPlan(planOf(
		action(models.ActionMakeInvestment, map[string]any{
			"invest_price": 99.5, "invest_decision_type": "group",
		}),
	), cfg)

	require.Len(t, calls, 1)
	assert.Equal(t, engine.ToolMakeInvestment, calls[0].Name)
	assert.Equal(t, 30.0, calls[0].Arguments["invest_price"])
	assert.Equal(t, "group", calls[0].Arguments["invest_decision_type"])
}

func TestMapPlan_GuessTextFallback(t *testing.T) {
	calls := MapPlan(planOf(
		action(models.ActionSubmitGuess, map[string]any{"text": "apple"}),
	), models.ExperimentConfig{})

	require.Len(t, calls, 1)
	assert.Equal(t, "apple", calls[0].Arguments["guess_text"])
}

func TestMapPlan_UnknownActionsDropped(t *testing.T) {
	calls := MapPlan(planOf(
		action("dance", map[string]any{"style": "tango"}),
		action(models.ActionGetEssays, nil),
	), models.ExperimentConfig{})

	require.Len(t, calls, 1)
	assert.Equal(t, engine.ToolGetAssignedEssays, calls[0].Name)
	assert.NotNil(t, calls[0].Arguments, "empty args stay a non-nil map")
}

func TestMapPlan_EmptyPlan(t *testing.T) {
	assert.Empty(t, MapPlan(models.Plan{}, models.ExperimentConfig{}))
}

func TestMapPlan_EndToEndFromExtractedText(t *testing.T) {
	raw := "I will propose a trade.\n```json\n" +
		`{"actions":[{"type":"propose_trade_offer","recipient":"Bob","offer_type":"sell","shape":"circle","quantity":1,"price_per_unit":20}]}` +
		"\n```"
	plan := llm.ExtractPlan(raw)

	calls := MapPlan(plan, models.ExperimentConfig{})
	require.Len(t, calls, 1)
	assert.Equal(t, engine.ToolCreateTradeOffer, calls[0].Name)
	assert.Equal(t, 20, calls[0].Arguments["price_per_unit"])
}
