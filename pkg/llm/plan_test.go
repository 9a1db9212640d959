package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/behavelab/parley/pkg/models"
)

func TestExtractPlan(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		actions []string
	}{
		{
			name:    "fenced json block",
			text:    "Here is my plan:\n```json\n{\"actions\": [{\"type\": \"message\", \"recipient\": \"Bob\", \"content\": \"hi\"}]}\n```\nDone.",
			actions: []string{models.ActionMessage},
		},
		{
			name:    "bare fence without language tag",
			text:    "```\n{\"actions\": [{\"type\": \"produce_shape\", \"shape\": \"circle\", \"quantity\": 2}]}\n```",
			actions: []string{models.ActionProduceShape},
		},
		{
			name:    "naked object in prose",
			text:    `I will trade. {"actions": [{"type": "propose_trade_offer", "recipient": "Bob", "offer_type": "sell", "shape": "circle", "quantity": 1, "price_per_unit": 20}]} That's all.`,
			actions: []string{models.ActionProposeTradeOffer},
		},
		{
			name:    "braces inside string values",
			text:    `{"actions": [{"type": "message", "recipient": "all", "content": "use {curly} braces"}]}`,
			actions: []string{models.ActionMessage},
		},
		{
			name: "multiple actions preserved in order",
			text: `{"actions": [{"type": "produce_shape", "shape": "circle", "quantity": 1}, {"type": "message", "recipient": "Bob", "content": "made one"}]}`,
			actions: []string{
				models.ActionProduceShape,
				models.ActionMessage,
			},
		},
		{
			name:    "empty actions list",
			text:    `{"actions": []}`,
			actions: nil,
		},
		{
			name:    "no json at all",
			text:    "I think I will wait this round and observe.",
			actions: nil,
		},
		{
			name:    "malformed json",
			text:    "```json\n{\"actions\": [{\"type\": \"message\",]}\n```",
			actions: nil,
		},
		{
			name:    "json without actions key ignored",
			text:    `{"transaction_id": "abc", "status": "completed"}`,
			actions: nil,
		},
		{
			name:    "unterminated fence falls back to bracket match",
			text:    "```json\n{\"actions\": [{\"type\": \"submit_vote\", \"candidate_name\": \"Candidate_X\"}]}",
			actions: []string{models.ActionSubmitVote},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := ExtractPlan(tt.text)
			require.Len(t, plan.Actions, len(tt.actions))
			for i, want := range tt.actions {
				assert.Equal(t, want, plan.Actions[i].Type)
			}
		})
	}
}

func TestExtractPlanActionFields(t *testing.T) {
	plan := ExtractPlan(`{"actions": [{"type": "propose_trade_offer", "recipient": "Bob", "shape": "circle", "quantity": 2, "price_per_unit": 20.0}]}`)
	require.Len(t, plan.Actions, 1)

	a := plan.Actions[0]
	assert.Equal(t, models.ActionProposeTradeOffer, a.Type)
	assert.Equal(t, "Bob", a.Str("recipient"))
	assert.Equal(t, "circle", a.Str("shape"))
	assert.Equal(t, 2, a.Int("quantity", 0))
	assert.Equal(t, 20.0, a.Float("price_per_unit", 0))
}

func TestExtractPlanPrefersFencedBlock(t *testing.T) {
	// A fenced plan wins over a stray object earlier in the text.
	text := `Earlier I did {"actions": [{"type": "message", "recipient": "A", "content": "old"}]} but now:
` + "```json\n" + `{"actions": [{"type": "message", "recipient": "B", "content": "new"}]}` + "\n```"

	plan := ExtractPlan(text)
	require.Len(t, plan.Actions, 1)
	assert.Equal(t, "B", plan.Actions[0].Str("recipient"))
}
