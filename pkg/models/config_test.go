package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExperimentConfigDefaults(t *testing.T) {
	cfg := ExperimentConfig{}

	assert.Equal(t, DefaultRoundDurationMinutes, cfg.RoundDurationMinutes())
	assert.Equal(t, CommChat, cfg.CommunicationLevel())
	assert.False(t, cfg.AwarenessDashboard())
	assert.Equal(t, 30*time.Second, cfg.PerceptionWindow())
	assert.Equal(t, DefaultStartingMoney, cfg.StartingMoney())
	assert.Equal(t, DefaultMaxProductionNum, cfg.MaxProductionNum())
	assert.Equal(t, 5*time.Second, cfg.ProductionTime())
}

func TestExperimentConfigJSONNumbers(t *testing.T) {
	// Values round-tripped through JSON arrive as float64.
	raw := `{"startingMoney": 300, "specialtyCost": 10, "minTradePrice": 15,
		"communicationLevel": "broadcast", "awarenessDashboard": true,
		"agentPerceptionTimeWindow": 12}`

	var cfg ExperimentConfig
	require.NoError(t, json.Unmarshal([]byte(raw), &cfg))

	assert.Equal(t, 300, cfg.StartingMoney())
	assert.Equal(t, 10, cfg.SpecialtyCost())
	assert.Equal(t, 15, cfg.MinTradePrice())
	assert.Equal(t, CommBroadcast, cfg.CommunicationLevel())
	assert.True(t, cfg.AwarenessDashboard())
	assert.Equal(t, 12*time.Second, cfg.PerceptionWindow())
}

func TestExperimentConfigHiddenProfiles(t *testing.T) {
	cfg := ExperimentConfig{
		KeyHiddenProfiles: map[string]any{
			KeyVotes:       map[string]any{"A1": "Candidate_X"},
			KeyInitiatives: map[string]any{"A1": "active", "A2": "passive"},
			KeyPublicInfo:  "shared brief",
			KeyAssignedDocs: map[string]any{
				"A1": "doc one",
				"A2": "doc two",
			},
			KeyCandidates: []any{"Candidate_X", "Candidate_Y"},
		},
	}

	assert.Equal(t, map[string]string{"A1": "Candidate_X"}, cfg.Votes())
	assert.Equal(t, "passive", cfg.Initiatives()["A2"])
	assert.Equal(t, "shared brief", cfg.PublicInfo())
	assert.Equal(t, "doc two", cfg.AssignedDoc("A2"))
	assert.Equal(t, []string{"Candidate_X", "Candidate_Y"}, cfg.CandidateNames())
}

func TestExperimentTypeValid(t *testing.T) {
	assert.True(t, ExperimentShapeFactory.Valid())
	assert.True(t, ExperimentType("custom_negotiation").Valid())
	assert.False(t, ExperimentType("custom_").Valid())
	assert.False(t, ExperimentType("poker").Valid())
}

func TestPlanActionRoundTrip(t *testing.T) {
	raw := `{"actions":[
		{"type":"message","recipient":"Bob","content":"hi"},
		{"type":"propose_trade_offer","recipient":"Bob","offer_type":"sell","shape":"circle","price_per_unit":20}
	]}`

	var plan Plan
	require.NoError(t, json.Unmarshal([]byte(raw), &plan))
	require.Len(t, plan.Actions, 2)

	assert.Equal(t, ActionMessage, plan.Actions[0].Type)
	assert.Equal(t, "Bob", plan.Actions[0].Str("recipient"))
	assert.Equal(t, ActionProposeTradeOffer, plan.Actions[1].Type)
	assert.Equal(t, 20, plan.Actions[1].Int("price_per_unit", 0))
	assert.Equal(t, 20.0, plan.Actions[1].Float("price_per_unit", 0))

	// Marshal restores the flat shape with the discriminator inline.
	out, err := json.Marshal(plan.Actions[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"message","recipient":"Bob","content":"hi"}`, string(out))
}
