package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/behavelab/parley/ent"
	"github.com/behavelab/parley/pkg/models"
)

func shapeFactoryState() *models.GameState {
	return &models.GameState{
		PrivateState: map[string]any{
			"specialty_shape":  "circle",
			"money":            300,
			"inventory":        []string{"circle", "circle"},
			"orders":           []string{"square,star"},
			"orders_completed": 0,
			"production_queue": []map[string]any{
				{"status": "in_progress", "quantity": 1, "shape": "circle"},
			},
			"pending_offers_sent":     []map[string]any{},
			"pending_offers_received": []map[string]any{},
			"recent_trades":           []map[string]any{},
		},
		PublicState: models.PublicState{
			Description: "a shape production and trading game",
			Participants: []models.ParticipantSummary{
				{ParticipantCode: "Alice"}, {ParticipantCode: "Bob"}, {ParticipantCode: "Carol"},
			},
			Timer: models.TimerInfo{TimeRemaining: 1200, ExperimentStatus: models.TimerWaiting},
		},
		CommunicationLevel: models.CommChat,
	}
}

func TestBuildSystemPrompt_ShapeFactory(t *testing.T) {
	b := NewPromptBuilder()
	cfg := models.ExperimentConfig{
		models.KeyStartingMoney: 300, models.KeySpecialtyCost: 10, models.KeyRegularCost: 25,
		models.KeyMinTradePrice: 15, models.KeyMaxTradePrice: 35,
	}

	prompt := b.BuildSystemPrompt(SystemInput{
		ParticipantCode: "Alice",
		Kind:            models.ExperimentShapeFactory,
		Config:          cfg,
		State:           shapeFactoryState(),
	})

	assert.Contains(t, prompt, "You are participant Alice")
	assert.Contains(t, prompt, "a shape production and trading game")
	assert.Contains(t, prompt, "Your specialty shape is circle")
	assert.Contains(t, prompt, "costs 10 per unit; any other shape costs 25")
	assert.Contains(t, prompt, "stay within [15, 35]")
	assert.Contains(t, prompt, "Bob, Carol")
	assert.NotContains(t, prompt, "Alice, Bob", "own code is not in the others list")
	assert.Contains(t, prompt, "Time remaining in the experiment: 20m 00s")
	assert.Contains(t, prompt, "direct messages only")
	assert.NotContains(t, prompt, `{"actions"`, "plan format only in JSON mode")
}

func TestBuildSystemPrompt_PersonalityAndPlanMode(t *testing.T) {
	b := NewPromptBuilder()
	cfg := models.ExperimentConfig{
		models.KeyPersonalities: map[string]any{
			"Alice": map[string]any{"name": "The Haggler", "description": "never accepts a first offer"},
		},
	}

	prompt := b.BuildSystemPrompt(SystemInput{
		ParticipantCode: "Alice",
		Kind:            models.ExperimentDayTrader,
		Config:          cfg,
		State:           shapeFactoryState(),
		PlanJSON:        true,
	})

	assert.Contains(t, prompt, `Your persona is "The Haggler": never accepts a first offer`)
	assert.Contains(t, prompt, `{"actions": [{"type": "<action>"`)
	assert.Contains(t, prompt, "An empty actions list means you choose to wait")
}

func TestBuildSystemPrompt_CommunicationRules(t *testing.T) {
	b := NewPromptBuilder()
	state := shapeFactoryState()

	state.CommunicationLevel = models.CommBroadcast
	prompt := b.BuildSystemPrompt(SystemInput{ParticipantCode: "Alice", Kind: models.ExperimentHiddenProfiles, Config: models.ExperimentConfig{}, State: state})
	assert.Contains(t, prompt, "delivered to all participants")

	state.CommunicationLevel = models.CommNoChat
	prompt = b.BuildSystemPrompt(SystemInput{ParticipantCode: "Alice", Kind: models.ExperimentHiddenProfiles, Config: models.ExperimentConfig{}, State: state})
	assert.Contains(t, prompt, "Communication: disabled")
}

func TestBuildSystemPrompt_WordGuessingRoles(t *testing.T) {
	b := NewPromptBuilder()
	state := shapeFactoryState()
	state.PrivateState = map[string]any{
		"role":           models.RoleHinter,
		"assigned_words": []string{"apple", "boat"},
	}

	prompt := b.BuildSystemPrompt(SystemInput{ParticipantCode: "H1", Kind: models.ExperimentWordGuessing, Config: models.ExperimentConfig{}, State: state})
	assert.Contains(t, prompt, "You are a HINTER")
	assert.Contains(t, prompt, "apple, boat")

	state.PrivateState = map[string]any{
		"role":                 models.RoleGuesser,
		"hinter_participants":  []string{"H1", "H2"},
		"guesser_participants": []string{"G1"},
	}
	prompt = b.BuildSystemPrompt(SystemInput{ParticipantCode: "G1", Kind: models.ExperimentWordGuessing, Config: models.ExperimentConfig{}, State: state})
	assert.Contains(t, prompt, "You are a GUESSER")
	assert.Contains(t, prompt, "Hinters: H1, H2")
	assert.NotContains(t, prompt, "apple")
}

func TestBuildSystemPrompt_HiddenProfilesDocument(t *testing.T) {
	b := NewPromptBuilder()
	state := shapeFactoryState()
	state.PrivateState = map[string]any{
		"assigned_doc":   "Candidate_A once rescued a cat.",
		"candidate_list": []string{"Candidate_A", "Candidate_B"},
	}

	prompt := b.BuildSystemPrompt(SystemInput{ParticipantCode: "P1", Kind: models.ExperimentHiddenProfiles, Config: models.ExperimentConfig{}, State: state})
	assert.Contains(t, prompt, "choose between candidates: Candidate_A, Candidate_B")
	assert.Contains(t, prompt, "<<<DOCUMENT\nCandidate_A once rescued a cat.\nDOCUMENT>>>")
	assert.Contains(t, prompt, "a later vote replaces the")
}

func TestBuildStatusUpdate_ShapeFactorySections(t *testing.T) {
	b := NewPromptBuilder()
	state := shapeFactoryState()
	state.PrivateState["pending_offers_received"] = []map[string]any{{
		"short_id": "SAB12-002", "offer_type": "sell", "quantity": 20, "shape": "star",
		"price_per_unit": 20, "proposer": "Bob", "buyer": "Alice", "seller": "Bob",
	}}

	alice := "Alice"
	update := b.BuildStatusUpdate(StatusInput{
		ParticipantCode: "Alice",
		Kind:            models.ExperimentShapeFactory,
		State:           state,
		Timer:           models.TimerInfo{TimeRemaining: 90, ExperimentStatus: models.TimerActive},
		Unread: []*ent.Message{
			{Sender: "Bob", Recipient: &alice, Content: "want to trade?"},
		},
		Failures: []string{"produce_shape: InsufficientFunds, cost 25 exceeds money 3"},
	})

	assert.Contains(t, update, "STATUS UPDATE")
	assert.Contains(t, update, "Time remaining: 1m 30s (status: active)", "authoritative timer wins over the state's 20m")
	assert.Contains(t, update, "Money: 300")
	assert.Contains(t, update, "Inventory: 2x circle")
	assert.Contains(t, update, "[0] square,star")
	assert.Contains(t, update, "WARNING: accepting needs 400 money, you have 300")
	assert.Contains(t, update, "From Bob:\n    want to trade?")
	assert.Contains(t, update, "InsufficientFunds")
	assert.NotContains(t, update, "VOTE REQUIRED")

	// Deterministic: same input, same text.
	again := b.BuildStatusUpdate(StatusInput{
		ParticipantCode: "Alice",
		Kind:            models.ExperimentShapeFactory,
		State:           state,
		Timer:           models.TimerInfo{TimeRemaining: 90, ExperimentStatus: models.TimerActive},
		Unread: []*ent.Message{
			{Sender: "Bob", Recipient: &alice, Content: "want to trade?"},
		},
		Failures: []string{"produce_shape: InsufficientFunds, cost 25 exceeds money 3"},
	})
	assert.Equal(t, update, again)
}

func TestBuildStatusUpdate_VotePrompt(t *testing.T) {
	b := NewPromptBuilder()
	state := shapeFactoryState()
	state.PrivateState = map[string]any{
		"candidate_list": []string{"Candidate_A", "Candidate_B"},
		"public_info":    "Both candidates applied for the same grant.",
	}

	update := b.BuildStatusUpdate(StatusInput{
		ParticipantCode: "P1",
		Kind:            models.ExperimentHiddenProfiles,
		State:           state,
		Timer:           models.TimerInfo{TimeRemaining: 5, ExperimentStatus: models.TimerActive},
		VotePromptDue:   true,
	})

	assert.Contains(t, update, "*** VOTE REQUIRED ***")
	assert.Contains(t, update, "submit_vote now with one of: Candidate_A, Candidate_B")
	assert.Contains(t, update, "Shared public information:")
	assert.Contains(t, update, "You have not voted yet")

	state.PrivateState["my_vote"] = "Candidate_B"
	update = b.BuildStatusUpdate(StatusInput{
		ParticipantCode: "P1", Kind: models.ExperimentHiddenProfiles, State: state,
		Timer: models.TimerInfo{TimeRemaining: 5, ExperimentStatus: models.TimerActive},
	})
	assert.Contains(t, update, "Your current vote: Candidate_B")
}

func TestBuildStatusUpdate_DayTraderHistory(t *testing.T) {
	b := NewPromptBuilder()
	state := shapeFactoryState()
	state.PrivateState = map[string]any{
		"money": 274, "starting_money": 300,
		"investment_history": []map[string]any{
			{"price": 25.5, "decision_type": "group", "timestamp": "2026-08-25T09:00:00Z"},
		},
	}

	update := b.BuildStatusUpdate(StatusInput{
		ParticipantCode: "T1", Kind: models.ExperimentDayTrader, State: state,
		Timer: models.TimerInfo{TimeRemaining: 60, ExperimentStatus: models.TimerActive},
	})

	assert.Contains(t, update, "Money: 274 (started with 300)")
	assert.Contains(t, update, "25.50 (group) at 2026-08-25T09:00:00Z")
}

func TestBuildFinalVotePrompt(t *testing.T) {
	b := NewPromptBuilder()
	prompt := b.BuildFinalVotePrompt([]string{"Candidate_A", "Candidate_B"})
	assert.Contains(t, prompt, "This is your last turn")
	assert.Contains(t, prompt, "Candidate_A, Candidate_B")
	assert.True(t, strings.Contains(prompt, "submit_vote"))
}
