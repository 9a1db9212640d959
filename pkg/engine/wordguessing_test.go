package engine

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/behavelab/parley/pkg/fault"
	"github.com/behavelab/parley/pkg/models"
)

func wordGuessingConfig(pool ...string) models.ExperimentConfig {
	return models.ExperimentConfig{
		models.KeyWordPool:       pool,
		models.KeyWordsPerHinter: 2,
	}
}

func TestWordGuessing_RoleBalancing(t *testing.T) {
	f, _, _ := newTestFactory(t)
	ctx := context.Background()

	eng, code := newTestSession(t, f, models.ExperimentWordGuessing, wordGuessingConfig("apple", "boat"))

	var hinters, guessers int
	for i := 0; i < 5; i++ {
		p, err := eng.AddParticipant(ctx, code, models.CreateParticipantRequest{
			ParticipantCode: fmt.Sprintf("P%d", i),
			Type:            models.ParticipantAgent,
		})
		require.NoError(t, err)
		switch p.Role {
		case models.RoleHinter:
			hinters++
		case models.RoleGuesser:
			guessers++
		default:
			t.Fatalf("unexpected role %q", p.Role)
		}
	}
	assert.LessOrEqual(t, abs(hinters-guessers), 1, "roles stay balanced")

	t.Run("explicit roles are honoured", func(t *testing.T) {
		p, err := eng.AddParticipant(ctx, code, models.CreateParticipantRequest{
			ParticipantCode: "Forced",
			Type:            models.ParticipantHuman,
			Role:            models.RoleGuesser,
		})
		require.NoError(t, err)
		assert.Equal(t, models.RoleGuesser, p.Role)
	})

	t.Run("unknown roles are rejected", func(t *testing.T) {
		_, err := eng.AddParticipant(ctx, code, models.CreateParticipantRequest{
			ParticipantCode: "Weird",
			Type:            models.ParticipantHuman,
			Role:            "referee",
		})
		require.Error(t, err)
		assert.Equal(t, fault.InvalidState, fault.KindOf(err))
	})
}

func TestWordGuessing_GuessFlow(t *testing.T) {
	f, _, _ := newTestFactory(t)
	ctx := context.Background()

	eng, code := newTestSession(t, f, models.ExperimentWordGuessing,
		wordGuessingConfig("apple", "boat", "cloud", "drum"),
		testParticipant{code: "H1", role: models.RoleHinter},
		testParticipant{code: "H2", role: models.RoleHinter},
		testParticipant{code: "G1", role: models.RoleGuesser},
	)
	startTestSession(t, eng, code)

	t.Run("start deals the pool to hinters in code order", func(t *testing.T) {
		result, err := eng.HandleAction(ctx, code, "H1", ToolGetAssignedWords, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"apple", "boat"}, result["assigned_words"])

		result, err = eng.HandleAction(ctx, code, "H2", ToolGetAssignedWords, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"cloud", "drum"}, result["assigned_words"])

		_, err = eng.HandleAction(ctx, code, "G1", ToolGetAssignedWords, nil)
		require.Error(t, err, "guessers hold no words")
		assert.Equal(t, fault.InvalidState, fault.KindOf(err))
	})

	t.Run("guesses are case-insensitive and advance the round", func(t *testing.T) {
		result, err := eng.HandleAction(ctx, code, "G1", ToolSubmitGuess, map[string]any{
			"guess_text": "banana",
		})
		require.NoError(t, err)
		assert.Equal(t, false, result["correct"])
		assert.Equal(t, 0, result["round"])

		result, err = eng.HandleAction(ctx, code, "G1", ToolSubmitGuess, map[string]any{
			"guess_text": "APPLE",
		})
		require.NoError(t, err)
		assert.Equal(t, true, result["correct"])

		result, err = eng.HandleAction(ctx, code, "G1", ToolSubmitGuess, map[string]any{
			"guess_text": "boat",
		})
		require.NoError(t, err)
		assert.Equal(t, true, result["correct"])
		assert.Equal(t, 1, result["round"])

		state, err := eng.ParticipantState(ctx, code, "G1")
		require.NoError(t, err)
		assert.Equal(t, 2, state["current_round"])
		scores, ok := state["scores"].(map[string]int)
		require.True(t, ok)
		assert.Equal(t, 2, scores["G1"])
	})

	t.Run("hinters cannot guess", func(t *testing.T) {
		_, err := eng.HandleAction(ctx, code, "H1", ToolSubmitGuess, map[string]any{
			"guess_text": "cloud",
		})
		require.Error(t, err)
		assert.Equal(t, fault.InvalidState, fault.KindOf(err))
	})

	t.Run("hinter state shows own words, guesser state does not", func(t *testing.T) {
		state, err := eng.ParticipantState(ctx, code, "H1")
		require.NoError(t, err)
		assert.Equal(t, models.RoleHinter, state["role"])
		assert.Contains(t, state, "assigned_words")

		state, err = eng.ParticipantState(ctx, code, "G1")
		require.NoError(t, err)
		assert.NotContains(t, state, "assigned_words")
	})
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
