package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/behavelab/parley/pkg/fault"
	"github.com/behavelab/parley/pkg/models"
)

func TestGuessStore_SubmitGuess(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	code := createTestSession(t, st, models.ExperimentWordGuessing, nil,
		testParticipant{code: "H1", role: models.RoleHinter},
		testParticipant{code: "H2", role: models.RoleHinter},
		testParticipant{code: "G1", role: models.RoleGuesser},
		testParticipant{code: "G2", role: models.RoleGuesser},
	)
	require.NoError(t, st.Participants.SetAssignedWords(ctx, code, "H1", []string{"apple", "boat"}))
	require.NoError(t, st.Participants.SetAssignedWords(ctx, code, "H2", []string{"cloud"}))
	activateTestSession(t, st, code)

	t.Run("word sequence follows hinters sorted by code", func(t *testing.T) {
		round, word, ok, err := st.Guesses.CurrentRound(ctx, code)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Zero(t, round)
		assert.Equal(t, "apple", word)
	})

	t.Run("wrong guess records but does not advance", func(t *testing.T) {
		g, err := st.Guesses.SubmitGuess(ctx, code, "G1", "banana")
		require.NoError(t, err)
		assert.False(t, g.Correct)
		assert.Zero(t, g.Round)

		round, word, ok, err := st.Guesses.CurrentRound(ctx, code)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Zero(t, round)
		assert.Equal(t, "apple", word)
	})

	t.Run("correct guess is case-insensitive and advances the round", func(t *testing.T) {
		g, err := st.Guesses.SubmitGuess(ctx, code, "G1", "  APPLE ")
		require.NoError(t, err)
		assert.True(t, g.Correct)

		round, word, ok, err := st.Guesses.CurrentRound(ctx, code)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 1, round)
		assert.Equal(t, "boat", word)
	})

	t.Run("hinters may not guess", func(t *testing.T) {
		_, err := st.Guesses.SubmitGuess(ctx, code, "H1", "boat")
		require.Error(t, err)
		assert.Equal(t, fault.InvalidState, fault.KindOf(err))
	})

	t.Run("scores count correct guesses per guesser", func(t *testing.T) {
		_, err := st.Guesses.SubmitGuess(ctx, code, "G2", "boat")
		require.NoError(t, err)
		_, err = st.Guesses.SubmitGuess(ctx, code, "G2", "wrong")
		require.NoError(t, err)

		scores, err := st.Guesses.Scores(ctx, code)
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"G1": 1, "G2": 1}, scores)
	})

	t.Run("sequence exhausts after the last word", func(t *testing.T) {
		_, err := st.Guesses.SubmitGuess(ctx, code, "G1", "cloud")
		require.NoError(t, err)

		_, _, ok, err := st.Guesses.CurrentRound(ctx, code)
		require.NoError(t, err)
		assert.False(t, ok)

		_, err = st.Guesses.SubmitGuess(ctx, code, "G1", "anything")
		require.Error(t, err)
		assert.Equal(t, fault.InvalidState, fault.KindOf(err))
	})

	t.Run("history keeps every attempt", func(t *testing.T) {
		history, err := st.Guesses.History(ctx, code, 0)
		require.NoError(t, err)
		assert.Len(t, history, 5)
		assert.Equal(t, "banana", history[0].GuessText)
	})
}
