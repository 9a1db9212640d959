package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/behavelab/parley/pkg/fault"
	"github.com/behavelab/parley/pkg/models"
)

func TestEssayRanking_SubmitRanking(t *testing.T) {
	f, st, _ := newTestFactory(t)
	ctx := context.Background()

	eng, code := newTestSession(t, f, models.ExperimentEssayRanking, nil,
		testParticipant{code: "Alice"},
	)
	first, err := st.Rankings.AssignEssay(ctx, code, "", "On Cities", "Dense urban cores reduce commute emissions.", "cities.pdf")
	require.NoError(t, err)
	second, err := st.Rankings.AssignEssay(ctx, code, "", "On Rivers", "River systems shaped early trade networks.", "rivers.pdf")
	require.NoError(t, err)
	startTestSession(t, eng, code)

	t.Run("assigned essays are listed without their body", func(t *testing.T) {
		result, err := eng.HandleAction(ctx, code, "Alice", ToolGetAssignedEssays, nil)
		require.NoError(t, err)
		essays, ok := result["essays"].([]map[string]any)
		require.True(t, ok)
		require.Len(t, essays, 2)
		assert.Equal(t, "On Cities", essays[0]["title"])
		assert.NotContains(t, essays[0], "content")
	})

	t.Run("content is fetched per essay", func(t *testing.T) {
		result, err := eng.HandleAction(ctx, code, "Alice", ToolGetEssayContent, map[string]any{
			"essay_id": first.ID,
		})
		require.NoError(t, err)
		essay, ok := result["essay"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Dense urban cores reduce commute emissions.", essay["content"])
		assert.Equal(t, 6, essay["word_count"])

		_, err = eng.HandleAction(ctx, code, "Alice", ToolGetEssayContent, map[string]any{})
		require.Error(t, err, "essay_id is required")
	})

	t.Run("submission merges into current rankings", func(t *testing.T) {
		result, err := eng.HandleAction(ctx, code, "Alice", ToolSubmitRanking, map[string]any{
			"rankings": []any{
				map[string]any{"essay_id": first.ID, "rank": 1.0, "reasoning": "tight argument"},
				map[string]any{"essay_id": second.ID, "rank": 2.0},
			},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, result["submission_id"])
		assert.Equal(t, 2, result["rankings_count"])

		// Resubmitting one essay leaves the other untouched.
		result, err = eng.HandleAction(ctx, code, "Alice", ToolSubmitRanking, map[string]any{
			"rankings": []any{
				map[string]any{"essay_id": second.ID, "rank": 1.0, "reasoning": "changed my mind"},
			},
		})
		require.NoError(t, err)
		merged, ok := result["current_rankings"].(map[string]interface{})
		require.True(t, ok)
		assert.Len(t, merged, 2)

		state, err := eng.ParticipantState(ctx, code, "Alice")
		require.NoError(t, err)
		assert.Len(t, state["current_rankings"], 2)
	})

	t.Run("malformed rankings payload is rejected", func(t *testing.T) {
		_, err := eng.HandleAction(ctx, code, "Alice", ToolSubmitRanking, map[string]any{
			"rankings": "first one",
		})
		require.Error(t, err)
		assert.Equal(t, fault.InvalidState, fault.KindOf(err))
	})
}
