package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/behavelab/parley/pkg/fault"
	"github.com/behavelab/parley/pkg/models"
)

func TestRankingStore_SubmitRanking(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	code := createTestSession(t, st, models.ExperimentEssayRanking, nil,
		testParticipant{code: "R1"},
		testParticipant{code: "R2"},
	)

	shared, err := st.Rankings.AssignEssay(ctx, code, "", "On Cities", "Dense urban cores reduce commute emissions.", "cities.pdf")
	require.NoError(t, err)
	personal, err := st.Rankings.AssignEssay(ctx, code, "R1", "On Rivers", "River systems shaped early trade networks.", "rivers.pdf")
	require.NoError(t, err)

	activateTestSession(t, st, code)

	t.Run("assignment visibility is scoped", func(t *testing.T) {
		essays, err := st.Rankings.AssignedEssays(ctx, code, "R1")
		require.NoError(t, err)
		assert.Len(t, essays, 2)

		essays, err = st.Rankings.AssignedEssays(ctx, code, "R2")
		require.NoError(t, err)
		require.Len(t, essays, 1)
		assert.Equal(t, shared.ID, essays[0].ID)

		_, err = st.Rankings.GetEssay(ctx, code, "R2", personal.ID)
		require.Error(t, err)
		assert.Equal(t, fault.InvalidState, fault.KindOf(err))
	})

	t.Run("word count comes from extracted text", func(t *testing.T) {
		essay, err := st.Rankings.GetEssay(ctx, code, "R1", shared.ID)
		require.NoError(t, err)
		assert.Equal(t, 6, essay.WordCount)
	})

	t.Run("partial submissions merge per essay", func(t *testing.T) {
		sub, merged, err := st.Rankings.SubmitRanking(ctx, code, "R1", []models.EssayRanking{
			{EssayID: shared.ID, Rank: 1, Reasoning: "clear argument"},
			{EssayID: personal.ID, Rank: 2, Reasoning: "weaker sourcing"},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, sub.ID)
		assert.Len(t, merged, 2)

		_, merged, err = st.Rankings.SubmitRanking(ctx, code, "R1", []models.EssayRanking{
			{EssayID: personal.ID, Rank: 1, Reasoning: "changed my mind"},
		})
		require.NoError(t, err)
		assert.Len(t, merged, 2, "resubmission overwrites, other essays keep their ranks")

		entry, ok := merged[personal.ID].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, 1, entry["rank"])
		assert.Equal(t, "changed my mind", entry["reasoning"])

		subs, err := st.Rankings.Submissions(ctx, code, "R1")
		require.NoError(t, err)
		assert.Len(t, subs, 2, "every raw submission is kept")
	})

	t.Run("rejects duplicate ranks and foreign essays", func(t *testing.T) {
		_, _, err := st.Rankings.SubmitRanking(ctx, code, "R2", []models.EssayRanking{
			{EssayID: shared.ID, Rank: 1},
			{EssayID: shared.ID, Rank: 2},
		})
		require.Error(t, err)

		_, _, err = st.Rankings.SubmitRanking(ctx, code, "R2", []models.EssayRanking{
			{EssayID: personal.ID, Rank: 1},
		})
		require.Error(t, err, "essay assigned to someone else")

		_, _, err = st.Rankings.SubmitRanking(ctx, code, "R2", nil)
		require.Error(t, err)
	})
}
