package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/behavelab/parley/pkg/events"
	"github.com/behavelab/parley/pkg/fault"
	"github.com/behavelab/parley/pkg/models"
)

func TestHiddenProfiles_Voting(t *testing.T) {
	f, st, _ := newTestFactory(t)
	ctx := context.Background()

	eng, code := newTestSession(t, f, models.ExperimentHiddenProfiles, nil,
		testParticipant{code: "A1"},
		testParticipant{code: "A2"},
	)
	require.NoError(t, st.Sessions.SetCandidates(ctx, code, []string{"Candidate_X", "Candidate_Y"}))
	startTestSession(t, eng, code)

	t.Run("vote is stored and broadcast", func(t *testing.T) {
		result, err := eng.HandleAction(ctx, code, "A1", ToolSubmitVote, map[string]any{
			"candidate_name": "Candidate_X",
		})
		require.NoError(t, err)
		assert.Equal(t, "Candidate_X", result["candidate_name"])

		votes, ok := result["votes"].(map[string]string)
		require.True(t, ok)
		assert.Equal(t, map[string]string{"A1": "Candidate_X"}, votes)

		evts, err := st.Events.EventsSince(ctx, events.SessionChannel(code), 0, 50)
		require.NoError(t, err)
		var found bool
		for _, e := range evts {
			if e.Payload["type"] == events.EventTypeVoteUpdate {
				found = true
			}
		}
		assert.True(t, found, "vote_update event published")
	})

	t.Run("votes are overwritable", func(t *testing.T) {
		_, err := eng.HandleAction(ctx, code, "A1", ToolSubmitVote, map[string]any{
			"candidate_name": "Candidate_Y",
		})
		require.NoError(t, err)

		state, err := eng.ParticipantState(ctx, code, "A1")
		require.NoError(t, err)
		assert.Equal(t, true, state["has_voted"])
		assert.Equal(t, "Candidate_Y", state["my_vote"])
	})

	t.Run("one vote entry per participant", func(t *testing.T) {
		_, err := eng.HandleAction(ctx, code, "A2", ToolSubmitVote, map[string]any{
			"candidate_name": "Candidate_X",
		})
		require.NoError(t, err)

		sess, err := st.Sessions.GetByCode(ctx, code)
		require.NoError(t, err)
		votes := models.ExperimentConfig(sess.ExperimentConfig).Votes()
		assert.Equal(t, map[string]string{"A1": "Candidate_Y", "A2": "Candidate_X"}, votes)
	})

	t.Run("off-ballot candidates are rejected", func(t *testing.T) {
		_, err := eng.HandleAction(ctx, code, "A1", ToolSubmitVote, map[string]any{
			"candidate_name": "Candidate_Z",
		})
		require.Error(t, err)
		assert.Equal(t, fault.InvalidState, fault.KindOf(err))
	})

	t.Run("candidate name is required", func(t *testing.T) {
		_, err := eng.HandleAction(ctx, code, "A1", ToolSubmitVote, nil)
		require.Error(t, err)
		assert.Equal(t, fault.InvalidState, fault.KindOf(err))
	})
}

func TestHiddenProfiles_ReadingPhase(t *testing.T) {
	f, st, _ := newTestFactory(t)
	ctx := context.Background()

	eng, code := newTestSession(t, f, models.ExperimentHiddenProfiles, nil,
		testParticipant{code: "A1"},
		testParticipant{code: "A2"},
	)
	hp, ok := eng.(*hiddenProfiles)
	require.True(t, ok)

	done, err := hp.ReadingPhaseComplete(ctx, code)
	require.NoError(t, err)
	assert.False(t, done, "nothing assigned yet")

	require.NoError(t, st.Sessions.SetPublicInfo(ctx, code, "The committee seeks a new chair."))
	require.NoError(t, st.Sessions.AssignDoc(ctx, code, "A1", "Candidate_X led two prior committees."))

	done, err = hp.ReadingPhaseComplete(ctx, code)
	require.NoError(t, err)
	assert.False(t, done, "A2 still unassigned")

	require.NoError(t, st.Sessions.AssignDoc(ctx, code, "A2", "Candidate_Y published widely."))

	done, err = hp.ReadingPhaseComplete(ctx, code)
	require.NoError(t, err)
	assert.True(t, done)

	t.Run("documents land in participant state", func(t *testing.T) {
		state, err := eng.ParticipantState(ctx, code, "A1")
		require.NoError(t, err)
		assert.Equal(t, "Candidate_X led two prior committees.", state["assigned_doc"])
		assert.Equal(t, "The committee seeks a new chair.", state["public_info"])
		assert.Equal(t, false, state["has_voted"])
	})
}
