package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/behavelab/parley/ent/session"
	"github.com/behavelab/parley/pkg/fault"
	"github.com/behavelab/parley/pkg/models"
)

func TestSessionStore_CreateSession(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	t.Run("creates idle session with config", func(t *testing.T) {
		sess, err := st.Sessions.CreateSession(ctx, models.CreateSessionRequest{
			SessionCode:    "DEMO001",
			ExperimentType: models.ExperimentShapeFactory,
			Config:         shapeFactoryConfig(),
		})
		require.NoError(t, err)
		assert.Equal(t, "DEMO001", sess.SessionCode)
		assert.Equal(t, session.StatusIdle, sess.Status)
		assert.Equal(t, string(models.ExperimentShapeFactory), sess.ExperimentType)
		assert.Nil(t, sess.StartedAt)
		cfg := models.ExperimentConfig(sess.ExperimentConfig)
		assert.Equal(t, 300, cfg.StartingMoney())
	})

	t.Run("rejects duplicate session code", func(t *testing.T) {
		_, err := st.Sessions.CreateSession(ctx, models.CreateSessionRequest{
			SessionCode:    "DEMO001",
			ExperimentType: models.ExperimentDayTrader,
		})
		require.Error(t, err)
		assert.Equal(t, fault.InvalidState, fault.KindOf(err))
	})

	t.Run("rejects unknown experiment type", func(t *testing.T) {
		_, err := st.Sessions.CreateSession(ctx, models.CreateSessionRequest{
			SessionCode:    "BAD001",
			ExperimentType: "tictactoe",
		})
		require.Error(t, err)
		assert.Equal(t, fault.InvalidState, fault.KindOf(err))
	})

	t.Run("accepts custom experiment types", func(t *testing.T) {
		sess, err := st.Sessions.CreateSession(ctx, models.CreateSessionRequest{
			SessionCode:    "CUSTOM01",
			ExperimentType: "custom_negotiation",
		})
		require.NoError(t, err)
		assert.Equal(t, "custom_negotiation", sess.ExperimentType)
	})
}

func TestSessionStore_UpdateStatus(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	t.Run("walks the full lifecycle", func(t *testing.T) {
		code := createTestSession(t, st, models.ExperimentShapeFactory, nil)

		sess, err := st.Sessions.UpdateStatus(ctx, code, session.StatusSetupComplete)
		require.NoError(t, err)
		assert.Equal(t, session.StatusSetupComplete, sess.Status)
		assert.Nil(t, sess.StartedAt)

		sess, err = st.Sessions.UpdateStatus(ctx, code, session.StatusSessionActive)
		require.NoError(t, err)
		require.NotNil(t, sess.StartedAt)
		startedAt := *sess.StartedAt

		sess, err = st.Sessions.UpdateStatus(ctx, code, session.StatusSessionPaused)
		require.NoError(t, err)
		assert.Equal(t, session.StatusSessionPaused, sess.Status)

		sess, err = st.Sessions.UpdateStatus(ctx, code, session.StatusSessionActive)
		require.NoError(t, err)
		require.NotNil(t, sess.StartedAt)
		assert.Equal(t, startedAt, *sess.StartedAt, "started_at is set once")

		sess, err = st.Sessions.UpdateStatus(ctx, code, session.StatusSessionCompleted)
		require.NoError(t, err)
		assert.NotNil(t, sess.CompletedAt)
	})

	t.Run("rejects illegal transitions", func(t *testing.T) {
		code := createTestSession(t, st, models.ExperimentShapeFactory, nil)

		_, err := st.Sessions.UpdateStatus(ctx, code, session.StatusSessionPaused)
		require.Error(t, err)
		assert.Equal(t, fault.InvalidState, fault.KindOf(err))
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		code := createTestSession(t, st, models.ExperimentShapeFactory, nil)

		sess, err := st.Sessions.UpdateStatus(ctx, code, session.StatusIdle)
		require.NoError(t, err)
		assert.Equal(t, session.StatusIdle, sess.Status)
	})

	t.Run("unknown session reports SessionNotFound", func(t *testing.T) {
		_, err := st.Sessions.UpdateStatus(ctx, "NOPE", session.StatusSetupComplete)
		require.Error(t, err)
		assert.Equal(t, fault.SessionNotFound, fault.KindOf(err))
	})
}

func TestSessionStore_List(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := st.Sessions.CreateSession(ctx, models.CreateSessionRequest{
			SessionCode:    uuid.NewString()[:12],
			ExperimentType: models.ExperimentWordGuessing,
		})
		require.NoError(t, err)
	}
	code := createTestSession(t, st, models.ExperimentShapeFactory, nil)
	activateTestSession(t, st, code)

	t.Run("filters by status", func(t *testing.T) {
		resp, err := st.Sessions.List(ctx, models.SessionFilters{Status: string(session.StatusSessionActive)})
		require.NoError(t, err)
		require.Len(t, resp.Sessions, 1)
		assert.Equal(t, code, resp.Sessions[0].SessionCode)
	})

	t.Run("filters by experiment type", func(t *testing.T) {
		resp, err := st.Sessions.List(ctx, models.SessionFilters{ExperimentType: string(models.ExperimentWordGuessing)})
		require.NoError(t, err)
		assert.Len(t, resp.Sessions, 3)
		assert.Equal(t, 3, resp.TotalCount)
	})

	t.Run("paginates", func(t *testing.T) {
		resp, err := st.Sessions.List(ctx, models.SessionFilters{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, resp.Sessions, 2)
		assert.Equal(t, 4, resp.TotalCount)
	})
}

func TestSessionStore_HiddenProfilesState(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	code := createTestSession(t, st, models.ExperimentHiddenProfiles, nil,
		testParticipant{code: "A1"},
		testParticipant{code: "A2"},
	)

	t.Run("votes are overwritable", func(t *testing.T) {
		require.NoError(t, st.Sessions.SetVote(ctx, code, "A1", "Candidate_X"))
		require.NoError(t, st.Sessions.SetVote(ctx, code, "A1", "Candidate_Y"))

		sess, err := st.Sessions.GetByCode(ctx, code)
		require.NoError(t, err)
		votes := models.ExperimentConfig(sess.ExperimentConfig).HiddenProfiles().Votes()
		assert.Equal(t, map[string]string{"A1": "Candidate_Y"}, votes)
	})

	t.Run("initiatives set and removed", func(t *testing.T) {
		require.NoError(t, st.Sessions.SetInitiative(ctx, code, "A1", models.InitiativeActive))
		require.NoError(t, st.Sessions.SetInitiative(ctx, code, "A2", models.InitiativePassive))

		sess, err := st.Sessions.GetByCode(ctx, code)
		require.NoError(t, err)
		initiatives := models.ExperimentConfig(sess.ExperimentConfig).HiddenProfiles().Initiatives()
		assert.Len(t, initiatives, 2)

		require.NoError(t, st.Sessions.RemoveInitiative(ctx, code, "A2"))
		sess, err = st.Sessions.GetByCode(ctx, code)
		require.NoError(t, err)
		initiatives = models.ExperimentConfig(sess.ExperimentConfig).HiddenProfiles().Initiatives()
		assert.Equal(t, map[string]string{"A1": models.InitiativeActive}, initiatives)
	})

	t.Run("reading phase completes when docs and public info present", func(t *testing.T) {
		done, err := st.Sessions.ReadingPhaseComplete(ctx, code)
		require.NoError(t, err)
		assert.False(t, done)

		require.NoError(t, st.Sessions.SetPublicInfo(ctx, code, "shared briefing"))
		done, err = st.Sessions.ReadingPhaseComplete(ctx, code)
		require.NoError(t, err)
		assert.False(t, done, "not complete until every participant has a document")

		require.NoError(t, st.Sessions.AssignDoc(ctx, code, "A1", "candidate profile one"))
		require.NoError(t, st.Sessions.AssignDoc(ctx, code, "A2", "candidate profile two"))
		done, err = st.Sessions.ReadingPhaseComplete(ctx, code)
		require.NoError(t, err)
		assert.True(t, done)
	})
}
