package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/behavelab/parley/ent/session"
	"github.com/behavelab/parley/pkg/fault"
	"github.com/behavelab/parley/pkg/models"
)

func TestFactory_ForType(t *testing.T) {
	f, _, _ := newTestFactory(t)

	for _, kind := range []models.ExperimentType{
		models.ExperimentShapeFactory,
		models.ExperimentDayTrader,
		models.ExperimentEssayRanking,
		models.ExperimentWordGuessing,
		models.ExperimentHiddenProfiles,
	} {
		eng, err := f.ForType(kind)
		require.NoError(t, err)
		assert.Equal(t, kind, eng.Kind())
	}

	t.Run("custom kinds share the generic engine", func(t *testing.T) {
		kind := models.ExperimentType("custom_text_chat")
		eng, err := f.ForType(kind)
		require.NoError(t, err)
		assert.Equal(t, kind, eng.Kind())

		_, err = eng.HandleAction(context.Background(), "X", "Y", ToolProduceShape, nil)
		require.Error(t, err)
		assert.Equal(t, fault.InvalidState, fault.KindOf(err))
	})

	t.Run("unknown kind is rejected", func(t *testing.T) {
		_, err := f.ForType("roulette")
		require.Error(t, err)
		assert.Equal(t, fault.InvalidState, fault.KindOf(err))
	})
}

func TestEngine_Lifecycle(t *testing.T) {
	f, _, _ := newTestFactory(t)
	ctx := context.Background()

	eng, code := newTestSession(t, f, models.ExperimentDayTrader, nil,
		testParticipant{code: "Alice"},
	)

	t.Run("start walks idle through setup_complete into active", func(t *testing.T) {
		sess, err := eng.StartSession(ctx, code)
		require.NoError(t, err)
		assert.Equal(t, session.StatusSessionActive, sess.Status)
	})

	t.Run("participants cannot join a running session", func(t *testing.T) {
		_, err := eng.AddParticipant(ctx, code, models.CreateParticipantRequest{
			ParticipantCode: "Late",
			Type:            models.ParticipantHuman,
		})
		require.Error(t, err)
		assert.Equal(t, fault.InvalidState, fault.KindOf(err))
	})

	t.Run("end completes the session", func(t *testing.T) {
		sess, err := eng.EndSession(ctx, code)
		require.NoError(t, err)
		assert.Equal(t, session.StatusSessionCompleted, sess.Status)

		_, err = eng.StartSession(ctx, code)
		require.Error(t, err, "completed sessions stay completed")
	})

	t.Run("ForSession dispatches on the stored kind", func(t *testing.T) {
		byCode, err := f.ForSession(ctx, code)
		require.NoError(t, err)
		assert.Equal(t, models.ExperimentDayTrader, byCode.Kind())

		_, err = f.ForSession(ctx, "NOPE")
		require.Error(t, err)
		assert.Equal(t, fault.SessionNotFound, fault.KindOf(err))
	})
}

func TestEngine_SendMessage_CommunicationLevels(t *testing.T) {
	ctx := context.Background()

	t.Run("chat allows direct and rejects broadcast", func(t *testing.T) {
		f, st, _ := newTestFactory(t)
		eng, code := newTestSession(t, f, models.ExperimentHiddenProfiles,
			models.ExperimentConfig{models.KeyCommunicationLevel: "chat"},
			testParticipant{code: "Alice"}, testParticipant{code: "Bob"},
		)
		startTestSession(t, eng, code)

		msg, err := eng.SendMessage(ctx, code, "Alice", "Bob", "hello")
		require.NoError(t, err)
		require.NotNil(t, msg.Recipient)
		assert.Equal(t, "Bob", *msg.Recipient)

		_, err = eng.SendMessage(ctx, code, "Alice", BroadcastRecipient, "hello everyone")
		require.Error(t, err)
		assert.Equal(t, fault.CommunicationLevelViolation, fault.KindOf(err))

		unread, err := st.Messages.Unread(ctx, code, "Bob")
		require.NoError(t, err)
		assert.Len(t, unread, 1)
	})

	t.Run("broadcast coerces direct recipients to all", func(t *testing.T) {
		f, _, _ := newTestFactory(t)
		eng, code := newTestSession(t, f, models.ExperimentHiddenProfiles,
			models.ExperimentConfig{models.KeyCommunicationLevel: "broadcast"},
			testParticipant{code: "Alice"}, testParticipant{code: "Bob"},
		)
		startTestSession(t, eng, code)

		msg, err := eng.SendMessage(ctx, code, "Alice", "Bob", "to the room")
		require.NoError(t, err)
		assert.Nil(t, msg.Recipient, "stored as a broadcast")
	})

	t.Run("no_chat rejects everything", func(t *testing.T) {
		f, _, _ := newTestFactory(t)
		eng, code := newTestSession(t, f, models.ExperimentHiddenProfiles,
			models.ExperimentConfig{models.KeyCommunicationLevel: "no_chat"},
			testParticipant{code: "Alice"}, testParticipant{code: "Bob"},
		)
		startTestSession(t, eng, code)

		_, err := eng.SendMessage(ctx, code, "Alice", "Bob", "psst")
		require.Error(t, err)
		assert.Equal(t, fault.CommunicationLevelViolation, fault.KindOf(err))
	})

	t.Run("messaging requires an active session", func(t *testing.T) {
		f, _, _ := newTestFactory(t)
		eng, code := newTestSession(t, f, models.ExperimentHiddenProfiles, nil,
			testParticipant{code: "Alice"}, testParticipant{code: "Bob"},
		)
		_, err := eng.SendMessage(ctx, code, "Alice", "Bob", "too early")
		require.Error(t, err)
		assert.Equal(t, fault.InvalidState, fault.KindOf(err))
	})
}

func TestEngine_GameState(t *testing.T) {
	f, _, _ := newTestFactory(t)
	ctx := context.Background()

	eng, code := newTestSession(t, f, models.ExperimentShapeFactory,
		models.ExperimentConfig{models.KeyAwarenessDashboard: true, models.KeyRoundDuration: 20},
		testParticipant{code: "Alice", specialty: "circle"},
		testParticipant{code: "Bob", specialty: "square"},
	)
	startTestSession(t, eng, code)

	state, err := eng.GameState(ctx, code, "Alice")
	require.NoError(t, err)

	assert.Equal(t, models.CommChat, state.CommunicationLevel)
	assert.Equal(t, "circle", state.PrivateState["specialty_shape"])
	assert.Equal(t, "session_active", state.PublicState.SessionStatus)
	assert.Len(t, state.PublicState.Participants, 2)
	for _, p := range state.PublicState.Participants {
		require.NotNil(t, p.Money, "awareness dashboard exposes money")
		assert.Equal(t, 300, *p.Money)
	}
	assert.Equal(t, 20*60, state.PublicState.Timer.TimeRemaining, "no registry, derived from config")
	assert.Equal(t, models.TimerWaiting, state.PublicState.Timer.ExperimentStatus)

	t.Run("reading state twice is side-effect free", func(t *testing.T) {
		again, err := eng.GameState(ctx, code, "Alice")
		require.NoError(t, err)
		assert.Equal(t, state.PrivateState, again.PrivateState)
	})

	t.Run("awareness off hides the extras", func(t *testing.T) {
		engOff, codeOff := newTestSession(t, f, models.ExperimentShapeFactory, shapeFactoryConfig(),
			testParticipant{code: "Alice", specialty: "circle"},
			testParticipant{code: "Bob", specialty: "square"},
		)
		public, err := engOff.PublicState(ctx, codeOff)
		require.NoError(t, err)
		for _, p := range public.Participants {
			assert.Nil(t, p.Money)
			assert.Nil(t, p.OrdersCompleted)
		}
	})
}
