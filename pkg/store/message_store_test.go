package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/behavelab/parley/ent/message"
	"github.com/behavelab/parley/pkg/models"
)

func TestMessageStore_DirectMessages(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	code := createTestSession(t, st, models.ExperimentHiddenProfiles, nil,
		testParticipant{code: "Alice"},
		testParticipant{code: "Bob"},
	)

	bob := "Bob"
	first, err := st.Messages.Create(ctx, code, "Alice", &bob, "hello bob", "chat")
	require.NoError(t, err)
	assert.Equal(t, message.DeliveredStatusSent, first.DeliveredStatus)

	_, err = st.Messages.Create(ctx, code, "Alice", &bob, "are you there?", "chat")
	require.NoError(t, err)

	t.Run("unread returns messages addressed to the participant", func(t *testing.T) {
		unread, err := st.Messages.Unread(ctx, code, "Bob")
		require.NoError(t, err)
		require.Len(t, unread, 2)
		assert.Equal(t, "hello bob", unread[0].Content, "oldest first")

		unread, err = st.Messages.Unread(ctx, code, "Alice")
		require.NoError(t, err)
		assert.Empty(t, unread)
	})

	t.Run("marking read clears the unread set", func(t *testing.T) {
		n, err := st.Messages.MarkDirectRead(ctx, code, "Bob")
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		unread, err := st.Messages.Unread(ctx, code, "Bob")
		require.NoError(t, err)
		assert.Empty(t, unread)

		n, err = st.Messages.MarkDirectRead(ctx, code, "Bob")
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("history returns the conversation in both directions", func(t *testing.T) {
		alice := "Alice"
		_, err := st.Messages.Create(ctx, code, "Bob", &alice, "here now", "chat")
		require.NoError(t, err)

		history, err := st.Messages.History(ctx, code, "Alice", "Bob", 10)
		require.NoError(t, err)
		require.Len(t, history, 3)
		assert.Equal(t, "hello bob", history[0].Content)
		assert.Equal(t, "here now", history[2].Content)
	})
}

func TestMessageStore_Broadcasts(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	code := createTestSession(t, st, models.ExperimentHiddenProfiles, nil,
		testParticipant{code: "Alice"},
		testParticipant{code: "Bob"},
		testParticipant{code: "Carol"},
	)

	bcast, err := st.Messages.Create(ctx, code, "Alice", nil, "everyone: hello", "chat")
	require.NoError(t, err)
	assert.Nil(t, bcast.Recipient)
	assert.Equal(t, []string{"Alice"}, models.MessageData(bcast.MessageData).SeenBy(),
		"sender has trivially seen their own broadcast")

	t.Run("broadcast is unread for everyone but the sender", func(t *testing.T) {
		for _, viewer := range []string{"Bob", "Carol"} {
			unread, err := st.Messages.Unread(ctx, code, viewer)
			require.NoError(t, err)
			require.Len(t, unread, 1)
			assert.Equal(t, bcast.ID, unread[0].ID)
		}
		unread, err := st.Messages.Unread(ctx, code, "Alice")
		require.NoError(t, err)
		assert.Empty(t, unread)
	})

	t.Run("seen receipts are idempotent and flip read on full coverage", func(t *testing.T) {
		require.NoError(t, st.Messages.MarkBroadcastSeen(ctx, code, bcast.ID, "Bob"))
		require.NoError(t, st.Messages.MarkBroadcastSeen(ctx, code, bcast.ID, "Bob"))

		msgs, err := st.Messages.Broadcasts(ctx, code, 10)
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.ElementsMatch(t, []string{"Alice", "Bob"}, models.MessageData(msgs[0].MessageData).SeenBy())
		assert.Equal(t, message.DeliveredStatusSent, msgs[0].DeliveredStatus)

		require.NoError(t, st.Messages.MarkBroadcastSeen(ctx, code, bcast.ID, "Carol"))
		msgs, err = st.Messages.Broadcasts(ctx, code, 10)
		require.NoError(t, err)
		assert.Equal(t, message.DeliveredStatusRead, msgs[0].DeliveredStatus)

		unread, err := st.Messages.Unread(ctx, code, "Bob")
		require.NoError(t, err)
		assert.Empty(t, unread)
	})

	t.Run("maybe-mark-read is idempotent", func(t *testing.T) {
		require.NoError(t, st.Messages.MaybeMarkBroadcastRead(ctx, code, bcast.ID))
		msgs, err := st.Messages.Broadcasts(ctx, code, 10)
		require.NoError(t, err)
		assert.Equal(t, message.DeliveredStatusRead, msgs[0].DeliveredStatus)
	})
}
