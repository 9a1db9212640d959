package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/behavelab/parley/ent/productionqueueentry"
	"github.com/behavelab/parley/pkg/fault"
	"github.com/behavelab/parley/pkg/models"
)

func TestProductionStore_Enqueue(t *testing.T) {
	st, client := newTestStore(t)
	ctx := context.Background()

	code := createTestSession(t, st, models.ExperimentShapeFactory, shapeFactoryConfig(),
		testParticipant{code: "Alice", specialty: "circle"},
	)
	activateTestSession(t, st, code)

	t.Run("first entry starts immediately, second queues behind it", func(t *testing.T) {
		first, err := st.Production.Enqueue(ctx, code, "Alice", "circle", 2)
		require.NoError(t, err)
		assert.Equal(t, productionqueueentry.StatusInProgress, first.Status)
		require.NotNil(t, first.StartTime)
		require.NotNil(t, first.EstimatedCompletion)
		assert.WithinDuration(t, first.StartTime.Add(10*time.Second), *first.EstimatedCompletion, time.Second)

		second, err := st.Production.Enqueue(ctx, code, "Alice", "square", 1)
		require.NoError(t, err)
		assert.Equal(t, productionqueueentry.StatusQueued, second.Status)
		assert.Nil(t, second.StartTime)
		assert.Greater(t, second.QueuePosition, first.QueuePosition)
		require.NotNil(t, second.EstimatedCompletion)
		assert.WithinDuration(t, time.Now().Add(15*time.Second), *second.EstimatedCompletion, time.Second)

		alice := getTestParticipant(t, client, code, "Alice")
		assert.Equal(t, 300-2*10-25, alice.Money, "specialty and regular unit costs debited up front")
		assert.Equal(t, 2, alice.SpecialtyProductionUsed, "only specialty units count")
	})

	t.Run("specialty cap counts specialty units only", func(t *testing.T) {
		_, err := st.Production.Enqueue(ctx, code, "Alice", "circle", 5)
		require.Error(t, err)
		assert.Equal(t, fault.ProductionLimitReached, fault.KindOf(err))

		entry, err := st.Production.Enqueue(ctx, code, "Alice", "circle", 4)
		require.NoError(t, err)
		assert.Equal(t, productionqueueentry.StatusQueued, entry.Status)

		alice := getTestParticipant(t, client, code, "Alice")
		assert.Equal(t, 6, alice.SpecialtyProductionUsed)

		_, err = st.Production.Enqueue(ctx, code, "Alice", "circle", 1)
		require.Error(t, err)
		assert.Equal(t, fault.ProductionLimitReached, fault.KindOf(err))
	})

	t.Run("insufficient funds leaves nothing behind", func(t *testing.T) {
		setMoney(t, client, code, "Alice", 10)
		before, err := st.Production.QueueFor(ctx, code, "Alice")
		require.NoError(t, err)

		_, err = st.Production.Enqueue(ctx, code, "Alice", "square", 1)
		require.Error(t, err)
		assert.Equal(t, fault.InsufficientFunds, fault.KindOf(err))

		after, err := st.Production.QueueFor(ctx, code, "Alice")
		require.NoError(t, err)
		assert.Len(t, after, len(before))
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		_, err := st.Production.Enqueue(ctx, code, "Alice", "circle", 0)
		require.Error(t, err)
		assert.Equal(t, fault.InvalidQuantity, fault.KindOf(err))
	})
}

func TestProductionStore_PromoteAndStart(t *testing.T) {
	st, client := newTestStore(t)
	ctx := context.Background()

	// Zero production time makes entries due the moment they start.
	cfg := shapeFactoryConfig()
	cfg[models.KeyProductionTime] = 0

	code := createTestSession(t, st, models.ExperimentShapeFactory, cfg,
		testParticipant{code: "Alice", specialty: "circle"},
	)
	activateTestSession(t, st, code)

	first, err := st.Production.Enqueue(ctx, code, "Alice", "circle", 2)
	require.NoError(t, err)
	second, err := st.Production.Enqueue(ctx, code, "Alice", "square", 1)
	require.NoError(t, err)

	t.Run("promotion deposits output and never auto-starts the queue", func(t *testing.T) {
		promoted, err := st.Production.PromoteCompleted(ctx, code, "Alice")
		require.NoError(t, err)
		require.Len(t, promoted, 1)
		assert.Equal(t, first.ID, promoted[0].ID)
		assert.Equal(t, []string{"circle", "circle"}, inventoryTags(t, client, code, "Alice"))

		queue, err := st.Production.QueueFor(ctx, code, "Alice")
		require.NoError(t, err)
		require.Len(t, queue, 1)
		assert.Equal(t, second.ID, queue[0].ID)
		assert.Equal(t, productionqueueentry.StatusQueued, queue[0].Status)
	})

	t.Run("repeat promotion is a no-op", func(t *testing.T) {
		promoted, err := st.Production.PromoteCompleted(ctx, code, "Alice")
		require.NoError(t, err)
		assert.Empty(t, promoted)
	})

	t.Run("explicit start promotes the next queued entry", func(t *testing.T) {
		started, err := st.Production.StartNextQueued(ctx, code, "Alice")
		require.NoError(t, err)
		require.NotNil(t, started)
		assert.Equal(t, second.ID, started.ID)
		assert.Equal(t, productionqueueentry.StatusInProgress, started.Status)
		assert.NotNil(t, started.StartTime)

		promoted, err := st.Production.PromoteCompleted(ctx, code, "Alice")
		require.NoError(t, err)
		require.Len(t, promoted, 1)
		assert.Equal(t, []string{"circle", "circle", "square"}, inventoryTags(t, client, code, "Alice"))

		started, err = st.Production.StartNextQueued(ctx, code, "Alice")
		require.NoError(t, err)
		assert.Nil(t, started, "nothing left to start")
	})
}

func TestProductionStore_StartBlockedWhileBusy(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	code := createTestSession(t, st, models.ExperimentShapeFactory, shapeFactoryConfig(),
		testParticipant{code: "Alice", specialty: "circle"},
	)
	activateTestSession(t, st, code)

	_, err := st.Production.Enqueue(ctx, code, "Alice", "circle", 1)
	require.NoError(t, err)
	_, err = st.Production.Enqueue(ctx, code, "Alice", "circle", 1)
	require.NoError(t, err)

	started, err := st.Production.StartNextQueued(ctx, code, "Alice")
	require.NoError(t, err)
	assert.Nil(t, started, "queued entry stays queued while one is in progress")
}
