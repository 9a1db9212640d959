package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/behavelab/parley/ent/participant"
	"github.com/behavelab/parley/pkg/fault"
	"github.com/behavelab/parley/pkg/models"
)

func TestParticipantStore_Add(t *testing.T) {
	st, client := newTestStore(t)
	ctx := context.Background()

	t.Run("shapefactory participants start with money and an inventory", func(t *testing.T) {
		code := createTestSession(t, st, models.ExperimentShapeFactory, shapeFactoryConfig())

		p, err := st.Participants.Add(ctx, code, models.CreateParticipantRequest{
			ParticipantCode: "Alice",
			Type:            models.ParticipantAgent,
			SpecialtyShape:  "circle",
		})
		require.NoError(t, err)
		assert.Equal(t, 300, p.Money)
		assert.Equal(t, participant.TypeAiAgent, p.Type)
		assert.Equal(t, participant.LoginStatusNotLoggedIn, p.LoginStatus)
		assert.Empty(t, inventoryTags(t, client, code, "Alice"))
	})

	t.Run("non-economy kinds start with zero money", func(t *testing.T) {
		code := createTestSession(t, st, models.ExperimentHiddenProfiles, nil)

		p, err := st.Participants.Add(ctx, code, models.CreateParticipantRequest{
			ParticipantCode: "A1",
			Type:            models.ParticipantHuman,
		})
		require.NoError(t, err)
		assert.Zero(t, p.Money)
	})

	t.Run("rejects duplicate codes within a session", func(t *testing.T) {
		code := createTestSession(t, st, models.ExperimentHiddenProfiles, nil,
			testParticipant{code: "A1"})

		_, err := st.Participants.Add(ctx, code, models.CreateParticipantRequest{ParticipantCode: "A1"})
		require.Error(t, err)
		assert.Equal(t, fault.InvalidState, fault.KindOf(err))
	})

	t.Run("rejects registration once the session is active", func(t *testing.T) {
		code := createTestSession(t, st, models.ExperimentHiddenProfiles, nil)
		activateTestSession(t, st, code)

		_, err := st.Participants.Add(ctx, code, models.CreateParticipantRequest{ParticipantCode: "Late"})
		require.Error(t, err)
		assert.Equal(t, fault.InvalidState, fault.KindOf(err))
	})
}

func TestParticipantStore_FulfillOrders(t *testing.T) {
	st, client := newTestStore(t)
	ctx := context.Background()

	code := createTestSession(t, st, models.ExperimentShapeFactory, shapeFactoryConfig(),
		testParticipant{code: "Alice", specialty: "circle"},
	)
	activateTestSession(t, st, code)
	setOrders(t, client, code, "Alice", []string{"square", "square", "triangle", "triangle"})
	seedInventory(t, client, code, "Alice", []string{"square"})

	t.Run("batch fails atomically on missing inventory", func(t *testing.T) {
		_, err := st.Participants.FulfillOrders(ctx, code, "Alice", []int{0, 1})
		require.Error(t, err)
		assert.Equal(t, fault.InsufficientInventory, fault.KindOf(err))

		alice := getTestParticipant(t, client, code, "Alice")
		assert.Equal(t, []string{"square", "square", "triangle", "triangle"}, alice.Orders)
		assert.Equal(t, []string{"square"}, inventoryTags(t, client, code, "Alice"))
		assert.Equal(t, 300, alice.Money)
	})

	t.Run("single order consumes one tag and credits incentive", func(t *testing.T) {
		res, err := st.Participants.FulfillOrders(ctx, code, "Alice", []int{0})
		require.NoError(t, err)
		assert.Equal(t, 1, res.OrdersFulfilled)
		assert.Equal(t, 50, res.ScoreGained)
		assert.Equal(t, 350, res.NewMoney)
		assert.Equal(t, []string{"square", "triangle", "triangle"}, res.NewOrders)
		assert.Empty(t, res.NewInventory)

		alice := getTestParticipant(t, client, code, "Alice")
		assert.Equal(t, 350, alice.Money)
		assert.Equal(t, 1, alice.OrdersCompleted)
	})

	t.Run("rejects out-of-range and duplicate indices", func(t *testing.T) {
		_, err := st.Participants.FulfillOrders(ctx, code, "Alice", []int{7})
		require.Error(t, err)
		assert.Equal(t, fault.InvalidOrderIndex, fault.KindOf(err))

		_, err = st.Participants.FulfillOrders(ctx, code, "Alice", []int{1, 1})
		require.Error(t, err)
		assert.Equal(t, fault.InvalidOrderIndex, fault.KindOf(err))
	})

	t.Run("multi-order batch consumes the full multiset", func(t *testing.T) {
		seedInventory(t, client, code, "Alice", []string{"triangle", "square", "triangle"})

		res, err := st.Participants.FulfillOrders(ctx, code, "Alice", []int{1, 2})
		require.NoError(t, err)
		assert.Equal(t, 2, res.OrdersFulfilled)
		assert.Equal(t, []string{"square"}, res.NewOrders)
		assert.Equal(t, []string{"square"}, res.NewInventory)

		alice := getTestParticipant(t, client, code, "Alice")
		assert.Equal(t, 3, alice.OrdersCompleted)
	})
}

func TestParticipantStore_Lookups(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	code := createTestSession(t, st, models.ExperimentWordGuessing, nil,
		testParticipant{code: "H1", role: models.RoleHinter},
		testParticipant{code: "G1", role: models.RoleGuesser},
	)

	t.Run("get translates missing rows", func(t *testing.T) {
		_, err := st.Participants.Get(ctx, code, "nobody")
		require.Error(t, err)
		assert.Equal(t, fault.ParticipantNotFound, fault.KindOf(err))

		_, err = st.Participants.Get(ctx, "", "H1")
		require.Error(t, err)
		assert.Equal(t, fault.MissingSessionScope, fault.KindOf(err))
	})

	t.Run("list orders by code", func(t *testing.T) {
		list, err := st.Participants.ListBySession(ctx, code)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "G1", list[0].ParticipantCode)
	})

	t.Run("login status transitions persist", func(t *testing.T) {
		require.NoError(t, st.Participants.UpdateLoginStatus(ctx, code, "G1", participant.LoginStatusActive))
		p, err := st.Participants.Get(ctx, code, "G1")
		require.NoError(t, err)
		assert.Equal(t, participant.LoginStatusActive, p.LoginStatus)
	})

	t.Run("assigned words and specialty shapes", func(t *testing.T) {
		require.NoError(t, st.Participants.SetAssignedWords(ctx, code, "H1", []string{"apple", "boat"}))
		p, err := st.Participants.Get(ctx, code, "H1")
		require.NoError(t, err)
		assert.Equal(t, []string{"apple", "boat"}, p.AssignedWords)

		require.Error(t, st.Participants.SetRole(ctx, code, "H1", "referee"))
	})
}
