package store

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/behavelab/parley/ent/transaction"
	"github.com/behavelab/parley/pkg/fault"
	"github.com/behavelab/parley/pkg/models"
)

func sellOffer(proposer, recipient, shape string, qty, price int) models.TradeOfferRequest {
	return models.TradeOfferRequest{
		Proposer:     proposer,
		Recipient:    recipient,
		OfferType:    "sell",
		Shape:        shape,
		Quantity:     qty,
		PricePerUnit: price,
	}
}

func TestTradeStore_CreateOffer(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	code := createTestSession(t, st, models.ExperimentShapeFactory, shapeFactoryConfig(),
		testParticipant{code: "Alice", specialty: "circle"},
		testParticipant{code: "Bob", specialty: "square"},
	)
	activateTestSession(t, st, code)

	t.Run("assigns sequential short ids and derives direction", func(t *testing.T) {
		first, err := st.Trades.CreateOffer(ctx, code, sellOffer("Alice", "Bob", "circle", 1, 20))
		require.NoError(t, err)
		assert.Regexp(t, `^S[0-9A-F]{4}-\d{3}$`, first.ShortID)
		assert.True(t, strings.HasSuffix(first.ShortID, "-001"))
		assert.Equal(t, "Alice", first.Seller)
		assert.Equal(t, "Bob", first.Buyer)
		assert.Equal(t, transaction.StatusProposed, first.Status)

		second, err := st.Trades.CreateOffer(ctx, code, models.TradeOfferRequest{
			Proposer: "Bob", Recipient: "Alice", OfferType: "buy",
			Shape: "circle", Quantity: 2, PricePerUnit: 15,
		})
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(second.ShortID, "-002"))
		assert.Equal(t, first.ShortID[:6], second.ShortID[:6],
			"offers in one session share the session-derived prefix")
		assert.Equal(t, "Bob", second.Buyer)
		assert.Equal(t, "Alice", second.Seller)
	})

	t.Run("rejects self offers", func(t *testing.T) {
		_, err := st.Trades.CreateOffer(ctx, code, sellOffer("Alice", "Alice", "circle", 1, 20))
		require.Error(t, err)
		assert.Equal(t, fault.SelfOfferForbidden, fault.KindOf(err))
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		_, err := st.Trades.CreateOffer(ctx, code, sellOffer("Alice", "Bob", "circle", 0, 20))
		require.Error(t, err)
		assert.Equal(t, fault.InvalidQuantity, fault.KindOf(err))
	})

	t.Run("rejects unknown recipient", func(t *testing.T) {
		_, err := st.Trades.CreateOffer(ctx, code, sellOffer("Alice", "Mallory", "circle", 1, 20))
		require.Error(t, err)
		assert.Equal(t, fault.ParticipantNotFound, fault.KindOf(err))
	})
}

func TestTradeStore_Accept(t *testing.T) {
	st, client := newTestStore(t)
	ctx := context.Background()

	t.Run("settles money and shapes atomically", func(t *testing.T) {
		code := createTestSession(t, st, models.ExperimentShapeFactory, shapeFactoryConfig(),
			testParticipant{code: "Alice", specialty: "circle"},
			testParticipant{code: "Bob", specialty: "square"},
		)
		activateTestSession(t, st, code)
		seedInventory(t, client, code, "Alice", []string{"circle", "circle", "circle", "circle"})

		offer, err := st.Trades.CreateOffer(ctx, code, sellOffer("Alice", "Bob", "circle", 1, 20))
		require.NoError(t, err)

		done, err := st.Trades.Accept(ctx, code, "Bob", offer.ID)
		require.NoError(t, err)
		assert.Equal(t, transaction.StatusCompleted, done.Status)
		assert.NotNil(t, done.ResolvedAt)

		alice := getTestParticipant(t, client, code, "Alice")
		bob := getTestParticipant(t, client, code, "Bob")
		assert.Equal(t, 320, alice.Money)
		assert.Equal(t, 280, bob.Money)
		assert.Len(t, inventoryTags(t, client, code, "Alice"), 3)
		assert.Equal(t, []string{"circle"}, inventoryTags(t, client, code, "Bob"))
	})

	t.Run("accepts by short id", func(t *testing.T) {
		code := createTestSession(t, st, models.ExperimentShapeFactory, shapeFactoryConfig(),
			testParticipant{code: "Alice", specialty: "circle"},
			testParticipant{code: "Bob", specialty: "square"},
		)
		activateTestSession(t, st, code)
		seedInventory(t, client, code, "Alice", []string{"circle"})

		offer, err := st.Trades.CreateOffer(ctx, code, sellOffer("Alice", "Bob", "circle", 1, 20))
		require.NoError(t, err)

		done, err := st.Trades.Accept(ctx, code, "Bob", strings.ToLower(offer.ShortID))
		require.NoError(t, err)
		assert.Equal(t, transaction.StatusCompleted, done.Status)
	})

	t.Run("insufficient funds cancels the offer", func(t *testing.T) {
		code := createTestSession(t, st, models.ExperimentShapeFactory, shapeFactoryConfig(),
			testParticipant{code: "Alice", specialty: "circle"},
			testParticipant{code: "Bob", specialty: "square"},
		)
		activateTestSession(t, st, code)
		seedInventory(t, client, code, "Alice", []string{"circle"})

		offer, err := st.Trades.CreateOffer(ctx, code, sellOffer("Alice", "Bob", "circle", 1, 301))
		require.NoError(t, err)

		_, err = st.Trades.Accept(ctx, code, "Bob", offer.ID)
		require.Error(t, err)
		assert.Equal(t, fault.InsufficientFunds, fault.KindOf(err))

		row, err := st.Trades.Resolve(ctx, code, offer.ID)
		require.NoError(t, err)
		assert.Equal(t, transaction.StatusCancelled, row.Status)

		bob := getTestParticipant(t, client, code, "Bob")
		assert.Equal(t, 300, bob.Money, "no partial settlement")
	})

	t.Run("insufficient inventory cancels the offer", func(t *testing.T) {
		code := createTestSession(t, st, models.ExperimentShapeFactory, shapeFactoryConfig(),
			testParticipant{code: "Alice", specialty: "circle"},
			testParticipant{code: "Bob", specialty: "square"},
		)
		activateTestSession(t, st, code)

		offer, err := st.Trades.CreateOffer(ctx, code, sellOffer("Alice", "Bob", "circle", 2, 20))
		require.NoError(t, err)

		_, err = st.Trades.Accept(ctx, code, "Bob", offer.ID)
		require.Error(t, err)
		assert.Equal(t, fault.InsufficientInventory, fault.KindOf(err))

		row, err := st.Trades.Resolve(ctx, code, offer.ID)
		require.NoError(t, err)
		assert.Equal(t, transaction.StatusCancelled, row.Status)
	})

	t.Run("proposer cannot accept own offer", func(t *testing.T) {
		code := createTestSession(t, st, models.ExperimentShapeFactory, shapeFactoryConfig(),
			testParticipant{code: "Alice", specialty: "circle"},
			testParticipant{code: "Bob", specialty: "square"},
		)
		activateTestSession(t, st, code)

		offer, err := st.Trades.CreateOffer(ctx, code, sellOffer("Alice", "Bob", "circle", 1, 20))
		require.NoError(t, err)

		_, err = st.Trades.Accept(ctx, code, "Alice", offer.ID)
		require.Error(t, err)
		assert.Equal(t, fault.SelfAcceptForbidden, fault.KindOf(err))
	})

	t.Run("concurrent accepts settle exactly once", func(t *testing.T) {
		code := createTestSession(t, st, models.ExperimentShapeFactory, shapeFactoryConfig(),
			testParticipant{code: "Alice", specialty: "circle"},
			testParticipant{code: "Bob", specialty: "square"},
		)
		activateTestSession(t, st, code)
		seedInventory(t, client, code, "Alice", []string{"circle"})

		offer, err := st.Trades.CreateOffer(ctx, code, sellOffer("Alice", "Bob", "circle", 1, 20))
		require.NoError(t, err)

		const attempts = 8
		errs := make([]error, attempts)
		var wg sync.WaitGroup
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = st.Trades.Accept(ctx, code, "Bob", offer.ID)
			}(i)
		}
		wg.Wait()

		completed, alreadyProcessed := 0, 0
		for _, err := range errs {
			switch {
			case err == nil:
				completed++
			case fault.Is(err, fault.AlreadyProcessed):
				alreadyProcessed++
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}
		assert.Equal(t, 1, completed)
		assert.Equal(t, attempts-1, alreadyProcessed)

		alice := getTestParticipant(t, client, code, "Alice")
		assert.Equal(t, 320, alice.Money, "money moved exactly once")
		assert.Empty(t, inventoryTags(t, client, code, "Alice"))
		assert.Equal(t, []string{"circle"}, inventoryTags(t, client, code, "Bob"))
	})
}

func TestTradeStore_RejectAndCancel(t *testing.T) {
	st, client := newTestStore(t)
	ctx := context.Background()

	code := createTestSession(t, st, models.ExperimentShapeFactory, shapeFactoryConfig(),
		testParticipant{code: "Alice", specialty: "circle"},
		testParticipant{code: "Bob", specialty: "square"},
	)
	activateTestSession(t, st, code)
	seedInventory(t, client, code, "Alice", []string{"circle", "circle"})

	t.Run("recipient rejects, no settlement", func(t *testing.T) {
		offer, err := st.Trades.CreateOffer(ctx, code, sellOffer("Alice", "Bob", "circle", 1, 20))
		require.NoError(t, err)

		rejected, err := st.Trades.Reject(ctx, code, "Bob", offer.ID)
		require.NoError(t, err)
		assert.Equal(t, transaction.StatusCancelled, rejected.Status)

		bob := getTestParticipant(t, client, code, "Bob")
		assert.Equal(t, 300, bob.Money)
	})

	t.Run("proposer may reject their own offer, withdrawing it", func(t *testing.T) {
		offer, err := st.Trades.CreateOffer(ctx, code, sellOffer("Alice", "Bob", "circle", 1, 20))
		require.NoError(t, err)

		withdrawn, err := st.Trades.Reject(ctx, code, "Alice", offer.ID)
		require.NoError(t, err)
		assert.Equal(t, transaction.StatusCancelled, withdrawn.Status)
		assert.NotNil(t, withdrawn.ResolvedAt)
	})

	t.Run("third parties cannot reject", func(t *testing.T) {
		offer, err := st.Trades.CreateOffer(ctx, code, sellOffer("Alice", "Bob", "circle", 1, 20))
		require.NoError(t, err)

		_, err = st.Trades.Reject(ctx, code, "Mallory", offer.ID)
		require.Error(t, err)
		assert.Equal(t, fault.InvalidState, fault.KindOf(err))
	})

	t.Run("only proposer may cancel, second cancel reports state", func(t *testing.T) {
		offer, err := st.Trades.CreateOffer(ctx, code, sellOffer("Alice", "Bob", "circle", 1, 20))
		require.NoError(t, err)

		_, err = st.Trades.Cancel(ctx, code, "Bob", offer.ID)
		require.Error(t, err)
		assert.Equal(t, fault.InvalidState, fault.KindOf(err))

		cancelled, err := st.Trades.Cancel(ctx, code, "Alice", offer.ID)
		require.NoError(t, err)
		assert.Equal(t, transaction.StatusCancelled, cancelled.Status)

		_, err = st.Trades.Cancel(ctx, code, "Alice", offer.ID)
		require.Error(t, err)
		assert.Equal(t, fault.NotInProposedState, fault.KindOf(err))
	})

	t.Run("accept after resolution reports AlreadyProcessed", func(t *testing.T) {
		offer, err := st.Trades.CreateOffer(ctx, code, sellOffer("Alice", "Bob", "circle", 1, 20))
		require.NoError(t, err)
		_, err = st.Trades.Reject(ctx, code, "Bob", offer.ID)
		require.NoError(t, err)

		_, err = st.Trades.Accept(ctx, code, "Bob", offer.ID)
		require.Error(t, err)
		assert.Equal(t, fault.AlreadyProcessed, fault.KindOf(err))
	})
}

func TestTradeStore_PendingAndHistory(t *testing.T) {
	st, client := newTestStore(t)
	ctx := context.Background()

	code := createTestSession(t, st, models.ExperimentShapeFactory, shapeFactoryConfig(),
		testParticipant{code: "Alice", specialty: "circle"},
		testParticipant{code: "Bob", specialty: "square"},
		testParticipant{code: "Carol", specialty: "triangle"},
	)
	activateTestSession(t, st, code)
	seedInventory(t, client, code, "Alice", []string{"circle", "circle"})

	toBob, err := st.Trades.CreateOffer(ctx, code, sellOffer("Alice", "Bob", "circle", 1, 20))
	require.NoError(t, err)
	_, err = st.Trades.CreateOffer(ctx, code, sellOffer("Alice", "Carol", "circle", 1, 20))
	require.NoError(t, err)

	_, err = st.Trades.Accept(ctx, code, "Bob", toBob.ID)
	require.NoError(t, err)

	t.Run("pending excludes resolved offers", func(t *testing.T) {
		pending, err := st.Trades.PendingFor(ctx, code, "Alice")
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, "Carol", pending[0].Recipient)

		pending, err = st.Trades.PendingFor(ctx, code, "Bob")
		require.NoError(t, err)
		assert.Empty(t, pending)
	})

	t.Run("recent completed returns settled trades", func(t *testing.T) {
		history, err := st.Trades.RecentCompleted(ctx, code, 10)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, toBob.ID, history[0].ID)
	})
}
