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

// The full trade happy path: Alice produces circles, sells one to Bob, both
// end up at 280 money with the inventory moved.
func TestShapeFactory_TradeHappyPath(t *testing.T) {
	f, st, _ := newTestFactory(t)
	ctx := context.Background()

	// Zero production time so promotion is due immediately.
	cfg := shapeFactoryConfig()
	cfg[models.KeyProductionTime] = 0

	eng, code := newTestSession(t, f, models.ExperimentShapeFactory, cfg,
		testParticipant{code: "Alice", specialty: "circle"},
		testParticipant{code: "Bob", specialty: "square"},
	)
	startTestSession(t, eng, code)

	produced, err := eng.HandleAction(ctx, code, "Alice", ToolProduceShape, map[string]any{
		"shape": "circle", "quantity": 4,
	})
	require.NoError(t, err)
	assert.Equal(t, "in_progress", produced["status"])

	promoted, err := eng.HandleAction(ctx, code, "Alice", ToolProcessCompletedProductions, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, promoted["processed_count"])

	offer, err := eng.HandleAction(ctx, code, "Alice", ToolCreateTradeOffer, map[string]any{
		"recipient":      "Bob",
		"offer_type":     "sell",
		"shape":          "circle",
		"quantity":       1,
		"price_per_unit": 20,
	})
	require.NoError(t, err)
	shortID, ok := offer["short_id"].(string)
	require.True(t, ok)
	assert.Regexp(t, `^S[0-9A-F]{4}-\d{3}$`, shortID)

	accepted, err := eng.HandleAction(ctx, code, "Bob", ToolRespondToTradeOffer, map[string]any{
		"transaction_id": shortID,
		"response":       "accept",
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", accepted["status"])

	aliceState, err := eng.ParticipantState(ctx, code, "Alice")
	require.NoError(t, err)
	assert.Equal(t, 300-4*10+20, aliceState["money"])
	assert.Equal(t, []string{"circle", "circle", "circle"}, aliceState["inventory"])

	bobState, err := eng.ParticipantState(ctx, code, "Bob")
	require.NoError(t, err)
	assert.Equal(t, 300-20, bobState["money"])
	assert.Equal(t, []string{"circle"}, bobState["inventory"])

	t.Run("completed trades show up in recent history", func(t *testing.T) {
		recent, ok := aliceState["recent_trades"].([]map[string]any)
		require.True(t, ok)
		require.Len(t, recent, 1)
		assert.Equal(t, 20, recent[0]["total_price"])
	})

	t.Run("events capture the whole exchange", func(t *testing.T) {
		evts, err := st.Events.EventsSince(ctx, events.SessionChannel(code), 0, 50)
		require.NoError(t, err)
		var types []string
		for _, e := range evts {
			types = append(types, e.Payload["type"].(string))
		}
		assert.Contains(t, types, "new_trade_offer")
		assert.Contains(t, types, "trade_offer_response")
		assert.Contains(t, types, "trade_completed")
	})
}

func TestShapeFactory_TradeValidation(t *testing.T) {
	f, _, _ := newTestFactory(t)
	ctx := context.Background()

	eng, code := newTestSession(t, f, models.ExperimentShapeFactory, shapeFactoryConfig(),
		testParticipant{code: "Alice", specialty: "circle"},
		testParticipant{code: "Bob", specialty: "square"},
	)
	startTestSession(t, eng, code)

	t.Run("price band is inclusive at both ends", func(t *testing.T) {
		for _, price := range []int{15, 35} {
			_, err := eng.HandleAction(ctx, code, "Alice", ToolCreateTradeOffer, map[string]any{
				"recipient": "Bob", "offer_type": "buy", "shape": "square",
				"quantity": 1, "price_per_unit": price,
			})
			require.NoError(t, err, "price %d", price)
		}
		for _, price := range []int{14, 36} {
			_, err := eng.HandleAction(ctx, code, "Alice", ToolCreateTradeOffer, map[string]any{
				"recipient": "Bob", "offer_type": "buy", "shape": "square",
				"quantity": 1, "price_per_unit": price,
			})
			require.Error(t, err, "price %d", price)
			assert.Equal(t, fault.InvalidPrice, fault.KindOf(err))
		}
	})

	t.Run("unknown shapes are rejected", func(t *testing.T) {
		_, err := eng.HandleAction(ctx, code, "Alice", ToolCreateTradeOffer, map[string]any{
			"recipient": "Bob", "offer_type": "buy", "shape": "hexagon",
			"quantity": 1, "price_per_unit": 20,
		})
		require.Error(t, err)
		assert.Equal(t, fault.InvalidShape, fault.KindOf(err))
	})

	t.Run("missing price is rejected before the store", func(t *testing.T) {
		_, err := eng.HandleAction(ctx, code, "Alice", ToolCreateTradeOffer, map[string]any{
			"recipient": "Bob", "offer_type": "buy", "shape": "square", "quantity": 1,
		})
		require.Error(t, err)
		assert.Equal(t, fault.InvalidPrice, fault.KindOf(err))
	})

	t.Run("cancel is proposer-only and idempotence returns NotInProposedState", func(t *testing.T) {
		offer, err := eng.HandleAction(ctx, code, "Alice", ToolCreateTradeOffer, map[string]any{
			"recipient": "Bob", "offer_type": "sell", "shape": "circle",
			"quantity": 1, "price_per_unit": 20,
		})
		require.NoError(t, err)
		ref := offer["transaction_id"].(string)

		_, err = eng.HandleAction(ctx, code, "Bob", ToolCancelTradeOffer, map[string]any{"transaction_id": ref})
		require.Error(t, err)

		_, err = eng.HandleAction(ctx, code, "Alice", ToolCancelTradeOffer, map[string]any{"transaction_id": ref})
		require.NoError(t, err)

		_, err = eng.HandleAction(ctx, code, "Alice", ToolCancelTradeOffer, map[string]any{"transaction_id": ref})
		require.Error(t, err)
		assert.Equal(t, fault.NotInProposedState, fault.KindOf(err))
	})

	t.Run("failed settlement cancels the offer", func(t *testing.T) {
		// Alice sells a circle she does not have.
		offer, err := eng.HandleAction(ctx, code, "Alice", ToolCreateTradeOffer, map[string]any{
			"recipient": "Bob", "offer_type": "sell", "shape": "circle",
			"quantity": 1, "price_per_unit": 20,
		})
		require.NoError(t, err)

		_, err = eng.HandleAction(ctx, code, "Bob", ToolRespondToTradeOffer, map[string]any{
			"transaction_id": offer["transaction_id"], "response": "accept",
		})
		require.Error(t, err)
		assert.Equal(t, fault.InsufficientInventory, fault.KindOf(err))

		_, err = eng.HandleAction(ctx, code, "Bob", ToolRespondToTradeOffer, map[string]any{
			"transaction_id": offer["transaction_id"], "response": "accept",
		})
		require.Error(t, err)
		assert.Equal(t, fault.AlreadyProcessed, fault.KindOf(err), "offer was flipped to cancelled")
	})
}

// S6: promotion never advances the queue; starting the next entry is a
// participant decision made through start_next_production.
func TestShapeFactory_QueueNeverAutoAdvances(t *testing.T) {
	f, _, _ := newTestFactory(t)
	ctx := context.Background()

	cfg := shapeFactoryConfig()
	cfg[models.KeyProductionTime] = 0

	eng, code := newTestSession(t, f, models.ExperimentShapeFactory, cfg,
		testParticipant{code: "Alice", specialty: "circle"},
		testParticipant{code: "Bob", specialty: "square"},
	)
	startTestSession(t, eng, code)

	_, err := eng.HandleAction(ctx, code, "Alice", ToolProduceShape, map[string]any{"shape": "circle", "quantity": 2})
	require.NoError(t, err)
	_, err = eng.HandleAction(ctx, code, "Alice", ToolProduceShape, map[string]any{"shape": "square", "quantity": 1})
	require.NoError(t, err)

	started, err := eng.HandleAction(ctx, code, "Alice", ToolStartNextProduction, nil)
	require.NoError(t, err)
	assert.Equal(t, false, started["started"], "no start while a batch is in progress")

	result, err := eng.HandleAction(ctx, code, "Alice", ToolProcessCompletedProductions, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result["processed_count"])

	state, err := eng.ParticipantState(ctx, code, "Alice")
	require.NoError(t, err)
	queue, ok := state["production_queue"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, queue, 1)
	assert.Equal(t, "queued", queue[0]["status"], "second entry must wait for an explicit start")

	started, err = eng.HandleAction(ctx, code, "Alice", ToolStartNextProduction, nil)
	require.NoError(t, err)
	assert.Equal(t, true, started["started"])
	assert.Equal(t, "in_progress", started["status"])

	result, err = eng.HandleAction(ctx, code, "Alice", ToolProcessCompletedProductions, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result["processed_count"])

	started, err = eng.HandleAction(ctx, code, "Alice", ToolStartNextProduction, nil)
	require.NoError(t, err)
	assert.Equal(t, false, started["started"], "nothing left to start")
}

// S3: fulfilment is all-or-nothing against inventory.
func TestShapeFactory_FulfillOrders(t *testing.T) {
	f, st, client := newTestFactory(t)
	ctx := context.Background()

	eng, code := newTestSession(t, f, models.ExperimentShapeFactory, shapeFactoryConfig(),
		testParticipant{code: "Alice", specialty: "circle"},
		testParticipant{code: "Bob", specialty: "square"},
		testParticipant{code: "Carol", specialty: "triangle"},
	)
	startTestSession(t, eng, code)

	require.NoError(t, st.Participants.SetOrders(ctx, code, "Alice",
		[]string{"square", "square", "triangle", "triangle"}))
	seedTestInventory(t, client, code, "Alice", []string{"square"})

	_, err := eng.HandleAction(ctx, code, "Alice", ToolFulfillOrders, map[string]any{
		"order_indices": []any{0.0, 1.0},
	})
	require.Error(t, err)
	assert.Equal(t, fault.InsufficientInventory, fault.KindOf(err))

	result, err := eng.HandleAction(ctx, code, "Alice", ToolFulfillOrders, map[string]any{
		"order_indices": []any{0.0},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result["orders_fulfilled"])
	assert.Equal(t, 50, result["score_gained"])
	assert.Equal(t, 350, result["new_money"])
	assert.Equal(t, []string{"square", "triangle", "triangle"}, result["new_orders"])

	t.Run("malformed indices are rejected up front", func(t *testing.T) {
		_, err := eng.HandleAction(ctx, code, "Alice", ToolFulfillOrders, map[string]any{
			"order_indices": []any{"first"},
		})
		require.Error(t, err)
		assert.Equal(t, fault.InvalidOrderIndex, fault.KindOf(err))
	})
}

func TestShapeFactory_OrderGeneration(t *testing.T) {
	f, _, _ := newTestFactory(t)
	ctx := context.Background()

	eng, code := newTestSession(t, f, models.ExperimentShapeFactory, shapeFactoryConfig(),
		testParticipant{code: "Alice", specialty: "circle"},
		testParticipant{code: "Bob", specialty: "square"},
		testParticipant{code: "Carol", specialty: "triangle"},
	)

	state, err := eng.ParticipantState(ctx, code, "Alice")
	require.NoError(t, err)
	orders, ok := state["orders"].([]string)
	require.True(t, ok)
	require.Len(t, orders, 4)
	for _, shape := range orders {
		assert.NotEqual(t, "circle", shape, "own specialty never appears")
		assert.Contains(t, []string{"square", "triangle"}, shape)
	}

	t.Run("start keeps existing order lists", func(t *testing.T) {
		startTestSession(t, eng, code)
		after, err := eng.ParticipantState(ctx, code, "Alice")
		require.NoError(t, err)
		assert.Equal(t, orders, after["orders"])
	})

	t.Run("specialty shape is mandatory", func(t *testing.T) {
		_, err := eng.AddParticipant(ctx, code, models.CreateParticipantRequest{
			ParticipantCode: "NoShape",
			Type:            models.ParticipantAgent,
		})
		require.Error(t, err)
		assert.Equal(t, fault.InvalidShape, fault.KindOf(err))
	})
}

func TestShapeFactory_UnknownAction(t *testing.T) {
	f, _, _ := newTestFactory(t)
	eng, code := newTestSession(t, f, models.ExperimentShapeFactory, shapeFactoryConfig(),
		testParticipant{code: "Alice", specialty: "circle"},
	)
	_, err := eng.HandleAction(context.Background(), code, "Alice", ToolSubmitVote, map[string]any{"candidate_name": "X"})
	require.Error(t, err)
	assert.Equal(t, fault.InvalidState, fault.KindOf(err))
}
