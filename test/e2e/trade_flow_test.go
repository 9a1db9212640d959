package e2e

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/behavelab/parley/pkg/models"
)

// privateState unwraps the participant's view from a game-state response.
func privateState(t *testing.T, state map[string]any) map[string]any {
	t.Helper()
	private, ok := state["private_state"].(map[string]any)
	require.True(t, ok, "game state carries private_state")
	return private
}

// TestShapeFactoryTradeFlow runs a complete trade between two humans over
// the actions endpoint: offer, acceptance, settlement, and the realtime
// events every dashboard sees along the way.
func TestShapeFactoryTradeFlow(t *testing.T) {
	t.Parallel()
	app := NewTestApp(t)
	code := NewSessionCode()

	app.CreateSession(t, code, models.ExperimentShapeFactory, models.ExperimentConfig{
		models.KeyRoundDuration: 5,
		models.KeyStartingMoney: 100,
		models.KeyMinTradePrice: 5,
		models.KeyMaxTradePrice: 30,
	})
	app.AddHuman(t, code, "P1", map[string]any{"specialty_shape": "square"})
	app.AddHuman(t, code, "P2", map[string]any{"specialty_shape": "circle"})
	app.StartSession(t, code)

	ws := app.SubscribeWS(t, "session:"+code)

	// Stock the seller directly; production timers are too slow for tests.
	app.SeedInventory(t, code, "P2", []string{"circle", "circle", "circle"})

	// P1 offers to buy 2 circles at 10 each.
	offer := app.DoAction(t, code, "P1", "create_trade_offer", map[string]any{
		"recipient":      "P2",
		"offer_type":     "buy",
		"shape":          "circle",
		"quantity":       2,
		"price_per_unit": 10,
	})
	assert.Equal(t, true, offer["success"])
	shortID, _ := offer["short_id"].(string)
	require.NotEmpty(t, shortID)

	evt, err := ws.WaitForEventType("new_trade_offer", 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "P1", evt.Parsed["proposer"])
	assert.Equal(t, "P2", evt.Parsed["recipient"])
	assert.Equal(t, "circle", evt.Parsed["shape"])
	assert.Equal(t, float64(2), evt.Parsed["quantity"])

	// The recipient sees the pending offer in their private view.
	p2 := privateState(t, app.GetGameState(t, code, "P2"))
	received, ok := p2["pending_offers_received"].([]any)
	require.True(t, ok, "P2 holds a pending received offer")
	require.Len(t, received, 1)
	pending := received[0].(map[string]any)
	assert.Equal(t, shortID, pending["short_id"])

	// P2 accepts by short id; the dispatcher resolves it to the UUID.
	accept := app.DoAction(t, code, "P2", "respond_to_trade_offer", map[string]any{
		"transaction_id": shortID,
		"response":       "accept",
	})
	assert.Equal(t, true, accept["success"])
	assert.Equal(t, "completed", accept["status"])

	response, err := ws.WaitForEventType("trade_offer_response", 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "P2", response.Parsed["responder"])
	assert.Equal(t, "accepted", response.Parsed["response"])

	done, err := ws.WaitForEventType("trade_completed", 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "P1", done.Parsed["buyer"])
	assert.Equal(t, "P2", done.Parsed["seller"])
	assert.Equal(t, float64(20), done.Parsed["total_price"])

	// Settlement moved money and shapes both ways.
	p1 := privateState(t, app.GetGameState(t, code, "P1"))
	assert.Equal(t, float64(80), p1["money"])
	assert.ElementsMatch(t, []any{"circle", "circle"}, p1["inventory"])

	p2 = privateState(t, app.GetGameState(t, code, "P2"))
	assert.Equal(t, float64(120), p2["money"])
	assert.ElementsMatch(t, []any{"circle"}, p2["inventory"])
}

// TestShapeFactoryTradeRejections exercises the refusal paths: rejected
// offers leave balances alone, settlement failures void the offer, and
// out-of-band prices never create one.
func TestShapeFactoryTradeRejections(t *testing.T) {
	t.Parallel()
	app := NewTestApp(t)
	code := NewSessionCode()

	app.CreateSession(t, code, models.ExperimentShapeFactory, models.ExperimentConfig{
		models.KeyRoundDuration: 5,
		models.KeyStartingMoney: 100,
		models.KeyMinTradePrice: 5,
		models.KeyMaxTradePrice: 30,
	})
	app.AddHuman(t, code, "P1", map[string]any{"specialty_shape": "square"})
	app.AddHuman(t, code, "P2", map[string]any{"specialty_shape": "circle"})
	app.StartSession(t, code)

	ws := app.SubscribeWS(t, "session:"+code)
	app.SeedInventory(t, code, "P2", []string{"circle"})

	// Rejection leaves everything untouched.
	offer := app.DoAction(t, code, "P1", "create_trade_offer", map[string]any{
		"recipient": "P2", "offer_type": "buy", "shape": "circle",
		"quantity": 1, "price_per_unit": 10,
	})
	rejected := app.DoAction(t, code, "P2", "respond_to_trade_offer", map[string]any{
		"transaction_id": offer["short_id"],
		"response":       "reject",
	})
	assert.Equal(t, true, rejected["success"])

	response, err := ws.WaitForEventType("trade_offer_response", 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "rejected", response.Parsed["response"])

	p1 := privateState(t, app.GetGameState(t, code, "P1"))
	assert.Equal(t, float64(100), p1["money"])

	// Accepting an offer the seller cannot cover voids it system-side.
	over := app.DoAction(t, code, "P1", "create_trade_offer", map[string]any{
		"recipient": "P2", "offer_type": "buy", "shape": "circle",
		"quantity": 3, "price_per_unit": 5,
	})
	failed := app.DoActionExpect(t, code, "P2", "respond_to_trade_offer", map[string]any{
		"transaction_id": over["short_id"],
		"response":       "accept",
	}, http.StatusBadRequest)
	assert.Equal(t, false, failed["success"])
	assert.Equal(t, "InsufficientInventory", failed["error"])

	cancelled, err := ws.WaitForEventType("trade_offer_cancelled", 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "system", cancelled.Parsed["cancelled_by"])

	// Prices outside the configured band never create an offer.
	priced := app.DoActionExpect(t, code, "P1", "create_trade_offer", map[string]any{
		"recipient": "P2", "offer_type": "buy", "shape": "circle",
		"quantity": 1, "price_per_unit": 500,
	}, http.StatusBadRequest)
	assert.Equal(t, false, priced["success"])
	assert.Equal(t, "InvalidPrice", priced["error"])

	// Unknown tool names are rejected as unavailable actions.
	unknown := app.DoActionExpect(t, code, "P1", "print_money", nil, http.StatusConflict)
	assert.Equal(t, false, unknown["success"])
}
