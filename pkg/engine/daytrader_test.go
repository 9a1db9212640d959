package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/behavelab/parley/pkg/fault"
	"github.com/behavelab/parley/pkg/models"
)

func TestDayTrader_MakeInvestment(t *testing.T) {
	f, _, _ := newTestFactory(t)
	ctx := context.Background()

	eng, code := newTestSession(t, f, models.ExperimentDayTrader,
		models.ExperimentConfig{
			models.KeyStartingMoney: 300,
			models.KeyMinTradePrice: 15,
			models.KeyMaxTradePrice: 35,
		},
		testParticipant{code: "Alice"},
	)
	startTestSession(t, eng, code)

	result, err := eng.HandleAction(ctx, code, "Alice", ToolMakeInvestment, map[string]any{
		"invest_price":         25.5,
		"invest_decision_type": "group",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result["investment_id"])
	assert.Equal(t, 25.5, result["price"])
	assert.Equal(t, "group", result["decision_type"])

	t.Run("nominal amount is debited rounded", func(t *testing.T) {
		state, err := eng.ParticipantState(ctx, code, "Alice")
		require.NoError(t, err)
		assert.Equal(t, 300-26, state["money"])
		assert.Equal(t, 15, state["min_trade_price"])
		assert.Equal(t, 35, state["max_trade_price"])
	})

	t.Run("decision type defaults to individual", func(t *testing.T) {
		result, err := eng.HandleAction(ctx, code, "Alice", ToolMakeInvestment, map[string]any{
			"invest_price": 15.0,
		})
		require.NoError(t, err)
		assert.Equal(t, "individual", result["decision_type"])
	})

	t.Run("price band is enforced", func(t *testing.T) {
		for _, price := range []float64{14.99, 35.01} {
			_, err := eng.HandleAction(ctx, code, "Alice", ToolMakeInvestment, map[string]any{
				"invest_price": price,
			})
			require.Error(t, err, "price %v", price)
			assert.Equal(t, fault.InvalidPrice, fault.KindOf(err))
		}
	})

	t.Run("missing price is an InvalidPrice fault", func(t *testing.T) {
		_, err := eng.HandleAction(ctx, code, "Alice", ToolMakeInvestment, map[string]any{})
		require.Error(t, err)
		assert.Equal(t, fault.InvalidPrice, fault.KindOf(err))
	})

	t.Run("history lists decisions oldest first", func(t *testing.T) {
		result, err := eng.HandleAction(ctx, code, "Alice", ToolGetInvestmentHistory, nil)
		require.NoError(t, err)
		history, ok := result["investment_history"].([]map[string]any)
		require.True(t, ok)
		require.Len(t, history, 2)
		assert.Equal(t, 25.5, history[0]["price"])
		assert.Equal(t, 15.0, history[1]["price"])
	})

	t.Run("trade tools are not available", func(t *testing.T) {
		_, err := eng.HandleAction(ctx, code, "Alice", ToolCreateTradeOffer, map[string]any{})
		require.Error(t, err)
		assert.Equal(t, fault.InvalidState, fault.KindOf(err))
	})
}
