package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/behavelab/parley/pkg/fault"
	"github.com/behavelab/parley/pkg/models"
)

func TestInvestmentStore_Record(t *testing.T) {
	st, client := newTestStore(t)
	ctx := context.Background()

	cfg := models.ExperimentConfig{
		"startingMoney": 300,
		"minTradePrice": 15,
		"maxTradePrice": 35,
	}
	code := createTestSession(t, st, models.ExperimentDayTrader, cfg,
		testParticipant{code: "D1"},
		testParticipant{code: "D2"},
	)
	activateTestSession(t, st, code)

	t.Run("records decision and debits rounded price", func(t *testing.T) {
		inv, err := st.Investments.Record(ctx, code, "D1", 20.4, "individual")
		require.NoError(t, err)
		assert.InDelta(t, 20.4, inv.Price, 0.0001)
		assert.Equal(t, "individual", string(inv.DecisionType))

		p := getTestParticipant(t, client, code, "D1")
		assert.Equal(t, 280, p.Money)
	})

	t.Run("boundary prices are accepted", func(t *testing.T) {
		_, err := st.Investments.Record(ctx, code, "D2", 15, "individual")
		require.NoError(t, err)
		_, err = st.Investments.Record(ctx, code, "D2", 35, "group")
		require.NoError(t, err)

		p := getTestParticipant(t, client, code, "D2")
		assert.Equal(t, 250, p.Money)
	})

	t.Run("price outside the configured range", func(t *testing.T) {
		_, err := st.Investments.Record(ctx, code, "D1", 14.99, "individual")
		require.Error(t, err)
		assert.Equal(t, fault.InvalidPrice, fault.KindOf(err))

		_, err = st.Investments.Record(ctx, code, "D1", 35.01, "individual")
		require.Error(t, err)
		assert.Equal(t, fault.InvalidPrice, fault.KindOf(err))
	})

	t.Run("unknown decision type", func(t *testing.T) {
		_, err := st.Investments.Record(ctx, code, "D1", 20, "committee")
		require.Error(t, err)
		assert.Equal(t, fault.InvalidState, fault.KindOf(err))
	})

	t.Run("insufficient funds", func(t *testing.T) {
		setMoney(t, client, code, "D1", 10)
		_, err := st.Investments.Record(ctx, code, "D1", 20, "individual")
		require.Error(t, err)
		assert.Equal(t, fault.InsufficientFunds, fault.KindOf(err))

		p := getTestParticipant(t, client, code, "D1")
		assert.Equal(t, 10, p.Money)
	})

	t.Run("history is oldest first", func(t *testing.T) {
		history, err := st.Investments.History(ctx, code, "D2")
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.InDelta(t, 15, history[0].Price, 0.0001)
		assert.InDelta(t, 35, history[1].Price, 0.0001)
	})
}
