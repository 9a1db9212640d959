package engine

import (
	"context"
	"time"

	"github.com/behavelab/parley/ent"
	"github.com/behavelab/parley/pkg/fault"
	"github.com/behavelab/parley/pkg/models"
)

// dayTrader is the investment-decision experiment. The only kind-specific
// action is recording an investment at a price inside the session's trade
// band; the nominal amount is debited from the participant, no returns are
// modelled.
type dayTrader struct {
	*base
}

func (e *dayTrader) ParticipantState(ctx context.Context, sessionCode, participantCode string) (map[string]any, error) {
	p, err := e.store.Participants.Get(ctx, sessionCode, participantCode)
	if err != nil {
		return nil, err
	}
	history, err := e.store.Investments.History(ctx, sessionCode, participantCode)
	if err != nil {
		return nil, err
	}
	sess, err := e.store.Sessions.GetByCode(ctx, sessionCode)
	if err != nil {
		return nil, err
	}
	cfg := models.ExperimentConfig(sess.ExperimentConfig)

	state := baseState(p)
	state["money"] = p.Money
	state["starting_money"] = cfg.StartingMoney()
	state["min_trade_price"] = cfg.MinTradePrice()
	state["max_trade_price"] = cfg.MaxTradePrice()
	state["investment_history"] = investmentSummaries(history)
	return state, nil
}

func (e *dayTrader) HandleAction(ctx context.Context, sessionCode, participantCode, name string, args map[string]any) (map[string]any, error) {
	switch name {
	case ToolMakeInvestment:
		price, ok := argFloat(args, "invest_price")
		if !ok {
			return nil, fault.New(fault.InvalidPrice, "invest_price is required")
		}
		return e.MakeInvestment(ctx, sessionCode, participantCode, price, argString(args, "invest_decision_type"))
	case ToolGetInvestmentHistory:
		history, err := e.store.Investments.History(ctx, sessionCode, participantCode)
		if err != nil {
			return nil, err
		}
		return map[string]any{"investment_history": investmentSummaries(history)}, nil
	default:
		return nil, unknownAction(e.kind, name)
	}
}

// MakeInvestment records the decision and debits the rounded price.
func (e *dayTrader) MakeInvestment(ctx context.Context, sessionCode, participantCode string, price float64, decisionType string) (map[string]any, error) {
	if decisionType == "" {
		decisionType = "individual"
	}
	inv, err := e.store.Investments.Record(ctx, sessionCode, participantCode, price, decisionType)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"investment_id": inv.ID,
		"price":         inv.Price,
		"decision_type": inv.DecisionType.String(),
	}, nil
}

func investmentSummaries(list []*ent.Investment) []map[string]any {
	out := make([]map[string]any, 0, len(list))
	for _, inv := range list {
		out = append(out, map[string]any{
			"investment_id": inv.ID,
			"price":         inv.Price,
			"decision_type": inv.DecisionType.String(),
			"timestamp":     inv.CreatedAt.Format(time.RFC3339),
		})
	}
	return out
}
