package store

import (
	"context"
	"math"

	"github.com/google/uuid"

	"github.com/behavelab/parley/ent"
	"github.com/behavelab/parley/ent/investment"
	"github.com/behavelab/parley/ent/session"
	"github.com/behavelab/parley/pkg/database"
	"github.com/behavelab/parley/pkg/fault"
	"github.com/behavelab/parley/pkg/models"
)

// InvestmentStore records DayTrader investment decisions.
type InvestmentStore struct {
	client *database.Client
}

// NewInvestmentStore creates a new InvestmentStore.
func NewInvestmentStore(client *database.Client) *InvestmentStore {
	return &InvestmentStore{client: client}
}

// Record stores an investment and debits the nominal amount from the
// participant. The price must lie within the session's configured range.
func (s *InvestmentStore) Record(ctx context.Context, sessionCode, participantCode string, price float64, decisionType string) (*ent.Investment, error) {
	if decisionType != investment.DecisionTypeIndividual.String() &&
		decisionType != investment.DecisionTypeGroup.String() {
		return nil, fault.Errorf(fault.InvalidState, "decision_type must be individual or group, got %q", decisionType)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, storeErr(err, "starting transaction")
	}
	defer func() { _ = tx.Rollback() }()

	sess, err := txSessionByCode(ctx, tx, sessionCode)
	if err != nil {
		return nil, err
	}
	cfg := models.ExperimentConfig(sess.ExperimentConfig)
	if price < float64(cfg.MinTradePrice()) || price > float64(cfg.MaxTradePrice()) {
		return nil, fault.Errorf(fault.InvalidPrice,
			"price %.2f outside allowed range [%d, %d]", price, cfg.MinTradePrice(), cfg.MaxTradePrice())
	}

	p, err := lockParticipant(ctx, tx, sess.ID, participantCode)
	if err != nil {
		return nil, err
	}
	cost := int(math.Round(price))
	if p.Money < cost {
		return nil, fault.Errorf(fault.InsufficientFunds,
			"investment of %d exceeds balance %d", cost, p.Money)
	}

	inv, err := tx.Investment.Create().
		SetID(uuid.NewString()).
		SetSessionID(sess.ID).
		SetParticipantID(p.ID).
		SetPrice(price).
		SetDecisionType(investment.DecisionType(decisionType)).
		Save(ctx)
	if err != nil {
		return nil, storeErr(err, "recording investment")
	}
	if err := tx.Participant.UpdateOne(p).SetMoney(p.Money - cost).Exec(ctx); err != nil {
		return nil, storeErr(err, "debiting investment")
	}

	if err := tx.Commit(); err != nil {
		return nil, storeErr(err, "committing investment")
	}
	return inv, nil
}

// History returns a participant's investments, oldest first.
func (s *InvestmentStore) History(ctx context.Context, sessionCode, participantCode string) ([]*ent.Investment, error) {
	p, err := participantByCode(ctx, s.client.Client, sessionCode, participantCode)
	if err != nil {
		return nil, err
	}
	list, err := s.client.Investment.Query().
		Where(investment.ParticipantIDEQ(p.ID)).
		Order(ent.Asc(investment.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, storeErr(err, "loading investment history")
	}
	return list, nil
}

// ListBySession returns every investment of the session, oldest first, with
// the participant edge loaded so callers can render participant codes.
func (s *InvestmentStore) ListBySession(ctx context.Context, sessionCode string) ([]*ent.Investment, error) {
	if err := requireScope(sessionCode); err != nil {
		return nil, err
	}
	list, err := s.client.Investment.Query().
		Where(investment.HasSessionWith(session.SessionCodeEQ(sessionCode))).
		WithParticipant().
		Order(ent.Asc(investment.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, storeErr(err, "listing investments")
	}
	return list, nil
}
