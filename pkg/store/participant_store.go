package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/behavelab/parley/ent"
	"github.com/behavelab/parley/ent/participant"
	"github.com/behavelab/parley/ent/session"
	"github.com/behavelab/parley/ent/shapeinventory"
	"github.com/behavelab/parley/pkg/database"
	"github.com/behavelab/parley/pkg/fault"
	"github.com/behavelab/parley/pkg/models"
)

// ParticipantStore manages participant registration and identity lookups.
type ParticipantStore struct {
	client *database.Client
}

// NewParticipantStore creates a new ParticipantStore.
func NewParticipantStore(client *database.Client) *ParticipantStore {
	return &ParticipantStore{client: client}
}

// Add registers a participant during session setup. ShapeFactory and
// DayTrader participants start with the configured money; ShapeFactory
// participants additionally get an empty inventory row.
func (s *ParticipantStore) Add(ctx context.Context, sessionCode string, req models.CreateParticipantRequest) (*ent.Participant, error) {
	sess, err := sessionByCode(ctx, s.client.Client, sessionCode)
	if err != nil {
		return nil, err
	}
	if sess.Status != session.StatusIdle && sess.Status != session.StatusSetupComplete {
		return nil, fault.Errorf(fault.InvalidState,
			"cannot add participants while session is %s", sess.Status)
	}
	if req.ParticipantCode == "" {
		return nil, fault.New(fault.ParticipantNotFound, "participant_code is required")
	}

	cfg := models.ExperimentConfig(sess.ExperimentConfig)
	kind := models.ExperimentType(sess.ExperimentType)

	money := 0
	if kind == models.ExperimentShapeFactory || kind == models.ExperimentDayTrader {
		money = cfg.StartingMoney()
	}

	pType := participant.TypeHuman
	if req.Type == models.ParticipantAgent {
		pType = participant.TypeAiAgent
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, storeErr(err, "starting transaction")
	}
	defer func() { _ = tx.Rollback() }()

	created, err := tx.Participant.Create().
		SetID(uuid.NewString()).
		SetSessionID(sess.ID).
		SetParticipantCode(req.ParticipantCode).
		SetType(pType).
		SetSpecialtyShape(req.SpecialtyShape).
		SetRole(req.Role).
		SetMoney(money).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fault.Errorf(fault.InvalidState,
				"participant %q already registered in session %s", req.ParticipantCode, sessionCode)
		}
		return nil, storeErr(err, "creating participant")
	}

	if kind == models.ExperimentShapeFactory {
		_, err = tx.ShapeInventory.Create().
			SetID(uuid.NewString()).
			SetSessionID(sess.ID).
			SetParticipantID(created.ID).
			SetShapesInInventory([]string{}).
			Save(ctx)
		if err != nil {
			return nil, storeErr(err, "creating inventory")
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, storeErr(err, "committing participant")
	}
	return created, nil
}

// Get loads a participant by code within a session.
func (s *ParticipantStore) Get(ctx context.Context, sessionCode, participantCode string) (*ent.Participant, error) {
	return participantByCode(ctx, s.client.Client, sessionCode, participantCode)
}

// ListBySession returns all participants of a session ordered by code.
func (s *ParticipantStore) ListBySession(ctx context.Context, sessionCode string) ([]*ent.Participant, error) {
	if err := requireScope(sessionCode); err != nil {
		return nil, err
	}
	list, err := s.client.Participant.Query().
		Where(participant.HasSessionWith(session.SessionCodeEQ(sessionCode))).
		Order(ent.Asc(participant.FieldParticipantCode)).
		All(ctx)
	if err != nil {
		return nil, storeErr(err, "listing participants")
	}
	return list, nil
}

// UpdateLoginStatus moves a participant between login states.
func (s *ParticipantStore) UpdateLoginStatus(ctx context.Context, sessionCode, participantCode string, status participant.LoginStatus) error {
	p, err := s.Get(ctx, sessionCode, participantCode)
	if err != nil {
		return err
	}
	if err := p.Update().SetLoginStatus(status).Exec(ctx); err != nil {
		return storeErr(err, "updating login status")
	}
	return nil
}

// SetOrders replaces a participant's order list. Used once when orders are
// generated for the full roster at session start.
func (s *ParticipantStore) SetOrders(ctx context.Context, sessionCode, participantCode string, orders []string) error {
	p, err := s.Get(ctx, sessionCode, participantCode)
	if err != nil {
		return err
	}
	if err := p.Update().SetOrders(orders).Exec(ctx); err != nil {
		return storeErr(err, "setting orders")
	}
	return nil
}

// SetAssignedWords stores a hinter's secret word list.
func (s *ParticipantStore) SetAssignedWords(ctx context.Context, sessionCode, participantCode string, words []string) error {
	p, err := s.Get(ctx, sessionCode, participantCode)
	if err != nil {
		return err
	}
	if err := p.Update().SetAssignedWords(words).Exec(ctx); err != nil {
		return storeErr(err, "setting assigned words")
	}
	return nil
}

// SetRole assigns the WordGuessing role.
func (s *ParticipantStore) SetRole(ctx context.Context, sessionCode, participantCode, role string) error {
	if role != models.RoleHinter && role != models.RoleGuesser {
		return fault.Errorf(fault.InvalidState, "unknown role %q", role)
	}
	p, err := s.Get(ctx, sessionCode, participantCode)
	if err != nil {
		return err
	}
	if err := p.Update().SetRole(role).Exec(ctx); err != nil {
		return storeErr(err, "setting role")
	}
	return nil
}

// FulfillOrders consumes one inventory tag per requested order index and
// credits incentive money per order. The batch is atomic: if any required tag
// is missing the whole call fails and nothing changes.
func (s *ParticipantStore) FulfillOrders(ctx context.Context, sessionCode, participantCode string, indices []int) (*models.FulfillResult, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, storeErr(err, "starting transaction")
	}
	defer func() { _ = tx.Rollback() }()

	sess, err := txSessionByCode(ctx, tx, sessionCode)
	if err != nil {
		return nil, err
	}
	p, err := lockParticipant(ctx, tx, sess.ID, participantCode)
	if err != nil {
		return nil, err
	}

	orders := p.Orders
	requested := map[int]bool{}
	for _, idx := range indices {
		if idx < 0 || idx >= len(orders) {
			return nil, fault.Errorf(fault.InvalidOrderIndex,
				"order index %d out of range, have %d orders", idx, len(orders))
		}
		if requested[idx] {
			return nil, fault.Errorf(fault.InvalidOrderIndex, "order index %d requested twice", idx)
		}
		requested[idx] = true
	}

	inv, err := tx.ShapeInventory.Query().
		Where(shapeinventory.ParticipantIDEQ(p.ID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fault.New(fault.StoreError, "inventory row missing")
		}
		return nil, storeErr(err, "locking inventory")
	}

	tags := inv.ShapesInInventory
	for idx := range requested {
		var ok bool
		tags, ok = removeTags(tags, orders[idx], 1)
		if !ok {
			return nil, fault.Errorf(fault.InsufficientInventory,
				"no %s in inventory for order %d", orders[idx], idx)
		}
	}

	newOrders := make([]string, 0, len(orders)-len(requested))
	for i, shape := range orders {
		if !requested[i] {
			newOrders = append(newOrders, shape)
		}
	}

	cfg := models.ExperimentConfig(sess.ExperimentConfig)
	gained := cfg.IncentiveMoney() * len(requested)
	newMoney := p.Money + gained

	if err := tx.Participant.UpdateOne(p).
		SetMoney(newMoney).
		SetOrders(newOrders).
		SetOrdersCompleted(p.OrdersCompleted + len(requested)).
		Exec(ctx); err != nil {
		return nil, storeErr(err, "updating participant after fulfilment")
	}
	if err := tx.ShapeInventory.UpdateOne(inv).SetShapesInInventory(tags).Exec(ctx); err != nil {
		return nil, storeErr(err, "consuming inventory")
	}

	if err := tx.Commit(); err != nil {
		return nil, storeErr(err, "committing fulfilment")
	}
	return &models.FulfillResult{
		OrdersFulfilled: len(requested),
		ScoreGained:     gained,
		NewMoney:        newMoney,
		NewOrders:       newOrders,
		NewInventory:    tags,
	}, nil
}

// Inventory returns the participant's inventory tags, nil-safe for kinds
// without inventories.
func (s *ParticipantStore) Inventory(ctx context.Context, sessionCode, participantCode string) ([]string, error) {
	p, err := s.Get(ctx, sessionCode, participantCode)
	if err != nil {
		return nil, err
	}
	inv, err := p.QueryInventory().Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return []string{}, nil
		}
		return nil, storeErr(err, "loading inventory")
	}
	return inv.ShapesInInventory, nil
}

// SpecialtyShapes returns the distinct specialty shapes in a session, in
// participant-code order. This is the order-generation draw set.
func (s *ParticipantStore) SpecialtyShapes(ctx context.Context, sessionCode string) ([]string, error) {
	participants, err := s.ListBySession(ctx, sessionCode)
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	var shapes []string
	for _, p := range participants {
		if p.SpecialtyShape == "" || seen[p.SpecialtyShape] {
			continue
		}
		seen[p.SpecialtyShape] = true
		shapes = append(shapes, p.SpecialtyShape)
	}
	return shapes, nil
}
