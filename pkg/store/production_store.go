package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/behavelab/parley/ent"
	"github.com/behavelab/parley/ent/participant"
	"github.com/behavelab/parley/ent/productionqueueentry"
	"github.com/behavelab/parley/ent/shapeinventory"
	"github.com/behavelab/parley/pkg/database"
	"github.com/behavelab/parley/pkg/fault"
	"github.com/behavelab/parley/pkg/models"
)

// ProductionStore owns the per-participant production queue. At most one
// entry per participant is in_progress at a time, and the queue never
// advances on its own: promotion of queued entries is an explicit action.
type ProductionStore struct {
	client *database.Client
}

// NewProductionStore creates a new ProductionStore.
func NewProductionStore(client *database.Client) *ProductionStore {
	return &ProductionStore{client: client}
}

// Enqueue requests production of quantity units of a shape. The unit cost
// depends on whether the shape is the participant's specialty, money is
// debited up front, and specialty units count against maxProductionNum.
// When nothing is in progress the entry starts immediately; otherwise it is
// appended with an estimated completion that accounts for the work ahead of
// it.
func (s *ProductionStore) Enqueue(ctx context.Context, sessionCode, participantCode, shape string, quantity int) (*ent.ProductionQueueEntry, error) {
	if quantity < 1 {
		return nil, fault.Errorf(fault.InvalidQuantity, "quantity must be at least 1, got %d", quantity)
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
	p, err := lockParticipant(ctx, tx, sess.ID, participantCode)
	if err != nil {
		return nil, err
	}

	cfg := models.ExperimentConfig(sess.ExperimentConfig)
	specialty := shape == p.SpecialtyShape

	unitCost := cfg.RegularCost()
	if specialty {
		unitCost = cfg.SpecialtyCost()
	}
	if specialty && p.SpecialtyProductionUsed+quantity > cfg.MaxProductionNum() {
		return nil, fault.Errorf(fault.ProductionLimitReached,
			"specialty production cap is %d, already used %d", cfg.MaxProductionNum(), p.SpecialtyProductionUsed)
	}
	cost := unitCost * quantity
	if p.Money < cost {
		return nil, fault.Errorf(fault.InsufficientFunds,
			"production costs %d, participant has %d", cost, p.Money)
	}

	unfinished, err := tx.ProductionQueueEntry.Query().
		Where(
			productionqueueentry.ParticipantIDEQ(p.ID),
			productionqueueentry.StatusIn(
				productionqueueentry.StatusInProgress,
				productionqueueentry.StatusQueued,
			),
		).
		All(ctx)
	if err != nil {
		return nil, storeErr(err, "loading queue")
	}

	now := time.Now()
	duration := time.Duration(quantity) * cfg.ProductionTime()
	maxPosition := 0
	backlog := time.Duration(0)
	hasInProgress := false
	for _, e := range unfinished {
		if e.QueuePosition > maxPosition {
			maxPosition = e.QueuePosition
		}
		backlog += time.Duration(e.Quantity) * cfg.ProductionTime()
		if e.Status == productionqueueentry.StatusInProgress {
			hasInProgress = true
		}
	}

	create := tx.ProductionQueueEntry.Create().
		SetID(uuid.NewString()).
		SetSessionID(sess.ID).
		SetParticipantID(p.ID).
		SetShape(shape).
		SetQuantity(quantity).
		SetQueuePosition(maxPosition + 1).
		SetEstimatedCompletion(now.Add(backlog + duration))
	if hasInProgress {
		create.SetStatus(productionqueueentry.StatusQueued)
	} else {
		create.SetStatus(productionqueueentry.StatusInProgress).
			SetStartTime(now).
			SetEstimatedCompletion(now.Add(duration))
	}

	entry, err := create.Save(ctx)
	if err != nil {
		return nil, storeErr(err, "creating queue entry")
	}

	update := tx.Participant.UpdateOne(p).SetMoney(p.Money - cost)
	if specialty {
		update.SetSpecialtyProductionUsed(p.SpecialtyProductionUsed + quantity)
	}
	if err := update.Exec(ctx); err != nil {
		return nil, storeErr(err, "debiting production cost")
	}

	if err := tx.Commit(); err != nil {
		return nil, storeErr(err, "committing queue entry")
	}
	return entry, nil
}

// PromoteCompleted marks every in_progress entry whose estimated completion
// has passed as completed and deposits its output into the owner's inventory.
// It never starts the next queued entry.
func (s *ProductionStore) PromoteCompleted(ctx context.Context, sessionCode, participantCode string) ([]*ent.ProductionQueueEntry, error) {
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

	due, err := tx.ProductionQueueEntry.Query().
		Where(
			productionqueueentry.ParticipantIDEQ(p.ID),
			productionqueueentry.StatusEQ(productionqueueentry.StatusInProgress),
			productionqueueentry.EstimatedCompletionLTE(time.Now()),
		).
		ForUpdate().
		All(ctx)
	if err != nil {
		return nil, storeErr(err, "finding due entries")
	}
	if len(due) == 0 {
		return nil, tx.Commit()
	}

	inv, err := tx.ShapeInventory.Query().
		Where(shapeinventory.ParticipantIDEQ(p.ID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return nil, storeErr(err, "locking inventory")
	}

	tags := inv.ShapesInInventory
	var promoted []*ent.ProductionQueueEntry
	for _, e := range due {
		done, err := tx.ProductionQueueEntry.UpdateOne(e).
			SetStatus(productionqueueentry.StatusCompleted).
			Save(ctx)
		if err != nil {
			return nil, storeErr(err, "completing queue entry")
		}
		for i := 0; i < e.Quantity; i++ {
			tags = append(tags, e.Shape)
		}
		promoted = append(promoted, done)
	}
	if err := tx.ShapeInventory.UpdateOne(inv).SetShapesInInventory(tags).Exec(ctx); err != nil {
		return nil, storeErr(err, "depositing production output")
	}

	if err := tx.Commit(); err != nil {
		return nil, storeErr(err, "committing promotion")
	}
	return promoted, nil
}

// StartNextQueued promotes the lowest-position queued entry to in_progress.
// Returns nil with no error when there is nothing queued or something is
// still in progress.
func (s *ProductionStore) StartNextQueued(ctx context.Context, sessionCode, participantCode string) (*ent.ProductionQueueEntry, error) {
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

	busy, err := tx.ProductionQueueEntry.Query().
		Where(
			productionqueueentry.ParticipantIDEQ(p.ID),
			productionqueueentry.StatusEQ(productionqueueentry.StatusInProgress),
		).
		Exist(ctx)
	if err != nil {
		return nil, storeErr(err, "checking in-progress work")
	}
	if busy {
		return nil, tx.Commit()
	}

	next, err := tx.ProductionQueueEntry.Query().
		Where(
			productionqueueentry.ParticipantIDEQ(p.ID),
			productionqueueentry.StatusEQ(productionqueueentry.StatusQueued),
		).
		Order(ent.Asc(productionqueueentry.FieldQueuePosition)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, tx.Commit()
		}
		return nil, storeErr(err, "finding next queued entry")
	}

	cfg := models.ExperimentConfig(sess.ExperimentConfig)
	now := time.Now()
	started, err := tx.ProductionQueueEntry.UpdateOne(next).
		SetStatus(productionqueueentry.StatusInProgress).
		SetStartTime(now).
		SetEstimatedCompletion(now.Add(time.Duration(next.Quantity) * cfg.ProductionTime())).
		Save(ctx)
	if err != nil {
		return nil, storeErr(err, "starting queue entry")
	}
	if err := tx.Commit(); err != nil {
		return nil, storeErr(err, "committing queue start")
	}
	return started, nil
}

// QueueFor returns the participant's unfinished entries, in progress first
// then queued by position.
func (s *ProductionStore) QueueFor(ctx context.Context, sessionCode, participantCode string) ([]*ent.ProductionQueueEntry, error) {
	p, err := participantByCode(ctx, s.client.Client, sessionCode, participantCode)
	if err != nil {
		return nil, err
	}
	entries, err := s.client.ProductionQueueEntry.Query().
		Where(
			productionqueueentry.ParticipantIDEQ(p.ID),
			productionqueueentry.StatusIn(
				productionqueueentry.StatusInProgress,
				productionqueueentry.StatusQueued,
			),
		).
		Order(ent.Asc(productionqueueentry.FieldQueuePosition)).
		All(ctx)
	if err != nil {
		return nil, storeErr(err, "loading queue")
	}
	return entries, nil
}

// lockParticipant takes a row lock on a participant within a known session.
func lockParticipant(ctx context.Context, tx *ent.Tx, sessionID, participantCode string) (*ent.Participant, error) {
	p, err := tx.Participant.Query().
		Where(
			participant.SessionIDEQ(sessionID),
			participant.ParticipantCodeEQ(participantCode),
		).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fault.Errorf(fault.ParticipantNotFound, "no participant %q in session", participantCode)
		}
		return nil, storeErr(err, "locking participant")
	}
	return p, nil
}
