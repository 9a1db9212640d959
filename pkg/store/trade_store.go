package store

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/behavelab/parley/ent"
	"github.com/behavelab/parley/ent/participant"
	"github.com/behavelab/parley/ent/predicate"
	"github.com/behavelab/parley/ent/session"
	"github.com/behavelab/parley/ent/shapeinventory"
	"github.com/behavelab/parley/ent/transaction"
	"github.com/behavelab/parley/pkg/database"
	"github.com/behavelab/parley/pkg/fault"
	"github.com/behavelab/parley/pkg/models"
)

// TradeStore owns the trade offer state machine. An offer moves from proposed
// to exactly one of completed or cancelled, never back, and settlement of
// money and shapes happens in the same transaction as the status flip.
type TradeStore struct {
	client *database.Client
}

// NewTradeStore creates a new TradeStore.
func NewTradeStore(client *database.Client) *TradeStore {
	return &TradeStore{client: client}
}

// CreateOffer opens a trade offer in the proposed state. The session row is
// locked while the short id sequence number is assigned, so two offers created
// at the same instant still get distinct short ids.
func (s *TradeStore) CreateOffer(ctx context.Context, sessionCode string, req models.TradeOfferRequest) (*ent.Transaction, error) {
	if req.Quantity < 1 {
		return nil, fault.Errorf(fault.InvalidQuantity, "quantity must be at least 1, got %d", req.Quantity)
	}
	if req.Shape == "" {
		return nil, fault.New(fault.InvalidShape, "shape is required")
	}
	if req.Proposer == req.Recipient {
		return nil, fault.New(fault.SelfOfferForbidden, "cannot open a trade offer with yourself")
	}
	if req.OfferType != transaction.OfferTypeBuy.String() && req.OfferType != transaction.OfferTypeSell.String() {
		return nil, fault.Errorf(fault.InvalidState, "offer_type must be buy or sell, got %q", req.OfferType)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, storeErr(err, "starting transaction")
	}
	defer func() { _ = tx.Rollback() }()

	sess, err := lockSession(ctx, tx, sessionCode)
	if err != nil {
		return nil, err
	}
	if sess.Status != session.StatusSessionActive {
		return nil, fault.Errorf(fault.InvalidState, "session %s is not active", sessionCode)
	}

	for _, code := range []string{req.Proposer, req.Recipient} {
		exists, err := tx.Participant.Query().
			Where(
				participant.SessionIDEQ(sess.ID),
				participant.ParticipantCodeEQ(code),
			).
			Exist(ctx)
		if err != nil {
			return nil, storeErr(err, "checking participant")
		}
		if !exists {
			return nil, fault.Errorf(fault.ParticipantNotFound, "no participant %q in session %s", code, sessionCode)
		}
	}

	seq, err := tx.Transaction.Query().
		Where(transaction.SessionIDEQ(sess.ID)).
		Count(ctx)
	if err != nil {
		return nil, storeErr(err, "counting transactions")
	}

	id := uuid.NewString()
	shortID := fmt.Sprintf("S%s-%03d", shortIDPrefix(sessionCode), seq+1)

	buyer, seller := req.Proposer, req.Recipient
	if req.OfferType == transaction.OfferTypeSell.String() {
		buyer, seller = req.Recipient, req.Proposer
	}

	created, err := tx.Transaction.Create().
		SetID(id).
		SetSessionID(sess.ID).
		SetShortID(shortID).
		SetProposer(req.Proposer).
		SetRecipient(req.Recipient).
		SetSeller(seller).
		SetBuyer(buyer).
		SetOfferType(transaction.OfferType(req.OfferType)).
		SetShape(req.Shape).
		SetQuantity(req.Quantity).
		SetPricePerUnit(req.PricePerUnit).
		Save(ctx)
	if err != nil {
		return nil, storeErr(err, "creating trade offer")
	}
	if err := tx.Commit(); err != nil {
		return nil, storeErr(err, "committing trade offer")
	}
	return created, nil
}

// Accept settles a proposed offer. The offer row is locked first: if it is no
// longer proposed the call returns AlreadyProcessed with no side effects.
// Hard validation failures (buyer funds, seller inventory) flip the offer to
// cancelled and report the reason. On success money and shapes move in the
// same transaction as the status flip.
func (s *TradeStore) Accept(ctx context.Context, sessionCode, accepterCode, ref string) (*ent.Transaction, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, storeErr(err, "starting transaction")
	}
	defer func() { _ = tx.Rollback() }()

	t, err := lockOffer(ctx, tx, sessionCode, ref)
	if err != nil {
		return nil, err
	}
	if t.Status != transaction.StatusProposed {
		return nil, fault.Errorf(fault.AlreadyProcessed, "trade offer %s was already %s", t.ShortID, t.Status)
	}
	if accepterCode == t.Proposer {
		return nil, fault.New(fault.SelfAcceptForbidden, "cannot accept your own trade offer")
	}
	if accepterCode != t.Recipient {
		return nil, fault.Errorf(fault.InvalidState, "trade offer %s is not addressed to %s", t.ShortID, accepterCode)
	}

	buyer, seller, err := lockTradeParties(ctx, tx, t)
	if err != nil {
		return nil, err
	}

	total := t.Quantity * t.PricePerUnit
	if buyer.Money < total {
		return nil, s.failOffer(ctx, tx, t, fault.InsufficientFunds,
			fmt.Sprintf("buyer %s has %d, needs %d", buyer.ParticipantCode, buyer.Money, total))
	}

	sellerInv, buyerInv, err := lockInventories(ctx, tx, seller, buyer)
	if err != nil {
		return nil, err
	}
	remaining, ok := removeTags(sellerInv.ShapesInInventory, t.Shape, t.Quantity)
	if !ok {
		return nil, s.failOffer(ctx, tx, t, fault.InsufficientInventory,
			fmt.Sprintf("seller %s holds %d %s, needs %d",
				seller.ParticipantCode, countTags(sellerInv.ShapesInInventory, t.Shape), t.Shape, t.Quantity))
	}

	if err := tx.Participant.UpdateOne(buyer).SetMoney(buyer.Money - total).Exec(ctx); err != nil {
		return nil, storeErr(err, "debiting buyer")
	}
	if err := tx.Participant.UpdateOne(seller).SetMoney(seller.Money + total).Exec(ctx); err != nil {
		return nil, storeErr(err, "crediting seller")
	}
	if err := tx.ShapeInventory.UpdateOne(sellerInv).SetShapesInInventory(remaining).Exec(ctx); err != nil {
		return nil, storeErr(err, "removing shapes from seller")
	}
	gained := buyerInv.ShapesInInventory
	for i := 0; i < t.Quantity; i++ {
		gained = append(gained, t.Shape)
	}
	if err := tx.ShapeInventory.UpdateOne(buyerInv).SetShapesInInventory(gained).Exec(ctx); err != nil {
		return nil, storeErr(err, "adding shapes to buyer")
	}

	completed, err := tx.Transaction.UpdateOne(t).
		SetStatus(transaction.StatusCompleted).
		SetResolvedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, storeErr(err, "completing trade offer")
	}
	if err := tx.Commit(); err != nil {
		return nil, storeErr(err, "committing trade")
	}
	return completed, nil
}

// Reject declines a proposed offer. The recipient declines it; the proposer
// rejecting their own offer withdraws it, same as Cancel. A row that already
// left the proposed state reports AlreadyProcessed.
func (s *TradeStore) Reject(ctx context.Context, sessionCode, responderCode, ref string) (*ent.Transaction, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, storeErr(err, "starting transaction")
	}
	defer func() { _ = tx.Rollback() }()

	t, err := lockOffer(ctx, tx, sessionCode, ref)
	if err != nil {
		return nil, err
	}
	if t.Status != transaction.StatusProposed {
		return nil, fault.Errorf(fault.AlreadyProcessed, "trade offer %s was already %s", t.ShortID, t.Status)
	}
	if responderCode != t.Recipient && responderCode != t.Proposer {
		return nil, fault.Errorf(fault.InvalidState, "trade offer %s is not addressed to %s", t.ShortID, responderCode)
	}

	cancelled, err := tx.Transaction.UpdateOne(t).
		SetStatus(transaction.StatusCancelled).
		SetResolvedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, storeErr(err, "rejecting trade offer")
	}
	if err := tx.Commit(); err != nil {
		return nil, storeErr(err, "committing rejection")
	}
	return cancelled, nil
}

// Cancel withdraws a proposed offer. Only the proposer may cancel; repeat
// cancellation reports NotInProposedState.
func (s *TradeStore) Cancel(ctx context.Context, sessionCode, proposerCode, ref string) (*ent.Transaction, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, storeErr(err, "starting transaction")
	}
	defer func() { _ = tx.Rollback() }()

	t, err := lockOffer(ctx, tx, sessionCode, ref)
	if err != nil {
		return nil, err
	}
	if t.Status != transaction.StatusProposed {
		return nil, fault.Errorf(fault.NotInProposedState, "trade offer %s is already %s", t.ShortID, t.Status)
	}
	if proposerCode != t.Proposer {
		return nil, fault.Errorf(fault.InvalidState, "only the proposer may cancel trade offer %s", t.ShortID)
	}

	cancelled, err := tx.Transaction.UpdateOne(t).
		SetStatus(transaction.StatusCancelled).
		SetResolvedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, storeErr(err, "cancelling trade offer")
	}
	if err := tx.Commit(); err != nil {
		return nil, storeErr(err, "committing cancellation")
	}
	return cancelled, nil
}

// Resolve finds an offer by UUID or human-readable short id without locking.
func (s *TradeStore) Resolve(ctx context.Context, sessionCode, ref string) (*ent.Transaction, error) {
	if err := requireScope(sessionCode); err != nil {
		return nil, err
	}
	t, err := s.client.Transaction.Query().
		Where(
			transaction.HasSessionWith(session.SessionCodeEQ(sessionCode)),
			refPredicate(ref),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fault.Errorf(fault.InvalidState, "no trade offer %q in session %s", ref, sessionCode)
		}
		return nil, storeErr(err, "resolving trade offer")
	}
	return t, nil
}

// PendingFor returns proposed offers the participant is a party to, oldest
// first.
func (s *TradeStore) PendingFor(ctx context.Context, sessionCode, participantCode string) ([]*ent.Transaction, error) {
	if err := requireScope(sessionCode); err != nil {
		return nil, err
	}
	offers, err := s.client.Transaction.Query().
		Where(
			transaction.HasSessionWith(session.SessionCodeEQ(sessionCode)),
			transaction.StatusEQ(transaction.StatusProposed),
			transaction.Or(
				transaction.ProposerEQ(participantCode),
				transaction.RecipientEQ(participantCode),
			),
		).
		Order(ent.Asc(transaction.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, storeErr(err, "listing pending offers")
	}
	return offers, nil
}

// RecentCompleted returns the latest completed trades, newest first.
func (s *TradeStore) RecentCompleted(ctx context.Context, sessionCode string, limit int) ([]*ent.Transaction, error) {
	if err := requireScope(sessionCode); err != nil {
		return nil, err
	}
	q := s.client.Transaction.Query().
		Where(
			transaction.HasSessionWith(session.SessionCodeEQ(sessionCode)),
			transaction.StatusEQ(transaction.StatusCompleted),
		).
		Order(ent.Desc(transaction.FieldResolvedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	trades, err := q.All(ctx)
	if err != nil {
		return nil, storeErr(err, "listing completed trades")
	}
	return trades, nil
}

// ListBySession returns every trade offer of the session regardless of
// status, oldest first.
func (s *TradeStore) ListBySession(ctx context.Context, sessionCode string) ([]*ent.Transaction, error) {
	if err := requireScope(sessionCode); err != nil {
		return nil, err
	}
	trades, err := s.client.Transaction.Query().
		Where(transaction.HasSessionWith(session.SessionCodeEQ(sessionCode))).
		Order(ent.Asc(transaction.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, storeErr(err, "listing trades")
	}
	return trades, nil
}

// failOffer flips a locked offer to cancelled, commits, and reports the
// validation failure. The commit makes the cancellation visible even though
// the call returns an error.
func (s *TradeStore) failOffer(ctx context.Context, tx *ent.Tx, t *ent.Transaction, kind fault.Kind, msg string) error {
	if err := tx.Transaction.UpdateOne(t).
		SetStatus(transaction.StatusCancelled).
		SetResolvedAt(time.Now()).
		Exec(ctx); err != nil {
		return storeErr(err, "cancelling failed offer")
	}
	if err := tx.Commit(); err != nil {
		return storeErr(err, "committing failed offer")
	}
	return fault.New(kind, msg)
}

// lockOffer resolves an offer by UUID or short id and takes a row lock on it.
func lockOffer(ctx context.Context, tx *ent.Tx, sessionCode, ref string) (*ent.Transaction, error) {
	if err := requireScope(sessionCode); err != nil {
		return nil, err
	}
	t, err := tx.Transaction.Query().
		Where(
			transaction.HasSessionWith(session.SessionCodeEQ(sessionCode)),
			refPredicate(ref),
		).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fault.Errorf(fault.InvalidState, "no trade offer %q in session %s", ref, sessionCode)
		}
		return nil, storeErr(err, "locking trade offer")
	}
	return t, nil
}

// lockTradeParties locks buyer and seller rows in one ordered query so two
// settlements touching the same pair cannot deadlock.
func lockTradeParties(ctx context.Context, tx *ent.Tx, t *ent.Transaction) (buyer, seller *ent.Participant, err error) {
	rows, err := tx.Participant.Query().
		Where(
			participant.SessionIDEQ(t.SessionID),
			participant.ParticipantCodeIn(t.Buyer, t.Seller),
		).
		Order(ent.Asc(participant.FieldID)).
		ForUpdate().
		All(ctx)
	if err != nil {
		return nil, nil, storeErr(err, "locking trade parties")
	}
	for _, p := range rows {
		switch p.ParticipantCode {
		case t.Buyer:
			buyer = p
		case t.Seller:
			seller = p
		}
	}
	if buyer == nil || seller == nil {
		return nil, nil, fault.Errorf(fault.ParticipantNotFound, "trade offer %s references a missing participant", t.ShortID)
	}
	return buyer, seller, nil
}

// lockInventories locks both inventory rows in one ordered query.
func lockInventories(ctx context.Context, tx *ent.Tx, seller, buyer *ent.Participant) (sellerInv, buyerInv *ent.ShapeInventory, err error) {
	rows, err := tx.ShapeInventory.Query().
		Where(shapeinventory.ParticipantIDIn(seller.ID, buyer.ID)).
		Order(ent.Asc(shapeinventory.FieldID)).
		ForUpdate().
		All(ctx)
	if err != nil {
		return nil, nil, storeErr(err, "locking inventories")
	}
	for _, inv := range rows {
		switch inv.ParticipantID {
		case seller.ID:
			sellerInv = inv
		case buyer.ID:
			buyerInv = inv
		}
	}
	if sellerInv == nil || buyerInv == nil {
		return nil, nil, fault.New(fault.StoreError, "inventory row missing for trade party")
	}
	return sellerInv, buyerInv, nil
}

// shortIDPrefix derives the session's stable short-id prefix: four hex digits
// hashed from the session code, so every offer in one session shares it.
func shortIDPrefix(sessionCode string) string {
	h := fnv.New32a()
	h.Write([]byte(sessionCode))
	return fmt.Sprintf("%04X", h.Sum32()&0xFFFF)
}

func refPredicate(ref string) predicate.Transaction {
	return transaction.Or(
		transaction.IDEQ(ref),
		transaction.ShortIDEQ(strings.ToUpper(strings.TrimSpace(ref))),
	)
}

// removeTags strips n tags equal to shape from the list, preserving the order
// of the rest. ok is false when fewer than n tags were present, in which case
// the input is returned unchanged.
func removeTags(tags []string, shape string, n int) (out []string, ok bool) {
	if countTags(tags, shape) < n {
		return tags, false
	}
	out = make([]string, 0, len(tags))
	removed := 0
	for _, tag := range tags {
		if removed < n && tag == shape {
			removed++
			continue
		}
		out = append(out, tag)
	}
	return out, true
}

func countTags(tags []string, shape string) int {
	n := 0
	for _, tag := range tags {
		if tag == shape {
			n++
		}
	}
	return n
}
