package engine

import (
	"context"
	"slices"
	"time"

	"github.com/behavelab/parley/ent"
	"github.com/behavelab/parley/ent/transaction"
	"github.com/behavelab/parley/pkg/events"
	"github.com/behavelab/parley/pkg/fault"
	"github.com/behavelab/parley/pkg/models"
)

// Tool names for kind-specific actions. The tool surface routes these
// through Engine.HandleAction; the shared tools live in toolNames in
// pkg/tools.
const (
	ToolCreateTradeOffer            = "create_trade_offer"
	ToolRespondToTradeOffer         = "respond_to_trade_offer"
	ToolCancelTradeOffer            = "cancel_trade_offer"
	ToolProduceShape                = "produce_shape"
	ToolFulfillOrders               = "fulfill_orders"
	ToolProcessCompletedProductions = "process_completed_productions"
	ToolStartNextProduction         = "start_next_production"
	ToolMakeInvestment              = "make_investment"
	ToolGetInvestmentHistory        = "get_investment_history"
	ToolSubmitRanking               = "submit_ranking"
	ToolGetAssignedEssays           = "get_assigned_essays"
	ToolGetEssayContent             = "get_essay_content"
	ToolSubmitGuess                 = "submit_guess"
	ToolGetAssignedWords            = "get_assigned_words"
	ToolSubmitVote                  = "submit_vote"
)

// shapeFactory is the production/trade/order-fulfilment economy. Each
// participant specialises in one shape: producing it is cheap, everything
// else is expensive, and order lists deliberately demand shapes the owner
// cannot produce cheaply so that earning incentive money requires trading.
type shapeFactory struct {
	*base
}

// AddParticipant registers the participant and generates their order list.
// The first participant in a session has nobody to trade with yet, so order
// generation is deferred to StartSession for anyone whose list is empty.
func (e *shapeFactory) AddParticipant(ctx context.Context, sessionCode string, req models.CreateParticipantRequest) (*ent.Participant, error) {
	if req.SpecialtyShape == "" {
		return nil, fault.New(fault.InvalidShape, "shapefactory participants need a specialty_shape")
	}
	p, err := e.base.AddParticipant(ctx, sessionCode, req)
	if err != nil {
		return nil, err
	}
	if err := e.ensureOrders(ctx, sessionCode, p); err != nil {
		return nil, err
	}
	return e.store.Participants.Get(ctx, sessionCode, p.ParticipantCode)
}

// StartSession backfills order lists before the session goes active, then
// runs the shared lifecycle transition.
func (e *shapeFactory) StartSession(ctx context.Context, sessionCode string) (*ent.Session, error) {
	participants, err := e.store.Participants.ListBySession(ctx, sessionCode)
	if err != nil {
		return nil, err
	}
	for _, p := range participants {
		if len(p.Orders) > 0 {
			continue
		}
		if err := e.ensureOrders(ctx, sessionCode, p); err != nil {
			return nil, err
		}
	}
	return e.base.StartSession(ctx, sessionCode)
}

// ensureOrders generates and stores the deterministic order list when at
// least one other specialty exists to draw from. A no-op otherwise.
func (e *shapeFactory) ensureOrders(ctx context.Context, sessionCode string, p *ent.Participant) error {
	sess, err := e.store.Sessions.GetByCode(ctx, sessionCode)
	if err != nil {
		return err
	}
	specialties, err := e.store.Participants.SpecialtyShapes(ctx, sessionCode)
	if err != nil {
		return err
	}
	cfg := models.ExperimentConfig(sess.ExperimentConfig)
	orders := generateOrders(p.SpecialtyShape, sess.ID, cfg.ShapesPerOrder(), specialties)
	if len(orders) == 0 {
		return nil
	}
	return e.store.Participants.SetOrders(ctx, sessionCode, p.ParticipantCode, orders)
}

func (e *shapeFactory) ParticipantState(ctx context.Context, sessionCode, participantCode string) (map[string]any, error) {
	p, err := e.store.Participants.Get(ctx, sessionCode, participantCode)
	if err != nil {
		return nil, err
	}
	inventory, err := e.store.Participants.Inventory(ctx, sessionCode, participantCode)
	if err != nil {
		return nil, err
	}
	queue, err := e.store.Production.QueueFor(ctx, sessionCode, participantCode)
	if err != nil {
		return nil, err
	}
	pending, err := e.store.Trades.PendingFor(ctx, sessionCode, participantCode)
	if err != nil {
		return nil, err
	}
	recent, err := e.store.Trades.RecentCompleted(ctx, sessionCode, 5)
	if err != nil {
		return nil, err
	}

	var sent, received []map[string]any
	for _, t := range pending {
		if t.Proposer == participantCode {
			sent = append(sent, tradeSummary(t))
		} else {
			received = append(received, tradeSummary(t))
		}
	}
	trades := make([]map[string]any, 0, len(recent))
	for _, t := range recent {
		trades = append(trades, tradeSummary(t))
	}

	state := baseState(p)
	state["specialty_shape"] = p.SpecialtyShape
	state["money"] = p.Money
	state["inventory"] = inventory
	state["orders"] = p.Orders
	state["orders_completed"] = p.OrdersCompleted
	state["specialty_production_used"] = p.SpecialtyProductionUsed
	state["production_queue"] = queueSummaries(queue)
	state["pending_offers_sent"] = sent
	state["pending_offers_received"] = received
	state["recent_trades"] = trades
	return state, nil
}

func (e *shapeFactory) HandleAction(ctx context.Context, sessionCode, participantCode, name string, args map[string]any) (map[string]any, error) {
	switch name {
	case ToolCreateTradeOffer:
		qty, ok := argInt(args, "quantity")
		if !ok {
			qty = 1
		}
		price, ok := argInt(args, "price_per_unit")
		if !ok {
			return nil, fault.New(fault.InvalidPrice, "price_per_unit is required")
		}
		return e.CreateTradeOffer(ctx, sessionCode, models.TradeOfferRequest{
			Proposer:     participantCode,
			Recipient:    argString(args, "recipient"),
			OfferType:    argString(args, "offer_type"),
			Shape:        argString(args, "shape"),
			Quantity:     qty,
			PricePerUnit: price,
		})
	case ToolRespondToTradeOffer:
		return e.RespondToTradeOffer(ctx, sessionCode, participantCode,
			argString(args, "transaction_id"), argString(args, "response"))
	case ToolCancelTradeOffer:
		return e.CancelTradeOffer(ctx, sessionCode, participantCode, argString(args, "transaction_id"))
	case ToolProduceShape:
		qty, ok := argInt(args, "quantity")
		if !ok {
			qty = 1
		}
		return e.ProduceShape(ctx, sessionCode, participantCode, argString(args, "shape"), qty)
	case ToolFulfillOrders:
		indices, ok := argIntSlice(args, "order_indices")
		if !ok {
			return nil, fault.New(fault.InvalidOrderIndex, "order_indices must be a list of integers")
		}
		return e.FulfillOrders(ctx, sessionCode, participantCode, indices)
	case ToolProcessCompletedProductions:
		return e.ProcessCompletedProductions(ctx, sessionCode, participantCode)
	case ToolStartNextProduction:
		return e.StartNextProduction(ctx, sessionCode, participantCode)
	default:
		return nil, unknownAction(e.kind, name)
	}
}

// CreateTradeOffer validates the price band and shape, opens the offer, and
// publishes new_trade_offer.
func (e *shapeFactory) CreateTradeOffer(ctx context.Context, sessionCode string, req models.TradeOfferRequest) (map[string]any, error) {
	sess, err := e.store.Sessions.GetByCode(ctx, sessionCode)
	if err != nil {
		return nil, err
	}
	cfg := models.ExperimentConfig(sess.ExperimentConfig)
	if req.PricePerUnit < cfg.MinTradePrice() || req.PricePerUnit > cfg.MaxTradePrice() {
		return nil, fault.Errorf(fault.InvalidPrice,
			"price %d outside allowed range [%d, %d]", req.PricePerUnit, cfg.MinTradePrice(), cfg.MaxTradePrice())
	}
	if err := e.validShape(ctx, sessionCode, req.Shape); err != nil {
		return nil, err
	}

	t, err := e.store.Trades.CreateOffer(ctx, sessionCode, req)
	if err != nil {
		return nil, err
	}
	e.publish(ctx, events.EventTypeNewTradeOffer, func() error {
		return e.events.PublishNewTradeOffer(ctx, t.SessionID, events.NewTradeOfferPayload{
			BasePayload:   events.Base(events.EventTypeNewTradeOffer, sessionCode),
			TransactionID: t.ID,
			ShortID:       t.ShortID,
			Proposer:      t.Proposer,
			Recipient:     t.Recipient,
			OfferType:     t.OfferType.String(),
			Shape:         t.Shape,
			Quantity:      t.Quantity,
			PricePerUnit:  float64(t.PricePerUnit),
		})
	})
	return map[string]any{
		"transaction_id": t.ID,
		"short_id":       t.ShortID,
		"status":         t.Status.String(),
	}, nil
}

// RespondToTradeOffer settles an accept or records a reject. An accept that
// fails hard validation (funds, inventory) has already been flipped to
// cancelled by the store; that surfaces here as the matching fault plus a
// trade_offer_cancelled event.
func (e *shapeFactory) RespondToTradeOffer(ctx context.Context, sessionCode, responder, ref, response string) (map[string]any, error) {
	switch response {
	case "accept":
		t, err := e.store.Trades.Accept(ctx, sessionCode, responder, ref)
		if err != nil {
			if kind := fault.KindOf(err); kind == fault.InsufficientFunds || kind == fault.InsufficientInventory {
				e.publishSettlementFailure(ctx, sessionCode, ref, err)
			}
			return nil, err
		}
		e.publish(ctx, events.EventTypeTradeOfferResponse, func() error {
			return e.events.PublishTradeOfferResponse(ctx, t.SessionID, events.TradeOfferResponsePayload{
				BasePayload:   events.Base(events.EventTypeTradeOfferResponse, sessionCode),
				TransactionID: t.ID,
				ShortID:       t.ShortID,
				Responder:     responder,
				Response:      events.TradeResponseAccepted,
			})
		})
		e.publish(ctx, events.EventTypeTradeCompleted, func() error {
			total := float64(t.PricePerUnit * t.Quantity)
			return e.events.PublishTradeCompleted(ctx, t.SessionID, events.TradeCompletedPayload{
				BasePayload:   events.Base(events.EventTypeTradeCompleted, sessionCode),
				TransactionID: t.ID,
				ShortID:       t.ShortID,
				Buyer:         t.Buyer,
				Seller:        t.Seller,
				Shape:         t.Shape,
				Quantity:      t.Quantity,
				PricePerUnit:  float64(t.PricePerUnit),
				TotalPrice:    total,
			})
		})
		return map[string]any{"transaction_id": t.ID, "short_id": t.ShortID, "status": t.Status.String()}, nil

	case "reject":
		t, err := e.store.Trades.Reject(ctx, sessionCode, responder, ref)
		if err != nil {
			return nil, err
		}
		e.publish(ctx, events.EventTypeTradeOfferResponse, func() error {
			return e.events.PublishTradeOfferResponse(ctx, t.SessionID, events.TradeOfferResponsePayload{
				BasePayload:   events.Base(events.EventTypeTradeOfferResponse, sessionCode),
				TransactionID: t.ID,
				ShortID:       t.ShortID,
				Responder:     responder,
				Response:      events.TradeResponseRejected,
			})
		})
		return map[string]any{"transaction_id": t.ID, "short_id": t.ShortID, "status": t.Status.String()}, nil

	default:
		return nil, fault.Errorf(fault.InvalidState, "response must be accept or reject, got %q", response)
	}
}

func (e *shapeFactory) publishSettlementFailure(ctx context.Context, sessionCode, ref string, cause error) {
	t, err := e.store.Trades.Resolve(ctx, sessionCode, ref)
	if err != nil {
		return
	}
	e.publish(ctx, events.EventTypeTradeOfferCancelled, func() error {
		return e.events.PublishTradeOfferCancelled(ctx, t.SessionID, events.TradeOfferCancelledPayload{
			BasePayload:   events.Base(events.EventTypeTradeOfferCancelled, sessionCode),
			TransactionID: t.ID,
			ShortID:       t.ShortID,
			CancelledBy:   "system",
			Reason:        cause.Error(),
		})
	})
}

// CancelTradeOffer withdraws a proposed offer; only the proposer may cancel.
func (e *shapeFactory) CancelTradeOffer(ctx context.Context, sessionCode, proposer, ref string) (map[string]any, error) {
	t, err := e.store.Trades.Cancel(ctx, sessionCode, proposer, ref)
	if err != nil {
		return nil, err
	}
	e.publish(ctx, events.EventTypeTradeOfferCancelled, func() error {
		return e.events.PublishTradeOfferCancelled(ctx, t.SessionID, events.TradeOfferCancelledPayload{
			BasePayload:   events.Base(events.EventTypeTradeOfferCancelled, sessionCode),
			TransactionID: t.ID,
			ShortID:       t.ShortID,
			CancelledBy:   proposer,
		})
	})
	return map[string]any{"transaction_id": t.ID, "short_id": t.ShortID, "status": t.Status.String()}, nil
}

// ProduceShape queues production. The entry starts immediately when nothing
// is in progress, otherwise it waits until the participant explicitly starts
// it after promotion.
func (e *shapeFactory) ProduceShape(ctx context.Context, sessionCode, participantCode, shape string, quantity int) (map[string]any, error) {
	if err := e.validShape(ctx, sessionCode, shape); err != nil {
		return nil, err
	}
	entry, err := e.store.Production.Enqueue(ctx, sessionCode, participantCode, shape, quantity)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"production_id":       entry.ID,
		"shape":               entry.Shape,
		"quantity":            entry.Quantity,
		"status":              entry.Status.String(),
		"queue_position":      entry.QueuePosition,
		"expected_completion": entry.EstimatedCompletion.Format(time.RFC3339),
	}, nil
}

// FulfillOrders consumes one inventory tag per requested order index and
// credits incentive money per order. All-or-nothing per batch.
func (e *shapeFactory) FulfillOrders(ctx context.Context, sessionCode, participantCode string, indices []int) (map[string]any, error) {
	result, err := e.store.Participants.FulfillOrders(ctx, sessionCode, participantCode, indices)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"orders_fulfilled": result.OrdersFulfilled,
		"score_gained":     result.ScoreGained,
		"new_money":        result.NewMoney,
		"new_orders":       result.NewOrders,
	}, nil
}

// ProcessCompletedProductions promotes finished in_progress entries into
// inventory. It never starts the next queued entry.
func (e *shapeFactory) ProcessCompletedProductions(ctx context.Context, sessionCode, participantCode string) (map[string]any, error) {
	promoted, err := e.store.Production.PromoteCompleted(ctx, sessionCode, participantCode)
	if err != nil {
		return nil, err
	}
	return map[string]any{"processed_count": len(promoted)}, nil
}

// StartNextProduction promotes the participant's lowest-position queued entry
// to in_progress. This is the only path that advances the queue; promotion of
// finished work never does. Reports started=false when something is still in
// progress or nothing is queued.
func (e *shapeFactory) StartNextProduction(ctx context.Context, sessionCode, participantCode string) (map[string]any, error) {
	entry, err := e.store.Production.StartNextQueued(ctx, sessionCode, participantCode)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return map[string]any{"started": false}, nil
	}
	return map[string]any{
		"started":             true,
		"production_id":       entry.ID,
		"shape":               entry.Shape,
		"quantity":            entry.Quantity,
		"status":              entry.Status.String(),
		"queue_position":      entry.QueuePosition,
		"expected_completion": entry.EstimatedCompletion.Format(time.RFC3339),
	}, nil
}

// validShape checks the shape against the specialties present in the
// session, the only shapes that exist in a ShapeFactory run.
func (e *shapeFactory) validShape(ctx context.Context, sessionCode, shape string) error {
	if shape == "" {
		return fault.New(fault.InvalidShape, "shape is required")
	}
	specialties, err := e.store.Participants.SpecialtyShapes(ctx, sessionCode)
	if err != nil {
		return err
	}
	if !slices.Contains(specialties, shape) {
		return fault.Errorf(fault.InvalidShape, "shape %q does not exist in this session", shape)
	}
	return nil
}

func tradeSummary(t *ent.Transaction) map[string]any {
	summary := map[string]any{
		"transaction_id": t.ID,
		"short_id":       t.ShortID,
		"proposer":       t.Proposer,
		"recipient":      t.Recipient,
		"buyer":          t.Buyer,
		"seller":         t.Seller,
		"offer_type":     t.OfferType.String(),
		"shape":          t.Shape,
		"quantity":       t.Quantity,
		"price_per_unit": t.PricePerUnit,
		"status":         t.Status.String(),
		"created_at":     t.CreatedAt.Format(time.RFC3339),
	}
	if t.Status == transaction.StatusCompleted {
		summary["total_price"] = t.PricePerUnit * t.Quantity
	}
	return summary
}

func queueSummaries(entries []*ent.ProductionQueueEntry) []map[string]any {
	out := make([]map[string]any, 0, len(entries))
	for _, entry := range entries {
		out = append(out, map[string]any{
			"production_id":       entry.ID,
			"shape":               entry.Shape,
			"quantity":            entry.Quantity,
			"status":              entry.Status.String(),
			"queue_position":      entry.QueuePosition,
			"expected_completion": entry.EstimatedCompletion.Format(time.RFC3339),
		})
	}
	return out
}
