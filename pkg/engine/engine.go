// Package engine implements the per-experiment rule sets. A factory
// dispatches on the session's experiment_type; every engine shares the same
// lifecycle surface (create, add participant, state views, messaging, start,
// end) and extends it with kind-specific actions reachable through
// HandleAction. Engines are stateless: all state lives in the store, all
// notifications go through the event publisher.
package engine

import (
	"context"
	"fmt"

	"github.com/behavelab/parley/ent"
	"github.com/behavelab/parley/pkg/events"
	"github.com/behavelab/parley/pkg/fault"
	"github.com/behavelab/parley/pkg/models"
	"github.com/behavelab/parley/pkg/store"
)

// TimerReader provides the authoritative timer snapshot for a session. The
// timer registry implements it; ok is false when no timer goroutine owns the
// session (idle or finished sessions), in which case engines derive a
// snapshot from the session row instead.
type TimerReader interface {
	Snapshot(sessionCode string) (models.TimerInfo, bool)
}

// Engine is the rule set for one experiment kind. All operations are
// session-scoped and return typed faults (never panics) so the tool surface
// can translate failures into machine-readable results.
type Engine interface {
	Kind() models.ExperimentType

	CreateSession(ctx context.Context, req models.CreateSessionRequest) (*ent.Session, error)
	AddParticipant(ctx context.Context, sessionCode string, req models.CreateParticipantRequest) (*ent.Participant, error)

	// ParticipantState is the private view: everything the participant (or
	// the agent driving it) is allowed to see about itself.
	ParticipantState(ctx context.Context, sessionCode, participantCode string) (map[string]any, error)
	// PublicState is the view shared by every participant in the session.
	PublicState(ctx context.Context, sessionCode string) (*models.PublicState, error)
	// GameState combines both views with the session's communication level.
	GameState(ctx context.Context, sessionCode, participantCode string) (*models.GameState, error)

	// SendMessage delivers a chat message subject to the session's
	// communication level. recipient "all" (or empty) broadcasts.
	SendMessage(ctx context.Context, sessionCode, sender, recipient, content string) (*ent.Message, error)

	StartSession(ctx context.Context, sessionCode string) (*ent.Session, error)
	EndSession(ctx context.Context, sessionCode string) (*ent.Session, error)

	// HandleAction dispatches a kind-specific action by tool name. Unknown
	// names return an InvalidState fault; the shared tools (get_game_state,
	// send_message, mark_messages_as_read) are handled by the tool surface
	// before reaching the engine.
	HandleAction(ctx context.Context, sessionCode, participantCode, name string, args map[string]any) (map[string]any, error)
}

// Factory builds engines over a shared store and event publisher.
type Factory struct {
	store  *store.Store
	events *events.EventPublisher
	timers TimerReader
}

// NewFactory creates an engine factory. timers may be nil in contexts
// without a running timer registry (tests, one-shot CLI runs); engines then
// derive timer info from the session row.
func NewFactory(st *store.Store, pub *events.EventPublisher, timers TimerReader) *Factory {
	return &Factory{store: st, events: pub, timers: timers}
}

// ForType returns the engine for an experiment kind. custom_* kinds share
// the generic engine, which carries the lifecycle surface with no
// kind-specific actions.
func (f *Factory) ForType(kind models.ExperimentType) (Engine, error) {
	if !kind.Valid() {
		return nil, fault.Errorf(fault.InvalidState, "unknown experiment type %q", kind)
	}
	b := &base{kind: kind, store: f.store, events: f.events, timers: f.timers}
	var eng Engine
	switch kind {
	case models.ExperimentShapeFactory:
		eng = &shapeFactory{base: b}
	case models.ExperimentDayTrader:
		eng = &dayTrader{base: b}
	case models.ExperimentEssayRanking:
		eng = &essayRanking{base: b}
	case models.ExperimentWordGuessing:
		eng = &wordGuessing{base: b}
	case models.ExperimentHiddenProfiles:
		eng = &hiddenProfiles{base: b}
	default:
		eng = b
	}
	b.self = eng
	return eng, nil
}

// ForSession looks up the session's experiment type and returns its engine.
func (f *Factory) ForSession(ctx context.Context, sessionCode string) (Engine, error) {
	sess, err := f.store.Sessions.GetByCode(ctx, sessionCode)
	if err != nil {
		return nil, err
	}
	return f.ForType(models.ExperimentType(sess.ExperimentType))
}

// Store exposes the underlying store for callers that need read access
// beyond the engine surface (status updates, exports).
func (f *Factory) Store() *store.Store { return f.store }

// Publisher exposes the event publisher for callers that emit their own
// events (timer, manager).
func (f *Factory) Publisher() *events.EventPublisher { return f.events }

func unknownAction(kind models.ExperimentType, name string) error {
	return fault.New(fault.InvalidState,
		fmt.Sprintf("action %q is not available in %s sessions", name, kind))
}
