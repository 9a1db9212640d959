// Package store is the transactional persistence layer. Every operation is
// session-scoped: it either takes a session_code directly or verifies that
// the addressed row belongs to the supplied session. Writes that must be
// atomic (trade acceptance, order fulfilment, production promotion, broadcast
// read-state) serialise on row-level locks of the driving row.
package store

import (
	"context"

	"github.com/behavelab/parley/ent"
	"github.com/behavelab/parley/ent/participant"
	"github.com/behavelab/parley/ent/session"
	"github.com/behavelab/parley/pkg/database"
	"github.com/behavelab/parley/pkg/fault"
)

// Store bundles the per-entity stores over one database client.
type Store struct {
	Sessions     *SessionStore
	Participants *ParticipantStore
	Messages     *MessageStore
	Trades       *TradeStore
	Production   *ProductionStore
	Investments  *InvestmentStore
	Rankings     *RankingStore
	Guesses      *GuessStore
	Events       *EventStore
}

// New creates a Store over a database client.
func New(client *database.Client) *Store {
	return &Store{
		Sessions:     NewSessionStore(client),
		Participants: NewParticipantStore(client),
		Messages:     NewMessageStore(client),
		Trades:       NewTradeStore(client),
		Production:   NewProductionStore(client),
		Investments:  NewInvestmentStore(client),
		Rankings:     NewRankingStore(client),
		Guesses:      NewGuessStore(client),
		Events:       NewEventStore(client),
	}
}

// requireScope rejects calls that touch session-scoped entities without a
// session identifier.
func requireScope(sessionCode string) error {
	if sessionCode == "" {
		return fault.New(fault.MissingSessionScope, "operation requires a session_code")
	}
	return nil
}

// sessionByCode loads a session inside or outside a transaction, translating
// not-found into the typed kind.
func sessionByCode(ctx context.Context, client *ent.Client, sessionCode string) (*ent.Session, error) {
	if err := requireScope(sessionCode); err != nil {
		return nil, err
	}
	s, err := client.Session.Query().
		Where(session.SessionCodeEQ(sessionCode)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fault.Errorf(fault.SessionNotFound, "no session with code %q", sessionCode)
		}
		return nil, fault.Wrap(fault.StoreError, err, "loading session")
	}
	return s, nil
}

// txSessionByCode is sessionByCode against a transaction client.
func txSessionByCode(ctx context.Context, tx *ent.Tx, sessionCode string) (*ent.Session, error) {
	if err := requireScope(sessionCode); err != nil {
		return nil, err
	}
	s, err := tx.Session.Query().
		Where(session.SessionCodeEQ(sessionCode)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fault.Errorf(fault.SessionNotFound, "no session with code %q", sessionCode)
		}
		return nil, fault.Wrap(fault.StoreError, err, "loading session")
	}
	return s, nil
}

// participantByCode loads a participant by code within a session, translating
// not-found into the typed kind.
func participantByCode(ctx context.Context, client *ent.Client, sessionCode, participantCode string) (*ent.Participant, error) {
	if err := requireScope(sessionCode); err != nil {
		return nil, err
	}
	p, err := client.Participant.Query().
		Where(
			participant.ParticipantCodeEQ(participantCode),
			participant.HasSessionWith(session.SessionCodeEQ(sessionCode)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fault.Errorf(fault.ParticipantNotFound,
				"no participant %q in session %s", participantCode, sessionCode)
		}
		return nil, fault.Wrap(fault.StoreError, err, "loading participant")
	}
	return p, nil
}

// storeErr wraps unexpected database errors so callers can branch on the kind
// while the cause stays in the chain for logging.
func storeErr(err error, msg string) error {
	if err == nil {
		return nil
	}
	if fault.KindOf(err) != "" {
		return err
	}
	return fault.Wrap(fault.StoreError, err, msg)
}
