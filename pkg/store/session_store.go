package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/behavelab/parley/ent"
	"github.com/behavelab/parley/ent/session"
	"github.com/behavelab/parley/pkg/database"
	"github.com/behavelab/parley/pkg/fault"
	"github.com/behavelab/parley/pkg/models"
)

// SessionStore manages session lifecycle and the experiment_config bag.
type SessionStore struct {
	client *database.Client
}

// NewSessionStore creates a new SessionStore.
func NewSessionStore(client *database.Client) *SessionStore {
	return &SessionStore{client: client}
}

// legalTransitions is the session lifecycle. idle is the freshly-created
// state; sessions are never deleted, so session_completed is terminal.
var legalTransitions = map[session.Status][]session.Status{
	session.StatusIdle:             {session.StatusSetupComplete},
	session.StatusSetupComplete:    {session.StatusSessionActive},
	session.StatusSessionActive:    {session.StatusSessionPaused, session.StatusSessionCompleted},
	session.StatusSessionPaused:    {session.StatusSessionActive, session.StatusSessionCompleted},
	session.StatusSessionCompleted: {},
}

// CreateSession creates a session in the idle state.
func (s *SessionStore) CreateSession(ctx context.Context, req models.CreateSessionRequest) (*ent.Session, error) {
	if req.SessionCode == "" {
		return nil, fault.New(fault.MissingSessionScope, "session_code is required")
	}
	if !req.ExperimentType.Valid() {
		return nil, fault.Errorf(fault.InvalidState, "unknown experiment type %q", req.ExperimentType)
	}

	cfg := req.Config
	if cfg == nil {
		cfg = models.ExperimentConfig{}
	}

	created, err := s.client.Session.Create().
		SetID(uuid.NewString()).
		SetSessionCode(req.SessionCode).
		SetExperimentType(string(req.ExperimentType)).
		SetExperimentConfig(cfg).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fault.Errorf(fault.InvalidState, "session code %q already in use", req.SessionCode)
		}
		return nil, storeErr(err, "creating session")
	}
	return created, nil
}

// GetByCode loads a session by its short code.
func (s *SessionStore) GetByCode(ctx context.Context, sessionCode string) (*ent.Session, error) {
	return sessionByCode(ctx, s.client.Client, sessionCode)
}

// Get loads a session by UUID.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (*ent.Session, error) {
	found, err := s.client.Session.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fault.Errorf(fault.SessionNotFound, "no session %s", sessionID)
		}
		return nil, storeErr(err, "loading session")
	}
	return found, nil
}

// List returns sessions matching the filters, newest first.
func (s *SessionStore) List(ctx context.Context, filters models.SessionFilters) (*models.SessionListResponse, error) {
	query := s.client.Session.Query()
	if filters.Status != "" {
		query = query.Where(session.StatusEQ(session.Status(filters.Status)))
	}
	if filters.ExperimentType != "" {
		query = query.Where(session.ExperimentTypeEQ(filters.ExperimentType))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, storeErr(err, "counting sessions")
	}

	limit := filters.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	sessions, err := query.
		Order(ent.Desc(session.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, storeErr(err, "listing sessions")
	}

	return &models.SessionListResponse{
		Sessions:   sessions,
		TotalCount: total,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// UpdateStatus moves a session along the lifecycle, enforcing legal
// transitions. Repeating the current status is a no-op, not an error.
func (s *SessionStore) UpdateStatus(ctx context.Context, sessionCode string, next session.Status) (*ent.Session, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, storeErr(err, "starting transaction")
	}
	defer func() { _ = tx.Rollback() }()

	current, err := tx.Session.Query().
		Where(session.SessionCodeEQ(sessionCode)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fault.Errorf(fault.SessionNotFound, "no session with code %q", sessionCode)
		}
		return nil, storeErr(err, "locking session")
	}

	if current.Status == next {
		return current, tx.Commit()
	}
	if !transitionAllowed(current.Status, next) {
		return nil, fault.Errorf(fault.InvalidState,
			"cannot move session %s from %s to %s", sessionCode, current.Status, next)
	}

	update := current.Update().SetStatus(next)
	switch next {
	case session.StatusSessionActive:
		if current.StartedAt == nil {
			update = update.SetStartedAt(time.Now())
		}
	case session.StatusSessionCompleted:
		update = update.SetCompletedAt(time.Now())
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, storeErr(err, "updating session status")
	}
	if err := tx.Commit(); err != nil {
		return nil, storeErr(err, "committing status update")
	}
	return updated, nil
}

func transitionAllowed(from, to session.Status) bool {
	for _, allowed := range legalTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// MutateConfig applies fn to the experiment_config under a row lock so
// concurrent writers (votes, initiatives, publicInfo) never lose updates.
// fn receives the current config and mutates it in place.
func (s *SessionStore) MutateConfig(ctx context.Context, sessionCode string, fn func(cfg models.ExperimentConfig)) (models.ExperimentConfig, error) {
	if err := requireScope(sessionCode); err != nil {
		return nil, err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, storeErr(err, "starting transaction")
	}
	defer func() { _ = tx.Rollback() }()

	locked, err := tx.Session.Query().
		Where(session.SessionCodeEQ(sessionCode)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fault.Errorf(fault.SessionNotFound, "no session with code %q", sessionCode)
		}
		return nil, storeErr(err, "locking session")
	}

	cfg := models.ExperimentConfig(locked.ExperimentConfig)
	if cfg == nil {
		cfg = models.ExperimentConfig{}
	}
	fn(cfg)

	if err := locked.Update().SetExperimentConfig(cfg).Exec(ctx); err != nil {
		return nil, storeErr(err, "saving experiment config")
	}
	if err := tx.Commit(); err != nil {
		return nil, storeErr(err, "committing config mutation")
	}
	return cfg, nil
}

// SetVote records (or overwrites) a HiddenProfiles vote.
func (s *SessionStore) SetVote(ctx context.Context, sessionCode, participantCode, candidateName string) error {
	_, err := s.MutateConfig(ctx, sessionCode, func(cfg models.ExperimentConfig) {
		hp := ensureSub(cfg, models.KeyHiddenProfiles)
		votes := ensureSub(hp, models.KeyVotes)
		votes[participantCode] = candidateName
	})
	return err
}

// SetInitiative classifies a participant as active or passive.
func (s *SessionStore) SetInitiative(ctx context.Context, sessionCode, participantCode, initiative string) error {
	if initiative != models.InitiativeActive && initiative != models.InitiativePassive {
		return fault.Errorf(fault.InvalidState, "unknown initiative %q", initiative)
	}
	_, err := s.MutateConfig(ctx, sessionCode, func(cfg models.ExperimentConfig) {
		hp := ensureSub(cfg, models.KeyHiddenProfiles)
		inits := ensureSub(hp, models.KeyInitiatives)
		inits[participantCode] = initiative
	})
	return err
}

// RemoveInitiative clears a participant's initiative entry on agent shutdown.
func (s *SessionStore) RemoveInitiative(ctx context.Context, sessionCode, participantCode string) error {
	_, err := s.MutateConfig(ctx, sessionCode, func(cfg models.ExperimentConfig) {
		hp := ensureSub(cfg, models.KeyHiddenProfiles)
		if inits, ok := hp[models.KeyInitiatives].(map[string]any); ok {
			delete(inits, participantCode)
		}
	})
	return err
}

// SetPublicInfo stores the shared HiddenProfiles document.
func (s *SessionStore) SetPublicInfo(ctx context.Context, sessionCode, text string) error {
	_, err := s.MutateConfig(ctx, sessionCode, func(cfg models.ExperimentConfig) {
		hp := ensureSub(cfg, models.KeyHiddenProfiles)
		hp[models.KeyPublicInfo] = text
	})
	return err
}

// AssignDoc attaches a candidate document to a participant.
func (s *SessionStore) AssignDoc(ctx context.Context, sessionCode, participantCode, text string) error {
	_, err := s.MutateConfig(ctx, sessionCode, func(cfg models.ExperimentConfig) {
		hp := ensureSub(cfg, models.KeyHiddenProfiles)
		docs := ensureSub(hp, models.KeyAssignedDocs)
		docs[participantCode] = text
	})
	return err
}

// SetCandidates stores the HiddenProfiles candidate list.
func (s *SessionStore) SetCandidates(ctx context.Context, sessionCode string, names []string) error {
	_, err := s.MutateConfig(ctx, sessionCode, func(cfg models.ExperimentConfig) {
		hp := ensureSub(cfg, models.KeyHiddenProfiles)
		asAny := make([]any, len(names))
		for i, n := range names {
			asAny[i] = n
		}
		hp[models.KeyCandidates] = asAny
	})
	return err
}

// ensureSub returns cfg[key] as a mutable map, creating it when absent.
func ensureSub(cfg map[string]any, key string) map[string]any {
	if sub, ok := cfg[key].(map[string]any); ok {
		return sub
	}
	sub := map[string]any{}
	cfg[key] = sub
	return sub
}

// ReadingPhaseComplete reports whether HiddenProfiles reading is done:
// publicInfo set and every participant holding an assigned document.
func (s *SessionStore) ReadingPhaseComplete(ctx context.Context, sessionCode string) (bool, error) {
	sess, err := s.GetByCode(ctx, sessionCode)
	if err != nil {
		return false, err
	}
	cfg := models.ExperimentConfig(sess.ExperimentConfig)
	if cfg.PublicInfo() == "" {
		return false, nil
	}

	participants, err := sess.QueryParticipants().All(ctx)
	if err != nil {
		return false, storeErr(err, "listing participants")
	}
	if len(participants) == 0 {
		return false, nil
	}
	for _, p := range participants {
		if cfg.AssignedDoc(p.ParticipantCode) == "" {
			return false, nil
		}
	}
	return true, nil
}

// lockSession locks a session row as the outermost lock in multi-row
// transactions (short-id sequencing, config mutation under contention).
func lockSession(ctx context.Context, tx *ent.Tx, sessionCode string) (*ent.Session, error) {
	locked, err := tx.Session.Query().
		Where(session.SessionCodeEQ(sessionCode)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fault.Errorf(fault.SessionNotFound, "no session with code %q", sessionCode)
		}
		return nil, storeErr(err, "locking session")
	}
	return locked, nil
}
