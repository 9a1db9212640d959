package engine

import (
	"context"
	"log/slog"

	"github.com/behavelab/parley/ent"
	"github.com/behavelab/parley/ent/session"
	"github.com/behavelab/parley/pkg/events"
	"github.com/behavelab/parley/pkg/fault"
	"github.com/behavelab/parley/pkg/models"
	"github.com/behavelab/parley/pkg/store"
)

// BroadcastRecipient is the recipient value that addresses every participant.
const BroadcastRecipient = "all"

// base carries the lifecycle surface shared by every engine. Kind engines
// embed it and override the pieces their rules touch. It doubles as the
// generic engine for custom_* experiment kinds.
//
// self points at the outermost engine so composed views (GameState) pick up
// kind overrides; embedding alone would pin them to the base methods.
type base struct {
	kind   models.ExperimentType
	store  *store.Store
	events *events.EventPublisher
	timers TimerReader
	self   Engine
}

func (e *base) Kind() models.ExperimentType { return e.kind }

func (e *base) CreateSession(ctx context.Context, req models.CreateSessionRequest) (*ent.Session, error) {
	if req.ExperimentType == "" {
		req.ExperimentType = e.kind
	}
	if req.ExperimentType != e.kind {
		return nil, fault.Errorf(fault.InvalidState,
			"experiment type %q does not match engine %s", req.ExperimentType, e.kind)
	}
	sess, err := e.store.Sessions.CreateSession(ctx, req)
	if err != nil {
		return nil, err
	}
	e.publishStatus(ctx, sess)
	return sess, nil
}

// AddParticipant registers a participant during setup. Kind engines override
// this to layer on role balancing, order generation, or word dealing.
func (e *base) AddParticipant(ctx context.Context, sessionCode string, req models.CreateParticipantRequest) (*ent.Participant, error) {
	if err := e.requireSetupPhase(ctx, sessionCode); err != nil {
		return nil, err
	}
	return e.store.Participants.Add(ctx, sessionCode, req)
}

func (e *base) requireSetupPhase(ctx context.Context, sessionCode string) error {
	sess, err := e.store.Sessions.GetByCode(ctx, sessionCode)
	if err != nil {
		return err
	}
	if sess.Status != session.StatusIdle && sess.Status != session.StatusSetupComplete {
		return fault.Errorf(fault.InvalidState,
			"participants can only be added before the session starts, %s is %s", sessionCode, sess.Status)
	}
	return nil
}

func (e *base) ParticipantState(ctx context.Context, sessionCode, participantCode string) (map[string]any, error) {
	p, err := e.store.Participants.Get(ctx, sessionCode, participantCode)
	if err != nil {
		return nil, err
	}
	return baseState(p), nil
}

// baseState is the private-view skeleton every kind builds on.
func baseState(p *ent.Participant) map[string]any {
	return map[string]any{
		"participant_code": p.ParticipantCode,
		"type":             p.Type.String(),
		"login_status":     p.LoginStatus.String(),
	}
}

func (e *base) PublicState(ctx context.Context, sessionCode string) (*models.PublicState, error) {
	sess, err := e.store.Sessions.GetByCode(ctx, sessionCode)
	if err != nil {
		return nil, err
	}
	participants, err := e.store.Participants.ListBySession(ctx, sessionCode)
	if err != nil {
		return nil, err
	}

	cfg := models.ExperimentConfig(sess.ExperimentConfig)
	aware := cfg.AwarenessDashboard()
	summaries := make([]models.ParticipantSummary, 0, len(participants))
	for _, p := range participants {
		s := models.ParticipantSummary{
			ParticipantCode: p.ParticipantCode,
			Type:            p.Type.String(),
			LoginStatus:     p.LoginStatus.String(),
		}
		if aware {
			money := p.Money
			s.Money = &money
			if e.kind == models.ExperimentShapeFactory {
				completed := p.OrdersCompleted
				produced := p.SpecialtyProductionUsed
				s.OrdersCompleted = &completed
				s.ProductionCount = &produced
			}
		}
		summaries = append(summaries, s)
	}

	return &models.PublicState{
		SessionStatus:    sess.Status.String(),
		ExperimentType:   e.kind,
		Description:      e.kind.Description(),
		Participants:     summaries,
		ExperimentConfig: cfg,
		Timer:            e.timerInfo(sess),
	}, nil
}

// timerInfo prefers the authoritative registry snapshot; for sessions with
// no running timer it derives one from the session row so public state is
// always populated.
func (e *base) timerInfo(sess *ent.Session) models.TimerInfo {
	if e.timers != nil {
		if info, ok := e.timers.Snapshot(sess.SessionCode); ok {
			return info
		}
	}
	cfg := models.ExperimentConfig(sess.ExperimentConfig)
	minutes := cfg.RoundDurationMinutes()
	info := models.TimerInfo{
		TimeRemaining:        minutes * 60,
		ExperimentStatus:     models.TimerWaiting,
		RoundDurationMinutes: minutes,
	}
	if sess.Status == session.StatusSessionCompleted {
		info.TimeRemaining = 0
		info.ExperimentStatus = models.TimerCompleted
	}
	return info
}

func (e *base) GameState(ctx context.Context, sessionCode, participantCode string) (*models.GameState, error) {
	private, err := e.self.ParticipantState(ctx, sessionCode, participantCode)
	if err != nil {
		return nil, err
	}
	public, err := e.self.PublicState(ctx, sessionCode)
	if err != nil {
		return nil, err
	}
	return &models.GameState{
		PrivateState:       private,
		PublicState:        *public,
		CommunicationLevel: public.ExperimentConfig.CommunicationLevel(),
	}, nil
}

// SendMessage applies the session's communication level, persists the
// message, and broadcasts a new_message event.
//
//   - chat: direct messages only; "all" is rejected.
//   - broadcast: every message goes to "all", direct recipients are coerced.
//   - no_chat: all messages rejected.
func (e *base) SendMessage(ctx context.Context, sessionCode, sender, recipient, content string) (*ent.Message, error) {
	sess, err := e.store.Sessions.GetByCode(ctx, sessionCode)
	if err != nil {
		return nil, err
	}
	if sess.Status != session.StatusSessionActive {
		return nil, fault.Errorf(fault.InvalidState, "session %s is not active", sessionCode)
	}

	level := models.ExperimentConfig(sess.ExperimentConfig).CommunicationLevel()
	broadcast := recipient == "" || recipient == BroadcastRecipient
	switch level {
	case models.CommNoChat:
		return nil, fault.New(fault.CommunicationLevelViolation, "messaging is disabled in this session")
	case models.CommChat:
		if broadcast {
			return nil, fault.New(fault.CommunicationLevelViolation, "broadcast messaging is disabled in chat mode")
		}
	case models.CommBroadcast:
		broadcast = true
	}

	var to *string
	if !broadcast {
		to = &recipient
	}
	msg, err := e.store.Messages.Create(ctx, sessionCode, sender, to, content, models.MessageTypeChat)
	if err != nil {
		return nil, err
	}

	payload := events.NewMessagePayload{
		BasePayload: events.Base(events.EventTypeNewMessage, sessionCode),
		MessageID:   msg.ID,
		Sender:      sender,
		MessageType: models.MessageTypeChat,
		Content:     content,
	}
	if !broadcast {
		payload.Recipient = recipient
	}
	e.publish(ctx, "new_message", func() error {
		return e.events.PublishNewMessage(ctx, msg.SessionID, payload)
	})
	return msg, nil
}

// StartSession moves the session into session_active. A freshly-created
// session passes through setup_complete on the way.
func (e *base) StartSession(ctx context.Context, sessionCode string) (*ent.Session, error) {
	sess, err := e.store.Sessions.GetByCode(ctx, sessionCode)
	if err != nil {
		return nil, err
	}
	if sess.Status == session.StatusIdle {
		if _, err := e.store.Sessions.UpdateStatus(ctx, sessionCode, session.StatusSetupComplete); err != nil {
			return nil, err
		}
	}
	sess, err = e.store.Sessions.UpdateStatus(ctx, sessionCode, session.StatusSessionActive)
	if err != nil {
		return nil, err
	}
	e.publishStatus(ctx, sess)
	return sess, nil
}

func (e *base) EndSession(ctx context.Context, sessionCode string) (*ent.Session, error) {
	sess, err := e.store.Sessions.UpdateStatus(ctx, sessionCode, session.StatusSessionCompleted)
	if err != nil {
		return nil, err
	}
	e.publishStatus(ctx, sess)
	return sess, nil
}

// HandleAction on base rejects everything: the generic engine has no
// kind-specific actions.
func (e *base) HandleAction(_ context.Context, _, _, name string, _ map[string]any) (map[string]any, error) {
	return nil, unknownAction(e.kind, name)
}

// publish runs an event emission and logs failures instead of propagating
// them; events are advisory, the store commit already happened.
func (e *base) publish(ctx context.Context, eventType string, fn func() error) {
	if e.events == nil {
		return
	}
	if err := fn(); err != nil {
		slog.WarnContext(ctx, "Failed to publish event", "event_type", eventType, "error", err)
	}
}

func (e *base) publishStatus(ctx context.Context, sess *ent.Session) {
	e.publish(ctx, events.EventTypeSessionStatus, func() error {
		return e.events.PublishSessionStatus(ctx, sess.ID, events.SessionStatusPayload{
			BasePayload: events.Base(events.EventTypeSessionStatus, sess.SessionCode),
			Status:      sess.Status.String(),
		})
	})
}
