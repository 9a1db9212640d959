package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/behavelab/parley/ent"
	"github.com/behavelab/parley/ent/message"
	"github.com/behavelab/parley/ent/participant"
	"github.com/behavelab/parley/ent/predicate"
	"github.com/behavelab/parley/ent/session"
	"github.com/behavelab/parley/pkg/database"
	"github.com/behavelab/parley/pkg/fault"
	"github.com/behavelab/parley/pkg/models"
)

// MessageStore persists direct and broadcast chat traffic. A NULL recipient
// marks a broadcast; per-viewer receipt of broadcasts lives in message_data
// under "seen_by".
type MessageStore struct {
	client *database.Client
}

// NewMessageStore creates a new MessageStore.
func NewMessageStore(client *database.Client) *MessageStore {
	return &MessageStore{client: client}
}

// Create stores a message. recipient == nil means broadcast to the whole
// session.
func (s *MessageStore) Create(ctx context.Context, sessionCode, sender string, recipient *string, content, msgType string) (*ent.Message, error) {
	sess, err := sessionByCode(ctx, s.client.Client, sessionCode)
	if err != nil {
		return nil, err
	}
	if content == "" {
		return nil, fault.New(fault.InvalidState, "message content is empty")
	}
	if msgType == "" {
		msgType = "chat"
	}

	data := map[string]interface{}{}
	if recipient == nil {
		// The sender has trivially seen their own broadcast.
		data["seen_by"] = []interface{}{sender}
	}

	create := s.client.Message.Create().
		SetID(uuid.NewString()).
		SetSessionID(sess.ID).
		SetSender(sender).
		SetContent(content).
		SetType(msgType).
		SetMessageData(data)
	if recipient != nil {
		create.SetRecipient(*recipient)
	}

	msg, err := create.Save(ctx)
	if err != nil {
		return nil, storeErr(err, "creating message")
	}
	return msg, nil
}

// Unread returns the messages a participant has not consumed yet: direct
// messages addressed to them that are not read, plus broadcasts from others
// whose seen_by list does not include them. Ordered oldest first.
func (s *MessageStore) Unread(ctx context.Context, sessionCode, participantCode string) ([]*ent.Message, error) {
	if err := requireScope(sessionCode); err != nil {
		return nil, err
	}
	candidates, err := s.client.Message.Query().
		Where(
			message.HasSessionWith(session.SessionCodeEQ(sessionCode)),
			message.DeliveredStatusNEQ(message.DeliveredStatusRead),
			message.Or(
				message.RecipientEQ(participantCode),
				message.RecipientIsNil(),
			),
		).
		Order(ent.Asc(message.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, storeErr(err, "querying unread messages")
	}

	var unread []*ent.Message
	for _, m := range candidates {
		if m.Recipient != nil || !hasSeen(m, participantCode) {
			unread = append(unread, m)
		}
	}
	return unread, nil
}

// MarkDirectRead flips direct messages addressed to the participant to read,
// all of them or just the given ids. Returns the number of rows updated.
func (s *MessageStore) MarkDirectRead(ctx context.Context, sessionCode, participantCode string, ids ...string) (int, error) {
	if err := requireScope(sessionCode); err != nil {
		return 0, err
	}
	preds := []predicate.Message{
		message.HasSessionWith(session.SessionCodeEQ(sessionCode)),
		message.RecipientEQ(participantCode),
		message.DeliveredStatusNEQ(message.DeliveredStatusRead),
	}
	if len(ids) > 0 {
		preds = append(preds, message.IDIn(ids...))
	}
	n, err := s.client.Message.Update().
		Where(preds...).
		SetDeliveredStatus(message.DeliveredStatusRead).
		Save(ctx)
	if err != nil {
		return 0, storeErr(err, "marking messages read")
	}
	return n, nil
}

// MarkDelivered flips sent messages to delivered once pushed to a connected
// client.
func (s *MessageStore) MarkDelivered(ctx context.Context, sessionCode string, ids []string) error {
	if err := requireScope(sessionCode); err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	err := s.client.Message.Update().
		Where(
			message.IDIn(ids...),
			message.HasSessionWith(session.SessionCodeEQ(sessionCode)),
			message.DeliveredStatusEQ(message.DeliveredStatusSent),
		).
		SetDeliveredStatus(message.DeliveredStatusDelivered).
		Exec(ctx)
	if err != nil {
		return storeErr(err, "marking messages delivered")
	}
	return nil
}

// MarkBroadcastSeen appends the viewer to a broadcast's seen_by list. The
// update runs under a row lock so concurrent viewers cannot drop each other's
// receipts, and it is idempotent for repeat viewers. Once every session
// participant is in seen_by the broadcast flips to read.
func (s *MessageStore) MarkBroadcastSeen(ctx context.Context, sessionCode, messageID, viewerCode string) error {
	if err := requireScope(sessionCode); err != nil {
		return err
	}
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return storeErr(err, "starting transaction")
	}
	defer func() { _ = tx.Rollback() }()

	m, err := lockBroadcast(ctx, tx, sessionCode, messageID)
	if err != nil {
		return err
	}
	if !hasSeen(m, viewerCode) {
		data := m.MessageData
		if data == nil {
			data = map[string]interface{}{}
		}
		data["seen_by"] = toAnySlice(append(models.MessageData(data).SeenBy(), viewerCode))
		m, err = tx.Message.UpdateOne(m).SetMessageData(data).Save(ctx)
		if err != nil {
			return storeErr(err, "updating broadcast receipt")
		}
	}
	if err := maybeMarkRead(ctx, tx, sessionCode, m); err != nil {
		return err
	}
	return tx.Commit()
}

// MaybeMarkBroadcastRead flips a broadcast to read once seen_by covers every
// session participant. Idempotent: a broadcast that is already read, or not
// yet fully seen, is left alone.
func (s *MessageStore) MaybeMarkBroadcastRead(ctx context.Context, sessionCode, messageID string) error {
	if err := requireScope(sessionCode); err != nil {
		return err
	}
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return storeErr(err, "starting transaction")
	}
	defer func() { _ = tx.Rollback() }()

	m, err := lockBroadcast(ctx, tx, sessionCode, messageID)
	if err != nil {
		return err
	}
	if err := maybeMarkRead(ctx, tx, sessionCode, m); err != nil {
		return err
	}
	return tx.Commit()
}

func lockBroadcast(ctx context.Context, tx *ent.Tx, sessionCode, messageID string) (*ent.Message, error) {
	m, err := tx.Message.Query().
		Where(
			message.IDEQ(messageID),
			message.HasSessionWith(session.SessionCodeEQ(sessionCode)),
		).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fault.Errorf(fault.StoreError, "message %s not found", messageID)
		}
		return nil, storeErr(err, "locking message")
	}
	if m.Recipient != nil {
		return nil, fault.New(fault.InvalidState, "message is not a broadcast")
	}
	return m, nil
}

func maybeMarkRead(ctx context.Context, tx *ent.Tx, sessionCode string, m *ent.Message) error {
	if m.DeliveredStatus == message.DeliveredStatusRead {
		return nil
	}
	participants, err := tx.Participant.Query().
		Where(participant.HasSessionWith(session.SessionCodeEQ(sessionCode))).
		All(ctx)
	if err != nil {
		return storeErr(err, "listing participants")
	}
	if !allHaveSeen(participants, models.MessageData(m.MessageData).SeenBy()) {
		return nil
	}
	if err := tx.Message.UpdateOne(m).SetDeliveredStatus(message.DeliveredStatusRead).Exec(ctx); err != nil {
		return storeErr(err, "marking broadcast read")
	}
	return nil
}

// History returns the conversation between two participants, oldest first,
// capped at limit (0 means no cap).
func (s *MessageStore) History(ctx context.Context, sessionCode, a, b string, limit int) ([]*ent.Message, error) {
	if err := requireScope(sessionCode); err != nil {
		return nil, err
	}
	q := s.client.Message.Query().
		Where(
			message.HasSessionWith(session.SessionCodeEQ(sessionCode)),
			message.Or(
				message.And(message.SenderEQ(a), message.RecipientEQ(b)),
				message.And(message.SenderEQ(b), message.RecipientEQ(a)),
			),
		).
		Order(ent.Desc(message.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	msgs, err := q.All(ctx)
	if err != nil {
		return nil, storeErr(err, "loading conversation")
	}
	reverseMessages(msgs)
	return msgs, nil
}

// Broadcasts returns the most recent broadcasts, oldest first.
func (s *MessageStore) Broadcasts(ctx context.Context, sessionCode string, limit int) ([]*ent.Message, error) {
	if err := requireScope(sessionCode); err != nil {
		return nil, err
	}
	q := s.client.Message.Query().
		Where(
			message.HasSessionWith(session.SessionCodeEQ(sessionCode)),
			message.RecipientIsNil(),
		).
		Order(ent.Desc(message.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	msgs, err := q.All(ctx)
	if err != nil {
		return nil, storeErr(err, "loading broadcasts")
	}
	reverseMessages(msgs)
	return msgs, nil
}

// ListBySession returns every message of the session, oldest first. Used by
// exports, which need the full transcript rather than a windowed view.
func (s *MessageStore) ListBySession(ctx context.Context, sessionCode string) ([]*ent.Message, error) {
	if err := requireScope(sessionCode); err != nil {
		return nil, err
	}
	msgs, err := s.client.Message.Query().
		Where(message.HasSessionWith(session.SessionCodeEQ(sessionCode))).
		Order(ent.Asc(message.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, storeErr(err, "listing messages")
	}
	return msgs, nil
}

func hasSeen(m *ent.Message, code string) bool {
	return models.MessageData(m.MessageData).Seen(code)
}

func allHaveSeen(participants []*ent.Participant, seen []string) bool {
	set := map[string]bool{}
	for _, v := range seen {
		set[v] = true
	}
	for _, p := range participants {
		if !set[p.ParticipantCode] {
			return false
		}
	}
	return len(participants) > 0
}

func toAnySlice(vals []string) []interface{} {
	out := make([]interface{}, len(vals))
	for i, v := range vals {
		out[i] = v
	}
	return out
}

func reverseMessages(msgs []*ent.Message) {
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
}
