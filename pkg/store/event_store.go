package store

import (
	"context"
	"time"

	"github.com/behavelab/parley/ent"
	"github.com/behavelab/parley/ent/event"
	"github.com/behavelab/parley/ent/session"
	"github.com/behavelab/parley/pkg/database"
)

// EventStore reads and prunes the event outbox. Writing events is the
// publisher's job so the insert and the NOTIFY share one transaction; this
// store covers catch-up reads and cleanup.
type EventStore struct {
	client *database.Client
}

// NewEventStore creates a new EventStore.
func NewEventStore(client *database.Client) *EventStore {
	return &EventStore{client: client}
}

// EventsSince retrieves up to limit events on a channel after a given ID,
// oldest first. Clients use this to catch up after a dropped WebSocket;
// limit <= 0 means no cap.
func (s *EventStore) EventsSince(ctx context.Context, channel string, sinceID, limit int) ([]*ent.Event, error) {
	q := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(sinceID),
		).
		Order(ent.Asc(event.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}
	events, err := q.All(ctx)
	if err != nil {
		return nil, storeErr(err, "loading events")
	}
	return events, nil
}

// CleanupCompletedEvents removes events belonging to sessions that completed
// more than grace ago. The grace window keeps events available for dashboard
// catchup right after a session ends.
func (s *EventStore) CleanupCompletedEvents(ctx context.Context, grace time.Duration) (int, error) {
	cutoff := time.Now().Add(-grace)
	count, err := s.client.Event.Delete().
		Where(event.HasSessionWith(
			session.StatusEQ(session.StatusSessionCompleted),
			session.CompletedAtLT(cutoff),
		)).
		Exec(ctx)
	if err != nil {
		return 0, storeErr(err, "cleaning up completed session events")
	}
	return count, nil
}

// CleanupExpiredEvents removes events older than the TTL regardless of
// session, catching rows whose sessions never completed.
func (s *EventStore) CleanupExpiredEvents(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)
	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, storeErr(err, "cleaning up expired events")
	}
	return count, nil
}
