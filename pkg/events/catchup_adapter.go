package events

import (
	"context"

	"github.com/behavelab/parley/ent"
)

// eventQuerier is the slice of store.EventStore the catchup adapter needs.
type eventQuerier interface {
	EventsSince(ctx context.Context, channel string, sinceID, limit int) ([]*ent.Event, error)
}

// EventStoreAdapter wraps store.EventStore to implement CatchupQuerier.
type EventStoreAdapter struct {
	events eventQuerier
}

// NewEventStoreAdapter creates a CatchupQuerier from an EventStore.
func NewEventStoreAdapter(es eventQuerier) *EventStoreAdapter {
	return &EventStoreAdapter{events: es}
}

// GetCatchupEvents queries events since sinceID up to limit for the catchup mechanism.
func (a *EventStoreAdapter) GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error) {
	events, err := a.events.EventsSince(ctx, channel, sinceID, limit)
	if err != nil {
		return nil, err
	}

	result := make([]CatchupEvent, len(events))
	for i, evt := range events {
		result[i] = CatchupEvent{
			ID:      evt.ID,
			Payload: evt.Payload,
		}
	}
	return result, nil
}
