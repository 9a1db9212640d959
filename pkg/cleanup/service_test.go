package cleanup

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/behavelab/parley/ent/session"
	"github.com/behavelab/parley/pkg/config"
	"github.com/behavelab/parley/pkg/database"
	"github.com/behavelab/parley/pkg/store"
	testdb "github.com/behavelab/parley/test/database"
)

func testRetention() config.RetentionConfig {
	return config.RetentionConfig{
		CompletedGrace:  1 * time.Hour,
		EventTTL:        24 * time.Hour,
		CleanupInterval: 1 * time.Hour,
	}
}

// createSession inserts a session row with the given status. completedAt may
// be zero for sessions that never finished.
func createSession(t *testing.T, client *database.Client, status session.Status, completedAt time.Time) (string, string) {
	t.Helper()
	ctx := context.Background()

	id := uuid.New().String()
	code := "T" + strings.ToUpper(id[:6])
	create := client.Session.Create().
		SetID(id).
		SetSessionCode(code).
		SetExperimentType("shapefactory").
		SetStatus(status)
	if !completedAt.IsZero() {
		create = create.SetCompletedAt(completedAt)
	}
	_, err := create.Save(ctx)
	require.NoError(t, err)
	return id, "session:" + code
}

// createEvent inserts an event row with an explicit created_at.
func createEvent(t *testing.T, client *database.Client, sessionID, channel string, createdAt time.Time) {
	t.Helper()
	_, err := client.Event.Create().
		SetSessionID(sessionID).
		SetChannel(channel).
		SetPayload(map[string]any{"type": "new_message"}).
		SetCreatedAt(createdAt).
		Save(context.Background())
	require.NoError(t, err)
}

func TestService_PrunesCompletedSessionEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	events := store.NewEventStore(client)
	ctx := context.Background()

	// Session completed 2 hours ago, past the 1 hour grace window
	id, channel := createSession(t, client, session.StatusSessionCompleted, time.Now().Add(-2*time.Hour))
	createEvent(t, client, id, channel, time.Now().Add(-2*time.Hour))

	svc := NewService(testRetention(), events)
	svc.runAll(ctx)

	remaining, err := events.EventsSince(ctx, channel, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, remaining, "events of long-completed sessions should be pruned")
}

func TestService_PreservesRecentlyCompletedEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	events := store.NewEventStore(client)
	ctx := context.Background()

	// Session completed just now: still inside the grace window
	id, channel := createSession(t, client, session.StatusSessionCompleted, time.Now())
	createEvent(t, client, id, channel, time.Now().Add(-time.Minute))

	svc := NewService(testRetention(), events)
	svc.runAll(ctx)

	remaining, err := events.EventsSince(ctx, channel, 0, 0)
	require.NoError(t, err)
	assert.Len(t, remaining, 1, "grace window should preserve events for dashboard catchup")
}

func TestService_PreservesActiveSessionEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	events := store.NewEventStore(client)
	ctx := context.Background()

	// Active session with fresh events: neither pass should touch it
	id, channel := createSession(t, client, session.StatusSessionActive, time.Time{})
	createEvent(t, client, id, channel, time.Now().Add(-10*time.Minute))

	svc := NewService(testRetention(), events)
	svc.runAll(ctx)

	remaining, err := events.EventsSince(ctx, channel, 0, 0)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestService_ExpiresAbandonedEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	events := store.NewEventStore(client)
	ctx := context.Background()

	// Session that never completed; its old events fall to the TTL safety net
	id, channel := createSession(t, client, session.StatusSessionActive, time.Time{})
	createEvent(t, client, id, channel, time.Now().Add(-2*time.Hour))
	createEvent(t, client, id, channel, time.Now())

	cfg := testRetention()
	cfg.EventTTL = 1 * time.Hour
	svc := NewService(cfg, events)
	svc.runAll(ctx)

	remaining, err := events.EventsSince(ctx, channel, 0, 0)
	require.NoError(t, err)
	assert.Len(t, remaining, 1, "old event should be deleted, recent event preserved")
}

func TestService_StartStop(t *testing.T) {
	client := testdb.NewTestClient(t)
	events := store.NewEventStore(client)

	svc := NewService(testRetention(), events)
	svc.Start(context.Background())
	svc.Start(context.Background()) // second Start is a no-op
	svc.Stop()

	// Stop after Stop must not panic or block
	svc2 := NewService(testRetention(), events)
	svc2.Stop()
}