package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/behavelab/parley/ent/session"
	"github.com/behavelab/parley/pkg/database"
	"github.com/behavelab/parley/pkg/store"
	testdb "github.com/behavelab/parley/test/database"
	"github.com/behavelab/parley/test/util"
)

// streamingTestEnv holds all wired-up components for an integration test.
type streamingTestEnv struct {
	dbClient    *database.Client
	publisher   *EventPublisher
	eventStore  *store.EventStore
	manager     *ConnectionManager
	listener    *NotifyListener
	server      *httptest.Server
	sessionID   string // Pre-created session row (satisfies FK on events)
	sessionCode string
	channel     string // session:<sessionCode>
}

// setupStreamingTest wires all real components together against a real
// PostgreSQL database (testcontainers locally, service container in CI).
func setupStreamingTest(t *testing.T) *streamingTestEnv {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	// Create the session required by the FK on the events table. The code must
	// be unique across tests because NOTIFY channels are database-wide even
	// though each test gets its own schema.
	sessionID := uuid.New().String()
	sessionCode := "T" + strings.ToUpper(sessionID[:6])
	_, err := dbClient.Session.Create().
		SetID(sessionID).
		SetSessionCode(sessionCode).
		SetExperimentType("shapefactory").
		SetStatus(session.StatusSessionActive).
		Save(ctx)
	require.NoError(t, err)

	channel := SessionChannel(sessionCode)

	// Real components
	publisher := NewEventPublisher(dbClient.DB())
	eventStore := store.NewEventStore(dbClient)
	catchupQuerier := NewEventStoreAdapter(eventStore)
	manager := NewConnectionManager(catchupQuerier, 5*time.Second)

	// NotifyListener needs the base connection string (no schema search_path)
	// because NOTIFY/LISTEN is database-level, not schema-level.
	baseConnStr := util.GetBaseConnectionString(t)
	listener := NewNotifyListener(baseConnStr, manager)
	require.NoError(t, listener.Start(ctx))
	manager.SetListener(listener)

	t.Cleanup(func() { listener.Stop(context.Background()) })

	// httptest server with WebSocket upgrade
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(func() { server.Close() })

	return &streamingTestEnv{
		dbClient:    dbClient,
		publisher:   publisher,
		eventStore:  eventStore,
		manager:     manager,
		listener:    listener,
		server:      server,
		sessionID:   sessionID,
		sessionCode: sessionCode,
		channel:     channel,
	}
}

// connectWS opens a WebSocket to the test server and returns the connection.
// The connection is automatically closed on test cleanup.
func (env *streamingTestEnv) connectWS(t *testing.T) *websocket.Conn {
	t.Helper()
	url := "ws" + env.server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

// readJSONTimeout reads a JSON message from the WebSocket with a timeout.
func readJSONTimeout(t *testing.T, conn *websocket.Conn, timeout time.Duration) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

// subscribeAndWait connects a WebSocket, reads connection.established,
// subscribes to the given channel, reads subscription.confirmed, and
// waits for the LISTEN to propagate.
func (env *streamingTestEnv) subscribeAndWait(t *testing.T, channel string) *websocket.Conn {
	t.Helper()
	conn := env.connectWS(t)

	// Read connection.established
	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "connection.established", msg["type"])

	// Subscribe
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: channel})
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))

	// Read subscription.confirmed
	msg = readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])

	// Wait for the async LISTEN goroutine to complete on the NotifyListener's
	// dedicated connection, polling instead of sleeping.
	require.Eventually(t, func() bool {
		return env.listener.isListening(channel)
	}, 2*time.Second, 10*time.Millisecond, "LISTEN did not propagate for channel %s", channel)

	return conn
}

// --- Tests ---

func TestIntegration_PublisherPersistsAndNotifies(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Publish first event (chat message)
	payload := NewMessagePayload{
		BasePayload: Base(EventTypeNewMessage, env.sessionCode),
		MessageID:   "msg-1",
		Sender:      "P1",
		MessageType: "chat",
		Content:     "first event",
	}
	require.NoError(t, env.publisher.PublishNewMessage(ctx, env.sessionID, payload))

	// Publish second event (settled trade)
	trade := TradeCompletedPayload{
		BasePayload:   Base(EventTypeTradeCompleted, env.sessionCode),
		TransactionID: uuid.New().String(),
		ShortID:       "S1A2-001",
		Buyer:         "P1",
		Seller:        "P2",
		Shape:         "circle",
		Quantity:      3,
		PricePerUnit:  12,
		TotalPrice:    36,
	}
	require.NoError(t, env.publisher.PublishTradeCompleted(ctx, env.sessionID, trade))

	// Query persisted events via EventStore
	events, err := env.eventStore.EventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Verify order and content
	assert.Equal(t, env.sessionID, events[0].SessionID)
	assert.Equal(t, env.channel, events[0].Channel)
	assert.Equal(t, EventTypeNewMessage, events[0].Payload["type"])
	assert.Equal(t, "first event", events[0].Payload["content"])

	assert.Equal(t, EventTypeTradeCompleted, events[1].Payload["type"])
	assert.Equal(t, "P1", events[1].Payload["buyer"])
	assert.Equal(t, "circle", events[1].Payload["shape"])

	// IDs should be incrementing
	assert.Greater(t, events[1].ID, events[0].ID)
}

func TestIntegration_TransientEventsNotPersisted(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Publish transient event (timer tick)
	err := env.publisher.PublishTimerUpdate(ctx, TimerUpdatePayload{
		BasePayload:          Base(EventTypeTimerUpdate, env.sessionCode),
		Status:               "session_active",
		TimeRemainingSeconds: 180,
		RoundDurationMinutes: 5,
		Active:               true,
	})
	require.NoError(t, err)

	// Query DB — should have zero persisted events
	events, err := env.eventStore.EventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, events, "transient events should not be persisted in DB")
}

func TestIntegration_EndToEnd_PublishToWebSocket(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Connect, subscribe, and wait for LISTEN to propagate
	conn := env.subscribeAndWait(t, env.channel)

	// Publish a persistent event via EventPublisher
	err := env.publisher.PublishNewMessage(ctx, env.sessionID, NewMessagePayload{
		BasePayload: Base(EventTypeNewMessage, env.sessionCode),
		MessageID:   "msg-ws-1",
		Sender:      "P1",
		Recipient:   "P2",
		MessageType: "chat",
		Content:     "hello from publisher",
	})
	require.NoError(t, err)

	// Read from WebSocket — the event should arrive via pg_notify → listener → manager
	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeNewMessage, msg["type"])
	assert.Equal(t, "hello from publisher", msg["content"])
	assert.Equal(t, env.sessionCode, msg["session_code"])
	// db_event_id should be present (added by persistAndNotify after INSERT)
	assert.NotNil(t, msg["db_event_id"])
}

func TestIntegration_TimerTickDelivery(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Connect, subscribe, wait for LISTEN
	conn := env.subscribeAndWait(t, env.channel)

	// Publish transient timer tick (no DB persistence)
	err := env.publisher.PublishTimerUpdate(ctx, TimerUpdatePayload{
		BasePayload:          Base(EventTypeTimerUpdate, env.sessionCode),
		Status:               "session_active",
		TimeRemainingSeconds: 299,
		RoundDurationMinutes: 5,
		Active:               true,
	})
	require.NoError(t, err)

	// Should arrive via WebSocket
	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeTimerUpdate, msg["type"])
	assert.Equal(t, float64(299), msg["time_remaining_seconds"])
	assert.Equal(t, true, msg["active"])

	// Verify nothing was persisted
	events, err := env.eventStore.EventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, events, "timer ticks should not be persisted")
}

func TestIntegration_SessionStatusFansOutToGlobalChannel(t *testing.T) {
	// Session status changes are persisted on the session channel and
	// broadcast transiently on the global sessions channel so the session
	// list page updates without subscribing to every session.
	env := setupStreamingTest(t)
	ctx := context.Background()

	sessionConn := env.subscribeAndWait(t, env.channel)
	globalConn := env.subscribeAndWait(t, GlobalSessionsChannel)

	err := env.publisher.PublishSessionStatus(ctx, env.sessionID, SessionStatusPayload{
		BasePayload: Base(EventTypeSessionStatus, env.sessionCode),
		Status:      "session_paused",
	})
	require.NoError(t, err)

	// Both subscribers receive the status change
	msg := readJSONTimeout(t, sessionConn, 5*time.Second)
	assert.Equal(t, EventTypeSessionStatus, msg["type"])
	assert.Equal(t, "session_paused", msg["status"])

	msg = readJSONTimeout(t, globalConn, 5*time.Second)
	assert.Equal(t, EventTypeSessionStatus, msg["type"])
	assert.Equal(t, env.sessionCode, msg["session_code"])

	// Only the session-channel copy is persisted
	events, err := env.eventStore.EventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Len(t, events, 1)

	globalEvents, err := env.eventStore.EventsSince(ctx, GlobalSessionsChannel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, globalEvents, "global sessions channel copy should be transient")
}

func TestIntegration_CatchupFromRealDB(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Pre-populate DB with 3 persistent events
	for i := 1; i <= 3; i++ {
		err := env.publisher.PublishNewMessage(ctx, env.sessionID, NewMessagePayload{
			BasePayload: Base(EventTypeNewMessage, env.sessionCode),
			MessageID:   fmt.Sprintf("msg-%d", i),
			Sender:      "P1",
			MessageType: "chat",
			Content:     fmt.Sprintf("catchup %d", i),
		})
		require.NoError(t, err)
	}

	// Verify events exist in DB
	allEvents, err := env.eventStore.EventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, allEvents, 3)
	firstEventID := allEvents[0].ID

	// Connect a NEW WebSocket client (simulates reconnection)
	conn := env.connectWS(t)
	msg := readJSONTimeout(t, conn, 5*time.Second) // connection.established
	require.Equal(t, "connection.established", msg["type"])

	// Subscribe — auto-catchup delivers all 3 prior events immediately
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: env.channel})
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))
	msg = readJSONTimeout(t, conn, 5*time.Second) // subscription.confirmed
	require.Equal(t, "subscription.confirmed", msg["type"])

	// Read all 3 auto-catchup events in order
	for i := 1; i <= 3; i++ {
		msg = readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, EventTypeNewMessage, msg["type"])
		assert.Equal(t, fmt.Sprintf("catchup %d", i), msg["content"])
	}

	// Explicit catchup from the first event's ID — should return only events 2 and 3
	catchupFrom := firstEventID
	catchupMsg, _ := json.Marshal(ClientMessage{
		Action:      "catchup",
		Channel:     env.channel,
		LastEventID: &catchupFrom,
	})
	writeCtx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	require.NoError(t, conn.Write(writeCtx2, websocket.MessageText, catchupMsg))

	for i := 2; i <= 3; i++ {
		msg = readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, fmt.Sprintf("catchup %d", i), msg["content"])
	}

	// No more messages — verify with short timeout
	readCtx, readCancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer readCancel()
	_, _, err = conn.Read(readCtx)
	assert.Error(t, err, "should not receive more messages after catchup")
}
