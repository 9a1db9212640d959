package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// catchupLimit caps how many stored events a single catchup delivers. A
// dashboard that missed more than this gets catchup.overflow and should
// reload the session state over REST instead of paging through the backlog.
const catchupLimit = 200

// listenTimeout bounds the LISTEN command issued for a channel's first
// subscriber. A stalled LISTEN would otherwise block that client's read
// loop forever.
const listenTimeout = 10 * time.Second

// CatchupEvent is one stored event row as returned by the catchup query.
type CatchupEvent struct {
	ID      int
	Payload map[string]any
}

// CatchupQuerier loads stored events for catchup. Implemented by
// EventStoreAdapter over store.EventStore.
type CatchupQuerier interface {
	GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error)
}

// ConnectionManager owns this process's WebSocket clients and their channel
// subscriptions. Researchers' dashboards and participant UIs subscribe to
// "session:<code>" rooms (or the global "sessions" feed); NOTIFY traffic
// arriving via the NotifyListener fans out to subscribers here.
type ConnectionManager struct {
	// connection_id → live connection
	connections map[string]*Connection
	mu          sync.RWMutex

	// channel → set of subscribed connection_ids
	channels  map[string]map[string]bool
	channelMu sync.RWMutex

	catchupQuerier CatchupQuerier

	// listener handles the PG-side LISTEN/UNLISTEN as subscribers come and
	// go. Set once after construction (the two reference each other).
	listener   *NotifyListener
	listenerMu sync.RWMutex

	writeTimeout time.Duration
}

// Connection is a single WebSocket client.
//
// subscriptions is deliberately lock-free: every access happens on the one
// goroutine that owns the connection (HandleConnection's read loop and its
// deferred cleanup). Anything that would touch it from outside that
// goroutine, an admin kick for example, must add a mutex first.
type Connection struct {
	ID            string
	Conn          *websocket.Conn
	subscriptions map[string]bool
	ctx           context.Context
	cancel        context.CancelFunc
}

// NewConnectionManager creates a ConnectionManager. writeTimeout applies to
// every outbound frame; a client that stops reading is dropped rather than
// allowed to stall broadcasts.
func NewConnectionManager(catchupQuerier CatchupQuerier, writeTimeout time.Duration) *ConnectionManager {
	return &ConnectionManager{
		connections:    make(map[string]*Connection),
		channels:       make(map[string]map[string]bool),
		catchupQuerier: catchupQuerier,
		writeTimeout:   writeTimeout,
	}
}

// SetListener wires in the NotifyListener. Called once during startup after
// both sides exist.
func (m *ConnectionManager) SetListener(l *NotifyListener) {
	m.listenerMu.Lock()
	defer m.listenerMu.Unlock()
	m.listener = l
}

// HandleConnection runs a single WebSocket client from upgrade to close.
// Blocks for the lifetime of the connection; the HTTP handler calls it on
// the request goroutine.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	ctx, cancel := context.WithCancel(parentCtx)
	c := &Connection{
		ID:            uuid.New().String(),
		Conn:          conn,
		subscriptions: make(map[string]bool),
		ctx:           ctx,
		cancel:        cancel,
	}

	m.registerConnection(c)
	defer m.unregisterConnection(c)

	m.sendJSON(c, map[string]string{
		"type":          "connection.established",
		"connection_id": c.ID,
	})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message",
				"connection_id", c.ID, "error", err)
			continue
		}

		switch msg.Action {
		case "subscribe":
			m.handleSubscribe(ctx, c, msg.Channel)
		case "unsubscribe":
			m.handleUnsubscribe(c, msg.Channel)
		case "catchup":
			m.handleCatchupRequest(ctx, c, &msg)
		case "ping":
			m.sendJSON(c, map[string]string{"type": "pong"})
		}
	}
}

// Broadcast delivers one event frame to every subscriber of a channel.
func (m *ConnectionManager) Broadcast(channel string, event []byte) {
	m.channelMu.RLock()
	connIDs, exists := m.channels[channel]
	if !exists {
		m.channelMu.RUnlock()
		return
	}
	ids := make([]string, 0, len(connIDs))
	for id := range connIDs {
		ids = append(ids, id)
	}
	m.channelMu.RUnlock()

	// Snapshot the connection pointers, then send without holding either
	// lock. A slow client costs up to writeTimeout; holding mu that long
	// would freeze connect/disconnect for everyone.
	m.mu.RLock()
	conns := make([]*Connection, 0, len(ids))
	for _, id := range ids {
		if conn, ok := m.connections[id]; ok {
			conns = append(conns, conn)
		}
	}
	m.mu.RUnlock()

	for _, conn := range conns {
		if err := m.sendRaw(conn, event); err != nil {
			slog.Warn("Failed to send to WebSocket client",
				"connection_id", conn.ID, "error", err)
		}
	}
}

// ActiveConnections returns the number of live WebSocket connections.
// Reported by the health endpoint.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// subscriberCount reports how many connections are subscribed to a channel.
// Unexported; tests poll it instead of sleeping.
func (m *ConnectionManager) subscriberCount(channel string) int {
	m.channelMu.RLock()
	defer m.channelMu.RUnlock()
	return len(m.channels[channel])
}

// handleSubscribe joins the client to a channel, confirms, then replays the
// channel's stored history so a late-joining dashboard renders complete
// state. The replay runs with LISTEN already active (subscribe is
// synchronous), so nothing published after the confirm can be missed.
func (m *ConnectionManager) handleSubscribe(ctx context.Context, c *Connection, channel string) {
	if channel == "" {
		m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for subscribe"})
		return
	}
	if !ValidChannel(channel) {
		m.sendJSON(c, map[string]string{
			"type":    "subscription.error",
			"channel": channel,
			"message": "unknown channel; expected \"sessions\" or \"session:<code>\"",
		})
		return
	}
	if err := m.subscribe(c, channel); err != nil {
		m.sendJSON(c, map[string]string{
			"type":    "subscription.error",
			"channel": channel,
			"message": "failed to subscribe to channel",
		})
		return
	}
	m.sendJSON(c, map[string]string{
		"type":    "subscription.confirmed",
		"channel": channel,
	})
	m.catchUp(ctx, c, channel, 0)
}

func (m *ConnectionManager) handleUnsubscribe(c *Connection, channel string) {
	if channel == "" {
		m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for unsubscribe"})
		return
	}
	m.unsubscribe(c, channel)
}

// handleCatchupRequest serves an explicit catchup, used by clients that
// reconnect with a stored db_event_id watermark.
func (m *ConnectionManager) handleCatchupRequest(ctx context.Context, c *Connection, msg *ClientMessage) {
	if msg.Channel == "" {
		m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for catchup"})
		return
	}
	if msg.LastEventID != nil {
		m.catchUp(ctx, c, msg.Channel, *msg.LastEventID)
	}
}

// subscribe registers the connection and, for the channel's first
// subscriber, issues LISTEN before returning. Synchronous LISTEN is what
// lets handleSubscribe replay history without a delivery gap: by the time
// the confirm goes out, new publishes already reach this process.
//
// A LISTEN failure is returned so the caller reports it instead of sending
// a false confirm.
func (m *ConnectionManager) subscribe(c *Connection, channel string) error {
	m.channelMu.Lock()
	needsListen := false
	if _, exists := m.channels[channel]; !exists {
		m.channels[channel] = make(map[string]bool)
		needsListen = true
	}
	m.channels[channel][c.ID] = true
	m.channelMu.Unlock()

	if needsListen {
		m.listenerMu.RLock()
		l := m.listener
		m.listenerMu.RUnlock()
		if l != nil {
			listenCtx, listenCancel := context.WithTimeout(context.Background(), listenTimeout)
			defer listenCancel()
			if err := l.Subscribe(listenCtx, channel); err != nil {
				slog.Error("Failed to LISTEN on channel", "channel", channel, "error", err)
				m.dropChannel(c, channel)
				return fmt.Errorf("LISTEN on channel %s: %w", channel, err)
			}
		}
	}

	c.subscriptions[channel] = true
	return nil
}

// dropChannel removes a channel whose LISTEN failed, notifying every
// subscriber except the triggering one (its caller returns the error).
//
// The window matters: between channelMu being released above and LISTEN
// completing, other clients may have subscribed to the same channel. They
// saw the channel entry already present, skipped LISTEN, and were confirmed,
// yet no PG subscription ever existed. Such a client can observe
// subscription.confirmed → catchup events → subscription.error; it must
// treat subscription.error as authoritative, discard what it buffered for
// the channel, and re-subscribe with backoff or fall back to REST polling.
//
// Affected connections keep a stale c.subscriptions entry. Harmless:
// Broadcast consults m.channels (deleted here), and both unsubscribe and
// unregisterConnection tolerate a missing channel.
func (m *ConnectionManager) dropChannel(triggering *Connection, channel string) {
	m.channelMu.Lock()
	affectedIDs := make([]string, 0, len(m.channels[channel]))
	for connID := range m.channels[channel] {
		if connID != triggering.ID {
			affectedIDs = append(affectedIDs, connID)
		}
	}
	delete(m.channels, channel)
	m.channelMu.Unlock()

	if len(affectedIDs) == 0 {
		return
	}

	m.mu.RLock()
	conns := make([]*Connection, 0, len(affectedIDs))
	for _, id := range affectedIDs {
		if conn, ok := m.connections[id]; ok {
			conns = append(conns, conn)
		}
	}
	m.mu.RUnlock()

	for _, conn := range conns {
		slog.Warn("Removing orphaned subscriber after LISTEN failure",
			"connection_id", conn.ID, "channel", channel)
		m.sendJSON(conn, map[string]string{
			"type":    "subscription.error",
			"channel": channel,
			"message": "channel listen failed; subscription removed",
		})
	}
}

// unsubscribe removes the connection from a channel; the last subscriber
// out triggers UNLISTEN.
func (m *ConnectionManager) unsubscribe(c *Connection, channel string) {
	m.channelMu.Lock()
	if subs, exists := m.channels[channel]; exists {
		delete(subs, c.ID)
		if len(subs) == 0 {
			delete(m.channels, channel)
			// UNLISTEN runs on a goroutine that re-checks m.channels
			// first. A dashboard that tears down and immediately
			// remounts its socket would otherwise race:
			//   subscribe → LISTEN active
			//   unsubscribe → UNLISTEN queued
			//   resubscribe → channel entry recreated, LISTEN skipped
			//   queued UNLISTEN fires → channel silently dead
			m.listenerMu.RLock()
			l := m.listener
			m.listenerMu.RUnlock()
			if l != nil {
				go func() {
					m.channelMu.RLock()
					_, resubscribed := m.channels[channel]
					m.channelMu.RUnlock()
					if resubscribed {
						return
					}
					if err := l.Unsubscribe(context.Background(), channel); err != nil {
						slog.Error("Failed to UNLISTEN channel", "channel", channel, "error", err)
					}
				}()
			}
		}
	}
	m.channelMu.Unlock()

	delete(c.subscriptions, channel)
}

// catchUp streams stored events after sinceID to one client, oldest first.
func (m *ConnectionManager) catchUp(ctx context.Context, c *Connection, channel string, sinceID int) {
	if m.catchupQuerier == nil {
		return
	}

	// Fetch one past the limit to learn whether the backlog overflows.
	events, err := m.catchupQuerier.GetCatchupEvents(ctx, channel, sinceID, catchupLimit+1)
	if err != nil {
		slog.Error("Catchup query failed", "channel", channel, "error", err)
		return
	}

	hasMore := len(events) > catchupLimit
	if hasMore {
		events = events[:catchupLimit]
	}

	// Stored payloads lack db_event_id (the publisher only adds it to the
	// NOTIFY copy), so inject the row ID here; clients track it as their
	// reconnect watermark.
	for _, evt := range events {
		evt.Payload["db_event_id"] = evt.ID
		payload, err := json.Marshal(evt.Payload)
		if err != nil {
			continue
		}
		if err := m.sendRaw(c, payload); err != nil {
			slog.Warn("Failed to send catchup event",
				"connection_id", c.ID, "error", err)
			return
		}
	}

	if hasMore {
		m.sendJSON(c, map[string]any{
			"type":     "catchup.overflow",
			"channel":  channel,
			"has_more": true,
		})
	}
}

func (m *ConnectionManager) registerConnection(c *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[c.ID] = c
}

// unregisterConnection tears the connection down: leaves every channel,
// drops it from tracking, cancels its context, closes the socket.
func (m *ConnectionManager) unregisterConnection(c *Connection) {
	for ch := range c.subscriptions {
		m.unsubscribe(c, ch)
	}

	m.mu.Lock()
	delete(m.connections, c.ID)
	m.mu.Unlock()

	c.cancel()
	_ = c.Conn.Close(websocket.StatusNormalClosure, "")
}

func (m *ConnectionManager) sendJSON(c *Connection, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket message",
			"connection_id", c.ID, "error", err)
		return
	}
	if err := m.sendRaw(c, data); err != nil {
		slog.Warn("Failed to send WebSocket message",
			"connection_id", c.ID, "error", err)
	}
}

func (m *ConnectionManager) sendRaw(c *Connection, data []byte) error {
	writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	return c.Conn.Write(writeCtx, websocket.MessageText, data)
}
