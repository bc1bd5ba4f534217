package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// DefaultCatchupLimit is the maximum number of events replayed on subscribe
// or catchup. Past that, catchup.overflow tells the client to re-query the
// REST collections instead.
const DefaultCatchupLimit = 200

// listenTimeout bounds the LISTEN issued for a channel's first subscriber.
const listenTimeout = 10 * time.Second

// CatchupEvent is one stored event returned by the catchup query.
type CatchupEvent struct {
	ID      int
	Payload map[string]any
}

// CatchupQuerier queries events for catchup. Implemented by EventService.
type CatchupQuerier interface {
	GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error)
}

// ChannelListener starts and stops PostgreSQL LISTEN for a channel.
// Implemented by NotifyListener.
type ChannelListener interface {
	Subscribe(ctx context.Context, channel string) error
	Unsubscribe(ctx context.Context, channel string) error
}

// ConnectionManager tracks WebSocket clients of the hub and the channels each
// one follows. One instance per process.
type ConnectionManager struct {
	clientsMu sync.RWMutex
	clients   map[string]*wsClient

	// channel -> ids of subscribed clients
	channelsMu sync.RWMutex
	channels   map[string]map[string]struct{}

	listenerMu sync.RWMutex
	listener   ChannelListener

	catchup      CatchupQuerier
	catchupLimit int
	writeTimeout time.Duration
}

// wsClient is one WebSocket connection. subscribed belongs to the goroutine
// running HandleConnection.
type wsClient struct {
	id         string
	conn       *websocket.Conn
	ctx        context.Context
	cancel     context.CancelFunc
	subscribed map[string]struct{}
}

// NewConnectionManager creates a new ConnectionManager. A catchupLimit <= 0
// selects DefaultCatchupLimit.
func NewConnectionManager(catchup CatchupQuerier, writeTimeout time.Duration, catchupLimit int) *ConnectionManager {
	if catchupLimit <= 0 {
		catchupLimit = DefaultCatchupLimit
	}
	return &ConnectionManager{
		clients:      make(map[string]*wsClient),
		channels:     make(map[string]map[string]struct{}),
		catchup:      catchup,
		catchupLimit: catchupLimit,
		writeTimeout: writeTimeout,
	}
}

// SetListener wires the LISTEN/UNLISTEN backend. Called once during startup
// after both the manager and the NotifyListener exist.
func (m *ConnectionManager) SetListener(l ChannelListener) {
	m.listenerMu.Lock()
	m.listener = l
	m.listenerMu.Unlock()
}

func (m *ConnectionManager) currentListener() ChannelListener {
	m.listenerMu.RLock()
	defer m.listenerMu.RUnlock()
	return m.listener
}

// HandleConnection serves one upgraded WebSocket until the peer goes away or
// ctx is cancelled.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	ctx, cancel := context.WithCancel(parentCtx)
	c := &wsClient{
		id:         uuid.New().String(),
		conn:       conn,
		ctx:        ctx,
		cancel:     cancel,
		subscribed: make(map[string]struct{}),
	}

	m.clientsMu.Lock()
	m.clients[c.id] = c
	m.clientsMu.Unlock()
	defer m.disconnect(c)

	m.sendControl(c, ControlMessage{Type: EventTypeConnectionEstablished, ConnectionID: c.id})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message", "connection_id", c.id, "error", err)
			continue
		}
		m.dispatch(ctx, c, &msg)
	}
}

// Broadcast sends an already-encoded event to every subscriber of channel.
func (m *ConnectionManager) Broadcast(channel string, event []byte) {
	m.channelsMu.RLock()
	ids := make([]string, 0, len(m.channels[channel]))
	for id := range m.channels[channel] {
		ids = append(ids, id)
	}
	m.channelsMu.RUnlock()

	for _, c := range m.lookup(ids) {
		if err := m.write(c, event); err != nil {
			slog.Warn("Failed to send to WebSocket client",
				"connection_id", c.id, "channel", channel, "error", err)
		}
	}
}

// ActiveConnections returns the count of active WebSocket connections.
func (m *ConnectionManager) ActiveConnections() int {
	m.clientsMu.RLock()
	defer m.clientsMu.RUnlock()
	return len(m.clients)
}

// subscriberCount lets tests poll instead of sleeping.
func (m *ConnectionManager) subscriberCount(channel string) int {
	m.channelsMu.RLock()
	defer m.channelsMu.RUnlock()
	return len(m.channels[channel])
}

// lookup resolves client ids outside channelsMu; writes can take up to
// writeTimeout each and must not run under either lock.
func (m *ConnectionManager) lookup(ids []string) []*wsClient {
	m.clientsMu.RLock()
	defer m.clientsMu.RUnlock()
	out := make([]*wsClient, 0, len(ids))
	for _, id := range ids {
		if c, ok := m.clients[id]; ok {
			out = append(out, c)
		}
	}
	return out
}

func (m *ConnectionManager) dispatch(ctx context.Context, c *wsClient, msg *ClientMessage) {
	switch msg.Action {
	case "ping":
		m.sendControl(c, ControlMessage{Type: EventTypePong})
		return
	case "subscribe", "unsubscribe", "catchup":
	default:
		m.sendControl(c, ControlMessage{Type: EventTypeError, Message: "unknown action \"" + msg.Action + "\""})
		return
	}

	if msg.Channel == "" {
		m.sendControl(c, ControlMessage{Type: EventTypeError, Message: "channel is required for " + msg.Action})
		return
	}
	if ScopeOfChannel(msg.Channel) == "" {
		m.sendControl(c, ControlMessage{Type: EventTypeError, Channel: msg.Channel, Message: "unknown channel"})
		return
	}

	switch msg.Action {
	case "subscribe":
		added, err := m.subscribe(c, msg.Channel)
		if err != nil {
			m.sendControl(c, ControlMessage{
				Type:    EventTypeSubscriptionError,
				Channel: msg.Channel,
				Message: "failed to subscribe to channel",
			})
			return
		}
		m.sendControl(c, ControlMessage{Type: EventTypeSubscriptionConfirmed, Channel: msg.Channel})
		// A first subscribe replays history from the start, a reconnect from
		// last_event_id. A repeated subscribe replays nothing.
		switch {
		case msg.LastEventID != nil:
			m.replay(ctx, c, msg.Channel, *msg.LastEventID)
		case added:
			m.replay(ctx, c, msg.Channel, 0)
		}
	case "unsubscribe":
		m.unsubscribe(c, msg.Channel)
	case "catchup":
		if msg.LastEventID != nil {
			m.replay(ctx, c, msg.Channel, *msg.LastEventID)
		}
	}
}

// subscribe adds c to channel. The first subscriber of a channel waits for
// LISTEN so the replay that follows cannot miss an event published in
// between. added is false when c was already subscribed.
func (m *ConnectionManager) subscribe(c *wsClient, channel string) (added bool, err error) {
	if _, ok := c.subscribed[channel]; ok {
		return false, nil
	}

	m.channelsMu.Lock()
	subs, exists := m.channels[channel]
	if !exists {
		subs = make(map[string]struct{})
		m.channels[channel] = subs
	}
	subs[c.id] = struct{}{}
	m.channelsMu.Unlock()

	if l := m.currentListener(); !exists && l != nil {
		listenCtx, cancel := context.WithTimeout(context.Background(), listenTimeout)
		defer cancel()
		if err := l.Subscribe(listenCtx, channel); err != nil {
			slog.Error("Failed to LISTEN on channel", "channel", channel, "error", err)
			m.dropChannel(c, channel)
			return false, err
		}
	}

	c.subscribed[channel] = struct{}{}
	return true, nil
}

// dropChannel forgets channel after its LISTEN failed. Clients that joined
// while LISTEN was in flight were already confirmed; they get a
// subscription.error, which supersedes the confirmation.
func (m *ConnectionManager) dropChannel(failed *wsClient, channel string) {
	m.channelsMu.Lock()
	var others []string
	for id := range m.channels[channel] {
		if id != failed.id {
			others = append(others, id)
		}
	}
	delete(m.channels, channel)
	m.channelsMu.Unlock()

	for _, c := range m.lookup(others) {
		slog.Warn("Removing orphaned subscriber after LISTEN failure",
			"connection_id", c.id, "channel", channel)
		m.sendControl(c, ControlMessage{
			Type:    EventTypeSubscriptionError,
			Channel: channel,
			Message: "channel listen failed; subscription removed",
		})
	}
}

// unsubscribe removes c from channel. The last subscriber leaving triggers an
// asynchronous UNLISTEN, skipped if someone resubscribed in the meantime.
func (m *ConnectionManager) unsubscribe(c *wsClient, channel string) {
	delete(c.subscribed, channel)

	m.channelsMu.Lock()
	subs, exists := m.channels[channel]
	if !exists {
		m.channelsMu.Unlock()
		return
	}
	delete(subs, c.id)
	last := len(subs) == 0
	if last {
		delete(m.channels, channel)
	}
	m.channelsMu.Unlock()

	l := m.currentListener()
	if !last || l == nil {
		return
	}
	go func() {
		m.channelsMu.RLock()
		_, resubscribed := m.channels[channel]
		m.channelsMu.RUnlock()
		if resubscribed {
			return
		}
		if err := l.Unsubscribe(context.Background(), channel); err != nil {
			slog.Error("Failed to UNLISTEN channel", "channel", channel, "error", err)
		}
	}()
}

// replay sends stored events of channel newer than sinceID, then
// catchup.overflow if more than catchupLimit were waiting.
func (m *ConnectionManager) replay(ctx context.Context, c *wsClient, channel string, sinceID int) {
	if m.catchup == nil {
		return
	}

	events, err := m.catchup.GetCatchupEvents(ctx, channel, sinceID, m.catchupLimit+1)
	if err != nil {
		slog.Error("Catchup query failed", "channel", channel, "error", err)
		return
	}
	overflow := len(events) > m.catchupLimit
	if overflow {
		events = events[:m.catchupLimit]
	}

	for _, evt := range events {
		// Routing fields are added at NOTIFY time and are not stored.
		evt.Payload["db_event_id"] = evt.ID
		evt.Payload["channel"] = channel
		data, err := json.Marshal(evt.Payload)
		if err != nil {
			continue
		}
		if err := m.write(c, data); err != nil {
			slog.Warn("Failed to send catchup event",
				"connection_id", c.id, "channel", channel, "error", err)
			return
		}
	}

	if overflow {
		m.sendControl(c, ControlMessage{Type: EventTypeCatchupOverflow, Channel: channel, HasMore: true})
	}
}

func (m *ConnectionManager) disconnect(c *wsClient) {
	for ch := range c.subscribed {
		m.unsubscribe(c, ch)
	}

	m.clientsMu.Lock()
	delete(m.clients, c.id)
	m.clientsMu.Unlock()

	c.cancel()
	_ = c.conn.Close(websocket.StatusNormalClosure, "")
}

func (m *ConnectionManager) sendControl(c *wsClient, msg ControlMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	if err := m.write(c, data); err != nil {
		slog.Warn("Failed to send WebSocket message",
			"connection_id", c.id, "type", msg.Type, "error", err)
	}
}

func (m *ConnectionManager) write(c *wsClient, data []byte) error {
	ctx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	return c.conn.Write(ctx, websocket.MessageText, data)
}
