package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/codeready-toolchain/chatstream/pkg/events"
)

const (
	wsWriteTimeout   = 5 * time.Second
	wsPingInterval   = 30 * time.Second
	wsReadLimit      = 1 << 20
	wsInitialBackoff = time.Second
	wsMaxBackoff     = 30 * time.Second
	wsDialTimeout    = 10 * time.Second

	// Delivered db_event_ids remembered per channel for duplicate detection.
	wsSeenWindow = 1024

	wsActionSubscribe   = "subscribe"
	wsActionUnsubscribe = "unsubscribe"
	wsActionPing        = "ping"
)

// WSTransport subscribes to hub channels over one WebSocket connection.
// It drops messages whose db_event_id was already delivered on the channel,
// and after a dropped connection it reconnects and re-subscribes every
// channel with catchup from the highest id seen. Releasing a channel keeps
// that history, so subscribing to it again resumes instead of replaying.
type WSTransport struct {
	url string
	log *slog.Logger

	mu       sync.Mutex
	conn     *websocket.Conn
	channels map[string]*wsChannel
	released map[string]*eventWindow
	nextID   int

	initialBackoff time.Duration
	maxBackoff     time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

type wsChannel struct {
	handlers map[int]Handler
	seen     *eventWindow
}

// eventWindow is a bounded set of delivered db_event_ids. max is the
// highest id ever added and is what a resubscribe resumes from.
type eventWindow struct {
	ids   map[int64]struct{}
	order []int64
	max   int64
}

func newEventWindow() *eventWindow {
	return &eventWindow{ids: make(map[int64]struct{})}
}

// add records id and reports whether it was new.
func (w *eventWindow) add(id int64) bool {
	if _, dup := w.ids[id]; dup {
		return false
	}
	if len(w.order) >= wsSeenWindow {
		delete(w.ids, w.order[0])
		w.order = w.order[1:]
	}
	w.ids[id] = struct{}{}
	w.order = append(w.order, id)
	w.max = max(w.max, id)
	return true
}

func subscribeMessage(channel string, lastID int64) events.ClientMessage {
	msg := events.ClientMessage{Action: wsActionSubscribe, Channel: channel}
	if lastID > 0 {
		id := int(lastID)
		msg.LastEventID = &id
	}
	return msg
}

// DialWS connects to the hub WebSocket endpoint (e.g. ws://host:8080/ws).
// Failure to connect returns an error wrapping ErrTransportUnavailable.
func DialWS(ctx context.Context, url string) (*WSTransport, error) {
	t := &WSTransport{
		url:            url,
		log:            slog.Default().With("component", "ws_transport"),
		channels:       make(map[string]*wsChannel),
		released:       make(map[string]*eventWindow),
		initialBackoff: wsInitialBackoff,
		maxBackoff:     wsMaxBackoff,
		done:           make(chan struct{}),
	}

	conn, err := t.dial(ctx)
	if err != nil {
		return nil, err
	}
	t.conn = conn

	loopCtx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	go t.run(loopCtx, conn)
	return t, nil
}

func (t *WSTransport) dial(ctx context.Context) (*websocket.Conn, error) {
	dialCtx, cancel := context.WithTimeout(ctx, wsDialTimeout)
	defer cancel()

	conn, _, err := websocket.Dial(dialCtx, t.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransportUnavailable, err)
	}
	conn.SetReadLimit(wsReadLimit)
	return conn, nil
}

// Subscribe adds handler to channel, subscribing on the hub when it is the
// channel's first handler.
func (t *WSTransport) Subscribe(ctx context.Context, channel string, handler Handler) (Subscription, error) {
	t.mu.Lock()
	select {
	case <-t.done:
		t.mu.Unlock()
		return nil, ErrTransportUnavailable
	default:
	}
	ch, exists := t.channels[channel]
	if !exists {
		seen, ok := t.released[channel]
		if ok {
			delete(t.released, channel)
		} else {
			seen = newEventWindow()
		}
		ch = &wsChannel{handlers: make(map[int]Handler), seen: seen}
		t.channels[channel] = ch
	}
	t.nextID++
	id := t.nextID
	ch.handlers[id] = handler
	conn := t.conn
	resumeFrom := ch.seen.max
	t.mu.Unlock()

	if !exists && conn != nil {
		// A failed write surfaces as a read error; the reconnect then
		// re-subscribes every channel in t.channels, this one included.
		if err := t.send(ctx, conn, subscribeMessage(channel, resumeFrom)); err != nil {
			t.log.Warn("Subscribe write failed, will retry on reconnect", "channel", channel, "error", err)
		}
	}
	return &wsSubscription{t: t, channel: channel, id: id}, nil
}

// Close stops the transport and closes the connection.
func (t *WSTransport) Close() error {
	t.cancel()
	t.mu.Lock()
	conn := t.conn
	t.mu.Unlock()
	if conn != nil {
		_ = conn.Close(websocket.StatusNormalClosure, "")
	}
	<-t.done
	return nil
}

// Channels returns the subscribed channels, sorted.
func (t *WSTransport) Channels() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, 0, len(t.channels))
	for ch := range t.channels {
		out = append(out, ch)
	}
	sort.Strings(out)
	return out
}

func (t *WSTransport) release(channel string, id int) {
	t.mu.Lock()
	ch, ok := t.channels[channel]
	if !ok {
		t.mu.Unlock()
		return
	}
	delete(ch.handlers, id)
	last := len(ch.handlers) == 0
	if last {
		delete(t.channels, channel)
		t.released[channel] = ch.seen
	}
	conn := t.conn
	t.mu.Unlock()

	if last && conn != nil {
		ctx, cancel := context.WithTimeout(context.Background(), wsWriteTimeout)
		defer cancel()
		if err := t.send(ctx, conn, events.ClientMessage{Action: wsActionUnsubscribe, Channel: channel}); err != nil {
			t.log.Debug("Unsubscribe write failed", "channel", channel, "error", err)
		}
	}
}

// run reads from conn until it fails, then reconnects with exponential
// backoff. It returns only when ctx is cancelled.
func (t *WSTransport) run(ctx context.Context, conn *websocket.Conn) {
	defer close(t.done)

	for {
		t.readLoop(ctx, conn)
		if ctx.Err() != nil {
			return
		}

		t.mu.Lock()
		t.conn = nil
		t.mu.Unlock()

		conn = t.reconnect(ctx)
		if conn == nil {
			return
		}
	}
}

func (t *WSTransport) readLoop(ctx context.Context, conn *websocket.Conn) {
	pingCtx, stopPing := context.WithCancel(ctx)
	defer stopPing()
	go t.keepalive(pingCtx, conn)

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			if ctx.Err() == nil {
				t.log.Warn("WebSocket read failed", "error", err)
			}
			return
		}
		t.dispatch(data)
	}
}

func (t *WSTransport) keepalive(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := t.send(ctx, conn, events.ClientMessage{Action: wsActionPing}); err != nil {
				t.log.Debug("Ping failed", "error", err)
				return
			}
		}
	}
}

func (t *WSTransport) reconnect(ctx context.Context) *websocket.Conn {
	backoff := t.initialBackoff
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(backoff):
		}

		conn, err := t.dial(ctx)
		if err != nil {
			t.log.Warn("Reconnect failed", "error", err, "next_backoff", min(backoff*2, t.maxBackoff))
			backoff = min(backoff*2, t.maxBackoff)
			continue
		}

		t.mu.Lock()
		t.conn = conn
		resume := make(map[string]int64, len(t.channels))
		for name, ch := range t.channels {
			resume[name] = ch.seen.max
		}
		t.mu.Unlock()

		for name, lastID := range resume {
			if err := t.send(ctx, conn, subscribeMessage(name, lastID)); err != nil {
				t.log.Warn("Resubscribe failed", "channel", name, "error", err)
			}
		}
		t.log.Info("WebSocket reconnected", "channels", len(resume))
		return conn
	}
}

func (t *WSTransport) send(ctx context.Context, conn *websocket.Conn, msg events.ClientMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	writeCtx, cancel := context.WithTimeout(ctx, wsWriteTimeout)
	defer cancel()
	return conn.Write(writeCtx, websocket.MessageText, data)
}

// dispatch routes one server message to the handlers of its channel.
func (t *WSTransport) dispatch(data []byte) {
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		t.log.Warn("Dropping malformed message", "error", err)
		return
	}

	msgType, _ := payload["type"].(string)
	switch msgType {
	case events.EventTypeConnectionEstablished, events.EventTypeSubscriptionConfirmed, events.EventTypePong:
		return
	case events.EventTypeSubscriptionError, events.EventTypeError:
		t.log.Warn("Hub reported an error", "channel", payload["channel"], "message", payload["message"])
		return
	}

	channel, _ := payload["channel"].(string)
	if channel == "" {
		t.log.Debug("Dropping message without channel", "type", msgType)
		return
	}
	dbEventID := intField(payload, "db_event_id")

	t.mu.Lock()
	ch, ok := t.channels[channel]
	if !ok {
		t.mu.Unlock()
		return
	}
	if dbEventID > 0 && !ch.seen.add(dbEventID) {
		t.mu.Unlock()
		t.log.Debug("Dropping duplicate event", "channel", channel, "db_event_id", dbEventID)
		return
	}
	handlers := maps.Clone(ch.handlers)
	t.mu.Unlock()

	ids := make([]int, 0, len(handlers))
	for id := range handlers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		handlers[id](RawEvent{Channel: channel, Payload: payload})
	}
}

type wsSubscription struct {
	t       *WSTransport
	channel string
	id      int
	once    sync.Once
}

func (s *wsSubscription) Close() error {
	s.once.Do(func() { s.t.release(s.channel, s.id) })
	return nil
}

// IsUnavailable reports whether err means the hub could not be reached.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrTransportUnavailable)
}
