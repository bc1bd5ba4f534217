package stream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/codeready-toolchain/chatstream/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHub is a minimal hub speaking the client protocol.
type fakeHub struct {
	t      *testing.T
	server *httptest.Server

	mu    sync.Mutex
	conns []*websocket.Conn

	received chan events.ClientMessage
}

func newFakeHub(t *testing.T) *fakeHub {
	t.Helper()
	h := &fakeHub{t: t, received: make(chan events.ClientMessage, 64)}
	h.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		h.mu.Lock()
		h.conns = append(h.conns, conn)
		h.mu.Unlock()

		h.write(conn, map[string]any{"type": events.EventTypeConnectionEstablished, "connection_id": "c1"})
		for {
			_, data, err := conn.Read(r.Context())
			if err != nil {
				return
			}
			var msg events.ClientMessage
			if json.Unmarshal(data, &msg) == nil {
				if msg.Action == "subscribe" {
					h.write(conn, map[string]any{"type": events.EventTypeSubscriptionConfirmed, "channel": msg.Channel})
				}
				h.received <- msg
			}
		}
	}))
	t.Cleanup(h.server.Close)
	return h
}

func (h *fakeHub) url() string {
	return "ws" + strings.TrimPrefix(h.server.URL, "http")
}

func (h *fakeHub) write(conn *websocket.Conn, v any) {
	data, _ := json.Marshal(v)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = conn.Write(ctx, websocket.MessageText, data)
}

func (h *fakeHub) latest() *websocket.Conn {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.conns[len(h.conns)-1]
}

func (h *fakeHub) send(v any) { h.write(h.latest(), v) }

// dropConnection closes the current server-side connection.
func (h *fakeHub) dropConnection() {
	_ = h.latest().Close(websocket.StatusGoingAway, "restart")
}

func (h *fakeHub) expect(t *testing.T, action string) events.ClientMessage {
	t.Helper()
	for {
		select {
		case msg := <-h.received:
			if msg.Action == action {
				return msg
			}
		case <-time.After(3 * time.Second):
			t.Fatalf("timed out waiting for %q", action)
			return events.ClientMessage{}
		}
	}
}

type eventSink struct {
	mu     sync.Mutex
	events []RawEvent
}

func (s *eventSink) handle(raw RawEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, raw)
}

func (s *eventSink) messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for _, e := range s.events {
		out = append(out, stringField(e.Payload, "message"))
	}
	return out
}

func dialTestTransport(t *testing.T, hub *fakeHub) *WSTransport {
	t.Helper()
	tr, err := DialWS(context.Background(), hub.url())
	require.NoError(t, err)
	tr.initialBackoff = 10 * time.Millisecond
	tr.maxBackoff = 50 * time.Millisecond
	t.Cleanup(func() { _ = tr.Close() })
	return tr
}

func TestWSTransport_DialFailure(t *testing.T) {
	_, err := DialWS(context.Background(), "ws://127.0.0.1:1/ws")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransportUnavailable)
}

func TestWSTransport_SubscribeAndDeliver(t *testing.T) {
	hub := newFakeHub(t)
	tr := dialTestTransport(t, hub)
	sink := &eventSink{}

	sub, err := tr.Subscribe(context.Background(), "interaction.42.status", sink.handle)
	require.NoError(t, err)
	msg := hub.expect(t, "subscribe")
	assert.Equal(t, "interaction.42.status", msg.Channel)

	hub.send(map[string]any{"type": "status.update", "channel": "interaction.42.status", "message": "one", "db_event_id": 1})
	hub.send(map[string]any{"type": "status.update", "channel": "interaction.99.status", "message": "not mine", "db_event_id": 2})
	hub.send(map[string]any{"type": "status.update", "channel": "interaction.42.status", "message": "two", "db_event_id": 3})

	require.Eventually(t, func() bool { return len(sink.messages()) == 2 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"one", "two"}, sink.messages())

	require.NoError(t, sub.Close())
	msg = hub.expect(t, "unsubscribe")
	assert.Equal(t, "interaction.42.status", msg.Channel)
	assert.Empty(t, tr.Channels())
}

func TestWSTransport_DropsDuplicates(t *testing.T) {
	hub := newFakeHub(t)
	tr := dialTestTransport(t, hub)
	sink := &eventSink{}

	_, err := tr.Subscribe(context.Background(), "interaction.42.status", sink.handle)
	require.NoError(t, err)
	hub.expect(t, "subscribe")

	hub.send(map[string]any{"channel": "interaction.42.status", "message": "a", "db_event_id": 5})
	hub.send(map[string]any{"channel": "interaction.42.status", "message": "a again", "db_event_id": 5})
	hub.send(map[string]any{"channel": "interaction.42.status", "message": "transient"})
	hub.send(map[string]any{"channel": "interaction.42.status", "message": "b", "db_event_id": 6})

	require.Eventually(t, func() bool { return len(sink.messages()) == 3 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"a", "transient", "b"}, sink.messages())
}

func TestWSTransport_DeliversOutOfOrderIDs(t *testing.T) {
	hub := newFakeHub(t)
	tr := dialTestTransport(t, hub)
	sink := &eventSink{}

	_, err := tr.Subscribe(context.Background(), "interaction.42.status", sink.handle)
	require.NoError(t, err)
	hub.expect(t, "subscribe")

	// Concurrent publishers can commit a lower id after a higher one.
	hub.send(map[string]any{"channel": "interaction.42.status", "message": "eleven", "db_event_id": 11})
	hub.send(map[string]any{"channel": "interaction.42.status", "message": "ten", "db_event_id": 10})
	hub.send(map[string]any{"channel": "interaction.42.status", "message": "ten again", "db_event_id": 10})
	hub.send(map[string]any{"channel": "interaction.42.status", "message": "twelve", "db_event_id": 12})

	require.Eventually(t, func() bool { return len(sink.messages()) == 3 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"eleven", "ten", "twelve"}, sink.messages())
}

func TestWSTransport_ResubscribeAfterReleaseResumes(t *testing.T) {
	hub := newFakeHub(t)
	tr := dialTestTransport(t, hub)
	first := &eventSink{}

	sub, err := tr.Subscribe(context.Background(), "interaction.42.status", first.handle)
	require.NoError(t, err)
	msg := hub.expect(t, "subscribe")
	assert.Nil(t, msg.LastEventID)

	hub.send(map[string]any{"channel": "interaction.42.status", "message": "one", "db_event_id": 3})
	hub.send(map[string]any{"channel": "interaction.42.status", "message": "two", "db_event_id": 4})
	require.Eventually(t, func() bool { return len(first.messages()) == 2 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, sub.Close())
	hub.expect(t, "unsubscribe")

	second := &eventSink{}
	_, err = tr.Subscribe(context.Background(), "interaction.42.status", second.handle)
	require.NoError(t, err)
	msg = hub.expect(t, "subscribe")
	require.NotNil(t, msg.LastEventID)
	assert.Equal(t, 4, *msg.LastEventID)

	// A hub that replays everything anyway still yields only the new event.
	hub.send(map[string]any{"channel": "interaction.42.status", "message": "one", "db_event_id": 3})
	hub.send(map[string]any{"channel": "interaction.42.status", "message": "two", "db_event_id": 4})
	hub.send(map[string]any{"channel": "interaction.42.status", "message": "three", "db_event_id": 5})
	require.Eventually(t, func() bool { return len(second.messages()) == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"three"}, second.messages())
}

func TestEventWindow(t *testing.T) {
	w := newEventWindow()
	assert.True(t, w.add(11))
	assert.True(t, w.add(10))
	assert.False(t, w.add(11))
	assert.Equal(t, int64(11), w.max)

	for id := int64(100); id < 100+wsSeenWindow; id++ {
		require.True(t, w.add(id))
	}
	assert.Len(t, w.ids, wsSeenWindow)
	assert.True(t, w.add(11), "evicted ids are forgotten")
	assert.False(t, w.add(100+wsSeenWindow-1))
	assert.Equal(t, int64(100+wsSeenWindow-1), w.max)
}

func TestWSTransport_ForwardsCatchupOverflow(t *testing.T) {
	hub := newFakeHub(t)
	tr := dialTestTransport(t, hub)
	sink := &eventSink{}

	_, err := tr.Subscribe(context.Background(), "interaction.42.status", sink.handle)
	require.NoError(t, err)
	hub.expect(t, "subscribe")

	hub.send(map[string]any{"type": events.EventTypeCatchupOverflow, "channel": "interaction.42.status", "has_more": true})
	require.Eventually(t, func() bool {
		sink.mu.Lock()
		defer sink.mu.Unlock()
		return len(sink.events) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, events.EventTypeCatchupOverflow, sink.events[0].Payload["type"])
}

func TestWSTransport_ReconnectResubscribesWithCatchup(t *testing.T) {
	hub := newFakeHub(t)
	tr := dialTestTransport(t, hub)
	sink := &eventSink{}

	_, err := tr.Subscribe(context.Background(), "interaction.42.status", sink.handle)
	require.NoError(t, err)
	hub.expect(t, "subscribe")

	hub.send(map[string]any{"channel": "interaction.42.status", "message": "before", "db_event_id": 7})
	require.Eventually(t, func() bool { return len(sink.messages()) == 1 }, 2*time.Second, 10*time.Millisecond)

	hub.dropConnection()

	msg := hub.expect(t, "subscribe")
	assert.Equal(t, "interaction.42.status", msg.Channel)
	require.NotNil(t, msg.LastEventID)
	assert.Equal(t, 7, *msg.LastEventID)

	// Catchup replays the last event again; it must not be delivered twice.
	hub.send(map[string]any{"channel": "interaction.42.status", "message": "before", "db_event_id": 7})
	hub.send(map[string]any{"channel": "interaction.42.status", "message": "after", "db_event_id": 8})
	require.Eventually(t, func() bool { return len(sink.messages()) == 2 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"before", "after"}, sink.messages())
}

func TestWSTransport_SubscribeAfterClose(t *testing.T) {
	hub := newFakeHub(t)
	tr, err := DialWS(context.Background(), hub.url())
	require.NoError(t, err)
	require.NoError(t, tr.Close())

	_, err = tr.Subscribe(context.Background(), "interaction.1", func(RawEvent) {})
	assert.ErrorIs(t, err, ErrTransportUnavailable)
}
