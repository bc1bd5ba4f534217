package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCatchupQuerier implements CatchupQuerier for tests.
type mockCatchupQuerier struct {
	events []CatchupEvent
	err    error
}

func (m *mockCatchupQuerier) GetCatchupEvents(_ context.Context, _ string, sinceID int, limit int) ([]CatchupEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []CatchupEvent
	for _, e := range m.events {
		if e.ID <= sinceID {
			continue
		}
		// Copy the payload: the manager writes routing fields into it.
		p := make(map[string]any, len(e.Payload))
		for k, v := range e.Payload {
			p[k] = v
		}
		out = append(out, CatchupEvent{ID: e.ID, Payload: p})
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// fakeListener records LISTEN/UNLISTEN calls and can be told to fail.
type fakeListener struct {
	mu        sync.Mutex
	listening map[string]bool
	failWith  error
}

func newFakeListener() *fakeListener {
	return &fakeListener{listening: make(map[string]bool)}
}

func (f *fakeListener) Subscribe(_ context.Context, channel string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	f.listening[channel] = true
	return nil
}

func (f *fakeListener) Unsubscribe(_ context.Context, channel string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.listening, channel)
	return nil
}

func (f *fakeListener) isListening(channel string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listening[channel]
}

func newTestServer(t *testing.T, manager *ConnectionManager) *httptest.Server {
	t.Helper()
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
	return server
}

func setupTestManager(t *testing.T) (*ConnectionManager, *httptest.Server) {
	t.Helper()
	manager := NewConnectionManager(&mockCatchupQuerier{}, 5*time.Second, 0)
	return manager, newTestServer(t, manager)
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]any
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func sendMsg(t *testing.T, conn *websocket.Conn, msg ClientMessage) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

// expectSilence asserts nothing arrives within a short window.
func expectSilence(t *testing.T, conn *websocket.Conn, msgAndArgs ...any) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_, _, err := conn.Read(ctx)
	assert.Error(t, err, msgAndArgs...)
}

func subscribe(t *testing.T, conn *websocket.Conn, channel string) {
	t.Helper()
	sendMsg(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	msg := readJSON(t, conn)
	require.Equal(t, EventTypeSubscriptionConfirmed, msg["type"])
	require.Equal(t, channel, msg["channel"])
}

func TestConnectionManager_ConnectionEstablished(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)

	msg := readJSON(t, conn)
	assert.Equal(t, EventTypeConnectionEstablished, msg["type"])
	assert.NotEmpty(t, msg["connection_id"])
}

func TestConnectionManager_Subscribe(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn)

	channel := InteractionStatusChannel("42")
	subscribe(t, conn, channel)

	assert.Equal(t, 1, manager.ActiveConnections())
	assert.Equal(t, 1, manager.subscriberCount(channel))
}

func TestConnectionManager_SubscribeIsIdempotent(t *testing.T) {
	querier := &mockCatchupQuerier{events: []CatchupEvent{
		{ID: 1, Payload: map[string]any{"type": EventTypeStatusUpdate, "message": "first"}},
	}}
	manager := NewConnectionManager(querier, 5*time.Second, 0)
	server := newTestServer(t, manager)
	conn := connectWS(t, server)
	readJSON(t, conn)

	channel := InteractionStatusChannel("42")
	subscribe(t, conn, channel)
	assert.Equal(t, "first", readJSON(t, conn)["message"])

	subscribe(t, conn, channel)
	expectSilence(t, conn, "a repeated subscribe must not replay history")
	assert.Equal(t, 1, manager.subscriberCount(channel))
}

func TestConnectionManager_UnknownChannelRejected(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn)

	sendMsg(t, conn, ClientMessage{Action: "subscribe", Channel: "sessions"})
	msg := readJSON(t, conn)
	assert.Equal(t, EventTypeError, msg["type"])
	assert.Equal(t, "unknown channel", msg["message"])
}

func TestConnectionManager_UnknownAction(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn)

	sendMsg(t, conn, ClientMessage{Action: "shout", Channel: InteractionChannel("42")})
	msg := readJSON(t, conn)
	assert.Equal(t, EventTypeError, msg["type"])
	assert.Contains(t, msg["message"], "shout")
}

func TestConnectionManager_Broadcast(t *testing.T) {
	manager, server := setupTestManager(t)

	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readJSON(t, conn1)
	readJSON(t, conn2)

	channel := InteractionChannel("42")
	subscribe(t, conn1, channel)
	subscribe(t, conn2, channel)

	payload, _ := json.Marshal(map[string]string{"type": EventTypeInteractionUpdated, "interaction_id": "42"})
	manager.Broadcast(channel, payload)

	msg1 := readJSON(t, conn1)
	msg2 := readJSON(t, conn2)
	assert.Equal(t, EventTypeInteractionUpdated, msg1["type"])
	assert.Equal(t, EventTypeInteractionUpdated, msg2["type"])
}

func TestConnectionManager_PingPong(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn)

	sendMsg(t, conn, ClientMessage{Action: "ping"})
	msg := readJSON(t, conn)
	assert.Equal(t, EventTypePong, msg["type"])
}

func TestConnectionManager_AutoCatchupInjectsRouting(t *testing.T) {
	events := []CatchupEvent{
		{ID: 10, Payload: map[string]any{"type": EventTypeStatusUpdate, "message": "Searching"}},
		{ID: 11, Payload: map[string]any{"type": EventTypeStatusUpdate, "message": "Reading"}},
	}
	manager := NewConnectionManager(&mockCatchupQuerier{events: events}, 5*time.Second, 0)
	server := newTestServer(t, manager)
	conn := connectWS(t, server)
	readJSON(t, conn)

	channel := InteractionStatusChannel("42")
	subscribe(t, conn, channel)

	first := readJSON(t, conn)
	assert.Equal(t, "Searching", first["message"])
	assert.Equal(t, float64(10), first["db_event_id"])
	assert.Equal(t, channel, first["channel"])

	second := readJSON(t, conn)
	assert.Equal(t, "Reading", second["message"])
	assert.Equal(t, float64(11), second["db_event_id"])

	expectSilence(t, conn, "no overflow for a small catchup")
}

func TestConnectionManager_SubscribeWithLastEventID(t *testing.T) {
	events := []CatchupEvent{
		{ID: 1, Payload: map[string]any{"seq": float64(1)}},
		{ID: 2, Payload: map[string]any{"seq": float64(2)}},
		{ID: 3, Payload: map[string]any{"seq": float64(3)}},
	}
	manager := NewConnectionManager(&mockCatchupQuerier{events: events}, 5*time.Second, 0)
	server := newTestServer(t, manager)
	conn := connectWS(t, server)
	readJSON(t, conn)

	last := 2
	sendMsg(t, conn, ClientMessage{Action: "subscribe", Channel: InteractionChannel("42"), LastEventID: &last})
	require.Equal(t, EventTypeSubscriptionConfirmed, readJSON(t, conn)["type"])

	msg := readJSON(t, conn)
	assert.Equal(t, float64(3), msg["seq"])
	expectSilence(t, conn)
}

func TestConnectionManager_CatchupOverflow(t *testing.T) {
	const limit = 5
	manyEvents := make([]CatchupEvent, limit+3)
	for i := range manyEvents {
		manyEvents[i] = CatchupEvent{
			ID:      i + 1,
			Payload: map[string]any{"type": EventTypeStatusUpdate, "seq": i},
		}
	}

	manager := NewConnectionManager(&mockCatchupQuerier{events: manyEvents}, 5*time.Second, limit)
	server := newTestServer(t, manager)
	conn := connectWS(t, server)
	readJSON(t, conn)

	channel := InteractionStatusChannel("42")
	subscribe(t, conn, channel)

	for i := 0; i < limit; i++ {
		msg := readJSON(t, conn)
		require.Equal(t, EventTypeStatusUpdate, msg["type"])
	}
	msg := readJSON(t, conn)
	assert.Equal(t, EventTypeCatchupOverflow, msg["type"])
	assert.Equal(t, channel, msg["channel"])
	assert.Equal(t, true, msg["has_more"])
}

func TestConnectionManager_DefaultCatchupLimit(t *testing.T) {
	manager := NewConnectionManager(nil, time.Second, 0)
	assert.Equal(t, DefaultCatchupLimit, manager.catchupLimit)
}

func TestConnectionManager_CatchupError(t *testing.T) {
	manager := NewConnectionManager(&mockCatchupQuerier{err: fmt.Errorf("database unreachable")}, 5*time.Second, 0)
	server := newTestServer(t, manager)
	conn := connectWS(t, server)
	readJSON(t, conn)

	subscribe(t, conn, InteractionChannel("42"))

	// The connection stays usable after a failed catchup query.
	sendMsg(t, conn, ClientMessage{Action: "ping"})
	msg := readJSON(t, conn)
	assert.Equal(t, EventTypePong, msg["type"])
}

func TestConnectionManager_ConcurrentBroadcast(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn)

	channel := InteractionStatusChannel("42")
	subscribe(t, conn, channel)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			payload, _ := json.Marshal(map[string]any{"type": EventTypeStatusUpdate, "idx": idx})
			manager.Broadcast(channel, payload)
		}(i)
	}
	wg.Wait()

	received := 0
	var firstErr error
	for i := 0; i < 20; i++ {
		readCtx, readCancel := context.WithTimeout(context.Background(), 5*time.Second)
		_, _, err := conn.Read(readCtx)
		readCancel()
		if err != nil {
			firstErr = err
			break
		}
		received++
	}
	assert.Equal(t, 20, received, "should receive all 20 broadcast messages; first error: %v", firstErr)
}

func TestConnectionManager_BroadcastToNonExistentChannel(t *testing.T) {
	manager, _ := setupTestManager(t)

	payload, _ := json.Marshal(map[string]string{"type": "test"})
	assert.NotPanics(t, func() {
		manager.Broadcast(InteractionChannel("nobody"), payload)
	})
}

func TestConnectionManager_BroadcastIsolation(t *testing.T) {
	manager, server := setupTestManager(t)

	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readJSON(t, conn1)
	readJSON(t, conn2)

	subscribe(t, conn1, InteractionStatusChannel("42"))
	subscribe(t, conn2, InteractionSourcesChannel("42"))

	payload, _ := json.Marshal(map[string]string{"type": EventTypeStatusUpdate, "target": "status"})
	manager.Broadcast(InteractionStatusChannel("42"), payload)

	msg := readJSON(t, conn1)
	assert.Equal(t, "status", msg["target"])
	expectSilence(t, conn2, "sources subscriber should not receive status broadcast")
}

func TestConnectionManager_Unsubscribe(t *testing.T) {
	manager, server := setupTestManager(t)
	listener := newFakeListener()
	manager.SetListener(listener)

	conn := connectWS(t, server)
	readJSON(t, conn)

	channel := InteractionQueueChannel("42")
	subscribe(t, conn, channel)
	assert.True(t, listener.isListening(channel))

	sendMsg(t, conn, ClientMessage{Action: "unsubscribe", Channel: channel})

	require.Eventually(t, func() bool {
		return manager.subscriberCount(channel) == 0 && !listener.isListening(channel)
	}, 2*time.Second, 20*time.Millisecond)

	payload, _ := json.Marshal(map[string]string{"type": "should-not-receive"})
	manager.Broadcast(channel, payload)
	expectSilence(t, conn, "should not receive message after unsubscribe")
}

func TestConnectionManager_ListenFailure(t *testing.T) {
	manager, server := setupTestManager(t)
	listener := newFakeListener()
	listener.failWith = fmt.Errorf("connection reset")
	manager.SetListener(listener)

	conn := connectWS(t, server)
	readJSON(t, conn)

	channel := InteractionStatusChannel("42")
	sendMsg(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	msg := readJSON(t, conn)
	assert.Equal(t, EventTypeSubscriptionError, msg["type"])
	assert.Equal(t, channel, msg["channel"])
	assert.Equal(t, 0, manager.subscriberCount(channel))
}

func TestConnectionManager_EmptyChannelValidation(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn)

	lastEventID := 0
	for _, msg := range []ClientMessage{
		{Action: "subscribe"},
		{Action: "unsubscribe"},
		{Action: "catchup", LastEventID: &lastEventID},
	} {
		sendMsg(t, conn, msg)
		reply := readJSON(t, conn)
		assert.Equal(t, EventTypeError, reply["type"])
		assert.Contains(t, reply["message"], "channel is required")
	}

	sendMsg(t, conn, ClientMessage{Action: "ping"})
	assert.Equal(t, EventTypePong, readJSON(t, conn)["type"])
}

func TestConnectionManager_SubscribeWithoutListener(t *testing.T) {
	manager, server := setupTestManager(t)
	assert.Nil(t, manager.currentListener())

	conn := connectWS(t, server)
	readJSON(t, conn)
	subscribe(t, conn, SessionArtifactsChannel("7"))

	listener := newFakeListener()
	manager.SetListener(listener)
	assert.Equal(t, ChannelListener(listener), manager.currentListener())

	// Already-known channels are not re-LISTENed when the backend arrives late.
	subscribe(t, connectAndGreet(t, server), SessionArtifactsChannel("7"))
	assert.False(t, listener.isListening(SessionArtifactsChannel("7")))
	subscribe(t, conn, SessionChannel("7"))
	assert.True(t, listener.isListening(SessionChannel("7")))
}

func connectAndGreet(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	conn := connectWS(t, server)
	require.Equal(t, EventTypeConnectionEstablished, readJSON(t, conn)["type"])
	return conn
}

func TestConnectionManager_CleanupOnDisconnect(t *testing.T) {
	manager, server := setupTestManager(t)

	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	readJSON(t, conn)

	channel := SessionChannel("7")
	subscribe(t, conn, channel)
	assert.Equal(t, 1, manager.ActiveConnections())

	conn.Close(websocket.StatusNormalClosure, "")

	require.Eventually(t, func() bool {
		return manager.ActiveConnections() == 0
	}, 2*time.Second, 20*time.Millisecond)
	assert.Equal(t, 0, manager.subscriberCount(channel))

	payload, _ := json.Marshal(map[string]string{"type": "test"})
	assert.NotPanics(t, func() {
		manager.Broadcast(channel, payload)
	})
}
