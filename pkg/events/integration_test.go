package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/codeready-toolchain/chatstream/pkg/database"
	"github.com/codeready-toolchain/chatstream/pkg/services"
	testdb "github.com/codeready-toolchain/chatstream/test/database"
	"github.com/codeready-toolchain/chatstream/test/util"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// streamingTestEnv holds all wired-up components for an integration test.
type streamingTestEnv struct {
	dbClient      *database.Client
	publisher     *EventPublisher
	eventService  *services.EventService
	manager       *ConnectionManager
	listener      *NotifyListener
	server        *httptest.Server
	interactionID string
}

// setupStreamingTest wires all real components together against a real
// PostgreSQL database (testcontainers locally, service container in CI).
func setupStreamingTest(t *testing.T) *streamingTestEnv {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	publisher := NewEventPublisher(dbClient.DB())
	eventService := services.NewEventService(dbClient.Client)
	manager := NewConnectionManager(NewEventServiceAdapter(eventService), 5*time.Second, 0)

	// NOTIFY/LISTEN is database-level, so the listener uses the base
	// connection string without a search_path.
	listener := NewNotifyListener(util.GetBaseConnectionString(t), manager)
	require.NoError(t, listener.Start(ctx))
	manager.SetListener(listener)
	t.Cleanup(func() { listener.Stop(context.Background()) })

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(server.Close)

	return &streamingTestEnv{
		dbClient:      dbClient,
		publisher:     publisher,
		eventService:  eventService,
		manager:       manager,
		listener:      listener,
		server:        server,
		interactionID: uuid.New().String(),
	}
}

func (env *streamingTestEnv) connectWS(t *testing.T) *websocket.Conn {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(env.server.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })

	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, EventTypeConnectionEstablished, msg["type"])
	return conn
}

func readJSONTimeout(t *testing.T, conn *websocket.Conn, timeout time.Duration) map[string]any {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]any
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

// subscribeAndWait subscribes conn to channel, reads the confirmation and
// waits until the LISTEN reached the database connection.
func (env *streamingTestEnv) subscribeAndWait(t *testing.T, conn *websocket.Conn, channel string) {
	t.Helper()
	data, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: channel})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))

	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, EventTypeSubscriptionConfirmed, msg["type"])

	require.Eventually(t, func() bool {
		return slices.Contains(env.listener.Channels(), channel)
	}, 2*time.Second, 10*time.Millisecond, "LISTEN did not propagate for channel %s", channel)
}

func (env *streamingTestEnv) statusUpdate(message string, significant bool) StatusUpdatePayload {
	return StatusUpdatePayload{
		Type:          EventTypeStatusUpdate,
		InteractionID: env.interactionID,
		Source:        "searxng_search",
		Message:       message,
		IsSignificant: significant,
		Timestamp:     time.Now().Format(time.RFC3339Nano),
	}
}

func TestIntegration_PublisherPersistsAndNotifies(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()
	channel := InteractionStatusChannel(env.interactionID)

	require.NoError(t, env.publisher.PublishStatusUpdate(ctx, env.statusUpdate("Searching", true)))
	require.NoError(t, env.publisher.PublishStatusUpdate(ctx, env.statusUpdate("Reading go.dev", false)))

	events, err := env.eventService.GetEventsSince(ctx, channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, env.interactionID, events[0].ScopeID)
	assert.Equal(t, channel, events[0].Channel)
	assert.Equal(t, "Searching", events[0].Payload["message"])
	assert.Equal(t, "Reading go.dev", events[1].Payload["message"])
	assert.Greater(t, events[1].ID, events[0].ID)
}

func TestIntegration_QueueStatusNotPersisted(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()
	channel := InteractionQueueChannel(env.interactionID)

	conn := env.connectWS(t)
	env.subscribeAndWait(t, conn, channel)

	err := env.publisher.PublishQueueStatus(ctx, QueueStatusPayload{
		Type:          EventTypeQueueStatus,
		InteractionID: env.interactionID,
		JobData:       map[string]any{"position": 2},
		Timestamp:     time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeQueueStatus, msg["type"])
	assert.Equal(t, channel, msg["channel"])
	assert.Nil(t, msg["db_event_id"])

	events, err := env.eventService.GetEventsSince(ctx, channel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, events, "queue status should not be persisted")
}

func TestIntegration_EndToEnd_PublishToWebSocket(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn := env.connectWS(t)
	env.subscribeAndWait(t, conn, InteractionStatusChannel(env.interactionID))
	env.subscribeAndWait(t, conn, InteractionChannel(env.interactionID))

	require.NoError(t, env.publisher.PublishStatusUpdate(ctx, env.statusUpdate("Searching", true)))
	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeStatusUpdate, msg["type"])
	assert.Equal(t, InteractionStatusChannel(env.interactionID), msg["channel"])
	assert.NotNil(t, msg["db_event_id"])

	require.NoError(t, env.publisher.PublishInteractionCompleted(ctx, InteractionCompletedPayload{
		Type:          EventTypeInteractionCompleted,
		InteractionID: env.interactionID,
		Timestamp:     time.Now().Format(time.RFC3339Nano),
	}))
	msg = readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeInteractionCompleted, msg["type"])
	assert.Equal(t, InteractionChannel(env.interactionID), msg["channel"])
}

func TestIntegration_CatchupFromRealDB(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()
	channel := InteractionStatusChannel(env.interactionID)

	for _, m := range []string{"one", "two", "three"} {
		require.NoError(t, env.publisher.PublishStatusUpdate(ctx, env.statusUpdate(m, false)))
	}

	all, err := env.eventService.GetEventsSince(ctx, channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, all, 3)

	// Reconnecting client that already saw the first event.
	conn := env.connectWS(t)
	last := all[0].ID
	data, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: channel, LastEventID: &last})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))

	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, EventTypeSubscriptionConfirmed, msg["type"])

	msg = readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, "two", msg["message"])
	assert.Equal(t, float64(all[1].ID), msg["db_event_id"])
	msg = readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, "three", msg["message"])
	assert.Equal(t, channel, msg["channel"])
}

func TestIntegration_TruncatedPayloadStillDelivered(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()
	channel := InteractionStatusChannel(env.interactionID)

	conn := env.connectWS(t)
	env.subscribeAndWait(t, conn, channel)

	require.NoError(t, env.publisher.PublishStatusUpdate(ctx, env.statusUpdate(strings.Repeat("x", 10000), false)))

	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, true, msg["truncated"])
	assert.Equal(t, env.interactionID, msg["interaction_id"])
	assert.NotNil(t, msg["db_event_id"])

	// The full payload is still available from the database.
	events, err := env.eventService.GetEventsSince(ctx, channel, 0, 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Len(t, events[0].Payload["message"], 10000)
}
