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
	"github.com/codeready-toolchain/chatstream/pkg/services"
	testdb "github.com/codeready-toolchain/chatstream/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hubReplica is one hub process: its own pool, manager and LISTEN connection.
type hubReplica struct {
	publisher *EventPublisher
	listener  *NotifyListener
	server    *httptest.Server
}

func startReplica(t *testing.T, shared *testdb.SharedTestDB) *hubReplica {
	t.Helper()

	client := shared.NewClient(t)
	manager := NewConnectionManager(
		NewEventServiceAdapter(services.NewEventService(client.Client)), 5*time.Second, 0)

	listener := NewNotifyListener(shared.BaseConnString(), manager)
	require.NoError(t, listener.Start(context.Background()))
	manager.SetListener(listener)
	t.Cleanup(func() { listener.Stop(context.Background()) })

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(server.Close)

	return &hubReplica{publisher: NewEventPublisher(client.DB()), listener: listener, server: server}
}

func TestIntegration_MultiReplicaFanOut(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	writer := startReplica(t, shared)
	reader := startReplica(t, shared)

	interactionID := uuid.New().String()
	channel := InteractionStatusChannel(interactionID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(reader.server.URL, "http"), nil)
	require.NoError(t, err)
	defer func() { _ = conn.Close(websocket.StatusNormalClosure, "") }()
	require.Equal(t, EventTypeConnectionEstablished, readJSONTimeout(t, conn, 5*time.Second)["type"])

	data, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: channel})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
	require.Equal(t, EventTypeSubscriptionConfirmed, readJSONTimeout(t, conn, 5*time.Second)["type"])
	require.Eventually(t, func() bool {
		return slices.Contains(reader.listener.Channels(), channel)
	}, 2*time.Second, 10*time.Millisecond)

	// The writer replica has no subscriber; delivery goes through NOTIFY only.
	assert.Empty(t, writer.listener.Channels())
	require.NoError(t, writer.publisher.PublishStatusUpdate(ctx, StatusUpdatePayload{
		Type:          EventTypeStatusUpdate,
		InteractionID: interactionID,
		Source:        "planner",
		Message:       "Planning on replica A",
		IsSignificant: true,
		Timestamp:     time.Now().Format(time.RFC3339Nano),
	}))

	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeStatusUpdate, msg["type"])
	assert.Equal(t, "Planning on replica A", msg["message"])
	assert.NotNil(t, msg["db_event_id"])
}
