package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjectRoutingAndTruncate(t *testing.T) {
	t.Run("injects channel and db_event_id", func(t *testing.T) {
		payload, _ := json.Marshal(StatusUpdatePayload{
			Type:          EventTypeStatusUpdate,
			InteractionID: "42",
			Source:        "searxng_search",
			Message:       "Searching for 'go channels'",
		})
		id := int64(17)

		result, err := injectRoutingAndTruncate(payload, InteractionStatusChannel("42"), &id)
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(result), &m))
		assert.Equal(t, "interaction.42.status", m["channel"])
		assert.Equal(t, float64(17), m["db_event_id"])
		assert.Equal(t, "Searching for 'go channels'", m["message"])
		assert.Equal(t, false, m["is_significant"])
	})

	t.Run("transient event has no db_event_id", func(t *testing.T) {
		payload, _ := json.Marshal(QueueStatusPayload{
			Type:          EventTypeQueueStatus,
			InteractionID: "42",
			JobData:       map[string]any{"position": 3},
		})

		result, err := injectRoutingAndTruncate(payload, InteractionQueueChannel("42"), nil)
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(result), &m))
		assert.Equal(t, "interaction.42.queue", m["channel"])
		_, hasID := m["db_event_id"]
		assert.False(t, hasID)
	})

	t.Run("truncates oversized payload keeping routing fields", func(t *testing.T) {
		payload, _ := json.Marshal(InteractionUpdatedPayload{
			Type:          EventTypeInteractionUpdated,
			InteractionID: "42",
			Fields:        map[string]any{"answer": strings.Repeat("a", 9000)},
		})
		id := int64(99)

		result, err := injectRoutingAndTruncate(payload, InteractionChannel("42"), &id)
		require.NoError(t, err)
		assert.Less(t, len(result), maxNotifyPayload)

		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(result), &m))
		assert.Equal(t, true, m["truncated"])
		assert.Equal(t, EventTypeInteractionUpdated, m["type"])
		assert.Equal(t, "interaction.42", m["channel"])
		assert.Equal(t, "42", m["interaction_id"])
		assert.Equal(t, float64(99), m["db_event_id"])
		_, hasFields := m["fields"]
		assert.False(t, hasFields)
	})

	t.Run("truncated source event keeps chat_interaction_id", func(t *testing.T) {
		payload, _ := json.Marshal(SourceCreatedPayload{
			Type:              EventTypeSourceCreated,
			ChatInteractionID: "42",
			SourceID:          "src-1",
			URL:               "https://example.com/" + strings.Repeat("p", 8000),
		})

		result, err := injectRoutingAndTruncate(payload, InteractionSourcesChannel("42"), nil)
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(result), &m))
		assert.Equal(t, true, m["truncated"])
		assert.Equal(t, "42", m["chat_interaction_id"])
	})

	t.Run("invalid JSON returns error", func(t *testing.T) {
		_, err := injectRoutingAndTruncate([]byte("not json"), "interaction.1", nil)
		assert.Error(t, err)
	})
}

func TestNewEventPublisher(t *testing.T) {
	p := NewEventPublisher(nil)
	assert.NotNil(t, p)
}

func TestStatusUpdatePayload_JSON(t *testing.T) {
	payload := StatusUpdatePayload{
		Type:          EventTypeStatusUpdate,
		InteractionID: "42",
		Source:        SourceAgentExecutionCompleted,
		Message:       "Research complete",
		IsSignificant: true,
		Metadata:      map[string]any{"step_key": "final"},
		Timestamp:     "2026-01-01T00:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "status.update", m["type"])
	assert.Equal(t, "42", m["interaction_id"])
	assert.Equal(t, "agent_execution_completed", m["source"])
	assert.Equal(t, true, m["is_significant"])
	_, hasCreate := m["create_event"]
	assert.False(t, hasCreate, "create_event is omitted when false")
}

// Every payload carries the scope id of the channel it is published on, so
// clients can route or filter without parsing the channel name.
func TestPayloads_CarryScopeID(t *testing.T) {
	tests := []struct {
		name    string
		payload any
		field   string
		want    string
	}{
		{"status", StatusUpdatePayload{Type: EventTypeStatusUpdate, InteractionID: "42"}, "interaction_id", "42"},
		{"updated", InteractionUpdatedPayload{Type: EventTypeInteractionUpdated, InteractionID: "42"}, "interaction_id", "42"},
		{"completed", InteractionCompletedPayload{Type: EventTypeInteractionCompleted, InteractionID: "42"}, "interaction_id", "42"},
		{"source", SourceCreatedPayload{Type: EventTypeSourceCreated, ChatInteractionID: "42"}, "chat_interaction_id", "42"},
		{"artifact", ArtifactCreatedPayload{Type: EventTypeArtifactCreated, SessionID: "7"}, "session_id", "7"},
		{"created", InteractionCreatedPayload{Type: EventTypeInteractionCreated, ChatSessionID: "7"}, "chat_session_id", "7"},
		{"queue", QueueStatusPayload{Type: EventTypeQueueStatus, InteractionID: "42"}, "interaction_id", "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.payload)
			require.NoError(t, err)
			var m map[string]any
			require.NoError(t, json.Unmarshal(data, &m))
			assert.Equal(t, tt.want, m[tt.field])
			assert.NotEmpty(t, m["type"])
		})
	}
}
