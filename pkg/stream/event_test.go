package stream

import (
	"testing"
	"time"

	"github.com/codeready-toolchain/chatstream/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestParseChannel(t *testing.T) {
	tests := []struct {
		channel   string
		wantKind  ChannelKind
		wantScope string
	}{
		{"interaction.42.status", ChannelStatus, "42"},
		{"interaction.42", ChannelInteraction, "42"},
		{"interaction.42.sources", ChannelSources, "42"},
		{"interaction.42.queue", ChannelQueue, "42"},
		{"session.s1.artifacts", ChannelArtifacts, "s1"},
		{"session.s1", ChannelSession, "s1"},
		{"session.s1.status", ChannelUnknown, ""},
		{"interaction.42.artifacts", ChannelUnknown, ""},
		{"global", ChannelUnknown, ""},
		{"", ChannelUnknown, ""},
	}
	for _, tt := range tests {
		t.Run(tt.channel, func(t *testing.T) {
			kind, scope := ParseChannel(tt.channel)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantScope, scope)
			if kind != ChannelUnknown {
				assert.Equal(t, tt.channel, ChannelName(kind, scope))
			}
		})
	}
}

func TestClassify_StatusUpdate(t *testing.T) {
	e := Classify(RawEvent{
		Channel: "interaction.42.status",
		Payload: map[string]any{
			"type":           events.EventTypeStatusUpdate,
			"source":         "searxng_search",
			"message":        "Searching for 'go channels'",
			"is_significant": true,
			"timestamp":      "2026-03-01T11:59:58.5Z",
			"metadata":       map[string]any{"step_key": "search"},
			"db_event_id":    float64(17),
		},
	}, testNow)

	assert.Equal(t, KindStatus, e.Kind)
	assert.Equal(t, ChannelStatus, e.ChannelKind)
	assert.Equal(t, "42", e.InteractionID)
	assert.Equal(t, "searxng_search", e.Source)
	assert.True(t, e.Significant)
	assert.Equal(t, time.Date(2026, 3, 1, 11, 59, 58, 500000000, time.UTC), e.Timestamp.UTC())
	assert.Equal(t, "search", e.Metadata["step_key"])
	assert.Equal(t, int64(17), e.DBEventID)
}

func TestClassify_Defaults(t *testing.T) {
	e := Classify(RawEvent{Channel: "interaction.42.status", Payload: map[string]any{}}, testNow)

	assert.Equal(t, KindStatus, e.Kind, "kind falls back to the channel")
	assert.False(t, e.Significant)
	assert.Equal(t, testNow, e.Timestamp)
	assert.NotNil(t, e.Metadata)
	assert.Empty(t, e.Metadata)
	assert.Empty(t, e.Message)
}

func TestClassify_NilPayload(t *testing.T) {
	e := Classify(RawEvent{}, testNow)
	assert.Equal(t, KindUnknown, e.Kind)
	assert.NotNil(t, e.Payload)
}

func TestClassify_UnparsableTimestamp(t *testing.T) {
	e := Classify(RawEvent{
		Channel: "interaction.42.status",
		Payload: map[string]any{"type": "status.update", "timestamp": "yesterday"},
	}, testNow)
	assert.Equal(t, testNow, e.Timestamp)
	assert.Equal(t, "yesterday", e.Metadata["raw_timestamp"])
}

func TestClassify_Significance(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"bool true", true, true},
		{"bool false", false, false},
		{"string true", "true", true},
		{"string 1", "1", true},
		{"number 1", float64(1), true},
		{"number 0", float64(0), false},
		{"garbage", "yes please", false},
		{"missing", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := map[string]any{"type": "status.update", "message": "Found 3 key insights"}
			if tt.value != nil {
				payload["is_significant"] = tt.value
			}
			e := Classify(RawEvent{Channel: "interaction.1.status", Payload: payload}, testNow)
			assert.Equal(t, tt.want, e.Significant)
		})
	}
}

func TestClassify_MessageTextDoesNotImplySignificance(t *testing.T) {
	e := Classify(RawEvent{
		Channel: "interaction.1.status",
		Payload: map[string]any{"type": "status.update", "message": "Research complete! Final answer ready"},
	}, testNow)
	assert.False(t, e.Significant)
}

func TestClassify_InteractionCompleted(t *testing.T) {
	e := Classify(RawEvent{
		Channel: "interaction.42",
		Payload: map[string]any{
			"type":           events.EventTypeInteractionCompleted,
			"interaction_id": "42",
			"execution_id":   "exec-1",
		},
	}, testNow)
	assert.Equal(t, KindInteractionCompleted, e.Kind)
	assert.Equal(t, events.SourceInteractionCompleted, e.Source)
	assert.True(t, e.Significant)
	assert.Equal(t, "exec-1", e.Metadata["execution_id"])
}

func TestClassify_ScopeFields(t *testing.T) {
	src := Classify(RawEvent{
		Channel: "interaction.42.sources",
		Payload: map[string]any{"type": "source.created", "chat_interaction_id": "42", "url": "https://go.dev"},
	}, testNow)
	assert.Equal(t, KindSourceCreated, src.Kind)
	assert.Equal(t, "42", src.InteractionID)

	created := Classify(RawEvent{
		Channel: "session.s1",
		Payload: map[string]any{"type": "interaction.created", "interaction_id": "43", "chat_session_id": "s1"},
	}, testNow)
	assert.Equal(t, KindInteractionCreated, created.Kind)
	assert.Equal(t, "43", created.InteractionID)
	assert.Equal(t, "s1", created.SessionID)

	art := Classify(RawEvent{Channel: "session.s1.artifacts", Payload: map[string]any{"artifact_key": "k"}}, testNow)
	assert.Equal(t, KindArtifactCreated, art.Kind)
	assert.Equal(t, "s1", art.SessionID)
	assert.Empty(t, art.InteractionID)
}

func TestClassify_ChannelFromPayload(t *testing.T) {
	e := Classify(RawEvent{Payload: map[string]any{
		"type":    "catchup.overflow",
		"channel": "interaction.42.status",
	}}, testNow)
	assert.Equal(t, KindCatchupOverflow, e.Kind)
	assert.Equal(t, "interaction.42.status", e.Channel)
	assert.Equal(t, "42", e.InteractionID)
}

func TestClassify_UnknownTypePassesThrough(t *testing.T) {
	payload := map[string]any{"type": "something.new", "x": 1}
	e := Classify(RawEvent{Channel: "interaction.42.status", Payload: payload}, testNow)
	assert.Equal(t, KindUnknown, e.Kind)
	require.NotNil(t, e.Payload)
	assert.Equal(t, 1, e.Payload["x"])
}
