package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChannelNames(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "status", got: InteractionStatusChannel("42"), want: "interaction.42.status"},
		{name: "interaction", got: InteractionChannel("42"), want: "interaction.42"},
		{name: "sources", got: InteractionSourcesChannel("42"), want: "interaction.42.sources"},
		{name: "queue", got: InteractionQueueChannel("42"), want: "interaction.42.queue"},
		{name: "artifacts", got: SessionArtifactsChannel("7"), want: "session.7.artifacts"},
		{name: "session", got: SessionChannel("7"), want: "session.7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestScopeOfChannel(t *testing.T) {
	tests := []struct {
		channel string
		want    string
	}{
		{channel: "interaction.42.status", want: "42"},
		{channel: "interaction.42", want: "42"},
		{channel: "interaction.42.sources", want: "42"},
		{channel: "interaction.42.queue", want: "42"},
		{channel: "session.7.artifacts", want: "7"},
		{channel: "session.7", want: "7"},
		{channel: "interaction.550e8400-e29b-41d4-a716-446655440000.status", want: "550e8400-e29b-41d4-a716-446655440000"},
		{channel: "sessions", want: ""},
		{channel: "", want: ""},
		{channel: "session:abc", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.channel, func(t *testing.T) {
			assert.Equal(t, tt.want, ScopeOfChannel(tt.channel))
		})
	}
}

func TestEventTypeConstants(t *testing.T) {
	types := []string{
		EventTypeStatusUpdate,
		EventTypeInteractionUpdated,
		EventTypeInteractionCompleted,
		EventTypeSourceCreated,
		EventTypeArtifactCreated,
		EventTypeInteractionCreated,
		EventTypeQueueStatus,
		EventTypeConnectionEstablished,
		EventTypeSubscriptionConfirmed,
		EventTypeSubscriptionError,
		EventTypeCatchupOverflow,
		EventTypePong,
		EventTypeError,
	}

	seen := make(map[string]bool)
	for _, typ := range types {
		assert.NotEmpty(t, typ, "event type should not be empty")
		assert.False(t, seen[typ], "duplicate event type: %s", typ)
		seen[typ] = true
	}
}

func TestCompletionSourceConstants(t *testing.T) {
	assert.Equal(t, "agent_execution_completed", SourceAgentExecutionCompleted)
	assert.Equal(t, "execution_completed", SourceExecutionCompleted)
	assert.Equal(t, "interaction_completed", SourceInteractionCompleted)
}
