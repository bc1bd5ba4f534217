package stream

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTransport_PublishOrder(t *testing.T) {
	tr := NewMemoryTransport()
	var got []string
	sub, err := tr.Subscribe(context.Background(), "interaction.1.status", func(raw RawEvent) {
		assert.Equal(t, "interaction.1.status", raw.Channel)
		got = append(got, raw.Payload["message"].(string))
	})
	require.NoError(t, err)

	tr.Publish("interaction.1.status", map[string]any{"message": "a"})
	tr.Publish("interaction.1.status", map[string]any{"message": "b"})
	tr.Publish("interaction.2.status", map[string]any{"message": "other"})
	assert.Equal(t, []string{"a", "b"}, got)

	require.NoError(t, sub.Close())
	require.NoError(t, sub.Close(), "close is idempotent")
	tr.Publish("interaction.1.status", map[string]any{"message": "c"})
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Empty(t, tr.Channels())
}

func TestMemoryTransport_CancelledContext(t *testing.T) {
	tr := NewMemoryTransport()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := tr.Subscribe(ctx, "x", func(RawEvent) {})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUnavailableTransport(t *testing.T) {
	_, err := Unavailable().Subscribe(context.Background(), "interaction.1", func(RawEvent) {})
	assert.ErrorIs(t, err, ErrTransportUnavailable)
	assert.True(t, IsUnavailable(err))
}
