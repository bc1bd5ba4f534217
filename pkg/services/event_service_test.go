package services

import (
	"context"
	"testing"
	"time"

	testdb "github.com/codeready-toolchain/chatstream/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService_GetEventsSince(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEventService(client.Client)
	ctx := context.Background()

	channel := "interaction.42.status"
	evt1, err := svc.CreateEvent(ctx, "42", channel, map[string]any{"seq": 1})
	require.NoError(t, err)
	_, err = svc.CreateEvent(ctx, "42", channel, map[string]any{"seq": 2})
	require.NoError(t, err)
	_, err = svc.CreateEvent(ctx, "42", "interaction.42", map[string]any{"seq": 3})
	require.NoError(t, err)

	t.Run("retrieves events since ID", func(t *testing.T) {
		events, err := svc.GetEventsSince(ctx, channel, evt1.ID, 0)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, float64(2), events[0].Payload["seq"])
	})

	t.Run("filters by channel", func(t *testing.T) {
		events, err := svc.GetEventsSince(ctx, channel, 0, 0)
		require.NoError(t, err)
		assert.Len(t, events, 2)
	})

	t.Run("respects limit", func(t *testing.T) {
		events, err := svc.GetEventsSince(ctx, channel, 0, 1)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, evt1.ID, events[0].ID)
	})
}

func TestEventService_Cleanup(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEventService(client.Client)
	ctx := context.Background()

	_, err := svc.CreateEvent(ctx, "42", "interaction.42", map[string]any{"a": 1})
	require.NoError(t, err)
	_, err = svc.CreateEvent(ctx, "43", "interaction.43", map[string]any{"a": 1})
	require.NoError(t, err)

	n, err := svc.CleanupScopeEvents(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = client.DB().ExecContext(ctx, `UPDATE events SET created_at = $1`, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	n, err = svc.CleanupExpiredEvents(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	remaining, err := svc.GetEventsSince(ctx, "interaction.43", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
