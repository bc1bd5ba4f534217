package services

import (
	"context"
	"testing"

	testdb "github.com/codeready-toolchain/chatstream/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueService_ReplaceWholesale(t *testing.T) {
	client := testdb.NewTestClient(t)
	interactions := NewInteractionService(client.Client)
	svc := NewQueueService(client.Client)
	ctx := context.Background()

	interaction := createTestInteraction(t, interactions, "sess-queue")

	_, err := svc.GetQueueStatus(ctx, interaction.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.SetQueueStatus(ctx, interaction.ID, map[string]any{"position": 3, "worker": "w1"})
	require.NoError(t, err)

	_, err = svc.SetQueueStatus(ctx, interaction.ID, map[string]any{"position": 0})
	require.NoError(t, err)

	qs, err := svc.GetQueueStatus(ctx, interaction.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"position": float64(0)}, qs.JobData)
}

func TestQueueService_Errors(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewQueueService(client.Client)
	ctx := context.Background()

	_, err := svc.SetQueueStatus(ctx, "missing", map[string]any{"position": 1})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.SetQueueStatus(ctx, "missing", nil)
	assert.True(t, IsValidationError(err))
}
