package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/codeready-toolchain/chatstream/pkg/models"
	testdb "github.com/codeready-toolchain/chatstream/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepService_CreateAndList(t *testing.T) {
	client := testdb.NewTestClient(t)
	interactions := NewInteractionService(client.Client)
	svc := NewStepService(client.Client)
	ctx := context.Background()

	interaction := createTestInteraction(t, interactions, "sess-steps")

	first, err := svc.CreateStep(ctx, interaction.ID, models.StatusUpdateRequest{
		Source: "searxng_search", Message: "Searching for 'go channels'", IsSignificant: true,
		Metadata: map[string]any{"step_key": "search"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, first.SequenceNumber)

	second, err := svc.CreateStep(ctx, interaction.ID, models.StatusUpdateRequest{
		Source: "fetch", Message: "Reading go.dev",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, second.SequenceNumber)

	steps, err := svc.ListSteps(ctx, interaction.ID)
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, "search", steps[0].Metadata["step_key"])
	assert.True(t, steps[0].IsSignificant)
	assert.Nil(t, steps[1].Metadata)

	_, err = svc.CreateStep(ctx, interaction.ID, models.StatusUpdateRequest{Source: "x"})
	assert.True(t, IsValidationError(err))

	_, err = svc.CreateStep(ctx, "missing", models.StatusUpdateRequest{Message: "m"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStepService_ConcurrentSequence(t *testing.T) {
	client := testdb.NewTestClient(t)
	interactions := NewInteractionService(client.Client)
	svc := NewStepService(client.Client)
	ctx := context.Background()

	interaction := createTestInteraction(t, interactions, "sess-steps-concurrent")

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.CreateStep(ctx, interaction.ID, models.StatusUpdateRequest{Message: fmt.Sprintf("step %d", i)})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	steps, err := svc.ListSteps(ctx, interaction.ID)
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, 1, steps[0].SequenceNumber)
	assert.Equal(t, 2, steps[1].SequenceNumber)
}

func TestQueueService(t *testing.T) {
	client := testdb.NewTestClient(t)
	interactions := NewInteractionService(client.Client)
	svc := NewQueueService(client.Client)
	ctx := context.Background()

	interaction := createTestInteraction(t, interactions, "sess-queue")

	_, err := svc.GetQueueStatus(ctx, interaction.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.SetQueueStatus(ctx, interaction.ID, map[string]any{"position": 3, "eta_seconds": 40})
	require.NoError(t, err)

	_, err = svc.SetQueueStatus(ctx, interaction.ID, map[string]any{"state": "running"})
	require.NoError(t, err)

	qs, err := svc.GetQueueStatus(ctx, interaction.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"state": "running"}, qs.JobData, "snapshot is replaced, not merged")

	_, err = svc.SetQueueStatus(ctx, interaction.ID, nil)
	assert.True(t, IsValidationError(err))

	_, err = svc.SetQueueStatus(ctx, "missing", map[string]any{})
	assert.ErrorIs(t, err, ErrNotFound)
}
