package services

import (
	"context"
	"testing"

	"github.com/codeready-toolchain/chatstream/pkg/models"
	testdb "github.com/codeready-toolchain/chatstream/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func createTestInteraction(t *testing.T, svc *InteractionService, sessionID string) *models.Interaction {
	t.Helper()
	interaction, err := svc.CreateInteraction(context.Background(), models.CreateInteractionRequest{
		ChatSessionID: sessionID,
		Question:      "How do Go channels work?",
	})
	require.NoError(t, err)
	return interaction
}

func TestInteractionService_CreateInteraction(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewInteractionService(client.Client)
	ctx := context.Background()

	t.Run("creates interaction", func(t *testing.T) {
		interaction, err := svc.CreateInteraction(ctx, models.CreateInteractionRequest{
			ChatSessionID:  "sess-1",
			Question:       "What is a goroutine?",
			InputTriggerID: "trigger-9",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, interaction.ID)
		assert.Equal(t, "sess-1", interaction.ChatSessionID)
		assert.Equal(t, "trigger-9", interaction.InputTriggerID)
		assert.Empty(t, interaction.Answer)
		assert.False(t, interaction.Completed)
		assert.Nil(t, interaction.CompletedAt)
	})

	t.Run("validates input", func(t *testing.T) {
		_, err := svc.CreateInteraction(ctx, models.CreateInteractionRequest{Question: "q"})
		assert.True(t, IsValidationError(err))

		_, err = svc.CreateInteraction(ctx, models.CreateInteractionRequest{ChatSessionID: "s", Question: "  "})
		assert.True(t, IsValidationError(err))
	})
}

func TestInteractionService_GetAndList(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewInteractionService(client.Client)
	ctx := context.Background()

	first := createTestInteraction(t, svc, "sess-list")
	second := createTestInteraction(t, svc, "sess-list")
	createTestInteraction(t, svc, "other-session")

	got, err := svc.GetInteraction(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Question, got.Question)

	_, err = svc.GetInteraction(ctx, uuid.New().String())
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := svc.ListInteractions(ctx, "sess-list", "")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)

	empty, err := svc.ListInteractions(ctx, "nobody", "")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestInteractionService_ListInteractions_Search(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewInteractionService(client.Client)
	ctx := context.Background()

	a := createTestInteraction(t, svc, "sess-search")
	_, err := svc.UpdateInteraction(ctx, a.ID, models.UpdateInteractionRequest{Answer: strPtr("Channels synchronize goroutines.")})
	require.NoError(t, err)

	_, err = svc.CreateInteraction(ctx, models.CreateInteractionRequest{ChatSessionID: "sess-search", Question: "Explain mutexes"})
	require.NoError(t, err)

	found, err := svc.ListInteractions(ctx, "sess-search", "synchronize")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, a.ID, found[0].ID)
}

func TestInteractionService_UpdateInteraction(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewInteractionService(client.Client)
	ctx := context.Background()

	interaction := createTestInteraction(t, svc, "sess-update")

	t.Run("merges answer and execution id", func(t *testing.T) {
		updated, err := svc.UpdateInteraction(ctx, interaction.ID, models.UpdateInteractionRequest{
			Answer: strPtr("Partial"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Partial", updated.Answer)

		updated, err = svc.UpdateInteraction(ctx, interaction.ID, models.UpdateInteractionRequest{
			ExecutionID: strPtr("exec-1"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Partial", updated.Answer, "nil answer leaves the stored answer unchanged")
		assert.Equal(t, "exec-1", updated.ExecutionID)
	})

	t.Run("requires a field", func(t *testing.T) {
		_, err := svc.UpdateInteraction(ctx, interaction.ID, models.UpdateInteractionRequest{})
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown interaction", func(t *testing.T) {
		_, err := svc.UpdateInteraction(ctx, "missing", models.UpdateInteractionRequest{Answer: strPtr("x")})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("completed interaction only accepts final answer", func(t *testing.T) {
		_, transitioned, err := svc.CompleteInteraction(ctx, interaction.ID, "")
		require.NoError(t, err)
		require.True(t, transitioned)

		_, err = svc.UpdateInteraction(ctx, interaction.ID, models.UpdateInteractionRequest{Answer: strPtr("late chunk")})
		assert.ErrorIs(t, err, ErrAlreadyCompleted)

		_, err = svc.UpdateInteraction(ctx, interaction.ID, models.UpdateInteractionRequest{
			Answer: strPtr("Final"), ExecutionID: strPtr("exec-2"), Final: true,
		})
		assert.ErrorIs(t, err, ErrAlreadyCompleted)

		updated, err := svc.UpdateInteraction(ctx, interaction.ID, models.UpdateInteractionRequest{
			Answer: strPtr("Final answer"), Final: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "Final answer", updated.Answer)
		assert.True(t, updated.Completed)
	})
}

func TestInteractionService_CompleteInteraction(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewInteractionService(client.Client)
	ctx := context.Background()

	interaction := createTestInteraction(t, svc, "sess-complete")

	completed, transitioned, err := svc.CompleteInteraction(ctx, interaction.ID, "exec-7")
	require.NoError(t, err)
	assert.True(t, transitioned)
	assert.True(t, completed.Completed)
	assert.NotNil(t, completed.CompletedAt)
	assert.Equal(t, "exec-7", completed.ExecutionID)

	again, transitioned, err := svc.CompleteInteraction(ctx, interaction.ID, "exec-8")
	require.NoError(t, err)
	assert.False(t, transitioned, "second completion is a no-op")
	assert.Equal(t, "exec-7", again.ExecutionID)

	_, _, err = svc.CompleteInteraction(ctx, "missing", "")
	assert.ErrorIs(t, err, ErrNotFound)
}
