package cleanup

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/chatstream/pkg/config"
	"github.com/codeready-toolchain/chatstream/pkg/models"
	"github.com/codeready-toolchain/chatstream/pkg/services"
	testdb "github.com/codeready-toolchain/chatstream/test/database"
)

type recordingCleaner struct {
	mu     sync.Mutex
	scopes []string
	purged chan string
}

func newRecordingCleaner() *recordingCleaner {
	return &recordingCleaner{purged: make(chan string, 10)}
}

func (r *recordingCleaner) CleanupExpiredEvents(context.Context, time.Duration) (int, error) {
	return 0, nil
}

func (r *recordingCleaner) CleanupScopeEvents(_ context.Context, scopeID string) (int, error) {
	r.mu.Lock()
	r.scopes = append(r.scopes, scopeID)
	r.mu.Unlock()
	r.purged <- scopeID
	return 1, nil
}

func TestService_CleansUpExpiredEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := services.NewEventService(client.Client)
	interactionService := services.NewInteractionService(client.Client)
	ctx := context.Background()

	interaction, err := interactionService.CreateInteraction(ctx, models.CreateInteractionRequest{
		ChatSessionID: "sess-retention",
		Question:      "what changed?",
	})
	require.NoError(t, err)

	old, err := eventService.CreateEvent(ctx, interaction.ID, "interaction."+interaction.ID+".status",
		map[string]any{"type": "status.update", "message": "old"})
	require.NoError(t, err)
	_, err = client.DB().ExecContext(ctx,
		`UPDATE events SET created_at = $1 WHERE id = $2`, time.Now().Add(-2*time.Hour), old.ID)
	require.NoError(t, err)

	_, err = eventService.CreateEvent(ctx, interaction.ID, "interaction."+interaction.ID+".status",
		map[string]any{"type": "status.update", "message": "recent"})
	require.NoError(t, err)

	svc := NewService(&config.RetentionConfig{
		EventTTL:        1 * time.Hour,
		CleanupInterval: 1 * time.Hour,
	}, eventService)
	svc.runAll(ctx)

	remaining, err := eventService.GetEventsSince(ctx, "interaction."+interaction.ID+".status", 0, 0)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "recent", remaining[0].Payload["message"])
}

func TestService_ScheduleInteractionPurge(t *testing.T) {
	cleaner := newRecordingCleaner()
	svc := NewService(&config.RetentionConfig{
		EventTTL:            time.Hour,
		CleanupInterval:     time.Hour,
		CompletedEventGrace: 20 * time.Millisecond,
	}, cleaner)

	svc.ScheduleInteractionPurge("int-1")
	svc.ScheduleInteractionPurge("int-1")
	assert.Equal(t, 1, svc.PendingPurges())

	select {
	case id := <-cleaner.purged:
		assert.Equal(t, "int-1", id)
	case <-time.After(2 * time.Second):
		t.Fatal("interaction events were not purged")
	}

	assert.Eventually(t, func() bool { return svc.PendingPurges() == 0 }, time.Second, 5*time.Millisecond)
	cleaner.mu.Lock()
	assert.Equal(t, []string{"int-1"}, cleaner.scopes)
	cleaner.mu.Unlock()
}

func TestService_StopDropsPendingPurges(t *testing.T) {
	cleaner := newRecordingCleaner()
	svc := NewService(&config.RetentionConfig{
		EventTTL:            time.Hour,
		CleanupInterval:     time.Hour,
		CompletedEventGrace: time.Hour,
	}, cleaner)

	svc.Start(context.Background())
	svc.ScheduleInteractionPurge("int-2")
	assert.Equal(t, 1, svc.PendingPurges())

	svc.Stop()
	assert.Equal(t, 0, svc.PendingPurges())

	svc.ScheduleInteractionPurge("int-3")
	assert.Equal(t, 0, svc.PendingPurges())
}

func TestService_NegativeGraceDisablesPurge(t *testing.T) {
	svc := NewService(&config.RetentionConfig{
		EventTTL:            time.Hour,
		CleanupInterval:     time.Hour,
		CompletedEventGrace: -1,
	}, newRecordingCleaner())

	svc.ScheduleInteractionPurge("int-4")
	assert.Equal(t, 0, svc.PendingPurges())
}
