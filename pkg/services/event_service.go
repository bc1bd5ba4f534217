package services

import (
	"context"
	"fmt"
	"time"

	"github.com/codeready-toolchain/chatstream/ent"
	"github.com/codeready-toolchain/chatstream/ent/event"
	"github.com/codeready-toolchain/chatstream/pkg/models"
)

// EventService queries and prunes the persisted broadcast events. Events are
// written by events.EventPublisher in the same transaction as their NOTIFY.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// CreateEvent stores an event without broadcasting it.
func (s *EventService) CreateEvent(httpCtx context.Context, scopeID, channel string, payload map[string]any) (*models.Event, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	row, err := s.client.Event.Create().
		SetScopeID(scopeID).
		SetChannel(channel).
		SetPayload(payload).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return eventModel(row), nil
}

// GetEventsSince retrieves events on channel with id > sinceID in id order.
// limit <= 0 means no limit.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID, limit int) ([]*models.Event, error) {
	q := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(sinceID),
		).
		Order(ent.Asc(event.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	events := make([]*models.Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, eventModel(row))
	}
	return events, nil
}

// CleanupScopeEvents removes all events of one interaction or session.
func (s *EventService) CleanupScopeEvents(_ context.Context, scopeID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.ScopeIDEQ(scopeID)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup scope events: %w", err)
	}
	return count, nil
}

// CleanupExpiredEvents removes events older than ttl.
func (s *EventService) CleanupExpiredEvents(_ context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup expired events: %w", err)
	}
	return count, nil
}

func eventModel(row *ent.Event) *models.Event {
	return &models.Event{
		ID:        row.ID,
		ScopeID:   row.ScopeID,
		Channel:   row.Channel,
		Payload:   row.Payload,
		CreatedAt: row.CreatedAt,
	}
}
