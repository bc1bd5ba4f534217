package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// maxNotifyPayload keeps NOTIFY payloads under PostgreSQL's 8000-byte limit
// with some headroom for the injected routing fields.
const maxNotifyPayload = 7900

// EventPublisher publishes events for WebSocket delivery.
// Persistent events are stored in the events table then broadcast via NOTIFY.
// Transient events (queue status) are broadcast via NOTIFY only.
//
// Each public method accepts one typed payload struct from payloads.go.
// Internally, payloads are marshaled to JSON and routed to the channel
// derived from the payload's scope id via persistAndNotify or notifyOnly.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// --- Typed public methods ---

// PublishStatusUpdate persists and broadcasts a status.update event on the
// interaction's status channel.
func (p *EventPublisher) PublishStatusUpdate(ctx context.Context, payload StatusUpdatePayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal StatusUpdatePayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.InteractionID, InteractionStatusChannel(payload.InteractionID), payloadJSON)
}

// PublishInteractionUpdated persists and broadcasts an interaction.updated event.
func (p *EventPublisher) PublishInteractionUpdated(ctx context.Context, payload InteractionUpdatedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal InteractionUpdatedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.InteractionID, InteractionChannel(payload.InteractionID), payloadJSON)
}

// PublishInteractionCompleted persists and broadcasts an interaction.completed event.
func (p *EventPublisher) PublishInteractionCompleted(ctx context.Context, payload InteractionCompletedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal InteractionCompletedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.InteractionID, InteractionChannel(payload.InteractionID), payloadJSON)
}

// PublishSourceCreated persists and broadcasts a source.created event.
func (p *EventPublisher) PublishSourceCreated(ctx context.Context, payload SourceCreatedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal SourceCreatedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.ChatInteractionID, InteractionSourcesChannel(payload.ChatInteractionID), payloadJSON)
}

// PublishArtifactCreated persists and broadcasts an artifact.created event
// on the session's artifact channel.
func (p *EventPublisher) PublishArtifactCreated(ctx context.Context, payload ArtifactCreatedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ArtifactCreatedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.SessionID, SessionArtifactsChannel(payload.SessionID), payloadJSON)
}

// PublishInteractionCreated persists and broadcasts an interaction.created
// event on the session channel.
func (p *EventPublisher) PublishInteractionCreated(ctx context.Context, payload InteractionCreatedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal InteractionCreatedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.ChatSessionID, SessionChannel(payload.ChatSessionID), payloadJSON)
}

// PublishQueueStatus broadcasts a queue.status transient event (no DB persistence).
func (p *EventPublisher) PublishQueueStatus(ctx context.Context, payload QueueStatusPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal QueueStatusPayload: %w", err)
	}
	if err := p.notifyOnly(ctx, InteractionQueueChannel(payload.InteractionID), payloadJSON); err != nil {
		slog.Warn("Failed to publish queue status",
			"interaction_id", payload.InteractionID, "error", err)
		return err
	}
	return nil
}

// --- Internal core methods ---

// persistAndNotify persists a pre-marshaled event to the database and broadcasts
// via NOTIFY in a single transaction (pg_notify is held until COMMIT).
func (p *EventPublisher) persistAndNotify(ctx context.Context, scopeID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// 1. Persist to events table (within transaction)
	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (scope_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		scopeID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// Build NOTIFY payload with routing fields for the client.
	notifyPayload, err := injectRoutingAndTruncate(payloadJSON, channel, &eventID)
	if err != nil {
		return err
	}

	// 2. pg_notify in the same transaction, delivered at COMMIT
	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	// 3. Commit: the row and the NOTIFY become visible together
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}

	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without persisting to DB.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := injectRoutingAndTruncate(payloadJSON, channel, nil)
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// --- Internal helpers ---

// injectRoutingAndTruncate adds channel (and db_event_id for persisted
// events) to the JSON payload and applies truncation if the result exceeds
// PostgreSQL's NOTIFY limit.
func injectRoutingAndTruncate(payloadJSON []byte, channel string, dbEventID *int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for routing injection: %w", err)
	}
	m["channel"] = channel
	if dbEventID != nil {
		m["db_event_id"] = *dbEventID
	}

	enrichedBytes, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}

	if len(enrichedBytes) <= maxNotifyPayload {
		return string(enrichedBytes), nil
	}
	return buildTruncatedPayload(enrichedBytes)
}

// buildTruncatedPayload creates a minimal truncation envelope from the full
// JSON payload bytes, extracting only the routing fields the client needs
// to fetch the complete event through catchup or REST.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type              string `json:"type"`
		Channel           string `json:"channel"`
		InteractionID     string `json:"interaction_id"`
		ChatInteractionID string `json:"chat_interaction_id"`
		SessionID         string `json:"session_id"`
		DBEventID         *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":      routing.Type,
		"channel":   routing.Channel,
		"truncated": true,
	}
	if routing.InteractionID != "" {
		truncated["interaction_id"] = routing.InteractionID
	}
	if routing.ChatInteractionID != "" {
		truncated["chat_interaction_id"] = routing.ChatInteractionID
	}
	if routing.SessionID != "" {
		truncated["session_id"] = routing.SessionID
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
