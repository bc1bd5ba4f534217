// Package services contains business logic service layer implementations.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/codeready-toolchain/chatstream/ent"
	"github.com/codeready-toolchain/chatstream/ent/interaction"
	"github.com/codeready-toolchain/chatstream/pkg/models"
)

// InteractionService manages chat interactions: the question, the answer as
// it is streamed in, and the one-way transition to completed.
type InteractionService struct {
	client *ent.Client
}

// NewInteractionService creates a new InteractionService
func NewInteractionService(client *ent.Client) *InteractionService {
	return &InteractionService{client: client}
}

// CreateInteraction stores a new, not yet answered interaction.
func (s *InteractionService) CreateInteraction(httpCtx context.Context, req models.CreateInteractionRequest) (*models.Interaction, error) {
	if strings.TrimSpace(req.ChatSessionID) == "" {
		return nil, NewValidationError("chat_session_id", "required")
	}
	if strings.TrimSpace(req.Question) == "" {
		return nil, NewValidationError("question", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	now := time.Now()
	row, err := s.client.Interaction.Create().
		SetID(uuid.New().String()).
		SetChatSessionID(req.ChatSessionID).
		SetQuestion(req.Question).
		SetInputTriggerID(req.InputTriggerID).
		SetCreatedAt(now).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create interaction: %w", err)
	}
	return interactionModel(row), nil
}

// GetInteraction returns one interaction or ErrNotFound.
func (s *InteractionService) GetInteraction(httpCtx context.Context, interactionID string) (*models.Interaction, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	row, err := s.client.Interaction.Get(ctx, interactionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get interaction: %w", err)
	}
	return interactionModel(row), nil
}

// ListInteractions returns a session's interactions, oldest first. A
// non-empty query restricts the list to full-text matches on question and
// answer.
func (s *InteractionService) ListInteractions(httpCtx context.Context, sessionID, query string) ([]*models.Interaction, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	q := s.client.Interaction.Query().
		Where(interaction.ChatSessionIDEQ(sessionID))
	if query = strings.TrimSpace(query); query != "" {
		q = q.Where(func(sel *sql.Selector) {
			sel.Where(sql.P(func(b *sql.Builder) {
				b.WriteString("to_tsvector('english', ").
					WriteString(sel.C(interaction.FieldQuestion)).
					WriteString(" || ' ' || ").
					WriteString(sel.C(interaction.FieldAnswer)).
					WriteString(") @@ plainto_tsquery('english', ").
					Arg(query).
					WriteString(")")
			}))
		})
	}

	rows, err := q.
		Order(ent.Asc(interaction.FieldCreatedAt), ent.Asc(interaction.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list interactions: %w", err)
	}

	interactions := make([]*models.Interaction, 0, len(rows))
	for _, row := range rows {
		interactions = append(interactions, interactionModel(row))
	}
	return interactions, nil
}

// UpdateInteraction merges answer and execution id. After completion only a
// Final answer replacement is accepted; anything else returns
// ErrAlreadyCompleted.
func (s *InteractionService) UpdateInteraction(httpCtx context.Context, interactionID string, req models.UpdateInteractionRequest) (*models.Interaction, error) {
	if req.Answer == nil && req.ExecutionID == nil {
		return nil, NewValidationError("answer", "answer or execution_id is required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	current, err := tx.Interaction.Query().
		Where(interaction.IDEQ(interactionID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock interaction: %w", err)
	}
	if current.Completed && (!req.Final || req.Answer == nil || req.ExecutionID != nil) {
		return nil, ErrAlreadyCompleted
	}

	update := tx.Interaction.UpdateOneID(interactionID).
		SetUpdatedAt(time.Now())
	if req.Answer != nil {
		update = update.SetAnswer(*req.Answer)
	}
	if req.ExecutionID != nil {
		update = update.SetExecutionID(*req.ExecutionID)
	}
	row, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update interaction: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit interaction update: %w", err)
	}
	return interactionModel(row), nil
}

// CompleteInteraction marks the interaction complete. It is idempotent:
// transitioned is true only for the call that performed the transition.
func (s *InteractionService) CompleteInteraction(httpCtx context.Context, interactionID, executionID string) (result *models.Interaction, transitioned bool, err error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	now := time.Now()
	update := s.client.Interaction.Update().
		Where(interaction.IDEQ(interactionID), interaction.CompletedEQ(false)).
		SetCompleted(true).
		SetCompletedAt(now).
		SetUpdatedAt(now)
	if executionID != "" {
		update = update.SetExecutionID(executionID)
	}
	n, err := update.Save(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to complete interaction: %w", err)
	}

	// n == 0: either unknown or already completed.
	result, err = s.GetInteraction(ctx, interactionID)
	if err != nil {
		return nil, false, err
	}
	return result, n == 1, nil
}

func interactionModel(row *ent.Interaction) *models.Interaction {
	return &models.Interaction{
		ID:             row.ID,
		ChatSessionID:  row.ChatSessionID,
		Question:       row.Question,
		Answer:         row.Answer,
		ExecutionID:    row.ExecutionID,
		InputTriggerID: row.InputTriggerID,
		Completed:      row.Completed,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
		CompletedAt:    row.CompletedAt,
	}
}
