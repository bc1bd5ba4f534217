package services

import (
	"context"
	"fmt"
	"time"

	"github.com/codeready-toolchain/chatstream/ent"
	"github.com/codeready-toolchain/chatstream/ent/queuestatus"
	"github.com/codeready-toolchain/chatstream/pkg/models"
)

// QueueService stores the latest queue snapshot of each interaction.
type QueueService struct {
	client *ent.Client
}

// NewQueueService creates a new QueueService
func NewQueueService(client *ent.Client) *QueueService {
	return &QueueService{client: client}
}

// SetQueueStatus replaces the interaction's queue snapshot wholesale.
func (s *QueueService) SetQueueStatus(httpCtx context.Context, interactionID string, jobData map[string]any) (*models.QueueStatus, error) {
	if jobData == nil {
		return nil, NewValidationError("job_data", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	now := time.Now()
	err := s.client.QueueStatus.Create().
		SetID(interactionID).
		SetJobData(jobData).
		SetUpdatedAt(now).
		OnConflictColumns(queuestatus.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to set queue status: %w", err)
	}
	return &models.QueueStatus{InteractionID: interactionID, JobData: jobData, UpdatedAt: now}, nil
}

// GetQueueStatus returns the latest snapshot or ErrNotFound.
func (s *QueueService) GetQueueStatus(httpCtx context.Context, interactionID string) (*models.QueueStatus, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	row, err := s.client.QueueStatus.Get(ctx, interactionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get queue status: %w", err)
	}
	return &models.QueueStatus{InteractionID: row.ID, JobData: row.JobData, UpdatedAt: row.UpdatedAt}, nil
}
