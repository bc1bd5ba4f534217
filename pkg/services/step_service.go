package services

import (
	"context"
	"fmt"
	"time"

	"github.com/codeready-toolchain/chatstream/ent"
	"github.com/codeready-toolchain/chatstream/ent/interactionstep"
	"github.com/codeready-toolchain/chatstream/pkg/models"
)

// maxSequenceRetries bounds retries when two writers race for the same
// sequence number.
const maxSequenceRetries = 3

// StepService persists the status updates a worker flags with create_event,
// so the steps tab can be rebuilt without the live stream.
type StepService struct {
	client *ent.Client
}

// NewStepService creates a new StepService
func NewStepService(client *ent.Client) *StepService {
	return &StepService{client: client}
}

// CreateStep appends a step with the next sequence number of the interaction.
func (s *StepService) CreateStep(httpCtx context.Context, interactionID string, req models.StatusUpdateRequest) (*models.InteractionStep, error) {
	if req.Message == "" {
		return nil, NewValidationError("message", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	for attempt := 1; ; attempt++ {
		step, err := s.appendStep(ctx, interactionID, req)
		switch {
		case err == nil:
			return step, nil
		case isPgError(err, pgForeignKeyViolation):
			return nil, ErrNotFound
		case isPgError(err, pgUniqueViolation) && attempt < maxSequenceRetries:
			continue
		default:
			return nil, fmt.Errorf("failed to create step: %w", err)
		}
	}
}

func (s *StepService) appendStep(ctx context.Context, interactionID string, req models.StatusUpdateRequest) (*models.InteractionStep, error) {
	next := 1
	last, err := s.client.InteractionStep.Query().
		Where(interactionstep.InteractionIDEQ(interactionID)).
		Order(ent.Desc(interactionstep.FieldSequenceNumber)).
		First(ctx)
	switch {
	case err == nil:
		next = last.SequenceNumber + 1
	case !ent.IsNotFound(err):
		return nil, err
	}

	create := s.client.InteractionStep.Create().
		SetInteractionID(interactionID).
		SetSequenceNumber(next).
		SetSource(req.Source).
		SetMessage(req.Message).
		SetIsSignificant(req.IsSignificant).
		SetCreatedAt(time.Now())
	if req.Metadata != nil {
		create = create.SetMetadata(req.Metadata)
	}
	row, err := create.Save(ctx)
	if err != nil {
		return nil, err
	}
	return stepModel(row), nil
}

// ListSteps returns the persisted steps of an interaction in sequence order.
func (s *StepService) ListSteps(httpCtx context.Context, interactionID string) ([]*models.InteractionStep, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	rows, err := s.client.InteractionStep.Query().
		Where(interactionstep.InteractionIDEQ(interactionID)).
		Order(ent.Asc(interactionstep.FieldSequenceNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list steps: %w", err)
	}

	steps := make([]*models.InteractionStep, 0, len(rows))
	for _, row := range rows {
		steps = append(steps, stepModel(row))
	}
	return steps, nil
}

func stepModel(row *ent.InteractionStep) *models.InteractionStep {
	return &models.InteractionStep{
		ID:             int64(row.ID),
		InteractionID:  row.InteractionID,
		SequenceNumber: row.SequenceNumber,
		Source:         row.Source,
		Message:        row.Message,
		IsSignificant:  row.IsSignificant,
		Metadata:       row.Metadata,
		CreatedAt:      row.CreatedAt,
	}
}
