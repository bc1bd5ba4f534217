package api

import (
	"context"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/chatstream/pkg/events"
	"github.com/codeready-toolchain/chatstream/pkg/models"
	"github.com/codeready-toolchain/chatstream/pkg/slack"
)

// createInteractionHandler handles POST /api/v1/sessions/:id/interactions.
func (s *Server) createInteractionHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	var req CreateInteractionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	interaction, err := s.interactionService.CreateInteraction(ctx, models.CreateInteractionRequest{
		ChatSessionID:  sessionID,
		Question:       req.Question,
		InputTriggerID: req.InputTriggerID,
	})
	if err != nil {
		return mapServiceError(err)
	}

	if s.eventPublisher != nil {
		if pubErr := s.eventPublisher.PublishInteractionCreated(ctx, events.InteractionCreatedPayload{
			Type:           events.EventTypeInteractionCreated,
			InteractionID:  interaction.ID,
			ChatSessionID:  sessionID,
			HasAnswer:      interaction.HasAnswer(),
			InputTriggerID: interaction.InputTriggerID,
			Timestamp:      nowTimestamp(),
		}); pubErr != nil {
			slog.Warn("Failed to publish interaction.created event",
				"interaction_id", interaction.ID, "session_id", sessionID, "error", pubErr)
		}
	}

	if interaction.InputTriggerID != "" {
		go s.slackService.NotifyInteractionStarted(context.WithoutCancel(ctx), slack.InteractionStartedInput{
			InteractionID: interaction.ID,
			SessionID:     sessionID,
			Question:      interaction.Question,
			Trigger:       interaction.InputTriggerID,
		})
	}

	return c.JSON(http.StatusCreated, interaction)
}

// listInteractionsHandler handles GET /api/v1/sessions/:id/interactions.
// The optional q parameter filters by full-text match.
func (s *Server) listInteractionsHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	q := c.QueryParam("q")
	if q != "" && len(q) < 2 {
		return echo.NewHTTPError(http.StatusBadRequest, "search query must be at least 2 characters")
	}

	interactions, err := s.interactionService.ListInteractions(c.Request().Context(), sessionID, q)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &models.InteractionListResponse{Interactions: interactions})
}

// getInteractionHandler handles GET /api/v1/interactions/:id.
func (s *Server) getInteractionHandler(c *echo.Context) error {
	interactionID := c.Param("id")
	if interactionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "interaction id is required")
	}

	interaction, err := s.interactionService.GetInteraction(c.Request().Context(), interactionID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, interaction)
}

// updateInteractionHandler handles PATCH /api/v1/interactions/:id.
// Only the changed fields are broadcast; a final answer carries "final": true
// so views know to accept it after completion.
func (s *Server) updateInteractionHandler(c *echo.Context) error {
	interactionID := c.Param("id")
	if interactionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "interaction id is required")
	}

	var req models.UpdateInteractionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	interaction, err := s.interactionService.UpdateInteraction(ctx, interactionID, req)
	if err != nil {
		return mapServiceError(err)
	}

	fields := map[string]any{}
	if req.Answer != nil {
		fields["answer"] = interaction.Answer
	}
	if req.ExecutionID != nil {
		fields["execution_id"] = interaction.ExecutionID
	}
	if req.Final {
		fields["final"] = true
	}

	if s.eventPublisher != nil {
		if pubErr := s.eventPublisher.PublishInteractionUpdated(ctx, events.InteractionUpdatedPayload{
			Type:          events.EventTypeInteractionUpdated,
			InteractionID: interactionID,
			Fields:        fields,
			Timestamp:     nowTimestamp(),
		}); pubErr != nil {
			slog.Warn("Failed to publish interaction.updated event",
				"interaction_id", interactionID, "error", pubErr)
		}
	}

	return c.JSON(http.StatusOK, interaction)
}

// completeInteractionHandler handles POST /api/v1/interactions/:id/complete.
// Repeated calls succeed; only the transitioning call broadcasts and notifies.
func (s *Server) completeInteractionHandler(c *echo.Context) error {
	interactionID := c.Param("id")
	if interactionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "interaction id is required")
	}

	var req models.CompleteInteractionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	interaction, transitioned, err := s.interactionService.CompleteInteraction(ctx, interactionID, req.ExecutionID)
	if err != nil {
		return mapServiceError(err)
	}

	if transitioned {
		if s.eventPublisher != nil {
			if pubErr := s.eventPublisher.PublishInteractionCompleted(ctx, events.InteractionCompletedPayload{
				Type:          events.EventTypeInteractionCompleted,
				InteractionID: interactionID,
				ExecutionID:   interaction.ExecutionID,
				Timestamp:     nowTimestamp(),
			}); pubErr != nil {
				slog.Warn("Failed to publish interaction.completed event",
					"interaction_id", interactionID, "error", pubErr)
			}
		}

		go s.slackService.NotifyInteractionCompleted(context.WithoutCancel(ctx), slack.InteractionCompletedInput{
			InteractionID: interactionID,
			SessionID:     interaction.ChatSessionID,
			Question:      interaction.Question,
			Answer:        interaction.Answer,
			Trigger:       interaction.InputTriggerID,
		})

		if s.purger != nil {
			s.purger.ScheduleInteractionPurge(interactionID)
		}

		slog.Info("Interaction completed",
			"interaction_id", interactionID, "session_id", interaction.ChatSessionID)
	}

	return c.JSON(http.StatusOK, &models.CompleteInteractionResponse{
		Interaction:  interaction,
		Transitioned: transitioned,
	})
}
