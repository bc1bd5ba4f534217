package api

import (
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/chatstream/pkg/events"
	"github.com/codeready-toolchain/chatstream/pkg/models"
)

// statusUpdateHandler handles POST /api/v1/interactions/:id/status.
// Every update is broadcast on the status channel; updates flagged
// create_event are also kept as steps. Updates for a completed interaction
// are still accepted.
func (s *Server) statusUpdateHandler(c *echo.Context) error {
	interactionID := c.Param("id")
	if interactionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "interaction id is required")
	}

	var req models.StatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if s.eventPublisher == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "event publishing is not available")
	}

	ctx := c.Request().Context()
	if _, err := s.interactionService.GetInteraction(ctx, interactionID); err != nil {
		return mapServiceError(err)
	}

	resp := &StatusUpdateResponse{InteractionID: interactionID}
	if req.CreateEvent {
		step, err := s.stepService.CreateStep(ctx, interactionID, req)
		if err != nil {
			return mapServiceError(err)
		}
		resp.Step = step
	}

	if err := s.eventPublisher.PublishStatusUpdate(ctx, events.StatusUpdatePayload{
		Type:          events.EventTypeStatusUpdate,
		InteractionID: interactionID,
		Source:        req.Source,
		Message:       req.Message,
		IsSignificant: req.IsSignificant,
		CreateEvent:   req.CreateEvent,
		Metadata:      req.Metadata,
		Timestamp:     nowTimestamp(),
	}); err != nil {
		slog.Error("Failed to publish status update",
			"interaction_id", interactionID, "source", req.Source, "error", err)
		return echo.NewHTTPError(http.StatusServiceUnavailable, "failed to publish status update")
	}
	resp.Published = true

	return c.JSON(http.StatusAccepted, resp)
}

// listStepsHandler handles GET /api/v1/interactions/:id/steps.
func (s *Server) listStepsHandler(c *echo.Context) error {
	interactionID := c.Param("id")
	if interactionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "interaction id is required")
	}

	steps, err := s.stepService.ListSteps(c.Request().Context(), interactionID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &models.StepListResponse{Steps: steps})
}

// setQueueStatusHandler handles PUT /api/v1/interactions/:id/queue.
// The snapshot replaces the previous one and is broadcast without being
// kept for catchup.
func (s *Server) setQueueStatusHandler(c *echo.Context) error {
	interactionID := c.Param("id")
	if interactionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "interaction id is required")
	}

	var req SetQueueStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	status, err := s.queueService.SetQueueStatus(ctx, interactionID, req.JobData)
	if err != nil {
		return mapServiceError(err)
	}

	if s.eventPublisher != nil {
		// PublishQueueStatus logs its own failures.
		_ = s.eventPublisher.PublishQueueStatus(ctx, events.QueueStatusPayload{
			Type:          events.EventTypeQueueStatus,
			InteractionID: interactionID,
			JobData:       status.JobData,
			Timestamp:     nowTimestamp(),
		})
	}

	return c.JSON(http.StatusOK, status)
}

// getQueueStatusHandler handles GET /api/v1/interactions/:id/queue.
func (s *Server) getQueueStatusHandler(c *echo.Context) error {
	interactionID := c.Param("id")
	if interactionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "interaction id is required")
	}

	status, err := s.queueService.GetQueueStatus(c.Request().Context(), interactionID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, status)
}
