package api

import (
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/chatstream/pkg/events"
	"github.com/codeready-toolchain/chatstream/pkg/models"
)

// createSourceHandler handles POST /api/v1/interactions/:id/sources.
// A URL already recorded for the interaction returns the existing source
// with 200 and is not broadcast again.
func (s *Server) createSourceHandler(c *echo.Context) error {
	interactionID := c.Param("id")
	if interactionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "interaction id is required")
	}

	var req models.CreateSourceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	source, created, err := s.resourceService.CreateSource(ctx, interactionID, req)
	if err != nil {
		return mapServiceError(err)
	}

	if !created {
		return c.JSON(http.StatusOK, &SourceResponse{Source: source})
	}

	if s.eventPublisher != nil {
		if pubErr := s.eventPublisher.PublishSourceCreated(ctx, events.SourceCreatedPayload{
			Type:              events.EventTypeSourceCreated,
			ChatInteractionID: interactionID,
			SourceID:          source.ID,
			URL:               source.URL,
			URLHash:           source.URLHash,
			Title:             source.Title,
			Domain:            source.Domain,
			Timestamp:         nowTimestamp(),
		}); pubErr != nil {
			slog.Warn("Failed to publish source.created event",
				"interaction_id", interactionID, "source_id", source.ID, "error", pubErr)
		}
	}

	return c.JSON(http.StatusCreated, &SourceResponse{Source: source, Created: true})
}

// listSourcesHandler handles GET /api/v1/interactions/:id/sources.
func (s *Server) listSourcesHandler(c *echo.Context) error {
	interactionID := c.Param("id")
	if interactionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "interaction id is required")
	}

	sources, err := s.resourceService.ListSources(c.Request().Context(), interactionID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &models.SourceListResponse{Sources: sources})
}

// createArtifactHandler handles POST /api/v1/sessions/:id/artifacts.
func (s *Server) createArtifactHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	var req models.CreateArtifactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	artifact, created, err := s.resourceService.CreateArtifact(ctx, sessionID, req)
	if err != nil {
		return mapServiceError(err)
	}

	if !created {
		return c.JSON(http.StatusOK, &ArtifactResponse{Artifact: artifact})
	}

	if s.eventPublisher != nil {
		if pubErr := s.eventPublisher.PublishArtifactCreated(ctx, events.ArtifactCreatedPayload{
			Type:              events.EventTypeArtifactCreated,
			SessionID:         sessionID,
			ChatInteractionID: artifact.ChatInteractionID,
			ArtifactID:        artifact.ID,
			ArtifactKey:       artifact.ArtifactKey,
			Title:             artifact.Title,
			ContentType:       artifact.ContentType,
			Timestamp:         nowTimestamp(),
		}); pubErr != nil {
			slog.Warn("Failed to publish artifact.created event",
				"session_id", sessionID, "artifact_id", artifact.ID, "error", pubErr)
		}
	}

	return c.JSON(http.StatusCreated, &ArtifactResponse{Artifact: artifact, Created: true})
}

// listArtifactsHandler handles GET /api/v1/sessions/:id/artifacts.
func (s *Server) listArtifactsHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	artifacts, err := s.resourceService.ListArtifacts(c.Request().Context(), sessionID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &models.ArtifactListResponse{Artifacts: artifacts})
}
