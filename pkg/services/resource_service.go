package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/chatstream/ent"
	"github.com/codeready-toolchain/chatstream/ent/artifact"
	"github.com/codeready-toolchain/chatstream/ent/source"
	"github.com/codeready-toolchain/chatstream/pkg/models"
)

// URLHash is the dedupe key of a source: the first 16 hex characters of the
// SHA-256 of the URL exactly as given.
func URLHash(rawURL string) string {
	sum := sha256.Sum256([]byte(rawURL))
	return hex.EncodeToString(sum[:])[:16]
}

// ResourceService manages the sources cited by an interaction and the
// artifacts produced in a session.
type ResourceService struct {
	client *ent.Client
}

// NewResourceService creates a new ResourceService
func NewResourceService(client *ent.Client) *ResourceService {
	return &ResourceService{client: client}
}

// CreateSource records a source for an interaction. Sources are unique per
// (interaction, url hash); recording the same URL again returns the existing
// row with created=false.
func (s *ResourceService) CreateSource(httpCtx context.Context, interactionID string, req models.CreateSourceRequest) (*models.Source, bool, error) {
	domain, err := sourceDomain(req.URL)
	if err != nil {
		return nil, false, err
	}
	hash := URLHash(req.URL)

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	row, err := s.client.Source.Create().
		SetID(uuid.New().String()).
		SetChatInteractionID(interactionID).
		SetURL(req.URL).
		SetURLHash(hash).
		SetTitle(req.Title).
		SetDomain(domain).
		SetCreatedAt(time.Now()).
		Save(ctx)
	switch {
	case err == nil:
		return sourceModel(row), true, nil
	case isPgError(err, pgForeignKeyViolation):
		return nil, false, ErrNotFound
	case !ent.IsConstraintError(err):
		return nil, false, fmt.Errorf("failed to create source: %w", err)
	}

	row, err = s.client.Source.Query().
		Where(source.ChatInteractionIDEQ(interactionID), source.URLHashEQ(hash)).
		Only(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load existing source: %w", err)
	}
	return sourceModel(row), false, nil
}

// ListSources returns the sources of an interaction in creation order.
func (s *ResourceService) ListSources(httpCtx context.Context, interactionID string) ([]*models.Source, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	rows, err := s.client.Source.Query().
		Where(source.ChatInteractionIDEQ(interactionID)).
		Order(ent.Asc(source.FieldCreatedAt), ent.Asc(source.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sources: %w", err)
	}

	sources := make([]*models.Source, 0, len(rows))
	for _, row := range rows {
		sources = append(sources, sourceModel(row))
	}
	return sources, nil
}

// CreateArtifact records an artifact for a session. Artifacts are unique per
// (session, artifact key); a repeated key returns the existing row with
// created=false.
func (s *ResourceService) CreateArtifact(httpCtx context.Context, sessionID string, req models.CreateArtifactRequest) (*models.Artifact, bool, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, false, NewValidationError("session_id", "required")
	}
	if strings.TrimSpace(req.ArtifactKey) == "" {
		return nil, false, NewValidationError("artifact_key", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	row, err := s.client.Artifact.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetChatInteractionID(req.ChatInteractionID).
		SetArtifactKey(req.ArtifactKey).
		SetTitle(req.Title).
		SetContentType(req.ContentType).
		SetContent(req.Content).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err == nil {
		return artifactModel(row), true, nil
	}
	if !ent.IsConstraintError(err) {
		return nil, false, fmt.Errorf("failed to create artifact: %w", err)
	}

	row, err = s.client.Artifact.Query().
		Where(artifact.SessionIDEQ(sessionID), artifact.ArtifactKeyEQ(req.ArtifactKey)).
		Only(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load existing artifact: %w", err)
	}
	return artifactModel(row), false, nil
}

// ListArtifacts returns the artifacts of a session in creation order.
func (s *ResourceService) ListArtifacts(httpCtx context.Context, sessionID string) ([]*models.Artifact, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	rows, err := s.client.Artifact.Query().
		Where(artifact.SessionIDEQ(sessionID)).
		Order(ent.Asc(artifact.FieldCreatedAt), ent.Asc(artifact.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}

	artifacts := make([]*models.Artifact, 0, len(rows))
	for _, row := range rows {
		artifacts = append(artifacts, artifactModel(row))
	}
	return artifacts, nil
}

// sourceDomain validates an http(s) URL and returns its host without a
// leading "www.".
func sourceDomain(rawURL string) (string, error) {
	if strings.TrimSpace(rawURL) == "" {
		return "", NewValidationError("url", "required")
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", NewValidationError("url", "must be an absolute http or https URL")
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www."), nil
}

func sourceModel(row *ent.Source) *models.Source {
	return &models.Source{
		ID:                row.ID,
		ChatInteractionID: row.ChatInteractionID,
		URL:               row.URL,
		URLHash:           row.URLHash,
		Title:             row.Title,
		Domain:            row.Domain,
		CreatedAt:         row.CreatedAt,
	}
}

func artifactModel(row *ent.Artifact) *models.Artifact {
	return &models.Artifact{
		ID:                row.ID,
		SessionID:         row.SessionID,
		ChatInteractionID: row.ChatInteractionID,
		ArtifactKey:       row.ArtifactKey,
		Title:             row.Title,
		ContentType:       row.ContentType,
		Content:           row.Content,
		CreatedAt:         row.CreatedAt,
	}
}
