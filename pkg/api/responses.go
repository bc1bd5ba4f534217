package api

import (
	"github.com/codeready-toolchain/chatstream/pkg/database"
	"github.com/codeready-toolchain/chatstream/pkg/models"
)

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status               string                 `json:"status"`
	Version              string                 `json:"version"`
	Database             *database.HealthStatus `json:"database,omitempty"`
	WebSocketConnections int                    `json:"websocket_connections"`
}

// StatusUpdateResponse is returned by POST /api/v1/interactions/:id/status.
// Step is set when the update was persisted (create_event).
type StatusUpdateResponse struct {
	InteractionID string                  `json:"interaction_id"`
	Published     bool                    `json:"published"`
	Step          *models.InteractionStep `json:"step,omitempty"`
}

// SourceResponse is returned by POST /api/v1/interactions/:id/sources.
type SourceResponse struct {
	Source  *models.Source `json:"source"`
	Created bool           `json:"created"`
}

// ArtifactResponse is returned by POST /api/v1/sessions/:id/artifacts.
type ArtifactResponse struct {
	Artifact *models.Artifact `json:"artifact"`
	Created  bool             `json:"created"`
}
