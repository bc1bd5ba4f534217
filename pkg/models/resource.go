package models

import "time"

// Source is a web page cited while answering an interaction.
type Source struct {
	ID                string    `json:"id"`
	ChatInteractionID string    `json:"chat_interaction_id"`
	URL               string    `json:"url"`
	URLHash           string    `json:"url_hash"`
	Title             string    `json:"title,omitempty"`
	Domain            string    `json:"domain,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// CreateSourceRequest contains fields for recording a source.
type CreateSourceRequest struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

// SourceListResponse contains the sources of an interaction.
type SourceListResponse struct {
	Sources []*Source `json:"sources"`
}

// Artifact is a document produced during a session (report, table, chart).
type Artifact struct {
	ID                string    `json:"id"`
	SessionID         string    `json:"session_id"`
	ChatInteractionID string    `json:"chat_interaction_id,omitempty"`
	ArtifactKey       string    `json:"artifact_key"`
	Title             string    `json:"title,omitempty"`
	ContentType       string    `json:"content_type,omitempty"`
	Content           string    `json:"content,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// CreateArtifactRequest contains fields for creating an artifact.
type CreateArtifactRequest struct {
	ChatInteractionID string `json:"chat_interaction_id,omitempty"`
	ArtifactKey       string `json:"artifact_key"`
	Title             string `json:"title,omitempty"`
	ContentType       string `json:"content_type,omitempty"`
	Content           string `json:"content,omitempty"`
}

// ArtifactListResponse contains the artifacts of a session.
type ArtifactListResponse struct {
	Artifacts []*Artifact `json:"artifacts"`
}
