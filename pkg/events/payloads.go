package events

// StatusUpdatePayload is the payload for status.update events.
// Published by research workers for every step they take.
type StatusUpdatePayload struct {
	Type          string         `json:"type"`                     // always EventTypeStatusUpdate
	InteractionID string         `json:"interaction_id"`           // owning interaction
	Source        string         `json:"source"`                   // subsystem name, e.g. "searxng_search"
	Message       string         `json:"message"`                  // human-readable step text
	IsSignificant bool           `json:"is_significant"`           // milestone vs detail
	CreateEvent   bool           `json:"create_event,omitempty"`   // also persisted as an interaction step
	Metadata      map[string]any `json:"metadata,omitempty"`
	Timestamp     string         `json:"timestamp"` // RFC3339Nano
}

// InteractionUpdatedPayload is the payload for interaction.updated events.
// Carries only the fields that changed; clients merge them into display state.
type InteractionUpdatedPayload struct {
	Type          string         `json:"type"` // always EventTypeInteractionUpdated
	InteractionID string         `json:"interaction_id"`
	Fields        map[string]any `json:"fields"`
	Timestamp     string         `json:"timestamp"` // RFC3339Nano
}

// InteractionCompletedPayload is the payload for interaction.completed events.
type InteractionCompletedPayload struct {
	Type          string `json:"type"` // always EventTypeInteractionCompleted
	InteractionID string `json:"interaction_id"`
	ExecutionID   string `json:"execution_id,omitempty"`
	Timestamp     string `json:"timestamp"` // RFC3339Nano
}

// SourceCreatedPayload is the payload for source.created events.
type SourceCreatedPayload struct {
	Type              string `json:"type"` // always EventTypeSourceCreated
	ChatInteractionID string `json:"chat_interaction_id"`
	SourceID          string `json:"id"`
	URL               string `json:"url"`
	URLHash           string `json:"url_hash"`
	Title             string `json:"title,omitempty"`
	Domain            string `json:"domain,omitempty"`
	Timestamp         string `json:"timestamp"` // RFC3339Nano
}

// ArtifactCreatedPayload is the payload for artifact.created events.
// ChatInteractionID is set when the artifact was produced while answering a
// specific interaction; SessionID is always set.
type ArtifactCreatedPayload struct {
	Type              string `json:"type"` // always EventTypeArtifactCreated
	SessionID         string `json:"session_id"`
	ChatInteractionID string `json:"chat_interaction_id,omitempty"`
	ArtifactID        string `json:"id"`
	ArtifactKey       string `json:"artifact_key"`
	Title             string `json:"title,omitempty"`
	ContentType       string `json:"content_type,omitempty"`
	Timestamp         string `json:"timestamp"` // RFC3339Nano
}

// InteractionCreatedPayload is the payload for interaction.created events on
// the session channel. Lets open views discover interactions created by
// other actors (API clients, webhooks).
type InteractionCreatedPayload struct {
	Type           string `json:"type"` // always EventTypeInteractionCreated
	InteractionID  string `json:"interaction_id"`
	ChatSessionID  string `json:"chat_session_id"`
	HasAnswer      bool   `json:"has_answer"`
	InputTriggerID string `json:"input_trigger_id,omitempty"`
	Timestamp      string `json:"timestamp"` // RFC3339Nano
}

// QueueStatusPayload is the payload for queue.status transient events.
// JobData replaces whatever the client had before; there is no merge.
type QueueStatusPayload struct {
	Type          string         `json:"type"` // always EventTypeQueueStatus
	InteractionID string         `json:"interaction_id"`
	JobData       map[string]any `json:"job_data"`
	Timestamp     string         `json:"timestamp"` // RFC3339Nano
}
