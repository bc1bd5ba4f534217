package models

import "time"

// InteractionStep is a status update that the worker asked to keep
// (create_event=true). Steps are listed in sequence order.
type InteractionStep struct {
	ID             int64          `json:"id"`
	InteractionID  string         `json:"interaction_id"`
	SequenceNumber int            `json:"sequence_number"`
	Source         string         `json:"source"`
	Message        string         `json:"message"`
	IsSignificant  bool           `json:"is_significant"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

// StatusUpdateRequest is what a research worker posts for every step.
type StatusUpdateRequest struct {
	Source        string         `json:"source"`
	Message       string         `json:"message"`
	IsSignificant bool           `json:"is_significant"`
	CreateEvent   bool           `json:"create_event,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// StepListResponse contains the persisted steps of an interaction.
type StepListResponse struct {
	Steps []*InteractionStep `json:"steps"`
}

// QueueStatus is the latest job-queue snapshot for an interaction. It is
// replaced wholesale on every update.
type QueueStatus struct {
	InteractionID string         `json:"interaction_id"`
	JobData       map[string]any `json:"job_data"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// CompleteInteractionRequest optionally carries the execution that finished.
type CompleteInteractionRequest struct {
	ExecutionID string `json:"execution_id,omitempty"`
}

// CompleteInteractionResponse reports whether this call performed the
// completion transition.
type CompleteInteractionResponse struct {
	Interaction  *Interaction `json:"interaction"`
	Transitioned bool         `json:"transitioned"`
}
