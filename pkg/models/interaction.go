package models

import "time"

// Interaction is one question/answer exchange inside a chat session.
type Interaction struct {
	ID             string     `json:"id"`
	ChatSessionID  string     `json:"chat_session_id"`
	Question       string     `json:"question"`
	Answer         string     `json:"answer"`
	ExecutionID    string     `json:"execution_id,omitempty"`
	InputTriggerID string     `json:"input_trigger_id,omitempty"`
	Completed      bool       `json:"completed"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

// HasAnswer reports whether any answer text has been stored.
func (i *Interaction) HasAnswer() bool {
	return i.Answer != ""
}

// CreateInteractionRequest contains fields for creating an interaction.
type CreateInteractionRequest struct {
	ChatSessionID  string `json:"chat_session_id"`
	Question       string `json:"question"`
	InputTriggerID string `json:"input_trigger_id,omitempty"`
}

// UpdateInteractionRequest merges answer and execution id into an
// interaction. Nil fields are left unchanged. Final marks an authoritative
// answer replacement, the only update accepted after completion.
type UpdateInteractionRequest struct {
	Answer      *string `json:"answer,omitempty"`
	ExecutionID *string `json:"execution_id,omitempty"`
	Final       bool    `json:"final,omitempty"`
}

// InteractionListResponse contains the interactions of a session, oldest first.
type InteractionListResponse struct {
	Interactions []*Interaction `json:"interactions"`
}
