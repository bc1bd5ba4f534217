package api

// CreateInteractionRequest is the HTTP request body for
// POST /api/v1/sessions/:id/interactions. The session comes from the path.
type CreateInteractionRequest struct {
	Question       string `json:"question"`
	InputTriggerID string `json:"input_trigger_id,omitempty"`
}

// SetQueueStatusRequest is the HTTP request body for
// PUT /api/v1/interactions/:id/queue.
type SetQueueStatusRequest struct {
	JobData map[string]any `json:"job_data"`
}
