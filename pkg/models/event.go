package models

import "time"

// Event is a persisted broadcast event, as stored in the events table.
type Event struct {
	ID        int            `json:"id"`
	ScopeID   string         `json:"scope_id"`
	Channel   string         `json:"channel"`
	Payload   map[string]any `json:"payload"`
	CreatedAt time.Time      `json:"created_at"`
}

// EventsResponse contains list of events since a given ID
type EventsResponse struct {
	Events []*Event `json:"events"`
}
