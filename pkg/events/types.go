// Package events provides real-time event delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// ════════════════════════════════════════════════════════════════
// Channel Layout
// ════════════════════════════════════════════════════════════════
//
// A research interaction is observed through several independent
// channels. Nothing orders events across channels; within one channel
// delivery follows publish order.
//
//   interaction.<id>.status    status.update           (persisted)
//   interaction.<id>           interaction.updated     (persisted)
//                              interaction.completed   (persisted)
//   interaction.<id>.sources   source.created          (persisted)
//   interaction.<id>.queue     queue.status            (transient)
//   session.<sid>.artifacts    artifact.created        (persisted)
//   session.<sid>              interaction.created     (persisted)
//
// Artifacts are scoped to the session, not the interaction: a worker may
// attach an artifact to any interaction of the session it is running in.
//
// Every delivered message carries "channel" and, for persisted events,
// "db_event_id". Clients use db_event_id to drop duplicates and to ask
// for catchup after a reconnect.
//
// Completion is signalled twice on purpose: the worker sends a
// status.update with source "agent_execution_completed" and the hub sends
// interaction.completed when the interaction is marked complete. Either
// may arrive first; clients must treat the first one as authoritative and
// ignore the other.
//
// ════════════════════════════════════════════════════════════════
package events

import "strings"

// Persistent event types (stored in DB + NOTIFY).
const (
	EventTypeStatusUpdate         = "status.update"
	EventTypeInteractionUpdated   = "interaction.updated"
	EventTypeInteractionCompleted = "interaction.completed"
	EventTypeSourceCreated        = "source.created"
	EventTypeArtifactCreated      = "artifact.created"
	EventTypeInteractionCreated   = "interaction.created"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// Queue status is overwritten wholesale on every update; replaying old
	// values on catchup would only show stale counts.
	EventTypeQueueStatus = "queue.status"
)

// Control messages sent by the ConnectionManager itself.
const (
	EventTypeConnectionEstablished = "connection.established"
	EventTypeSubscriptionConfirmed = "subscription.confirmed"
	EventTypeSubscriptionError     = "subscription.error"
	EventTypeCatchupOverflow       = "catchup.overflow"
	EventTypePong                  = "pong"
	EventTypeError                 = "error"
)

// ControlMessage is a hub-generated message that is not a stored event.
type ControlMessage struct {
	Type         string `json:"type"`
	Channel      string `json:"channel,omitempty"`
	ConnectionID string `json:"connection_id,omitempty"`
	Message      string `json:"message,omitempty"`
	HasMore      bool   `json:"has_more,omitempty"`
}

// Status sources with special meaning to clients.
const (
	SourceAgentExecutionCompleted = "agent_execution_completed"
	SourceExecutionCompleted      = "execution_completed"
	SourceInteractionCompleted    = "interaction_completed"
)

// InteractionStatusChannel returns the per-interaction status channel.
// Format: "interaction.{id}.status"
func InteractionStatusChannel(interactionID string) string {
	return "interaction." + interactionID + ".status"
}

// InteractionChannel returns the per-interaction answer/update channel.
// Format: "interaction.{id}"
func InteractionChannel(interactionID string) string {
	return "interaction." + interactionID
}

// InteractionSourcesChannel returns the per-interaction source-creation channel.
// Format: "interaction.{id}.sources"
func InteractionSourcesChannel(interactionID string) string {
	return "interaction." + interactionID + ".sources"
}

// InteractionQueueChannel returns the per-interaction queue-status channel.
// Format: "interaction.{id}.queue"
func InteractionQueueChannel(interactionID string) string {
	return "interaction." + interactionID + ".queue"
}

// SessionArtifactsChannel returns the per-session artifact-creation channel.
// Format: "session.{sid}.artifacts"
func SessionArtifactsChannel(sessionID string) string {
	return "session." + sessionID + ".artifacts"
}

// SessionChannel returns the session-wide interaction discovery channel.
// Format: "session.{sid}"
func SessionChannel(sessionID string) string {
	return "session." + sessionID
}

// ScopeOfChannel extracts the scope id (interaction or session id) from a
// channel name produced by the helpers above. Returns "" for unknown names.
func ScopeOfChannel(channel string) string {
	var rest string
	switch {
	case strings.HasPrefix(channel, "interaction."):
		rest = strings.TrimPrefix(channel, "interaction.")
	case strings.HasPrefix(channel, "session."):
		rest = strings.TrimPrefix(channel, "session.")
	default:
		return ""
	}
	if i := strings.LastIndexByte(rest, '.'); i >= 0 {
		switch rest[i+1:] {
		case "status", "sources", "queue", "artifacts":
			return rest[:i]
		}
	}
	return rest
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "interaction.abc-123.status")
	LastEventID *int   `json:"last_event_id,omitempty"` // For catchup
}
