// Package stream is the live view core: it multiplexes the hub's broadcast
// channels into one incrementally rendered timeline per interaction.
//
// Events arrive on independent channels with no ordering across them and
// may be duplicated. Everything here tolerates that: the transport drops
// replays it has already delivered, the timeline is append-only, the
// completion detector acts on the first marker only, and resource
// notifications are deduplicated by natural id.
package stream

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/codeready-toolchain/chatstream/pkg/events"
)

// Kind is the normalized type of an event.
type Kind string

// Event kinds.
const (
	KindStatus               Kind = "status"
	KindInteractionUpdated   Kind = "interaction_updated"
	KindInteractionCompleted Kind = "interaction_completed"
	KindSourceCreated        Kind = "source_created"
	KindArtifactCreated      Kind = "artifact_created"
	KindInteractionCreated   Kind = "interaction_created"
	KindQueueStatus          Kind = "queue_status"
	KindCatchupOverflow      Kind = "catchup_overflow"
	KindUnknown              Kind = "unknown"
)

// ChannelKind identifies which of the broadcast channels an event came from.
type ChannelKind string

// Channel kinds, one per channel family in pkg/events.
const (
	ChannelStatus      ChannelKind = "status"
	ChannelInteraction ChannelKind = "interaction"
	ChannelSources     ChannelKind = "sources"
	ChannelQueue       ChannelKind = "queue"
	ChannelArtifacts   ChannelKind = "artifacts"
	ChannelSession     ChannelKind = "session"
	ChannelUnknown     ChannelKind = ""
)

var typeKinds = map[string]Kind{
	events.EventTypeStatusUpdate:         KindStatus,
	events.EventTypeInteractionUpdated:   KindInteractionUpdated,
	events.EventTypeInteractionCompleted: KindInteractionCompleted,
	events.EventTypeSourceCreated:        KindSourceCreated,
	events.EventTypeArtifactCreated:      KindArtifactCreated,
	events.EventTypeInteractionCreated:   KindInteractionCreated,
	events.EventTypeQueueStatus:          KindQueueStatus,
	events.EventTypeCatchupOverflow:      KindCatchupOverflow,
}

// Kind to assume when a payload carries no type.
var channelDefaultKinds = map[ChannelKind]Kind{
	ChannelStatus:    KindStatus,
	ChannelSources:   KindSourceCreated,
	ChannelArtifacts: KindArtifactCreated,
	ChannelQueue:     KindQueueStatus,
	ChannelSession:   KindInteractionCreated,
}

// ChannelName returns the broadcast channel for a kind and scope id.
func ChannelName(kind ChannelKind, scopeID string) string {
	switch kind {
	case ChannelStatus:
		return events.InteractionStatusChannel(scopeID)
	case ChannelInteraction:
		return events.InteractionChannel(scopeID)
	case ChannelSources:
		return events.InteractionSourcesChannel(scopeID)
	case ChannelQueue:
		return events.InteractionQueueChannel(scopeID)
	case ChannelArtifacts:
		return events.SessionArtifactsChannel(scopeID)
	case ChannelSession:
		return events.SessionChannel(scopeID)
	default:
		return ""
	}
}

// ParseChannel splits a channel name into its kind and scope id.
// Unknown names yield ChannelUnknown and an empty scope.
func ParseChannel(channel string) (ChannelKind, string) {
	scope := events.ScopeOfChannel(channel)
	if scope == "" {
		return ChannelUnknown, ""
	}
	isSession := strings.HasPrefix(channel, "session.")
	switch suffix := strings.TrimPrefix(strings.TrimPrefix(channel, "interaction."+scope), "session."+scope); {
	case suffix == "" && isSession:
		return ChannelSession, scope
	case suffix == "":
		return ChannelInteraction, scope
	case suffix == ".status" && !isSession:
		return ChannelStatus, scope
	case suffix == ".sources" && !isSession:
		return ChannelSources, scope
	case suffix == ".queue" && !isSession:
		return ChannelQueue, scope
	case suffix == ".artifacts" && isSession:
		return ChannelArtifacts, scope
	}
	return ChannelUnknown, ""
}

// RawEvent is one message as delivered by a Transport.
type RawEvent struct {
	Channel string
	Payload map[string]any
}

// Event is the normalized form of every broadcast message.
type Event struct {
	Kind          Kind
	Channel       string
	ChannelKind   ChannelKind
	InteractionID string
	SessionID     string
	Source        string
	Message       string
	Timestamp     time.Time
	Significant   bool
	CreateEvent   bool
	Metadata      map[string]any
	Payload       map[string]any
	DBEventID     int64
}

// Classify normalizes a raw event. It never fails and never filters:
// unknown types come back as KindUnknown with the payload intact.
func Classify(raw RawEvent, now time.Time) Event {
	payload := raw.Payload
	if payload == nil {
		payload = map[string]any{}
	}

	channel := raw.Channel
	if channel == "" {
		channel = stringField(payload, "channel")
	}
	chKind, scope := ParseChannel(channel)

	e := Event{
		Channel:     channel,
		ChannelKind: chKind,
		Source:      stringField(payload, "source"),
		Message:     stringField(payload, "message"),
		Significant: boolField(payload, "is_significant"),
		CreateEvent: boolField(payload, "create_event"),
		Metadata:    map[string]any{},
		Payload:     payload,
		DBEventID:   intField(payload, "db_event_id"),
	}

	if t, ok := typeKinds[stringField(payload, "type")]; ok {
		e.Kind = t
	} else if _, hasType := payload["type"]; !hasType && channelDefaultKinds[chKind] != "" {
		e.Kind = channelDefaultKinds[chKind]
	} else {
		e.Kind = KindUnknown
	}

	if md, ok := payload["metadata"].(map[string]any); ok {
		for k, v := range md {
			e.Metadata[k] = v
		}
	}

	e.Timestamp = now
	if rawTS := stringField(payload, "timestamp"); rawTS != "" {
		if ts, err := time.Parse(time.RFC3339Nano, rawTS); err == nil {
			e.Timestamp = ts
		} else {
			e.Metadata["raw_timestamp"] = rawTS
		}
	}

	e.InteractionID = firstString(payload, "interaction_id", "chat_interaction_id")
	e.SessionID = firstString(payload, "session_id", "chat_session_id")
	switch chKind {
	case ChannelStatus, ChannelInteraction, ChannelSources, ChannelQueue:
		if e.InteractionID == "" {
			e.InteractionID = scope
		}
	case ChannelArtifacts, ChannelSession:
		if e.SessionID == "" {
			e.SessionID = scope
		}
	}

	if e.Kind == KindInteractionCompleted {
		e.Source = events.SourceInteractionCompleted
		e.Significant = true
		if execID := stringField(payload, "execution_id"); execID != "" {
			e.Metadata["execution_id"] = execID
		}
	}
	return e
}

func stringField(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case nil:
		return ""
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := stringField(m, k); s != "" {
			return s
		}
	}
	return ""
}

// boolField accepts true, "true", "1" and 1.
func boolField(m map[string]any, key string) bool {
	switch v := m[key].(type) {
	case bool:
		return v
	case string:
		b, err := strconv.ParseBool(v)
		return err == nil && b
	case float64:
		return v == 1
	case int:
		return v == 1
	case int64:
		return v == 1
	case json.Number:
		return v.String() == "1"
	default:
		return false
	}
}

func intField(m map[string]any, key string) int64 {
	switch v := m[key].(type) {
	case float64:
		return int64(v)
	case int:
		return int64(v)
	case int64:
		return v
	case json.Number:
		n, _ := v.Int64()
		return n
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	default:
		return 0
	}
}
