package stream

import "maps"

// Resource is a source or artifact announced on a broadcast channel.
type Resource struct {
	// Key is the natural id used for deduplication: id, else url_hash,
	// else url, else artifact_key.
	Key     string
	Payload map[string]any
}

// InteractionState is the view's display state for one interaction. Once
// Completed, only the authoritative answer may still change it.
type InteractionState struct {
	ID          string
	SessionID   string
	Question    string
	Answer      string
	ExecutionID string
	Streaming   bool
	Completed   bool
	Queue       map[string]any
	Sources     []Resource
	Artifacts   []Resource

	sourceKeys   map[string]bool
	artifactKeys map[string]bool
}

func newInteractionState(id, sessionID string) *InteractionState {
	return &InteractionState{
		ID:           id,
		SessionID:    sessionID,
		sourceKeys:   make(map[string]bool),
		artifactKeys: make(map[string]bool),
	}
}

// clone returns a copy that shares nothing mutable with s.
func (s *InteractionState) clone() InteractionState {
	c := *s
	c.Queue = maps.Clone(s.Queue)
	c.Sources = append([]Resource(nil), s.Sources...)
	c.Artifacts = append([]Resource(nil), s.Artifacts...)
	c.sourceKeys = nil
	c.artifactKeys = nil
	return c
}

// mergeFields applies an interaction.updated field set. Returns whether
// anything visible changed.
func (s *InteractionState) mergeFields(fields map[string]any) bool {
	final := boolField(fields, "final")
	if s.Completed && !final {
		return false
	}
	changed := false
	if v, ok := fields["answer"].(string); ok && v != s.Answer {
		s.Answer = v
		if !s.Completed {
			s.Streaming = true
		}
		changed = true
	}
	if s.Completed {
		return changed
	}
	if v, ok := fields["execution_id"].(string); ok && v != s.ExecutionID {
		s.ExecutionID = v
		changed = true
	}
	if v, ok := fields["question"].(string); ok && v != s.Question {
		s.Question = v
		changed = true
	}
	return changed
}

// addSource records a source unless its natural id was seen before.
func (s *InteractionState) addSource(payload map[string]any) bool {
	key := firstString(payload, "id", "url_hash", "url")
	if key == "" || s.sourceKeys[key] {
		return false
	}
	s.sourceKeys[key] = true
	s.Sources = append(s.Sources, Resource{Key: key, Payload: payload})
	return true
}

// addArtifact records an artifact unless its natural id was seen before.
func (s *InteractionState) addArtifact(payload map[string]any) bool {
	key := firstString(payload, "id", "artifact_key")
	if key == "" || s.artifactKeys[key] {
		return false
	}
	s.artifactKeys[key] = true
	s.Artifacts = append(s.Artifacts, Resource{Key: key, Payload: payload})
	return true
}
