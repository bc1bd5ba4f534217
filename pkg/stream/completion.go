package stream

import (
	"context"
	"sync"

	"github.com/codeready-toolchain/chatstream/pkg/events"
)

// DefaultCompletionSources are the status sources that mark an interaction
// as finished.
var DefaultCompletionSources = []string{
	events.SourceAgentExecutionCompleted,
	events.SourceExecutionCompleted,
	events.SourceInteractionCompleted,
}

// FinalizeFunc runs once per interaction, on its first completion marker.
type FinalizeFunc func(ctx context.Context, interactionID string, marker Event)

// CompletionDetector recognizes completion markers and fires finalization
// exactly once per interaction, whichever marker arrives first. It is safe
// for concurrent use.
type CompletionDetector struct {
	sources  map[string]bool
	finalize FinalizeFunc

	mu        sync.Mutex
	completed map[string]bool
}

// NewCompletionDetector creates a detector. Empty sources selects
// DefaultCompletionSources; finalize may be nil.
func NewCompletionDetector(sources []string, finalize FinalizeFunc) *CompletionDetector {
	if len(sources) == 0 {
		sources = DefaultCompletionSources
	}
	d := &CompletionDetector{
		sources:   make(map[string]bool, len(sources)),
		finalize:  finalize,
		completed: make(map[string]bool),
	}
	for _, s := range sources {
		d.sources[s] = true
	}
	return d
}

// IsMarker reports whether e signals completion.
func (d *CompletionDetector) IsMarker(e Event) bool {
	if e.InteractionID == "" {
		return false
	}
	if e.Kind == KindInteractionCompleted {
		return true
	}
	return e.Kind == KindStatus && d.sources[e.Source]
}

// Observe returns true when e is the first completion marker of its
// interaction, after running finalization. Later markers return false.
func (d *CompletionDetector) Observe(ctx context.Context, e Event) bool {
	if !d.IsMarker(e) {
		return false
	}
	if !d.MarkCompleted(e.InteractionID) {
		return false
	}
	if d.finalize != nil {
		d.finalize(ctx, e.InteractionID, e)
	}
	return true
}

// MarkCompleted records an interaction as completed without finalization,
// for interactions already complete when first seen. Returns false if it
// was already recorded.
func (d *CompletionDetector) MarkCompleted(interactionID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.completed[interactionID] {
		return false
	}
	d.completed[interactionID] = true
	return true
}

// IsCompleted reports whether a marker for interactionID has been seen.
func (d *CompletionDetector) IsCompleted(interactionID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.completed[interactionID]
}
