package stream

import (
	"maps"
	"strconv"
	"time"
)

// Shape is how a step is presented.
type Shape int

const (
	// ShapeDetail is a compact, secondary line.
	ShapeDetail Shape = iota
	// ShapeMilestone is a prominent step of its own.
	ShapeMilestone
)

func (s Shape) String() string {
	if s == ShapeMilestone {
		return "milestone"
	}
	return "detail"
}

// Step is one entry of a timeline. Steps are never modified after Append.
type Step struct {
	Seq int
	// Key groups steps describing the same piece of work (metadata step_key
	// or step_id). Supersedes is the Seq of the previous step with the same
	// Key, or 0. Renderers may collapse superseded steps; the timeline keeps
	// them.
	Key         string
	Supersedes  int
	Source      string
	Message     string
	Segments    []Segment
	Timestamp   time.Time
	Significant bool
	Shape       Shape
	Duration    time.Duration
	Metadata    map[string]any
}

// RenderTarget receives every appended step.
type RenderTarget interface {
	RenderStep(interactionID string, step Step)
}

// RenderFunc adapts a function to RenderTarget.
type RenderFunc func(interactionID string, step Step)

// RenderStep calls f.
func (f RenderFunc) RenderStep(interactionID string, step Step) { f(interactionID, step) }

// Timeline is the append-only step history of one interaction. It is not
// safe for concurrent use; the Watcher loop owns it.
type Timeline struct {
	interactionID string
	target        RenderTarget
	steps         []Step
	lastByKey     map[string]int
	dbEventIDs    map[int64]struct{}
}

// NewTimeline creates an empty timeline rendering to target (may be nil).
func NewTimeline(interactionID string, target RenderTarget) *Timeline {
	return &Timeline{
		interactionID: interactionID,
		target:        target,
		lastByKey:     make(map[string]int),
		dbEventIDs:    make(map[int64]struct{}),
	}
}

// InteractionID returns the interaction the timeline belongs to.
func (t *Timeline) InteractionID() string { return t.interactionID }

// Append adds exactly one step for e, after every earlier step regardless of
// timestamps, and renders it.
func (t *Timeline) Append(e Event) Step {
	step := Step{
		Seq:         len(t.steps) + 1,
		Key:         firstString(e.Metadata, "step_key", "step_id"),
		Source:      e.Source,
		Message:     e.Message,
		Segments:    Highlight(e.Message),
		Timestamp:   e.Timestamp,
		Significant: e.Significant,
		Shape:       ShapeDetail,
		Duration:    metadataDuration(e.Metadata),
		Metadata:    maps.Clone(e.Metadata),
	}
	if step.Significant {
		step.Shape = ShapeMilestone
	}
	if step.Key != "" {
		step.Supersedes = t.lastByKey[step.Key]
		t.lastByKey[step.Key] = step.Seq
	}

	if e.DBEventID > 0 {
		t.dbEventIDs[e.DBEventID] = struct{}{}
	}
	t.steps = append(t.steps, step)
	if t.target != nil {
		t.target.RenderStep(t.interactionID, step)
	}
	return step
}

// Has reports whether a step was already appended for the persisted event.
func (t *Timeline) Has(dbEventID int64) bool {
	_, ok := t.dbEventIDs[dbEventID]
	return ok
}

// Len returns the number of steps.
func (t *Timeline) Len() int { return len(t.steps) }

// Steps returns a copy of the history.
func (t *Timeline) Steps() []Step {
	out := make([]Step, len(t.steps))
	copy(out, t.steps)
	return out
}

// Replay renders the full history to target in order.
func (t *Timeline) Replay(target RenderTarget) {
	for _, s := range t.steps {
		target.RenderStep(t.interactionID, s)
	}
}

// metadataDuration reads duration_ms (milliseconds) or duration (seconds, or
// a Go duration string such as "1.5s").
func metadataDuration(md map[string]any) time.Duration {
	if v, ok := md["duration_ms"]; ok {
		if f, ok := toFloat(v); ok {
			return time.Duration(f * float64(time.Millisecond))
		}
	}
	switch v := md["duration"].(type) {
	case string:
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return time.Duration(f * float64(time.Second))
		}
	default:
		if f, ok := toFloat(v); ok {
			return time.Duration(f * float64(time.Second))
		}
	}
	return 0
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
