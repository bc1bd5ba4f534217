package stream

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTarget struct {
	steps []Step
	ids   []string
}

func (r *recordingTarget) RenderStep(interactionID string, step Step) {
	r.ids = append(r.ids, interactionID)
	r.steps = append(r.steps, step)
}

func statusEvent(message string, significant bool, ts time.Time, md map[string]any) Event {
	if md == nil {
		md = map[string]any{}
	}
	return Event{
		Kind:          KindStatus,
		InteractionID: "42",
		Source:        "researcher",
		Message:       message,
		Significant:   significant,
		Timestamp:     ts,
		Metadata:      md,
	}
}

func TestTimeline_AppendAddsExactlyOneStep(t *testing.T) {
	target := &recordingTarget{}
	tl := NewTimeline("42", target)

	for i := 0; i < 5; i++ {
		tl.Append(statusEvent("step", i%2 == 0, testNow, nil))
		assert.Equal(t, i+1, tl.Len())
	}
	require.Len(t, target.steps, 5)
	for i, s := range target.steps {
		assert.Equal(t, i+1, s.Seq)
		assert.Equal(t, "42", target.ids[i])
	}
}

func TestTimeline_HasTracksPersistedEvents(t *testing.T) {
	tl := NewTimeline("42", nil)
	persisted := statusEvent("persisted", false, testNow, nil)
	persisted.DBEventID = 7
	tl.Append(persisted)
	tl.Append(statusEvent("transient", false, testNow, nil))

	assert.True(t, tl.Has(7))
	assert.False(t, tl.Has(8))
	assert.False(t, tl.Has(0))
}

func TestTimeline_ArrivalOrderNotTimestampOrder(t *testing.T) {
	tl := NewTimeline("42", nil)
	tl.Append(statusEvent("later", false, testNow.Add(time.Minute), nil))
	tl.Append(statusEvent("earlier", false, testNow, nil))

	steps := tl.Steps()
	require.Len(t, steps, 2)
	assert.Equal(t, "later", steps[0].Message)
	assert.Equal(t, "earlier", steps[1].Message)
}

func TestTimeline_Shape(t *testing.T) {
	tl := NewTimeline("42", nil)

	milestone := tl.Append(statusEvent("Found 3 key insights", true, testNow, nil))
	assert.Equal(t, ShapeMilestone, milestone.Shape)

	// No is_significant flag: detail, whatever the text says.
	e := Classify(RawEvent{
		Channel: "interaction.42.status",
		Payload: map[string]any{"type": "status.update", "message": "Research complete"},
	}, testNow)
	detail := tl.Append(e)
	assert.Equal(t, ShapeDetail, detail.Shape)
	assert.Equal(t, "detail", detail.Shape.String())
}

func TestTimeline_EarlierStepsNeverMutated(t *testing.T) {
	tl := NewTimeline("42", nil)
	md := map[string]any{"step_key": "search"}
	first := tl.Append(statusEvent("Searching", false, testNow, md))
	md["step_key"] = "changed"

	second := tl.Append(statusEvent("Searching again", false, testNow, map[string]any{"step_key": "search"}))

	steps := tl.Steps()
	assert.Equal(t, first, steps[0])
	assert.Equal(t, "search", steps[0].Metadata["step_key"])
	assert.Equal(t, 0, steps[0].Supersedes)
	assert.Equal(t, first.Seq, second.Supersedes)
}

func TestTimeline_StepsReturnsCopy(t *testing.T) {
	tl := NewTimeline("42", nil)
	tl.Append(statusEvent("one", false, testNow, nil))

	steps := tl.Steps()
	steps[0].Message = "mutated"
	assert.Equal(t, "one", tl.Steps()[0].Message)
}

func TestTimeline_Duration(t *testing.T) {
	tests := []struct {
		md   map[string]any
		want time.Duration
	}{
		{map[string]any{"duration_ms": float64(1500)}, 1500 * time.Millisecond},
		{map[string]any{"duration": float64(2)}, 2 * time.Second},
		{map[string]any{"duration": "750ms"}, 750 * time.Millisecond},
		{map[string]any{"duration": "1.5"}, 1500 * time.Millisecond},
		{map[string]any{"duration": "soon"}, 0},
		{map[string]any{}, 0},
	}
	tl := NewTimeline("42", nil)
	for _, tt := range tests {
		assert.Equal(t, tt.want, tl.Append(statusEvent("x", false, testNow, tt.md)).Duration)
	}
}

func TestTimeline_SegmentsAndReplay(t *testing.T) {
	tl := NewTimeline("42", nil)
	s := tl.Append(statusEvent("Reading https://go.dev", false, testNow, nil))
	require.Len(t, s.Segments, 2)
	assert.Equal(t, SegmentURL, s.Segments[1].Kind)

	tl.Append(statusEvent("Done", true, testNow, nil))

	target := &recordingTarget{}
	tl.Replay(target)
	assert.Equal(t, tl.Steps(), target.steps)
}

func TestTimelines_AreIndependent(t *testing.T) {
	a := NewTimeline("a", nil)
	b := NewTimeline("b", nil)
	a.Append(statusEvent("one", false, testNow, nil))
	a.Append(statusEvent("two", false, testNow, nil))
	s := b.Append(statusEvent("first of b", false, testNow, nil))
	assert.Equal(t, 1, s.Seq)
	assert.Equal(t, 2, a.Len())
}
