package journal

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/chatstream/pkg/stream"
)

type collector struct {
	steps []stream.Step
}

func (c *collector) RenderStep(_ string, s stream.Step) { c.steps = append(c.steps, s) }

func openTemp(t *testing.T, path string) *Journal {
	t.Helper()
	j, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func TestJournal_ReplayMatchesLiveTimeline(t *testing.T) {
	j := openTemp(t, ":memory:")
	live := &collector{}
	tl := stream.NewTimeline("int-1", stream.RenderFunc(func(id string, s stream.Step) {
		live.RenderStep(id, s)
		j.RenderStep(id, s)
	}))

	ts := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	tl.Append(stream.Event{Source: "planner", Message: "Plan ready", Significant: true, Timestamp: ts})
	tl.Append(stream.Event{Source: "search", Message: "Searching example.com", Timestamp: ts.Add(-time.Minute),
		Metadata: map[string]any{"step_key": "s", "duration_ms": float64(250)}})
	tl.Append(stream.Event{Source: "search", Message: "Searching again", Timestamp: ts,
		Metadata: map[string]any{"step_key": "s"}})

	replayed := &collector{}
	n, err := j.Replay(context.Background(), "int-1", replayed)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	require.Len(t, replayed.steps, 3)

	for i, want := range live.steps {
		got := replayed.steps[i]
		assert.Equal(t, want.Seq, got.Seq)
		assert.Equal(t, want.Key, got.Key)
		assert.Equal(t, want.Supersedes, got.Supersedes)
		assert.Equal(t, want.Message, got.Message)
		assert.Equal(t, want.Shape, got.Shape)
		assert.Equal(t, want.Duration, got.Duration)
		assert.Equal(t, want.Segments, got.Segments)
		assert.True(t, want.Timestamp.Equal(got.Timestamp))
	}
	assert.Equal(t, 2, replayed.steps[2].Supersedes)
	assert.Equal(t, float64(250), replayed.steps[1].Metadata["duration_ms"])
}

func TestJournal_AppendOnly(t *testing.T) {
	j := openTemp(t, ":memory:")
	ctx := context.Background()

	require.NoError(t, j.Append(ctx, "int-1", stream.Step{Seq: 1, Message: "first"}))
	assert.Error(t, j.Append(ctx, "int-1", stream.Step{Seq: 1, Message: "rewrite"}))

	c := &collector{}
	_, err := j.Replay(ctx, "int-1", c)
	require.NoError(t, err)
	require.Len(t, c.steps, 1)
	assert.Equal(t, "first", c.steps[0].Message)
}

func TestJournal_ReplaysLatestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "journal.db")
	ctx := context.Background()

	first, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, first.Append(ctx, "int-1", stream.Step{Seq: 1, Message: "old run"}))
	require.NoError(t, first.Close())

	second := openTemp(t, path)
	assert.NotEqual(t, first.RunID(), second.RunID())
	require.NoError(t, second.Append(ctx, "int-1", stream.Step{Seq: 1, Message: "new run"}))
	require.NoError(t, second.Append(ctx, "int-1", stream.Step{Seq: 2, Message: "new run 2"}))

	c := &collector{}
	n, err := second.Replay(ctx, "int-1", c)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "new run", c.steps[0].Message)

	summaries, err := second.Interactions(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "int-1", summaries[0].InteractionID)
	assert.Equal(t, 3, summaries[0].Steps)
}

func TestJournal_ReplayUnknown(t *testing.T) {
	j := openTemp(t, ":memory:")
	_, err := j.Replay(context.Background(), "missing", &collector{})
	assert.ErrorIs(t, err, ErrNoSteps)
}
