package render

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/chatstream/pkg/models"
	"github.com/codeready-toolchain/chatstream/pkg/stream"
)

// syncBuffer is a bytes.Buffer safe for the Run goroutine and the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type fakeHub struct {
	interactions map[string]*models.Interaction
	sources      map[string][]*models.Source
	steps        map[string][]*models.InteractionStep
	artifacts    map[string][]*models.Artifact
}

func (h *fakeHub) GetInteraction(_ context.Context, id string) (*models.Interaction, error) {
	return h.interactions[id], nil
}

func (h *fakeHub) ListSources(_ context.Context, id string) ([]*models.Source, error) {
	return h.sources[id], nil
}

func (h *fakeHub) ListSteps(_ context.Context, id string) ([]*models.InteractionStep, error) {
	return h.steps[id], nil
}

func (h *fakeHub) ListArtifacts(_ context.Context, sessionID string) ([]*models.Artifact, error) {
	return h.artifacts[sessionID], nil
}

type fakeState struct {
	state stream.InteractionState
}

func (f *fakeState) Snapshot(_ context.Context, id string) (stream.InteractionState, bool, error) {
	return f.state, f.state.ID == id, nil
}

func newTestTerminal(t *testing.T, hub Hub, opts ...Option) (*Terminal, *syncBuffer) {
	t.Helper()
	out := &syncBuffer{}
	term, err := NewTerminal(out, hub, append([]Option{WithAnswerStyle("notty"), WithWidth(80)}, opts...)...)
	require.NoError(t, err)
	return term, out
}

func TestTerminal_RenderStep(t *testing.T) {
	term, out := newTestTerminal(t, nil)
	tl := stream.NewTimeline("int-1", term)

	ts := time.Date(2026, 1, 2, 10, 11, 12, 0, time.UTC)
	tl.Append(stream.Event{
		Source: "planner", Message: "Planning research", Significant: true, Timestamp: ts,
		Metadata: map[string]any{"duration_ms": 1500},
	})
	tl.Append(stream.Event{
		Source: "searxng_search", Message: `Searching "market size" on example.com`, Timestamp: ts,
		Metadata: map[string]any{"step_key": "search"},
	})
	tl.Append(stream.Event{
		Source: "searxng_search", Message: "Fetched https://example.com/report", Timestamp: ts,
		Metadata: map[string]any{"step_key": "search"},
	})

	text := out.String()
	assert.Equal(t, 1, strings.Count(text, "interaction int-1"))
	assert.Contains(t, text, "10:11:12 ● Planning research [planner] 1.5s")
	assert.Contains(t, text, `10:11:12   · Searching "market size" on example.com [searxng_search]`)
	assert.Contains(t, text, "↳ Fetched https://example.com/report [searxng_search]")
}

func TestTerminal_HeaderOnInteractionSwitch(t *testing.T) {
	term, out := newTestTerminal(t, nil)
	step := stream.Step{Seq: 1, Message: "x", Segments: stream.Highlight("x")}

	term.RenderStep("a", step)
	term.RenderStep("a", step)
	term.RenderStep("b", step)
	term.RenderStep("a", step)

	text := out.String()
	assert.Equal(t, 2, strings.Count(text, "interaction a"))
	assert.Equal(t, 1, strings.Count(text, "interaction b"))
}

func TestTerminal_AnswerFromLiveState(t *testing.T) {
	state := &fakeState{state: stream.InteractionState{ID: "int-1", Answer: "Partial", Streaming: true}}
	term, out := newTestTerminal(t, nil, WithStateSource(state))
	ctx := context.Background()

	term.Refresh(ctx, stream.TabAnswer, "int-1")
	term.Refresh(ctx, stream.TabAnswer, "int-1")
	term.Flush(ctx)
	assert.Equal(t, 1, strings.Count(out.String(), "answer streaming (7 chars)"))

	state.state = stream.InteractionState{ID: "int-1", Answer: "Acme leads the market.", Completed: true}
	term.Refresh(ctx, stream.TabAnswer, "int-1")
	term.Flush(ctx)
	term.Refresh(ctx, stream.TabAnswer, "int-1")
	term.Flush(ctx)

	text := out.String()
	assert.Contains(t, text, "Answer")
	assert.Equal(t, 1, strings.Count(text, "Acme leads the market."))
}

func TestTerminal_AnswerFromHub(t *testing.T) {
	hub := &fakeHub{interactions: map[string]*models.Interaction{
		"int-1": {ID: "int-1", Answer: "Stored answer", Completed: true},
	}}
	term, out := newTestTerminal(t, hub)

	term.Refresh(context.Background(), stream.TabAnswer, "int-1")
	term.Flush(context.Background())
	assert.Contains(t, out.String(), "Stored answer")
}

func TestTerminal_ResourceTabsPrintOnlyNewEntries(t *testing.T) {
	hub := &fakeHub{
		interactions: map[string]*models.Interaction{
			"int-1": {ID: "int-1", ChatSessionID: "s1", Question: "Who leads?"},
		},
		sources: map[string][]*models.Source{
			"int-1": {{ID: "src-1", URL: "https://example.com/a", Title: "Report A", Domain: "example.com"}},
		},
		artifacts: map[string][]*models.Artifact{
			"s1": {
				{ID: "a-1", ArtifactKey: "table", Title: "Vendor table", ChatInteractionID: "int-1"},
				{ID: "a-2", ArtifactKey: "other", ChatInteractionID: "int-9"},
			},
		},
		steps: map[string][]*models.InteractionStep{
			"int-1": {{SequenceNumber: 1}, {SequenceNumber: 2}},
		},
	}
	term, out := newTestTerminal(t, hub)
	ctx := context.Background()

	for _, tab := range []stream.Tab{stream.TabInteractions, stream.TabSources, stream.TabArtifacts, stream.TabSteps} {
		term.Refresh(ctx, tab, "int-1")
	}
	term.Flush(ctx)

	hub.sources["int-1"] = append(hub.sources["int-1"],
		&models.Source{ID: "src-2", URL: "https://example.org/b", Domain: "example.org"})
	term.Refresh(ctx, stream.TabSources, "int-1")
	term.Refresh(ctx, stream.TabArtifacts, "int-1")
	term.Refresh(ctx, stream.TabSteps, "int-1")
	term.Flush(ctx)

	text := out.String()
	assert.Contains(t, text, "? Who leads?")
	assert.Equal(t, 1, strings.Count(text, "Report A"))
	assert.Contains(t, text, "example.org https://example.org/b https://example.org/b")
	assert.Equal(t, 1, strings.Count(text, "Vendor table"))
	assert.NotContains(t, text, "other")
	assert.Equal(t, 1, strings.Count(text, "2 steps saved"))
}

func TestTerminal_RunServesRefreshes(t *testing.T) {
	state := &fakeState{state: stream.InteractionState{ID: "int-1", Answer: "Done.", Completed: true}}
	term, out := newTestTerminal(t, nil, WithStateSource(state))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go term.Run(ctx)

	term.Refresh(ctx, stream.TabAnswer, "int-1")
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Done.")
	}, 2*time.Second, 10*time.Millisecond)
}

func TestFanout(t *testing.T) {
	var got []string
	rec := stream.RenderFunc(func(id string, s stream.Step) { got = append(got, id+":"+s.Message) })

	Fanout{rec, nil, rec}.RenderStep("int-1", stream.Step{Message: "hello"})
	assert.Equal(t, []string{"int-1:hello", "int-1:hello"}, got)
}
