package stream

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/codeready-toolchain/chatstream/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type refresh struct {
	Tab           Tab
	InteractionID string
}

type recordingViews struct {
	mu        sync.Mutex
	refreshes []refresh
}

func (v *recordingViews) Refresh(_ context.Context, tab Tab, interactionID string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.refreshes = append(v.refreshes, refresh{tab, interactionID})
}

func (v *recordingViews) tabs() []refresh {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]refresh(nil), v.refreshes...)
}

func (v *recordingViews) count(tab Tab) int {
	n := 0
	for _, r := range v.tabs() {
		if r.Tab == tab {
			n++
		}
	}
	return n
}

type fakeAnswers struct {
	mu     sync.Mutex
	answer string
	err    error
	calls  int
}

func (f *fakeAnswers) FinalAnswer(context.Context, string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.answer, f.err
}

func (f *fakeAnswers) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type watcherEnv struct {
	w         *Watcher
	transport *MemoryTransport
	views     *recordingViews
	answers   *fakeAnswers
	target    *syncTarget
}

type syncTarget struct {
	mu    sync.Mutex
	steps []Step
}

func (s *syncTarget) RenderStep(_ string, step Step) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.steps = append(s.steps, step)
}

func newWatcherEnv(t *testing.T, mutate func(*WatcherConfig)) *watcherEnv {
	t.Helper()
	env := &watcherEnv{
		transport: NewMemoryTransport(),
		views:     &recordingViews{},
		answers:   &fakeAnswers{answer: "Authoritative answer"},
		target:    &syncTarget{},
	}
	cfg := WatcherConfig{
		Transport: env.transport,
		Views:     env.views,
		Answers:   env.answers,
		Target:    env.target,
		Now:       func() time.Time { return testNow },
	}
	if mutate != nil {
		mutate(&cfg)
	}
	env.w = NewWatcher(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = env.w.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return env
}

func (env *watcherEnv) snapshot(t *testing.T, id string) InteractionState {
	t.Helper()
	st, ok, err := env.w.Snapshot(context.Background(), id)
	require.NoError(t, err)
	require.True(t, ok, "no state for %s", id)
	return st
}

func (env *watcherEnv) status(id, source, message string, significant bool) {
	env.transport.Publish(events.InteractionStatusChannel(id), map[string]any{
		"type":           events.EventTypeStatusUpdate,
		"interaction_id": id,
		"source":         source,
		"message":        message,
		"is_significant": significant,
	})
}

func TestWatcher_CompletionScenario(t *testing.T) {
	env := newWatcherEnv(t, nil)
	ctx := context.Background()
	require.NoError(t, env.w.Open(ctx, "42", "s1"))

	env.status("42", "searxng_search", "Searching for 'go channels'", true)
	env.status("42", events.SourceAgentExecutionCompleted, "Research finished", false)

	steps, err := env.w.Steps(ctx, "42")
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, ShapeMilestone, steps[0].Shape)
	assert.Equal(t, ShapeDetail, steps[1].Shape)

	assert.True(t, env.w.IsCompleted("42"))
	st := env.snapshot(t, "42")
	assert.True(t, st.Completed)
	assert.False(t, st.Streaming)

	require.Eventually(t, func() bool {
		return env.snapshot(t, "42").Answer == "Authoritative answer"
	}, 2*time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool { return env.views.count(TabArtifacts) == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, env.views.count(TabAnswer))
	assert.Equal(t, 1, env.views.count(TabSources))
	assert.Equal(t, 1, env.views.count(TabSteps))
}

func TestWatcher_CompletionFiresOnceWhicheverArrivesFirst(t *testing.T) {
	env := newWatcherEnv(t, nil)
	ctx := context.Background()
	require.NoError(t, env.w.Open(ctx, "42", ""))

	env.transport.Publish(events.InteractionChannel("42"), map[string]any{
		"type": events.EventTypeInteractionCompleted, "interaction_id": "42", "execution_id": "exec-1",
	})
	env.status("42", events.SourceAgentExecutionCompleted, "done", false)

	st := env.snapshot(t, "42")
	assert.True(t, st.Completed)
	assert.Equal(t, "exec-1", st.ExecutionID)

	require.Eventually(t, func() bool { return env.views.count(TabArtifacts) == 1 }, 2*time.Second, 10*time.Millisecond)
	// Give a second finalization a chance to show up, then make sure it did not.
	_ = env.snapshot(t, "42")
	assert.Equal(t, 1, env.answers.callCount())
}

func TestWatcher_FinalAnswerFailureKeepsStreamedContent(t *testing.T) {
	env := newWatcherEnv(t, nil)
	env.answers.err = errors.New("hub down")
	ctx := context.Background()
	require.NoError(t, env.w.Open(ctx, "42", ""))

	env.transport.Publish(events.InteractionChannel("42"), map[string]any{
		"type": events.EventTypeInteractionUpdated, "interaction_id": "42",
		"fields": map[string]any{"answer": "partial"},
	})
	assert.True(t, env.snapshot(t, "42").Streaming)

	env.transport.Publish(events.InteractionChannel("42"), map[string]any{
		"type": events.EventTypeInteractionCompleted, "interaction_id": "42",
	})
	require.Eventually(t, func() bool { return env.views.count(TabArtifacts) == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "partial", env.snapshot(t, "42").Answer)
}

func TestWatcher_CompletedInteractionIsImmutable(t *testing.T) {
	env := newWatcherEnv(t, func(c *WatcherConfig) { c.Answers = nil })
	ctx := context.Background()
	require.NoError(t, env.w.Open(ctx, "42", ""))

	env.transport.Publish(events.InteractionChannel("42"), map[string]any{
		"type": events.EventTypeInteractionCompleted, "interaction_id": "42",
	})
	env.transport.Publish(events.InteractionChannel("42"), map[string]any{
		"type": events.EventTypeInteractionUpdated, "interaction_id": "42",
		"fields": map[string]any{"answer": "late chunk", "execution_id": "x"},
	})
	env.transport.Publish(events.InteractionQueueChannel("42"), map[string]any{
		"type": events.EventTypeQueueStatus, "interaction_id": "42", "job_data": map[string]any{"position": 1},
	})

	st := env.snapshot(t, "42")
	assert.Empty(t, st.Answer)
	assert.Empty(t, st.ExecutionID)
	assert.Nil(t, st.Queue)

	env.transport.Publish(events.InteractionChannel("42"), map[string]any{
		"type": events.EventTypeInteractionUpdated, "interaction_id": "42",
		"fields": map[string]any{"answer": "final text", "final": true},
	})
	st = env.snapshot(t, "42")
	assert.Equal(t, "final text", st.Answer)
	assert.False(t, st.Streaming)
}

func TestWatcher_StatusWithoutSignificanceRendersAsDetail(t *testing.T) {
	env := newWatcherEnv(t, nil)
	require.NoError(t, env.w.Open(context.Background(), "42", ""))

	env.transport.Publish(events.InteractionStatusChannel("42"), map[string]any{
		"type": events.EventTypeStatusUpdate, "message": "Found 3 key insights",
	})
	steps, err := env.w.Steps(context.Background(), "42")
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, ShapeDetail, steps[0].Shape)

	env.target.mu.Lock()
	defer env.target.mu.Unlock()
	assert.Len(t, env.target.steps, 1)
}

// replayingTransport replays a channel's whole history to every new
// subscriber, the way the hub answers a subscribe without last_event_id.
type replayingTransport struct {
	*MemoryTransport
	mu      sync.Mutex
	history map[string][]map[string]any
}

func newReplayingTransport() *replayingTransport {
	return &replayingTransport{MemoryTransport: NewMemoryTransport(), history: make(map[string][]map[string]any)}
}

func (r *replayingTransport) Subscribe(ctx context.Context, channel string, handler Handler) (Subscription, error) {
	sub, err := r.MemoryTransport.Subscribe(ctx, channel, handler)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	past := append([]map[string]any(nil), r.history[channel]...)
	r.mu.Unlock()
	for _, payload := range past {
		handler(RawEvent{Channel: channel, Payload: payload})
	}
	return sub, nil
}

func (r *replayingTransport) publish(channel string, payload map[string]any) {
	r.mu.Lock()
	r.history[channel] = append(r.history[channel], payload)
	r.mu.Unlock()
	r.Publish(channel, payload)
}

func TestWatcher_ReopeningInteractionDoesNotDuplicateSteps(t *testing.T) {
	transport := newReplayingTransport()
	env := newWatcherEnv(t, func(cfg *WatcherConfig) { cfg.Transport = transport })
	ctx := context.Background()
	status := func(id, message string, dbEventID int) {
		transport.publish(events.InteractionStatusChannel(id), map[string]any{
			"type": events.EventTypeStatusUpdate, "interaction_id": id,
			"message": message, "db_event_id": dbEventID,
		})
	}

	require.NoError(t, env.w.Open(ctx, "A", "s1"))
	status("A", "one", 1)
	status("A", "two", 2)

	require.NoError(t, env.w.Open(ctx, "B", "s1"))
	status("B", "other", 3)

	require.NoError(t, env.w.Open(ctx, "A", "s1"))
	status("A", "three", 4)

	steps, err := env.w.Steps(ctx, "A")
	require.NoError(t, err)
	var messages []string
	for _, s := range steps {
		messages = append(messages, s.Message)
	}
	assert.Equal(t, []string{"one", "two", "three"}, messages)

	steps, err = env.w.Steps(ctx, "B")
	require.NoError(t, err)
	assert.Len(t, steps, 1)
}

func TestWatcher_SourcesFilteredAndDeduplicated(t *testing.T) {
	env := newWatcherEnv(t, nil)
	require.NoError(t, env.w.Open(context.Background(), "42", "s1"))

	ch := events.InteractionSourcesChannel("42")
	env.transport.Publish(ch, map[string]any{"type": "source.created", "chat_interaction_id": "42", "id": "src-1", "url": "https://go.dev"})
	env.transport.Publish(ch, map[string]any{"type": "source.created", "chat_interaction_id": "42", "id": "src-1", "url": "https://go.dev"})
	env.transport.Publish(ch, map[string]any{"type": "source.created", "chat_interaction_id": "42", "url_hash": "abc", "url": "https://pkg.go.dev"})
	env.transport.Publish(ch, map[string]any{"type": "source.created", "chat_interaction_id": "99", "id": "src-9"})

	st := env.snapshot(t, "42")
	require.Len(t, st.Sources, 2)
	assert.Equal(t, "src-1", st.Sources[0].Key)
	assert.Equal(t, "abc", st.Sources[1].Key)
	assert.Equal(t, 2, env.views.count(TabSources))

	_, ok, err := env.w.Snapshot(context.Background(), "99")
	require.NoError(t, err)
	assert.False(t, ok, "events for other interactions are dropped")
}

func TestWatcher_ArtifactsScopedToSession(t *testing.T) {
	env := newWatcherEnv(t, nil)
	require.NoError(t, env.w.Open(context.Background(), "42", "s1"))

	ch := events.SessionArtifactsChannel("s1")
	env.transport.Publish(ch, map[string]any{"type": "artifact.created", "session_id": "s1", "id": "a1", "artifact_key": "report"})
	env.transport.Publish(ch, map[string]any{"type": "artifact.created", "session_id": "s1", "id": "a1", "artifact_key": "report"})
	env.transport.Publish(ch, map[string]any{"type": "artifact.created", "session_id": "s2", "id": "a2"})

	st := env.snapshot(t, "42")
	require.Len(t, st.Artifacts, 1)
	assert.Equal(t, "a1", st.Artifacts[0].Key)
	assert.Equal(t, 1, env.views.count(TabArtifacts))
}

func TestWatcher_QueueStatusReplacesWholesale(t *testing.T) {
	env := newWatcherEnv(t, nil)
	require.NoError(t, env.w.Open(context.Background(), "42", ""))

	ch := events.InteractionQueueChannel("42")
	env.transport.Publish(ch, map[string]any{"type": "queue.status", "interaction_id": "42", "job_data": map[string]any{"position": float64(3), "eta": "40s"}})
	env.transport.Publish(ch, map[string]any{"type": "queue.status", "interaction_id": "42", "job_data": map[string]any{"state": "running"}})

	assert.Equal(t, map[string]any{"state": "running"}, env.snapshot(t, "42").Queue)
}

func TestWatcher_DiscoveryAttachesBeforeStatus(t *testing.T) {
	var (
		mu                sync.Mutex
		refreshed         []refresh
		liveAtRefreshTime int
	)
	env := newWatcherEnv(t, nil)
	// Views run on the loop; record what was subscribed when the
	// interaction list refresh was requested.
	env.w.cfg.Views = ViewsFunc(func(_ context.Context, tab Tab, id string) {
		mu.Lock()
		defer mu.Unlock()
		refreshed = append(refreshed, refresh{tab, id})
		liveAtRefreshTime = env.transport.Subscribers(events.InteractionStatusChannel("43"))
	})
	ctx := context.Background()
	require.NoError(t, env.w.Open(ctx, "42", "s1"))

	env.transport.Publish(events.SessionChannel("s1"), map[string]any{
		"type": events.EventTypeInteractionCreated, "interaction_id": "43", "chat_session_id": "s1",
	})

	active, err := env.w.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, "43", active)
	assert.Equal(t, 1, env.transport.Subscribers(events.InteractionStatusChannel("43")))
	assert.Zero(t, env.transport.Subscribers(events.InteractionStatusChannel("42")), "previous interaction released")
	assert.Equal(t, 1, env.transport.Subscribers(events.SessionChannel("s1")), "session channel kept")

	env.status("43", "planner", "Planning", true)
	steps, err := env.w.Steps(ctx, "43")
	require.NoError(t, err)
	assert.Len(t, steps, 1)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []refresh{{TabInteractions, "43"}}, refreshed)
	assert.Equal(t, 1, liveAtRefreshTime, "channels attached before the list refresh")
}

func TestWatcher_DiscoveryIgnoresActiveAndForeignSessions(t *testing.T) {
	env := newWatcherEnv(t, nil)
	ctx := context.Background()
	require.NoError(t, env.w.Open(ctx, "42", "s1"))

	env.transport.Publish(events.SessionChannel("s1"), map[string]any{
		"type": events.EventTypeInteractionCreated, "interaction_id": "42", "chat_session_id": "s1",
	})
	env.transport.Publish(events.SessionChannel("s1"), map[string]any{
		"type": events.EventTypeInteractionCreated, "interaction_id": "77", "chat_session_id": "other",
	})

	active, err := env.w.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, "42", active)
	assert.Empty(t, env.views.tabs())
}

func TestWatcher_CatchupOverflowRefreshesTabs(t *testing.T) {
	env := newWatcherEnv(t, nil)
	require.NoError(t, env.w.Open(context.Background(), "42", ""))

	env.transport.Publish(events.InteractionStatusChannel("42"), map[string]any{
		"type": events.EventTypeCatchupOverflow, "channel": "interaction.42.status", "has_more": true,
	})
	_ = env.snapshot(t, "42")
	assert.ElementsMatch(t, []refresh{
		{TabAnswer, "42"}, {TabSources, "42"}, {TabSteps, "42"}, {TabArtifacts, "42"},
	}, env.views.tabs())
}

func TestWatcher_SeedCompleted(t *testing.T) {
	env := newWatcherEnv(t, nil)
	ctx := context.Background()
	require.NoError(t, env.w.Seed(ctx, InteractionState{ID: "42", SessionID: "s1", Answer: "stored", Completed: true}))
	require.NoError(t, env.w.Open(ctx, "42", "s1"))

	env.transport.Publish(events.InteractionChannel("42"), map[string]any{
		"type": events.EventTypeInteractionCompleted, "interaction_id": "42",
	})
	_ = env.snapshot(t, "42")
	assert.Zero(t, env.answers.callCount(), "already complete: no finalization")
	assert.Equal(t, "stored", env.snapshot(t, "42").Answer)
}

func TestWatcher_UnavailableTransportDegrades(t *testing.T) {
	env := newWatcherEnv(t, func(c *WatcherConfig) { c.Transport = Unavailable() })
	require.NoError(t, env.w.Open(context.Background(), "42", "s1"))
	assert.Empty(t, env.w.Subscriptions())
	assert.False(t, env.snapshot(t, "42").Completed)
}

func TestWatcher_StoppedWatcher(t *testing.T) {
	w := NewWatcher(WatcherConfig{Transport: NewMemoryTransport()})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, w.Run(ctx), context.Canceled)

	assert.ErrorIs(t, w.Open(context.Background(), "42", ""), ErrWatcherStopped)
}

func TestWatcher_StreamDirect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = fmt.Fprint(w, "data: {\"type\":\"answer_stream\",\"content\":\"Hi\"}\n\n")
		_, _ = fmt.Fprint(w, "data: {\"type\":\"answer_stream\",\"content\":\"Hi there\"}\n\n")
		_, _ = fmt.Fprint(w, "data: </stream>\n\n")
	}))
	t.Cleanup(srv.Close)

	env := newWatcherEnv(t, func(c *WatcherConfig) {
		c.Direct = NewDirectClient(srv.URL, nil)
		c.Answers = nil
	})

	res, err := env.w.StreamDirect(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, DirectCompleted, res.State)

	st := env.snapshot(t, "42")
	assert.Equal(t, "Hi there", st.Answer)
	assert.False(t, st.Streaming)
	assert.True(t, env.w.IsCompleted("42"))
}

func TestWatcher_StreamDirectError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, "data: {\"type\":\"error\",\"message\":\"worker crashed\"}\n\n")
	}))
	t.Cleanup(srv.Close)

	env := newWatcherEnv(t, func(c *WatcherConfig) { c.Direct = NewDirectClient(srv.URL, nil) })

	_, err := env.w.StreamDirect(context.Background(), "42")
	require.ErrorIs(t, err, ErrDirectStream)

	st := env.snapshot(t, "42")
	assert.Equal(t, "worker crashed", st.Answer)
	assert.False(t, st.Streaming)
	assert.False(t, st.Completed)
}

func TestWatcher_StreamDirectNotConfigured(t *testing.T) {
	env := newWatcherEnv(t, nil)
	_, err := env.w.StreamDirect(context.Background(), "42")
	assert.Error(t, err)
}
