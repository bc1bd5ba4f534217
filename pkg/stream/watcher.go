package stream

import (
	"context"
	"errors"
	"log/slog"
	"maps"
	"time"

	"github.com/codeready-toolchain/chatstream/pkg/events"
)

// ErrWatcherStopped is returned by calls made after Run has returned.
var ErrWatcherStopped = errors.New("watcher stopped")

const defaultInboxSize = 256

// WatcherConfig wires a Watcher. Only Transport is required in practice;
// a nil Transport behaves as Unavailable.
type WatcherConfig struct {
	Transport         Transport
	Target            RenderTarget
	Views             Views
	Answers           AnswerFetcher
	Direct            *DirectClient
	CompletionSources []string
	InboxSize         int
	Now               func() time.Time
}

// Watcher is the live view of one session. A single goroutine (Run) owns
// all interaction state; transport handlers and public methods only enqueue
// work onto it, so events are applied strictly one at a time.
//
// Views.Refresh and RenderTarget.RenderStep run on that goroutine and must
// not call back into the Watcher synchronously.
type Watcher struct {
	cfg      WatcherConfig
	subs     *SubscriptionManager
	detector *CompletionDetector

	inbox   chan func(context.Context)
	stopped chan struct{}

	// Owned by the loop.
	states    map[string]*InteractionState
	timelines map[string]*Timeline
	active    string
	session   string
}

// NewWatcher creates a Watcher. Nothing happens until Run is called.
func NewWatcher(cfg WatcherConfig) *Watcher {
	if cfg.Views == nil {
		cfg.Views = nopViews{}
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.InboxSize <= 0 {
		cfg.InboxSize = defaultInboxSize
	}
	w := &Watcher{
		cfg:       cfg,
		inbox:     make(chan func(context.Context), cfg.InboxSize),
		stopped:   make(chan struct{}),
		states:    make(map[string]*InteractionState),
		timelines: make(map[string]*Timeline),
	}
	w.subs = NewSubscriptionManager(cfg.Transport, w.onRaw)
	w.detector = NewCompletionDetector(cfg.CompletionSources, w.finalize)
	return w
}

// Run processes events until ctx is done, then releases every subscription.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.stopped)
	defer w.subs.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case op := <-w.inbox:
			op(ctx)
		}
	}
}

// Open makes interactionID the active interaction and attaches its channels
// and, when sessionID is set, the session discovery channel.
func (w *Watcher) Open(ctx context.Context, interactionID, sessionID string) error {
	return w.call(ctx, func(ctx context.Context) {
		w.activate(ctx, interactionID, sessionID)
		w.watchSession(ctx, sessionID)
	})
}

// WatchSession follows a session: every interaction created in it becomes
// the active one.
func (w *Watcher) WatchSession(ctx context.Context, sessionID string) error {
	return w.call(ctx, func(ctx context.Context) {
		w.watchSession(ctx, sessionID)
	})
}

// Seed installs state loaded from the hub, e.g. before Open. A completed
// seed is recorded with the detector without running finalization.
func (w *Watcher) Seed(ctx context.Context, seed InteractionState) error {
	return w.call(ctx, func(context.Context) {
		st := w.stateFor(seed.ID, seed.SessionID)
		st.Question = seed.Question
		st.Answer = seed.Answer
		st.ExecutionID = seed.ExecutionID
		st.Completed = seed.Completed
		st.Streaming = seed.Streaming && !seed.Completed
		if seed.Completed {
			w.detector.MarkCompleted(seed.ID)
		}
	})
}

// Snapshot returns a copy of an interaction's state.
func (w *Watcher) Snapshot(ctx context.Context, interactionID string) (InteractionState, bool, error) {
	var (
		out   InteractionState
		found bool
	)
	err := w.call(ctx, func(context.Context) {
		if st, ok := w.states[interactionID]; ok {
			out, found = st.clone(), true
		}
	})
	return out, found, err
}

// Steps returns a copy of an interaction's timeline.
func (w *Watcher) Steps(ctx context.Context, interactionID string) ([]Step, error) {
	var out []Step
	err := w.call(ctx, func(context.Context) {
		if tl, ok := w.timelines[interactionID]; ok {
			out = tl.Steps()
		}
	})
	return out, err
}

// Active returns the active interaction id.
func (w *Watcher) Active(ctx context.Context) (string, error) {
	var out string
	err := w.call(ctx, func(context.Context) { out = w.active })
	return out, err
}

// IsCompleted reports whether a completion marker was seen for the
// interaction.
func (w *Watcher) IsCompleted(interactionID string) bool {
	return w.detector.IsCompleted(interactionID)
}

// Subscriptions lists the open subscriptions.
func (w *Watcher) Subscriptions() []SubKey {
	return w.subs.Active()
}

// StreamDirect reads the interaction's direct stream and applies it to the
// same state the broadcast channels feed.
func (w *Watcher) StreamDirect(ctx context.Context, interactionID string) (DirectResult, error) {
	if w.cfg.Direct == nil {
		return DirectResult{State: DirectErrored}, errors.New("direct streaming is not configured")
	}
	if err := w.call(ctx, func(context.Context) { w.stateFor(interactionID, "") }); err != nil {
		return DirectResult{}, err
	}
	return w.cfg.Direct.Stream(ctx, interactionID, &directApplier{w: w, interactionID: interactionID})
}

func (w *Watcher) onRaw(raw RawEvent) {
	w.enqueue(func(ctx context.Context) { w.handle(ctx, raw) })
}

func (w *Watcher) enqueue(op func(context.Context)) bool {
	select {
	case <-w.stopped:
		return false
	default:
	}
	select {
	case w.inbox <- op:
		return true
	case <-w.stopped:
		return false
	}
}

// call runs op on the loop and waits for it.
func (w *Watcher) call(ctx context.Context, op func(context.Context)) error {
	done := make(chan struct{})
	if !w.enqueue(func(loopCtx context.Context) {
		defer close(done)
		op(loopCtx)
	}) {
		return ErrWatcherStopped
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-w.stopped:
		return ErrWatcherStopped
	}
}

func (w *Watcher) stateFor(interactionID, sessionID string) *InteractionState {
	st, ok := w.states[interactionID]
	if !ok {
		st = newInteractionState(interactionID, sessionID)
		w.states[interactionID] = st
	}
	if st.SessionID == "" {
		st.SessionID = sessionID
	}
	return st
}

func (w *Watcher) timelineFor(interactionID string) *Timeline {
	tl, ok := w.timelines[interactionID]
	if !ok {
		tl = NewTimeline(interactionID, w.cfg.Target)
		w.timelines[interactionID] = tl
	}
	return tl
}

func (w *Watcher) activate(ctx context.Context, interactionID, sessionID string) {
	if interactionID == "" {
		return
	}
	st := w.stateFor(interactionID, sessionID)
	w.active = interactionID
	w.subs.AttachToInteraction(ctx, interactionID, st.SessionID)
}

func (w *Watcher) watchSession(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}
	w.session = sessionID
	w.subs.AttachToSession(ctx, sessionID)
}

// handle applies one event. Runs on the loop.
func (w *Watcher) handle(ctx context.Context, raw RawEvent) {
	e := Classify(raw, w.cfg.Now())

	switch e.Kind {
	case KindStatus:
		w.handleStatus(ctx, e)
	case KindInteractionUpdated:
		w.handleUpdated(ctx, e)
	case KindInteractionCompleted:
		w.detector.Observe(ctx, e)
	case KindSourceCreated:
		w.handleSource(ctx, e)
	case KindArtifactCreated:
		w.handleArtifact(ctx, e)
	case KindQueueStatus:
		w.handleQueue(e)
	case KindInteractionCreated:
		w.discover(ctx, e)
	case KindCatchupOverflow:
		w.handleOverflow(ctx, e)
	default:
		slog.Debug("Ignoring unknown event", "channel", e.Channel, "type", e.Payload["type"])
	}
}

// handleStatus appends to the timeline. Steps that arrive after completion
// are still appended: channels are not ordered against each other, so the
// last steps can trail interaction.completed. A persisted event already on
// the timeline (replayed when an interaction is reopened) is ignored.
func (w *Watcher) handleStatus(ctx context.Context, e Event) {
	if e.InteractionID == "" {
		return
	}
	tl := w.timelineFor(e.InteractionID)
	if e.DBEventID > 0 && tl.Has(e.DBEventID) {
		return
	}
	st := w.stateFor(e.InteractionID, e.SessionID)
	tl.Append(e)

	if w.detector.Observe(ctx, e) {
		return
	}
	if !st.Completed && !w.detector.IsMarker(e) {
		st.Streaming = true
	}
	if e.CreateEvent {
		w.cfg.Views.Refresh(ctx, TabSteps, e.InteractionID)
	}
}

func (w *Watcher) handleUpdated(ctx context.Context, e Event) {
	if e.InteractionID == "" {
		return
	}
	fields, _ := e.Payload["fields"].(map[string]any)
	if fields == nil {
		return
	}
	st := w.stateFor(e.InteractionID, e.SessionID)
	if st.mergeFields(fields) {
		w.cfg.Views.Refresh(ctx, TabAnswer, e.InteractionID)
	}
}

func (w *Watcher) handleSource(ctx context.Context, e Event) {
	if _, scope := ParseChannel(e.Channel); scope != "" && e.InteractionID != scope {
		slog.Debug("Dropping source for another interaction", "channel", e.Channel, "interaction_id", e.InteractionID)
		return
	}
	if e.InteractionID == "" {
		return
	}
	if w.stateFor(e.InteractionID, "").addSource(e.Payload) {
		w.cfg.Views.Refresh(ctx, TabSources, e.InteractionID)
	}
}

func (w *Watcher) handleArtifact(ctx context.Context, e Event) {
	if _, scope := ParseChannel(e.Channel); scope != "" && e.SessionID != scope {
		slog.Debug("Dropping artifact for another session", "channel", e.Channel, "session_id", e.SessionID)
		return
	}
	target := e.InteractionID
	if target == "" {
		target = w.active
	}
	if target == "" {
		return
	}
	st := w.stateFor(target, e.SessionID)
	if st.SessionID != "" && e.SessionID != "" && st.SessionID != e.SessionID {
		return
	}
	if st.addArtifact(e.Payload) {
		w.cfg.Views.Refresh(ctx, TabArtifacts, target)
	}
}

// handleQueue replaces the queue snapshot wholesale.
func (w *Watcher) handleQueue(e Event) {
	if e.InteractionID == "" {
		return
	}
	st := w.stateFor(e.InteractionID, "")
	if st.Completed {
		return
	}
	jobData, _ := e.Payload["job_data"].(map[string]any)
	st.Queue = maps.Clone(jobData)
}

// discover follows an interaction created in the watched session: mark it
// active, attach its channels, then refresh the interaction list. The
// channels are live before any of its status events can be handled, since
// those are queued behind this call.
func (w *Watcher) discover(ctx context.Context, e Event) {
	if e.InteractionID == "" || e.InteractionID == w.active {
		return
	}
	if w.session != "" && e.SessionID != "" && e.SessionID != w.session {
		return
	}
	sessionID := e.SessionID
	if sessionID == "" {
		sessionID = w.session
	}
	slog.Info("Discovered interaction", "interaction_id", e.InteractionID, "session_id", sessionID)

	w.activate(ctx, e.InteractionID, sessionID)
	w.cfg.Views.Refresh(ctx, TabInteractions, e.InteractionID)
}

// handleOverflow refreshes everything the truncated channel feeds: the
// catchup did not replay all missed events.
func (w *Watcher) handleOverflow(ctx context.Context, e Event) {
	interactionID := e.InteractionID
	if interactionID == "" {
		interactionID = w.active
	}
	slog.Warn("Catchup overflow, refreshing views", "channel", e.Channel, "interaction_id", interactionID)
	if e.ChannelKind == ChannelSession {
		w.cfg.Views.Refresh(ctx, TabInteractions, interactionID)
	}
	if interactionID == "" {
		return
	}
	for _, tab := range finalizeTabs {
		w.cfg.Views.Refresh(ctx, tab, interactionID)
	}
}

// finalize is the completion detector's action. Runs on the loop.
func (w *Watcher) finalize(ctx context.Context, interactionID string, marker Event) {
	st := w.stateFor(interactionID, marker.SessionID)
	st.Streaming = false
	st.Completed = true
	if execID, ok := marker.Metadata["execution_id"].(string); ok && execID != "" {
		st.ExecutionID = execID
	}
	slog.Info("Interaction completed", "interaction_id", interactionID, "source", marker.Source)

	if w.cfg.Answers == nil {
		w.refreshAll(ctx, interactionID)
		return
	}
	go func() {
		answer, err := w.cfg.Answers.FinalAnswer(ctx, interactionID)
		w.enqueue(func(ctx context.Context) {
			if err != nil {
				slog.Warn("Failed to fetch final answer, keeping streamed content",
					"interaction_id", interactionID, "error", err)
			} else {
				st.Answer = answer
			}
			w.refreshAll(ctx, interactionID)
		})
	}()
}

func (w *Watcher) refreshAll(ctx context.Context, interactionID string) {
	for _, tab := range finalizeTabs {
		w.cfg.Views.Refresh(ctx, tab, interactionID)
	}
}

// directApplier feeds direct-stream effects into the loop.
type directApplier struct {
	w             *Watcher
	interactionID string
}

func (a *directApplier) OnAnswer(content string) {
	a.w.enqueue(func(ctx context.Context) {
		st := a.w.stateFor(a.interactionID, "")
		if st.Completed {
			return
		}
		st.Answer = content
		st.Streaming = true
		a.w.cfg.Views.Refresh(ctx, TabAnswer, a.interactionID)
	})
}

func (a *directApplier) OnComplete() {
	a.w.enqueue(func(ctx context.Context) {
		a.w.stateFor(a.interactionID, "").Streaming = false
		a.w.detector.Observe(ctx, Event{
			Kind:          KindInteractionCompleted,
			InteractionID: a.interactionID,
			Source:        events.SourceInteractionCompleted,
			Significant:   true,
			Timestamp:     a.w.cfg.Now(),
			Metadata:      map[string]any{},
		})
	})
}

func (a *directApplier) OnError(message string) {
	a.w.enqueue(func(ctx context.Context) {
		st := a.w.stateFor(a.interactionID, "")
		if st.Completed {
			return
		}
		st.Answer = message
		st.Streaming = false
		a.w.cfg.Views.Refresh(ctx, TabAnswer, a.interactionID)
	})
}
