package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"sync"

	"github.com/codeready-toolchain/chatstream/pkg/client"
	"github.com/codeready-toolchain/chatstream/pkg/journal"
	"github.com/codeready-toolchain/chatstream/pkg/render"
	"github.com/codeready-toolchain/chatstream/pkg/stream"
)

// liveView bundles what every live command needs: hub client, terminal,
// optional journal and a running Watcher.
type liveView struct {
	hub      *client.Client
	terminal *render.Terminal
	journal  *journal.Journal
	watcher  *stream.Watcher
	closeWS  func()

	mu       sync.Mutex
	finished map[string]chan struct{}
}

// newLiveView connects to the hub. When the WebSocket cannot be reached the
// view runs on the unavailable transport and only the direct stream works.
func newLiveView(ctx context.Context, withDirect bool) (*liveView, error) {
	v := &liveView{
		hub:      client.New(hubAddr, nil),
		closeWS:  func() {},
		finished: make(map[string]chan struct{}),
	}

	var transport stream.Transport = stream.Unavailable()
	if ws, err := stream.DialWS(ctx, wsURL(hubAddr)); err != nil {
		slog.Warn("Hub WebSocket unavailable, live channels disabled", "hub", hubAddr, "error", err)
	} else {
		transport = ws
		v.closeWS = func() { _ = ws.Close() }
	}

	var opts []render.Option
	if answerStyle != "" {
		opts = append(opts, render.WithAnswerStyle(answerStyle))
	}
	term, err := render.NewTerminal(os.Stdout, v.hub, opts...)
	if err != nil {
		v.closeWS()
		return nil, err
	}
	v.terminal = term

	targets := render.Fanout{term}
	if journalPath != "" {
		j, err := journal.Open(journalPath)
		if err != nil {
			v.closeWS()
			return nil, err
		}
		v.journal = j
		targets = append(targets, j)
	}

	cfg := stream.WatcherConfig{
		Transport: transport,
		Target:    targets,
		Answers:   v.hub,
		Views:     stream.ViewsFunc(v.refresh),
	}
	if withDirect {
		// No client timeout: the stream lasts as long as the research.
		cfg.Direct = stream.NewDirectClient(hubAddr, nil)
	}
	v.watcher = stream.NewWatcher(cfg)
	term.SetStateSource(v.watcher)
	return v, nil
}

// run starts the Watcher loop and the terminal's refresh worker.
func (v *liveView) run(ctx context.Context) {
	go func() { _ = v.watcher.Run(ctx) }()
	go v.terminal.Run(ctx)
}

func (v *liveView) close() {
	v.closeWS()
	if v.journal != nil {
		_ = v.journal.Close()
	}
}

// refresh forwards to the terminal and notices the last tab refresh of a
// finalization: artifacts are refreshed last once an interaction completes.
func (v *liveView) refresh(ctx context.Context, tab stream.Tab, interactionID string) {
	v.terminal.Refresh(ctx, tab, interactionID)
	if tab == stream.TabArtifacts && v.watcher.IsCompleted(interactionID) {
		v.mu.Lock()
		if ch, ok := v.finished[interactionID]; ok {
			delete(v.finished, interactionID)
			close(ch)
		}
		v.mu.Unlock()
	}
}

// awaitFinished returns a channel closed once interactionID is finalized.
func (v *liveView) awaitFinished(interactionID string) <-chan struct{} {
	v.mu.Lock()
	defer v.mu.Unlock()
	ch, ok := v.finished[interactionID]
	if !ok {
		ch = make(chan struct{})
		v.finished[interactionID] = ch
	}
	return ch
}

// seed loads the stored interaction so a completed one is shown as such
// without waiting for events.
func (v *liveView) seed(ctx context.Context, interactionID string) (stream.InteractionState, error) {
	interaction, err := v.hub.GetInteraction(ctx, interactionID)
	if err != nil {
		return stream.InteractionState{}, fmt.Errorf("failed to load interaction %s: %w", interactionID, err)
	}
	st := stream.InteractionState{
		ID:          interaction.ID,
		SessionID:   interaction.ChatSessionID,
		Question:    interaction.Question,
		Answer:      interaction.Answer,
		ExecutionID: interaction.ExecutionID,
		Completed:   interaction.Completed,
		Streaming:   !interaction.Completed && interaction.HasAnswer(),
	}
	if err := v.watcher.Seed(ctx, st); err != nil {
		return st, err
	}
	return st, nil
}

// wsURL maps the hub's http(s) base URL to its WebSocket endpoint.
func wsURL(hub string) string {
	u, err := url.Parse(strings.TrimRight(hub, "/"))
	if err != nil {
		return hub
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	case "http", "":
		u.Scheme = "ws"
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/ws"
	return u.String()
}
