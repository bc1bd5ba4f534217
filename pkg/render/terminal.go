// Package render prints a live view to a terminal: timeline steps as they
// are appended and tab refreshes re-queried from the hub.
package render

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/codeready-toolchain/chatstream/pkg/models"
	"github.com/codeready-toolchain/chatstream/pkg/stream"
)

const defaultWidth = 100

// Hub is the part of the hub REST API the terminal re-queries on refresh.
// *client.Client satisfies it.
type Hub interface {
	GetInteraction(ctx context.Context, interactionID string) (*models.Interaction, error)
	ListSources(ctx context.Context, interactionID string) ([]*models.Source, error)
	ListSteps(ctx context.Context, interactionID string) ([]*models.InteractionStep, error)
	ListArtifacts(ctx context.Context, sessionID string) ([]*models.Artifact, error)
}

// StateSource exposes the live display state. *stream.Watcher satisfies it.
type StateSource interface {
	Snapshot(ctx context.Context, interactionID string) (stream.InteractionState, bool, error)
}

// Option configures a Terminal.
type Option func(*Terminal)

// WithWidth sets the word-wrap width of rendered answers.
func WithWidth(width int) Option {
	return func(t *Terminal) { t.width = width }
}

// WithAnswerStyle selects a glamour standard style ("dark", "light",
// "notty", ...). The default detects the terminal background.
func WithAnswerStyle(style string) Option {
	return func(t *Terminal) { t.answerStyle = style }
}

// WithStateSource makes the answer tab read the live state instead of the
// stored answer, so partial and direct-mode answers are shown too.
func WithStateSource(src StateSource) Option {
	return func(t *Terminal) { t.state = src }
}

type refreshKey struct {
	tab           stream.Tab
	interactionID string
}

// interactionView is what has already been printed for one interaction, so
// repeated refreshes only print what changed.
type interactionView struct {
	answer     string
	answerLen  int
	completed  bool
	sources    map[string]bool
	artifacts  map[string]bool
	savedSteps int
}

// Terminal implements stream.RenderTarget and stream.Views. RenderStep
// prints synchronously; Refresh only queues the tab, and Run re-queries
// queued tabs off the Watcher loop.
type Terminal struct {
	out         io.Writer
	hub         Hub
	state       StateSource
	styles      styles
	width       int
	answerStyle string
	markdown    *glamour.TermRenderer

	serving sync.Mutex // held while one refresh is served

	mu         sync.Mutex // guards out and the fields below
	lastHeader string
	views      map[string]*interactionView
	pending    []refreshKey
	pendingSet map[refreshKey]bool
	wake       chan struct{}
}

// NewTerminal creates a terminal view writing to out. hub may be nil, in
// which case only timeline steps and live answers are printed.
func NewTerminal(out io.Writer, hub Hub, opts ...Option) (*Terminal, error) {
	t := &Terminal{
		out:        out,
		hub:        hub,
		styles:     newStyles(lipgloss.NewRenderer(out)),
		width:      defaultWidth,
		views:      make(map[string]*interactionView),
		pendingSet: make(map[refreshKey]bool),
		wake:       make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(t)
	}

	styleOpt := glamour.WithAutoStyle()
	if t.answerStyle != "" {
		styleOpt = glamour.WithStandardStyle(t.answerStyle)
	}
	md, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(t.width))
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	t.markdown = md
	return t, nil
}

// RenderStep implements stream.RenderTarget.
func (t *Terminal) RenderStep(interactionID string, step stream.Step) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.headerLocked(interactionID)
	ts := t.styles.timestamp.Render(step.Timestamp.Format("15:04:05"))

	var b strings.Builder
	if step.Shape == stream.ShapeMilestone {
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s %s %s", ts, t.styles.marker.Render("●"), t.styles.milestone.Render(t.highlight(step.Segments, false)))
	} else {
		marker := "·"
		if step.Supersedes > 0 {
			marker = "↳"
		}
		fmt.Fprintf(&b, "%s   %s %s", ts, t.styles.detail.Render(marker), t.highlight(step.Segments, true))
	}
	if step.Source != "" {
		b.WriteString(" " + t.styles.source.Render("["+step.Source+"]"))
	}
	if step.Duration > 0 {
		b.WriteString(" " + t.styles.duration.Render(step.Duration.Round(time.Millisecond).String()))
	}
	b.WriteString("\n")
	_, _ = io.WriteString(t.out, b.String())
}

func (t *Terminal) highlight(segments []stream.Segment, dim bool) string {
	var b strings.Builder
	for _, seg := range segments {
		switch seg.Kind {
		case stream.SegmentURL:
			b.WriteString(t.styles.url.Render(seg.Text))
		case stream.SegmentQuery:
			b.WriteString(t.styles.query.Render(seg.Text))
		case stream.SegmentDomain:
			b.WriteString(t.styles.domain.Render(seg.Text))
		default:
			if dim {
				b.WriteString(t.styles.detail.Render(seg.Text))
			} else {
				b.WriteString(seg.Text)
			}
		}
	}
	return b.String()
}

// headerLocked prints a divider when output switches to another interaction.
func (t *Terminal) headerLocked(interactionID string) {
	if interactionID == t.lastHeader {
		return
	}
	t.lastHeader = interactionID
	line := t.styles.divider.Render("──") + " " + t.styles.header.Render("interaction "+interactionID) + " " + t.styles.divider.Render("──")
	_, _ = io.WriteString(t.out, "\n"+line+"\n")
}

// SetStateSource is WithStateSource for a source created after the
// Terminal. Call it before Run.
func (t *Terminal) SetStateSource(src StateSource) {
	t.state = src
}

// Refresh implements stream.Views. It never blocks on the hub.
func (t *Terminal) Refresh(_ context.Context, tab stream.Tab, interactionID string) {
	key := refreshKey{tab: tab, interactionID: interactionID}

	t.mu.Lock()
	if !t.pendingSet[key] {
		t.pendingSet[key] = true
		t.pending = append(t.pending, key)
	}
	t.mu.Unlock()

	select {
	case t.wake <- struct{}{}:
	default:
	}
}

// Run serves queued refreshes until ctx is done.
func (t *Terminal) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.wake:
		}
		for t.serveOne(ctx) {
		}
	}
}

// Flush serves every queued refresh on the calling goroutine. When it
// returns, nothing is queued or in flight.
func (t *Terminal) Flush(ctx context.Context) {
	for t.serveOne(ctx) {
	}
}

func (t *Terminal) serveOne(ctx context.Context) bool {
	t.serving.Lock()
	defer t.serving.Unlock()
	key, ok := t.next()
	if ok {
		t.refresh(ctx, key)
	}
	return ok
}

func (t *Terminal) next() (refreshKey, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.pending) == 0 {
		return refreshKey{}, false
	}
	key := t.pending[0]
	t.pending = t.pending[1:]
	delete(t.pendingSet, key)
	return key, true
}

func (t *Terminal) refresh(ctx context.Context, key refreshKey) {
	var err error
	switch key.tab {
	case stream.TabAnswer:
		err = t.refreshAnswer(ctx, key.interactionID)
	case stream.TabSources:
		err = t.refreshSources(ctx, key.interactionID)
	case stream.TabSteps:
		err = t.refreshSteps(ctx, key.interactionID)
	case stream.TabArtifacts:
		err = t.refreshArtifacts(ctx, key.interactionID)
	case stream.TabInteractions:
		err = t.refreshInteractions(ctx, key.interactionID)
	}
	if err != nil && ctx.Err() == nil {
		slog.Warn("View is stale, refresh failed",
			"tab", key.tab, "interaction_id", key.interactionID, "error", err)
	}
}

func (t *Terminal) refreshAnswer(ctx context.Context, interactionID string) error {
	answer, completed, streaming, err := t.currentAnswer(ctx, interactionID)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	v := t.viewLocked(interactionID)

	if !completed {
		if streaming && len(answer) != v.answerLen {
			v.answerLen = len(answer)
			t.headerLocked(interactionID)
			fmt.Fprintf(t.out, "%s\n", t.styles.detail.Render(fmt.Sprintf("answer streaming (%d chars)", len(answer))))
		} else if !streaming && answer != "" && answer != v.answer {
			v.answer = answer
			t.headerLocked(interactionID)
			fmt.Fprintf(t.out, "%s\n", t.styles.errorText.Render(answer))
		}
		return nil
	}

	if v.completed && answer == v.answer {
		return nil
	}
	v.completed = true
	v.answer = answer
	v.answerLen = len(answer)

	rendered, err := t.markdown.Render(answer)
	if err != nil {
		rendered = answer + "\n"
	}
	t.headerLocked(interactionID)
	fmt.Fprintf(t.out, "\n%s\n%s", t.styles.done.Render("Answer"), rendered)
	return nil
}

// currentAnswer prefers the live state and falls back to the hub.
func (t *Terminal) currentAnswer(ctx context.Context, interactionID string) (answer string, completed, streaming bool, err error) {
	if t.state != nil {
		st, found, err := t.state.Snapshot(ctx, interactionID)
		if err != nil {
			return "", false, false, err
		}
		if found {
			return st.Answer, st.Completed, st.Streaming, nil
		}
	}
	if t.hub == nil {
		return "", false, false, nil
	}
	interaction, err := t.hub.GetInteraction(ctx, interactionID)
	if err != nil {
		return "", false, false, err
	}
	return interaction.Answer, interaction.Completed, !interaction.Completed && interaction.HasAnswer(), nil
}

func (t *Terminal) refreshSources(ctx context.Context, interactionID string) error {
	if t.hub == nil {
		return nil
	}
	sources, err := t.hub.ListSources(ctx, interactionID)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	v := t.viewLocked(interactionID)
	for _, src := range sources {
		if v.sources[src.ID] {
			continue
		}
		v.sources[src.ID] = true
		t.headerLocked(interactionID)
		title := src.Title
		if title == "" {
			title = src.URL
		}
		fmt.Fprintf(t.out, "  %s %s %s\n",
			t.styles.domain.Render(src.Domain), title, t.styles.url.Render(src.URL))
	}
	return nil
}

func (t *Terminal) refreshSteps(ctx context.Context, interactionID string) error {
	if t.hub == nil {
		return nil
	}
	steps, err := t.hub.ListSteps(ctx, interactionID)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	v := t.viewLocked(interactionID)
	if len(steps) == v.savedSteps {
		return nil
	}
	v.savedSteps = len(steps)
	t.headerLocked(interactionID)
	fmt.Fprintf(t.out, "%s\n", t.styles.detail.Render(fmt.Sprintf("%d steps saved", len(steps))))
	return nil
}

func (t *Terminal) refreshArtifacts(ctx context.Context, interactionID string) error {
	if t.hub == nil {
		return nil
	}
	interaction, err := t.hub.GetInteraction(ctx, interactionID)
	if err != nil {
		return err
	}
	artifacts, err := t.hub.ListArtifacts(ctx, interaction.ChatSessionID)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	v := t.viewLocked(interactionID)
	for _, a := range artifacts {
		if a.ChatInteractionID != "" && a.ChatInteractionID != interactionID {
			continue
		}
		if v.artifacts[a.ID] {
			continue
		}
		v.artifacts[a.ID] = true
		t.headerLocked(interactionID)
		fmt.Fprintf(t.out, "  %s %s\n", t.styles.header.Render("artifact"), firstNonEmpty(a.Title, a.ArtifactKey))
	}
	return nil
}

func (t *Terminal) refreshInteractions(ctx context.Context, interactionID string) error {
	question := ""
	if t.hub != nil {
		interaction, err := t.hub.GetInteraction(ctx, interactionID)
		if err != nil {
			return err
		}
		question = interaction.Question
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.headerLocked(interactionID)
	if question != "" {
		fmt.Fprintf(t.out, "%s %s\n", t.styles.header.Render("?"), question)
	}
	return nil
}

func (t *Terminal) viewLocked(interactionID string) *interactionView {
	v, ok := t.views[interactionID]
	if !ok {
		v = &interactionView{sources: make(map[string]bool), artifacts: make(map[string]bool)}
		t.views[interactionID] = v
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
