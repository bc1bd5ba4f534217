package stream

import "context"

// Tab is one of the views a dashboard shows for an interaction.
type Tab string

// Tabs.
const (
	TabAnswer       Tab = "answer"
	TabSources      Tab = "sources"
	TabSteps        Tab = "steps"
	TabArtifacts    Tab = "artifacts"
	TabInteractions Tab = "interactions"
)

// finalizeTabs are refreshed when an interaction completes.
var finalizeTabs = []Tab{TabAnswer, TabSources, TabSteps, TabArtifacts}

// Views are told when a tab's content may have changed. They re-query on
// their own; the Watcher never pushes tab content.
type Views interface {
	Refresh(ctx context.Context, tab Tab, interactionID string)
}

// ViewsFunc adapts a function to Views.
type ViewsFunc func(ctx context.Context, tab Tab, interactionID string)

// Refresh calls f.
func (f ViewsFunc) Refresh(ctx context.Context, tab Tab, interactionID string) { f(ctx, tab, interactionID) }

type nopViews struct{}

func (nopViews) Refresh(context.Context, Tab, string) {}

// AnswerFetcher returns the authoritative answer of a completed interaction.
type AnswerFetcher interface {
	FinalAnswer(ctx context.Context, interactionID string) (string, error)
}
