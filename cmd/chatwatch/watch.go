package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/codeready-toolchain/chatstream/pkg/stream"
)

var watchSession string

var watchCmd = &cobra.Command{
	Use:   "watch <interaction-id>",
	Short: "Follow one interaction until it completes",
	Long: `Subscribes to the interaction's status, answer, source and queue channels
and prints the timeline as it grows. Falls back to the direct stream when the
hub WebSocket is unavailable.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchSession, "session", "", "Session id (defaults to the interaction's session)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	interactionID := args[0]
	v, err := newLiveView(ctx, true)
	if err != nil {
		return err
	}
	defer v.close()

	done := v.awaitFinished(interactionID)
	v.run(ctx)

	st, err := v.seed(ctx, interactionID)
	if err != nil {
		return err
	}
	if st.Completed {
		return showCompleted(ctx, v, interactionID)
	}

	sessionID := watchSession
	if sessionID == "" {
		sessionID = st.SessionID
	}
	if err := v.watcher.Open(ctx, interactionID, sessionID); err != nil {
		return err
	}

	if len(v.watcher.Subscriptions()) == 0 {
		slog.Warn("No live channels, using the direct stream", "interaction_id", interactionID)
		if _, err := v.watcher.StreamDirect(ctx, interactionID); err != nil {
			v.terminal.Flush(ctx)
			return err
		}
	}

	select {
	case <-done:
	case <-ctx.Done():
		return nil
	}
	v.terminal.Flush(ctx)
	return nil
}

// showCompleted prints every tab of an interaction that finished before
// the view opened.
func showCompleted(ctx context.Context, v *liveView, interactionID string) error {
	for _, tab := range []stream.Tab{stream.TabInteractions, stream.TabAnswer, stream.TabSources, stream.TabArtifacts} {
		v.terminal.Refresh(ctx, tab, interactionID)
	}
	v.terminal.Flush(ctx)
	fmt.Fprintln(os.Stderr, "interaction already completed")
	return nil
}
