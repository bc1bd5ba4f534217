package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var directCmd = &cobra.Command{
	Use:   "direct <interaction-id>",
	Short: "Read an interaction's answer from the direct text stream",
	Long: `Reads GET /api/v1/interactions/<id>/stream instead of the broadcast
channels. Steps are not shown in this mode; the answer is replaced as it
grows. The stream is not retried on error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		if _, err := v.watcher.StreamDirect(ctx, interactionID); err != nil {
			v.terminal.Flush(ctx)
			return err
		}

		select {
		case <-done:
		case <-ctx.Done():
			return nil
		}
		v.terminal.Flush(ctx)
		return nil
	},
}
