package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session <session-id>",
	Short: "Follow a session, switching to each new interaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		v, err := newLiveView(ctx, false)
		if err != nil {
			return err
		}
		defer v.close()
		v.run(ctx)

		if err := v.watcher.WatchSession(ctx, args[0]); err != nil {
			return err
		}
		<-ctx.Done()
		return nil
	},
}
