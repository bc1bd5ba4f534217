package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/codeready-toolchain/chatstream/pkg/journal"
	"github.com/codeready-toolchain/chatstream/pkg/render"
)

var replayCmd = &cobra.Command{
	Use:   "replay [interaction-id]",
	Short: "Replay a journaled timeline, or list journaled interactions",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if journalPath == "" {
			return errors.New("--journal is required for replay")
		}
		j, err := journal.Open(journalPath)
		if err != nil {
			return err
		}
		defer func() { _ = j.Close() }()

		ctx := cmd.Context()
		if len(args) == 0 {
			summaries, err := j.Interactions(ctx)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "INTERACTION\tSTEPS\tLAST STEP")
			for _, s := range summaries {
				fmt.Fprintf(w, "%s\t%d\t%s\n", s.InteractionID, s.Steps, s.LastStepAt.Local().Format(time.DateTime))
			}
			return w.Flush()
		}

		var opts []render.Option
		if answerStyle != "" {
			opts = append(opts, render.WithAnswerStyle(answerStyle))
		}
		term, err := render.NewTerminal(os.Stdout, nil, opts...)
		if err != nil {
			return err
		}
		n, err := j.Replay(ctx, args[0], term)
		if err != nil {
			return fmt.Errorf("replay %s: %w", args[0], err)
		}
		fmt.Fprintf(os.Stderr, "%d steps replayed\n", n)
		return nil
	},
}
