// chatwatch follows research interactions live from a terminal.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/codeready-toolchain/chatstream/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:     "chatwatch",
	Short:   "chatwatch - live timeline viewer for chatstream",
	Long:    `chatwatch subscribes to a chatstream hub and renders research interactions as they happen: step timeline, streamed answer, sources and artifacts.`,
	Version: version.Full(),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
	SilenceUsage: true,
}

var (
	hubAddr     string
	journalPath string
	answerStyle string
	verbose     bool
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func init() {
	rootCmd.PersistentFlags().StringVar(&hubAddr, "hub", getEnv("CHATSTREAM_HUB", "http://localhost:8080"), "Hub base URL")
	rootCmd.PersistentFlags().StringVar(&journalPath, "journal", os.Getenv("CHATSTREAM_JOURNAL"), "SQLite journal file (empty disables journaling)")
	rootCmd.PersistentFlags().StringVar(&answerStyle, "answer-style", "", "Markdown style for answers (dark, light, notty); detected when empty")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging to stderr")

	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(directCmd)
	rootCmd.AddCommand(replayCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
