// Package cmd wires the command-line interface.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"lyriclens/config"
)

var (
	verbose bool
	appCfg  config.Config
)

var rootCmd = &cobra.Command{
	Use:   "lyriclens",
	Short: "Vocabulary analysis for song lyrics",
	Long: `lyriclens fetches an artist's lyrics from Genius and reports their
vocabulary: word frequencies, TF-IDF salience, parts of speech, sentiment,
slang, and example lines.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))

		var err error
		appCfg, err = config.Load()
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
