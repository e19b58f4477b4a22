package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/itsmostafa/topdown/internal/version"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "topdown",
	Short: "Organize markdown files into a table of contents",
	Long: `topdown builds a nested table of contents from a flat directory of markdown
files. The hierarchy comes from the filenames: Guide--Install--Linux.md is
listed under Install, which is listed under Guide.

Files whose names start with a number (01-Intro.md, 2. Setup.md) keep their
order in the listing while the number is dropped from the title.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(verbose)
	},
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("topdown %s\n", version.String()))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
