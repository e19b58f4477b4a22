package cmd

import (
	"github.com/itsmostafa/topdown/internal/generator"
	"github.com/spf13/cobra"
)

var createFlags generateFlags

var createCmd = &cobra.Command{
	Use:   "create [dir]",
	Short: "Generate a table of contents for a directory",
	Long: `Scan dir (default: the current directory) for markdown files and write a
nested table of contents to the output file inside it.

Settings come from the flags, then .topdown.yaml in dir, then the defaults.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return createFlags.run(cmd, targetDir(args), generator.DefaultConfig())
	},
}

func init() {
	createFlags.register(createCmd, generator.DefaultConfig(), true)
	rootCmd.AddCommand(createCmd)
}
