package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/itsmostafa/topdown/internal/generator"
	"github.com/itsmostafa/topdown/internal/preview"
	"github.com/itsmostafa/topdown/internal/toc"
	"github.com/spf13/cobra"
)

var treeFlags generateFlags

var treeCmd = &cobra.Command{
	Use:   "tree [dir]",
	Short: "Preview the hierarchy without writing anything",
	Long: `Print the hierarchy topdown would build for dir. Entries ending in "/" have
no backing file and are rendered as plain headings.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := targetDir(args)
		cfg, err := treeFlags.resolveConfig(cmd, dir, generator.DefaultConfig())
		if err != nil {
			return err
		}

		g, err := generator.New(dir, cfg)
		if err != nil {
			return err
		}
		tree, _, err := g.Tree()
		if err != nil {
			return err
		}

		label := dir
		if abs, err := filepath.Abs(dir); err == nil {
			label = filepath.Base(abs)
		}
		fmt.Fprint(cmd.OutOrStdout(), preview.Render(tree, label, toc.DefaultExtension, g.Exists()))
		return nil
	},
}

func init() {
	treeFlags.registerScan(treeCmd, generator.DefaultConfig(), true)
	rootCmd.AddCommand(treeCmd)
}
