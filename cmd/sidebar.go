package cmd

import (
	"github.com/itsmostafa/topdown/internal/generator"
	"github.com/spf13/cobra"
)

var sidebarFlags generateFlags

var sidebarCmd = &cobra.Command{
	Use:   "sidebar [dir]",
	Short: "Generate _Sidebar.md for a GitHub wiki",
	Long: `Generate the _Sidebar.md of a cloned GitHub wiki. Links omit the .md
extension and Home.md, _Sidebar.md and _Footer.md are left out. Ignore entries
from .topdown.yaml and --ignore are added to that list.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return sidebarFlags.run(cmd, targetDir(args), generator.GitHubWikiSidebar())
	},
}

func init() {
	sidebarFlags.register(sidebarCmd, generator.GitHubWikiSidebar(), false)
	rootCmd.AddCommand(sidebarCmd)
}
