package generator

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	// titleStyle for bold headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33"))

	// dimStyle for muted labels
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for a written file
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// boxStyle for the summary box
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1)
)

// FormatSummary prints what a Create run did. With styled false the
// summary is plain text, for pipes and log files.
func FormatSummary(w io.Writer, result *Result, styled bool) {
	status := "unchanged"
	if result.Written {
		status = "written"
	}
	footer := result.FooterSource
	if footer == "" {
		footer = "none"
	}

	if !styled {
		fmt.Fprintf(w, "%s: %s (files: %d, entries: %d, footer: %s)\n",
			result.Output, status, result.Files, result.Nodes, footer)
		return
	}

	if result.Written {
		status = successStyle.Render(status)
	} else {
		status = dimStyle.Render(status)
	}

	content := fmt.Sprintf("%s\n%s %s  %s\n%s %d  %s %d  %s %s",
		titleStyle.Render("Table of Contents"),
		dimStyle.Render("Output:"), result.Output, status,
		dimStyle.Render("Files:"), result.Files,
		dimStyle.Render("Entries:"), result.Nodes,
		dimStyle.Render("Footer:"), footer,
	)
	fmt.Fprintln(w, boxStyle.Render(content))
}
