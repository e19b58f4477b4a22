package toc

import (
	"runtime"
	"strings"
)

// LineTerminator separates lines of an assembled document.
var LineTerminator = lineTerminator(runtime.GOOS)

func lineTerminator(goos string) string {
	if goos == "windows" {
		return "\r\n"
	}
	return "\n"
}

// Heading returns the level one heading line for title.
func Heading(title string) string {
	return "# " + title
}

// Assemble joins the heading, the rendered lines and the footer lines into
// the final document. No blank line is inserted between the parts and no
// terminator follows the last line.
func Assemble(heading string, lines []string, footer []string) string {
	content := make([]string, 0, 1+len(lines)+len(footer))
	content = append(content, heading)
	content = append(content, lines...)
	content = append(content, footer...)
	return strings.Join(content, LineTerminator)
}

// SplitLines splits text on any line ending. A single trailing line ending
// does not produce an empty last line.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
