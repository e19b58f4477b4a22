package toc

import (
	"fmt"
	"io/fs"
	"strings"
)

// ListStyle selects the list marker of rendered lines.
type ListStyle string

const (
	// Unordered renders "- " bullets.
	Unordered ListStyle = "unordered"

	// Ordered renders "1. " on every line at every depth. Markdown renderers
	// renumber the items, so the marker is never incremented.
	Ordered ListStyle = "ordered"
)

// ParseListStyle validates a list style name. The empty string selects
// Unordered.
func ParseListStyle(value string) (ListStyle, error) {
	switch ListStyle(strings.ToLower(strings.TrimSpace(value))) {
	case "", Unordered:
		return Unordered, nil
	case Ordered:
		return Ordered, nil
	default:
		return "", fmt.Errorf("unsupported list format %q (supported: unordered, ordered)", value)
	}
}

// Marker returns the list marker for the style.
func (s ListStyle) Marker() string {
	if s == Ordered {
		return "1. "
	}
	return "- "
}

// ExistsFunc reports whether a backing file with the given name exists.
type ExistsFunc func(name string) bool

// FileExists returns an ExistsFunc that looks up regular files in fsys.
func FileExists(fsys fs.FS) ExistsFunc {
	return func(name string) bool {
		if !fs.ValidPath(name) {
			return false
		}
		info, err := fs.Stat(fsys, name)
		return err == nil && info.Mode().IsRegular()
	}
}

// Options configures Render.
type Options struct {
	// Style is the list marker style.
	Style ListStyle

	// FileExt controls whether link targets keep the document extension.
	// GitHub wikis link to pages without it.
	FileExt bool

	// Extension is appended to a partial path to get the candidate backing
	// filename.
	Extension string

	// Exists decides whether a node is rendered as a link. A nil Exists
	// renders every node as plain text.
	Exists ExistsFunc
}

// DefaultOptions returns unordered, extension-keeping markdown options with
// no existence check.
func DefaultOptions() Options {
	return Options{
		Style:     Unordered,
		FileExt:   true,
		Extension: DefaultExtension,
	}
}

// Render walks tree depth-first and returns one line per node.
func Render(tree *Tree, opts Options) []string {
	lines := make([]string, 0, tree.Len())
	tree.Walk(func(n *Node, depth int) {
		lines = append(lines, renderLine(n, depth, opts))
	})
	return lines
}

func renderLine(n *Node, depth int, opts Options) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(opts.Style.Marker())

	filename := n.Path + opts.Extension
	if opts.Exists == nil || !opts.Exists(filename) {
		sb.WriteString(n.Title)
		return sb.String()
	}

	target := n.Path
	if opts.FileExt {
		target = filename
	}
	fmt.Fprintf(&sb, "[%s](%s)", n.Title, target)
	return sb.String()
}
