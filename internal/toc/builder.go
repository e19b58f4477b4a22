package toc

import "strings"

const (
	// DefaultSeparator splits a filename into hierarchy segments.
	DefaultSeparator = "--"

	// DefaultExtension is the document extension of scanned files.
	DefaultExtension = ".md"
)

// Builder merges filenames into a Tree.
type Builder struct {
	// Separator splits a filename stem into segments and joins them back
	// into partial paths.
	Separator string

	// Extension is stripped from the end of every filename before splitting.
	Extension string
}

// NewBuilder returns a Builder for the given separator and extension.
func NewBuilder(separator, extension string) *Builder {
	return &Builder{Separator: separator, Extension: extension}
}

// Build converts filenames into a tree using separator and the default
// markdown extension.
func Build(filenames []string, separator string) *Tree {
	return NewBuilder(separator, DefaultExtension).Build(filenames)
}

// Build inserts every filename, in order, into a fresh tree.
func (b *Builder) Build(filenames []string) *Tree {
	tree := NewTree()
	for _, filename := range filenames {
		b.Insert(tree, filename)
	}
	return tree
}

// Insert adds one filename to tree. Missing ancestors are created as
// grouping nodes; existing nodes are reused and keep their title.
func (b *Builder) Insert(tree *Tree, filename string) {
	insert(&tree.roots, b.Segments(filename), nil, b.Separator)
}

// Segments returns the hierarchy segments of filename after its extension
// has been removed. An empty stem yields a single empty segment.
func (b *Builder) Segments(filename string) []string {
	stem := strings.TrimSuffix(filename, b.Extension)
	return strings.Split(stem, b.Separator)
}

// insert places the first of remaining under parent and recurses into the
// node for the rest. path holds the segments already consumed.
func insert(parent *nodeSet, remaining, path []string, separator string) {
	if len(remaining) == 0 {
		return
	}
	segment := remaining[0]
	path = append(path, segment)
	childPath := strings.Join(path, separator)

	node, ok := parent.get(childPath)
	if !ok {
		node = &Node{
			Path:    childPath,
			Segment: segment,
			Title:   Normalize(segment),
		}
		parent.add(node)
	}

	insert(&node.children, remaining[1:], path, separator)
}
