// Package toc builds a hierarchical table of contents from flat markdown
// filenames whose names encode a hierarchy.
//
// # Overview
//
// Documentation repositories such as GitHub wikis are flat directories. A
// separator inside the filename expresses nesting:
//
//	Guide.md
//	Guide--Install.md
//	Guide--Install--Linux.md
//	FAQ.md
//
// The package turns such a listing into an ordered tree and renders the tree
// as an indented markdown link list.
//
// # Key Concepts
//
//   - Partial path: the separator-joined segments from the root to a node.
//     It is both the node's key and the stem of its candidate backing file.
//
//   - Grouping node: a node with no backing file. It renders as plain text
//     and only exists to hold children sharing a prefix.
//
//   - Ordering: nodes keep the order in which filenames were inserted. The
//     package never sorts.
//
// # Usage
//
//	tree := toc.Build(filenames, "--")
//	opts := toc.DefaultOptions()
//	opts.Exists = toc.FileExists(os.DirFS(dir))
//	lines := toc.Render(tree, opts)
//	doc := toc.Assemble(toc.Heading("Table of Contents"), lines, nil)
//
// # Architecture
//
//   - title.go: Normalize, converting a filename segment into a display title
//   - tree.go: Tree and Node with insertion-ordered children
//   - builder.go: Builder, splitting filenames and merging them into a Tree
//   - render.go: Render and Options, the depth-first line renderer
//   - document.go: Heading and Assemble
package toc
