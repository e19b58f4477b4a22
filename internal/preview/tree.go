// Package preview draws a table-of-contents hierarchy as a terminal tree.
package preview

import (
	"github.com/disiqueira/gotree/v3"
	"github.com/itsmostafa/topdown/internal/toc"
)

// GroupSuffix marks nodes without a backing file.
const GroupSuffix = "/"

// Render returns the hierarchy under a root labelled label. Each node
// shows its title and, when exists finds a backing file, that file name.
func Render(tree *toc.Tree, label string, extension string, exists toc.ExistsFunc) string {
	root := gotree.New(label)
	for _, node := range tree.Roots() {
		add(root, node, extension, exists)
	}
	return root.Print()
}

func add(parent gotree.Tree, node *toc.Node, extension string, exists toc.ExistsFunc) {
	branch := parent.Add(nodeLabel(node, extension, exists))
	for _, child := range node.Children() {
		add(branch, child, extension, exists)
	}
}

func nodeLabel(node *toc.Node, extension string, exists toc.ExistsFunc) string {
	filename := node.Path + extension
	if exists != nil && exists(filename) {
		return node.Title + " (" + filename + ")"
	}
	return node.Title + GroupSuffix
}
