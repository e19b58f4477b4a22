package toc

// Node is one level of the hierarchy.
type Node struct {
	// Path is the partial path: all segments from the root up to and
	// including this node, joined by the separator.
	Path string

	// Segment is the last segment of Path, before normalization.
	Segment string

	// Title is the display string derived from Segment.
	Title string

	children nodeSet
}

// Children returns the child nodes in insertion order.
func (n *Node) Children() []*Node {
	return n.children.list()
}

// Child returns the direct child with the given partial path.
func (n *Node) Child(path string) (*Node, bool) {
	return n.children.get(path)
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return n.children.len() == 0
}

// Tree is the root of a hierarchy: an ordered set of top-level nodes.
type Tree struct {
	roots nodeSet
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{}
}

// Roots returns the top-level nodes in insertion order.
func (t *Tree) Roots() []*Node {
	return t.roots.list()
}

// Get returns the top-level node with the given partial path.
func (t *Tree) Get(path string) (*Node, bool) {
	return t.roots.get(path)
}

// Walk traverses the tree in depth-first pre-order, calling fn with each
// node and its depth. Top-level nodes have depth 0.
func (t *Tree) Walk(fn func(n *Node, depth int)) {
	var walk func(nodes []*Node, depth int)
	walk = func(nodes []*Node, depth int) {
		for _, node := range nodes {
			fn(node, depth)
			walk(node.Children(), depth+1)
		}
	}
	walk(t.Roots(), 0)
}

// Len returns the total number of nodes, internal and leaf.
func (t *Tree) Len() int {
	count := 0
	t.Walk(func(*Node, int) {
		count++
	})
	return count
}

// Paths returns the partial path of every node in pre-order.
func (t *Tree) Paths() []string {
	var paths []string
	t.Walk(func(n *Node, _ int) {
		paths = append(paths, n.Path)
	})
	return paths
}

// nodeSet is an insertion-ordered mapping from partial path to node.
type nodeSet struct {
	index map[string]*Node
	order []*Node
}

func (s *nodeSet) get(path string) (*Node, bool) {
	node, ok := s.index[path]
	return node, ok
}

// add stores node under its path. Callers check get first; keys are unique.
func (s *nodeSet) add(node *Node) {
	if s.index == nil {
		s.index = make(map[string]*Node)
	}
	s.index[node.Path] = node
	s.order = append(s.order, node)
}

func (s *nodeSet) list() []*Node {
	return s.order
}

func (s *nodeSet) len() int {
	return len(s.order)
}
