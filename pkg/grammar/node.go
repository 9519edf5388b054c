package grammar

// Node is a node of the concrete syntax tree. Interior nodes carry the
// meaningful children of a construct; surrounding punctuation is covered by
// the node's byte range but not materialized as children.
type Node struct {
	kind     string
	start    int
	end      int
	children []*Node
	err      bool
}

// Kind returns the node kind, e.g. "select_statement" or "column".
func (n *Node) Kind() string { return n.kind }

// StartByte returns the byte offset where the node begins.
func (n *Node) StartByte() int { return n.start }

// EndByte returns the byte offset just past the node.
func (n *Node) EndByte() int { return n.end }

// ChildCount returns the number of children.
func (n *Node) ChildCount() int { return len(n.children) }

// Child returns the i-th child, or nil when out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Content returns the source text the node spans.
func (n *Node) Content(source string) string {
	return source[n.start:n.end]
}

// HasError reports whether the node or any of its descendants failed to
// parse.
func (n *Node) HasError() bool {
	if n.err {
		return true
	}
	for _, c := range n.children {
		if c.HasError() {
			return true
		}
	}
	return false
}

// Walk returns a cursor positioned on the node.
func (n *Node) Walk() *Cursor {
	return &Cursor{stack: []cursorFrame{{node: n}}}
}

type cursorFrame struct {
	node  *Node
	index int
}

// Cursor walks a syntax tree. It starts on the node it was created from and
// never moves above it.
type Cursor struct {
	stack []cursorFrame
}

// Node returns the node the cursor is on.
func (c *Cursor) Node() *Node {
	return c.stack[len(c.stack)-1].node
}

// GotoFirstChild moves to the first child. It returns false and stays put on
// a leaf.
func (c *Cursor) GotoFirstChild() bool {
	n := c.Node()
	if len(n.children) == 0 {
		return false
	}
	c.stack = append(c.stack, cursorFrame{node: n.children[0]})
	return true
}

// GotoNextSibling moves to the next sibling. It returns false and stays put
// on a last child or on the root.
func (c *Cursor) GotoNextSibling() bool {
	if len(c.stack) < 2 {
		return false
	}
	parent := c.stack[len(c.stack)-2]
	frame := &c.stack[len(c.stack)-1]
	if frame.index+1 >= len(parent.node.children) {
		return false
	}
	frame.index++
	frame.node = parent.node.children[frame.index]
	return true
}

// GotoParent moves to the parent. It returns false and stays put on the node
// the cursor was created from.
func (c *Cursor) GotoParent() bool {
	if len(c.stack) < 2 {
		return false
	}
	c.stack = c.stack[:len(c.stack)-1]
	return true
}
