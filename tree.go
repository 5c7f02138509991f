package wikimark

import (
	"strconv"
	"strings"
)

// Node is a formatting context in the parse tree. The root node is always
// in the Text state.
type Node struct {
	State    State
	Children []Child
}

// Child is either a leaf text span (Node is nil) or a nested node.
type Child struct {
	Node *Node
	Text string
}

// IsLeaf reports whether the child is a text span.
func (c Child) IsLeaf() bool {
	return c.Node == nil
}

func (n *Node) appendText(text string) {
	n.Children = append(n.Children, Child{Text: text})
}

func (n *Node) appendNode(child *Node) {
	n.Children = append(n.Children, Child{Node: child})
}

// Text returns the concatenated leaf text of the subtree in document order.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	n.writeText(&b)
	return b.String()
}

func (n *Node) writeText(b *strings.Builder) {
	for _, c := range n.Children {
		if c.Node == nil {
			b.WriteString(c.Text)
			continue
		}
		c.Node.writeText(b)
	}
}

// TextByState returns, in document order, the text of every node whose own
// state is s. Ancestor states are irrelevant. A node nested inside another
// node of the same state is already covered by its ancestor and is not
// counted twice.
func (n *Node) TextByState(s State) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	n.writeTextByState(&b, s)
	return b.String()
}

func (n *Node) writeTextByState(b *strings.Builder, s State) {
	if n.State == s {
		n.writeText(b)
		return
	}
	for _, c := range n.Children {
		if c.Node != nil {
			c.Node.writeTextByState(b, s)
		}
	}
}

// Segments flattens the tree into the flat form: one segment per leaf in
// pre-order, tagged with the state of the node that directly holds it.
func (n *Node) Segments() []Segment {
	if n == nil {
		return nil
	}
	var out []Segment
	return n.appendSegments(out)
}

func (n *Node) appendSegments(out []Segment) []Segment {
	for _, c := range n.Children {
		if c.Node == nil {
			out = append(out, Segment{State: n.State, Text: c.Text})
			continue
		}
		out = c.Node.appendSegments(out)
	}
	return out
}

// Walk visits n and its descendant nodes in pre-order. Returning false from
// fn skips the children of that node.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	if n == nil {
		return
	}
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		if c.Node != nil {
			c.Node.walk(fn, depth+1)
		}
	}
}

// String renders the tree for debugging, e.g. text["a " bold["b"]].
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	var b strings.Builder
	n.writeDebug(&b)
	return b.String()
}

func (n *Node) writeDebug(b *strings.Builder) {
	b.WriteString(n.State.String())
	b.WriteByte('[')
	for i, c := range n.Children {
		if i > 0 {
			b.WriteByte(' ')
		}
		if c.Node == nil {
			b.WriteString(strconv.Quote(c.Text))
			continue
		}
		c.Node.writeDebug(b)
	}
	b.WriteByte(']')
}
