package wikimark

// Stats summarises a parse tree.
type Stats struct {
	// Bytes is the size of the parsed markup.
	Bytes int
	// Nodes counts formatting nodes, excluding the root.
	Nodes  int
	Leaves int
	// TextBytes is the size of all leaf text.
	TextBytes int
	MaxDepth  int
	ByState   map[State]int
}

// CollectStats walks root and counts nodes and leaves per state.
func CollectStats(root *Node, inputBytes int) Stats {
	st := Stats{Bytes: inputBytes, ByState: make(map[State]int)}
	root.Walk(func(n *Node, depth int) bool {
		if depth > 0 {
			st.Nodes++
			st.ByState[n.State]++
		}
		if depth > st.MaxDepth {
			st.MaxDepth = depth
		}
		for _, c := range n.Children {
			if c.Node == nil {
				st.Leaves++
				st.TextBytes += len(c.Text)
			}
		}
		return true
	})
	return st
}
