package graph

// CloneEmpty returns a new Graph with the same vertices but no edges,
// mirroring core.CloneEmpty from the teacher library. Useful before
// running a destructive algorithm (e.g. twistedline's spanning-tree carve)
// against a graph the caller wants to reuse in its original form.
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	clone := NewGraph(g.directed)
	for _, id := range g.order {
		clone.nodes[id] = &Node{ID: id, neighborIndex: make(map[string]*Edge)}
		clone.order = append(clone.order, id)
	}

	return clone
}

// Clone returns a deep copy of g: all vertices and edges, with fresh Node
// and Edge objects (algorithm scratch is not carried over).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()

	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	for _, e := range g.edges {
		_, _ = clone.AddEdge(e.From.ID, e.To.ID, e.Weight)
	}

	return clone
}
