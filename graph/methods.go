package graph

import "sort"

// AddVertex inserts id into the graph if absent. Reports whether a new
// vertex was created.
func (g *Graph) AddVertex(id string) bool {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, ok := g.nodes[id]; ok {
		return false
	}
	g.nodes[id] = &Node{ID: id, neighborIndex: make(map[string]*Edge)}
	g.order = append(g.order, id)

	return true
}

// HasVertex reports whether id exists in the graph.
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// node looks up a node by ID without locking; callers hold the appropriate
// lock already.
func (g *Graph) node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// AddEdge creates an edge from v to w with the given weight, auto-adding
// missing endpoints. Self-loops and (for consistency with the teacher's
// convention) a call naming the same vertex twice are rejected with
// ErrInvalidArgument. If (v,w) already exists, its weight is overwritten
// rather than duplicated, per the external contract.
func (g *Graph) AddEdge(v, w string, weight float64) (*Edge, error) {
	if v == "" || w == "" {
		return nil, ErrInvalidArgument
	}
	if v == w {
		return nil, ErrInvalidArgument
	}

	g.AddVertex(v)
	g.AddVertex(w)

	g.muAdj.Lock()
	defer g.muAdj.Unlock()

	nv, _ := g.node(v)
	nw, _ := g.node(w)

	if existing, ok := nv.neighborIndex[w]; ok {
		existing.Weight = weight
		return existing, nil
	}

	e := &Edge{From: nv, To: nw, Weight: weight}
	nv.out = append(nv.out, e)
	nv.neighborIndex[w] = e
	g.edges = append(g.edges, e)

	if g.directed {
		nw.in = append(nw.in, e)
	} else {
		// Undirected: mirror the same *Edge object into w's adjacency so
		// both endpoints reference one edge, per the external contract.
		nw.out = append(nw.out, e)
		nw.neighborIndex[v] = e
	}

	return e, nil
}

// GetEdge returns the edge between v and w, if any.
func (g *Graph) GetEdge(v, w string) (*Edge, bool) {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	nv, ok := g.node(v)
	if !ok {
		return nil, false
	}
	e, ok := nv.neighborIndex[w]

	return e, ok
}

// EdgeExists reports whether an edge between v and w exists.
func (g *Graph) EdgeExists(v, w string) bool {
	_, ok := g.GetEdge(v, w)
	return ok
}

// RemoveVertex deletes id and all edges incident to it (in both directions
// for directed graphs).
func (g *Graph) RemoveVertex(id string) {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muAdj.Lock()
	defer g.muAdj.Unlock()

	if _, ok := g.nodes[id]; !ok {
		return
	}
	delete(g.nodes, id)
	for i, oid := range g.order {
		if oid == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}

	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.From.ID == id || e.To.ID == id {
			continue
		}
		kept = append(kept, e)
	}
	g.edges = kept

	for _, n := range g.nodes {
		n.out = filterEdges(n.out, id)
		n.in = filterEdges(n.in, id)
		delete(n.neighborIndex, id)
	}
}

func filterEdges(edges []*Edge, removedID string) []*Edge {
	kept := edges[:0]
	for _, e := range edges {
		if e.From.ID == removedID || e.To.ID == removedID {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}

// Vertices returns all vertex IDs in insertion order (or the order fixed
// by the last SortVertices call).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// Edges returns all edges in insertion order (or the order fixed by the
// last SortEdges call). For an undirected graph each edge appears once.
func (g *Graph) Edges() []*Edge {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Node returns the Node for id, for callers (graphalgo) that need direct
// scratch access. Returns (nil, false) if id is absent.
func (g *Graph) Node(id string) (*Node, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	n, ok := g.nodes[id]

	return n, ok
}

// SortVertices reorders Vertices()'s output according to less. Downstream
// algorithms that iterate Vertices() (BFS seeding order, Kruskal's initial
// DSU population) observe this order deterministically.
func (g *Graph) SortVertices(less func(a, b string) bool) {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	sort.SliceStable(g.order, func(i, j int) bool { return less(g.order[i], g.order[j]) })
}

// SortEdges reorders Edges()'s output, and every node's Out()/In() list,
// according to less. Kruskal's MST
// relies on this to impose a specific tie-break order among equal-weight
// edges when the caller wants full determinism beyond weight order alone.
func (g *Graph) SortEdges(less func(a, b *Edge) bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muAdj.Lock()
	defer g.muAdj.Unlock()
	sort.SliceStable(g.edges, func(i, j int) bool { return less(g.edges[i], g.edges[j]) })
	for _, n := range g.nodes {
		sort.SliceStable(n.out, func(i, j int) bool { return less(n.out[i], n.out[j]) })
		sort.SliceStable(n.in, func(i, j int) bool { return less(n.in[i], n.in[j]) })
	}
}
