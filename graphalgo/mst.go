// Package graphalgo: Kruskal — Minimum (or Maximum) Spanning Tree
//
// Sorts all edges by weight and greedily accepts each edge whose endpoints
// are not yet in the same component, tracked with a union-find structure.
// Grounded on the teacher's prim_kruskal.Kruskal, with one change mandated
// by the node-scratch redesign: the disjoint-set parent/rank maps are
// relocated onto Node.Prev (parent pointer) and Node.Depth (rank) instead
// of living in side maps, so Kruskal pays no extra allocation beyond the
// edge slice being sorted.
package graphalgo

import (
	"errors"
	"sort"

	"github.com/katalvlaran/gridpath/graph"
)

// ErrDisconnected is returned by Kruskal when g has more than one vertex
// and is not fully connected, so no spanning tree exists.
var ErrDisconnected = errors.New("graphalgo: graph is disconnected")

// Kruskal computes a minimum (minimizing=true) or maximum (minimizing=false)
// spanning tree of g, returned as a fresh undirected *graph.Graph holding
// only the accepted edges, plus the tree's total weight.
func Kruskal(g *graph.Graph, minimizing bool) (*graph.Graph, int64, error) {
	vertices := g.Vertices()
	tree := graph.NewGraph(false)
	if len(vertices) == 0 {
		return tree, 0, ErrDisconnected
	}
	for _, id := range vertices {
		tree.AddVertex(id)
	}
	if len(vertices) == 1 {
		return tree, 0, nil
	}

	runID := g.NextRun()
	for _, id := range vertices {
		n, _ := g.Node(id)
		n.ResetForRun(runID)
		n.Prev = n // each vertex starts as its own DSU root
		n.Depth = 0
	}

	var find func(n *graph.Node) *graph.Node
	find = func(n *graph.Node) *graph.Node {
		for n.Prev != n {
			n.Prev = n.Prev.Prev // path compression
			n = n.Prev
		}
		return n
	}
	union := func(a, b *graph.Node) {
		ra, rb := find(a), find(b)
		if ra == rb {
			return
		}
		if ra.Depth < rb.Depth {
			ra.Prev = rb
		} else {
			rb.Prev = ra
			if ra.Depth == rb.Depth {
				ra.Depth++
			}
		}
	}

	edges := make([]*graph.Edge, 0, len(g.Edges()))
	for _, e := range g.Edges() {
		if e.From != e.To {
			edges = append(edges, e)
		}
	}
	sort.SliceStable(edges, func(i, j int) bool {
		if minimizing {
			return edges[i].Weight < edges[j].Weight
		}
		return edges[i].Weight > edges[j].Weight
	})

	var total float64
	accepted := 0
	need := len(vertices) - 1
	for _, e := range edges {
		u, _ := g.Node(e.From.ID)
		v, _ := g.Node(e.To.ID)
		u.ResetForRun(runID)
		v.ResetForRun(runID)
		if find(u) == find(v) {
			continue
		}
		union(u, v)
		_, _ = tree.AddEdge(e.From.ID, e.To.ID, e.Weight)
		total += e.Weight
		accepted++
		if accepted == need {
			break
		}
	}

	if accepted < need {
		return nil, 0, ErrDisconnected
	}

	return tree, int64(total), nil
}
