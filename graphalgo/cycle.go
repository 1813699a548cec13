// Package graphalgo: ContainsCycle — cycle detection over all components.
//
// Runs a DFS from every unvisited vertex, tracking the live recursion
// stack in a github.com/emirpasic/gods/sets/hashset. A directed graph has
// a cycle iff DFS ever re-touches a vertex still on that stack. For an
// undirected graph the edge straight back to the immediate parent is not
// a cycle (it's the same edge traversed backward) and must be skipped;
// any other encounter with a stacked vertex is a real cycle.
package graphalgo

import (
	"github.com/emirpasic/gods/sets/hashset"

	"github.com/katalvlaran/gridpath/graph"
)

// ContainsCycle reports whether g contains a cycle.
func ContainsCycle(g *graph.Graph) bool {
	visited := make(map[string]bool)
	onStack := hashset.New()

	var dfs func(id string, parentEdge *graph.Edge) bool
	dfs = func(id string, parentEdge *graph.Edge) bool {
		visited[id] = true
		onStack.Add(id)

		n, _ := g.Node(id)
		for _, e := range n.Out() {
			if !g.Directed() && e == parentEdge {
				continue // the edge we just arrived by; not a cycle
			}
			nbr := e.To.ID
			if e.To == n {
				nbr = e.From.ID // undirected edge stored with n as its To end
			}
			if onStack.Contains(nbr) {
				return true
			}
			if !visited[nbr] {
				if dfs(nbr, e) {
					return true
				}
			}
		}

		onStack.Remove(id)
		return false
	}

	for _, id := range g.Vertices() {
		if !visited[id] {
			if dfs(id, nil) {
				return true
			}
		}
	}

	return false
}
