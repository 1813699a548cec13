// Package graphalgo: topological sort via cursor-based DFS rearrangement.
//
// Visits vertices with a recursive DFS; on post-order, the just-finished
// vertex is moved to just after a cursor that starts at the end of the
// working slice and steps backward on each placement. A vertex found with
// Seen==true while still on the active recursion stack indicates a cycle,
// reported as ErrCycleDetected together with a nil order.
package graphalgo

import (
	"errors"

	"github.com/katalvlaran/gridpath/graph"
)

// ErrCycleDetected is returned by TopologicalSort when g is not a DAG.
var ErrCycleDetected = errors.New("graphalgo: cycle detected")

// TopologicalSort returns a topological ordering of g's vertices, or
// ErrCycleDetected if g contains a cycle.
func TopologicalSort(g *graph.Graph) ([]string, error) {
	runID := g.NextRun()
	order := append([]string(nil), g.Vertices()...)
	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	cursor := len(order)

	var dfs func(id string) error
	dfs = func(id string) error {
		n, _ := g.Node(id)
		n.ResetForRun(runID)

		if n.Visited {
			return nil // already finalized
		}
		if n.Seen {
			return ErrCycleDetected // on the active recursion stack: a back edge
		}
		n.Seen = true

		for _, e := range n.Out() {
			if err := dfs(e.To.ID); err != nil {
				return err
			}
		}

		n.Seen = false
		n.Visited = true

		// Move id to just after cursor, shifting the gap left.
		idx := pos[id]
		cursor--
		other := order[cursor]
		order[idx], order[cursor] = order[cursor], order[idx]
		pos[id] = cursor
		pos[other] = idx

		return nil
	}

	for _, id := range g.Vertices() {
		n, _ := g.Node(id)
		n.ResetForRun(runID)
		if n.Visited {
			continue
		}
		if err := dfs(id); err != nil {
			return nil, err
		}
	}

	return order, nil
}
