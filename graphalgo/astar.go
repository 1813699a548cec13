// Package graphalgo: A* — Shortest Paths with an Optional Heuristic
//
// Description:
//
//	Computes the minimum-cost path from a start vertex to a target vertex.
//	Dijkstra is the special case where Heuristic is nil (estimate is
//	always zero).
//
// Algorithm outline (mirrors the teacher's dijkstraRunner, generalized
// with an admissible-heuristic estimate term):
//  1. Validate start and target exist.
//  2. Push (start, distance=0, estimate=h(start,target)) into a min-heap
//     keyed by distance+estimate.
//  3. Pop the minimum-key node. If it is the target, reconstruct the path
//     via Node.Prev and return.
//  4. Otherwise mark visited; relax each outgoing edge. A node's estimate
//     is computed once, on first touch (Node.Seen), and cached.
//  5. If the heap empties without reaching target, return an empty path
//     and math.MaxFloat64.
//
// Complexity: O((V+E) log V). Memory: O(V+E).
package graphalgo

import (
	"math"

	"github.com/emirpasic/gods/queues/priorityqueue"
	godsutils "github.com/emirpasic/gods/utils"

	"github.com/katalvlaran/gridpath/graph"
)

// Heuristic estimates the remaining cost from a to b. A nil Heuristic
// turns AStar into plain Dijkstra.
type Heuristic func(a, b string) float64

// astarItem is the priority-queue payload: a node plus the key it was
// pushed with (distance+estimate), so stale entries popped after a better
// one was already processed can be cheaply skipped.
type astarItem struct {
	node *graph.Node
	key  float64
}

// AStar finds the shortest path from start to target in g. If h is nil,
// this is exactly Dijkstra's algorithm. Returns the path as a slice of
// vertex IDs (start..target inclusive), its total cost, and an error only
// for invalid arguments — "no path" is reported as a nil path and a cost
// of math.MaxFloat64.
func AStar(g *graph.Graph, start, target string, h Heuristic) ([]string, float64, error) {
	if !g.HasVertex(start) || !g.HasVertex(target) {
		return nil, 0, graph.ErrVertexNotFound
	}

	runID := g.NextRun()
	startNode, _ := g.Node(start)
	startNode.ResetForRun(runID)
	startNode.Distance = 0
	startNode.Seen = true
	if h != nil {
		startNode.Estimate = h(start, target)
	}

	pq := priorityqueue.NewWith(func(x, y interface{}) int {
		a, b := x.(astarItem), y.(astarItem)
		return godsutils.Float64Comparator(a.key, b.key)
	})
	pq.Enqueue(astarItem{node: startNode, key: startNode.Distance + startNode.Estimate})

	for !pq.Empty() {
		raw, _ := pq.Dequeue()
		item := raw.(astarItem)
		u := item.node
		u.ResetForRun(runID)

		if u.Visited {
			continue // stale entry; a cheaper one already settled u
		}
		if item.key > u.Distance+u.Estimate+1e-12 {
			continue // stale entry superseded by a later, cheaper push
		}

		if u.ID == target {
			return reconstructPath(u), u.Distance, nil
		}
		u.Visited = true

		for _, e := range u.Out() {
			v := e.To
			if v == u {
				v = e.From // undirected edge stored with u as its To end
			}
			v.ResetForRun(runID)
			if v.Visited {
				continue
			}
			newDist := u.Distance + e.Weight
			if !v.Seen || newDist < v.Distance {
				v.Distance = newDist
				v.Prev = u
				if !v.Seen && h != nil {
					v.Estimate = h(v.ID, target)
				}
				v.Seen = true
				pq.Enqueue(astarItem{node: v, key: v.Distance + v.Estimate})
			}
		}
	}

	return nil, math.MaxFloat64, nil
}

// Dijkstra is AStar with a zero heuristic.
func Dijkstra(g *graph.Graph, start, target string) ([]string, float64, error) {
	return AStar(g, start, target, nil)
}

func reconstructPath(target *graph.Node) []string {
	var rev []string
	for n := target; n != nil; n = n.Prev {
		rev = append(rev, n.ID)
	}
	path := make([]string, len(rev))
	for i, id := range rev {
		path[len(rev)-1-i] = id
	}
	return path
}
