// Package graphalgo: BFS — Breadth-First Search
//
// Explores vertices in non-decreasing edge-count distance from a start
// vertex. Every visited vertex, and the edge by which it was reached, is
// recorded into an output *graph.Graph (a BFS spanning tree/forest), per
// spec.md §4.2. Terminates early once MaxVertices have been explored or
// MaxDepth is exceeded.
package graphalgo

import (
	"context"

	"github.com/katalvlaran/gridpath/graph"
)

// TraversalOptions configures BFS and DFS traversal.
type TraversalOptions struct {
	Ctx context.Context

	// MaxVertices caps the number of vertices explored; 0 means no cap.
	MaxVertices int
	// MaxDepth caps exploration depth; 0 means no cap.
	MaxDepth int

	OnEnqueue func(id string, depth int)
	OnVisit   func(id string, depth int) error
}

// TraversalResult holds the outcome of a BFS or DFS traversal.
type TraversalResult struct {
	Order  []string
	Spine  *graph.Graph // spanning tree/forest of visited vertices and reaching edges
	CutOff bool         // true if MaxVertices or MaxDepth stopped exploration early
}

// BFS performs a breadth-first search on g from start.
func BFS(g *graph.Graph, start string, opts *TraversalOptions) (*TraversalResult, error) {
	if !g.HasVertex(start) {
		return nil, graph.ErrVertexNotFound
	}
	if opts == nil {
		opts = &TraversalOptions{}
	}
	ctx := opts.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	res := &TraversalResult{Spine: graph.NewGraph(g.Directed())}
	res.Spine.AddVertex(start)

	type item struct {
		id    string
		depth int
	}
	queue := []item{{id: start, depth: 0}}
	visited := map[string]bool{start: true}
	if opts.OnEnqueue != nil {
		opts.OnEnqueue(start, 0)
	}

	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}
		if opts.MaxVertices > 0 && len(res.Order) >= opts.MaxVertices {
			res.CutOff = true
			break
		}

		cur := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, cur.id)
		if opts.OnVisit != nil {
			if err := opts.OnVisit(cur.id, cur.depth); err != nil {
				return res, err
			}
		}

		if opts.MaxDepth > 0 && cur.depth >= opts.MaxDepth {
			res.CutOff = true
			continue
		}

		n, _ := g.Node(cur.id)
		for _, e := range n.Out() {
			nbr := e.To.ID
			if e.To == n {
				nbr = e.From.ID // undirected edge stored with n as its To end
			}
			if visited[nbr] {
				continue
			}
			visited[nbr] = true
			d := cur.depth + 1
			res.Spine.AddVertex(nbr)
			_, _ = res.Spine.AddEdge(cur.id, nbr, e.Weight)
			if opts.OnEnqueue != nil {
				opts.OnEnqueue(nbr, d)
			}
			queue = append(queue, item{id: nbr, depth: d})
		}
	}

	return res, nil
}
