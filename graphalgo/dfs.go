// Package graphalgo: DFS — Depth-First Search
//
// Explores as far as possible along each branch before backtracking.
// Shares TraversalOptions/TraversalResult with BFS; the traversal order and
// depth differ but the spanning-tree/cutoff semantics match.
package graphalgo

import (
	"context"

	"github.com/katalvlaran/gridpath/graph"
)

// DFS performs a depth-first search on g from start.
func DFS(g *graph.Graph, start string, opts *TraversalOptions) (*TraversalResult, error) {
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
	visited := map[string]bool{start: true}

	w := &dfsWalker{g: g, opts: opts, res: res, ctx: ctx, visited: visited}
	err := w.traverse(start, 0)

	return res, err
}

type dfsWalker struct {
	g       *graph.Graph
	opts    *TraversalOptions
	res     *TraversalResult
	ctx     context.Context
	visited map[string]bool
}

func (w *dfsWalker) traverse(id string, depth int) error {
	select {
	case <-w.ctx.Done():
		return w.ctx.Err()
	default:
	}
	if w.opts.MaxVertices > 0 && len(w.res.Order) >= w.opts.MaxVertices {
		w.res.CutOff = true
		return nil
	}

	w.res.Order = append(w.res.Order, id)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			return err
		}
	}

	if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
		w.res.CutOff = true
		return nil
	}

	n, _ := w.g.Node(id)
	for _, e := range n.Out() {
		nbr := e.To.ID
		if e.To == n {
			nbr = e.From.ID // undirected edge stored with n as its To end
		}
		if w.visited[nbr] {
			continue
		}
		w.visited[nbr] = true
		if w.opts.OnEnqueue != nil {
			w.opts.OnEnqueue(nbr, depth+1)
		}
		w.res.Spine.AddVertex(nbr)
		_, _ = w.res.Spine.AddEdge(id, nbr, e.Weight)
		if err := w.traverse(nbr, depth+1); err != nil {
			return err
		}
	}

	return nil
}
