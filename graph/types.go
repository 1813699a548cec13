package graph

import (
	"errors"
	"sync"
	"sync/atomic"
)

// Sentinel errors for graph operations.
var (
	// ErrInvalidArgument covers self-loops and other malformed arguments
	// to a graph mutation.
	ErrInvalidArgument = errors.New("graph: invalid argument")
	// ErrVertexNotFound indicates a query referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")
)

// Edge is a connection between two nodes with an associated weight.
// Directed edges compare (From, To) as an ordered pair; undirected edges
// are mirrored so both endpoints reference the same *Edge object.
type Edge struct {
	From, To *Node
	Weight   float64
}

// Node is a vertex plus its adjacency and algorithm scratch. Scratch
// fields (Visited, Seen, Distance, Estimate, Prev, Depth) are owned by
// whichever graphalgo entrypoint is currently running against the
// enclosing Graph; they are meaningful only when LastRunID equals the
// Graph's current run ID (see ResetForRun).
type Node struct {
	ID string

	out           []*Edge
	in            []*Edge // populated only for directed graphs
	neighborIndex map[string]*Edge

	// Algorithm scratch, invalidated lazily by run ID.
	Visited   bool
	Seen      bool
	Distance  float64
	Estimate  float64
	Prev      *Node
	Depth     int
	LastRunID uint64
}

// Out returns the node's outgoing edges in insertion order (or the order
// fixed by the last SortEdges call).
func (n *Node) Out() []*Edge { return n.out }

// In returns the node's incoming edges. For undirected graphs this is
// always empty; Out already carries both directions via the mirrored
// edge object.
func (n *Node) In() []*Edge { return n.in }

// ResetForRun zeroes n's algorithm scratch the first time it's touched
// during runID. This is the lazy-reset idiom: a query over a large graph
// pays only for the nodes it actually visits, not for every vertex.
// graphalgo calls this on every node it touches before reading or writing
// scratch fields.
func (n *Node) ResetForRun(runID uint64) {
	if n.LastRunID == runID {
		return
	}
	n.Visited = false
	n.Seen = false
	n.Distance = 0
	n.Estimate = 0
	n.Prev = nil
	n.Depth = 0
	n.LastRunID = runID
}

// Graph is a vertex/edge graph, directed or undirected. Mutation is
// protected by a dual RWMutex split mirroring the teacher library: muVert
// guards the vertex set, muAdj guards edges and adjacency.
type Graph struct {
	muVert sync.RWMutex
	muAdj  sync.RWMutex

	directed bool
	nodes    map[string]*Node
	order    []string // insertion (or last SortVertices) order
	edges    []*Edge  // insertion (or last SortEdges) order

	runID uint64 // atomic; bumped once per graphalgo entrypoint
}

// NewGraph constructs an empty Graph. directed=true produces a directed
// graph; otherwise edges are mirrored into both adjacency sides.
func NewGraph(directed bool) *Graph {
	return &Graph{
		directed: directed,
		nodes:    make(map[string]*Node),
	}
}

// Directed reports whether g stores directed edges.
func (g *Graph) Directed() bool { return g.directed }

// NextRun bumps and returns the graph's run ID. graphalgo entrypoints call
// this exactly once per invocation; Node.ResetForRun compares against the
// returned value.
func (g *Graph) NextRun() uint64 {
	return atomic.AddUint64(&g.runID, 1)
}

// RunID returns the current run ID without bumping it.
func (g *Graph) RunID() uint64 {
	return atomic.LoadUint64(&g.runID)
}

// ResetScratch eagerly zeroes every node's algorithm scratch. Most callers
// never need this — the lazy run-ID check handles it — but it's useful
// before handing a *Graph to code outside gridpath that inspects Node
// fields directly without going through graphalgo.
func (g *Graph) ResetScratch() {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	runID := g.NextRun()
	for _, n := range g.nodes {
		n.ResetForRun(runID)
	}
}
