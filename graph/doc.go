// Package graph defines the vertex/edge graph shared by the A*, MST,
// topological-sort, and twisted-line layers of gridpath.
//
// What
//
//   - Graph is a map from vertex ID to *Node, directed or undirected.
//   - Node carries an ordered out-edge list (and, for directed graphs, an
//     ordered in-edge list), a neighbour→edge index for O(1) lookup, and
//     mutable algorithm scratch: Visited, Seen, Distance, Estimate, Prev,
//     Depth, LastRunID.
//   - graphalgo.AStar (and so Dijkstra), TopologicalSort and Kruskal call
//     Graph.NextRun once per invocation, bumping a monotonically increasing
//     run counter. BFS, DFS and ContainsCycle do not call it: they track
//     visited vertices in their own maps and never touch node scratch.
//     A node's scratch is considered stale — and is lazily zeroed — the
//     moment its LastRunID no longer matches the graph's current run ID.
//     This avoids an O(V) reset pass before every query.
//
// Why
//
//   - Thread-safety: a dual sync.RWMutex split (one lock for the vertex
//     set, one for edges+adjacency) lets read-only traversals run
//     concurrently across goroutines sharing one *Graph, mirroring the
//     teacher library's locking discipline. A *Graph being actively
//     algorithm-scratched (A*, MST, ...) is not safe for concurrent use —
//     scratch fields are plain, unlocked struct fields by design, since
//     locking per-field in a tight relaxation loop would defeat the point
//     of the optimization.
//   - Determinism: SortVertices/SortEdges fix an iteration order that
//     every downstream algorithm (BFS, DFS, Kruskal, A*) honors when
//     breaking ties, so repeated runs over an unchanged graph are
//     reproducible.
package graph
