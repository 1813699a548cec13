// Package graphalgo implements the classic graph queries gridpath needs on
// top of a *graph.Graph: A* and Dijkstra shortest paths, BFS and DFS
// traversal, topological sort, Kruskal minimum/maximum spanning tree, and
// cycle detection.
//
// What
//
//   - AStar/Dijkstra share one priority-queue relaxation loop; Dijkstra is
//     AStar with a nil (zero) heuristic.
//   - BFS/DFS expose OnEnqueue/OnVisit hooks, modelled on the teacher
//     library's walker design, plus MaxVertices/MaxDepth caps.
//   - TopologicalSort uses cursor-based in-place rearrangement during a
//     recursive DFS post-order walk; a back edge onto the live recursion
//     stack reports ErrCycleDetected.
//   - Kruskal computes a minimum or maximum spanning tree via sort-edges
//     + union-find, reusing Node.Prev/Node.Depth as the DSU parent/rank
//     fields per the graph package's design.
//   - ContainsCycle runs a DFS tracking the live recursion stack as a set.
//
// Errors
//
//	All queries over a missing vertex fail with graph.ErrVertexNotFound.
//	A*/Dijkstra finding no path is not an error: they return an empty path
//	and a distance of math.MaxFloat64 (the spec's "unreachable" sentinel).
package graphalgo
