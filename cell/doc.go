// Package cell defines the grid primitives shared by every other gridpath
// package: the Cell coordinate value, the eight-compass Direction enum, and
// the Measurement metric (Manhattan, Chebyshev, Euclidean) used to derive
// per-direction step costs and admissible A* heuristics.
//
// What
//
//   - Cell is a value type: two non-negative ints, compared by value.
//   - Direction carries a (DX, DY) delta in {-1,0,1}² plus the DirNone
//     sentinel used by path extractors to mean "no direction chosen yet".
//   - Measurement selects which direction set is legal (4 or 8) and how a
//     diagonal step is priced.
//
// Why
//
//   - Every higher package (graph, distfield, pathfind, zone, twistedline)
//     walks a grid in terms of these three types; centralizing them keeps
//     direction tables and heuristics defined exactly once.
package cell
