// Package distfield implements the distance-field engine: a multi-goal
// wave scan over a cost/wall grid that produces a gradient map (minimum
// cost from any goal to each cell), plus the derived queries built on top
// of it (nearest-cell search, flood fill).
//
// A DistanceField owns three synchronized buffers — physical (the
// immutable wall/floor layout), cost (per-cell entry cost), and gradient
// (the live scan result) — plus the current goal list. Initialize is the
// only operation that may change the grid's shape; every other method
// mutates buffers in place. A DistanceField is single-threaded and
// non-reentrant: concurrent callers must each own an instance.
package distfield
