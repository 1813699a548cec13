// Package twistedline carves a random spanning tree over a rectangular
// grid and extracts the unique, meandering path between any two cells of
// that tree (spec §4.7) — used for winding corridors, rivers, or patrol
// routes that should feel organic rather than a straight line. Regenerate
// carves a replacement tree over the same vertex set without disturbing a
// tree the caller is still holding onto.
package twistedline
