// Package costmap turns a character grid into the cost/wall buffers and
// adjacency graph the rest of gridpath operates on.
//
// A tile's character determines whether it blocks movement (wall) and, if
// not, how expensive it is to enter. The resulting *graph.Graph direction
// convention is the one subtlety worth remembering: an edge runs from a
// neighbour into a cell, weighted by the cell's own entry cost — so the
// cost of stepping onto a tile is charged regardless of which direction
// you approached from, while the graph itself stays conceptually
// undirected in wall topology (every reachable neighbour pair gets both
// directed edges, unless one side is a wall).
package costmap
