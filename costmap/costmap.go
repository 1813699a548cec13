package costmap

import (
	"fmt"

	"github.com/katalvlaran/gridpath/cell"
	"github.com/katalvlaran/gridpath/graph"
)

// wallRune is the default character that maps to a wall.
const wallRune = '#'

// defaultCost is the entry cost assigned to any tile without an override.
const defaultCost = 1.0

// isBoxDrawing reports whether r falls in the Unicode box-drawing block
// (U+2500-U+257F). These always behave like '#': a single override keyed
// on '#' covers the entire block, so callers never enumerate every glyph
// their map generator might emit.
func isBoxDrawing(r rune) bool {
	return r >= 0x2500 && r <= 0x257F
}

// isWallRune reports whether r denotes an impassable tile, consulting
// overrides only for the '#'/box-drawing equivalence; '+' is always a wall.
func isWallRune(r rune, overrides map[rune]float64) bool {
	if r == '+' {
		return true
	}
	if r == wallRune || isBoxDrawing(r) {
		if _, ok := overrides[wallRune]; ok {
			return false // caller overrode '#' with an explicit cost
		}
		return true
	}
	return false
}

// BuildCostMap converts a character grid into parallel cost and wall
// buffers. overrides maps individual runes to an entry cost; a character
// absent from overrides gets defaultCost unless it's a wall glyph. An
// override keyed on '#' reclassifies '#' and every box-drawing rune as
// passable at that cost in one stroke.
func BuildCostMap(grid [][]rune, overrides map[rune]float64) (cost [][]float64, wall [][]bool) {
	h := len(grid)
	cost = make([][]float64, h)
	wall = make([][]bool, h)
	for y, row := range grid {
		cost[y] = make([]float64, len(row))
		wall[y] = make([]bool, len(row))
		for x, r := range row {
			if isWallRune(r, overrides) {
				wall[y][x] = true
				continue
			}
			if c, ok := overrides[r]; ok {
				cost[y][x] = c
			} else if c, ok := overrides[wallRune]; ok && isBoxDrawing(r) {
				cost[y][x] = c
			} else {
				cost[y][x] = defaultCost
			}
		}
	}
	return cost, wall
}

// BuildGraph constructs the adjacency graph over cost/wall: one vertex per
// non-wall cell, IDs formatted "x,y". For each non-wall cell c and each
// direction d (cardinals only if diag is false, full eight-way otherwise),
// if the neighbour c+d is in bounds and non-wall, an edge is added FROM
// the neighbour TO c weighted by cost(c) — entering c costs cost(c)
// regardless of the direction of approach.
func BuildGraph(cost [][]float64, wall [][]bool, diag bool) *graph.Graph {
	h := len(wall)
	g := graph.NewGraph(true)
	if h == 0 {
		return g
	}
	w := len(wall[0])

	dirs := cell.CardinalDirections
	if diag {
		dirs = cell.OutwardDirections
	}

	id := func(c cell.Cell) string { return cellID(c) }

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if wall[y][x] {
				continue
			}
			g.AddVertex(id(cell.Cell{X: x, Y: y}))
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if wall[y][x] {
				continue
			}
			c := cell.Cell{X: x, Y: y}
			for _, d := range dirs {
				n := c.Translate(d)
				if !n.Within(w, h) || wall[n.Y][n.X] {
					continue
				}
				_, _ = g.AddEdge(id(n), id(c), cost[y][x])
			}
		}
	}

	return g
}

func cellID(c cell.Cell) string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}
