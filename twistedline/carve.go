package twistedline

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridpath/cell"
	"github.com/katalvlaran/gridpath/graph"
	"github.com/katalvlaran/gridpath/graphalgo"
)

// CarveSpanningTree builds an undirected graph with one vertex per cell of
// a w x h grid and no edges, then carves a spanning tree by randomized DFS
// (spec §4.7): start at a random cell; at each step shuffle the 4 cardinal
// offsets and try each in order, adding an edge to the first unvisited
// neighbour found and pushing it onto the working stack; if no direction
// succeeds, pop the stack. The result is a tree with exactly one simple
// path between any two of its cells.
func CarveSpanningTree(w, h int, rng *rand.Rand) *graph.Graph {
	g := graph.NewGraph(false)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.AddVertex(vertexID(cell.Cell{X: x, Y: y}))
		}
	}
	carve(g, w, h, rng)
	return g
}

// Regenerate carves a fresh spanning tree over the same vertex set as
// prev (typically a previous CarveSpanningTree result for the same w, h),
// leaving prev itself untouched. CloneEmpty strips prev down to a bare
// vertex set before any edge is carved into the copy, so a caller still
// holding prev — to diff the old maze against the new one, or roll back a
// regeneration the player didn't like — never has it mutated out from
// under them.
func Regenerate(prev *graph.Graph, w, h int, rng *rand.Rand) *graph.Graph {
	g := prev.CloneEmpty()
	carve(g, w, h, rng)
	return g
}

// carve runs the randomized-DFS edge carving of spec §4.7 into g, which
// must already hold exactly the w*h cell vertices and no edges.
func carve(g *graph.Graph, w, h int, rng *rand.Rand) {
	if w == 0 || h == 0 {
		return
	}

	visited := make([]bool, w*h)
	idx := func(c cell.Cell) int { return c.Y*w + c.X }

	start := cell.Cell{X: rng.Intn(w), Y: rng.Intn(h)}
	visited[idx(start)] = true
	stack := []cell.Cell{start}

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		dirs := shuffledCardinals(rng)

		advanced := false
		for _, d := range dirs {
			n := c.Translate(d)
			if !n.Within(w, h) || visited[idx(n)] {
				continue
			}
			if _, err := g.AddEdge(vertexID(c), vertexID(n), 1); err != nil {
				continue
			}
			visited[idx(n)] = true
			stack = append(stack, n)
			advanced = true
			break
		}
		if !advanced {
			stack = stack[:len(stack)-1]
		}
	}
}

// TwistedLine returns the unique simple path between a and b in g (a
// spanning tree carved by CarveSpanningTree), found via Dijkstra over the
// tree's unit-weight edges.
func TwistedLine(g *graph.Graph, a, b cell.Cell) ([]cell.Cell, error) {
	ids, _, err := graphalgo.Dijkstra(g, vertexID(a), vertexID(b))
	if err != nil {
		return nil, err
	}

	path := make([]cell.Cell, len(ids))
	for i, id := range ids {
		c, perr := parseVertexID(id)
		if perr != nil {
			return nil, perr
		}
		path[i] = c
	}
	return path, nil
}

func vertexID(c cell.Cell) string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

func parseVertexID(id string) (cell.Cell, error) {
	parts := strings.SplitN(id, ",", 2)
	if len(parts) != 2 {
		return cell.Cell{}, fmt.Errorf("twistedline: malformed vertex id %q", id)
	}
	x, err := strconv.Atoi(parts[0])
	if err != nil {
		return cell.Cell{}, err
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil {
		return cell.Cell{}, err
	}
	return cell.Cell{X: x, Y: y}, nil
}

func shuffledCardinals(rng *rand.Rand) []cell.Direction {
	dirs := append([]cell.Direction(nil), cell.CardinalDirections...)
	for i := len(dirs) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
	return dirs
}
