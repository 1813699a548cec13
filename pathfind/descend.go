package pathfind

import (
	"math/rand"

	"github.com/emirpasic/gods/sets/hashset"

	"github.com/katalvlaran/gridpath/cell"
	"github.com/katalvlaran/gridpath/distfield"
	"github.com/katalvlaran/gridpath/internal/prng"
)

// descend runs the shared greedy gradient-descent walk from start on df's
// current gradient, retrying on the frustration counter when the walk ends
// on a cell in onlyPassable (spec §4.5's ally-occupied-endpoint rule).
func descend(df *distfield.DistanceField, start cell.Cell, length float64, impassable, onlyPassable []cell.Cell, targetCount int) Result {
	blocked := append([]cell.Cell(nil), impassable...)
	allies := make(map[cell.Cell]bool, len(onlyPassable))
	for _, c := range onlyPassable {
		allies[c] = true
	}

	for frustration := 0; frustration < MaxFrustration; frustration++ {
		set := df.NewImpassableSet(blocked)
		path, cutShort, exceeded := walk(df, start, length, set, targetCount)
		if exceeded && len(path) > 0 && allies[path[len(path)-1]] {
			blocked = append(blocked, path[len(path)-1])
			continue
		}
		return Result{Path: path, CutShort: cutShort}
	}
	return Result{Path: nil, CutShort: true}
}

// walk performs a single descent attempt, reporting whether it ended
// because the accumulated cost exceeded length-1 (exceeded) so descend can
// apply the ally-restart rule.
func walk(df *distfield.DistanceField, start cell.Cell, length float64, impassable *hashset.Set, targetCount int) (path []cell.Cell, cutShort, exceeded bool) {
	rng := prng.FromSeed(prng.DeriveSeed(int64(start.Encode()), uint64(targetCount)))

	path = []cell.Cell{start}
	visited := map[cell.Cell]bool{start: true}
	current := start
	cost := 0.0

	for {
		g := df.Gradient()
		if g[current.Y][current.X] == distfield.Goal {
			return path, false, false
		}
		if cost > length-1 {
			return path, false, true
		}

		next, dir, ok := pickNext(df, current, impassable, visited, rng)
		if !ok {
			return path, true, false
		}

		cost += df.Measurement().Heuristic(dir) * df.Cost()[next.Y][next.X]
		path = append(path, next)
		visited[next] = true
		current = next
	}
}

// pickNext chooses the next cell under the tie-break shuffle of §4.5.4: a
// first pass rejects already-visited neighbours, and only if that pass
// finds nothing downhill does a second pass admit them — matching the
// spec's "accepted even if already in path" fallback once the shuffled
// list runs out of fresh candidates.
func pickNext(df *distfield.DistanceField, current cell.Cell, impassable *hashset.Set, visited map[cell.Cell]bool, rng *rand.Rand) (cell.Cell, cell.Direction, bool) {
	dirs := shuffledDirections(df.Measurement(), rng)
	curGrad := df.Gradient()[current.Y][current.X]

	if n, d, ok := scanDirections(df, current, dirs, impassable, curGrad, visited, true); ok {
		return n, d, true
	}
	return scanDirections(df, current, dirs, impassable, curGrad, visited, false)
}

func scanDirections(df *distfield.DistanceField, current cell.Cell, dirs []cell.Direction, impassable *hashset.Set, curGrad float64, visited map[cell.Cell]bool, skipVisited bool) (cell.Cell, cell.Direction, bool) {
	for _, d := range dirs {
		if d == cell.DirNone {
			continue
		}
		n := current.Translate(d)
		if !n.Within(df.Width(), df.Height()) {
			continue
		}
		if impassable.Contains(n.Encode()) {
			continue
		}
		if d.IsDiagonal() && df.Blocked(current, d, impassable) {
			continue
		}
		if skipVisited && visited[n] {
			continue
		}
		if df.Gradient()[n.Y][n.X] < curGrad {
			return n, d, true
		}
	}
	return cell.Cell{}, cell.DirNone, false
}

// shuffledDirections builds the per-step direction buffer (§4.5.4): under
// Euclidean measurement cardinals and diagonals are shuffled in two
// independent sub-shuffles (reproduced verbatim per spec §9 — it is
// unclear whether this was an intentional bias, so it is not "fixed"),
// otherwise the whole direction set is shuffled as one. NONE is appended
// as the terminal sentinel.
func shuffledDirections(m cell.Measurement, rng *rand.Rand) []cell.Direction {
	if m == cell.Euclidean {
		cards := append([]cell.Direction(nil), cell.CardinalDirections...)
		diags := append([]cell.Direction(nil), cell.OutwardDirections[len(cell.CardinalDirections):]...)
		shuffleDirections(cards, rng)
		shuffleDirections(diags, rng)
		out := make([]cell.Direction, 0, len(cards)+len(diags)+1)
		out = append(out, cards...)
		out = append(out, diags...)
		return append(out, cell.DirNone)
	}

	dirs := append([]cell.Direction(nil), m.Directions()...)
	shuffleDirections(dirs, rng)
	return append(dirs, cell.DirNone)
}

func shuffleDirections(a []cell.Direction, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
