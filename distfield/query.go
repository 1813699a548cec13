package distfield

import (
	"github.com/katalvlaran/gridpath/cell"
	"github.com/katalvlaran/gridpath/internal/prng"
)

// FindNearest treats start as the sole goal (jittered within one-sixth of
// the map if start lies in a wall) and runs the standard wave, returning
// the first of targets the wave assigns a gradient to. Returns false if
// the wave exhausts without reaching any target.
func (df *DistanceField) FindNearest(start cell.Cell, targets []cell.Cell) (cell.Cell, bool) {
	if !df.initialized() {
		return cell.Cell{}, false
	}
	start = df.jitterIfWalled(start, len(targets))

	targetSet := make(map[cell.Cell]bool, len(targets))
	for _, t := range targets {
		targetSet[t] = true
	}

	saved := df.goals
	df.goals = nil
	df.gradient[start.Y][start.X] = Goal
	defer func() { df.goals = saved }()

	dirs := df.measurement.Directions()
	empty := df.impassableSet(nil)
	q := newCellQueue(df.width * df.height)
	q.pushBack(start.Encode())

	for !q.empty() {
		c := cell.Decode(q.popFront())
		dist := df.gradient[c.Y][c.X]
		for _, d := range dirs {
			n := c.Translate(d)
			if !n.Within(df.width, df.height) {
				continue
			}
			if d.IsDiagonal() && df.blocked(c, d, empty) {
				continue
			}
			newVal := dist + df.measurement.Heuristic(d)*df.cost[n.Y][n.X]
			if df.gradient[n.Y][n.X] <= Floor && newVal < df.gradient[n.Y][n.X] {
				df.gradient[n.Y][n.X] = newVal
				q.pushBack(n.Encode())
				if targetSet[n] {
					return n, true
				}
			}
		}
	}

	return cell.Cell{}, false
}

// FindNearestMultiple repeatedly calls FindNearest, excluding each result
// from the next search's target set, until limit cells have been found
// or no target remains reachable.
func (df *DistanceField) FindNearestMultiple(start cell.Cell, limit int, targets []cell.Cell) []cell.Cell {
	found := make([]cell.Cell, 0, limit)
	remaining := append([]cell.Cell(nil), targets...)

	for len(found) < limit && len(remaining) > 0 {
		df.ClearGoals()
		df.ResetMap()
		c, ok := df.FindNearest(start, remaining)
		if !ok {
			break
		}
		found = append(found, c)

		next := remaining[:0:0]
		for _, t := range remaining {
			if t != c {
				next = append(next, t)
			}
		}
		remaining = next
	}

	return found
}

// jitterIfWalled returns start unchanged if it is passable; otherwise it
// picks a deterministic nearby passable cell within one-sixth of the
// map's larger dimension, seeded from (start, targetCount) per the
// engine's tie-break PRNG policy.
func (df *DistanceField) jitterIfWalled(start cell.Cell, targetCount int) cell.Cell {
	if df.physical[start.Y][start.X] != Wall {
		return start
	}
	radius := df.width
	if df.height > radius {
		radius = df.height
	}
	radius /= 6
	if radius < 1 {
		radius = 1
	}

	seed := prng.DeriveSeed(int64(start.Encode()), uint64(targetCount))
	rng := prng.FromSeed(seed)
	for attempt := 0; attempt < 64; attempt++ {
		dx := rng.Intn(2*radius+1) - radius
		dy := rng.Intn(2*radius+1) - radius
		cand := cell.Cell{X: start.X + dx, Y: start.Y + dy}
		if cand.Within(df.width, df.height) && df.physical[cand.Y][cand.X] != Wall {
			return cand
		}
	}
	return start
}

// FloodFill runs a partial scan of radius starting from starts (treated
// as goals) and collects every cell with a finite gradient.
func (df *DistanceField) FloodFill(radius int, starts []cell.Cell) map[cell.Cell]float64 {
	result := make(map[cell.Cell]float64)
	if !df.initialized() {
		return result
	}

	saved := df.goals
	df.goals = nil
	df.ResetMap()
	df.SetGoals(starts)
	df.PartialScan(nil, radius, nil, false)

	for y := 0; y < df.height; y++ {
		for x := 0; x < df.width; x++ {
			if df.gradient[y][x] < Floor {
				result[cell.Cell{X: x, Y: y}] = df.gradient[y][x]
			}
		}
	}

	df.goals = saved
	return result
}
