package distfield

import (
	"math"

	"github.com/emirpasic/gods/sets/hashset"

	"github.com/katalvlaran/gridpath/cell"
)

// blocked implements the corner-cutting rule: a diagonal move from c in
// direction d is forbidden when at least BlockingRequirement of its two
// orthogonal flanking cells are walls (gradient > Floor). 0 disables the
// check; 1 forbids cutting any corner; 2 (default) only forbids moves
// squeezed between two obstacles.
func (df *DistanceField) blocked(c cell.Cell, d cell.Direction, impassable *hashset.Set) bool {
	if df.blockingRequirement == 0 {
		return false
	}
	flank1 := cell.Cell{X: c.X + d.DX(), Y: c.Y}
	flank2 := cell.Cell{X: c.X, Y: c.Y + d.DY()}
	k := 0
	if !flank1.Within(df.width, df.height) || df.gradient[flank1.Y][flank1.X] > Floor || impassable.Contains(flank1.Encode()) {
		k++
	}
	if !flank2.Within(df.width, df.height) || df.gradient[flank2.Y][flank2.X] > Floor || impassable.Contains(flank2.Encode()) {
		k++
	}
	return k >= df.blockingRequirement
}

// Blocked exposes the corner-cutting rule to callers outside the package
// (pathfind's greedy descent consults the same rule the wave uses).
func (df *DistanceField) Blocked(c cell.Cell, d cell.Direction, impassable *hashset.Set) bool {
	return df.blocked(c, d, impassable)
}

// NewImpassableSet exposes impassableSet so callers can build one set and
// reuse it across many descent steps instead of rebuilding it per step.
func (df *DistanceField) NewImpassableSet(impassable []cell.Cell) *hashset.Set {
	return df.impassableSet(impassable)
}

// impassableSet builds an O(1)-membership set of packed cell encodings
// from cells, silently dropping out-of-bounds entries (spec §7). The wave
// consults this set on every relaxation attempt instead of mutating and
// later restoring gradient cells to WALL — functionally identical to
// spec §4.4.3's "temporarily mark as WALL... restore before returning"
// contract, without the bookkeeping of an undo map.
func (df *DistanceField) impassableSet(impassable []cell.Cell) *hashset.Set {
	set := hashset.New()
	for _, c := range impassable {
		if c.Within(df.width, df.height) {
			set.Add(c.Encode())
		}
	}
	return set
}

// initialFrontier builds the wave's starting cell set: the goal list
// directly, or — when nonzeroOptimum is set — every cell tied for the
// lowest finite gradient value, optionally restricted to a
// (2*windowRadius+1)^2 box around window (windowRadius<=0 means the
// whole grid).
func (df *DistanceField) initialFrontier(nonzeroOptimum bool, window *cell.Cell, windowRadius int) []cell.Cell {
	if !nonzeroOptimum {
		return append([]cell.Cell(nil), df.goals...)
	}

	x0, x1, y0, y1 := 0, df.width-1, 0, df.height-1
	if window != nil && windowRadius > 0 {
		x0, x1 = window.X-windowRadius, window.X+windowRadius
		y0, y1 = window.Y-windowRadius, window.Y+windowRadius
		if x0 < 0 {
			x0 = 0
		}
		if y0 < 0 {
			y0 = 0
		}
		if x1 > df.width-1 {
			x1 = df.width - 1
		}
		if y1 > df.height-1 {
			y1 = df.height - 1
		}
	}

	minVal := math.Inf(1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			v := df.gradient[y][x]
			if v < Floor && v < minVal {
				minVal = v
			}
		}
	}
	var frontier []cell.Cell
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if df.gradient[y][x] == minVal {
				frontier = append(frontier, cell.Cell{X: x, Y: y})
			}
		}
	}
	return frontier
}

// wave runs the multi-goal relaxation wave from frontier, capping the
// number of level-passes at limit (0 = unbounded). If start is non-nil
// and standardCosts is true, the wave returns as soon as start's
// gradient is first assigned (the early-exit optimization spec.md calls
// out as subtle and deliberately preserved).
func (df *DistanceField) wave(frontier []cell.Cell, impassable *hashset.Set, start *cell.Cell, limit int) {
	dirs := df.measurement.Directions()
	q := newCellQueue(df.width * df.height)
	for _, c := range frontier {
		q.pushBack(c.Encode())
	}

	passes := 0
	for !q.empty() {
		if limit > 0 && passes >= limit {
			return
		}
		levelSize := q.len()
		progressed := false
		for i := 0; i < levelSize; i++ {
			c := cell.Decode(q.popFront())
			dist := df.gradient[c.Y][c.X]
			for _, d := range dirs {
				n := c.Translate(d)
				if !n.Within(df.width, df.height) {
					continue
				}
				if impassable.Contains(n.Encode()) {
					continue
				}
				if d.IsDiagonal() && df.blocked(c, d, impassable) {
					continue
				}
				newVal := dist + df.measurement.Heuristic(d)*df.cost[n.Y][n.X]
				if df.gradient[n.Y][n.X] <= Floor && newVal < df.gradient[n.Y][n.X] {
					df.gradient[n.Y][n.X] = newVal
					q.pushBack(n.Encode())
					progressed = true
					if start != nil && df.standardCosts && n == *start {
						return
					}
				}
			}
		}
		passes++
		if !progressed {
			return
		}
	}
}

// Scan runs a full wave scan (unbounded level-passes) from the goal list,
// or from the lowest-finite-value frontier if nonzeroOptimum is set.
// impassable cells are temporarily treated as walls for the duration of
// the scan. If start is provided and standardCosts holds, the scan
// short-circuits the moment start's gradient is first assigned (see the
// documented Open Question on this behavior in spec §9 — it is
// preserved verbatim, including for standardCosts=false where no
// short-circuit happens at all).
func (df *DistanceField) Scan(start *cell.Cell, impassable []cell.Cell, nonzeroOptimum bool) {
	if !df.initialized() {
		return
	}
	set := df.impassableSet(impassable)
	frontier := df.initialFrontier(nonzeroOptimum, start, 0)
	df.wave(frontier, set, start, 0)
}

// ScanToMap runs Scan from the goal list and returns a scrubbed copy of
// the gradient: any cell still at Floor is rewritten to Dark in the
// returned copy (the live internal buffer is left untouched at Floor).
func (df *DistanceField) ScanToMap(impassable []cell.Cell) [][]float64 {
	df.Scan(nil, impassable, false)
	return df.scrubbedCopy()
}

// PartialScan is Scan capped at limit wave-level-passes. When start is
// given and nonzeroOptimum is set, the initial lowest-value search is
// restricted to the (2*limit+1)^2 window around start. Cells the wave
// never reaches remain at Floor.
func (df *DistanceField) PartialScan(start *cell.Cell, limit int, impassable []cell.Cell, nonzeroOptimum bool) {
	if !df.initialized() {
		return
	}
	set := df.impassableSet(impassable)
	frontier := df.initialFrontier(nonzeroOptimum, start, limit)
	df.wave(frontier, set, start, limit)
}

// PartialScanToMap runs PartialScan from the goal list and returns a
// scrubbed copy of the gradient (Floor -> Dark).
func (df *DistanceField) PartialScanToMap(limit int, impassable []cell.Cell) [][]float64 {
	df.PartialScan(nil, limit, impassable, false)
	return df.scrubbedCopy()
}

func (df *DistanceField) scrubbedCopy() [][]float64 {
	out := make([][]float64, df.height)
	for y := 0; y < df.height; y++ {
		out[y] = make([]float64, df.width)
		for x := 0; x < df.width; x++ {
			v := df.gradient[y][x]
			if v == Floor {
				v = Dark
			}
			out[y][x] = v
		}
	}
	return out
}
