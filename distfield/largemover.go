package distfield

import "github.com/katalvlaran/gridpath/cell"

// ScanLargeMover runs the distance-field scan for a square mover of side
// size (spec §4.4.5). A mover's tracked cell is the max (bottom-right)
// corner of its size x size footprint. For size<=1 it is exactly Scan.
// For size>1 the wave runs over a private clone of the gradient buffer:
// before the frontier is built, every wall cell (x,y) with x>=size and
// y>=size causes the size x size block with max corner at (x,y) to be
// painted WALL on the clone, so a mover can never stand anywhere its
// footprint would reach that wall. A goal whose own max-corner footprint
// overlaps a physical wall is dropped from the clone's goal list, since no
// mover of that size could ever stand there. Everything else matches Scan.
//
// For size>1 the live df.gradient/df.goals are read but never mutated (for
// size<=1 Scan runs on the live buffers and a copy is returned) — callers that
// want the result to drive a descent load it back with LoadGradient, the
// same pattern FleeScan's cached result already uses.
func (df *DistanceField) ScanLargeMover(size int, impassable []cell.Cell, nonzeroOptimum bool) [][]float64 {
	if !df.initialized() {
		return nil
	}
	if size <= 1 {
		df.Scan(nil, impassable, nonzeroOptimum)
		return df.scrubbedCopy()
	}

	clone := &DistanceField{
		width:               df.width,
		height:              df.height,
		measurement:         df.measurement,
		blockingRequirement: df.blockingRequirement,
		standardCosts:       df.standardCosts,
		physical:            df.physical,
		cost:                df.cost,
	}
	clone.gradient = make([][]float64, df.height)
	for y := range clone.gradient {
		clone.gradient[y] = append([]float64(nil), df.gradient[y]...)
	}

	for _, g := range df.goals {
		if !footprintOverlapsWall(df.physical, df.width, df.height, g, size) {
			clone.goals = append(clone.goals, g)
		} else {
			clone.gradient[g.Y][g.X] = df.physical[g.Y][g.X]
		}
	}

	for y := size; y < clone.height; y++ {
		for x := size; x < clone.width; x++ {
			if clone.gradient[y][x] > Floor {
				paintFootprint(clone.gradient, clone.width, clone.height, cell.Cell{X: x, Y: y}, size)
			}
		}
	}

	set := clone.impassableSet(impassable)
	frontier := clone.initialFrontier(nonzeroOptimum, nil, 0)
	clone.wave(frontier, set, nil, 0)

	return clone.scrubbedCopy()
}

// scanMaybeLargeMover runs a plain Scan for size<=1 (leaving the live
// gradient's unreached cells at Floor, matching every other scan entry
// point) and only pays for the clone-scan machinery when size>1.
func (df *DistanceField) scanMaybeLargeMover(size int, impassable []cell.Cell, nonzeroOptimum bool) {
	if size <= 1 {
		df.Scan(nil, impassable, nonzeroOptimum)
		return
	}
	df.LoadGradient(df.ScanLargeMover(size, impassable, nonzeroOptimum))
}

// footprintOverlapsWall reports whether the size x size block with max
// corner at c — the footprint of a mover standing at c, per spec §4.4.5 —
// overlaps a physical wall or runs off the grid.
func footprintOverlapsWall(physical [][]float64, width, height int, c cell.Cell, size int) bool {
	for y := c.Y - size + 1; y <= c.Y; y++ {
		if y < 0 || y >= height {
			return true
		}
		for x := c.X - size + 1; x <= c.X; x++ {
			if x < 0 || x >= width || physical[y][x] > Floor {
				return true
			}
		}
	}
	return false
}

// paintFootprint paints the size x size block with max corner at c WALL.
func paintFootprint(gradient [][]float64, width, height int, c cell.Cell, size int) {
	for y := c.Y - size + 1; y <= c.Y; y++ {
		if y < 0 || y >= height {
			continue
		}
		for x := c.X - size + 1; x <= c.X; x++ {
			if x < 0 || x >= width {
				continue
			}
			gradient[y][x] = Wall
		}
	}
}
