package pathfind

import (
	"github.com/katalvlaran/gridpath/cell"
	"github.com/katalvlaran/gridpath/distfield"
)

// FindAttackPath implements spec §4.5.2's two-pass range query.
//
// Pass A scans from targets with the measurement temporarily downgraded
// (Euclidean -> Chebyshev) to get integer-grid distances, then promotes
// every still-FLOOR cell to DARK so pass B never mistakes "unreached" for
// "in range".
//
// Pass B re-goals every cell whose pass-A distance falls in
// [minRange, maxRange] and that has a clear line of sight to at least one
// target (when los is non-nil); every other cell is reset to FLOOR. The
// final scan (under the original measurement) guides the descent.
//
// resistance is supplied to los.IsReachable per call; spec.md's own
// find_attack_path signature omits it; this module accepts it directly
// since the distilled signature does not otherwise say how a LOS prober
// gets its resistance data (see DESIGN.md).
func FindAttackPath(df *distfield.DistanceField, length float64, minRange, maxRange int, los LOSProber, resistance [][]float64, impassable, onlyPassable []cell.Cell, start cell.Cell, targets []cell.Cell) Result {
	original := df.Measurement()
	downgraded := original
	if original == cell.Euclidean {
		downgraded = cell.Chebyshev
	}

	df.ClearGoals()
	df.ResetMap()
	df.SetGoals(targets)
	df.SetMeasurement(downgraded)
	df.Scan(nil, impassable, false)

	w, h := df.Width(), df.Height()
	g := df.Gradient()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if g[y][x] == distfield.Floor {
				g[y][x] = distfield.Dark
			}
		}
	}

	passA := make([][]float64, h)
	for y := 0; y < h; y++ {
		passA[y] = append([]float64(nil), g[y]...)
	}
	df.ClearGoals()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := passA[y][x]
			if d == distfield.Wall {
				continue
			}

			c := cell.Cell{X: x, Y: y}
			inRange := d >= float64(minRange) && d <= float64(maxRange)
			reachable := false
			if inRange {
				if los == nil {
					reachable = true
				} else {
					for _, t := range targets {
						if los.IsReachable(c, t, resistance) {
							reachable = true
							break
						}
					}
				}
			}

			if inRange && reachable {
				df.SetGoal(c)
			} else {
				g[y][x] = distfield.Floor
			}
		}
	}

	df.SetMeasurement(original)
	df.Scan(nil, impassable, false)

	return descend(df, start, length, impassable, onlyPassable, len(targets))
}
