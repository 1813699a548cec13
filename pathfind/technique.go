package pathfind

import (
	"github.com/katalvlaran/gridpath/cell"
	"github.com/katalvlaran/gridpath/distfield"
)

// orderedCellMap is the subset of *linkedhashmap.Map's API this package
// consults; TechniquePlacer.IdealLocations' return value satisfies it
// structurally.
type orderedCellMap interface {
	Keys() []interface{}
	Get(key interface{}) (interface{}, bool)
}

// TechniqueResult extends Result with the impact center find_technique_path
// selected for the walk's endpoint, and the targets it affects there (spec
// §4.5.5: "the returned path's endpoint has target_map[endpoint] set to the
// impact center the mover should aim for").
type TechniqueResult struct {
	Result
	ImpactCenter    cell.Cell
	AffectedTargets []cell.Cell
}

// FindTechniquePath implements spec §4.5.5.
//
// Every cell reachable from start within 2*moveLength is a candidate
// origin. A candidate qualifies if it lies within tech's range band of some
// target under an integer (pass-A-style) distance-from-targets field, and
// (when los is non-nil) has line of sight to at least one target through
// dungeon. Each qualifying origin's tech.IdealLocations result picks the
// best-scoring impact center and its affected-target count.
//
// Qualifying origins reachable within (the tighter) moveLength are then
// filtered down to the maximum-worth subset, which becomes the goal set for
// the final scan the descent follows. allies both feeds IdealLocations'
// scoring and serves as the descent's only_passable set, since the shared
// termination rule's ally-occupied-endpoint restart applies equally here.
func FindTechniquePath(df *distfield.DistanceField, moveLength float64, tech TechniquePlacer, dungeon [][]float64, los LOSProber, impassable, allies []cell.Cell, start cell.Cell, targets []cell.Cell) TechniqueResult {
	w, h := df.Width(), df.Height()

	// Distance from the mover, used twice: to gate candidate origins at
	// 2*moveLength, then again (tighter) at moveLength.
	df.ClearGoals()
	df.ResetMap()
	df.SetGoal(start)
	df.PartialScan(nil, int(2*moveLength)+1, impassable, false)
	distFromMover := make([][]float64, h)
	for y := 0; y < h; y++ {
		distFromMover[y] = append([]float64(nil), df.Gradient()[y]...)
	}

	// Pass-A style distance from targets, measurement downgraded.
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
	distFromTargets := make([][]float64, h)
	for y := 0; y < h; y++ {
		distFromTargets[y] = append([]float64(nil), df.Gradient()[y]...)
	}
	df.SetMeasurement(original)

	targetMap := make(map[cell.Cell]cell.Cell)
	affectedMap := make(map[cell.Cell][]cell.Cell)
	worthMap := make(map[cell.Cell]int)
	var candidates []cell.Cell

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if distFromMover[y][x] >= distfield.Floor || distFromMover[y][x] > 2*moveLength {
				continue
			}
			d := distFromTargets[y][x]
			if d < float64(tech.MinRange()) || d > float64(tech.MaxRange()) {
				continue
			}
			origin := cell.Cell{X: x, Y: y}
			if los != nil {
				reachable := false
				for _, t := range targets {
					if los.IsReachable(origin, t, dungeon) {
						reachable = true
						break
					}
				}
				if !reachable {
					continue
				}
			}

			locations := tech.IdealLocations(origin, targets, allies)
			best, bestWorth, ok := bestImpactCenter(locations)
			if !ok {
				continue
			}
			targetMap[origin] = best
			affectedMap[origin] = affectedAt(locations, best)
			worthMap[origin] = bestWorth
			candidates = append(candidates, origin)
		}
	}

	var inRange []cell.Cell
	maxWorth := -1
	for _, c := range candidates {
		if distFromMover[c.Y][c.X] > moveLength {
			continue
		}
		inRange = append(inRange, c)
		if worthMap[c] > maxWorth {
			maxWorth = worthMap[c]
		}
	}

	var finalGoals []cell.Cell
	for _, c := range inRange {
		if worthMap[c] == maxWorth {
			finalGoals = append(finalGoals, c)
		}
	}

	df.ClearGoals()
	df.ResetMap()
	df.SetGoals(finalGoals)
	df.Scan(nil, impassable, false)

	result := descend(df, start, moveLength, impassable, allies, len(targets))

	out := TechniqueResult{Result: result}
	if len(result.Path) > 0 {
		end := result.Path[len(result.Path)-1]
		out.ImpactCenter = targetMap[end]
		out.AffectedTargets = affectedMap[end]
	}
	return out
}

// bestImpactCenter picks the highest-worth entry of an ordered
// Cell->[]Cell map, breaking ties by first occurrence (insertion order).
func bestImpactCenter(locations orderedCellMap) (cell.Cell, int, bool) {
	best := cell.Cell{}
	bestWorth := -1
	found := false
	for _, k := range locations.Keys() {
		key := k.(cell.Cell)
		v, _ := locations.Get(key)
		affected, _ := v.([]cell.Cell)
		if len(affected) > bestWorth {
			bestWorth = len(affected)
			best = key
			found = true
		}
	}
	return best, bestWorth, found
}

func affectedAt(locations orderedCellMap, center cell.Cell) []cell.Cell {
	v, ok := locations.Get(center)
	if !ok {
		return nil
	}
	affected, _ := v.([]cell.Cell)
	return affected
}
