package distfield

import "github.com/katalvlaran/gridpath/cell"

// FleeScan computes the two-pass "away from danger, toward open ground"
// gradient spec §4.5.3 describes:
//
//  1. Scan with fearSources as goals, producing a distance-from-fear field.
//     moverSize>1 runs this (and the re-scan below) through the large-mover
//     clone scan (§4.4.5) instead, so a square mover never flees into a gap
//     its own footprint can't fit through.
//  2. Multiply every finite cell by -preferLongerPaths (walls/unreachable
//     cells are left untouched); higher preferLongerPaths deepens valleys
//     far from fear.
//  3. Re-scan with nonzeroOptimum=true, so the lowest (most negative)
//     cells become the new goals; descending this field moves away from
//     fear and toward deep valleys (doorways, dead-ends).
//
// Identical (fearSources, impassable, preferLongerPaths, moverSize)
// arguments reuse the cached result verbatim rather than re-scanning.
func (df *DistanceField) FleeScan(fearSources []cell.Cell, impassable []cell.Cell, preferLongerPaths float64, moverSize int) [][]float64 {
	if c := df.fleeCache; c != nil && fleeArgsEqual(c, fearSources, impassable, preferLongerPaths, moverSize) {
		return c.result
	}

	saved := df.goals
	df.goals = nil
	df.ResetMap()
	df.SetGoals(fearSources)
	df.scanMaybeLargeMover(moverSize, impassable, false)

	for y := 0; y < df.height; y++ {
		for x := 0; x < df.width; x++ {
			if df.gradient[y][x] < Floor {
				df.gradient[y][x] *= -preferLongerPaths
			}
		}
	}

	df.goals = nil
	df.scanMaybeLargeMover(moverSize, impassable, true)

	result := make([][]float64, df.height)
	for y := 0; y < df.height; y++ {
		result[y] = append([]float64(nil), df.gradient[y]...)
	}

	df.fleeCache = &fleeCacheEntry{
		sources:           append([]cell.Cell(nil), fearSources...),
		impassable:        append([]cell.Cell(nil), impassable...),
		preferLongerPaths: preferLongerPaths,
		moverSize:         moverSize,
		result:            result,
	}
	df.goals = saved

	return result
}

func fleeArgsEqual(c *fleeCacheEntry, sources, impassable []cell.Cell, preferLongerPaths float64, moverSize int) bool {
	if c.preferLongerPaths != preferLongerPaths || c.moverSize != moverSize {
		return false
	}
	if len(c.sources) != len(sources) || len(c.impassable) != len(impassable) {
		return false
	}
	for i, s := range sources {
		if c.sources[i] != s {
			return false
		}
	}
	for i, s := range impassable {
		if c.impassable[i] != s {
			return false
		}
	}
	return true
}
