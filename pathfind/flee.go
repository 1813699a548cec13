package pathfind

import (
	"github.com/katalvlaran/gridpath/cell"
	"github.com/katalvlaran/gridpath/distfield"
)

// FindFleePath implements spec §4.5.3: scan the two-pass flee field
// (memoized on df per byte-equal inputs) and greedily descend it, which
// moves the mover away from fearSources and toward the deepest valley
// reachable within length. scanLimit is accepted for signature symmetry
// with FindPath but is not otherwise consulted — FleeScan's own two passes
// are always full scans per spec §4.5.3. moverSize>1 runs both passes
// through the large-mover clone scan (§4.4.5), so a square mover never
// flees into a gap its own footprint can't fit through.
func FindFleePath(df *distfield.DistanceField, length float64, scanLimit int, preferLongerPaths float64, moverSize int, impassable, onlyPassable []cell.Cell, start cell.Cell, fearSources []cell.Cell) Result {
	_ = scanLimit
	field := df.FleeScan(fearSources, impassable, preferLongerPaths, moverSize)
	df.LoadGradient(field)

	return descend(df, start, length, impassable, onlyPassable, len(fearSources))
}
