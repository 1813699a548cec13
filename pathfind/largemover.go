package pathfind

import (
	"github.com/katalvlaran/gridpath/cell"
	"github.com/katalvlaran/gridpath/distfield"
)

// FindLargeMoverPath is FindPath for a square mover of side size (spec
// §4.4.5): targets become goals, the field is scanned with ScanLargeMover
// instead of Scan, so the wave never crosses into a cell where a size x
// size mover's own footprint would overlap a wall, and the shared greedy
// descent walks start to the nearest reachable goal. size<=1 behaves
// exactly like FindPath.
func FindLargeMoverPath(df *distfield.DistanceField, length float64, size int, impassable, onlyPassable []cell.Cell, start cell.Cell, targets []cell.Cell) Result {
	if size <= 1 {
		return FindPath(df, length, 0, impassable, onlyPassable, start, targets)
	}
	df.ClearGoals()
	df.ResetMap()
	df.SetGoals(targets)
	df.LoadGradient(df.ScanLargeMover(size, impassable, false))

	return descend(df, start, length, impassable, onlyPassable, len(targets))
}
