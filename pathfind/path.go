package pathfind

import (
	"github.com/katalvlaran/gridpath/cell"
	"github.com/katalvlaran/gridpath/distfield"
)

// FindPath implements spec §4.5.1: targets become goals, the field is
// fully scanned (or partially, when scanLimit is positive and at least
// length), and the shared greedy descent walks from start to the nearest
// target.
func FindPath(df *distfield.DistanceField, length float64, scanLimit int, impassable, onlyPassable []cell.Cell, start cell.Cell, targets []cell.Cell) Result {
	df.ClearGoals()
	df.ResetMap()
	df.SetGoals(targets)

	if scanLimit <= 0 || float64(scanLimit) < length {
		df.Scan(nil, impassable, false)
	} else {
		df.PartialScan(nil, scanLimit, impassable, false)
	}

	return descend(df, start, length, impassable, onlyPassable, len(targets))
}

// FindPathPreScanned runs the greedy descent against whatever gradient is
// already live on df (spec §6's find_path_pre_scanned), without issuing a
// new scan or touching the goal list.
func FindPathPreScanned(df *distfield.DistanceField, length float64, impassable, onlyPassable []cell.Cell, start cell.Cell, targetCount int) Result {
	return descend(df, start, length, impassable, onlyPassable, targetCount)
}
