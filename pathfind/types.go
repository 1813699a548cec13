package pathfind

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/katalvlaran/gridpath/cell"
)

// MaxFrustration bounds the find_path termination-by-ally restart loop
// (spec §4.5/§8 glossary): a path whose endpoint keeps landing on an
// only_passable ally is abandoned after this many restarts.
const MaxFrustration = 500

// Result is the outcome of a greedy descent. CutShort is true when the
// descent stopped because no downhill neighbour remained or the
// frustration counter was exhausted; a walk that stops because its length
// budget ran out is not cut short. Callers must consult it to
// distinguish "unreachable" from "already at a goal" on an empty Path.
type Result struct {
	Path     []cell.Cell
	CutShort bool
}

// LOSProber is the caller-supplied line-of-sight predicate (spec §6's
// LineDrawer.is_reachable), kept external per the spec's own Non-goals:
// gridpath never computes visibility itself.
type LOSProber interface {
	IsReachable(from, to cell.Cell, resistance [][]float64) bool
}

// TechniquePlacer describes an attack/ability usable by find_technique_path
// (spec §4.5.5, §6's Technique type). IdealLocations returns an
// insertion-ordered map from impact center to the targets it would affect,
// highest-scored entry first — backed by *linkedhashmap.Map so iteration
// order is exactly insertion order.
type TechniquePlacer interface {
	MinRange() int
	MaxRange() int
	IdealLocations(origin cell.Cell, targets, allies []cell.Cell) *linkedhashmap.Map
}
