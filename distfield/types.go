package distfield

import (
	"errors"

	"github.com/katalvlaran/gridpath/cell"
)

// Sentinel gradient values, bit-exact with spec.
const (
	Goal  = 0.0
	Floor = 999200.0
	Wall  = 999500.0
	Dark  = 999800.0
)

// Sentinel errors.
var (
	// ErrNotInitialized names the state before Initialize/InitializeCost has
	// allocated the engine's buffers. No method returns it: in that state
	// methods do nothing or return an empty result.
	ErrNotInitialized = errors.New("distfield: not initialized")
	// ErrInvalidArgument covers a nil or empty map passed to Initialize.
	ErrInvalidArgument = errors.New("distfield: invalid argument")
	// ErrShapeMismatch is returned when InitializeCost receives a grid
	// whose dimensions differ from an already-initialized physical map.
	ErrShapeMismatch = errors.New("distfield: shape mismatch")
)

// DistanceField is a multi-goal wave-scan engine over a rectangular grid.
type DistanceField struct {
	width, height int

	physical [][]float64 // WALL or FLOOR; immutable between Initialize calls
	gradient [][]float64 // live scan result
	cost     [][]float64 // per-cell entry cost

	measurement cell.Measurement
	goals       []cell.Cell

	// BlockingRequirement ∈ {0,1,2}; see the corner-cutting rule consulted
	// during diagonal wave expansion. Default 2.
	blockingRequirement int

	// standardCosts is true when every passable cell's cost equals 1. It
	// enables Scan's early-exit-on-start optimization; InitializeCost
	// always disables it since caller-supplied costs may vary.
	standardCosts bool

	fleeCache *fleeCacheEntry
}

// New constructs an empty, uninitialized DistanceField using measurement
// for direction sets and heuristics. Call Initialize or InitializeCost
// before any scan.
func New(measurement cell.Measurement) *DistanceField {
	return &DistanceField{
		measurement:         measurement,
		blockingRequirement: 2,
	}
}

// Width returns the grid width, or 0 if not yet initialized.
func (df *DistanceField) Width() int { return df.width }

// Height returns the grid height, or 0 if not yet initialized.
func (df *DistanceField) Height() int { return df.height }

// BlockingRequirement returns the current corner-cutting policy.
func (df *DistanceField) BlockingRequirement() int { return df.blockingRequirement }

// SetBlockingRequirement sets the corner-cutting policy; values outside
// [0,2] are clamped.
func (df *DistanceField) SetBlockingRequirement(k int) {
	switch {
	case k < 0:
		k = 0
	case k > 2:
		k = 2
	}
	df.blockingRequirement = k
}

// Measurement returns the distance metric governing direction sets and
// heuristics.
func (df *DistanceField) Measurement() cell.Measurement { return df.measurement }

// SetMeasurement swaps the active measurement (used by find_attack_path's
// temporary Euclidean->Chebyshev downgrade).
func (df *DistanceField) SetMeasurement(m cell.Measurement) { df.measurement = m }

// Gradient returns the live gradient buffer directly (not a copy); callers
// that need a stable snapshot should copy it out before the next scan.
func (df *DistanceField) Gradient() [][]float64 { return df.gradient }

// Physical returns the physical (wall/floor) buffer directly.
func (df *DistanceField) Physical() [][]float64 { return df.physical }

// Cost returns the per-cell entry-cost buffer directly.
func (df *DistanceField) Cost() [][]float64 { return df.cost }

type fleeCacheEntry struct {
	sources           []cell.Cell
	impassable        []cell.Cell
	preferLongerPaths float64
	moverSize         int
	result            [][]float64
}
