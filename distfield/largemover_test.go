package distfield_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/cell"
	"github.com/katalvlaran/gridpath/distfield"
)

// size<=1 must behave exactly like Scan/ScanToMap: no dilation, no goal
// filtering.
func TestScanLargeMover_UnitSizeMatchesScanToMap(t *testing.T) {
	df := distfield.New(cell.Manhattan)
	require.NoError(t, df.Initialize(bareRoom(5), '#'))
	df.SetGoal(cell.Cell{X: 0, Y: 0})

	want := df.ScanToMap(nil)
	df.ResetMap() // goal list survives ResetMap, no need to re-add it
	got := df.ScanLargeMover(1, nil, false)

	for y := range want {
		assert.Equal(t, want[y], got[y])
	}
}

// A goal whose size x size footprint (max corner at the goal, per spec
// §4.4.5) overlaps a physical wall can never be stood on by a mover of
// that size, so it must not seed the clone's wave.
func TestScanLargeMover_GoalOverlappingWallIsDropped(t *testing.T) {
	grid := [][]rune{
		[]rune("..."),
		[]rune("#.."),
		[]rune("..."),
	}
	df := distfield.New(cell.Manhattan)
	require.NoError(t, df.Initialize(grid, '#'))
	df.SetGoal(cell.Cell{X: 1, Y: 1}) // footprint (0,0)-(1,1) covers the wall at (0,1)

	got := df.ScanLargeMover(2, nil, false)
	for y := range got {
		for x := range got[y] {
			if grid[y][x] != '#' {
				assert.Equal(t, distfield.Dark, got[y][x], "cell (%d,%d) should be unreached — the only goal was dropped", x, y)
			}
		}
	}
}

// A one-cell-wide gap in a wall row is passable for a 1x1 mover but its
// dilated neighbourhood swallows the gap for a 2x2 mover, leaving the
// far side unreachable.
func TestScanLargeMover_NarrowGapBlocksLargerMover(t *testing.T) {
	grid := [][]rune{
		[]rune("......."),
		[]rune("......."),
		[]rune("......."),
		[]rune("###.###"),
		[]rune("......."),
		[]rune("......."),
	}
	df := distfield.New(cell.Manhattan)
	require.NoError(t, df.Initialize(grid, '#'))
	df.SetGoal(cell.Cell{X: 3, Y: 1})

	got := df.ScanLargeMover(2, nil, false)
	assert.Equal(t, distfield.Dark, got[5][3], "a 2x2 mover cannot reach across a 1-wide gap")
}
