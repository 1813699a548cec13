package pathfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/cell"
	"github.com/katalvlaran/gridpath/distfield"
	"github.com/katalvlaran/gridpath/pathfind"
)

func bareRoom(side int) [][]rune {
	grid := make([][]rune, side)
	for y := range grid {
		row := make([]rune, side)
		for x := range row {
			row[x] = '.'
		}
		grid[y] = row
	}
	return grid
}

// S1: bare 5x5 room, goal at (0,0), Manhattan. A single call with a large
// length budget walks the full 8-cell route from (4,4), using only
// cardinal steps.
func TestFindPath_BareRoom_ManhattanReachesGoal(t *testing.T) {
	df := distfield.New(cell.Manhattan)
	require.NoError(t, df.Initialize(bareRoom(5), '#'))

	start := cell.Cell{X: 4, Y: 4}
	result := pathfind.FindPath(df, 100, 0, nil, nil, start, []cell.Cell{{X: 0, Y: 0}})

	require.False(t, result.CutShort)
	require.Len(t, result.Path, 9) // start + 8 steps
	assert.Equal(t, start, result.Path[0])
	assert.Equal(t, cell.Cell{X: 0, Y: 0}, result.Path[len(result.Path)-1])

	for i := 1; i < len(result.Path); i++ {
		prev, cur := result.Path[i-1], result.Path[i]
		dx := abs(cur.X - prev.X)
		dy := abs(cur.Y - prev.Y)
		assert.True(t, (dx == 1) != (dy == 1), "step %d must be a single cardinal move", i)
	}
}

// S1 (per-call variant): find_path(1, ...) caps accumulated cost at
// length-1=0, so each call advances exactly one cell; calling it
// repeatedly, feeding each returned endpoint back in as the next start,
// accumulates the same 8-cell route as a single large-budget call.
func TestFindPath_UnitLength_AdvancesOneCellPerCall(t *testing.T) {
	df := distfield.New(cell.Manhattan)
	require.NoError(t, df.Initialize(bareRoom(5), '#'))

	current := cell.Cell{X: 4, Y: 4}
	goal := cell.Cell{X: 0, Y: 0}
	total := []cell.Cell{current}

	for steps := 0; current != goal && steps < 16; steps++ {
		result := pathfind.FindPath(df, 1, 0, nil, nil, current, []cell.Cell{goal})
		require.Len(t, result.Path, 2, "a unit-length call advances exactly one cell")
		current = result.Path[1]
		total = append(total, current)
	}

	assert.Equal(t, goal, current)
	assert.Len(t, total, 9)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func TestFindPath_UnreachableTarget_CutShort(t *testing.T) {
	grid := [][]rune{[]rune(".#.")}
	df := distfield.New(cell.Manhattan)
	require.NoError(t, df.Initialize(grid, '#'))

	result := pathfind.FindPath(df, 10, 0, nil, nil, cell.Cell{X: 0, Y: 0}, []cell.Cell{{X: 2, Y: 0}})
	assert.True(t, result.CutShort)
}

func TestFindPath_AlreadyAtGoal_EmptyNotCutShort(t *testing.T) {
	df := distfield.New(cell.Manhattan)
	require.NoError(t, df.Initialize(bareRoom(3), '#'))

	start := cell.Cell{X: 1, Y: 1}
	result := pathfind.FindPath(df, 5, 0, nil, nil, start, []cell.Cell{start})
	assert.False(t, result.CutShort)
	assert.Equal(t, []cell.Cell{start}, result.Path)
}

func TestFindPath_OnlyPassableEndpoint_RestartsUntilClear(t *testing.T) {
	// 1x5 row; goal far enough that length forces a stop at the ally cell
	// unless the frustration restart routes around it.
	grid := [][]rune{[]rune(".....")}
	df := distfield.New(cell.Manhattan)
	require.NoError(t, df.Initialize(grid, '#'))

	start := cell.Cell{X: 0, Y: 0}
	ally := cell.Cell{X: 2, Y: 0}
	result := pathfind.FindPath(df, 2, 0, nil, []cell.Cell{ally}, start, []cell.Cell{{X: 4, Y: 0}})

	for _, c := range result.Path {
		assert.NotEqual(t, ally, c)
	}
}
