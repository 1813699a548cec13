package pathfind_test

import (
	"testing"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/cell"
	"github.com/katalvlaran/gridpath/distfield"
	"github.com/katalvlaran/gridpath/pathfind"
)

// pointBlast is a trivial TechniquePlacer: it only ever hits the origin
// cell itself, affecting every target that happens to stand there.
type pointBlast struct {
	minRange, maxRange int
	targetsByCell      map[cell.Cell][]cell.Cell
}

func (p pointBlast) MinRange() int { return p.minRange }
func (p pointBlast) MaxRange() int { return p.maxRange }

func (p pointBlast) IdealLocations(origin cell.Cell, targets, _ []cell.Cell) *linkedhashmap.Map {
	m := linkedhashmap.New()
	affected := p.targetsByCell[origin]
	m.Put(origin, affected)
	return m
}

func TestFindTechniquePath_SelectsHighestWorthOrigin(t *testing.T) {
	df := distfield.New(cell.Chebyshev)
	require.NoError(t, df.Initialize(bareRoom(9), '#'))

	target := cell.Cell{X: 4, Y: 4}
	start := cell.Cell{X: 0, Y: 0}
	tech := pointBlast{
		minRange: 0,
		maxRange: 5,
		targetsByCell: map[cell.Cell][]cell.Cell{
			{X: 3, Y: 4}: {target},
			{X: 3, Y: 3}: {target},
		},
	}

	result := pathfind.FindTechniquePath(df, 100, tech, nil, nil, nil, nil, start, []cell.Cell{target})
	require.NotEmpty(t, result.Path)

	end := result.Path[len(result.Path)-1]
	assert.Equal(t, end, result.ImpactCenter, "pointBlast's impact center is the origin cell itself")
	assert.Equal(t, []cell.Cell{target}, result.AffectedTargets)
}
