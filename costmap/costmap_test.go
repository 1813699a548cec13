package costmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/costmap"
)

func TestBuildCostMap_DefaultWallsAndCost(t *testing.T) {
	grid := [][]rune{
		[]rune("#.."),
		[]rune(".+."),
	}
	cost, wall := costmap.BuildCostMap(grid, nil)
	assert.True(t, wall[0][0])
	assert.True(t, wall[1][1])
	assert.False(t, wall[0][1])
	assert.Equal(t, 1.0, cost[0][1])
	assert.Equal(t, 1.0, cost[1][0])
}

func TestBuildCostMap_BoxDrawingTreatedAsWall(t *testing.T) {
	grid := [][]rune{{'─', '.'}}
	_, wall := costmap.BuildCostMap(grid, nil)
	assert.True(t, wall[0][0])
}

func TestBuildCostMap_HashOverrideCoversBoxDrawing(t *testing.T) {
	grid := [][]rune{{'#', '─', '.'}}
	cost, wall := costmap.BuildCostMap(grid, map[rune]float64{'#': 3})
	assert.False(t, wall[0][0])
	assert.False(t, wall[0][1])
	assert.Equal(t, 3.0, cost[0][0])
	assert.Equal(t, 3.0, cost[0][1])
}

func TestBuildCostMap_CustomOverride(t *testing.T) {
	grid := [][]rune{{'~', '.'}}
	cost, _ := costmap.BuildCostMap(grid, map[rune]float64{'~': 5})
	assert.Equal(t, 5.0, cost[0][0])
	assert.Equal(t, 1.0, cost[0][1])
}

func TestBuildGraph_CardinalOnly_EdgeDirectionIsEntryCost(t *testing.T) {
	grid := [][]rune{
		[]rune(".."),
		[]rune(".."),
	}
	cost, wall := costmap.BuildCostMap(grid, map[rune]float64{'.': 4})
	g := costmap.BuildGraph(cost, wall, false)

	e, ok := g.GetEdge("0,0", "1,0")
	require.True(t, ok)
	assert.Equal(t, 4.0, e.Weight)

	reverse, ok := g.GetEdge("1,0", "0,0")
	require.True(t, ok)
	assert.Equal(t, 4.0, reverse.Weight)
}

func TestBuildGraph_WallCellsHaveNoVertex(t *testing.T) {
	grid := [][]rune{[]rune("#.")}
	cost, wall := costmap.BuildCostMap(grid, nil)
	g := costmap.BuildGraph(cost, wall, false)
	assert.False(t, g.HasVertex("0,0"))
	assert.True(t, g.HasVertex("1,0"))
}

func TestBuildGraph_DiagonalAddsCornerEdges(t *testing.T) {
	grid := [][]rune{
		[]rune(".."),
		[]rune(".."),
	}
	cost, wall := costmap.BuildCostMap(grid, nil)
	g := costmap.BuildGraph(cost, wall, true)
	_, ok := g.GetEdge("1,1", "0,0")
	assert.True(t, ok)
}

func TestBuildGraph_NoDiagonalOmitsCornerEdges(t *testing.T) {
	grid := [][]rune{
		[]rune(".."),
		[]rune(".."),
	}
	cost, wall := costmap.BuildCostMap(grid, nil)
	g := costmap.BuildGraph(cost, wall, false)
	_, ok := g.GetEdge("1,1", "0,0")
	assert.False(t, ok)
}
