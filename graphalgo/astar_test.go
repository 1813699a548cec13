package graphalgo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/graph"
	"github.com/katalvlaran/gridpath/graphalgo"
)

func buildDiamond() *graph.Graph {
	g := graph.NewGraph(false)
	g.AddVertex("A")
	g.AddVertex("B")
	g.AddVertex("C")
	g.AddVertex("D")
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "D", 1)
	_, _ = g.AddEdge("A", "C", 5)
	_, _ = g.AddEdge("C", "D", 1)
	return g
}

func TestDijkstra_PicksCheaperRoute(t *testing.T) {
	g := buildDiamond()
	path, cost, err := graphalgo.Dijkstra(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, path)
	assert.Equal(t, 2.0, cost)
}

func TestAStar_WithAdmissibleHeuristicMatchesDijkstra(t *testing.T) {
	g := buildDiamond()
	zero := func(a, b string) float64 { return 0 }
	path, cost, err := graphalgo.AStar(g, "A", "D", zero)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, path)
	assert.Equal(t, 2.0, cost)
}

func TestDijkstra_NoPathReturnsMaxFloat(t *testing.T) {
	g := graph.NewGraph(false)
	g.AddVertex("A")
	g.AddVertex("B")
	path, cost, err := graphalgo.Dijkstra(g, "A", "B")
	require.NoError(t, err)
	assert.Nil(t, path)
	assert.Equal(t, math.MaxFloat64, cost)
}

func TestDijkstra_MissingVertexErrors(t *testing.T) {
	g := graph.NewGraph(false)
	g.AddVertex("A")
	_, _, err := graphalgo.Dijkstra(g, "A", "Z")
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestDijkstra_StartEqualsTarget(t *testing.T) {
	g := buildDiamond()
	path, cost, err := graphalgo.Dijkstra(g, "A", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, path)
	assert.Equal(t, 0.0, cost)
}

func TestAStar_RepeatedRunsAreIndependent(t *testing.T) {
	g := buildDiamond()
	_, cost1, err := graphalgo.Dijkstra(g, "A", "D")
	require.NoError(t, err)
	_, cost2, err := graphalgo.Dijkstra(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, 2.0, cost1)
	assert.Equal(t, 3.0, cost2)
}
