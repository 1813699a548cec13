package graphalgo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/graph"
	"github.com/katalvlaran/gridpath/graphalgo"
)

func buildSquareWithDiagonal() *graph.Graph {
	// A-B(1) B-C(1) C-D(1) D-A(1) A-C(5)
	g := graph.NewGraph(false)
	for _, v := range []string{"A", "B", "C", "D"} {
		g.AddVertex(v)
	}
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("C", "D", 1)
	_, _ = g.AddEdge("D", "A", 1)
	_, _ = g.AddEdge("A", "C", 5)
	return g
}

func TestKruskal_Minimizing_SkipsExpensiveDiagonal(t *testing.T) {
	g := buildSquareWithDiagonal()
	tree, weight, err := graphalgo.Kruskal(g, true)
	require.NoError(t, err)
	assert.Equal(t, int64(3), weight)
	assert.Len(t, tree.Edges(), 3)
}

func TestKruskal_Maximizing_PrefersExpensiveDiagonal(t *testing.T) {
	g := buildSquareWithDiagonal()
	tree, weight, err := graphalgo.Kruskal(g, false)
	require.NoError(t, err)
	assert.Equal(t, int64(5+1+1), weight)
	_, ok := tree.GetEdge("A", "C")
	assert.True(t, ok)
}

func TestKruskal_DisconnectedGraphErrors(t *testing.T) {
	g := graph.NewGraph(false)
	g.AddVertex("A")
	g.AddVertex("B")
	_, _, err := graphalgo.Kruskal(g, true)
	assert.ErrorIs(t, err, graphalgo.ErrDisconnected)
}

func TestKruskal_SingleVertex(t *testing.T) {
	g := graph.NewGraph(false)
	g.AddVertex("A")
	tree, weight, err := graphalgo.Kruskal(g, true)
	require.NoError(t, err)
	assert.Equal(t, int64(0), weight)
	assert.Empty(t, tree.Edges())
}
