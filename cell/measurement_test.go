package cell

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasurement_DirectionCount(t *testing.T) {
	assert.Equal(t, 4, Manhattan.DirectionCount())
	assert.Equal(t, 8, Chebyshev.DirectionCount())
	assert.Equal(t, 8, Euclidean.DirectionCount())
}

func TestMeasurement_HeuristicCardinal(t *testing.T) {
	for _, m := range []Measurement{Manhattan, Chebyshev, Euclidean} {
		assert.Equal(t, 1.0, m.Heuristic(North))
		assert.Equal(t, 1.0, m.Heuristic(East))
	}
}

func TestMeasurement_HeuristicDiagonal(t *testing.T) {
	require.True(t, math.IsNaN(Manhattan.Heuristic(NorthEast)))
	assert.Equal(t, 1.0, Chebyshev.Heuristic(NorthEast))
	assert.InDelta(t, math.Sqrt2, Euclidean.Heuristic(NorthEast), 1e-12)
}

func TestMeasurement_Radius(t *testing.T) {
	a, b := Cell{X: 0, Y: 0}, Cell{X: 3, Y: 4}
	assert.Equal(t, 7.0, Manhattan.Radius(a, b))
	assert.Equal(t, 4.0, Chebyshev.Radius(a, b))
	assert.Equal(t, 5.0, Euclidean.Radius(a, b))
}

func TestCell_TranslateAndWithin(t *testing.T) {
	c := Cell{X: 2, Y: 2}
	n := c.Translate(North)
	assert.Equal(t, Cell{X: 2, Y: 1}, n)
	assert.True(t, n.Within(5, 5))
	assert.False(t, Cell{X: -1, Y: 0}.Within(5, 5))
}

func TestCell_EncodeDecodeRoundTrip(t *testing.T) {
	c := Cell{X: 1234, Y: 5678}
	assert.Equal(t, c, Decode(c.Encode()))
}

func TestDirection_IsDiagonal(t *testing.T) {
	assert.False(t, North.IsDiagonal())
	assert.True(t, NorthEast.IsDiagonal())
	assert.False(t, DirNone.IsDiagonal())
}
