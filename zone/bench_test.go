package zone_test

import (
	"testing"

	"github.com/emirpasic/gods/sets/hashset"

	"github.com/katalvlaran/gridpath/cell"
	"github.com/katalvlaran/gridpath/distfield"
	"github.com/katalvlaran/gridpath/zone"
)

var benchSinkZones map[int]*hashset.Set

// BenchmarkPartition_Grid measures a 4-group partition of a 32x32 open
// room, one seed per corner.
func BenchmarkPartition_Grid(b *testing.B) {
	const side = 32
	grid := make([][]rune, side)
	for y := range grid {
		row := make([]rune, side)
		for x := range row {
			row[x] = '.'
		}
		grid[y] = row
	}

	df := distfield.New(cell.Chebyshev)
	if err := df.Initialize(grid, '#'); err != nil {
		b.Fatal(err)
	}
	groups := [][]cell.Cell{
		{{X: 0, Y: 0}},
		{{X: side - 1, Y: 0}},
		{{X: 0, Y: side - 1}},
		{{X: side - 1, Y: side - 1}},
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		benchSinkZones = zone.Partition(df, groups)
	}
}
