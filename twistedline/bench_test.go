package twistedline_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/cell"
	"github.com/katalvlaran/gridpath/internal/prng"
	"github.com/katalvlaran/gridpath/twistedline"
)

var (
	benchSinkTree *struct{ vertices int }
	benchSinkPath []cell.Cell
)

// BenchmarkCarveSpanningTree measures carving a spanning tree over a 32x32
// grid.
func BenchmarkCarveSpanningTree(b *testing.B) {
	const side = 32
	rng := prng.FromSeed(99)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		g := twistedline.CarveSpanningTree(side, side, rng)
		benchSinkTree = &struct{ vertices int }{vertices: len(g.Vertices())}
	}
}

// BenchmarkTwistedLine measures extracting the twisted line across a
// 32x32 carved maze's diagonal.
func BenchmarkTwistedLine(b *testing.B) {
	const side = 32
	rng := prng.FromSeed(99)
	g := twistedline.CarveSpanningTree(side, side, rng)
	a, c := cell.Cell{X: 0, Y: 0}, cell.Cell{X: side - 1, Y: side - 1}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		path, err := twistedline.TwistedLine(g, a, c)
		if err != nil {
			b.Fatal(err)
		}
		benchSinkPath = path
	}
}
