package zone

import (
	"github.com/emirpasic/gods/sets/hashset"

	"github.com/katalvlaran/gridpath/cell"
	"github.com/katalvlaran/gridpath/distfield"
)

// Partition scans df once with every seed from every group marked as a
// goal, then region-grows each group independently from its own seeds
// over that shared gradient: a neighbour joins a group's set iff its
// gradient is finite, not already claimed by that group, and no more than
// 1 above the frontier cell's own gradient (never below it). Growth uses
// df's measurement's direction set (cardinals for Manhattan, 8-way
// otherwise). The per-group bitmaps returned can overlap along the
// 1-2-cell border where two groups' distances tie.
func Partition(df *distfield.DistanceField, groups [][]cell.Cell) map[int]*hashset.Set {
	var allSeeds []cell.Cell
	for _, g := range groups {
		allSeeds = append(allSeeds, g...)
	}

	df.ClearGoals()
	df.ResetMap()
	df.SetGoals(allSeeds)
	df.Scan(nil, nil, false)

	grad := df.Gradient()
	w, h := df.Width(), df.Height()
	dirs := df.Measurement().Directions()

	result := make(map[int]*hashset.Set, len(groups))
	for i, seeds := range groups {
		claimed := hashset.New()
		queue := make([]cell.Cell, 0, len(seeds))
		for _, s := range seeds {
			if s.Within(w, h) && !claimed.Contains(s.Encode()) {
				claimed.Add(s.Encode())
				queue = append(queue, s)
			}
		}

		for qi := 0; qi < len(queue); qi++ {
			c := queue[qi]
			cg := grad[c.Y][c.X]
			for _, d := range dirs {
				n := c.Translate(d)
				if !n.Within(w, h) {
					continue
				}
				ng := grad[n.Y][n.X]
				if ng >= distfield.Floor {
					continue
				}
				if claimed.Contains(n.Encode()) {
					continue
				}
				if ng < cg || ng > cg+1 {
					continue
				}
				claimed.Add(n.Encode())
				queue = append(queue, n)
			}
		}

		result[i] = claimed
	}

	return result
}
