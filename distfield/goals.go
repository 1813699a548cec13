package distfield

import "github.com/katalvlaran/gridpath/cell"

// SetGoal records c as a goal and sets its gradient to Goal (0). Walls and
// out-of-bounds cells are silently ignored.
func (df *DistanceField) SetGoal(c cell.Cell) {
	if !df.initialized() || !c.Within(df.width, df.height) {
		return
	}
	if df.physical[c.Y][c.X] == Wall {
		return
	}
	df.goals = append(df.goals, c)
	df.gradient[c.Y][c.X] = Goal
}

// SetGoals calls SetGoal for every cell in cells, in order.
func (df *DistanceField) SetGoals(cells []cell.Cell) {
	for _, c := range cells {
		df.SetGoal(c)
	}
}

// ClearGoals drops the goal list without touching the gradient buffer
// (callers typically follow with ResetMap if they also want the
// gradient restored).
func (df *DistanceField) ClearGoals() {
	df.goals = nil
}

// Goals returns the current goal list in insertion order.
func (df *DistanceField) Goals() []cell.Cell {
	return df.goals
}
