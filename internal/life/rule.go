package life

import "fblife/internal/core"

// Next applies the B3/S23 rule: a live cell with two or three live
// neighbours survives, a dead cell with exactly three is born, and every
// other combination is dead.
func Next(current core.Cell, liveNeighbors int) core.Cell {
	switch {
	case current == core.Alive && (liveNeighbors == 2 || liveNeighbors == 3):
		return core.Alive
	case current == core.Dead && liveNeighbors == 3:
		return core.Alive
	default:
		return core.Dead
	}
}
