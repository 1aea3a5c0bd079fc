package rules

// Cell states stored in a grid.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

/*
Conway returns the next state of a cell given its current state and the number
of live cells in its Moore neighborhood.

A live cell survives with 2 or 3 neighbors, a dead cell is born with exactly 3.
Every other count leaves the cell dead.
*/
func Conway(cell uint8, neighbors int) uint8 {
	if neighbors == 3 || (cell == Alive && neighbors == 2) {
		return Alive
	}
	return Dead
}
