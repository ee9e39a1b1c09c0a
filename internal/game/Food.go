package game

import "math/rand"

// spawnFood picks a random cell not covered by any of the snakes. When the
// board is full it falls back to any cell, so food never leaves the grid.
func spawnFood(rng *rand.Rand, grid Grid, snakes ...*Snake) Point {
	free := make([]Point, 0, grid.Width*grid.Height)
	for _, cell := range grid.Cells() {
		if !isOccupied(cell, snakes) {
			free = append(free, cell)
		}
	}

	if len(free) == 0 {
		return Point{X: rng.Intn(grid.Width), Y: rng.Intn(grid.Height)}
	}
	return free[rng.Intn(len(free))]
}

func isOccupied(p Point, snakes []*Snake) bool {
	for _, snake := range snakes {
		if snake != nil && snake.Occupies(p, 0) {
			return true
		}
	}
	return false
}
