package game

// Grid is the board, measured in cells.
type Grid struct {
	Width  int
	Height int
}

func NewGrid(cols, rows int) Grid {
	return Grid{Width: cols, Height: rows}
}

func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap folds any point back onto the board, negative coordinates included.
func (g Grid) Wrap(p Point) Point {
	return Point{X: mod(p.X, g.Width), Y: mod(p.Y, g.Height)}
}

// Neighbors returns the four wrapped neighbours of p in Directions order.
func (g Grid) Neighbors(p Point) []Point {
	result := make([]Point, 0, len(Directions))
	for _, dir := range Directions {
		dx, dy := dir.Delta()
		result = append(result, g.Wrap(p.Add(dx, dy)))
	}
	return result
}

// DirectionTo reports which single wrapped step leads from one cell to
// an adjacent one. ok is false when the cells are not neighbours.
func (g Grid) DirectionTo(from, to Point) (dir Direction, ok bool) {
	for _, d := range Directions {
		dx, dy := d.Delta()
		if g.Wrap(from.Add(dx, dy)) == to {
			return d, true
		}
	}
	return Right, false
}

// Cells lists every cell row by row.
func (g Grid) Cells() []Point {
	cells := make([]Point, 0, g.Width*g.Height)
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			cells = append(cells, Point{X: col, Y: row})
		}
	}
	return cells
}

func mod(a, n int) int {
	if n <= 0 {
		return 0
	}
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
