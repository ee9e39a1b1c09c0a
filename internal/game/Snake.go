package game

import "slices"

// Snake is an ordered run of cells; Body[0] is the head.
type Snake struct {
	Body    []Point
	Heading Direction
	// heading of the last step actually taken, used to filter reversals
	lastMoved Direction
}

func NewSnake(body []Point, heading Direction) *Snake {
	return &Snake{
		Body:      slices.Clone(body),
		Heading:   heading,
		lastMoved: heading,
	}
}

func (s *Snake) Head() Point {
	return s.Body[0]
}

// UpdateDirection changes the heading unless it would turn the head
// straight back into the neck.
func (s *Snake) UpdateDirection(newDir Direction) bool {
	if newDir == s.lastMoved.Opposite() {
		return false
	}
	s.Heading = newDir
	return true
}

// NextHead is where the head lands after one unwrapped step along Heading.
func (s *Snake) NextHead() Point {
	dx, dy := s.Heading.Delta()
	return s.Head().Add(dx, dy)
}

// MoveTo pushes a new head. The tail is kept when grow is set.
func (s *Snake) MoveTo(head Point, dir Direction, grow bool) {
	s.Body = slices.Insert(s.Body, 0, head)
	if !grow {
		s.Body = s.Body[:len(s.Body)-1]
	}
	s.lastMoved = dir
}

// Occupies reports whether any segment from index from onward sits on p.
func (s *Snake) Occupies(p Point, from int) bool {
	if from >= len(s.Body) {
		return false
	}
	return slices.Contains(s.Body[from:], p)
}

func (s *Snake) Len() int {
	return len(s.Body)
}
