package game

import "gridsnake/internal/core"

// Snake is the body of the player, stored tail first: index 0 is the oldest
// cell and the last element is the head.
type Snake struct {
	body []core.Cell
}

// NewSnake returns a one-cell snake at origin.
func NewSnake(origin core.Cell) *Snake {
	return &Snake{body: []core.Cell{origin}}
}

// Head returns the most recently added cell. An empty snake is a programming
// error and panics.
func (s *Snake) Head() core.Cell {
	if len(s.body) == 0 {
		panic("game: empty snake")
	}
	return s.body[len(s.body)-1]
}

// BodyWithoutHead returns every cell except the head. The slice aliases the
// snake's storage and must not be modified.
func (s *Snake) BodyWithoutHead() []core.Cell {
	if len(s.body) == 0 {
		return nil
	}
	return s.body[:len(s.body)-1]
}

// Advance appends newHead and, unless the snake grew this tick, drops the tail.
func (s *Snake) Advance(newHead core.Cell, grew bool) {
	s.body = append(s.body, newHead)
	if !grew {
		s.body = s.body[1:]
	}
}

// Len returns the number of cells in the body.
func (s *Snake) Len() int { return len(s.body) }

// Cells exposes the body tail first for rendering. Callers must not modify it.
func (s *Snake) Cells() []core.Cell { return s.body }

// Overlaps reports whether c coincides with any body cell other than the head.
func (s *Snake) Overlaps(c core.Cell) bool {
	for _, part := range s.BodyWithoutHead() {
		if core.CellsEqual(part, c) {
			return true
		}
	}
	return false
}
