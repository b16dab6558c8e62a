package game

import "gridsnake/internal/core"

var directions = [...]Direction{Up, Right, Down, Left}

// Autopilot is an EventSource that steers the snake towards the fruit. Each
// tick it drops reversing turns and moves that hit a wall or the body, then
// picks the move with the smallest Manhattan distance to the fruit. Ties keep
// the current heading.
type Autopilot struct {
	state *State
}

// NewAutopilot returns an Autopilot driving s.
func NewAutopilot(s *State) *Autopilot { return &Autopilot{state: s} }

// Drain returns at most one turn for the coming tick.
func (a *Autopilot) Drain() []Event {
	s := a.state
	if s.Stopped() != StopNone {
		return nil
	}
	current := s.Direction()
	head := s.Head()
	// The fruit check uses the head of record, so the snake grows while
	// standing on the fruit and moves towards the fruit's replacement
	// only on the following tick.
	target := s.Fruit()

	best, bestDist, found := current, 0, false
	for _, d := range directions {
		if d == current.Opposite() {
			continue
		}
		dx, dy := d.Delta()
		next := s.cfg.Geometry.Shift(head, dx, dy)
		if s.atBoundary(next) || s.snake.Overlaps(next) {
			continue
		}
		dist := manhattan(next, target)
		if !found || dist < bestDist || (dist == bestDist && d == current) {
			best, bestDist, found = d, dist, true
		}
	}
	if !found || best == current {
		return nil
	}
	return []Event{Press(directionKey(best))}
}

func directionKey(d Direction) Key {
	switch d {
	case Up:
		return KeyUp
	case Down:
		return KeyDown
	case Left:
		return KeyLeft
	default:
		return KeyRight
	}
}

func manhattan(a, b core.Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
