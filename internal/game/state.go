package game

import (
	"fmt"

	"gridsnake/internal/core"
)

// StopReason explains why a game ended.
type StopReason uint8

const (
	StopNone StopReason = iota
	StopSelf
	StopBoundary
	StopQuit
)

func (r StopReason) String() string {
	switch r {
	case StopNone:
		return "none"
	case StopSelf:
		return "self collision"
	case StopBoundary:
		return "boundary"
	case StopQuit:
		return "quit"
	}
	return "unknown"
}

// Result is the outcome of a single tick.
type Result struct {
	Tick   int
	Grew   bool
	Reason StopReason
}

// Stopped reports whether the tick ended the game.
func (r Result) Stopped() bool { return r.Reason != StopNone }

// State owns everything a running game mutates. It is not safe for
// concurrent use; the loop that steps it is its only owner.
type State struct {
	cfg     Config
	snake   *Snake
	input   *Mapper
	spawner *Spawner
	fruit   core.Cell

	ticks int
	stop  StopReason
}

// New validates cfg and builds the initial state: a one-cell snake at the
// origin and a randomly placed fruit. A zero seed is replaced by the clock.
func New(cfg Config) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game config: %w", err)
	}
	cfg.Seed = core.SeedOrNow(cfg.Seed)
	s := &State{
		cfg:     cfg,
		snake:   NewSnake(cfg.Origin),
		input:   NewMapper(cfg.Start),
		spawner: NewSpawner(cfg.Geometry, core.NewRNG(cfg.Seed)),
	}
	s.fruit = s.spawner.Next()
	return s, nil
}

// Step runs one tick. Collisions are tested against the head committed by the
// previous tick, so a snake that moves onto itself is caught one tick later.
// Once a stop has been reported Step keeps returning it without mutating.
func (s *State) Step(events []Event) Result {
	if s.stop != StopNone {
		return Result{Tick: s.ticks, Reason: s.stop}
	}
	for _, ev := range events {
		if ev.Key == KeyQuit && !ev.Released {
			return s.finish(StopQuit)
		}
	}
	s.input.ApplyAll(events)

	head := s.snake.Head()
	if s.snake.Overlaps(head) {
		return s.finish(StopSelf)
	}
	if s.atBoundary(head) {
		return s.finish(StopBoundary)
	}

	dx, dy := s.input.Current().Delta()
	newHead := s.cfg.Geometry.Shift(head, dx, dy)

	grew := core.CellsEqual(head, s.fruit)
	if grew {
		s.fruit = s.spawner.Next()
	}
	s.snake.Advance(newHead, grew)
	s.ticks++
	return Result{Tick: s.ticks, Grew: grew}
}

func (s *State) finish(r StopReason) Result {
	s.stop = r
	return Result{Tick: s.ticks, Reason: r}
}

func (s *State) atBoundary(c core.Cell) bool {
	if s.cfg.Bounds == BoundsFarEdge {
		return s.cfg.Geometry.AtFarEdge(c)
	}
	return s.cfg.Geometry.AtBoundary(c)
}

// Body returns the snake cells tail first. Callers must not modify it.
func (s *State) Body() []core.Cell { return s.snake.Cells() }

// Head returns the snake's head cell.
func (s *State) Head() core.Cell { return s.snake.Head() }

// Len returns the snake length.
func (s *State) Len() int { return s.snake.Len() }

// Fruit returns the current fruit cell.
func (s *State) Fruit() core.Cell { return s.fruit }

// Direction returns the current direction of travel.
func (s *State) Direction() Direction { return s.input.Current() }

// Ticks returns the number of completed ticks.
func (s *State) Ticks() int { return s.ticks }

// Stopped returns the terminal reason, or StopNone while the game runs.
func (s *State) Stopped() StopReason { return s.stop }

// Config returns the validated configuration, including the resolved seed.
func (s *State) Config() Config { return s.cfg }
