package game

import (
	"context"
	"fmt"
	"time"

	"gridsnake/internal/core"
)

// EventSource yields the key events queued since the previous call.
type EventSource interface {
	Drain() []Event
}

// Renderer draws the snake body (tail first) and the fruit.
type Renderer interface {
	Render(body []core.Cell, fruit core.Cell) error
}

// Run steps s once per tick until the game stops or ctx is cancelled. Each
// tick drains src, steps, renders and then sleeps for the fixed tick period;
// the sleep does not account for time spent rendering. A non-positive tick
// runs as fast as possible. A nil renderer skips drawing.
func Run(ctx context.Context, s *State, src EventSource, r Renderer, tick time.Duration) (Result, error) {
	var timer *time.Timer
	if tick > 0 {
		timer = time.NewTimer(tick)
		timer.Stop()
		defer timer.Stop()
	}
	for {
		if err := ctx.Err(); err != nil {
			return Result{Tick: s.Ticks()}, err
		}

		var events []Event
		if src != nil {
			events = src.Drain()
		}
		res := s.Step(events)
		if res.Stopped() {
			return res, nil
		}
		if r != nil {
			if err := r.Render(s.Body(), s.Fruit()); err != nil {
				return res, fmt.Errorf("render tick %d: %w", res.Tick, err)
			}
		}

		if timer == nil {
			continue
		}
		timer.Reset(tick)
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		case <-timer.C:
		}
	}
}
