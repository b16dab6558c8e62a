// Package sweep plays many autopiloted games in parallel and aggregates the
// outcomes. It backs the headless snake-sim tool.
package sweep

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"gridsnake/internal/core"
	"gridsnake/internal/game"
)

// Outcome records how a single autopiloted game ended. Reason is StopNone
// when the tick limit was reached first.
type Outcome struct {
	Seed   int64
	Reason game.StopReason
	Ticks  int
	Length int
}

// Summary aggregates a batch of outcomes.
type Summary struct {
	Runs       int
	MeanLength float64
	MeanTicks  float64
	Best       Outcome
	Reasons    map[game.StopReason]int
}

// Play runs one game with the autopilot for at most maxTicks ticks.
func Play(cfg game.Config, maxTicks int) (Outcome, error) {
	state, err := game.New(cfg)
	if err != nil {
		return Outcome{}, err
	}
	pilot := game.NewAutopilot(state)
	out := Outcome{Seed: state.Config().Seed}
	for state.Ticks() < maxTicks {
		res := state.Step(pilot.Drain())
		if res.Stopped() {
			out.Reason = res.Reason
			break
		}
	}
	out.Ticks = state.Ticks()
	out.Length = state.Len()
	return out, nil
}

// Run plays runs games on workers goroutines. Game i uses seed base.Seed+i,
// with a zero base seed resolved from the clock first. Outcomes are sorted by
// length, longest first, then by seed.
func Run(ctx context.Context, base game.Config, runs, maxTicks, workers int) ([]Outcome, error) {
	if err := base.Validate(); err != nil {
		return nil, fmt.Errorf("sweep config: %w", err)
	}
	if runs < 0 {
		return nil, fmt.Errorf("sweep runs %d must not be negative", runs)
	}
	if maxTicks < 0 {
		return nil, fmt.Errorf("sweep tick limit %d must not be negative", maxTicks)
	}
	if workers <= 0 {
		workers = 1
	}
	base.Seed = core.SeedOrNow(base.Seed)

	jobs := make(chan int64)
	results := make(chan Outcome)
	errs := make(chan error, workers)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				cfg := base
				cfg.Seed = seed
				out, err := Play(cfg, maxTicks)
				if err != nil {
					errs <- err
					return
				}
				results <- out
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for i := 0; i < runs; i++ {
			select {
			case jobs <- base.Seed + int64(i):
			case <-ctx.Done():
				return
			}
		}
	}()

	all := make([]Outcome, 0, runs)
	for out := range results {
		all = append(all, out)
	}
	select {
	case err := <-errs:
		return all, err
	default:
	}
	if err := ctx.Err(); err != nil {
		return all, err
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Length != all[j].Length {
			return all[i].Length > all[j].Length
		}
		return all[i].Seed < all[j].Seed
	})
	return all, nil
}

// Summarize aggregates outcomes. Best is the longest snake.
func Summarize(outcomes []Outcome) Summary {
	s := Summary{Runs: len(outcomes), Reasons: make(map[game.StopReason]int)}
	if len(outcomes) == 0 {
		return s
	}
	var length, ticks int
	for _, o := range outcomes {
		length += o.Length
		ticks += o.Ticks
		s.Reasons[o.Reason]++
		if o.Length > s.Best.Length {
			s.Best = o
		}
	}
	s.MeanLength = float64(length) / float64(len(outcomes))
	s.MeanTicks = float64(ticks) / float64(len(outcomes))
	return s
}
