package game

import (
	"testing"

	"gridsnake/internal/core"
)

func TestAutopilotTurnsTowardsFruit(t *testing.T) {
	s := newTestState(t, func(c *Config) { c.Origin = core.Cell{X: 100, Y: 100} })
	s.fruit = core.Cell{X: 100, Y: 300}

	got := NewAutopilot(s).Drain()
	if len(got) != 1 || got[0].Key != KeyDown {
		t.Fatalf("expected a single down turn, got %v", got)
	}
}

func TestAutopilotNeverReverses(t *testing.T) {
	s := newTestState(t, func(c *Config) { c.Origin = core.Cell{X: 100, Y: 100} })
	s.fruit = core.Cell{X: 0, Y: 100}

	for _, ev := range NewAutopilot(s).Drain() {
		if ev.Key == KeyLeft {
			t.Fatal("autopilot requested a reverse turn")
		}
	}
}

func TestAutopilotAvoidsBoundary(t *testing.T) {
	s := newTestState(t, func(c *Config) { c.Origin = core.Cell{X: 760, Y: 100} })
	s.fruit = core.Cell{X: 780, Y: 100}

	got := NewAutopilot(s).Drain()
	if len(got) != 1 || got[0].Key != KeyUp {
		t.Fatalf("expected the autopilot to turn away from the edge, got %v", got)
	}
}

func TestAutopilotEatsFruitOnItsPath(t *testing.T) {
	s := newTestState(t, nil)
	s.fruit = core.Cell{X: 200, Y: 0}
	pilot := NewAutopilot(s)

	grewAt := 0
	for i := 0; i < 12 && grewAt == 0; i++ {
		if res := s.Step(pilot.Drain()); res.Grew {
			grewAt = res.Tick
		}
	}
	if grewAt != 11 {
		t.Fatalf("expected growth on tick 11, got %d", grewAt)
	}
	if s.Len() != 2 {
		t.Fatalf("expected length 2, got %d", s.Len())
	}
}
