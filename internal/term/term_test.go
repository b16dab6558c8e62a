package term

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"gridsnake/internal/core"
	"gridsnake/internal/game"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(80, 40)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestRendererDrawsCells(t *testing.T) {
	screen := newSimScreen(t)
	defer screen.Fini()

	geo := core.Geometry{WindowSize: 100, GridSize: 20}
	r := NewRenderer(screen, geo)
	body := []core.Cell{{X: 0, Y: 0}, {X: 20, Y: 0}}
	if err := r.Render(body, core.Cell{X: 40, Y: 40}); err != nil {
		t.Fatalf("Render: %v", err)
	}

	for _, pos := range [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 2}, {5, 2}} {
		if got := runeAt(screen, pos[0], pos[1]); got != '█' {
			t.Fatalf("expected filled cell at %v, got %q", pos, got)
		}
	}
	if got := runeAt(screen, 8, 0); got != '░' {
		t.Fatalf("expected shaded edge column at x=8, got %q", got)
	}
	if got := runeAt(screen, 2, 2); got == '█' {
		t.Fatal("empty cell must not be filled")
	}
}

func waitForEvents(t *testing.T, in *Input, n int) []game.Event {
	t.Helper()
	var got []game.Event
	deadline := time.Now().Add(2 * time.Second)
	for len(got) < n && time.Now().Before(deadline) {
		got = append(got, in.Drain()...)
		time.Sleep(5 * time.Millisecond)
	}
	return got
}

func TestInputTranslatesKeys(t *testing.T) {
	screen := newSimScreen(t)
	defer screen.Fini()

	in := NewInput(screen, nil)
	screen.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	screen.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'Q', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'D', tcell.ModNone)

	got := waitForEvents(t, in, 6)
	want := []game.Key{game.KeyUp, game.KeyLeft, game.KeyQuit, game.KeyQuit, game.KeyQuit, game.KeyRight}
	if len(got) != len(want) {
		t.Fatalf("expected %d events, got %v", len(want), got)
	}
	for i, k := range want {
		if got[i].Key != k || got[i].Released {
			t.Fatalf("event %d = %+v, expected press of %d", i, got[i], k)
		}
	}
}

func TestInputReportsQuitAfterFini(t *testing.T) {
	screen := newSimScreen(t)
	in := NewInput(screen, nil)
	screen.Fini()

	got := waitForEvents(t, in, 1)
	if len(got) == 0 || got[len(got)-1].Key != game.KeyQuit {
		t.Fatalf("expected quit after the screen closed, got %v", got)
	}
	if again := in.Drain(); len(again) != 1 || again[0].Key != game.KeyQuit {
		t.Fatalf("closed input must keep reporting quit, got %v", again)
	}
}

func TestPlayEndsOnQuitKey(t *testing.T) {
	screen := newSimScreen(t)
	defer screen.Fini()

	cfg := game.DefaultConfig()
	cfg.Seed = 1
	// 39 ticks to the far edge take far longer than the context allows, so
	// only the injected quit can end the game.
	cfg.Tick = 250 * time.Millisecond
	state, err := game.New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := Play(ctx, screen, state, log.New(io.Discard))
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if res.Reason != game.StopQuit {
		t.Fatalf("expected quit, got %s", res.Reason)
	}
	if state.Head().X >= 780 {
		t.Fatalf("snake reached the far edge before quitting: %v", state.Head())
	}
}
