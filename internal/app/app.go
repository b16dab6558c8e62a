//go:build ebiten

package app

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gridsnake/internal/core"
	"gridsnake/internal/game"
	"gridsnake/internal/render"
	"gridsnake/internal/ui"
)

var keymap = map[ebiten.Key]game.Key{
	ebiten.KeyW:          game.KeyUp,
	ebiten.KeyA:          game.KeyLeft,
	ebiten.KeyS:          game.KeyDown,
	ebiten.KeyD:          game.KeyRight,
	ebiten.KeyArrowUp:    game.KeyUp,
	ebiten.KeyArrowLeft:  game.KeyLeft,
	ebiten.KeyArrowDown:  game.KeyDown,
	ebiten.KeyArrowRight: game.KeyRight,
	ebiten.KeyEscape:     game.KeyQuit,
	ebiten.KeyQ:          game.KeyQuit,
}

// keyOrder fixes the polling order so simultaneous presses resolve the same
// way every frame.
var keyOrder = []ebiten.Key{
	ebiten.KeyW, ebiten.KeyA, ebiten.KeyS, ebiten.KeyD,
	ebiten.KeyArrowUp, ebiten.KeyArrowLeft, ebiten.KeyArrowDown, ebiten.KeyArrowRight,
	ebiten.KeyEscape, ebiten.KeyQ,
}

// Game adapts a game.State to the ebiten.Game interface. ebiten calls Update
// at its own TPS; the state only advances once per configured tick.
type Game struct {
	state   *game.State
	painter *render.GridPainter
	overlay *ui.Overlay
	step    *core.FixedStep
	logger  *log.Logger

	pending []game.Event
	paused  bool
	over    game.StopReason
	size    int
}

// New constructs a Game for the provided state.
func New(state *game.State, logger *log.Logger) *Game {
	cfg := state.Config()
	return &Game{
		state:   state,
		painter: render.NewGridPainter(cfg.Geometry, render.DefaultPalette()),
		overlay: ui.NewOverlay(),
		step:    core.NewFixedStep(cfg.Tick),
		logger:  logger,
		size:    cfg.Geometry.WindowSize,
	}
}

// Update queues key presses every frame and advances the state on tick
// boundaries. A quit ends the ebiten loop with ebiten.Termination; a collision
// freezes the board until quit or Enter is pressed.
func (g *Game) Update() error {
	for _, k := range keyOrder {
		if inpututil.IsKeyJustPressed(k) {
			g.pending = append(g.pending, game.Press(keymap[k]))
		}
	}
	if g.over != game.StopNone {
		if g.quitPending() || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			return ebiten.Termination
		}
		g.pending = g.pending[:0]
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.logger.Debug("pause toggled", "paused", g.paused)
	}
	if g.paused && !g.quitPending() {
		return nil
	}
	if !g.quitPending() && !g.step.ShouldStep() {
		return nil
	}

	res := g.state.Step(g.pending)
	g.pending = g.pending[:0]
	if res.Grew {
		g.logger.Debug("fruit eaten", "tick", res.Tick, "length", g.state.Len(), "fruit", g.state.Fruit())
	}
	if res.Stopped() {
		g.logger.Info("game over", "reason", res.Reason, "ticks", res.Tick, "length", g.state.Len())
		if res.Reason == game.StopQuit {
			return ebiten.Termination
		}
		g.over = res.Reason
	}
	return nil
}

func (g *Game) quitPending() bool {
	for _, ev := range g.pending {
		if ev.Key == game.KeyQuit {
			return true
		}
	}
	return false
}

// Draw renders the current state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.state.Body(), g.state.Fruit())
	switch {
	case g.over != game.StopNone:
		g.overlay.Draw(screen, "GAME OVER ("+g.over.String()+")")
	case g.paused:
		g.overlay.Draw(screen, "PAUSED")
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size, g.size
}
