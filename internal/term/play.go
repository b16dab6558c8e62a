package term

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"gridsnake/internal/game"
)

// Play runs state on screen until the game stops or ctx is cancelled. The
// caller owns the screen and must finalize it.
func Play(ctx context.Context, screen tcell.Screen, state *game.State, logger *log.Logger) (game.Result, error) {
	cfg := state.Config()
	renderer := NewRenderer(screen, cfg.Geometry)
	input := NewInput(screen, game.DefaultBindings())

	if err := renderer.Render(state.Body(), state.Fruit()); err != nil {
		return game.Result{}, fmt.Errorf("initial frame: %w", err)
	}
	logger.Debug("terminal loop started", "tick", cfg.Tick, "seed", cfg.Seed, "bounds", cfg.Bounds)

	res, err := game.Run(ctx, state, input, renderer, cfg.Tick)
	if err != nil {
		return res, err
	}
	logger.Info("game over", "reason", res.Reason, "ticks", res.Tick, "length", state.Len())
	return res, nil
}

// NewScreen creates and initializes the terminal screen.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	return screen, nil
}
