//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"gridsnake/internal/app"
	"gridsnake/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, err := cfg.Logger(os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	gc, err := cfg.GameConfig()
	if err != nil {
		logger.Fatal("bad configuration", "err", err)
	}
	state, err := game.New(gc)
	if err != nil {
		logger.Fatal("cannot start game", "err", err)
	}
	logger.Info("starting", "window", gc.Geometry.WindowSize, "grid", gc.Geometry.GridSize, "tick", gc.Tick, "seed", state.Config().Seed)

	g := app.New(state, logger)
	size := gc.Geometry.WindowSize

	ebiten.SetWindowTitle("gridsnake")
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(size, size)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game loop failed", "err", err)
	}
}
