package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gridsnake/internal/app"
	"gridsnake/internal/game"
	"gridsnake/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	// The screen owns the terminal while playing, so logs are held until
	// it has been released.
	var logs bytes.Buffer
	logger, err := cfg.Logger(&logs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	gc, err := cfg.GameConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	state, err := game.New(gc)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	screen, err := term.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	res, playErr := term.Play(ctx, screen, state, logger)
	screen.Fini()

	os.Stderr.Write(logs.Bytes())
	if playErr != nil && ctx.Err() == nil {
		fmt.Fprintln(os.Stderr, playErr)
		os.Exit(1)
	}
	fmt.Printf("game over after %d ticks (%s), length %d\n", res.Tick, res.Reason, state.Len())
}
