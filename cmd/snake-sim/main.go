package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"gridsnake/internal/game"
	"gridsnake/internal/sweep"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	runs := flag.Int("runs", 64, "number of games to play")
	ticks := flag.Int("ticks", 5000, "tick limit per game")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel games")
	seed := flag.Int64("seed", 1, "seed of the first game (0 picks one from the clock)")
	top := flag.Int("top", 5, "number of best games to list")
	level := flag.String("log-level", "info", "log level: debug, info, warn, error")
	var overrides kvList
	flag.Var(&overrides, "set", "config override in key=value form (repeatable)")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "snake-sim"})
	if lvl, err := log.ParseLevel(*level); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warn("unknown log level, keeping info", "level", *level)
	}

	values := map[string]string{"seed": strconv.FormatInt(*seed, 10)}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			logger.Warn("ignoring malformed override", "set", kv)
			continue
		}
		values[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	for _, key := range game.UnknownKeys(values) {
		logger.Warn("ignoring unknown override key", "key", key)
	}
	cfg := game.FromMap(values)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	logger.Debug("sweep starting", "runs", *runs, "ticks", *ticks, "workers", *workers, "bounds", cfg.Bounds)
	outcomes, err := sweep.Run(ctx, cfg, *runs, *ticks, *workers)
	if err != nil {
		logger.Fatal("sweep failed", "err", err)
	}
	logger.Info("sweep finished", "runs", len(outcomes), "elapsed", time.Since(start).Round(time.Millisecond))

	sum := sweep.Summarize(outcomes)
	fmt.Printf("Runs: %d, mean length %.2f, mean ticks %.1f\n", sum.Runs, sum.MeanLength, sum.MeanTicks)
	for _, reason := range []game.StopReason{game.StopBoundary, game.StopSelf, game.StopNone} {
		fmt.Printf("  %-15s %d\n", reason.String()+":", sum.Reasons[reason])
	}
	if *top > len(outcomes) {
		*top = len(outcomes)
	}
	if *top > 0 {
		fmt.Println("\nBest games:")
		for _, o := range outcomes[:*top] {
			fmt.Printf("  seed %d: length %d after %d ticks (%s)\n", o.Seed, o.Length, o.Ticks, o.Reason)
		}
	}
}
