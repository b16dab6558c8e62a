package app

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"gridsnake/internal/core"
	"gridsnake/internal/game"
)

// Config represents the command-line parameters shared by the frontends.
type Config struct {
	Window   int
	Grid     int
	Tick     time.Duration
	Seed     int64
	Bounds   string
	LogLevel string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := game.DefaultConfig()
	return &Config{
		Window:   def.Geometry.WindowSize,
		Grid:     def.Geometry.GridSize,
		Tick:     def.Tick,
		Bounds:   string(def.Bounds),
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Window, "window", c.Window, "play area side in pixels")
	fs.IntVar(&c.Grid, "grid", c.Grid, "cell side in pixels")
	fs.DurationVar(&c.Tick, "tick", c.Tick, "simulation tick period")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "fruit placement seed (0 picks one from the clock)")
	fs.StringVar(&c.Bounds, "bounds", c.Bounds, "boundary mode: closed or far-edge")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
}

// GameConfig converts the flags into a validated game configuration.
func (c *Config) GameConfig() (game.Config, error) {
	gc := game.DefaultConfig()
	gc.Geometry = core.Geometry{WindowSize: c.Window, GridSize: c.Grid}
	gc.Tick = c.Tick
	gc.Seed = c.Seed
	gc.Bounds = game.Bounds(c.Bounds)
	if err := gc.Validate(); err != nil {
		return game.Config{}, fmt.Errorf("invalid flags: %w", err)
	}
	return gc, nil
}

// Logger builds a logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "gridsnake",
	})
	return logger, nil
}
