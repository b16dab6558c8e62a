package game

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	"gridsnake/internal/core"
)

// Bounds selects how the boundary test treats the edges of the play area.
type Bounds string

const (
	// BoundsClosed stops on the far edge and on any cell that left the play
	// area through the top or left side.
	BoundsClosed Bounds = "closed"
	// BoundsFarEdge only stops on the last row or column. Moving off the top
	// or left edge is never detected.
	BoundsFarEdge Bounds = "far-edge"
)

// Config controls the dimensions, pacing and seeding of a game.
type Config struct {
	Geometry core.Geometry
	Tick     time.Duration
	Seed     int64
	Bounds   Bounds

	Origin core.Cell
	Start  Direction
}

// DefaultConfig returns the standard configuration: 800px play area, 20px
// cells, 100ms ticks, snake at the origin heading right.
func DefaultConfig() Config {
	return Config{
		Geometry: core.DefaultGeometry(),
		Tick:     100 * time.Millisecond,
		Bounds:   BoundsClosed,
		Start:    Right,
	}
}

// Validate reports configuration errors that would break the simulation.
func (c Config) Validate() error {
	if err := c.Geometry.Validate(); err != nil {
		return err
	}
	if c.Tick <= 0 {
		return fmt.Errorf("tick %s must be positive", c.Tick)
	}
	switch c.Bounds {
	case BoundsClosed, BoundsFarEdge:
	default:
		return fmt.Errorf("unknown bounds mode %q", c.Bounds)
	}
	if c.Geometry.Align(c.Origin.X, c.Origin.Y) != c.Origin || !c.Geometry.Contains(c.Origin) {
		return fmt.Errorf("origin %v is not a cell of the play area", c.Origin)
	}
	return nil
}

// configKeys lists the keys FromMap understands.
var configKeys = []string{"window", "grid", "tick", "seed", "bounds", "origin_x", "origin_y"}

// UnknownKeys returns the keys of cfg that FromMap ignores, sorted.
func UnknownKeys(cfg map[string]string) []string {
	var unknown []string
	for k := range cfg {
		if !slices.Contains(configKeys, k) {
			unknown = append(unknown, k)
		}
	}
	slices.Sort(unknown)
	return unknown
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values and unknown keys keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["window"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Geometry.WindowSize = parsed
		}
	}
	if v, ok := cfg["grid"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Geometry.GridSize = parsed
		}
	}
	if v, ok := cfg["tick"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			c.Tick = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["bounds"]; ok {
		c.Bounds = Bounds(v)
	}
	if v, ok := cfg["origin_x"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Origin.X = parsed
		}
	}
	if v, ok := cfg["origin_y"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Origin.Y = parsed
		}
	}
	return c
}
