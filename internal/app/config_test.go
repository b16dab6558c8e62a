package app

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"
	"time"

	"gridsnake/internal/core"
	"gridsnake/internal/game"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-window", "400", "-grid", "10", "-tick", "50ms", "-seed", "9", "-bounds", "far-edge"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	gc, err := cfg.GameConfig()
	if err != nil {
		t.Fatalf("GameConfig: %v", err)
	}
	if gc.Geometry != (core.Geometry{WindowSize: 400, GridSize: 10}) {
		t.Fatalf("unexpected geometry %+v", gc.Geometry)
	}
	if gc.Tick != 50*time.Millisecond || gc.Seed != 9 || gc.Bounds != game.BoundsFarEdge {
		t.Fatalf("unexpected game config %+v", gc)
	}
}

func TestDefaultsMatchGameDefaults(t *testing.T) {
	gc, err := NewConfig().GameConfig()
	if err != nil {
		t.Fatalf("GameConfig: %v", err)
	}
	def := game.DefaultConfig()
	if gc.Geometry != def.Geometry || gc.Tick != def.Tick || gc.Bounds != def.Bounds {
		t.Fatalf("flag defaults %+v differ from game defaults %+v", gc, def)
	}
}

func TestGameConfigRejectsZeroTick(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-tick", "0"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := cfg.GameConfig(); err == nil {
		t.Fatal("expected a zero tick to be rejected")
	}
}

func TestGameConfigRejectsBadGeometry(t *testing.T) {
	cfg := NewConfig()
	cfg.Window = 810
	if _, err := cfg.GameConfig(); !errors.Is(err, core.ErrGeometry) {
		t.Fatalf("expected ErrGeometry, got %v", err)
	}
}

func TestLoggerLevel(t *testing.T) {
	cfg := NewConfig()
	cfg.LogLevel = "warn"
	var buf bytes.Buffer
	logger, err := cfg.Logger(&buf)
	if err != nil {
		t.Fatalf("Logger: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown", "reason", "test")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("unexpected log output %q", out)
	}

	cfg.LogLevel = "loud"
	if _, err := cfg.Logger(&buf); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
