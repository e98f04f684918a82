package app

import (
	"errors"
	"flag"
	"testing"

	"golife/internal/core"
	"golife/internal/life"
)

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Width != 20 || cfg.Height != 20 {
		t.Fatalf("default board = %dx%d, expected 20x20", cfg.Width, cfg.Height)
	}
	if cfg.AliveProbability != 0.2 {
		t.Fatalf("default probability = %v, expected 0.2", cfg.AliveProbability)
	}
	if got := cfg.SpeedLevel(); got != core.SpeedNormal {
		t.Fatalf("default speed = %v, expected normal", got)
	}
}

func TestConfigBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	args := []string{
		"-width", "30",
		"-height", "10",
		"-speed", "fast",
		"-alive-probability", "0.5",
		"-seed", "7",
	}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Width != 30 || cfg.Height != 10 || cfg.AliveProbability != 0.5 || cfg.Seed != 7 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if got := cfg.SpeedLevel(); got != core.SpeedFast {
		t.Fatalf("speed = %v, expected fast", got)
	}
}

func TestConfigValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, life.ErrInvalidDimensions},
		{"negative height", func(c *Config) { c.Height = -2 }, life.ErrInvalidDimensions},
		{"probability above one", func(c *Config) { c.AliveProbability = 1.5 }, life.ErrInvalidProbability},
		{"negative probability", func(c *Config) { c.AliveProbability = -0.1 }, life.ErrInvalidProbability},
	}
	for _, tc := range cases {
		cfg := NewConfig()
		tc.mutate(cfg)
		if err := cfg.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("%s: err = %v, expected %v", tc.name, err, tc.want)
		}
	}

	cfg := NewConfig()
	cfg.Speed = "warp"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected an error for an unknown speed name")
	}

	cfg = NewConfig()
	cfg.Headless = true
	cfg.Generations = 0
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected an error for zero headless generations")
	}

	cfg = NewConfig()
	cfg.Window = true
	cfg.Scale = 0
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected an error for a zero window scale")
	}
}

func TestConfigPatternFileSkipsBoardFlags(t *testing.T) {
	cfg := NewConfig()
	cfg.FromFile = "glider.life"
	cfg.Width = 0
	cfg.AliveProbability = 9
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate with a pattern file: %v", err)
	}
}
