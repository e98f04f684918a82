package app

import (
	"flag"

	"github.com/pkg/errors"

	"golife/internal/core"
	"golife/internal/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width            int
	Height           int
	AliveProbability float64
	FromFile         string
	Speed            string
	Seed             int64
	Headless         bool
	Generations      int
	Window           bool
	Scale            int

	speed core.SpeedLevel
}

// NewConfig returns a Config populated with the defaults.
func NewConfig() *Config {
	return &Config{
		Width:            20,
		Height:           20,
		AliveProbability: 0.2,
		Speed:            "normal",
		Generations:      100,
		Scale:            8,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "board height in cells")
	fs.Float64Var(&c.AliveProbability, "alive-probability", c.AliveProbability, "probability that a cell starts alive")
	fs.StringVar(&c.FromFile, "from-file", c.FromFile, "load the starting board from a .life file")
	fs.StringVar(&c.Speed, "speed", c.Speed, "initial speed (slowest, slow, normal, fast, fastest)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed, 0 derives one from the clock")
	fs.BoolVar(&c.Headless, "headless", c.Headless, "run without a terminal UI, printing frames to stdout")
	fs.IntVar(&c.Generations, "generations", c.Generations, "generations to run in headless mode")
	fs.BoolVar(&c.Window, "window", c.Window, "render in a window instead of the terminal")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window pixel scale multiplier")
}

// Validate checks flag values and resolves derived settings. Board
// dimensions and probability are skipped when a pattern file supplies
// the board.
func (c *Config) Validate() error {
	if c.FromFile == "" {
		if c.Width <= 0 || c.Height <= 0 {
			return errors.Wrapf(life.ErrInvalidDimensions, "%dx%d", c.Width, c.Height)
		}
		if c.AliveProbability < 0 || c.AliveProbability > 1 {
			return errors.Wrapf(life.ErrInvalidProbability, "got %v", c.AliveProbability)
		}
	}
	speed, err := core.ParseSpeedLevel(c.Speed)
	if err != nil {
		return err
	}
	c.speed = speed
	if c.Headless && c.Generations <= 0 {
		return errors.Errorf("generations must be positive in headless mode, got %d", c.Generations)
	}
	if c.Window && c.Scale <= 0 {
		return errors.Errorf("scale must be positive, got %d", c.Scale)
	}
	return nil
}

// SpeedLevel reports the parsed speed flag. Valid only after Validate.
func (c *Config) SpeedLevel() core.SpeedLevel { return c.speed }
