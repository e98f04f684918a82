// Package app wires configuration, board construction and the
// front-ends together.
package app

import (
	"os"
	"time"

	"golife/internal/core"
	"golife/internal/life"
	"golife/internal/sim"
	"golife/internal/term"
)

// Run builds the simulation from flags and drives the configured
// front-end until the user quits or a front-end fails.
func Run(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	loop, err := buildLoop(cfg)
	if err != nil {
		return err
	}
	switch {
	case cfg.Headless:
		return runHeadless(loop, os.Stdout, cfg.Generations)
	case cfg.Window:
		return runWindow(cfg, loop)
	default:
		return runTerminal(loop)
	}
}

func buildLoop(cfg *Config) (*sim.Loop, error) {
	pacer := core.NewPacer(cfg.SpeedLevel())

	if cfg.FromFile != "" {
		pat, err := life.LoadPattern(cfg.FromFile)
		if err != nil {
			return nil, err
		}
		board, err := pat.Board()
		if err != nil {
			return nil, err
		}
		return sim.NewLoop(board, pacer, nil), nil
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	board, err := life.Random(cfg.Width, cfg.Height, cfg.AliveProbability, core.NewRNG(seed))
	if err != nil {
		return nil, err
	}
	reseed := func() *life.Board {
		// Flags were validated above, so Random cannot fail here.
		b, _ := life.Random(cfg.Width, cfg.Height, cfg.AliveProbability, core.NewRNG(time.Now().UnixNano()))
		return b
	}
	return sim.NewLoop(board, pacer, reseed), nil
}

func runTerminal(loop *sim.Loop) error {
	ui, err := term.Open()
	if err != nil {
		return err
	}
	runErr := loop.Run(ui.Events(), ui)
	if cerr := ui.Close(); runErr == nil {
		runErr = cerr
	}
	return runErr
}
