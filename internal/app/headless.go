package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"golife/internal/core"
	"golife/internal/sim"
)

// frameWriter renders frames as plain text, one block per generation.
type frameWriter struct {
	w io.Writer
}

// Render writes a status line followed by the board, two characters per
// cell like the terminal renderer.
func (fw *frameWriter) Render(f core.Frame) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "generation %d | alive %d\n", f.Generation, f.Population())

	grid := make([]bool, f.Size.W*f.Size.H)
	for _, c := range f.Alive {
		grid[c.Y*f.Size.W+c.X] = true
	}
	for y := 0; y < f.Size.H; y++ {
		for x := 0; x < f.Size.W; x++ {
			if grid[y*f.Size.W+x] {
				sb.WriteString("██")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(fw.w, sb.String())
	return errors.Wrap(err, "write frame")
}

// runHeadless steps the loop a fixed number of generations at full
// speed, printing the starting board and every generation after it.
func runHeadless(loop *sim.Loop, w io.Writer, generations int) error {
	fw := &frameWriter{w: w}
	if err := fw.Render(loop.Frame()); err != nil {
		return err
	}
	for i := 0; i < generations; i++ {
		loop.Apply(core.ActionStepOnce)
		loop.Advance()
		if err := fw.Render(loop.Frame()); err != nil {
			return err
		}
	}
	return nil
}
