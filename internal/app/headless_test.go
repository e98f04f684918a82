package app

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"golife/internal/core"
	"golife/internal/life"
	"golife/internal/sim"
)

func blinkerLoop(t *testing.T) *sim.Loop {
	t.Helper()
	b, err := life.New(5, 5)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b.Set(2, 1, true)
	b.Set(2, 2, true)
	b.Set(2, 3, true)
	return sim.NewLoop(b, core.NewPacer(core.SpeedSlowest), nil)
}

func TestRunHeadlessEmitsEveryGeneration(t *testing.T) {
	var buf bytes.Buffer
	if err := runHeadless(blinkerLoop(t), &buf, 2); err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	out := buf.String()

	if got := strings.Count(out, "generation "); got != 3 {
		t.Fatalf("printed %d frames, expected 3 (initial plus two steps):\n%s", got, out)
	}
	if !strings.Contains(out, "generation 0 | alive 3") {
		t.Fatalf("missing the initial frame:\n%s", out)
	}
	if !strings.Contains(out, "generation 2 | alive 3") {
		t.Fatalf("missing the final frame:\n%s", out)
	}
	// A blinker holds three live cells in every phase.
	if got := strings.Count(out, "██"); got != 9 {
		t.Fatalf("printed %d cell blocks, expected 9:\n%s", got, out)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestRunHeadlessSurfacesWriteErrors(t *testing.T) {
	if err := runHeadless(blinkerLoop(t), failWriter{}, 1); err == nil {
		t.Fatalf("expected a write error")
	}
}
