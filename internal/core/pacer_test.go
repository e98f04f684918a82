package core

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestPacer(level SpeedLevel) (*Pacer, *fakeClock) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	p := NewPacer(level)
	p.now = clk.now
	p.mark = clk.now()
	return p, clk
}

func TestPacerDueOncePerInterval(t *testing.T) {
	p, clk := newTestPacer(SpeedNormal)

	if p.Due() {
		t.Fatalf("pacer due immediately after construction")
	}
	clk.advance(100 * time.Millisecond)
	if !p.Due() {
		t.Fatalf("pacer not due after one full interval")
	}
	if p.Due() {
		t.Fatalf("pacer due twice without time passing")
	}
	clk.advance(99 * time.Millisecond)
	if p.Due() {
		t.Fatalf("pacer due before the interval elapsed")
	}
	clk.advance(1 * time.Millisecond)
	if !p.Due() {
		t.Fatalf("pacer not due at the interval boundary")
	}
}

func TestPacerDiscardsBacklog(t *testing.T) {
	p, clk := newTestPacer(SpeedNormal)

	// A long stall must buy exactly one step, not a burst.
	clk.advance(1 * time.Second)
	if !p.Due() {
		t.Fatalf("pacer not due after a stall")
	}
	if p.Due() {
		t.Fatalf("pacer fired twice for a single stall")
	}
	clk.advance(99 * time.Millisecond)
	if p.Due() {
		t.Fatalf("backlog leaked into the next interval")
	}
	clk.advance(1 * time.Millisecond)
	if !p.Due() {
		t.Fatalf("pacer not due one interval after the stall fired")
	}
}

func TestPacerSpeedChangeResetsMark(t *testing.T) {
	p, clk := newTestPacer(SpeedNormal)

	clk.advance(90 * time.Millisecond)
	p.SpeedUp()
	if got := p.Level(); got != SpeedFast {
		t.Fatalf("level after SpeedUp = %v, expected %v", got, SpeedFast)
	}
	clk.advance(49 * time.Millisecond)
	if p.Due() {
		t.Fatalf("old interval progress survived the speed change")
	}
	clk.advance(1 * time.Millisecond)
	if !p.Due() {
		t.Fatalf("pacer not due one new interval after the speed change")
	}
}

func TestPacerClampedChangeIsNoOp(t *testing.T) {
	p, clk := newTestPacer(SpeedFastest)

	clk.advance(20 * time.Millisecond)
	p.SpeedUp()
	if got := p.Level(); got != SpeedFastest {
		t.Fatalf("level moved past the top: %v", got)
	}
	clk.advance(5 * time.Millisecond)
	if !p.Due() {
		t.Fatalf("clamped SpeedUp reset the mark")
	}

	p2, clk2 := newTestPacer(SpeedSlowest)
	clk2.advance(350 * time.Millisecond)
	p2.SlowDown()
	if got := p2.Level(); got != SpeedSlowest {
		t.Fatalf("level moved past the bottom: %v", got)
	}
	clk2.advance(50 * time.Millisecond)
	if !p2.Due() {
		t.Fatalf("clamped SlowDown reset the mark")
	}
}

func TestPacerRemaining(t *testing.T) {
	p, clk := newTestPacer(SpeedNormal)

	if got := p.Remaining(); got != 100*time.Millisecond {
		t.Fatalf("fresh pacer remaining = %v, expected 100ms", got)
	}
	clk.advance(30 * time.Millisecond)
	if got := p.Remaining(); got != 70*time.Millisecond {
		t.Fatalf("remaining = %v, expected 70ms", got)
	}
	clk.advance(200 * time.Millisecond)
	if got := p.Remaining(); got != 0 {
		t.Fatalf("overdue remaining = %v, expected 0", got)
	}
}

func TestSpeedLevelLadder(t *testing.T) {
	lvl := SpeedSlowest
	order := []SpeedLevel{SpeedSlow, SpeedNormal, SpeedFast, SpeedFastest, SpeedFastest}
	for i, want := range order {
		lvl = lvl.Faster()
		if lvl != want {
			t.Fatalf("Faster step %d = %v, expected %v", i, lvl, want)
		}
	}
	order = []SpeedLevel{SpeedFast, SpeedNormal, SpeedSlow, SpeedSlowest, SpeedSlowest}
	for i, want := range order {
		lvl = lvl.Slower()
		if lvl != want {
			t.Fatalf("Slower step %d = %v, expected %v", i, lvl, want)
		}
	}

	for l := SpeedSlowest; l < SpeedFastest; l++ {
		if l.Interval() <= l.Faster().Interval() {
			t.Fatalf("interval not strictly decreasing from %v to %v", l, l.Faster())
		}
	}
}

func TestParseSpeedLevel(t *testing.T) {
	cases := map[string]SpeedLevel{
		"slowest": SpeedSlowest,
		"slow":    SpeedSlow,
		"normal":  SpeedNormal,
		"fast":    SpeedFast,
		"fastest": SpeedFastest,
	}
	for name, want := range cases {
		got, err := ParseSpeedLevel(name)
		if err != nil {
			t.Fatalf("ParseSpeedLevel(%q): %v", name, err)
		}
		if got != want {
			t.Fatalf("ParseSpeedLevel(%q) = %v, expected %v", name, got, want)
		}
		if got.String() != name {
			t.Fatalf("String() = %q, expected %q", got.String(), name)
		}
	}
	if _, err := ParseSpeedLevel("ludicrous"); err == nil {
		t.Fatalf("expected an error for an unknown speed name")
	}
}
