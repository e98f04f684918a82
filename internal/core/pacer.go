package core

import (
	"time"

	"github.com/pkg/errors"
)

// SpeedLevel selects the simulation tick interval. Levels form an
// ordered ladder and only ever move one notch at a time, clamped at
// both ends.
type SpeedLevel int

const (
	SpeedSlowest SpeedLevel = iota
	SpeedSlow
	SpeedNormal
	SpeedFast
	SpeedFastest
)

var speedIntervals = [...]time.Duration{
	SpeedSlowest: 400 * time.Millisecond,
	SpeedSlow:    200 * time.Millisecond,
	SpeedNormal:  100 * time.Millisecond,
	SpeedFast:    50 * time.Millisecond,
	SpeedFastest: 25 * time.Millisecond,
}

var speedNames = [...]string{
	SpeedSlowest: "slowest",
	SpeedSlow:    "slow",
	SpeedNormal:  "normal",
	SpeedFast:    "fast",
	SpeedFastest: "fastest",
}

// Interval reports the tick duration for the level.
func (s SpeedLevel) Interval() time.Duration {
	return speedIntervals[s]
}

func (s SpeedLevel) String() string {
	if s < SpeedSlowest || s > SpeedFastest {
		return "unknown"
	}
	return speedNames[s]
}

// Faster returns the next quicker level, clamped at SpeedFastest.
func (s SpeedLevel) Faster() SpeedLevel {
	if s >= SpeedFastest {
		return SpeedFastest
	}
	return s + 1
}

// Slower returns the next slower level, clamped at SpeedSlowest.
func (s SpeedLevel) Slower() SpeedLevel {
	if s <= SpeedSlowest {
		return SpeedSlowest
	}
	return s - 1
}

// ParseSpeedLevel maps a flag value onto a SpeedLevel.
func ParseSpeedLevel(name string) (SpeedLevel, error) {
	for lvl, n := range speedNames {
		if n == name {
			return SpeedLevel(lvl), nil
		}
	}
	return SpeedNormal, errors.Errorf("unknown speed %q", name)
}

// Pacer decides when the next generation is owed. It fires at most once
// per elapsed interval: time spent stalled beyond one interval is
// discarded, so a delayed loop resumes with single steps rather than a
// burst of catch-up steps.
type Pacer struct {
	level SpeedLevel
	mark  time.Time
	now   func() time.Time
}

// NewPacer constructs a Pacer at the given level. The first firing
// comes due one full interval after construction.
func NewPacer(level SpeedLevel) *Pacer {
	p := &Pacer{level: level, now: time.Now}
	p.mark = p.now()
	return p
}

// Level reports the current speed level.
func (p *Pacer) Level() SpeedLevel {
	return p.level
}

// Interval reports the current tick duration.
func (p *Pacer) Interval() time.Duration {
	return p.level.Interval()
}

// Due reports whether a full interval has elapsed since the reference
// mark, advancing the mark when it fires.
func (p *Pacer) Due() bool {
	now := p.now()
	if now.Sub(p.mark) < p.level.Interval() {
		return false
	}
	p.mark = now
	return true
}

// Remaining reports how long until the pacer next comes due, clamped at
// zero. The run loop uses it to bound its blocking wait.
func (p *Pacer) Remaining() time.Duration {
	rem := p.level.Interval() - p.now().Sub(p.mark)
	if rem < 0 {
		return 0
	}
	return rem
}

// SpeedUp moves one level quicker. The mark resets on a real change so
// the new interval takes effect immediately; a clamped call is a no-op.
func (p *Pacer) SpeedUp() {
	p.setLevel(p.level.Faster())
}

// SlowDown moves one level slower, clamped at the bottom.
func (p *Pacer) SlowDown() {
	p.setLevel(p.level.Slower())
}

func (p *Pacer) setLevel(level SpeedLevel) {
	if level == p.level {
		return
	}
	p.level = level
	p.mark = p.now()
}
