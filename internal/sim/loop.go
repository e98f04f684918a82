// Package sim owns the simulation state machine and its run loop.
package sim

import (
	"time"

	"golife/internal/core"
	"golife/internal/input"
	"golife/internal/life"
)

// Renderer draws one frame of board state. The loop calls it exactly
// once per iteration whether or not a step occurred.
type Renderer interface {
	Render(core.Frame) error
}

// Loop owns the board, the pacer, the generation counter and the run
// state. Everything mutates on a single goroutine; front-ends feed it
// translated key events and read back plain frames.
type Loop struct {
	board   *life.Board
	initial *life.Board
	reseed  func() *life.Board

	pacer      *core.Pacer
	state      core.RunState
	generation int
	stepQueued bool
}

// NewLoop wires a loop around a starting board. reseed supplies a fresh
// random board for ActionReseed; a nil reseed falls back to restarting
// from the initial cells (pattern-loaded boards have no probability to
// reseed with).
func NewLoop(board *life.Board, pacer *core.Pacer, reseed func() *life.Board) *Loop {
	return &Loop{
		board:   board,
		initial: board.Clone(),
		reseed:  reseed,
		pacer:   pacer,
		state:   core.Running,
	}
}

// State reports the current run state.
func (l *Loop) State() core.RunState { return l.state }

// Generation reports how many steps completed since start or the last
// restart.
func (l *Loop) Generation() int { return l.generation }

// Board exposes the live board.
func (l *Loop) Board() *life.Board { return l.board }

// Done reports whether the loop has quit.
func (l *Loop) Done() bool { return l.state == core.Quit }

// HandleKey routes one key event and applies the resulting action.
func (l *Loop) HandleKey(ev core.KeyEvent) {
	l.Apply(input.Route(ev))
}

// Apply executes one control action. Quit is terminal: every action
// arriving after it is ignored.
func (l *Loop) Apply(a core.Action) {
	if l.state == core.Quit {
		return
	}
	switch a {
	case core.ActionQuit:
		l.state = core.Quit
	case core.ActionTogglePause:
		if l.state == core.Running {
			l.state = core.Paused
		} else {
			l.state = core.Running
		}
	case core.ActionSpeedUp:
		l.pacer.SpeedUp()
	case core.ActionSpeedDown:
		l.pacer.SlowDown()
	case core.ActionStepOnce:
		l.stepQueued = true
	case core.ActionRestart:
		l.restart(l.initial.Clone())
	case core.ActionReseed:
		var b *life.Board
		if l.reseed != nil {
			b = l.reseed()
		}
		if b == nil {
			l.restart(l.initial.Clone())
			return
		}
		l.initial = b.Clone()
		l.restart(b)
	}
}

func (l *Loop) restart(b *life.Board) {
	l.board = b
	l.generation = 0
	l.stepQueued = false
}

// Advance performs the timed part of one iteration: the board steps
// when the pacer comes due while Running, or when a single step is
// queued, which fires exactly once regardless of pause state or pacing.
// It reports whether a step happened.
func (l *Loop) Advance() bool {
	if l.state == core.Quit {
		return false
	}
	step := l.stepQueued
	l.stepQueued = false
	if !step && l.state == core.Running && l.pacer.Due() {
		step = true
	}
	if !step {
		return false
	}
	l.board.Step()
	l.generation++
	return true
}

// Frame snapshots the current state for rendering.
func (l *Loop) Frame() core.Frame {
	return core.Frame{
		Size:       l.board.Size(),
		Alive:      l.board.AliveCells(),
		Generation: l.generation,
		Speed:      l.pacer.Level(),
		State:      l.state,
	}
}

// Run drives iterations until quit. Each iteration blocks on exactly
// one wait: the next key event or the next tick, whichever comes first,
// so input stays responsive at any speed without busy-waiting. A closed
// events channel quits the loop.
func (l *Loop) Run(events <-chan core.KeyEvent, r Renderer) error {
	if err := r.Render(l.Frame()); err != nil {
		return err
	}
	timer := time.NewTimer(l.wait())
	defer timer.Stop()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				l.Apply(core.ActionQuit)
			} else {
				l.HandleKey(ev)
			}
		case <-timer.C:
		}
		l.Advance()
		if err := r.Render(l.Frame()); err != nil {
			return err
		}
		if l.Done() {
			return nil
		}
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(l.wait())
	}
}

// wait bounds the blocking select. While paused only input matters, so
// the full interval serves as a heartbeat; while running, whatever
// remains of the current interval.
func (l *Loop) wait() time.Duration {
	if l.state != core.Running {
		return l.pacer.Interval()
	}
	return l.pacer.Remaining()
}
