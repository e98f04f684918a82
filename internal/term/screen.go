// Package term is the tcell front-end: terminal lifecycle, the event
// pump, and the board renderer.
package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"golife/internal/core"
)

var (
	styleDefault = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	styleCell    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	styleBorder  = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack)
	stylePaused  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	styleHelp    = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
)

// UI owns the terminal screen and the goroutine pumping its events into
// a channel of translated keystrokes.
type UI struct {
	screen tcell.Screen
	events chan core.KeyEvent
	done   chan struct{}
	pump   errgroup.Group
}

// Open initializes the terminal and starts the event pump.
func Open() (*UI, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create terminal screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "initialize terminal screen")
	}
	u := newUI(screen)
	u.pump.Go(u.forwardEvents)
	return u, nil
}

func newUI(screen tcell.Screen) *UI {
	screen.SetStyle(styleDefault)
	screen.HideCursor()
	screen.Clear()
	return &UI{
		screen: screen,
		events: make(chan core.KeyEvent, 8),
		done:   make(chan struct{}),
	}
}

// Events is the stream of translated keystrokes. It closes when the
// pump exits.
func (u *UI) Events() <-chan core.KeyEvent { return u.events }

// Close tears the terminal down and joins the pump, reporting any
// asynchronous terminal failure the pump captured. Close once.
func (u *UI) Close() error {
	close(u.done)
	u.screen.Fini()
	return u.pump.Wait()
}

// forwardEvents translates terminal events until the screen is
// finalized or the loop signals done. Keys nobody reads anymore are
// dropped on done so the pump cannot wedge on a full channel.
func (u *UI) forwardEvents() error {
	defer close(u.events)
	for {
		ev := u.screen.PollEvent()
		switch tev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventError:
			return errors.Wrap(tev, "terminal event stream")
		case *tcell.EventResize:
			u.screen.Sync()
		case *tcell.EventKey:
			key, ok := translateKey(tev)
			if !ok {
				continue
			}
			select {
			case u.events <- key:
			case <-u.done:
				return nil
			}
		}
	}
}

func translateKey(ev *tcell.EventKey) (core.KeyEvent, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.KeyEvent{Key: core.KeyUp}, true
	case tcell.KeyDown:
		return core.KeyEvent{Key: core.KeyDown}, true
	case tcell.KeyLeft:
		return core.KeyEvent{Key: core.KeyLeft}, true
	case tcell.KeyRight:
		return core.KeyEvent{Key: core.KeyRight}, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.KeyEvent{Key: core.KeyEscape}, true
	case tcell.KeyRune:
		return core.KeyEvent{Key: core.KeyRune, Rune: ev.Rune()}, true
	}
	return core.KeyEvent{}, false
}
