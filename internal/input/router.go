// Package input maps keystrokes onto simulation control actions.
package input

import "golife/internal/core"

// Route translates one key event into a control action. It is pure and
// total: unrecognized input maps to ActionNone so the loop can ignore
// it without special cases.
func Route(ev core.KeyEvent) core.Action {
	switch ev.Key {
	case core.KeyEscape:
		return core.ActionQuit
	case core.KeyUp, core.KeyRight:
		return core.ActionSpeedUp
	case core.KeyDown, core.KeyLeft:
		return core.ActionSpeedDown
	case core.KeyRune:
		switch ev.Rune {
		case 'q', 'Q':
			return core.ActionQuit
		case ' ':
			return core.ActionTogglePause
		case 'n', 'N':
			return core.ActionStepOnce
		case 'r', 'R':
			return core.ActionRestart
		case 's', 'S':
			return core.ActionReseed
		}
	}
	return core.ActionNone
}
