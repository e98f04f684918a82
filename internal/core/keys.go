package core

// Key is the portable subset of keyboard input the simulation cares
// about. Front-ends translate their native events into these before
// anything crosses a channel.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// KeyEvent is one translated keystroke. Rune is meaningful only when
// Key is KeyRune.
type KeyEvent struct {
	Key  Key
	Rune rune
}

// Action is a control command produced by routing a KeyEvent.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionTogglePause
	ActionSpeedUp
	ActionSpeedDown
	ActionStepOnce
	ActionRestart
	ActionReseed
)
