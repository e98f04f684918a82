//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"golife/internal/core"
	"golife/internal/render"
	"golife/internal/sim"
)

var (
	cellOn   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	cellOff  = color.RGBA{A: 255}
	hudColor = color.RGBA{R: 255, G: 215, B: 0, A: 255}
)

// window adapts the simulation loop to the ebiten.Game interface. The
// pacer still gates stepping, so the board speed stays independent of
// the display tick rate.
type window struct {
	loop    *sim.Loop
	painter *render.GridPainter
	scale   int
}

// Update drains just-pressed keys into the loop and advances it.
func (w *window) Update() error {
	for _, ev := range pressedKeys() {
		w.loop.HandleKey(ev)
	}
	w.loop.Advance()
	if w.loop.Done() {
		return ebiten.Termination
	}
	return nil
}

// Draw blits the board and overlays the status line.
func (w *window) Draw(screen *ebiten.Image) {
	f := w.loop.Frame()
	w.painter.Blit(screen, f, cellOn, cellOff, w.scale)
	status := fmt.Sprintf("gen %d  alive %d  %s  %s", f.Generation, f.Population(), f.Speed, f.State)
	text.Draw(screen, status, basicfont.Face7x13, 4, 13, hudColor)
}

// Layout returns the logical screen size.
func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := w.loop.Board().Size()
	return s.W * w.scale, s.H * w.scale
}

var keyBindings = []struct {
	key ebiten.Key
	ev  core.KeyEvent
}{
	{ebiten.KeyQ, core.KeyEvent{Key: core.KeyRune, Rune: 'q'}},
	{ebiten.KeyEscape, core.KeyEvent{Key: core.KeyEscape}},
	{ebiten.KeySpace, core.KeyEvent{Key: core.KeyRune, Rune: ' '}},
	{ebiten.KeyN, core.KeyEvent{Key: core.KeyRune, Rune: 'n'}},
	{ebiten.KeyR, core.KeyEvent{Key: core.KeyRune, Rune: 'r'}},
	{ebiten.KeyS, core.KeyEvent{Key: core.KeyRune, Rune: 's'}},
	{ebiten.KeyUp, core.KeyEvent{Key: core.KeyUp}},
	{ebiten.KeyDown, core.KeyEvent{Key: core.KeyDown}},
	{ebiten.KeyLeft, core.KeyEvent{Key: core.KeyLeft}},
	{ebiten.KeyRight, core.KeyEvent{Key: core.KeyRight}},
}

func pressedKeys() []core.KeyEvent {
	var evs []core.KeyEvent
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			evs = append(evs, b.ev)
		}
	}
	return evs
}

// runWindow opens the windowed front-end and blocks until it closes.
func runWindow(cfg *Config, loop *sim.Loop) error {
	size := loop.Board().Size()
	ebiten.SetWindowTitle("golife")
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)
	w := &window{
		loop:    loop,
		painter: render.NewGridPainter(size.W, size.H),
		scale:   cfg.Scale,
	}
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
