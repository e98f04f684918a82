package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"golife/internal/core"
)

const (
	cellWidth  = 2
	aliveBlock = '█'
	helpLine   = "[space] pause  [n] step  [r] restart  [s] reseed  [arrows] speed  [q] quit"
)

// Render draws one frame: a status line, the bordered board at two
// columns per cell, and a key help footer. When the terminal cannot fit
// the board it draws a notice instead.
func (u *UI) Render(f core.Frame) error {
	u.screen.Clear()

	needW, needH := f.Size.W*cellWidth+2, f.Size.H+4
	sw, sh := u.screen.Size()
	if sw < needW || sh < needH {
		drawText(u.screen, 0, 0, styleStatus, fmt.Sprintf("terminal too small: need %dx%d, have %dx%d", needW, needH, sw, sh))
		drawText(u.screen, 0, 1, styleHelp, "[q] quit")
		u.screen.Show()
		return nil
	}

	style := styleStatus
	if f.State == core.Paused {
		style = stylePaused
	}
	drawText(u.screen, 1, 0, style, statusLine(f))

	drawBorder(u.screen, 0, 1, f.Size.W*cellWidth+1, f.Size.H+2)
	for _, c := range f.Alive {
		x := 1 + c.X*cellWidth
		y := 2 + c.Y
		u.screen.SetContent(x, y, aliveBlock, nil, styleCell)
		u.screen.SetContent(x+1, y, aliveBlock, nil, styleCell)
	}

	drawText(u.screen, 1, f.Size.H+3, styleHelp, helpLine)
	u.screen.Show()
	return nil
}

func statusLine(f core.Frame) string {
	return fmt.Sprintf("generation %d | alive %d | speed %s | %s", f.Generation, f.Population(), f.Speed, f.State)
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	col := x
	for _, r := range text {
		s.SetContent(col, y, r, nil, style)
		col++
	}
}

func drawBorder(s tcell.Screen, x0, y0, x1, y1 int) {
	for x := x0 + 1; x < x1; x++ {
		s.SetContent(x, y0, tcell.RuneHLine, nil, styleBorder)
		s.SetContent(x, y1, tcell.RuneHLine, nil, styleBorder)
	}
	for y := y0 + 1; y < y1; y++ {
		s.SetContent(x0, y, tcell.RuneVLine, nil, styleBorder)
		s.SetContent(x1, y, tcell.RuneVLine, nil, styleBorder)
	}
	s.SetContent(x0, y0, tcell.RuneULCorner, nil, styleBorder)
	s.SetContent(x1, y0, tcell.RuneURCorner, nil, styleBorder)
	s.SetContent(x0, y1, tcell.RuneLLCorner, nil, styleBorder)
	s.SetContent(x1, y1, tcell.RuneLRCorner, nil, styleBorder)
}
