//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"golife/internal/core"
)

// GridPainter updates a single RGBA image from frame data and draws it
// scaled onto the destination.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a board of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the frame into the painter image and draws it. Frames
// with mismatched dimensions are dropped.
func (gp *GridPainter) Blit(dst *ebiten.Image, f core.Frame, on, off color.RGBA, scale int) {
	if f.Size.W != gp.w || f.Size.H != gp.h {
		return
	}
	fillFrameRGBA(gp.buf, f, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
