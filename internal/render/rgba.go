// Package render rasterizes board frames for the windowed front-end.
package render

import (
	"image/color"

	"golife/internal/core"
)

// fillFrameRGBA rasterizes a frame into RGBA pixels, one pixel per
// board cell in row-major order. The buffer must hold 4*W*H bytes.
func fillFrameRGBA(buf []byte, f core.Frame, on, off color.RGBA) {
	n := f.Size.W * f.Size.H
	for i := 0; i < n; i++ {
		base := i * 4
		buf[base+0] = off.R
		buf[base+1] = off.G
		buf[base+2] = off.B
		buf[base+3] = off.A
	}
	for _, c := range f.Alive {
		base := (c.Y*f.Size.W + c.X) * 4
		buf[base+0] = on.R
		buf[base+1] = on.G
		buf[base+2] = on.B
		buf[base+3] = on.A
	}
}
