// Package life implements Conway's Game of Life on a bounded grid.
package life

import (
	"github.com/pkg/errors"

	"golife/internal/core"
)

// Board holds one Game of Life generation. The grid is bounded:
// neighbor counts clamp at the edges and cells outside the board are
// permanently dead. There is no wraparound.
type Board struct {
	w, h int
	cur  []bool
	nxt  []bool
}

// New returns an all-dead board with the provided dimensions.
func New(w, h int) (*Board, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "%dx%d board", w, h)
	}
	cells := make([]bool, w*h)
	return &Board{w: w, h: h, cur: cells, nxt: make([]bool, len(cells))}, nil
}

// FromCells returns a board populated from row-major cell values.
func FromCells(w, h int, cells []bool) (*Board, error) {
	b, err := New(w, h)
	if err != nil {
		return nil, err
	}
	if len(cells) != w*h {
		return nil, errors.Wrapf(ErrMalformedPattern, "%d cells for a %dx%d board", len(cells), w, h)
	}
	copy(b.cur, cells)
	return b, nil
}

// Random returns a board whose cells are independently alive with
// probability p, drawn from rng.
func Random(w, h int, p float64, rng *core.RNG) (*Board, error) {
	if p < 0 || p > 1 {
		return nil, errors.Wrapf(ErrInvalidProbability, "got %v", p)
	}
	b, err := New(w, h)
	if err != nil {
		return nil, err
	}
	for i := range b.cur {
		b.cur[i] = rng.Chance(p)
	}
	return b, nil
}

// Step advances the board by one generation. The next generation is
// computed entirely from the current buffer before the buffers swap,
// so every cell sees the same pre-step neighborhood.
func (b *Board) Step() {
	w, h := b.w, b.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := b.liveNeighbors(x, y)
			idx := y*w + x
			alive := b.cur[idx]
			b.nxt[idx] = (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3)
		}
	}
	b.cur, b.nxt = b.nxt, b.cur
}

func (b *Board) liveNeighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= b.w || ny < 0 || ny >= b.h {
				continue
			}
			if b.cur[ny*b.w+nx] {
				n++
			}
		}
	}
	return n
}

// Alive reports whether the cell at (x, y) is live. Coordinates outside
// the board are a programming error and panic.
func (b *Board) Alive(x, y int) bool {
	b.mustContain(x, y)
	return b.cur[y*b.w+x]
}

// Set overwrites the cell at (x, y).
func (b *Board) Set(x, y int, alive bool) {
	b.mustContain(x, y)
	b.cur[y*b.w+x] = alive
}

func (b *Board) mustContain(x, y int) {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		panic(errors.Wrapf(ErrOutOfBounds, "cell (%d,%d) on a %dx%d board", x, y, b.w, b.h))
	}
}

// Size returns the board dimensions.
func (b *Board) Size() core.Size { return core.Size{W: b.w, H: b.h} }

// Cells exposes the current generation's backing slice in row-major order.
func (b *Board) Cells() []bool { return b.cur }

// Population counts the live cells.
func (b *Board) Population() int {
	n := 0
	for _, alive := range b.cur {
		if alive {
			n++
		}
	}
	return n
}

// AliveCells enumerates the coordinates of all live cells, row by row.
func (b *Board) AliveCells() []core.Cell {
	var cells []core.Cell
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			if b.cur[y*b.w+x] {
				cells = append(cells, core.Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// Clone returns an independent copy of the current generation.
func (b *Board) Clone() *Board {
	nb, _ := New(b.w, b.h)
	copy(nb.cur, b.cur)
	return nb
}
