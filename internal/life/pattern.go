package life

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Cell runes for the .life text format.
const (
	aliveRune = 'X'
	deadRune  = 'O'
)

// Pattern is a decoded .life file: row-major cells with uniform rows.
type Pattern struct {
	Width  int
	Height int
	Cells  []bool
}

// ParsePattern decodes .life text: one line per row, X for a live cell,
// O for a dead one. Rows must all have the same length and no other
// rune is allowed. A trailing newline and CRLF line endings are
// tolerated.
func ParsePattern(data []byte) (*Pattern, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, errors.Wrap(ErrMalformedPattern, "empty pattern")
	}
	lines := strings.Split(text, "\n")
	width := utf8.RuneCountInString(lines[0])
	if width == 0 {
		return nil, errors.Wrap(ErrMalformedPattern, "blank row 1")
	}
	cells := make([]bool, 0, width*len(lines))
	for row, line := range lines {
		n := 0
		for _, r := range line {
			switch r {
			case aliveRune:
				cells = append(cells, true)
			case deadRune:
				cells = append(cells, false)
			default:
				return nil, errors.Wrapf(ErrMalformedPattern, "row %d: unexpected %q", row+1, r)
			}
			n++
		}
		if n != width {
			return nil, errors.Wrapf(ErrMalformedPattern, "row %d has %d cells, expected %d", row+1, n, width)
		}
	}
	return &Pattern{Width: width, Height: len(lines), Cells: cells}, nil
}

// LoadPattern reads and decodes a .life file.
func LoadPattern(path string) (*Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read pattern %s", path)
	}
	p, err := ParsePattern(data)
	if err != nil {
		return nil, errors.Wrapf(err, "pattern %s", path)
	}
	return p, nil
}

// Board builds a board holding the pattern.
func (p *Pattern) Board() (*Board, error) {
	return FromCells(p.Width, p.Height, p.Cells)
}
