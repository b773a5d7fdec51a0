// Package loader turns Befunge-93 program text into a populated funge.Grid.
//
// Layout rules: each non-newline byte fills successive columns of the
// current row; a newline resets the column and moves to the next row; rows
// shorter than the grid width stay blank-padded. Text beyond the grid
// capacity, past column 80 of a row or past row 25, is silently ignored.
// UTF-8 continuation bytes are skipped without consuming a column, so a
// multi-byte rune occupies a single cell (holding its lead byte) instead of
// shifting the rest of the row.
package loader

import (
	"fmt"
	"os"

	"github.com/fungelab/b93/funge"
)

// Parse builds a grid from program text held in memory.
func Parse(src []byte) *funge.Grid {
	grid := funge.NewGrid()
	x, y := 0, 0
	for i := 0; i < len(src); i++ {
		b := src[i]

		// UTF-8 continuation byte: not a code point of its own.
		if b&0xC0 == 0x80 {
			continue
		}

		switch b {
		case '\n':
			x = 0
			y++
		case '\r':
			// CRLF sources load like LF sources.
		default:
			if x < funge.Cols && y < funge.Rows {
				grid.Set(x, y, b)
			}
			x++
		}
	}
	return grid
}

// Load reads a program file and builds its grid. A missing or unreadable
// file is the caller's fatal error.
func Load(path string) (*funge.Grid, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read program %s: %w", path, err)
	}
	return Parse(src), nil
}
