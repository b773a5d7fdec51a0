package funge

// Grid dimensions are fixed by the language: a Befunge-93 program occupies
// at most 25 rows of 80 columns.
const (
	Rows = 25
	Cols = 80
)

// Blank is the value of every cell the loader did not fill and the value
// read from padding. Space dispatches as a no-op.
const Blank byte = ' '

// Grid is the toroidal program buffer. Cursor movement and instruction
// fetches wrap around both edges; the data instructions 'g' and 'p' instead
// bounds-check against the nominal Rows x Cols area (see Get and Put).
//
// The grid is both program and writable data: 'p' mutates it mid-run.
type Grid struct {
	cells [Rows][Cols]byte
}

// NewGrid returns a grid with every cell blank.
func NewGrid() *Grid {
	g := &Grid{}
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = Blank
		}
	}
	return g
}

// wrap reduces v into [0, n). Go's % keeps the sign of the dividend, so a
// second addition is needed for negative inputs.
func wrap(v, n int) int {
	return (v%n + n) % n
}

// At returns the cell under the wrapped coordinates. Any x and y are valid.
func (g *Grid) At(x, y int) byte {
	return g.cells[wrap(y, Rows)][wrap(x, Cols)]
}

// Set stores a cell at the wrapped coordinates. This is the loader's entry
// point; program-driven writes go through Put.
func (g *Grid) Set(x, y int, c byte) {
	g.cells[wrap(y, Rows)][wrap(x, Cols)] = c
}

// Get implements the 'g' instruction's read: coordinates are checked against
// the nominal program area without wrapping, and an out-of-range read yields
// zero rather than an aliased cell.
func (g *Grid) Get(x, y int) int32 {
	if x < 0 || x >= Cols || y < 0 || y >= Rows {
		return 0
	}
	return int32(g.cells[y][x])
}

// Put implements the 'p' instruction's write: in-range coordinates store the
// low byte of v, out-of-range writes are silently discarded. The asymmetry
// with the wrapping cursor is part of the language, not a bug.
func (g *Grid) Put(x, y int, v int32) {
	if x < 0 || x >= Cols || y < 0 || y >= Rows {
		return
	}
	g.cells[y][x] = byte(v)
}

// Advance moves pos one step along dir, wrapping each axis independently.
func (g *Grid) Advance(pos Position, dir Direction) Position {
	return Position{
		X: wrap(pos.X+dir.DX, Cols),
		Y: wrap(pos.Y+dir.DY, Rows),
	}
}
