package funge

import "math/rand"

// Position is a cursor location on the grid, x across, y down.
type Position struct {
	X, Y int
}

// Direction is a unit vector of cursor travel.
type Direction struct {
	DX, DY int
}

// The four cardinal directions. Befunge's grid grows downward, so North
// has a negative DY.
var (
	East  = Direction{1, 0}
	West  = Direction{-1, 0}
	North = Direction{0, -1}
	South = Direction{0, 1}
)

// String returns the conventional arrow for the direction.
func (d Direction) String() string {
	switch d {
	case East:
		return ">"
	case West:
		return "<"
	case North:
		return "^"
	case South:
		return "v"
	}
	return "?"
}

// cardinals indexes the directions for '?'. Order is stable so a seeded
// DirectionSource produces reproducible paths.
var cardinals = [4]Direction{East, West, North, South}

// DirectionSource supplies the random direction for the '?' instruction.
// The production source draws from entropy-seeded PRNG state; tests install
// a deterministic one.
type DirectionSource interface {
	// Pick returns an index into the four cardinal directions, in [0, 4).
	Pick() int
}

// randSource is the default DirectionSource, backed by math/rand's
// globally seeded generator.
type randSource struct{}

func (randSource) Pick() int {
	return rand.Intn(4)
}
