package funge

import (
	"errors"

	"github.com/tliron/commonlog"
)

// ErrStepLimit is returned by Run when a step limit was set and reached
// before the program halted.
var ErrStepLimit = errors.New("step limit exceeded")

// Interpreter executes a Befunge-93 program on a populated Grid.
//
// The zero cursor state is the language's initial state: origin, facing
// east, empty stack. One Interpreter runs one program to completion; there
// is no cross-run state.
type Interpreter struct {
	grid  *Grid
	stack *Stack
	pos   Position
	dir   Direction

	console    Console
	dirs       DirectionSource
	extensions bool
	halted     bool

	steps uint64
	log   commonlog.Logger

	// Trace logs every dispatched instruction at debug level. Costs a log
	// call per step, so it is off unless the CLI asks for it.
	Trace bool
}

// New creates an interpreter for the given grid and console. The grid must
// already be populated by the loader; the interpreter never loads program
// text itself.
func New(grid *Grid, console Console) *Interpreter {
	return &Interpreter{
		grid:    grid,
		stack:   NewStack(),
		dir:     East,
		console: console,
		dirs:    randSource{},
		log:     commonlog.GetLogger("funge"),
	}
}

// EnableExtensions turns on the gated instructions: hex literals 'a'-'f'
// and the next-cell fetch '\''. Off by default; when off they are no-ops.
func (i *Interpreter) EnableExtensions(on bool) {
	i.extensions = on
}

// SetDirectionSource replaces the random source behind '?'. Used by tests
// to make random-direction programs reproducible.
func (i *Interpreter) SetDirectionSource(src DirectionSource) {
	i.dirs = src
}

// Halted reports whether the program reached '@'.
func (i *Interpreter) Halted() bool {
	return i.halted
}

// Steps reports how many instructions have been dispatched.
func (i *Interpreter) Steps() uint64 {
	return i.steps
}

// Run executes instructions until the program halts. A limit greater than
// zero bounds the number of dispatched instructions and returns
// ErrStepLimit when exhausted; zero means run until '@'.
//
// Effects are strictly sequential: each instruction's stack, grid and
// cursor effects are committed before the next fetch. The only suspension
// points are the blocking input instructions '&' and '~'.
func (i *Interpreter) Run(limit uint64) error {
	for !i.halted {
		if limit > 0 && i.steps >= limit {
			return ErrStepLimit
		}
		i.step()
	}
	return nil
}

// step dispatches the instruction under the cursor and advances. Direction
// changes take effect on this trailing advance, not immediately.
func (i *Interpreter) step() {
	ins := i.grid.At(i.pos.X, i.pos.Y)
	i.steps++

	if i.Trace {
		i.log.Debugf("step %d: ins=%q pos=(%d,%d) dir=%s depth=%d",
			i.steps, ins, i.pos.X, i.pos.Y, i.dir, i.stack.Len())
	}

	i.execute(ins)
	if !i.halted {
		i.advance()
	}
}

func (i *Interpreter) advance() {
	i.pos = i.grid.Advance(i.pos, i.dir)
}

// execute performs one instruction's effect on stack, grid, cursor and
// console. Unknown characters, including blanks, fall through as no-ops.
func (i *Interpreter) execute(ins byte) {
	switch ins {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		i.stack.Push(int32(ins - '0'))

	case 'a', 'b', 'c', 'd', 'e', 'f':
		if i.extensions {
			i.stack.Push(int32(ins-'a') + 10)
		}

	case '+':
		i.stack.Push(i.stack.Pop() + i.stack.Pop())

	case '*':
		i.stack.Push(i.stack.Pop() * i.stack.Pop())

	case '-':
		a := i.stack.Pop()
		b := i.stack.Pop()
		i.stack.Push(b - a)

	case '/':
		// Division by zero is left to the runtime, per the language's
		// host-arithmetic policy.
		a := i.stack.Pop()
		b := i.stack.Pop()
		i.stack.Push(b / a)

	case '%':
		a := i.stack.Pop()
		b := i.stack.Pop()
		i.stack.Push(b % a)

	case '!':
		if i.stack.Pop() == 0 {
			i.stack.Push(1)
		} else {
			i.stack.Push(0)
		}

	case '`':
		a := i.stack.Pop()
		b := i.stack.Pop()
		if b > a {
			i.stack.Push(1)
		} else {
			i.stack.Push(0)
		}

	case '>':
		i.dir = East
	case '<':
		i.dir = West
	case '^':
		i.dir = North
	case 'v':
		i.dir = South

	case '?':
		i.dir = cardinals[i.dirs.Pick()]

	case '_':
		if i.stack.Pop() != 0 {
			i.dir = West
		} else {
			i.dir = East
		}

	case '|':
		if i.stack.Pop() != 0 {
			i.dir = North
		} else {
			i.dir = South
		}

	case '"':
		i.stringMode()

	case ':':
		i.stack.Push(i.stack.PeekOrZero())

	case '\\':
		i.stack.Swap()

	case '$':
		i.stack.Pop()

	case '.':
		i.console.PutInt(i.stack.Pop())

	case ',':
		i.console.PutChar(i.stack.Pop())

	case '#':
		i.advance()

	case 'g':
		y := i.stack.Pop()
		x := i.stack.Pop()
		i.stack.Push(i.grid.Get(int(x), int(y)))

	case 'p':
		y := i.stack.Pop()
		x := i.stack.Pop()
		v := i.stack.Pop()
		i.grid.Put(int(x), int(y), v)

	case '&':
		i.stack.Push(i.console.GetInt())

	case '~':
		i.stack.Push(i.console.GetChar())

	case '\'':
		if i.extensions {
			i.advance()
			i.stack.Push(int32(i.grid.At(i.pos.X, i.pos.Y)))
		}

	case '@':
		i.halted = true
	}
}

// stringMode pushes character codes until the next quote cell. The cursor
// is left on the closing quote; the trailing advance in step skips it. A
// program with no second quote terminates anyway: the scan wraps the torus
// and stops back at the opening quote.
func (i *Interpreter) stringMode() {
	i.advance()
	for {
		c := i.grid.At(i.pos.X, i.pos.Y)
		if c == '"' {
			return
		}
		i.stack.Push(int32(c))
		i.advance()
	}
}
