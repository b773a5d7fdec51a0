package funge

import (
	"bufio"
	"fmt"
	"io"
)

// Console is the interpreter's view of the outside world. The '.' and ','
// instructions write through it, '&' and '~' read through it. Reads are
// allowed to block indefinitely; the dispatch loop only suspends there.
//
// Read failures (typically exhausted input) are absorbed: implementations
// return the zero value rather than an error, matching the language's
// garbage-in, garbage-out stance.
type Console interface {
	// PutInt writes v as a decimal integer followed by a single space.
	PutInt(v int32)
	// PutChar writes the character with code c (low 8 bits).
	PutChar(c int32)
	// GetInt reads an optionally-signed decimal integer, skipping leading
	// whitespace. Returns 0 when input is exhausted or non-numeric.
	GetInt() int32
	// GetChar reads one byte of input. Returns 0 at end of input.
	GetChar() int32
}

// StdConsole is the Console used by the CLI: buffered reads from one stream,
// writes to another. Output is flushed after every write so interactive
// programs behave.
type StdConsole struct {
	in  *bufio.Reader
	out *bufio.Writer
}

// NewStdConsole wraps the given streams in a StdConsole.
func NewStdConsole(in io.Reader, out io.Writer) *StdConsole {
	return &StdConsole{
		in:  bufio.NewReader(in),
		out: bufio.NewWriter(out),
	}
}

func (c *StdConsole) PutInt(v int32) {
	fmt.Fprintf(c.out, "%d ", v)
	c.out.Flush()
}

func (c *StdConsole) PutChar(v int32) {
	c.out.WriteByte(byte(v))
	c.out.Flush()
}

func (c *StdConsole) GetInt() int32 {
	var v int32
	if _, err := fmt.Fscan(c.in, &v); err != nil {
		return 0
	}
	return v
}

func (c *StdConsole) GetChar() int32 {
	b, err := c.in.ReadByte()
	if err != nil {
		return 0
	}
	return int32(b)
}
