// Package funge implements the Befunge-93 execution engine: a fixed-size
// toroidal program grid, a tolerant-underflow integer stack, and the
// fetch-decode-execute dispatch loop.
//
// The engine is deliberately split from everything that touches the outside
// world. Program text is turned into a Grid by an external loader, console
// traffic goes through the Console interface, and the random direction used
// by '?' comes from a DirectionSource, so tests can substitute deterministic
// implementations for all three.
//
// Semantics follow the Befunge-93 reference behavior exactly, including the
// deliberately odd corners:
//
//   - Popping an empty stack yields 0 and is not an error. Several
//     instructions ('!', '_', ':') depend on this.
//
//   - Cursor movement wraps toroidally, but 'g' and 'p' bounds-check the
//     popped coordinates against the nominal 80x25 program area without
//     wrapping. Out-of-range 'g' pushes 0; out-of-range 'p' is discarded.
//
//   - Division or modulo by zero is not caught. The Go runtime panic
//     propagates, matching the reference's host-arithmetic behavior.
package funge
