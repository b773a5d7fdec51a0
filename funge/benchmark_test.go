// Dispatch loop benchmarks.
//
// Run: go test -bench=. ./funge/...
// Run with memory stats: go test -bench=. -benchmem ./funge/...
package funge

import (
	"errors"
	"strings"
	"testing"
)

// BenchmarkDispatchBlank measures the bare fetch-advance cycle: a blank
// grid is all no-ops and never halts, so every step is pure dispatch.
func BenchmarkDispatchBlank(b *testing.B) {
	i := New(NewGrid(), &scriptConsole{})

	b.ResetTimer()
	if err := i.Run(uint64(b.N)); !errors.Is(err, ErrStepLimit) {
		b.Fatalf("Run() = %v, want ErrStepLimit", err)
	}
}

// BenchmarkDispatchArithmetic measures a row of push/add pairs that wraps
// forever, keeping the stack shallow while exercising the arithmetic path.
func BenchmarkDispatchArithmetic(b *testing.B) {
	row := strings.Repeat("1+", Cols/2)
	i := New(gridFrom(row), &scriptConsole{})

	b.ResetTimer()
	if err := i.Run(uint64(b.N)); !errors.Is(err, ErrStepLimit) {
		b.Fatalf("Run() = %v, want ErrStepLimit", err)
	}
}

// BenchmarkStackPushPop measures the raw stack operations.
func BenchmarkStackPushPop(b *testing.B) {
	s := NewStack()
	for n := 0; n < b.N; n++ {
		s.Push(int32(n))
		s.Pop()
	}
}
