package funge

import "testing"

func TestStackPushPop(t *testing.T) {
	s := NewStack()
	s.Push(1)
	s.Push(2)
	s.Push(3)

	for _, want := range []int32{3, 2, 1} {
		if got := s.Pop(); got != want {
			t.Errorf("Pop() = %d, want %d", got, want)
		}
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d after popping everything, want 0", s.Len())
	}
}

func TestStackPopEmptyYieldsZero(t *testing.T) {
	s := NewStack()
	for n := 0; n < 3; n++ {
		if got := s.Pop(); got != 0 {
			t.Errorf("Pop() on empty stack = %d, want 0", got)
		}
		if s.Len() != 0 {
			t.Errorf("Len() = %d after empty pop, want 0", s.Len())
		}
	}
}

func TestStackPeekOrZero(t *testing.T) {
	s := NewStack()
	if got := s.PeekOrZero(); got != 0 {
		t.Errorf("PeekOrZero() on empty stack = %d, want 0", got)
	}

	s.Push(42)
	if got := s.PeekOrZero(); got != 42 {
		t.Errorf("PeekOrZero() = %d, want 42", got)
	}
	if s.Len() != 1 {
		t.Errorf("PeekOrZero() mutated the stack: Len() = %d, want 1", s.Len())
	}
}

func TestStackSwap(t *testing.T) {
	s := NewStack()
	s.Push(1)
	s.Push(2)
	s.Swap()

	if got := s.Pop(); got != 1 {
		t.Errorf("top after swap = %d, want 1", got)
	}
	if got := s.Pop(); got != 2 {
		t.Errorf("second after swap = %d, want 2", got)
	}
}

func TestStackSwapSingleton(t *testing.T) {
	// With one value, swap pads a zero beneath it and exchanges the pair,
	// so the padded zero ends up on top: popping yields 0, then 5.
	s := NewStack()
	s.Push(5)
	s.Swap()

	if s.Len() != 2 {
		t.Fatalf("Len() after singleton swap = %d, want 2", s.Len())
	}
	if got := s.Pop(); got != 0 {
		t.Errorf("top after singleton swap = %d, want 0", got)
	}
	if got := s.Pop(); got != 5 {
		t.Errorf("second after singleton swap = %d, want 5", got)
	}
}

func TestStackSwapEmpty(t *testing.T) {
	s := NewStack()
	s.Swap()
	if s.Len() != 0 {
		t.Errorf("Len() after empty swap = %d, want 0", s.Len())
	}
}
