package funge

// Stack is the machine's LIFO of signed 32-bit integers. Underflow is
// tolerated by definition: popping an empty stack yields 0 and leaves the
// stack empty. Do not "fix" this into an error; '!', '_', '|' and ':' rely
// on it for their empty-stack behavior.
type Stack struct {
	values []int32
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push appends v. Always succeeds.
func (s *Stack) Push(v int32) {
	s.values = append(s.values, v)
}

// Pop removes and returns the top value, or 0 if the stack is empty.
func (s *Stack) Pop() int32 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[len(s.values)-1]
	s.values = s.values[:len(s.values)-1]
	return v
}

// PeekOrZero returns the top value without removing it, or 0 if empty.
// Backs the ':' duplicate instruction.
func (s *Stack) PeekOrZero() int32 {
	if len(s.values) == 0 {
		return 0
	}
	return s.values[len(s.values)-1]
}

// Swap exchanges the top two values. With one value present a zero is first
// pushed beneath it and the pair exchanged, leaving the zero on top; with
// none it is a no-op. Equivalent to pop a, pop b, push a, push b under
// tolerant underflow, minus the useless zero-zero case.
func (s *Stack) Swap() {
	switch n := len(s.values); n {
	case 0:
	case 1:
		s.values = append(s.values, 0)
	default:
		s.values[n-1], s.values[n-2] = s.values[n-2], s.values[n-1]
	}
}

// Len reports the number of values on the stack.
func (s *Stack) Len() int {
	return len(s.values)
}
