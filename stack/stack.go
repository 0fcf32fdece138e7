// Package stack provides the calculator's operand stack.
package stack

import "fmt"

// Number is the calculator's numeric type, single precision float.
type Number = float32

// Stack is an unbounded LIFO sequence of numbers. The zero value is an
// empty stack ready to use. It performs no arity checking; callers that
// need "at least N operands" semantics check Len themselves.
type Stack struct {
	values []Number
}

// Push appends v at the top of the stack.
func (s *Stack) Push(v Number) {
	s.values = append(s.values, v)
}

// Pop removes and returns the top value. The bool is false when the
// stack is empty. Emptiness is not an error at this layer.
func (s *Stack) Pop() (Number, bool) {
	if len(s.values) == 0 {
		return 0, false
	}
	v := s.values[len(s.values)-1]
	s.values = s.values[:len(s.values)-1]
	return v, true
}

// Peek returns the top value without removing it.
func (s *Stack) Peek() (Number, bool) {
	if len(s.values) == 0 {
		return 0, false
	}
	return s.values[len(s.values)-1], true
}

// Clear empties the stack and returns its pre-clear contents in
// insertion order, for reporting.
func (s *Stack) Clear() []Number {
	old := s.Values()
	s.values = s.values[:0]
	return old
}

// Len returns the number of values on the stack.
func (s *Stack) Len() int {
	return len(s.values)
}

// Values returns a copy of the stack contents in insertion order,
// bottom first, top last.
func (s *Stack) Values() []Number {
	out := make([]Number, len(s.values))
	copy(out, s.values)
	return out
}

// String formats the stack in insertion order. Show, Clear and the
// final-state report all go through here so they display consistently.
func (s *Stack) String() string {
	return fmt.Sprintf("%v", s.values)
}
