package eval

import (
	"errors"
	"fmt"
	"math"

	"go.creack.net/rpn/stack"
	"go.creack.net/rpn/token"
)

// Typed operator failures. All recoverable: Apply never leaves the
// stack half-consumed, so the session continues after reporting.
var (
	ErrNotEnoughOperands = errors.New("not enough operands")
	ErrDivideByZero      = errors.New("divide by zero")
	ErrModuloByZero      = errors.New("modulo by zero")
)

type applyFn func(*stack.Stack) (stack.Number, error)

var applyLookupTable = map[token.Operator]applyFn{
	token.OpAdd:      applyAdd,
	token.OpSubtract: applySubtract,
	token.OpMultiply: applyMultiply,
	token.OpDivide:   applyDivide,
	token.OpModulo:   applyModulo,
}

// Apply runs the given operator against the stack and returns the value
// it pushed. On failure the stack is left exactly as it was: arity is
// checked before any pop, and a zero divisor restores both operands.
func Apply(op token.Operator, st *stack.Stack) (stack.Number, error) {
	fn, ok := applyLookupTable[op]
	if !ok {
		return 0, fmt.Errorf("unknown operator %q", op)
	}
	return fn(st)
}

// pop2 removes the top two values. Operand order matters: b is the top
// of the stack, a the one under it.
func pop2(st *stack.Stack) (a, b stack.Number) {
	b, _ = st.Pop()
	a, _ = st.Pop()
	return a, b
}

func applyAdd(st *stack.Stack) (stack.Number, error) {
	if st.Len() < 2 {
		return 0, ErrNotEnoughOperands
	}
	a, b := pop2(st)
	answer := a + b
	st.Push(answer)
	return answer, nil
}

// applySubtract computes a-b, or negates the single value on the stack.
func applySubtract(st *stack.Stack) (stack.Number, error) {
	switch st.Len() {
	case 0:
		return 0, ErrNotEnoughOperands
	case 1:
		b, _ := st.Pop()
		answer := -b
		st.Push(answer)
		return answer, nil
	default:
		a, b := pop2(st)
		answer := a - b
		st.Push(answer)
		return answer, nil
	}
}

func applyMultiply(st *stack.Stack) (stack.Number, error) {
	if st.Len() < 2 {
		return 0, ErrNotEnoughOperands
	}
	a, b := pop2(st)
	answer := a * b
	st.Push(answer)
	return answer, nil
}

func applyDivide(st *stack.Stack) (stack.Number, error) {
	if st.Len() < 2 {
		return 0, ErrNotEnoughOperands
	}
	a, b := pop2(st)
	// Exact zero test, not epsilon based.
	if b == 0 {
		st.Push(a)
		st.Push(b)
		return 0, ErrDivideByZero
	}
	answer := a / b
	st.Push(answer)
	return answer, nil
}

func applyModulo(st *stack.Stack) (stack.Number, error) {
	if st.Len() < 2 {
		return 0, ErrNotEnoughOperands
	}
	a, b := pop2(st)
	if b == 0 {
		st.Push(a)
		st.Push(b)
		return 0, ErrModuloByZero
	}
	// No % on floats in Go, math.Mod matches truncated-division remainder.
	answer := stack.Number(math.Mod(float64(a), float64(b)))
	st.Push(answer)
	return answer, nil
}
