// Package eval runs classified calculator input against the operand
// stack, one line per call.
package eval

import (
	"fmt"

	"go.creack.net/rpn/stack"
	"go.creack.net/rpn/token"
)

// Result is the outcome of evaluating one input line. Output holds the
// human-readable report lines for the driver to relay. Value is the
// operator result or the pushed number, when Kind is operator/number.
type Result struct {
	Token token.Token

	Value  stack.Number
	Err    error
	Output []string
	Quit   bool
}

// Session is one calculator session: a single operand stack living for
// the whole process, mutated one evaluated line at a time.
type Session struct {
	stack *stack.Stack
}

func NewSession() *Session {
	return &Session{stack: &stack.Stack{}}
}

// Stack exposes the session's operand stack, mainly for the driver's
// final-state report.
func (s *Session) Stack() *stack.Stack {
	return s.stack
}

// Eval classifies one input line and executes it. The driver is
// expected to strip blank lines; everything else goes through here.
func (s *Session) Eval(line string) Result {
	tok := token.Classify(line)
	res := Result{Token: tok}

	switch tok.Kind {
	case token.KindCommand:
		s.evalCommand(tok.Command, &res)
	case token.KindOperator:
		answer, err := Apply(tok.Operator, s.stack)
		if err != nil {
			res.Err = err
			res.Output = append(res.Output, fmt.Sprintf("Error: %s", err))
			break
		}
		res.Value = answer
		res.Output = append(res.Output, fmt.Sprintf("Result: %v", answer))
	case token.KindNumber:
		s.stack.Push(tok.Number)
		res.Value = tok.Number
		res.Output = append(res.Output, fmt.Sprintf("Number: %v", tok.Number))
	default:
		res.Output = append(res.Output, "Invalid input")
	}
	return res
}

func (s *Session) evalCommand(cmd token.Command, res *Result) {
	switch cmd {
	case token.CmdQuit:
		res.Quit = true
	case token.CmdPop:
		// An empty stack is reported, not an error.
		v, ok := s.stack.Pop()
		if !ok {
			res.Output = append(res.Output, "Stack is empty")
			break
		}
		res.Value = v
		res.Output = append(res.Output, fmt.Sprintf("Popped: %v", v))
	case token.CmdShow:
		res.Output = append(res.Output, fmt.Sprintf("Stack: %v", s.stack))
	case token.CmdClear:
		// Report the contents as they were right before clearing.
		res.Output = append(res.Output, fmt.Sprintf("Clearing stack: %v", s.stack))
		s.stack.Clear()
	case token.CmdHelp:
		res.Output = append(res.Output, Help()...)
	}
}

// Help returns the fixed usage text, one line per element.
func Help() []string {
	return []string{
		"Valid operators: +, -, *, /, %",
		"Valid commands: (q)uit, (p)op, (s)how, (c)lear, ?",
	}
}
