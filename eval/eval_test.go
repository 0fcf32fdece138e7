package eval_test

import (
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/rpn/eval"
	"go.creack.net/rpn/stack"
	"go.creack.net/rpn/token"
)

func TestSessionEndToEnd(t *testing.T) {
	session := eval.NewSession()

	// (3 + 4) * 2, RPN style.
	for _, line := range []string{"3", "4", "+", "2", "*"} {
		res := session.Eval(line)
		require.NoError(t, res.Err, "line %q", line)
	}

	if diff := pretty.Diff(session.Stack().Values(), []stack.Number{14}); len(diff) != 0 {
		t.Fatalf("Wrong final stack: %v", diff)
	}
}

func TestSessionNumberRoundTrip(t *testing.T) {
	session := eval.NewSession()

	res := session.Eval("1.25")
	assert.Equal(t, token.KindNumber, res.Token.Kind)
	assert.Equal(t, stack.Number(1.25), res.Value)
	assert.Equal(t, []string{"Number: 1.25"}, res.Output)

	res = session.Eval("p")
	assert.Equal(t, stack.Number(1.25), res.Value)
	assert.Equal(t, []string{"Popped: 1.25"}, res.Output)
	assert.Equal(t, 0, session.Stack().Len())
}

func TestSessionPopEmpty(t *testing.T) {
	session := eval.NewSession()

	res := session.Eval("p")
	require.NoError(t, res.Err, "empty stack is reported, not an error")
	assert.Equal(t, []string{"Stack is empty"}, res.Output)
}

func TestSessionShowClear(t *testing.T) {
	session := eval.NewSession()
	session.Eval("1")
	session.Eval("2")

	// Show and Clear report the same content for the same pre-state.
	show := session.Eval("s")
	assert.Equal(t, []string{"Stack: [1 2]"}, show.Output)
	assert.Equal(t, 2, session.Stack().Len(), "show must not mutate")

	clear := session.Eval("c")
	assert.Equal(t, []string{"Clearing stack: [1 2]"}, clear.Output)
	assert.Equal(t, 0, session.Stack().Len())
}

func TestSessionHelp(t *testing.T) {
	session := eval.NewSession()

	res := session.Eval("?")
	assert.Equal(t, []string{
		"Valid operators: +, -, *, /, %",
		"Valid commands: (q)uit, (p)op, (s)how, (c)lear, ?",
	}, res.Output)
	assert.Equal(t, eval.Help(), res.Output)
}

func TestSessionQuit(t *testing.T) {
	session := eval.NewSession()
	session.Eval("42")

	res := session.Eval("q")
	assert.True(t, res.Quit)
	assert.Empty(t, res.Output)
	assert.Equal(t, []stack.Number{42}, session.Stack().Values(), "quit must not touch the stack")
}

func TestSessionInvalidInput(t *testing.T) {
	session := eval.NewSession()
	session.Eval("42")

	res := session.Eval("foo")
	assert.Equal(t, token.KindInvalid, res.Token.Kind)
	assert.Equal(t, []string{"Invalid input"}, res.Output)
	assert.Equal(t, []stack.Number{42}, session.Stack().Values(), "invalid input has zero state change")
}

func TestSessionOperatorError(t *testing.T) {
	session := eval.NewSession()

	res := session.Eval("+")
	require.ErrorIs(t, res.Err, eval.ErrNotEnoughOperands)
	assert.Equal(t, []string{"Error: not enough operands"}, res.Output)

	// The session keeps going after a failed operator.
	session.Eval("5")
	session.Eval("0")
	res = session.Eval("/")
	require.ErrorIs(t, res.Err, eval.ErrDivideByZero)
	assert.Equal(t, []stack.Number{5, 0}, session.Stack().Values())

	res = session.Eval("s")
	assert.Equal(t, []string{"Stack: [5 0]"}, res.Output)
}
