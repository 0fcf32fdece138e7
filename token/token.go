package token

import "fmt"

// Kind is the classification of an input line.
type Kind int

// Token kinds as constants.
const (
	KindInvalid Kind = iota
	KindCommand
	KindOperator
	KindNumber

	// End of kinds.
	FinalKind
)

// String returns the string representation of the token kind.
func (k Kind) String() string {
	return kindStrings[k]
}

// Map of kinds to their string representation for debugging.
var kindStrings = map[Kind]string{
	KindInvalid:  "INVALID",
	KindCommand:  "COMMAND",
	KindOperator: "OPERATOR",
	KindNumber:   "NUMBER",
}

// Command is an application-level instruction, distinct from an operator.
type Command int

// Commands as constants.
const (
	CmdQuit Command = iota
	CmdPop
	CmdShow
	CmdClear
	CmdHelp

	// End of commands.
	FinalCommand
)

func (c Command) String() string {
	return commandStrings[c]
}

var commandStrings = map[Command]string{
	CmdQuit:  "QUIT",
	CmdPop:   "POP",
	CmdShow:  "SHOW",
	CmdClear: "CLEAR",
	CmdHelp:  "HELP",
}

// Operator is an arithmetic rule applied to the operand stack.
type Operator int

// Operators as constants.
const (
	OpAdd Operator = iota
	OpSubtract
	OpMultiply
	OpDivide
	OpModulo

	// End of operators.
	FinalOperator
)

func (o Operator) String() string {
	return operatorStrings[o]
}

var operatorStrings = map[Operator]string{
	OpAdd:      "+",
	OpSubtract: "-",
	OpMultiply: "*",
	OpDivide:   "/",
	OpModulo:   "%",
}

// Token is one classified input line. Exactly one of Command, Operator
// or Number is meaningful, selected by Kind.
type Token struct {
	Kind Kind

	Command  Command
	Operator Operator
	Number   float32

	Text string // Trimmed source text.
}

func (t Token) String() string {
	switch t.Kind {
	case KindCommand:
		return fmt.Sprintf("%s: %s", t.Kind, t.Command)
	case KindOperator:
		return fmt.Sprintf("%s: %q", t.Kind, t.Operator)
	case KindNumber:
		return fmt.Sprintf("%s: %v", t.Kind, t.Number)
	}
	return fmt.Sprintf("%s: %q", t.Kind, t.Text)
}
