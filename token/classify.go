// Package token classifies calculator input lines. Each line holds a
// single token: an application command, an arithmetic operator or a
// number, checked in that order.
package token

import (
	"strconv"
	"strings"
)

// Lookup tables for the fixed token sets. Exact, case-sensitive match.
var commandLookupTable = map[string]Command{
	"q": CmdQuit,
	"p": CmdPop,
	"c": CmdClear,
	"s": CmdShow,
	"?": CmdHelp,
}

var operatorLookupTable = map[string]Operator{
	"+": OpAdd,
	"-": OpSubtract,
	"*": OpMultiply,
	"/": OpDivide,
	"%": OpModulo,
}

// Classify trims the raw line and matches it against the command table,
// then the operator table, then as a float literal. First match wins,
// so a command character is never reinterpreted as anything else.
// Anything left over is KindInvalid, including blank input.
func Classify(raw string) Token {
	text := strings.TrimSpace(raw)
	tok := Token{Kind: KindInvalid, Text: text}

	if cmd, ok := commandLookupTable[text]; ok {
		tok.Kind, tok.Command = KindCommand, cmd
		return tok
	}
	if op, ok := operatorLookupTable[text]; ok {
		tok.Kind, tok.Operator = KindOperator, op
		return tok
	}
	if n, err := strconv.ParseFloat(text, 32); err == nil {
		tok.Kind, tok.Number = KindNumber, float32(n)
		return tok
	}
	return tok
}
