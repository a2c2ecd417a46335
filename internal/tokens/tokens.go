// Package tokens classifies operator text from the tree into a closed set.
//
// Operator names arrive as strings on UnOp and BinOp nodes. They are
// classified once, here, and the code generator switches over the resulting
// TOKEN values; anything outside the set is reported as unknown. The console
// lexer reuses the same set for the operator names it reads.
package tokens

import (
	"fmt"
	"io"
	"sort"

	"tako/colors"
	"tako/internal/source"
)

type TOKEN string

const (
	//lexical kinds
	IDENTIFIER_TOKEN TOKEN = "identifier"
	NUMBER_TOKEN     TOKEN = "number"
	STRING_TOKEN     TOKEN = "string"
	EOF_TOKEN        TOKEN = "eof"
	//arithmetic operators
	PLUS_TOKEN  TOKEN = "+"
	MINUS_TOKEN TOKEN = "-"
	MUL_TOKEN   TOKEN = "*"
	DIV_TOKEN   TOKEN = "/"
	POW_TOKEN   TOKEN = "^"
	//logical operators
	NOT_TOKEN           TOKEN = "!"
	DOUBLE_EQUAL_TOKEN  TOKEN = "=="
	NOT_EQUAL_TOKEN     TOKEN = "!="
	GREATER_TOKEN       TOKEN = ">"
	LESS_TOKEN          TOKEN = "<"
	GREATER_EQUAL_TOKEN TOKEN = ">="
	LESS_EQUAL_TOKEN    TOKEN = "<="
	//string concatenation
	CONCAT_TOKEN TOKEN = "++"
	//fallible guard: left, or else right, or else fail
	GUARD_TOKEN TOKEN = "-|"
	//sequencing
	SEMICOLON_TOKEN TOKEN = ";"
)

var prefixOperators = map[TOKEN]bool{
	PLUS_TOKEN:  true,
	MINUS_TOKEN: true,
	NOT_TOKEN:   true,
}

var infixOperators = map[TOKEN]bool{
	MUL_TOKEN:           true,
	PLUS_TOKEN:          true,
	CONCAT_TOKEN:        true,
	DIV_TOKEN:           true,
	MINUS_TOKEN:         true,
	DOUBLE_EQUAL_TOKEN:  true,
	NOT_EQUAL_TOKEN:     true,
	GREATER_TOKEN:       true,
	LESS_TOKEN:          true,
	GREATER_EQUAL_TOKEN: true,
	LESS_EQUAL_TOKEN:    true,
	POW_TOKEN:           true,
	GUARD_TOKEN:         true,
	SEMICOLON_TOKEN:     true,
}

// Prefix classifies a unary operator name.
func Prefix(name string) (TOKEN, bool) {
	tok := TOKEN(name)
	return tok, prefixOperators[tok]
}

// Infix classifies a binary operator name.
func Infix(name string) (TOKEN, bool) {
	tok := TOKEN(name)
	return tok, infixOperators[tok]
}

// IsComparison reports whether tok is one of the relational operators.
func IsComparison(tok TOKEN) bool {
	switch tok {
	case DOUBLE_EQUAL_TOKEN, NOT_EQUAL_TOKEN, GREATER_TOKEN, LESS_TOKEN, GREATER_EQUAL_TOKEN, LESS_EQUAL_TOKEN:
		return true
	}
	return false
}

// Operators lists every operator in the closed set, longest first, so a
// lexer trying them in order never splits `++` into two `+`.
func Operators() []TOKEN {
	ops := make([]TOKEN, 0, len(infixOperators)+1)
	for tok := range infixOperators {
		ops = append(ops, tok)
	}
	ops = append(ops, NOT_TOKEN)
	sort.Slice(ops, func(i, j int) bool {
		if len(ops[i]) != len(ops[j]) {
			return len(ops[i]) > len(ops[j])
		}
		return ops[i] < ops[j]
	})
	return ops
}

// IsOperator reports whether tok names a prefix or infix operator.
func IsOperator(tok TOKEN) bool {
	return prefixOperators[tok] || infixOperators[tok]
}

type Token struct {
	Kind  TOKEN
	Value string
	Start source.Position
	End   source.Position
}

func (t *Token) Debug(w io.Writer, filename string) {
	colors.GREY.Fprintf(w, "%s:%d:%d ", filename, t.Start.Line, t.Start.Column)
	if t.Value == string(t.Kind) {
		fmt.Fprintf(w, "%q\n", t.Value)
	} else {
		fmt.Fprintf(w, "%q ('%v')\n", t.Value, t.Kind)
	}
}

func NewToken(kind TOKEN, value string, start source.Position, end source.Position) Token {
	return Token{
		Kind:  kind,
		Value: value,
		Start: start,
		End:   end,
	}
}
