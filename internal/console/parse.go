package console

import (
	"fmt"

	"tako/internal/diagnostics"
	"tako/internal/frontend/ast"
	"tako/internal/frontend/lexer"
	"tako/internal/source"
	"tako/internal/tokens"
	"tako/internal/utils/numeric"
)

// consoleFile names the pseudo-file console locations point into.
const consoleFile = "<console>"

// Command is one parsed console line: a builtin name followed by literal arguments.
type Command struct {
	Name string
	Args []*ast.Prim
	Loc  *source.Location
}

// Parse reads `name arg...`. The name is an identifier or an operator; each
// argument is an integer, float, boolean or double-quoted string literal.
func Parse(line string) (*Command, error) {
	bag := diagnostics.NewDiagnosticBag()
	toks := lexer.New(consoleFile, line, bag).Tokenize(nil)
	if bag.HasErrors() {
		return nil, bag.Diagnostics()[0]
	}

	head := toks[0]
	if head.Kind != tokens.IDENTIFIER_TOKEN && !tokens.IsOperator(head.Kind) {
		return nil, diagnostics.FailedParse(location(head), "expected a builtin name")
	}

	cmd := &Command{Name: head.Value, Loc: location(head)}
	for _, tok := range toks[1:] {
		if tok.Kind == tokens.EOF_TOKEN {
			break
		}
		arg, err := literal(tok)
		if err != nil {
			return nil, err
		}
		cmd.Args = append(cmd.Args, arg)
	}
	return cmd, nil
}

func location(tok tokens.Token) *source.Location {
	file := consoleFile
	start, end := tok.Start, tok.End
	return source.NewLocation(&file, &start, &end)
}

func literal(tok tokens.Token) (*ast.Prim, error) {
	loc := location(tok)
	switch tok.Kind {
	case tokens.NUMBER_TOKEN:
		if numeric.IsFloat(tok.Value) {
			f, err := numeric.ParseFloat(tok.Value)
			if err != nil {
				return nil, diagnostics.FailedParse(loc, err.Error())
			}
			return ast.F64(f, loc), nil
		}
		n, err := numeric.ParseInt32(tok.Value)
		if err != nil {
			return nil, diagnostics.FailedParse(loc, err.Error())
		}
		return ast.I32(n, loc), nil
	case tokens.STRING_TOKEN:
		return ast.Str(tok.Value, loc), nil
	case tokens.IDENTIFIER_TOKEN:
		switch tok.Value {
		case "true":
			return ast.Bool(true, loc), nil
		case "false":
			return ast.Bool(false, loc), nil
		}
	}
	return nil, diagnostics.FailedParse(loc, fmt.Sprintf("unexpected %s %q", tok.Kind, tok.Value))
}
