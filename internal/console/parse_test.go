package console

import (
	"errors"
	"testing"

	"tako/internal/diagnostics"
	"tako/internal/frontend/ast"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line  string
		name  string
		args  []string
		kinds []ast.LiteralKind
	}{
		{"argc", "argc", nil, nil},
		{"print 5", "print", []string{"I32(5)"}, []ast.LiteralKind{ast.INT}},
		{`++ "a b" 3`, "++", []string{`Str("a b")`, "I32(3)"}, []ast.LiteralKind{ast.STRING, ast.INT}},
		{"^ 2.5 -2", "^", []string{"F64(2.5)", "I32(-2)"}, []ast.LiteralKind{ast.FLOAT, ast.INT}},
		{"print true", "print", []string{"Bool(true)"}, []ast.LiteralKind{ast.BOOL}},
		{"  argv\t0x1f  ", "argv", []string{"I32(31)"}, []ast.LiteralKind{ast.INT}},
		{"print 1_000", "print", []string{"I32(1000)"}, []ast.LiteralKind{ast.INT}},
	}

	for _, test := range tests {
		cmd, err := Parse(test.line)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error %v", test.line, err)
			continue
		}
		if cmd.Name != test.name {
			t.Errorf("Parse(%q): expected name %q, got %q", test.line, test.name, cmd.Name)
		}
		if len(cmd.Args) != len(test.args) {
			t.Errorf("Parse(%q): expected %d args, got %d", test.line, len(test.args), len(cmd.Args))
			continue
		}
		for i, arg := range cmd.Args {
			if arg.String() != test.args[i] {
				t.Errorf("Parse(%q): expected arg %d to be %s, got %s", test.line, i, test.args[i], arg)
			}
			if arg.Kind != test.kinds[i] {
				t.Errorf("Parse(%q): expected arg %d kind %s, got %s", test.line, i, test.kinds[i], arg.Kind)
			}
		}
	}
}

func TestParseArgumentLocations(t *testing.T) {
	cmd, err := Parse("  ^ 2 10")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cmd.Loc.Start.Column != 3 {
		t.Errorf("Expected the call at column 3, got %d", cmd.Loc.Start.Column)
	}
	if got := cmd.Args[1].Loc().Start.Column; got != 7 {
		t.Errorf("Expected the second argument at column 7, got %d", got)
	}
	if cmd.Args[0].Loc().File() != consoleFile {
		t.Errorf("Expected locations in %s, got %s", consoleFile, cmd.Args[0].Loc().File())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"print nope",
		"print -",
		"print - true",
		"print 2147483648",
		`print "open`,
	}

	for _, line := range tests {
		_, err := Parse(line)
		var diag *diagnostics.Diagnostic
		if !errors.As(err, &diag) {
			t.Errorf("Parse(%q): expected a diagnostic, got %v", line, err)
			continue
		}
		if diag.Code != diagnostics.ErrFailedParse {
			t.Errorf("Parse(%q): expected code %s, got %s", line, diagnostics.ErrFailedParse, diag.Code)
		}
	}
}
