package lexer

import (
	"bytes"
	"strings"
	"testing"

	"tako/internal/diagnostics"
	"tako/internal/tokens"
)

func tokenize(t *testing.T, input string) ([]tokens.Token, *diagnostics.DiagnosticBag) {
	t.Helper()
	bag := diagnostics.NewDiagnosticBag()
	return New("<test>", input, bag).Tokenize(nil), bag
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		kinds []tokens.TOKEN
		texts []string
	}{
		{"print 5", []tokens.TOKEN{tokens.IDENTIFIER_TOKEN, tokens.NUMBER_TOKEN}, []string{"print", "5"}},
		{"++ 1 2", []tokens.TOKEN{tokens.CONCAT_TOKEN, tokens.NUMBER_TOKEN, tokens.NUMBER_TOKEN}, []string{"++", "1", "2"}},
		{"^ 2.5 -1", []tokens.TOKEN{tokens.POW_TOKEN, tokens.NUMBER_TOKEN, tokens.NUMBER_TOKEN}, []string{"^", "2.5", "-1"}},
		{"-| <= <", []tokens.TOKEN{tokens.GUARD_TOKEN, tokens.LESS_EQUAL_TOKEN, tokens.LESS_TOKEN}, []string{"-|", "<=", "<"}},
		{`print "a \"b\"\n"`, []tokens.TOKEN{tokens.IDENTIFIER_TOKEN, tokens.STRING_TOKEN}, []string{"print", "a \"b\"\n"}},
		{"argv 0x1F", []tokens.TOKEN{tokens.IDENTIFIER_TOKEN, tokens.NUMBER_TOKEN}, []string{"argv", "0x1F"}},
		{"", nil, nil},
	}

	for _, test := range tests {
		toks, bag := tokenize(t, test.input)
		if bag.HasErrors() {
			t.Errorf("Tokenize(%q): unexpected errors:\n%s", test.input, bag.EmitAllToString())
			continue
		}
		if len(toks) != len(test.kinds)+1 {
			t.Errorf("Tokenize(%q): expected %d tokens, got %d", test.input, len(test.kinds)+1, len(toks))
			continue
		}
		for i, kind := range test.kinds {
			if toks[i].Kind != kind {
				t.Errorf("Tokenize(%q): expected token %d kind %q, got %q", test.input, i, kind, toks[i].Kind)
			}
			if toks[i].Value != test.texts[i] {
				t.Errorf("Tokenize(%q): expected token %d text %q, got %q", test.input, i, test.texts[i], toks[i].Value)
			}
		}
		if last := toks[len(toks)-1]; last.Kind != tokens.EOF_TOKEN {
			t.Errorf("Tokenize(%q): expected a trailing EOF, got %q", test.input, last.Kind)
		}
	}
}

func TestTokenPositions(t *testing.T) {
	toks, _ := tokenize(t, "  ^ 2 10")

	if toks[0].Start.Column != 3 {
		t.Errorf("Expected ^ at column 3, got %d", toks[0].Start.Column)
	}
	if toks[2].Start.Column != 7 || toks[2].End.Column != 9 {
		t.Errorf("Expected 10 to span columns 7-9, got %d-%d", toks[2].Start.Column, toks[2].End.Column)
	}
}

func TestTokenizeReportsEveryBadCharacter(t *testing.T) {
	toks, bag := tokenize(t, "print ~ 1 @")

	if bag.ErrorCount() != 2 {
		t.Fatalf("Expected 2 errors, got %d", bag.ErrorCount())
	}
	diag := bag.Diagnostics()[0]
	if diag.Code != diagnostics.ErrFailedParse {
		t.Errorf("Expected code %s, got %s", diagnostics.ErrFailedParse, diag.Code)
	}
	if !strings.Contains(diag.Message, "'~'") {
		t.Errorf("Expected the offending character in %q", diag.Message)
	}
	if len(toks) != 3 {
		t.Errorf("Expected the valid tokens to survive, got %d tokens", len(toks))
	}
}

func TestTokenizeInvalidEscape(t *testing.T) {
	_, bag := tokenize(t, `print "\q"`)
	if !bag.HasErrors() {
		t.Error("Expected an error for an invalid escape")
	}
}

func TestTokenizeDebugOutput(t *testing.T) {
	var buf bytes.Buffer
	New("<test>", "argc", diagnostics.NewDiagnosticBag()).Tokenize(&buf)

	if !strings.Contains(buf.String(), `"argc" ('identifier')`) {
		t.Errorf("Expected the token dump, got %q", buf.String())
	}
}
