// Package lexer splits console input into tokens: identifiers, number and
// string literals, and the operators the code generator knows.
package lexer

import (
	"fmt"
	"io"
	"regexp"
	"strconv"

	"tako/internal/diagnostics"
	"tako/internal/source"
	"tako/internal/tokens"
	"tako/internal/utils/numeric"
)

type regexHandler func(lex *Lexer, regex *regexp.Regexp)

type regexPattern struct {
	regex   *regexp.Regexp
	handler regexHandler
}

type Lexer struct {
	diagnostics *diagnostics.DiagnosticBag
	Tokens      []tokens.Token
	Position    source.Position
	sourceCode  []byte
	patterns    []regexPattern
	FilePath    string
}

// Literals are tried before operators so "-1" lexes as a number.
var basePatterns = []regexPattern{
	{regexp.MustCompile(`^\s+`), skipHandler},
	{regexp.MustCompile(`^"(?:[^"\\\n]|\\.)*"`), stringHandler},
	{regexp.MustCompile(`^` + numeric.NumberPattern), numberHandler},
	{regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*`), identifierHandler},
}

var operatorPatterns = func() []regexPattern {
	var patterns []regexPattern
	for _, op := range tokens.Operators() {
		patterns = append(patterns, regexPattern{
			regex:   regexp.MustCompile(`^` + regexp.QuoteMeta(string(op))),
			handler: defaultHandler(op),
		})
	}
	return patterns
}()

func (lex *Lexer) advance(match string) {
	lex.Position.Advance(match)
}

func (lex *Lexer) push(token tokens.Token) {
	lex.Tokens = append(lex.Tokens, token)
}

func (lex *Lexer) remainder() string {
	return string(lex.sourceCode)[lex.Position.Index:]
}

func (lex *Lexer) atEOF() bool {
	return lex.Position.Index >= len(lex.sourceCode)
}

func (lex *Lexer) location(start, end source.Position) *source.Location {
	return source.NewLocation(&lex.FilePath, &start, &end)
}

func New(filepath, content string, diag *diagnostics.DiagnosticBag) *Lexer {
	patterns := make([]regexPattern, 0, len(basePatterns)+len(operatorPatterns))
	patterns = append(patterns, basePatterns...)
	patterns = append(patterns, operatorPatterns...)

	return &Lexer{
		sourceCode: []byte(content),
		Tokens:     make([]tokens.Token, 0),
		Position: source.Position{
			Line:   1,
			Column: 1,
			Index:  0,
		},
		diagnostics: diag,
		FilePath:    filepath,
		patterns:    patterns,
	}
}

func defaultHandler(token tokens.TOKEN) regexHandler {
	return func(lex *Lexer, _ *regexp.Regexp) {
		start := lex.Position
		lex.advance(string(token))
		end := lex.Position

		lex.push(tokens.NewToken(token, string(token), start, end))
	}
}

func identifierHandler(lex *Lexer, regex *regexp.Regexp) {
	identifier := regex.FindString(lex.remainder())
	start := lex.Position
	lex.advance(identifier)
	end := lex.Position
	lex.push(tokens.NewToken(tokens.IDENTIFIER_TOKEN, identifier, start, end))
}

func numberHandler(lex *Lexer, regex *regexp.Regexp) {
	match := regex.FindString(lex.remainder())
	start := lex.Position
	lex.advance(match)
	end := lex.Position
	lex.push(tokens.NewToken(tokens.NUMBER_TOKEN, match, start, end))
}

// stringHandler keeps the unquoted text; escapes follow Go's rules.
func stringHandler(lex *Lexer, regex *regexp.Regexp) {
	match := regex.FindString(lex.remainder())
	start := lex.Position
	lex.advance(match)
	end := lex.Position

	value, err := strconv.Unquote(match)
	if err != nil {
		lex.diagnostics.Add(diagnostics.FailedParse(lex.location(start, end), "invalid escape in string literal"))
		return
	}
	lex.push(tokens.NewToken(tokens.STRING_TOKEN, value, start, end))
}

// skipHandler processes a token that should be skipped by the lexer.
func skipHandler(lex *Lexer, regex *regexp.Regexp) {
	match := regex.FindString(lex.remainder())
	lex.advance(match)
}

// Tokenize splits the whole input. Unrecognized characters are reported and
// skipped so one pass finds every error; the result always ends with EOF.
func (lex *Lexer) Tokenize(debug io.Writer) []tokens.Token {
	for !lex.atEOF() {
		matched := false

		for _, pattern := range lex.patterns {
			if pattern.regex.MatchString(lex.remainder()) {
				pattern.handler(lex, pattern.regex)
				matched = true
				break
			}
		}

		if !matched {
			start := lex.Position
			ch := []rune(lex.remainder())[0]
			lex.advance(string(ch))
			lex.diagnostics.Add(diagnostics.FailedParse(
				lex.location(start, lex.Position),
				fmt.Sprintf("unrecognized character '%c'", ch),
			))
		}
	}

	lex.push(tokens.NewToken(tokens.EOF_TOKEN, "end of input", lex.Position, lex.Position))

	if debug != nil {
		for _, token := range lex.Tokens {
			token.Debug(debug, lex.FilePath)
		}
	}

	return lex.Tokens
}
