// Package codegen lowers resolved trees to C++ source.
//
// Lowering produces Code fragments bottom-up. Retarget and Sequence combine
// them without walking the tree again, and Render prints the result. One
// Generator handles one module and owns everything it accumulates.
package codegen

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"tako/colors"
	"tako/internal/database"
	"tako/internal/diagnostics"
	"tako/internal/externs"
	"tako/internal/frontend/ast"
	"tako/internal/symbols"
	"tako/internal/tokens"
)

// inlineBuiltins are emitted from their registry template instead of being
// resolved like ordinary symbols.
var inlineBuiltins = map[string]bool{
	"print": true,
	"argc":  true,
	"argv":  true,
}

// Generator lowers one module. It is not safe for concurrent use.
type Generator struct {
	db        database.Compiler
	module    symbols.Path
	// functions holds top-level definitions, forward-declared and emitted
	// before main. No lowering appends to it yet; named function
	// definitions will once the frontend produces them.
	functions []Func
	entry     *ast.Let
	includes  stringSet
	flags     stringSet
	debug     int
	stderr    io.Writer
}

// New creates a generator reading resolver facts from db.
func New(db database.Compiler) *Generator {
	debug := 0
	if opts := db.Options(); opts != nil {
		debug = opts.Debug
	}
	return &Generator{
		db:       db,
		includes: stringSet{},
		flags:    stringSet{},
		debug:    debug,
		stderr:   os.Stderr,
	}
}

// Lower produces the fragment for one node.
func (g *Generator) Lower(node ast.Node) (Code, error) {
	switch n := node.(type) {
	case nil:
		return nil, diagnostics.MalformedLowering(nil, "a node", "nothing")
	case *ast.Sym:
		return g.lowerSym(n)
	case *ast.Prim:
		return g.lowerPrim(n)
	case *ast.Apply:
		return g.lowerApply(n)
	case *ast.Let:
		return g.lowerLet(n)
	case *ast.UnOp:
		return g.lowerUnOp(n)
	case *ast.BinOp:
		return g.lowerBinOp(n)
	case *ast.Err:
		return nil, diagnostics.FailedParse(n.Loc(), n.Msg)
	default:
		panic(fmt.Sprintf("unknown node %T", node))
	}
}

func (g *Generator) lowerSym(s *ast.Sym) (Code, error) {
	var name string
	switch {
	case s.DefinedAt != nil:
		name = symbols.Mangle(s.DefinedAt)
	case inlineBuiltins[s.Name]:
		name = s.Name
	default:
		return nil, diagnostics.UndefinedSymbol(s.Loc(), s.Name)
	}

	if inlineBuiltins[name] {
		ext := g.extern(name)
		return Expr{Text: ext.Code}, nil
	}
	return Expr{Text: name}, nil
}

func (g *Generator) lowerPrim(p *ast.Prim) (Code, error) {
	switch p.Kind {
	case ast.INT:
		return Expr{Text: strconv.FormatInt(int64(p.Int), 10)}, nil
	case ast.FLOAT:
		return Expr{Text: floatLiteral(p.Float)}, nil
	case ast.BOOL:
		if p.Bool {
			return Expr{Text: "1"}, nil
		}
		return Expr{Text: "0"}, nil
	case ast.STRING:
		return Expr{Text: quote(p.Str)}, nil
	case ast.LAMBDA:
		return g.Lower(p.Lambda)
	default:
		return nil, diagnostics.MalformedLowering(p.Loc(), "a primitive", p.Kind.String())
	}
}

func (g *Generator) lowerApply(a *ast.Apply) (Code, error) {
	callee, err := g.Lower(a.Inner)
	if err != nil {
		return nil, err
	}
	fn, ok := callee.(Expr)
	if !ok {
		return nil, diagnostics.MalformedLowering(a.Loc(), "a value to apply arguments to", Kind(callee))
	}

	args := make([]string, 0, len(a.Args))
	for _, arg := range a.Args {
		text, err := g.lowerArgument(arg)
		if err != nil {
			return nil, err
		}
		args = append(args, text)
	}
	return Expr{Text: fmt.Sprintf("%s(%s)", fn.Text, strings.Join(args, ", "))}, nil
}

// lowerArgument renders one call argument inline. An argument that declares
// parameters is a callback and becomes a capturing closure.
func (g *Generator) lowerArgument(arg *ast.Let) (string, error) {
	body, err := g.Lower(arg.Value)
	if err != nil {
		return "", err
	}
	if !arg.HasParams() {
		if err := needValue(body, arg.Value); err != nil {
			return "", err
		}
		return Render(body, ""), nil
	}
	params, err := g.params(arg.Args)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("[&](%s){%s}", strings.Join(params, ", "), Render(Return(body), "")), nil
}

func (g *Generator) lowerLet(l *ast.Let) (Code, error) {
	if l.DefinedAt == nil {
		return nil, diagnostics.UndefinedSymbol(l.Loc(), l.Name)
	}
	context := g.module
	if file := l.Loc().File(); file != "" {
		context = g.db.ModuleName(file)
	}
	if !l.DefinedAt.HasPrefix(context) {
		return nil, diagnostics.UndefinedSymbol(l.Loc(), l.DefinedAt.String())
	}

	if l != g.entry {
		uses, err := g.db.FindSymbolUses(context, l.DefinedAt[len(context):])
		if err != nil {
			return nil, err
		}
		if uses == nil {
			return nil, diagnostics.UndefinedSymbol(l.Loc(), l.DefinedAt.String())
		}
		if len(uses) == 0 {
			if g.debug > 0 {
				colors.GREY.Fprintf(g.stderr, "  elided unused binding %s\n", l.DefinedAt)
			}
			return Empty{}, nil
		}
	}

	name := symbols.Mangle(l.DefinedAt)
	body, err := g.Lower(l.Value)
	if err != nil {
		return nil, err
	}
	if l.HasParams() {
		params, err := g.params(l.Args)
		if err != nil {
			return nil, err
		}
		return Func{
			Name:       name,
			Args:       params,
			ReturnType: "int",
			Body:       Return(body),
			Lambda:     true,
		}, nil
	}
	if err := needValue(body, l.Value); err != nil {
		return nil, err
	}
	return Retarget(body, func(e string) Code {
		return Statement{Text: "const auto " + name + " = " + e}
	}), nil
}

// params declares closure parameters by their mangled definition paths.
func (g *Generator) params(args []*ast.Sym) ([]string, error) {
	params := make([]string, 0, len(args))
	for _, arg := range args {
		if arg.DefinedAt == nil {
			return nil, diagnostics.UndefinedSymbol(arg.Loc(), arg.Name)
		}
		params = append(params, "const auto "+symbols.Mangle(arg.DefinedAt))
	}
	return params, nil
}

func (g *Generator) lowerUnOp(u *ast.UnOp) (Code, error) {
	tok, ok := tokens.Prefix(u.Name)
	if !ok {
		return nil, diagnostics.UnknownPrefixOperator(u.Loc(), u.Name)
	}
	inner, err := g.Lower(u.Inner)
	if err != nil {
		return nil, err
	}
	if err := needValue(inner, u.Inner); err != nil {
		return nil, err
	}

	switch tok {
	case tokens.PLUS_TOKEN:
		return call1("", inner), nil
	case tokens.MINUS_TOKEN:
		return call1("-", inner), nil
	case tokens.NOT_TOKEN:
		return call1("!", inner), nil
	default:
		return nil, diagnostics.UnknownPrefixOperator(u.Loc(), u.Name)
	}
}

func (g *Generator) lowerBinOp(b *ast.BinOp) (Code, error) {
	tok, ok := tokens.Infix(b.Name)
	if !ok {
		return nil, diagnostics.UnknownInfixOperator(b.Loc(), b.Name)
	}
	left, err := g.Lower(b.Left)
	if err != nil {
		return nil, err
	}
	right, err := g.Lower(b.Right)
	if err != nil {
		return nil, err
	}
	if tok != tokens.SEMICOLON_TOKEN {
		if err := needValue(left, b.Left); err != nil {
			return nil, err
		}
		if err := needValue(right, b.Right); err != nil {
			return nil, err
		}
	}

	switch tok {
	case tokens.MUL_TOKEN, tokens.PLUS_TOKEN, tokens.DIV_TOKEN, tokens.MINUS_TOKEN,
		tokens.DOUBLE_EQUAL_TOKEN, tokens.NOT_EQUAL_TOKEN,
		tokens.GREATER_TOKEN, tokens.LESS_TOKEN, tokens.GREATER_EQUAL_TOKEN, tokens.LESS_EQUAL_TOKEN:
		return call2("", " "+string(tok)+" ", left, right), nil
	case tokens.CONCAT_TOKEN:
		ext := g.extern(string(tok))
		left = call1(ext.ArgProcessor, left)
		right = call1(ext.ArgProcessor, right)
		return call2("", " "+ext.Code+" ", left, right), nil
	case tokens.POW_TOKEN:
		ext := g.extern(string(tok))
		return call2(ext.Code, ", ", left, right), nil
	case tokens.GUARD_TOKEN:
		return If{
			Cond: left,
			Then: left,
			Else: If{Cond: right, Then: right, Else: Statement{Text: "throw 101"}},
		}, nil
	case tokens.SEMICOLON_TOKEN:
		return Sequence(left, right), nil
	default:
		return nil, diagnostics.UnknownInfixOperator(b.Loc(), b.Name)
	}
}

// needValue rejects a fragment whose yield is a conditional where an
// expression is required. Retarget leaves an If untouched, so wrapping one
// would drop the wrapper.
func needValue(code Code, node ast.Node) error {
	tail := code
	for {
		b, ok := tail.(Block)
		if !ok || len(b.Items) == 0 {
			break
		}
		tail = b.Items[len(b.Items)-1]
	}
	if _, ok := tail.(If); ok {
		return diagnostics.MalformedLowering(node.Loc(), "a value", Kind(tail))
	}
	return nil
}

// extern fetches registry metadata and records what the emitted code needs.
func (g *Generator) extern(name string) *externs.Extern {
	ext, ok := externs.Get(name)
	if !ok {
		panic("no extern registered for " + name)
	}
	g.includes.add(ext.Includes...)
	g.flags.add(ext.Flags...)
	return ext
}

// call1 wraps the yielded value as before(value).
func call1(before string, inner Code) Code {
	return Retarget(inner, func(e string) Code {
		return Expr{Text: before + "(" + e + ")"}
	})
}

// call2 combines both yielded values as before(left mid right).
func call2(before, mid string, left, right Code) Code {
	return Retarget(left, func(l string) Code {
		return Retarget(right, func(r string) Code {
			return Expr{Text: before + "(" + l + mid + r + ")"}
		})
	})
}
