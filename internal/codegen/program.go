package codegen

import (
	"strings"

	"tako/colors"
	"tako/internal/diagnostics"
	"tako/internal/frontend/ast"
	"tako/internal/symbols"
)

// entryPoint names the binding synthesized around a module's root.
const entryPoint = "main"

// Program is a complete translation unit and what it needs to link.
type Program struct {
	Source   string
	Flags    []string
	Includes []string
}

// Program lowers a whole module. The module's root expression becomes the
// body of main; includes come first, then forward declarations, then every
// function definition with main last.
func (g *Generator) Program(module symbols.Path) (*Program, error) {
	defs, err := g.db.LookUpDefinitions(module)
	if err != nil {
		return nil, err
	}
	if defs.AST == nil {
		return nil, diagnostics.MalformedLowering(nil, "a module tree", "nothing")
	}
	g.module = module

	if g.debug > 1 && defs.Table != nil {
		colors.CYAN.Fprintf(g.stderr, "table %s\n%s", module, defs.Table)
	}

	entry := &ast.Let{
		Name:  entryPoint,
		Value: defs.AST,
		Args:  []*ast.Sym{},
		Info: ast.Info{
			Location:  defs.AST.Loc(),
			DefinedAt: module.Append(entryPoint),
		},
	}
	// main is called by the runtime, so it is never looked up as a use
	g.entry = entry
	lowered, err := g.Lower(entry)
	if err != nil {
		return nil, err
	}
	fn, ok := lowered.(Func)
	if !ok {
		return nil, diagnostics.MalformedLowering(defs.AST.Loc(), "main to lower to a function", Kind(lowered))
	}
	main := Func{
		Name:       "main",
		Args:       []string{"int argc", "char* argv[]"},
		ReturnType: "int",
		Body:       fn.Body,
	}

	includes := g.includes.sorted()
	var b strings.Builder
	WriteIncludes(&b, includes)
	for _, f := range g.functions {
		b.WriteString(Declaration(f))
		b.WriteString("\n")
	}
	funcs := append(append([]Func{}, g.functions...), main)
	for _, f := range funcs {
		b.WriteString(Render(f, "\n"))
	}
	b.WriteString("\n")

	return &Program{
		Source:   b.String(),
		Flags:    g.flags.sorted(),
		Includes: includes,
	}, nil
}
