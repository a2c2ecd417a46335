// Package table is the per-module definition table: every binding and
// parameter a module introduces, keyed by qualified path, together with the
// places it is referenced.
package table

import (
	"fmt"
	"strings"

	"tako/internal/frontend/ast"
	"tako/internal/source"
	"tako/internal/symbols"
)

// SymbolKind categorizes symbols
type SymbolKind int

const (
	SymbolVariable SymbolKind = iota
	SymbolFunction
	SymbolParameter
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolVariable:
		return "variable"
	case SymbolFunction:
		return "function"
	case SymbolParameter:
		return "parameter"
	default:
		return "unknown"
	}
}

// Symbol represents a declared binding
type Symbol struct {
	Name string
	Path symbols.Path
	Kind SymbolKind
	Decl ast.Node           // Let or parameter Sym that declared it
	Uses []*source.Location // one entry per reference
}

// SymbolTable holds the symbols declared in one module
type SymbolTable struct {
	symbols map[string]*Symbol
	order   []string
}

// NewSymbolTable creates an empty table
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		symbols: make(map[string]*Symbol),
	}
}

// Declare adds a symbol to the table
func (st *SymbolTable) Declare(symbol *Symbol) error {
	key := symbol.Path.Key()
	if _, exists := st.symbols[key]; exists {
		return fmt.Errorf("symbol '%s' already declared", symbol.Path)
	}
	st.symbols[key] = symbol
	st.order = append(st.order, key)
	return nil
}

// Lookup finds a symbol by its qualified path
func (st *SymbolTable) Lookup(path symbols.Path) (*Symbol, bool) {
	sym, ok := st.symbols[path.Key()]
	return sym, ok
}

// AddUse records a reference to path. It reports false when nothing in
// this table is declared there.
func (st *SymbolTable) AddUse(path symbols.Path, loc *source.Location) bool {
	sym, ok := st.Lookup(path)
	if !ok {
		return false
	}
	sym.Uses = append(sym.Uses, loc)
	return true
}

// Symbols returns every symbol in declaration order
func (st *SymbolTable) Symbols() []*Symbol {
	out := make([]*Symbol, 0, len(st.order))
	for _, key := range st.order {
		out = append(out, st.symbols[key])
	}
	return out
}

// Len is the number of declared symbols
func (st *SymbolTable) Len() int {
	return len(st.order)
}

// String renders one line per symbol, for debug output
func (st *SymbolTable) String() string {
	var b strings.Builder
	for _, sym := range st.Symbols() {
		fmt.Fprintf(&b, "%-24s %-9s uses=%d\n", sym.Path, sym.Kind, len(sym.Uses))
	}
	return b.String()
}
