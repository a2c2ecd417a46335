// Package database is the query contract the code generator consumes from
// the resolver, plus an in-memory implementation of it.
package database

import (
	"tako/internal/config"
	"tako/internal/frontend/ast"
	"tako/internal/source"
	"tako/internal/symbols"
	"tako/internal/table"
)

// Definitions is a resolved module: its tree and its definition table.
type Definitions struct {
	AST   ast.Node
	Table *table.SymbolTable
}

// Uses lists the reference sites of a binding.
type Uses []*source.Location

// Compiler answers the resolver queries the backend depends on. Every call
// is synchronous; a failure is final for the module being lowered.
type Compiler interface {
	// LookUpDefinitions fails with a module-not-found diagnostic when the
	// module is unknown.
	LookUpDefinitions(module symbols.Path) (*Definitions, error)
	// FindSymbolUses returns nil when the binding cannot be found and an
	// empty, non-nil Uses when it exists but is never referenced.
	FindSymbolUses(context, relative symbols.Path) (Uses, error)
	// ModuleName maps a source file to its module root path.
	ModuleName(filename string) symbols.Path
	Options() *config.Options
}
