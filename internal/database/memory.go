package database

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"tako/internal/config"
	"tako/internal/diagnostics"
	"tako/internal/frontend/ast"
	"tako/internal/symbols"
	"tako/internal/table"
)

type module struct {
	filename string
	path     symbols.Path
	root     ast.Node
	table    *table.SymbolTable
}

// Memory is a Compiler over trees that were already resolved, e.g. decoded
// from dumps. Modules may be added from several goroutines.
type Memory struct {
	opts    *config.Options
	modules map[string]*module
	mu      sync.RWMutex
}

// NewMemory creates an empty database.
func NewMemory(opts *config.Options) *Memory {
	if opts == nil {
		opts = config.Default()
	}
	return &Memory{
		opts:    opts,
		modules: make(map[string]*module),
	}
}

func (m *Memory) Options() *config.Options { return m.opts }

// ModuleName is the file's base name without its extension.
func (m *Memory) ModuleName(filename string) symbols.Path {
	base := filepath.Base(filename)
	return symbols.PathOf(strings.TrimSuffix(base, filepath.Ext(base)))
}

// AddModule indexes root under the module named after filename. Adding the
// same module twice keeps the first registration.
func (m *Memory) AddModule(filename string, root ast.Node) (symbols.Path, error) {
	path := m.ModuleName(filename)
	st, err := buildTable(root)
	if err != nil {
		return nil, fmt.Errorf("index %s: %w", filename, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.modules[path.Key()]; !exists {
		m.modules[path.Key()] = &module{filename: filename, path: path, root: root, table: st}
	}
	return path, nil
}

// Modules returns the registered module paths, sorted.
func (m *Memory) Modules() []symbols.Path {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.modules))
	for key := range m.modules {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	paths := make([]symbols.Path, len(keys))
	for i, key := range keys {
		paths[i] = m.modules[key].path
	}
	return paths
}

// Filename returns the file a module was registered from.
func (m *Memory) Filename(path symbols.Path) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	mod, ok := m.modules[path.Key()]
	if !ok {
		return "", false
	}
	return mod.filename, true
}

func (m *Memory) LookUpDefinitions(path symbols.Path) (*Definitions, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	mod, ok := m.modules[path.Key()]
	if !ok {
		return nil, diagnostics.ModuleNotFound(path.String())
	}
	return &Definitions{AST: mod.root, Table: mod.table}, nil
}

func (m *Memory) FindSymbolUses(context, relative symbols.Path) (Uses, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	mod, ok := m.modules[context.Key()]
	if !ok {
		return nil, diagnostics.ModuleNotFound(context.String())
	}
	full := make(symbols.Path, 0, len(context)+len(relative))
	full = append(append(full, context...), relative...)
	sym, ok := mod.table.Lookup(full)
	if !ok {
		return nil, nil
	}
	uses := make(Uses, len(sym.Uses))
	copy(uses, sym.Uses)
	return uses, nil
}

// buildTable declares every resolved Let and parameter, then records each
// Sym that refers to one of them. Parameter declarations are not uses.
func buildTable(root ast.Node) (*table.SymbolTable, error) {
	st := table.NewSymbolTable()
	params := make(map[*ast.Sym]bool)
	var declErr error

	ast.Inspect(root, func(n ast.Node) bool {
		let, ok := n.(*ast.Let)
		if !ok || declErr != nil {
			return declErr == nil
		}
		if let.DefinedAt != nil {
			kind := table.SymbolVariable
			if let.HasParams() {
				kind = table.SymbolFunction
			}
			declErr = st.Declare(&table.Symbol{Name: let.Name, Path: let.DefinedAt, Kind: kind, Decl: let})
		}
		for _, param := range let.Args {
			params[param] = true
			if param.DefinedAt == nil || declErr != nil {
				continue
			}
			declErr = st.Declare(&table.Symbol{Name: param.Name, Path: param.DefinedAt, Kind: table.SymbolParameter, Decl: param})
		}
		return true
	})
	if declErr != nil {
		return nil, declErr
	}

	ast.Inspect(root, func(n ast.Node) bool {
		if sym, ok := n.(*ast.Sym); ok && !params[sym] && sym.DefinedAt != nil {
			st.AddUse(sym.DefinedAt, sym.Loc())
		}
		return true
	})
	return st, nil
}
