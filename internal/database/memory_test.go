package database

import (
	"errors"
	"sync"
	"testing"

	"tako/internal/diagnostics"
	"tako/internal/frontend/ast"
	"tako/internal/source"
	"tako/internal/symbols"
	"tako/internal/table"
)

func at(path ...string) ast.Info {
	return ast.Info{Location: source.At("hello.json", 1, 1), DefinedAt: symbols.PathOf(path...)}
}

// let unused = 5; let f(x) = x; f(1)
func sampleTree() ast.Node {
	unused := &ast.Let{Name: "unused", Value: ast.I32(5, nil), Info: at("hello", "unused")}
	param := &ast.Sym{Name: "x", Info: at("hello", "f", "x")}
	f := &ast.Let{
		Name:  "f",
		Args:  []*ast.Sym{param},
		Value: &ast.Sym{Name: "x", Info: at("hello", "f", "x")},
		Info:  at("hello", "f"),
	}
	call := &ast.Apply{
		Inner: &ast.Sym{Name: "f", Info: at("hello", "f")},
		Args:  []*ast.Let{{Name: "it", Value: ast.I32(1, nil)}},
	}
	return &ast.BinOp{
		Name:  ";",
		Left:  unused,
		Right: &ast.BinOp{Name: ";", Left: f, Right: call},
	}
}

func TestModuleName(t *testing.T) {
	db := NewMemory(nil)
	got := db.ModuleName("examples/hello.json")
	if !got.Equal(symbols.PathOf("hello")) {
		t.Errorf("Expected hello, got %s", got)
	}
}

func TestLookUpDefinitions(t *testing.T) {
	db := NewMemory(nil)
	root := sampleTree()
	path, err := db.AddModule("hello.json", root)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	defs, err := db.LookUpDefinitions(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if defs.AST != root {
		t.Error("Expected the registered tree")
	}
	if defs.Table.Len() != 3 {
		t.Errorf("Expected 3 definitions, got %d:\n%s", defs.Table.Len(), defs.Table)
	}
	if sym, ok := defs.Table.Lookup(symbols.PathOf("hello", "f", "x")); !ok || sym.Kind != table.SymbolParameter {
		t.Errorf("Expected parameter hello/f/x, got %v", sym)
	}

	_, err = db.LookUpDefinitions(symbols.PathOf("missing"))
	var diag *diagnostics.Diagnostic
	if !errors.As(err, &diag) || diag.Code != diagnostics.ErrModuleNotFound {
		t.Errorf("Expected module not found, got %v", err)
	}
}

func TestFindSymbolUses(t *testing.T) {
	db := NewMemory(nil)
	ctx, _ := db.AddModule("hello.json", sampleTree())

	tests := []struct {
		relative []string
		isNil    bool
		count    int
	}{
		{[]string{"unused"}, false, 0},
		{[]string{"f"}, false, 1},
		{[]string{"f", "x"}, false, 1},
		{[]string{"main"}, true, 0},
		{[]string{"nope"}, true, 0},
	}

	for _, tt := range tests {
		uses, err := db.FindSymbolUses(ctx, symbols.PathOf(tt.relative...))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if (uses == nil) != tt.isNil {
			t.Errorf("%v: expected nil=%v, got %v", tt.relative, tt.isNil, uses)
		}
		if len(uses) != tt.count {
			t.Errorf("%v: expected %d uses, got %d", tt.relative, tt.count, len(uses))
		}
	}
}

func TestDuplicateDefinition(t *testing.T) {
	db := NewMemory(nil)
	root := &ast.BinOp{
		Name:  ";",
		Left:  &ast.Let{Name: "a", Value: ast.I32(1, nil), Info: at("dup", "a")},
		Right: &ast.Let{Name: "a", Value: ast.I32(2, nil), Info: at("dup", "a")},
	}
	if _, err := db.AddModule("dup.json", root); err == nil {
		t.Error("Expected a duplicate definition to be rejected")
	}
}

func TestConcurrentAddModule(t *testing.T) {
	db := NewMemory(nil)
	names := []string{"a.json", "b.json", "c.json", "d.json"}

	var wg sync.WaitGroup
	for _, name := range names {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			db.AddModule(name, ast.I32(0, nil))
		}(name)
	}
	wg.Wait()

	mods := db.Modules()
	if len(mods) != len(names) {
		t.Fatalf("Expected %d modules, got %d", len(names), len(mods))
	}
	if mods[0].String() != "a" || mods[3].String() != "d" {
		t.Errorf("Expected sorted modules, got %v", mods)
	}
	if file, ok := db.Filename(mods[1]); !ok || file != "b.json" {
		t.Errorf("Expected b.json, got %q", file)
	}
}
