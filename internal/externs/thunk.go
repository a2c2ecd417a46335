package externs

import (
	"sync"

	"tako/internal/frontend/ast"
)

// Thunk is a deferred argument. It is evaluated at most once; both the
// value and a failure are remembered, so forcing it again is free and
// reports the same result.
type Thunk struct {
	once  sync.Once
	eval  func() (*ast.Prim, error)
	value *ast.Prim
	err   error
}

// NewThunk defers eval until the first Force.
func NewThunk(eval func() (*ast.Prim, error)) *Thunk {
	return &Thunk{eval: eval}
}

// Value wraps an already computed primitive.
func Value(p *ast.Prim) *Thunk {
	t := &Thunk{value: p}
	t.once.Do(func() {})
	return t
}

// Force evaluates the thunk if needed and returns its result.
func (t *Thunk) Force() (*ast.Prim, error) {
	t.once.Do(func() {
		t.value, t.err = t.eval()
		t.eval = nil
	})
	return t.value, t.err
}
