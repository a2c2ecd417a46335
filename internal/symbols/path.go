// Package symbols holds qualified definition paths and their flattening
// into identifiers for the generated C++.
package symbols

import (
	"strconv"
	"strings"
)

// Symbol is one scope-qualified segment of a definition path.
type Symbol struct {
	Name string `json:"name"`
}

// New creates a symbol segment.
func New(name string) Symbol {
	return Symbol{Name: name}
}

func (s Symbol) String() string {
	return s.Name
}

// Path identifies a binding uniquely across modules, from the module root
// down to the binding itself.
type Path []Symbol

// PathOf builds a path from plain segment names.
func PathOf(names ...string) Path {
	p := make(Path, len(names))
	for i, n := range names {
		p[i] = New(n)
	}
	return p
}

// Append returns a new path with the extra segments; p is not modified.
func (p Path) Append(names ...string) Path {
	out := make(Path, 0, len(p)+len(names))
	out = append(out, p...)
	for _, n := range names {
		out = append(out, New(n))
	}
	return out
}

// HasPrefix reports whether prefix is a leading sub-path of p.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix) > len(p) {
		return false
	}
	for i := range prefix {
		if p[i] != prefix[i] {
			return false
		}
	}
	return true
}

// Equal reports segment-wise equality.
func (p Path) Equal(other Path) bool {
	return len(p) == len(other) && p.HasPrefix(other)
}

// Key is a stable map key for the path. Segments are quoted, so a segment
// containing "/" cannot make two different paths share a key.
func (p Path) Key() string {
	quoted := make([]string, len(p))
	for i, s := range p {
		quoted[i] = strconv.Quote(s.Name)
	}
	return strings.Join(quoted, "/")
}

func (p Path) String() string {
	names := make([]string, len(p))
	for i, s := range p {
		names[i] = s.Name
	}
	return strings.Join(names, "/")
}
