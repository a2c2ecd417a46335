// Package externs is the catalogue of builtin operations.
//
// Each builtin has two faces: a native implementation used when the
// interpreter evaluates a call directly, and the metadata the code generator
// needs to emit C++ for it. Both are keyed by the same name and must describe
// the same operation.
package externs

import (
	"sort"
	"sync"

	"tako/internal/types"
)

// Operator describes how the parser binds an extern used infix.
type Operator struct {
	BindingPower int
	RightAssoc   bool
}

// Extern is the code generation metadata for one builtin.
type Extern struct {
	Name     string
	Operator *Operator // nil unless the extern is an operator
	Includes []string  // C++ preamble lines
	Code     string    // inline C++ for the builtin itself
	// ArgProcessor wraps every operand, e.g. std::to_string for ++
	ArgProcessor string
	Flags        []string // linker flags
	Type         types.Type
}

const toStringPreamble = `#include <string>
#include <sstream>
namespace std{
template <typename T>
string to_string(const T& t){
    stringstream out;
    out << t;
    return out.str();
}
string to_string(const bool& t){
    return t ? "true" : "false";
}
}`

var (
	registryOnce sync.Once
	registry     map[string]*Extern
)

func display() types.Type { return types.Variable{Name: "Display"} }
func number() types.Type  { return types.Variable{Name: "Number"} }

func buildRegistry() map[string]*Extern {
	externs := []*Extern{
		{
			Name:     "print",
			Includes: []string{"#include <iostream>"},
			Code:     "([](const auto& x){ std::cout << x; return 0; })",
			Type: types.Function{
				Arguments: map[string]types.Type{"it": types.Value{Of: types.TypeString}},
				Results:   map[string]types.Type{"it": types.Value{Of: types.TypeUnit}},
				Effects:   []string{"stdio"},
			},
		},
		{
			Name:         "++",
			Operator:     &Operator{BindingPower: 48, RightAssoc: false},
			Includes:     []string{toStringPreamble},
			Code:         "+",
			ArgProcessor: "std::to_string",
			Type: types.Function{
				Intros:    map[string]types.Type{"a": display(), "b": display()},
				Arguments: map[string]types.Type{"left": types.Variable{Name: "a"}, "right": types.Variable{Name: "b"}},
				Results:   map[string]types.Type{"it": types.Value{Of: types.TypeString}},
			},
		},
		{
			Name:     "^",
			Operator: &Operator{BindingPower: 90, RightAssoc: true},
			Includes: []string{"#include <cmath>"},
			Code:     "pow",
			Flags:    []string{"-lm"},
			Type: types.Function{
				Intros:    map[string]types.Type{"a": number(), "b": number()},
				Arguments: map[string]types.Type{"left": types.Variable{Name: "a"}, "right": types.Variable{Name: "b"}},
				Results:   map[string]types.Type{"it": types.Variable{Name: "a"}},
			},
		},
		{
			Name: "argc",
			Code: "argc",
			Type: types.Value{Of: types.TypeNumber},
		},
		{
			Name: "argv",
			Code: "([&argv](const int x){return argv[x];})",
			Type: types.Function{
				Arguments: map[string]types.Type{"it": types.Value{Of: types.TypeNumber}},
				Results:   map[string]types.Type{"it": types.Value{Of: types.TypeString}},
			},
		},
	}

	m := make(map[string]*Extern, len(externs))
	for _, ext := range externs {
		m[ext.Name] = ext
	}
	return m
}

// All returns the registry. It is built on first use and never mutated
// afterwards, so callers must treat the entries as read-only.
func All() map[string]*Extern {
	registryOnce.Do(func() {
		registry = buildRegistry()
	})
	return registry
}

// Get looks up one extern by name.
func Get(name string) (*Extern, bool) {
	ext, ok := All()[name]
	return ext, ok
}

// Names returns every builtin name in sorted order.
func Names() []string {
	names := make([]string, 0, len(All()))
	for name := range All() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsOperator reports whether name is an infix extern.
func IsOperator(name string) bool {
	ext, ok := Get(name)
	return ok && ext.Operator != nil
}
