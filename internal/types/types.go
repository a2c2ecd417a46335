// Package types describes the declared types of builtin operations.
//
// A declared type is a small closed union: a concrete Value, a Function
// signature, or a Variable referring to a type parameter introduced by an
// enclosing Function.
package types

import (
	"sort"
	"strings"
)

// Type is the declared type of an extern.
type Type interface {
	String() string
	Equals(other Type) bool

	// isType is a marker method to prevent external implementation
	isType()
}

// TYPE_NAME names a concrete primitive type.
type TYPE_NAME string

const (
	TYPE_UNIT   TYPE_NAME = "()"
	TYPE_STRING TYPE_NAME = "str"
	TYPE_I32    TYPE_NAME = "i32"
	TYPE_F64    TYPE_NAME = "f64"
	TYPE_BOOL   TYPE_NAME = "bool"
	TYPE_NUMBER TYPE_NAME = "Number"
)

// PrimitiveType represents built-in scalar types (i32, str, bool, etc.)
type PrimitiveType struct {
	name TYPE_NAME
}

func NewPrimitive(name TYPE_NAME) *PrimitiveType {
	return &PrimitiveType{name: name}
}

func (p *PrimitiveType) String() string   { return string(p.name) }
func (p *PrimitiveType) Name() TYPE_NAME { return p.name }

var (
	TypeUnit   = NewPrimitive(TYPE_UNIT)
	TypeString = NewPrimitive(TYPE_STRING)
	TypeI32    = NewPrimitive(TYPE_I32)
	TypeF64    = NewPrimitive(TYPE_F64)
	TypeBool   = NewPrimitive(TYPE_BOOL)
	TypeNumber = NewPrimitive(TYPE_NUMBER)
)

// Value is a concrete, fully known type.
type Value struct {
	Of *PrimitiveType
}

func (v Value) String() string { return v.Of.String() }
func (v Value) isType()        {}
func (v Value) Equals(other Type) bool {
	o, ok := other.(Value)
	return ok && o.Of.name == v.Of.name
}

// Variable refers to a type parameter (or, inside an intro, names the
// constraint it must satisfy).
type Variable struct {
	Name string
}

func (v Variable) String() string { return v.Name }
func (v Variable) isType()        {}
func (v Variable) Equals(other Type) bool {
	o, ok := other.(Variable)
	return ok && o.Name == v.Name
}

// Function is a callable signature with named arguments and results.
type Function struct {
	Arguments map[string]Type
	Results   map[string]Type
	Intros    map[string]Type // type parameter -> constraint
	Effects   []string        // ordered, no duplicates
}

func (f Function) isType() {}

func (f Function) String() string {
	var b strings.Builder
	if len(f.Intros) > 0 {
		b.WriteString("<" + fields(f.Intros) + ">")
	}
	b.WriteString("(" + fields(f.Arguments) + ") -> (" + fields(f.Results) + ")")
	if len(f.Effects) > 0 {
		b.WriteString(" !" + strings.Join(f.Effects, ", !"))
	}
	return b.String()
}

func (f Function) Equals(other Type) bool {
	o, ok := other.(Function)
	if !ok {
		return false
	}
	if !sameFields(f.Arguments, o.Arguments) || !sameFields(f.Results, o.Results) || !sameFields(f.Intros, o.Intros) {
		return false
	}
	if len(f.Effects) != len(o.Effects) {
		return false
	}
	for i := range f.Effects {
		if f.Effects[i] != o.Effects[i] {
			return false
		}
	}
	return true
}

// HasEffect reports whether the function declares the given effect.
func (f Function) HasEffect(effect string) bool {
	for _, e := range f.Effects {
		if e == effect {
			return true
		}
	}
	return false
}

func fields(m map[string]Type) string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + ": " + m[name].String()
	}
	return strings.Join(parts, ", ")
}

func sameFields(a, b map[string]Type) bool {
	if len(a) != len(b) {
		return false
	}
	for name, t := range a {
		u, ok := b[name]
		if !ok || !t.Equals(u) {
			return false
		}
	}
	return true
}
