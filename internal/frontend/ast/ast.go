// Package ast defines the resolved syntax tree handed to the backend.
//
// Trees are produced by the external parser and resolver; the backend only
// reads them. Every node carries an Info with its source location and, once
// resolved, the qualified path of the definition it introduces or refers to.
package ast

import (
	"tako/internal/source"
	"tako/internal/symbols"
)

// Info is the metadata shared by every node.
type Info struct {
	Location  *source.Location
	DefinedAt symbols.Path // nil until resolved
}

func (i *Info) Loc() *source.Location { return i.Location }
func (i *Info) NodeInfo() *Info       { return i }

// Node is the base interface for all AST nodes
type Node interface {
	INode()
	Loc() *source.Location
	NodeInfo() *Info
}

// Sym is a reference to a binding.
type Sym struct {
	Name string
	Info
}

func (s *Sym) INode() {}

// Apply calls Inner with Args. Each argument is a Let so it can carry its own
// parameter list when a callback is passed by value.
type Apply struct {
	Inner Node
	Args  []*Let
	Info
}

func (a *Apply) INode() {}

// Let binds Name to Value. A nil Args means a plain value binding; a non-nil
// (possibly empty) Args makes the binding function-shaped.
type Let struct {
	Name  string
	Value Node
	Args  []*Sym
	Info
}

func (l *Let) INode() {}

// HasParams reports whether the binding declares a parameter list.
func (l *Let) HasParams() bool { return l.Args != nil }

// UnOp is a prefix operator application.
type UnOp struct {
	Name  string
	Inner Node
	Info
}

func (u *UnOp) INode() {}

// BinOp is an infix operator application.
type BinOp struct {
	Name  string
	Left  Node
	Right Node
	Info
}

func (b *BinOp) INode() {}

// Err is a parse recovery node standing in for a subtree that failed to parse.
type Err struct {
	Msg string
	Info
}

func (e *Err) INode() {}
