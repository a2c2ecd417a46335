package ast

import (
	"fmt"
	"strconv"

	"tako/internal/source"
)

type LiteralKind int

const (
	INT LiteralKind = iota
	FLOAT
	STRING
	BOOL
	LAMBDA
)

func (k LiteralKind) String() string {
	switch k {
	case INT:
		return "i32"
	case FLOAT:
		return "f64"
	case STRING:
		return "str"
	case BOOL:
		return "bool"
	case LAMBDA:
		return "lambda"
	default:
		return "unknown"
	}
}

// Prim is a primitive literal. The interpreter and the builtins reuse it as
// their runtime value representation.
type Prim struct {
	Kind   LiteralKind
	Int    int32
	Float  float64
	Bool   bool
	Str    string
	Lambda Node // function value, for LAMBDA
	Info
}

func (p *Prim) INode() {}

func I32(n int32, loc *source.Location) *Prim {
	return &Prim{Kind: INT, Int: n, Info: Info{Location: loc}}
}

func F64(f float64, loc *source.Location) *Prim {
	return &Prim{Kind: FLOAT, Float: f, Info: Info{Location: loc}}
}

func Bool(b bool, loc *source.Location) *Prim {
	return &Prim{Kind: BOOL, Bool: b, Info: Info{Location: loc}}
}

func Str(s string, loc *source.Location) *Prim {
	return &Prim{Kind: STRING, Str: s, Info: Info{Location: loc}}
}

func Lambda(node Node, loc *source.Location) *Prim {
	return &Prim{Kind: LAMBDA, Lambda: node, Info: Info{Location: loc}}
}

// Text is the canonical textual form used for string coercion.
func (p *Prim) Text() string {
	switch p.Kind {
	case INT:
		return strconv.FormatInt(int64(p.Int), 10)
	case FLOAT:
		return strconv.FormatFloat(p.Float, 'g', -1, 64)
	case BOOL:
		return strconv.FormatBool(p.Bool)
	case STRING:
		return p.Str
	default:
		return p.String()
	}
}

// String is the debug representation, e.g. I32(5) or Str("hi").
func (p *Prim) String() string {
	switch p.Kind {
	case INT:
		return fmt.Sprintf("I32(%d)", p.Int)
	case FLOAT:
		return fmt.Sprintf("F64(%s)", strconv.FormatFloat(p.Float, 'g', -1, 64))
	case BOOL:
		return fmt.Sprintf("Bool(%t)", p.Bool)
	case STRING:
		return fmt.Sprintf("Str(%q)", p.Str)
	case LAMBDA:
		return fmt.Sprintf("Lambda(%T)", p.Lambda)
	default:
		return "Unknown"
	}
}

// Number returns the numeric value of INT and FLOAT primitives.
func (p *Prim) Number() (float64, bool) {
	switch p.Kind {
	case INT:
		return float64(p.Int), true
	case FLOAT:
		return p.Float, true
	default:
		return 0, false
	}
}
