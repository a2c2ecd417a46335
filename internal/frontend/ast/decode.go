package ast

import (
	"encoding/json"
	"fmt"

	"tako/internal/source"
	"tako/internal/symbols"
)

// rawNode is the JSON shape of a dumped tree, as written by the frontend's
// --dump-ast mode. One struct covers every kind; unused fields stay empty.
type rawNode struct {
	Kind      string           `json:"kind"`
	Name      string           `json:"name,omitempty"`
	Msg       string           `json:"msg,omitempty"`
	Value     json.RawMessage  `json:"value,omitempty"`
	Inner     *rawNode         `json:"inner,omitempty"`
	Left      *rawNode         `json:"left,omitempty"`
	Right     *rawNode         `json:"right,omitempty"`
	Args      *[]*rawNode      `json:"args,omitempty"`
	Loc       *source.Location `json:"loc,omitempty"`
	DefinedAt []string         `json:"defined_at,omitempty"`
}

// Decode reads a JSON tree dump. Nodes without a filename in their location
// are attributed to filename, so every binding can be traced to its module.
func Decode(filename string, data []byte) (Node, error) {
	var raw rawNode
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filename, err)
	}
	d := decoder{filename: filename}
	return d.node(&raw)
}

type decoder struct {
	filename string
}

func (d *decoder) info(raw *rawNode) Info {
	loc := raw.Loc
	if loc == nil {
		loc = &source.Location{}
	}
	if loc.Filename == nil {
		name := d.filename
		loc.Filename = &name
	}
	info := Info{Location: loc}
	if raw.DefinedAt != nil {
		info.DefinedAt = symbols.PathOf(raw.DefinedAt...)
	}
	return info
}

func (d *decoder) node(raw *rawNode) (Node, error) {
	if raw == nil {
		return nil, fmt.Errorf("decode %s: missing node", d.filename)
	}

	info := d.info(raw)
	switch raw.Kind {
	case "sym":
		return &Sym{Name: raw.Name, Info: info}, nil
	case "i32", "f64", "bool", "str", "lambda":
		return d.prim(raw, info)
	case "apply":
		inner, err := d.node(raw.Inner)
		if err != nil {
			return nil, err
		}
		apply := &Apply{Inner: inner, Info: info}
		if raw.Args != nil {
			for _, a := range *raw.Args {
				arg, err := d.let(a)
				if err != nil {
					return nil, err
				}
				apply.Args = append(apply.Args, arg)
			}
		}
		return apply, nil
	case "let":
		return d.let(raw)
	case "unop":
		inner, err := d.node(raw.Inner)
		if err != nil {
			return nil, err
		}
		return &UnOp{Name: raw.Name, Inner: inner, Info: info}, nil
	case "binop":
		left, err := d.node(raw.Left)
		if err != nil {
			return nil, err
		}
		right, err := d.node(raw.Right)
		if err != nil {
			return nil, err
		}
		return &BinOp{Name: raw.Name, Left: left, Right: right, Info: info}, nil
	case "error":
		return &Err{Msg: raw.Msg, Info: info}, nil
	default:
		return nil, fmt.Errorf("decode %s: unknown node kind %q", d.filename, raw.Kind)
	}
}

func (d *decoder) let(raw *rawNode) (*Let, error) {
	if raw == nil || raw.Kind != "let" {
		return nil, fmt.Errorf("decode %s: expected let node", d.filename)
	}
	var valueRaw rawNode
	if err := json.Unmarshal(raw.Value, &valueRaw); err != nil {
		return nil, fmt.Errorf("decode %s: let %s: %w", d.filename, raw.Name, err)
	}
	value, err := d.node(&valueRaw)
	if err != nil {
		return nil, err
	}

	let := &Let{Name: raw.Name, Value: value, Info: d.info(raw)}
	if raw.Args != nil {
		let.Args = make([]*Sym, 0, len(*raw.Args))
		for _, a := range *raw.Args {
			if a == nil || a.Kind != "sym" {
				return nil, fmt.Errorf("decode %s: let %s: parameters must be symbols", d.filename, raw.Name)
			}
			let.Args = append(let.Args, &Sym{Name: a.Name, Info: d.info(a)})
		}
	}
	return let, nil
}

func (d *decoder) prim(raw *rawNode, info Info) (Node, error) {
	p := &Prim{Info: info}
	var err error
	switch raw.Kind {
	case "i32":
		p.Kind = INT
		err = json.Unmarshal(raw.Value, &p.Int)
	case "f64":
		p.Kind = FLOAT
		err = json.Unmarshal(raw.Value, &p.Float)
	case "bool":
		p.Kind = BOOL
		err = json.Unmarshal(raw.Value, &p.Bool)
	case "str":
		p.Kind = STRING
		err = json.Unmarshal(raw.Value, &p.Str)
	case "lambda":
		p.Kind = LAMBDA
		var inner rawNode
		if err = json.Unmarshal(raw.Value, &inner); err == nil {
			p.Lambda, err = d.node(&inner)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %s literal: %w", d.filename, raw.Kind, err)
	}
	return p, nil
}
