package codegen

import "fmt"

// Code is one fragment of generated C++. The set of variants is closed;
// every consumer switches over all of them and panics on anything else.
//
// Inside a Block every item but the last is a side effect. A trailing Expr
// is the value the block yields.
type Code interface {
	isCode()
}

// Empty contributes nothing, e.g. a dead binding.
type Empty struct{}

// Block is a brace-delimited sequence of fragments.
type Block struct {
	Items []Code
}

// Expr is a value-producing expression, rendered without a terminator.
type Expr struct {
	Text string
}

// Statement is a side-effecting line, rendered with a trailing semicolon.
type Statement struct {
	Text string
}

// If is a conditional with both branches.
type If struct {
	Cond Code
	Then Code
	Else Code
}

// Func is a named function definition or, when Lambda is set, a capturing
// closure bound to a local constant.
type Func struct {
	Name       string
	Args       []string
	ReturnType string
	Body       Code
	Lambda     bool
}

func (Empty) isCode()     {}
func (Block) isCode()     {}
func (Expr) isCode()      {}
func (Statement) isCode() {}
func (If) isCode()        {}
func (Func) isCode()      {}

// Kind names the variant, for diagnostics.
func Kind(code Code) string {
	switch code.(type) {
	case Empty:
		return "empty"
	case Block:
		return "block"
	case Expr:
		return "expression"
	case Statement:
		return "statement"
	case If:
		return "conditional"
	case Func:
		return "function"
	default:
		panic(fmt.Sprintf("unknown code fragment %T", code))
	}
}

// Retarget rewrites the value a fragment yields with f and leaves its side
// effects alone. Statements have no value and conditionals are terminal, so
// both come back unchanged. The input is never modified.
func Retarget(code Code, f func(string) Code) Code {
	switch c := code.(type) {
	case Empty:
		return c
	case Expr:
		return f(c.Text)
	case Block:
		if len(c.Items) == 0 {
			return c
		}
		items := make([]Code, len(c.Items))
		copy(items, c.Items)
		items[len(items)-1] = Retarget(items[len(items)-1], f)
		return Block{Items: items}
	case Statement:
		return c
	case If:
		return c
	case Func:
		c.Body = Retarget(c.Body, f)
		return c
	default:
		panic(fmt.Sprintf("unknown code fragment %T", code))
	}
}

// Sequence joins two fragments so that left runs before right. An Expr that
// ends up before something else is demoted to a Statement, which keeps the
// last item of the result as its only possible value.
func Sequence(left, right Code) Code {
	if _, ok := left.(Empty); ok {
		return right
	}
	if _, ok := right.(Empty); ok {
		return left
	}

	lb, leftIsBlock := left.(Block)
	rb, rightIsBlock := right.(Block)
	switch {
	case leftIsBlock && rightIsBlock:
		// Left items are demoted rather than concatenated as they are, so a
		// trailing Expr of the left block cannot read as a second yield.
		items := make([]Code, 0, len(lb.Items)+len(rb.Items))
		for _, item := range lb.Items {
			items = append(items, demote(item))
		}
		return Block{Items: append(items, rb.Items...)}
	case rightIsBlock:
		items := make([]Code, 0, len(rb.Items)+1)
		items = append(items, demote(left))
		return Block{Items: append(items, rb.Items...)}
	case leftIsBlock:
		items := make([]Code, 0, len(lb.Items)+1)
		for _, item := range lb.Items {
			items = append(items, demote(item))
		}
		return Block{Items: append(items, right)}
	default:
		return Block{Items: []Code{demote(left), right}}
	}
}

// demote turns an Expr into the equivalent Statement.
func demote(code Code) Code {
	if e, ok := code.(Expr); ok {
		return Statement{Text: e.Text}
	}
	return code
}

// Return retargets a fragment so its value is returned.
func Return(code Code) Code {
	return Retarget(code, func(e string) Code {
		return Statement{Text: "return " + e}
	})
}
