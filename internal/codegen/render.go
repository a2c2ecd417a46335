package codegen

import (
	"fmt"
	"strings"
)

// Render prints a fragment. indent is written before every line the
// fragment starts: a newline followed by spaces for multi-line output, or ""
// to keep everything on one line. Nested blocks add two spaces.
func Render(code Code, indent string) string {
	switch c := code.(type) {
	case Empty:
		return ""
	case Expr:
		return c.Text
	case Statement:
		return indent + c.Text + ";"
	case Block:
		var b strings.Builder
		b.WriteString("{")
		inner := indent + "  "
		for _, item := range c.Items {
			b.WriteString(Render(item, inner))
		}
		b.WriteString(indent)
		b.WriteString("}")
		return b.String()
	case If:
		return fmt.Sprintf("%sif (%s) %s else %s",
			indent, Render(c.Cond, ""), renderBranch(c.Then, indent), renderBranch(c.Else, indent))
	case Func:
		body := c.Body
		if _, ok := body.(Block); !ok {
			body = Block{Items: []Code{body}}
		}
		args := strings.Join(c.Args, ", ")
		if c.Lambda {
			return fmt.Sprintf("%sconst auto %s = [&](%s) %s;", indent, c.Name, args, Render(body, indent))
		}
		return fmt.Sprintf("%s%s %s(%s) %s", indent, c.ReturnType, c.Name, args, Render(body, indent))
	default:
		panic(fmt.Sprintf("unknown code fragment %T", code))
	}
}

// renderBranch prints one arm of a conditional as a block. A trailing value
// has nowhere to go inside a branch, so it becomes a statement.
func renderBranch(code Code, indent string) string {
	block, ok := code.(Block)
	if !ok {
		block = Block{Items: []Code{code}}
	}
	if n := len(block.Items); n > 0 {
		items := make([]Code, n)
		copy(items, block.Items)
		items[n-1] = demote(items[n-1])
		block = Block{Items: items}
	}
	return Render(block, indent)
}

// Declaration is the forward declaration of a named function.
func Declaration(fn Func) string {
	return fmt.Sprintf("%s %s(%s);", fn.ReturnType, fn.Name, strings.Join(fn.Args, ", "))
}
