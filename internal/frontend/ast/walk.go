package ast

// Inspect traverses the tree depth-first in source order, calling f for each
// node. If f returns false the children of that node are skipped.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}

	switch n := node.(type) {
	case *Sym, *Err:
	case *Prim:
		if n.Kind == LAMBDA {
			Inspect(n.Lambda, f)
		}
	case *Apply:
		Inspect(n.Inner, f)
		for _, arg := range n.Args {
			Inspect(arg, f)
		}
	case *Let:
		for _, arg := range n.Args {
			Inspect(arg, f)
		}
		Inspect(n.Value, f)
	case *UnOp:
		Inspect(n.Inner, f)
	case *BinOp:
		Inspect(n.Left, f)
		Inspect(n.Right, f)
	}
}
