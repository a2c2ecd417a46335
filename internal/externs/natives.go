package externs

import (
	"fmt"
	"math"

	"tako/internal/config"
	"tako/internal/diagnostics"
	"tako/internal/frontend/ast"
	"tako/internal/source"
	"tako/internal/utils/numeric"
)

// Context is what a native can see of the running compiler.
type Context interface {
	Options() *config.Options
}

// Native evaluates a builtin. Arguments are deferred; each native forces
// exactly the ones it needs, in the order it needs them.
type Native func(ctx Context, args []*Thunk, loc *source.Location) (*ast.Prim, error)

var natives = map[string]Native{
	"print": nativePrint,
	"++":    nativeConcat,
	"^":     nativePow,
	"argc":  nativeArgc,
	"argv":  nativeArgv,
}

// Lookup returns the native implementation of a builtin.
func Lookup(name string) (Native, bool) {
	fn, ok := natives[name]
	return fn, ok
}

// arg forces the i-th argument, reporting a missing one at the call site.
func arg(args []*Thunk, i int, loc *source.Location) (*ast.Prim, error) {
	if i >= len(args) {
		return nil, diagnostics.MissingArgument(loc, numeric.NumericToOrdinal(i+1))
	}
	return args[i].Force()
}

func nativePrint(ctx Context, args []*Thunk, loc *source.Location) (*ast.Prim, error) {
	val, err := arg(args, 0, loc)
	if err != nil {
		return nil, err
	}
	out := ctx.Options().Out()
	if val.Kind == ast.STRING {
		fmt.Fprint(out, val.Str)
	} else {
		fmt.Fprint(out, val.String())
	}
	return ast.I32(0, loc), nil
}

func nativeConcat(_ Context, args []*Thunk, loc *source.Location) (*ast.Prim, error) {
	left, err := arg(args, 0, loc)
	if err != nil {
		return nil, err
	}
	right, err := arg(args, 1, loc)
	if err != nil {
		return nil, err
	}
	return ast.Str(left.Text()+right.Text(), loc), nil
}

func nativePow(_ Context, args []*Thunk, loc *source.Location) (*ast.Prim, error) {
	base, err := arg(args, 0, loc)
	if err != nil {
		return nil, err
	}
	exp, err := arg(args, 1, loc)
	if err != nil {
		return nil, err
	}
	b, ok := base.Number()
	if !ok {
		return nil, diagnostics.TypeMismatch(loc, "base to be a number", base)
	}
	e, ok := exp.Number()
	if !ok {
		return nil, diagnostics.TypeMismatch(loc, "exponent to be a number", exp)
	}
	return ast.F64(math.Pow(b, e), loc), nil
}

func nativeArgc(ctx Context, _ []*Thunk, loc *source.Location) (*ast.Prim, error) {
	return ast.I32(int32(len(ctx.Options().InterpreterArgs)), loc), nil
}

func nativeArgv(ctx Context, args []*Thunk, loc *source.Location) (*ast.Prim, error) {
	val, err := arg(args, 0, loc)
	if err != nil {
		return nil, err
	}
	if val.Kind != ast.INT {
		return nil, diagnostics.TypeMismatch(loc, "index to be of type i32", val)
	}
	argv := ctx.Options().InterpreterArgs
	if val.Int < 0 || int(val.Int) >= len(argv) {
		return nil, diagnostics.IndexOutOfRange(loc, int(val.Int), len(argv))
	}
	return ast.Str(argv[val.Int], loc), nil
}
