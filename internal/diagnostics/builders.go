package diagnostics

import (
	"fmt"

	"tako/internal/source"
)

// UndefinedSymbol creates a diagnostic for a binding the database cannot resolve
func UndefinedSymbol(loc *source.Location, name string) *Diagnostic {
	return NewError("undefined symbol: "+name).
		WithCode(ErrUndefinedSymbol).
		WithPrimaryLabel(loc, "no definition found").
		WithHelp("check that the symbol is declared before code generation")
}

// ModuleNotFound creates a diagnostic for a module the database cannot resolve
func ModuleNotFound(module string) *Diagnostic {
	return NewError("module not found: " + module).
		WithCode(ErrModuleNotFound)
}

// UnknownPrefixOperator creates a diagnostic for an unsupported unary operator
func UnknownPrefixOperator(loc *source.Location, op string) *Diagnostic {
	return NewError("unknown prefix operator: "+op).
		WithCode(ErrUnknownPrefixOperator).
		WithPrimaryLabel(loc, "cannot lower '"+op+"'").
		WithNote("supported prefix operators are +, - and !")
}

// UnknownInfixOperator creates a diagnostic for an unsupported binary operator
func UnknownInfixOperator(loc *source.Location, op string) *Diagnostic {
	return NewError("unknown infix operator: "+op).
		WithCode(ErrUnknownInfixOperator).
		WithPrimaryLabel(loc, "cannot lower '"+op+"'")
}

// MalformedLowering reports an internal inconsistency: a node lowered to a
// fragment of the wrong shape.
func MalformedLowering(loc *source.Location, expected, got string) *Diagnostic {
	return NewError(fmt.Sprintf("internal compiler error: expected %s, got %s", expected, got)).
		WithCode(ErrMalformedLowering).
		WithPrimaryLabel(loc, "while lowering this").
		WithNote("this is a bug in the code generator")
}

// FailedParse surfaces a parse recovery node that reached code generation
func FailedParse(loc *source.Location, msg string) *Diagnostic {
	return NewError(msg).
		WithCode(ErrFailedParse).
		WithPrimaryLabel(loc, "failed to parse")
}

// TypeMismatch creates a diagnostic for a builtin receiving a value of the wrong type
func TypeMismatch(loc *source.Location, expected string, found fmt.Stringer) *Diagnostic {
	return NewError("Expected "+expected).
		WithCode(ErrTypeMismatch).
		WithPrimaryLabel(loc, "found "+found.String()).
		WithValue(found)
}

// IndexOutOfRange creates a diagnostic for an argument lookup past the end
func IndexOutOfRange(loc *source.Location, index, length int) *Diagnostic {
	return NewError(fmt.Sprintf("index %d out of range", index)).
		WithCode(ErrIndexOutOfRange).
		WithPrimaryLabel(loc, fmt.Sprintf("only %d argument(s) available", length)).
		WithValue(index)
}

// MissingArgument reports a builtin called with fewer arguments than it reads
func MissingArgument(loc *source.Location, position string) *Diagnostic {
	return NewError(fmt.Sprintf("missing %s argument", position)).
		WithCode(ErrMissingArgument).
		WithPrimaryLabel(loc, "called here")
}

// BuildFailed wraps a toolchain failure for a generated file
func BuildFailed(file string, err error) *Diagnostic {
	d := NewError("build failed: " + err.Error()).WithCode(ErrBuildFailed)
	d.FilePath = file
	return d
}

// UnreadableModule reports a module dump that could not be read or decoded
func UnreadableModule(file string, err error) *Diagnostic {
	d := NewError("cannot load module: " + err.Error()).
		WithCode(ErrUnreadableModule).
		WithHelp("inputs are JSON tree dumps written by the frontend")
	d.FilePath = file
	return d
}
