package diagnostics

// Error codes for the tako backend
const (
	// Parser errors (P prefix). Recovery nodes carry these through to codegen.
	ErrFailedParse = "P0010"

	// Type errors (T prefix), raised while evaluating builtins
	ErrTypeMismatch    = "T0001"
	ErrUndefinedSymbol = "T0002"
	ErrMissingArgument = "T0003"
	ErrIndexOutOfRange = "T0009"

	// Module errors (M prefix)
	ErrModuleNotFound   = "M0001"
	ErrUnreadableModule = "M0002"

	// Code generation errors (C prefix)
	ErrUnknownPrefixOperator = "C0001"
	ErrUnknownInfixOperator  = "C0002"
	ErrMalformedLowering     = "C0003"

	// Build errors (B prefix)
	ErrBuildFailed = "B0001"
)
