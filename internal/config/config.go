// Package config holds the process-wide options shared by the code
// generator, the natives and the build step.
package config

import (
	"io"
	"os"
	"strings"

	"github.com/xyproto/env/v2"
)

type FORMAT int

const (
	ANSI FORMAT = iota
	HTML
)

// Options for one compiler run
type Options struct {
	// Input AST dumps, one module per file
	Files []string
	// Arguments visible to argc/argv when builtins are evaluated natively
	InterpreterArgs []string
	// Debug verbosity; 0 is quiet, 1 traces phases, 2 also dumps tables
	Debug int
	// Where natives such as print write
	Stdout io.Writer
	// Toolchain
	CXX      string
	CXXFlags []string
	// Output executable path (if empty, derived from the first input file)
	OutputPath string
	// Keep the generated .cc file after a successful build
	Keep bool
	// Print the generated C++ instead of building it
	Emit bool
	// Diagnostics rendering
	LogFormat FORMAT
}

// Default returns options with the process stdout and the system C++ compiler.
func Default() *Options {
	return &Options{
		Stdout: os.Stdout,
		CXX:    "c++",
	}
}

// FromEnv layers TAKO_* and CXX environment variables over the defaults.
// Command line flags are applied on top by the caller.
func FromEnv() *Options {
	env.Load()
	opts := Default()
	opts.Debug = env.Int("TAKO_DEBUG", 0)
	opts.OutputPath = env.Str("TAKO_OUT")
	opts.CXX = env.Str("CXX", opts.CXX)
	opts.CXXFlags = strings.Fields(env.Str("TAKO_CXXFLAGS"))
	opts.Keep = env.Bool("TAKO_KEEP")
	return opts
}

// Out returns the writer natives should print to.
func (o *Options) Out() io.Writer {
	if o == nil || o.Stdout == nil {
		return os.Stdout
	}
	return o.Stdout
}
