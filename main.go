package main

import (
	"flag"
	"fmt"
	"os"

	"tako/internal/compiler"
	"tako/internal/config"
	"tako/internal/console"
)

const version = "0.1.0"

// splitArgs separates compiler arguments from those after the first --,
// which are handed to argc/argv. The split happens before flag parsing
// because flag swallows a -- that directly follows the flags.
func splitArgs(args []string) (compilerArgs, interpreterArgs []string) {
	for i, arg := range args {
		if arg == "--" {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}

func main() {
	opts := config.FromEnv()

	// Define flags
	debug := flag.Bool("d", false, "Enable debug output")
	showVersion := flag.Bool("v", false, "Show version")
	interactive := flag.Bool("i", false, "Start the builtin console")
	flag.IntVar(&opts.Debug, "debug", opts.Debug, "Debug level (1: phases, 2: symbol tables)")
	flag.BoolVar(showVersion, "version", false, "Show version")
	flag.StringVar(&opts.OutputPath, "o", opts.OutputPath, "Output executable (a directory for several inputs)")
	flag.StringVar(&opts.CXX, "cxx", opts.CXX, "C++ compiler")
	flag.BoolVar(&opts.Emit, "emit", opts.Emit, "Print generated C++ instead of building")
	flag.BoolVar(&opts.Keep, "keep", opts.Keep, "Keep generated .cc files next to the executables")
	html := flag.Bool("html", false, "Report diagnostics as HTML")

	flagArgs, interpreterArgs := splitArgs(os.Args[1:])
	flag.CommandLine.Parse(flagArgs)

	// Handle version
	if *showVersion {
		fmt.Printf("Tako compiler version %s\n", version)
		os.Exit(0)
	}
	if *debug && opts.Debug == 0 {
		opts.Debug = 1
	}
	if *html {
		opts.LogFormat = config.HTML
	}

	opts.InterpreterArgs = interpreterArgs
	opts.Files = flag.Args()

	if *interactive {
		os.Exit(console.New(opts).Run())
	}

	if len(opts.Files) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: tako [options] <file.json>... [-- args]")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Compile
	result := compiler.Compile(opts)
	if result.Output != "" {
		fmt.Fprintln(os.Stderr, result.Output)
	}

	// Exit code
	if !result.Success {
		os.Exit(1)
	}
}
