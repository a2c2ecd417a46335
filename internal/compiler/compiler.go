package compiler

import (
	"fmt"
	"os"
	"path/filepath"

	"tako/colors"
	"tako/internal/config"
	"tako/internal/diagnostics"
	"tako/internal/pipeline"
)

// Result of compilation
type Result struct {
	Success bool
	Output  string
	Modules []*pipeline.Module
}

// Compile lowers every input module and builds or emits it, depending on opts
func Compile(opts *config.Options) Result {
	if opts == nil {
		opts = config.Default()
	}
	if len(opts.Files) == 0 {
		return Result{Success: false, Output: "No input files"}
	}

	for _, file := range opts.Files {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			return Result{Success: false, Output: fmt.Sprintf("File not found: %s", file)}
		}
	}

	if opts.OutputPath != "" && !filepath.IsAbs(opts.OutputPath) {
		if absPath, err := filepath.Abs(opts.OutputPath); err == nil {
			opts.OutputPath = absPath
		}
	}

	p := pipeline.New(opts)
	if err := p.Run(); err != nil && !p.Diagnostics.HasErrors() {
		p.Diagnostics.Add(diagnostics.NewError(err.Error()))
	}

	if opts.Debug > 0 {
		p.PrintSummary(os.Stderr)
	}

	result := Result{Success: !p.Diagnostics.HasErrors(), Modules: p.Modules()}
	if opts.LogFormat == config.HTML {
		result.Output = colors.ConvertANSIToHTML(p.Diagnostics.EmitAllToString())
		return result
	}

	p.Diagnostics.EmitAll(os.Stderr)
	return result
}
