package codegen

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"tako/colors"
	"tako/internal/config"
)

// fallbackCompilers are tried in order when the configured one is missing.
var fallbackCompilers = []string{"c++", "g++", "clang++"}

// BuildOptions configures how to build the executable
type BuildOptions struct {
	Compiler   string   // C++ compiler driver
	Flags      []string // Extra compiler flags, before the source
	LinkFlags  []string // Flags required by the program, after the source
	OutputPath string   // Output executable path
	Debug      bool
	Stdout     io.Writer
	Stderr     io.Writer
}

// DefaultBuildOptions derives build options from the run configuration
func DefaultBuildOptions(opts *config.Options) *BuildOptions {
	if opts == nil {
		opts = config.Default()
	}
	return &BuildOptions{
		Compiler:   opts.CXX,
		Flags:      append([]string{}, opts.CXXFlags...),
		OutputPath: opts.OutputPath,
		Debug:      opts.Debug > 0,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	}
}

// CommandLine returns the compiler arguments for one translation unit.
func (b *BuildOptions) CommandLine(sourcePath string) []string {
	args := []string{"-std=c++17"}
	args = append(args, b.Flags...)
	args = append(args, "-o", b.OutputPath, sourcePath)
	return append(args, b.LinkFlags...)
}

// ResolveCompiler finds an executable C++ driver, preferring the configured one.
func (b *BuildOptions) ResolveCompiler() (string, error) {
	candidates := fallbackCompilers
	if b.Compiler != "" {
		candidates = append([]string{b.Compiler}, fallbackCompilers...)
	}
	for _, candidate := range candidates {
		if path, err := exec.LookPath(candidate); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no C++ compiler found (tried %s); set CXX", strings.Join(candidates, ", "))
}

// WriteSource writes generated code next to the output, creating directories.
func WriteSource(path, src string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// BuildExecutable compiles and links one generated source file.
func BuildExecutable(sourcePath string, opts *BuildOptions) error {
	if opts.OutputPath == "" {
		return fmt.Errorf("output path must be specified")
	}
	compiler, err := opts.ResolveCompiler()
	if err != nil {
		return err
	}

	args := opts.CommandLine(sourcePath)
	if opts.Debug {
		colors.CYAN.Printf("Compiling: %s %v\n", compiler, args)
	}

	cmd := exec.Command(compiler, args...)
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("compilation failed: %w", err)
	}

	if opts.Debug {
		colors.GREEN.Printf("  ✓ Built: %s\n", opts.OutputPath)
	}
	return nil
}
