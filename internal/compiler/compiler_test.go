package compiler

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tako/internal/config"
	"tako/internal/phase"
)

const helloDump = `{"kind": "apply",
 "inner": {"kind": "sym", "name": "print", "defined_at": ["print"]},
 "args": [{"kind": "let", "name": "it", "value": {"kind": "str", "value": "hello"}}]}`

const badOpDump = `{"kind": "unop", "name": "~", "inner": {"kind": "i32", "value": 1},
 "loc": {"start": {"line": 1, "column": 1}, "end": {"line": 1, "column": 2}}}`

func writeModule(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	return path
}

func emitOptions(format config.FORMAT, files ...string) (*config.Options, *bytes.Buffer) {
	var buf bytes.Buffer
	opts := config.Default()
	opts.Files = files
	opts.Emit = true
	opts.Stdout = &buf
	opts.LogFormat = format
	return opts, &buf
}

func TestCompile_NoInputs(t *testing.T) {
	result := Compile(config.Default())

	if result.Success {
		t.Error("Expected failure without input files")
	}
	if result.Output != "No input files" {
		t.Errorf("Expected 'No input files', got %q", result.Output)
	}
}

func TestCompile_FileMode_NonExistentFile(t *testing.T) {
	opts, _ := emitOptions(config.ANSI, "/nonexistent/file.json")

	result := Compile(opts)

	if result.Success {
		t.Error("Expected compilation failure for non-existent file")
	}
	if !strings.Contains(result.Output, "File not found") {
		t.Errorf("Expected 'File not found' error, got: %s", result.Output)
	}
}

func TestCompile_FileMode_ValidFile(t *testing.T) {
	hello := writeModule(t, "hello.json", helloDump)
	opts, out := emitOptions(config.ANSI, hello)

	result := Compile(opts)

	if !result.Success {
		t.Fatalf("Expected successful compilation, got: %s", result.Output)
	}
	if !strings.Contains(out.String(), "int main(int argc, char* argv[])") {
		t.Errorf("Expected an emitted entry point, got:\n%s", out.String())
	}
	if len(result.Modules) != 1 {
		t.Fatalf("Expected 1 module, got %d", len(result.Modules))
	}
	if result.Modules[0].Phase != phase.PhaseLowered {
		t.Errorf("Expected PhaseLowered, got %s", result.Modules[0].Phase)
	}
}

func TestCompile_HTMLFormatWithError(t *testing.T) {
	bad := writeModule(t, "bad.json", badOpDump)
	opts, _ := emitOptions(config.HTML, bad)

	result := Compile(opts)

	if result.Success {
		t.Error("Expected compilation failure for an unknown operator")
	}
	if !strings.Contains(result.Output, "<span") {
		t.Errorf("Expected HTML output, got: %s", result.Output)
	}
	if !strings.Contains(result.Output, "unknown prefix operator") {
		t.Errorf("Expected the operator error in the output, got: %s", result.Output)
	}
	if strings.Contains(result.Output, "\033[") {
		t.Error("HTML output should not contain ANSI escape codes")
	}
}

func TestCompile_HTMLFormatSuccess(t *testing.T) {
	hello := writeModule(t, "hello.json", helloDump)
	opts, _ := emitOptions(config.HTML, hello)

	result := Compile(opts)

	if !result.Success {
		t.Errorf("Expected successful compilation, got: %s", result.Output)
	}
	if result.Output != "" {
		t.Errorf("Expected no diagnostics for a clean module, got: %s", result.Output)
	}
}

func TestCompile_RelativeOutputPath(t *testing.T) {
	hello := writeModule(t, "hello.json", helloDump)
	opts, _ := emitOptions(config.ANSI, hello)
	opts.OutputPath = filepath.Join("bin", "hello")

	Compile(opts)

	if !filepath.IsAbs(opts.OutputPath) {
		t.Errorf("Expected the output path to be made absolute, got %s", opts.OutputPath)
	}
}
