package pipeline

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"tako/internal/config"
	"tako/internal/diagnostics"
	"tako/internal/phase"
)

const helloDump = `{"kind": "apply",
 "inner": {"kind": "sym", "name": "print", "defined_at": ["print"]},
 "args": [{"kind": "let", "name": "it", "value": {"kind": "str", "value": "hi"}}]}`

const powDump = `{"kind": "binop", "name": "^",
 "left": {"kind": "i32", "value": 3},
 "right": {"kind": "i32", "value": 2}}`

const badOpDump = `{"kind": "unop", "name": "~", "inner": {"kind": "i32", "value": 1},
 "loc": {"start": {"line": 1, "column": 1}, "end": {"line": 1, "column": 2}}}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create %s: %v", name, err)
	}
	return path
}

func emitOptions(files ...string) (*config.Options, *bytes.Buffer) {
	var buf bytes.Buffer
	opts := config.Default()
	opts.Files = files
	opts.Emit = true
	opts.Stdout = &buf
	return opts, &buf
}

func TestPipelineEmit(t *testing.T) {
	tmpDir := t.TempDir()
	hello := writeFile(t, tmpDir, "hello.json", helloDump)

	opts, out := emitOptions(hello)
	p := New(opts)
	if err := p.Run(); err != nil {
		t.Fatalf("Pipeline failed: %v\n%s", err, p.Diagnostics.EmitAllToString())
	}

	if !strings.Contains(out.String(), `std::cout << x; return 0; })("hi");`) {
		t.Errorf("Expected the generated program on stdout, got:\n%s", out.String())
	}
	mod, ok := p.Module(hello)
	if !ok {
		t.Fatal("Expected the module to be registered")
	}
	if mod.Phase != phase.PhaseLowered {
		t.Errorf("Expected PhaseLowered, got %s", mod.Phase)
	}
	if mod.Path.String() != "hello" {
		t.Errorf("Expected module hello, got %s", mod.Path)
	}
}

func TestPrintSummary(t *testing.T) {
	tmpDir := t.TempDir()
	hello := writeFile(t, tmpDir, "hello.json", helloDump)
	pow := writeFile(t, tmpDir, "pow.json", powDump)

	opts, _ := emitOptions(hello, pow)
	p := New(opts)
	if err := p.Run(); err != nil {
		t.Fatalf("Pipeline failed: %v", err)
	}

	var buf bytes.Buffer
	p.PrintSummary(&buf)
	summary := buf.String()
	if !strings.Contains(summary, "Total: 2 modules") {
		t.Errorf("Expected a module count in the summary, got:\n%s", summary)
	}
	if !strings.Contains(summary, " - hello ("+hello+") Lowered") {
		t.Errorf("Expected the hello module line, got:\n%s", summary)
	}
}

// One module failing to lower must not stop the others.
func TestPipelineIsolatesModuleFailures(t *testing.T) {
	tmpDir := t.TempDir()
	good := writeFile(t, tmpDir, "good.json", powDump)
	bad := writeFile(t, tmpDir, "bad.json", badOpDump)

	opts, out := emitOptions(good, bad)
	p := New(opts)
	if err := p.Run(); err == nil {
		t.Fatal("Expected the run to fail")
	}

	diags := p.Diagnostics.Diagnostics()
	if len(diags) != 1 || diags[0].Code != diagnostics.ErrUnknownPrefixOperator {
		t.Fatalf("Expected one unknown prefix operator error, got %v", diags)
	}
	if !strings.Contains(out.String(), "// good") || !strings.Contains(out.String(), "pow(3, 2)") {
		t.Errorf("Expected the good module to be emitted, got:\n%s", out.String())
	}
	if mod, _ := p.Module(bad); mod.Phase != phase.PhaseIndexed {
		t.Errorf("Expected the failing module to stay Indexed, got %s", mod.Phase)
	}
}

func TestPipelineLoadErrors(t *testing.T) {
	tmpDir := t.TempDir()
	broken := writeFile(t, tmpDir, "broken.json", `{"kind": "nope"}`)
	missing := filepath.Join(tmpDir, "missing.json")

	opts, _ := emitOptions(broken, missing, broken)
	p := New(opts)
	if err := p.Run(); err == nil {
		t.Fatal("Expected loading to fail")
	}
	if got := p.Diagnostics.ErrorCount(); got != 2 {
		t.Errorf("Expected 2 errors (duplicate input loaded once), got %d", got)
	}
	for _, d := range p.Diagnostics.Diagnostics() {
		if d.Code != diagnostics.ErrUnreadableModule {
			t.Errorf("Expected %s, got %s", diagnostics.ErrUnreadableModule, d.Code)
		}
	}
}

func TestPipelineDuplicateModuleName(t *testing.T) {
	first := writeFile(t, t.TempDir(), "hello.json", helloDump)
	second := writeFile(t, t.TempDir(), "hello.json", helloDump)

	opts, _ := emitOptions(first, second)
	p := New(opts)
	if err := p.Run(); err == nil {
		t.Fatal("Expected a duplicate module to be rejected")
	}
	diags := p.Diagnostics.Diagnostics()
	if len(diags) != 1 || !strings.Contains(diags[0].Message, "already loaded") {
		t.Errorf("Expected one duplicate module error, got %v", diags)
	}
}

func TestPipelineNoInputs(t *testing.T) {
	if err := New(config.Default()).Run(); err == nil {
		t.Error("Expected an error without input files")
	}
}

func TestOutputFor(t *testing.T) {
	opts := config.Default()
	opts.Files = []string{"src/hello.json"}
	p := New(opts)
	mod := &Module{File: "src/hello.json"}

	if got := p.outputFor(mod); got != filepath.Join("src", "hello") {
		t.Errorf("Expected src/hello, got %s", got)
	}
	opts.OutputPath = "bin/app"
	if got := p.outputFor(mod); got != "bin/app" {
		t.Errorf("Expected bin/app, got %s", got)
	}
	opts.Files = append(opts.Files, "src/other.json")
	if got := p.outputFor(mod); got != filepath.Join("bin/app", "hello") {
		t.Errorf("Expected bin/app/hello, got %s", got)
	}
}

// fakeCompiler installs a shell script that records its arguments and
// creates the requested output file.
func fakeCompiler(t *testing.T, exitCode int) (string, string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake compiler needs a POSIX shell")
	}
	dir := t.TempDir()
	logPath := filepath.Join(dir, "args.log")
	script := "#!/bin/sh\n" +
		"echo \"$@\" > " + logPath + "\n" +
		"while [ $# -gt 0 ]; do if [ \"$1\" = \"-o\" ]; then shift; touch \"$1\"; fi; shift; done\n" +
		"exit " + string(rune('0'+exitCode)) + "\n"
	path := writeFile(t, dir, "fakecxx", script)
	if err := os.Chmod(path, 0755); err != nil {
		t.Fatal(err)
	}
	return path, logPath
}

func TestPipelineBuild(t *testing.T) {
	cxx, logPath := fakeCompiler(t, 0)
	tmpDir := t.TempDir()
	input := writeFile(t, tmpDir, "power.json", powDump)

	opts := config.Default()
	opts.Files = []string{input}
	opts.CXX = cxx
	opts.CXXFlags = []string{"-O1"}
	p := New(opts)
	if err := p.Run(); err != nil {
		t.Fatalf("Pipeline failed: %v\n%s", err, p.Diagnostics.EmitAllToString())
	}

	mod, _ := p.Module(input)
	if mod.Phase != phase.PhaseBuilt {
		t.Errorf("Expected PhaseBuilt, got %s", mod.Phase)
	}
	if _, err := os.Stat(mod.Executable); err != nil {
		t.Errorf("Expected the executable at %s: %v", mod.Executable, err)
	}
	if _, err := os.Stat(mod.SourcePath); !os.IsNotExist(err) {
		t.Errorf("Expected the generated source to be removed, got %v", err)
	}

	args, _ := os.ReadFile(logPath)
	expected := "-std=c++17 -O1 -o " + mod.Executable + " " + mod.SourcePath + " -lm"
	if strings.TrimSpace(string(args)) != expected {
		t.Errorf("Expected compiler args %q, got %q", expected, strings.TrimSpace(string(args)))
	}
}

func TestPipelineBuildKeepsSource(t *testing.T) {
	cxx, _ := fakeCompiler(t, 0)
	input := writeFile(t, t.TempDir(), "power.json", powDump)

	opts := config.Default()
	opts.Files = []string{input}
	opts.CXX = cxx
	opts.Keep = true
	p := New(opts)
	if err := p.Run(); err != nil {
		t.Fatalf("Pipeline failed: %v", err)
	}

	mod, _ := p.Module(input)
	data, err := os.ReadFile(mod.SourcePath)
	if err != nil {
		t.Fatalf("Expected the kept source: %v", err)
	}
	if !strings.HasPrefix(string(data), "#include <cmath>\n") {
		t.Errorf("Expected the generated program, got:\n%s", data)
	}
}

func TestPipelineBuildFailure(t *testing.T) {
	cxx, _ := fakeCompiler(t, 1)
	input := writeFile(t, t.TempDir(), "power.json", powDump)

	opts := config.Default()
	opts.Files = []string{input}
	opts.CXX = cxx
	p := New(opts)
	err := p.Run()
	if err == nil {
		t.Fatal("Expected the build to fail")
	}

	var diag *diagnostics.Diagnostic
	found := false
	for _, d := range p.Diagnostics.Diagnostics() {
		if errors.As(d, &diag) && diag.Code == diagnostics.ErrBuildFailed {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a build failure diagnostic, got %v", p.Diagnostics.Diagnostics())
	}
	mod, _ := p.Module(input)
	if mod.Phase != phase.PhaseWritten {
		t.Errorf("Expected PhaseWritten, got %s", mod.Phase)
	}
}
