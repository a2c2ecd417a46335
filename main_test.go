package main

import (
	"flag"
	"reflect"
	"testing"
)

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		compiler    []string
		interpreter []string
	}{
		{"no separator", []string{"-emit", "a.json"}, []string{"-emit", "a.json"}, nil},
		{"console args", []string{"-i", "--", "hello", "world"}, []string{"-i"}, []string{"hello", "world"}},
		{"files then args", []string{"-emit", "a.json", "--", "x"}, []string{"-emit", "a.json"}, []string{"x"}},
		{"only the first separator", []string{"--", "a", "--", "b"}, []string{}, []string{"a", "--", "b"}},
		{"trailing separator", []string{"a.json", "--"}, []string{"a.json"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compiler, interpreter := splitArgs(tt.args)
			if len(compiler) != len(tt.compiler) || (len(compiler) > 0 && !reflect.DeepEqual(compiler, tt.compiler)) {
				t.Errorf("Expected compiler args %v, got %v", tt.compiler, compiler)
			}
			if len(interpreter) != len(tt.interpreter) || (len(interpreter) > 0 && !reflect.DeepEqual(interpreter, tt.interpreter)) {
				t.Errorf("Expected interpreter args %v, got %v", tt.interpreter, interpreter)
			}
		})
	}
}

// The console flag followed by -- must keep every argument for argv.
func TestSplitArgsSurvivesFlagParsing(t *testing.T) {
	fs := flag.NewFlagSet("tako", flag.ContinueOnError)
	interactive := fs.Bool("i", false, "")

	compiler, interpreter := splitArgs([]string{"-i", "--", "hello", "world"})
	if err := fs.Parse(compiler); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !*interactive {
		t.Error("Expected -i to be parsed")
	}
	if len(fs.Args()) != 0 {
		t.Errorf("Expected no input files, got %v", fs.Args())
	}
	if !reflect.DeepEqual(interpreter, []string{"hello", "world"}) {
		t.Errorf("Expected interpreter args [hello world], got %v", interpreter)
	}
}
