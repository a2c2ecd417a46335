package diagnostics

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"tako/colors"
)

const (
	compileFailedMsg          = "\nCompilation failed with %d error(s)"
	andWarningMsg             = " and %d warning(s)"
	compileSuccessWithWarning = "\nCompilation succeeded with %d warning(s)\n"
)

// DiagnosticBag collects diagnostics during compilation
type DiagnosticBag struct {
	diagnostics []*Diagnostic
	mu          sync.Mutex
	errorCount  int
	warnCount   int
	sourceCache *SourceCache
}

// NewDiagnosticBag creates a new, empty diagnostic bag
func NewDiagnosticBag() *DiagnosticBag {
	return &DiagnosticBag{
		diagnostics: make([]*Diagnostic, 0),
		sourceCache: NewSourceCache(),
	}
}

// AddSourceContent adds source content for a file path (for in-memory compilation)
func (db *DiagnosticBag) AddSourceContent(filepath, content string) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.sourceCache.AddSource(filepath, content)
}

// Add adds a diagnostic to the bag
func (db *DiagnosticBag) Add(diag *Diagnostic) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.diagnostics = append(db.diagnostics, diag)

	switch diag.Severity {
	case Error:
		db.errorCount++
	case Warning:
		db.warnCount++
	}
}

// AddError records err, keeping its diagnostic if it carries one.
func (db *DiagnosticBag) AddError(err error) {
	if err == nil {
		return
	}
	var diag *Diagnostic
	if errors.As(err, &diag) {
		db.Add(diag)
		return
	}
	db.Add(NewError(err.Error()))
}

// HasErrors returns true if there are any errors
func (db *DiagnosticBag) HasErrors() bool {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.errorCount > 0
}

// ErrorCount returns the number of errors
func (db *DiagnosticBag) ErrorCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.errorCount
}

// WarningCount returns the number of warnings
func (db *DiagnosticBag) WarningCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.warnCount
}

// Diagnostics returns a copy of all diagnostics
func (db *DiagnosticBag) Diagnostics() []*Diagnostic {
	db.mu.Lock()
	defer db.mu.Unlock()
	result := make([]*Diagnostic, len(db.diagnostics))
	copy(result, db.diagnostics)
	return result
}

// EmitAll renders every diagnostic and the summary to w
func (db *DiagnosticBag) EmitAll(w io.Writer) {
	db.mu.Lock()
	emitter := &Emitter{cache: db.sourceCache, writer: w}
	diagnostics := make([]*Diagnostic, len(db.diagnostics))
	copy(diagnostics, db.diagnostics)
	db.mu.Unlock()

	for _, diag := range diagnostics {
		emitter.Emit(diag)
	}

	db.printSummary(w)
}

// EmitAllToString emits all diagnostics to a string with ANSI codes
func (db *DiagnosticBag) EmitAllToString() string {
	var buf bytes.Buffer
	db.EmitAll(&buf)
	return buf.String()
}

// EmitAllToHTML emits all diagnostics to an HTML string
func (db *DiagnosticBag) EmitAllToHTML() string {
	return colors.ConvertANSIToHTML(db.EmitAllToString())
}

func (db *DiagnosticBag) printSummary(w io.Writer) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.errorCount > 0 {
		colors.RED.Fprintf(w, compileFailedMsg, db.errorCount)
		if db.warnCount > 0 {
			colors.RED.Fprintf(w, andWarningMsg, db.warnCount)
		}
		fmt.Fprintln(w)
	} else if db.warnCount > 0 {
		colors.ORANGE.Fprintf(w, compileSuccessWithWarning, db.warnCount)
	}
}

// Clear removes all diagnostics
func (db *DiagnosticBag) Clear() {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.diagnostics = make([]*Diagnostic, 0)
	db.errorCount = 0
	db.warnCount = 0
}
