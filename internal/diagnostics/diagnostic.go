package diagnostics

import (
	"strings"

	"tako/internal/source"
)

// Severity represents the severity level of a diagnostic
type Severity int

const (
	Error Severity = iota
	Warning
	Info
	Hint
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	case Hint:
		return "hint"
	default:
		return "unknown"
	}
}

// Label represents a labeled section of code in a diagnostic
type Label struct {
	Location *source.Location
	Message  string
	Style    LabelStyle
}

type LabelStyle int

const (
	Primary   LabelStyle = iota // The main error location (uses ^^^)
	Secondary                   // Additional context (uses ---)
)

// Note represents additional information attached to a diagnostic
type Note struct {
	Message string
}

// Diagnostic represents a compiler diagnostic (error, warning, etc.)
//
// A *Diagnostic is also an error, so lowering and native evaluation return
// it directly and callers recover it with errors.As.
type Diagnostic struct {
	Severity Severity
	Message  string
	Code     string // Error code like "C0001"
	FilePath string // Source file for this diagnostic
	Labels   []Label
	Notes    []Note
	Help     string // Suggestion for fixing the error
	Value    any    // Offending runtime value, if the failure is about one
}

// NewError creates a new error diagnostic
func NewError(message string) *Diagnostic {
	return &Diagnostic{
		Severity: Error,
		Message:  message,
		Labels:   make([]Label, 0),
		Notes:    make([]Note, 0),
	}
}

// NewWarning creates a new warning diagnostic
func NewWarning(message string) *Diagnostic {
	return &Diagnostic{
		Severity: Warning,
		Message:  message,
		Labels:   make([]Label, 0),
		Notes:    make([]Note, 0),
	}
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	var b strings.Builder
	b.WriteString(d.Severity.String())
	if d.Code != "" {
		b.WriteString("[" + d.Code + "]")
	}
	b.WriteString(": ")
	b.WriteString(d.Message)
	if loc := d.Location(); loc != nil {
		b.WriteString(" at ")
		b.WriteString(loc.String())
	}
	return b.String()
}

// Location returns the primary label's location, or nil.
func (d *Diagnostic) Location() *source.Location {
	for _, label := range d.Labels {
		if label.Style == Primary {
			return label.Location
		}
	}
	return nil
}

// WithCode sets the error code
func (d *Diagnostic) WithCode(code string) *Diagnostic {
	d.Code = code
	return d
}

// WithLabel adds a labeled location to the diagnostic
func (d *Diagnostic) WithLabel(filepath string, loc *source.Location, message string, style LabelStyle) *Diagnostic {
	if d.FilePath == "" {
		d.FilePath = filepath
	}
	d.Labels = append(d.Labels, Label{
		Location: loc,
		Message:  message,
		Style:    style,
	})
	return d
}

// WithPrimaryLabel adds a primary labeled location
// Must be called before any WithSecondaryLabel calls
func (d *Diagnostic) WithPrimaryLabel(loc *source.Location, message string) *Diagnostic {
	if loc == nil {
		return d
	}
	for _, label := range d.Labels {
		if label.Style == Primary {
			return d
		}
	}
	if len(d.Labels) > 0 {
		d.Labels = append([]Label{{Location: loc, Message: message, Style: Primary}}, d.Labels...)
		if d.FilePath == "" {
			d.FilePath = loc.File()
		}
		return d
	}
	return d.WithLabel(loc.File(), loc, message, Primary)
}

// WithSecondaryLabel adds a secondary labeled location.
// Primary label must exist before adding secondary labels.
func (d *Diagnostic) WithSecondaryLabel(loc *source.Location, message string) *Diagnostic {
	if d.Location() == nil {
		panic("Cannot add secondary label without primary label. Call WithPrimaryLabel first.")
	}
	return d.WithLabel(loc.File(), loc, message, Secondary)
}

// WithNote adds a note to the diagnostic
func (d *Diagnostic) WithNote(message string) *Diagnostic {
	d.Notes = append(d.Notes, Note{Message: message})
	return d
}

// WithHelp sets helpful suggestion for fixing the error
func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	d.Help = help
	return d
}

// WithValue attaches the runtime value the diagnostic is about.
func (d *Diagnostic) WithValue(v any) *Diagnostic {
	d.Value = v
	return d
}
