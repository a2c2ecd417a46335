package source

import (
	"fmt"
)

// Location represents a span of source code with start and end positions
type Location struct {
	Start    *Position `json:"start,omitempty"`
	End      *Position `json:"end,omitempty"`
	Filename *string   `json:"filename,omitempty"`
}

// NewLocation creates a new Location with the given start and end positions
func NewLocation(filename *string, start, end *Position) *Location {
	return &Location{
		Filename: filename,
		Start:    start,
		End:      end,
	}
}

// At builds a single-point location, mostly for synthesized nodes and tests.
func At(filename string, line, column int) *Location {
	pos := &Position{Line: line, Column: column}
	end := &Position{Line: line, Column: column + 1}
	return NewLocation(&filename, pos, end)
}

// Contains checks if the given position is within this location
func (l *Location) Contains(pos *Position) bool {
	if l.Start.Line > pos.Line || (l.Start.Line == pos.Line && l.Start.Column > pos.Column) {
		return false
	}
	if l.End.Line < pos.Line || (l.End.Line == pos.Line && l.End.Column < pos.Column) {
		return false
	}
	return true
}

// File returns the filename or an empty string when the location is synthetic.
func (l *Location) File() string {
	if l == nil || l.Filename == nil {
		return ""
	}
	return *l.Filename
}

// Span merges two locations into one covering both. Either may be nil.
func Span(a, b *Location) *Location {
	if a == nil {
		return b
	}
	if b == nil || a.Start == nil || b.End == nil {
		return a
	}
	start, end := a.Start, b.End
	if b.Start != nil && b.Start.Before(start) {
		start = b.Start
	}
	if a.End != nil && end.Before(a.End) {
		end = a.End
	}
	return NewLocation(a.Filename, start, end)
}

func (l *Location) String() string {
	if l == nil || l.Start == nil {
		return "location(unknown)"
	}
	if l.Filename == nil {
		return fmt.Sprintf("%d:%d", l.Start.Line, l.Start.Column)
	}
	return fmt.Sprintf("%s:%d:%d", *l.Filename, l.Start.Line, l.Start.Column)
}
