package source

// Position represents a specific location in the source code with line, column, and index information.
type Position struct {
	Line   int `json:"line"`   // Line number in the source code.
	Column int `json:"column"` // Column number in the source code.
	Index  int `json:"index"`  // Index in the source code.
}

// Before reports whether p comes strictly before other.
func (p *Position) Before(other *Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// Advance moves the position past toSkip, starting a new line after each newline.
func (p *Position) Advance(toSkip string) *Position {
	for _, char := range toSkip {
		if char == '\n' {
			p.Line++
			p.Column = 1
		} else {
			p.Column++
		}
		p.Index += len(string(char))
	}
	return p
}
