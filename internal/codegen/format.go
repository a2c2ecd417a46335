package codegen

import (
	"strings"
	"unicode"
)

// FormatSource re-indents generated C++ by brace depth, two spaces a level.
// Preprocessor lines stay in column zero. Only leading whitespace changes.
func FormatSource(src string) string {
	lines := strings.Split(src, "\n")
	var b strings.Builder
	depth := 0

	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			b.WriteString(trimmed)
			continue
		}

		opens, closes := countBraces(trimmed)
		lineDepth := depth
		if strings.HasPrefix(trimmed, "}") && lineDepth > 0 {
			lineDepth--
		}
		b.WriteString(strings.Repeat("  ", lineDepth))
		b.WriteString(trimmed)

		depth += opens - closes
		if depth < 0 {
			depth = 0
		}
	}
	return b.String()
}

// countBraces counts braces outside string and character literals.
func countBraces(line string) (opens, closes int) {
	var quote rune
	escaped := false
	for _, r := range line {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '{':
			opens++
		case r == '}':
			closes++
		}
	}
	return opens, closes
}
