package diagnostics

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"tako/colors"
)

const (
	STR_MULTIPLIER = "%*d | "
	LINE_POS       = "%s--> %s:%d:%d\n"
)

// SourceCache caches source file contents for error reporting
type SourceCache struct {
	files map[string][]string
}

func NewSourceCache() *SourceCache {
	return &SourceCache{
		files: make(map[string][]string),
	}
}

// AddSource registers in-memory content for a path
func (sc *SourceCache) AddSource(filepath, content string) {
	sc.files[filepath] = strings.Split(content, "\n")
}

// GetLine retrieves a specific line from a source file
func (sc *SourceCache) GetLine(filepath string, line int) (string, error) {
	lines, ok := sc.files[filepath]
	if !ok {
		file, err := os.Open(filepath)
		if err != nil {
			return "", err
		}
		defer file.Close()

		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return "", err
		}
		sc.files[filepath] = lines
	}

	if line > 0 && line <= len(lines) {
		return lines[line-1], nil
	}
	return "", fmt.Errorf("line %d out of range", line)
}

// Emitter handles the rendering and output of diagnostics
type Emitter struct {
	cache  *SourceCache
	writer io.Writer
}

// NewEmitter creates an emitter that writes to a specific writer
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{
		cache:  NewSourceCache(),
		writer: w,
	}
}

// AddSource registers content for a path that is not on disk
func (e *Emitter) AddSource(filepath, content string) {
	e.cache.AddSource(filepath, content)
}

func (e *Emitter) Emit(diag *Diagnostic) {
	e.printHeader(diag)

	gutter := 1
	for _, label := range diag.Labels {
		if label.Location != nil && label.Location.Start != nil {
			if w := len(fmt.Sprint(label.Location.Start.Line)); w > gutter {
				gutter = w
			}
		}
	}

	for _, label := range diag.Labels {
		e.printLabel(diag, label, gutter)
	}

	for _, note := range diag.Notes {
		fmt.Fprint(e.writer, strings.Repeat(" ", gutter+1))
		colors.CYAN.Fprint(e.writer, "= note: ")
		fmt.Fprintln(e.writer, note.Message)
	}

	if diag.Help != "" {
		fmt.Fprint(e.writer, strings.Repeat(" ", gutter+1))
		colors.GREEN.Fprint(e.writer, "= help: ")
		fmt.Fprintln(e.writer, diag.Help)
	}

	fmt.Fprintln(e.writer)
}

func (e *Emitter) printHeader(diag *Diagnostic) {
	var color colors.COLOR
	switch diag.Severity {
	case Error:
		color = colors.BOLD_RED
	case Warning:
		color = colors.BOLD_YELLOW
	case Info:
		color = colors.BOLD_CYAN
	default:
		color = colors.BOLD_PURPLE
	}

	color.Fprint(e.writer, diag.Severity.String())
	if diag.Code != "" {
		fmt.Fprintf(e.writer, "[%s]", diag.Code)
	}
	fmt.Fprint(e.writer, ": ")
	color.Fprintln(e.writer, diag.Message)
}

func (e *Emitter) printLabel(diag *Diagnostic, label Label, gutter int) {
	loc := label.Location
	if loc == nil || loc.Start == nil {
		return
	}
	path := loc.File()
	if path == "" {
		path = diag.FilePath
	}

	colors.BLUE.Fprintf(e.writer, LINE_POS, strings.Repeat(" ", gutter), path, loc.Start.Line, loc.Start.Column)

	sourceLine, err := e.cache.GetLine(path, loc.Start.Line)
	if err != nil {
		if label.Message != "" {
			fmt.Fprint(e.writer, strings.Repeat(" ", gutter+1))
			colors.GREY.Fprintf(e.writer, "| %s\n", label.Message)
		}
		return
	}

	colors.GREY.Fprintf(e.writer, STR_MULTIPLIER, gutter, loc.Start.Line)
	fmt.Fprintln(e.writer, sourceLine)

	length := 1
	if loc.End != nil && loc.End.Line == loc.Start.Line && loc.End.Column > loc.Start.Column {
		length = loc.End.Column - loc.Start.Column
	}

	underlineColor, underlineChar := colors.BLUE, "-"
	if label.Style == Primary {
		underlineColor, underlineChar = colors.RED, "^"
		if diag.Severity == Warning {
			underlineColor = colors.YELLOW
		}
	}

	fmt.Fprint(e.writer, strings.Repeat(" ", gutter))
	colors.GREY.Fprint(e.writer, " | ")
	fmt.Fprint(e.writer, strings.Repeat(" ", max(loc.Start.Column-1, 0)))
	underlineColor.Fprint(e.writer, strings.Repeat(underlineChar, length))
	if label.Message != "" {
		underlineColor.Fprintf(e.writer, " %s", label.Message)
	}
	fmt.Fprintln(e.writer)
}
