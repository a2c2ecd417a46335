package colors

import (
	"fmt"
	"io"
	"strings"
)

// Print methods (default to stdout)
func (c COLOR) Printf(format string, args ...any) {
	fmt.Printf(string(c)+format+string(RESET), args...)
}

func (c COLOR) Println(args ...any) {
	fmt.Print(string(c))
	fmt.Println(args...)
	fmt.Print(string(RESET))
}

func (c COLOR) Print(args ...any) {
	fmt.Print(string(c))
	fmt.Print(args...)
	fmt.Print(string(RESET))
}

// Fprint methods (write to specific writer)
func (c COLOR) Fprintf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, string(c)+format+string(RESET), args...)
}

func (c COLOR) Fprintln(w io.Writer, args ...any) {
	fmt.Fprint(w, string(c))
	fmt.Fprintln(w, args...)
	fmt.Fprint(w, string(RESET))
}

func (c COLOR) Fprint(w io.Writer, args ...any) {
	fmt.Fprint(w, string(c))
	fmt.Fprint(w, args...)
	fmt.Fprint(w, string(RESET))
}

func (c COLOR) Sprintf(format string, args ...any) string {
	return string(c) + fmt.Sprintf(format, args...) + string(RESET)
}

func (c COLOR) Sprintln(args ...any) string {
	return string(c) + fmt.Sprintln(args...) + string(RESET)
}

func (c COLOR) Sprint(args ...any) string {
	return string(c) + fmt.Sprint(args...) + string(RESET)
}

// StripANSI removes ANSI color codes from a string
func StripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for i := 0; i < len(s); i++ {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			inEscape = true
			i++
			continue
		}
		if inEscape {
			if (s[i] >= 'A' && s[i] <= 'Z') || (s[i] >= 'a' && s[i] <= 'z') {
				inEscape = false
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// ConvertANSIToHTML converts ANSI color codes to HTML span tags
func ConvertANSIToHTML(text string) string {
	// First, escape HTML entities
	result := strings.ReplaceAll(text, "&", "&amp;")
	result = strings.ReplaceAll(result, "<", "&lt;")
	result = strings.ReplaceAll(result, ">", "&gt;")

	// Then replace ANSI codes with HTML
	ansiToHTMLColors := map[string]string{
		string(RESET):       "</span>",
		string(BOLD):        "<span style=\"font-weight: bold\">",
		string(RED):         "<span style=\"color: #ef4444\">",
		string(GREEN):       "<span style=\"color: #10b981\">",
		string(YELLOW):      "<span style=\"color: #f59e0b\">",
		string(BLUE):        "<span style=\"color: #3b82f6\">",
		string(PURPLE):      "<span style=\"color: #c678dd; font-weight: bold\">",
		string(CYAN):        "<span style=\"color: #56b6c2\">",
		string(WHITE):       "<span style=\"color: #f3f4f6\">",
		string(GREY):        "<span style=\"color: #5c6370\">",
		string(ORANGE):      "<span style=\"color: #ff8700\">",
		string(BOLD_RED):    "<span style=\"color: #ef4444; font-weight: bold\">",
		string(BOLD_GREEN):  "<span style=\"color: #10b981; font-weight: bold\">",
		string(BOLD_YELLOW): "<span style=\"color: #f59e0b; font-weight: bold\">",
		string(BOLD_PURPLE): "<span style=\"color: #a855f7; font-weight: bold\">",
		string(BOLD_CYAN):   "<span style=\"color: #56b6c2; font-weight: bold\">",
	}

	for ansi, html := range ansiToHTMLColors {
		result = strings.ReplaceAll(result, ansi, html)
	}

	// Convert newlines to <br> and spaces to &nbsp; for proper formatting
	result = strings.ReplaceAll(result, "\n", "<br>")
	result = strings.ReplaceAll(result, "  ", "&nbsp;&nbsp;") // Preserve double spaces

	return result
}
