package symbols

import "strings"

// SEP joins path segments in a mangled name.
const SEP = "_"

// Mangle flattens a qualified path into a single C++ identifier.
//
// Segments are joined verbatim, so two paths whose segments already contain
// SEP can flatten to the same name: ["a_b", "c"] and ["a", "b_c"] collide.
func Mangle(path Path) string {
	names := make([]string, len(path))
	for i, s := range path {
		names[i] = s.Name
	}
	return strings.Join(names, SEP)
}
