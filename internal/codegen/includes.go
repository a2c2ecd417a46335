package codegen

import (
	"sort"
	"strings"
)

// stringSet collects includes and link flags. Insertion order does not
// matter; output is always sorted so generated programs are reproducible.
type stringSet map[string]struct{}

func (s stringSet) add(items ...string) {
	for _, item := range items {
		if item != "" {
			s[item] = struct{}{}
		}
	}
}

func (s stringSet) sorted() []string {
	out := make([]string, 0, len(s))
	for item := range s {
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}

// WriteIncludes writes include lines (or whole preamble blocks) one per line.
func WriteIncludes(builder *strings.Builder, includes []string) {
	for _, inc := range includes {
		builder.WriteString(inc)
		builder.WriteString("\n")
	}
}
