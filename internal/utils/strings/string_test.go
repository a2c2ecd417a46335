package strings

import (
	"testing"
)

func TestPlural(t *testing.T) {
	tests := []struct {
		singular string
		plural   string
		count    int
		expected string
	}{
		{"item", "items", 1, "item"},
		{"item", "items", 0, "items"},
		{"item", "items", 2, "items"},
		{"person", "people", 1, "person"},
		{"person", "people", 5, "people"},
	}

	for _, test := range tests {
		result := Pluralize(test.singular, test.plural, test.count)
		if result != test.expected {
			t.Errorf("Plural(%q, %q, %d) = %q, expected %q",
				test.singular, test.plural, test.count, result, test.expected)
		}
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		count    int
		expected string
	}{
		{0, "0 modules"},
		{1, "1 module"},
		{4, "4 modules"},
	}

	for _, test := range tests {
		if got := Count(test.count, "module", "modules"); got != test.expected {
			t.Errorf("Count(%d) = %q, expected %q", test.count, got, test.expected)
		}
	}
}
