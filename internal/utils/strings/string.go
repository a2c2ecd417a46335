package strings

import "fmt"

func Pluralize(singular, plural string, count int) string {
	if count == 1 {
		return singular
	}
	return plural
}

// Count formats a quantity with the matching noun, e.g. "1 module" or "3 modules".
func Count(count int, singular, plural string) string {
	return fmt.Sprintf("%d %s", count, Pluralize(singular, plural, count))
}
