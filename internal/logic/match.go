package logic

import (
	"strings"

	"golang.org/x/text/cases"
)

// Matches reports whether query is a case-insensitive substring of at least
// one field. A blank query matches everything.
func Matches(fields []string, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}

	// Casers carry state; one per call keeps Matches safe across goroutines
	fold := cases.Fold()
	needle := fold.String(query)
	for _, f := range fields {
		if f == "" {
			continue
		}
		if strings.Contains(fold.String(f), needle) {
			return true
		}
	}
	return false
}
