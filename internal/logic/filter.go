package logic

import "strings"

// FilterState is the user's current query and selected label.
// The zero value means no filtering.
type FilterState struct {
	Query string
	Label string
}

// IsZero reports whether the state excludes nothing.
func (f FilterState) IsZero() bool {
	return strings.TrimSpace(f.Query) == "" && f.Label == ""
}

// Apply returns the subsequence of items passing both the label and the
// query predicate. Source order is kept and a new slice is always returned.
func Apply[T Item](items []T, f FilterState) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if f.Label != "" && !HasLabel(it, f.Label) {
			continue
		}
		if !Matches(it.SearchText(), f.Query) {
			continue
		}
		out = append(out, it)
	}
	return out
}
