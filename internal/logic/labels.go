package logic

// DeriveLabels returns the distinct labels of items in first-seen order.
func DeriveLabels[T Item](items []T) []string {
	seen := make(map[string]struct{})
	labels := make([]string, 0)
	for _, it := range items {
		for _, l := range it.Labels() {
			if l == "" {
				continue
			}
			if _, ok := seen[l]; ok {
				continue
			}
			seen[l] = struct{}{}
			labels = append(labels, l)
		}
	}
	return labels
}

// HasLabel reports whether item carries label.
func HasLabel(item Item, label string) bool {
	for _, l := range item.Labels() {
		if l == label {
			return true
		}
	}
	return false
}
