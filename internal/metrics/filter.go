package metrics

import "nli/internal/models"

// FilterByWindow returns the entities whose date, normalized from dateOf,
// falls inside the window. An unbounded window returns the input unchanged,
// including entities with unparseable dates; a bounded window excludes those.
func FilterByWindow[T any](items []T, w models.DateWindow, dateOf func(T) any) []T {
	if !w.Bounded() {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		t, ok := NormalizeDate(dateOf(item))
		if !ok {
			continue
		}
		if w.Contains(t) {
			out = append(out, item)
		}
	}
	return out
}
