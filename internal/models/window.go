package models

import "time"

// DateWindow is an inclusive [Start, End] interval. Both bounds nil means
// "all data". The engine never validates Start <= End; an inverted window
// simply matches nothing.
type DateWindow struct {
	Start *time.Time `json:"start"`
	End   *time.Time `json:"end"`
}

func (w DateWindow) Bounded() bool {
	return w.Start != nil && w.End != nil
}

func (w DateWindow) Contains(t time.Time) bool {
	if !w.Bounded() {
		return true
	}
	return !t.Before(*w.Start) && !t.After(*w.End)
}

// Shifted returns the equal-length window immediately preceding this one.
// Only meaningful for bounded windows.
func (w DateWindow) Shifted() DateWindow {
	if !w.Bounded() {
		return DateWindow{}
	}
	d := w.End.Sub(*w.Start)
	start := w.Start.Add(-d)
	end := w.End.Add(-d)
	return DateWindow{Start: &start, End: &end}
}

// CacheKey renders the window as a stable string usable as a cache key part.
func (w DateWindow) CacheKey() string {
	if !w.Bounded() {
		return "all"
	}
	return w.Start.UTC().Format(time.RFC3339) + ".." + w.End.UTC().Format(time.RFC3339)
}
