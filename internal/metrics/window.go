package metrics

import (
	"fmt"
	"time"

	"nli/internal/models"
)

// Preset names a predefined window shape resolved relative to "now".
type Preset string

const (
	PresetToday     Preset = "today"
	PresetYesterday Preset = "yesterday"
	PresetAll       Preset = "all"
	Preset7Days     Preset = "7days"
	Preset30Days    Preset = "30days"
	Preset3Months   Preset = "3months"
	PresetCustom    Preset = "custom"
)

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, t.Location())
}

// ResolveWindow maps a preset to a concrete window computed against now.
// Custom bounds come from date-only input and are widened to cover their full
// days; they are read only when the preset is custom, so switching presets
// implicitly discards stale custom bounds.
func ResolveWindow(preset Preset, from, to *time.Time, now time.Time) (models.DateWindow, error) {
	switch preset {
	case PresetAll:
		return models.DateWindow{}, nil
	case PresetToday:
		s, e := dayStart(now), dayEnd(now)
		return models.DateWindow{Start: &s, End: &e}, nil
	case PresetYesterday:
		y := now.AddDate(0, 0, -1)
		s, e := dayStart(y), dayEnd(y)
		return models.DateWindow{Start: &s, End: &e}, nil
	case Preset7Days:
		return rollingWindow(now, 7), nil
	case Preset30Days:
		return rollingWindow(now, 30), nil
	case Preset3Months:
		return rollingWindow(now, 90), nil
	case PresetCustom:
		if from == nil || to == nil {
			return models.DateWindow{}, fmt.Errorf("custom window requires both bounds")
		}
		s, e := dayStart(*from), dayEnd(*to)
		return models.DateWindow{Start: &s, End: &e}, nil
	}
	return models.DateWindow{}, fmt.Errorf("unknown window preset %q", preset)
}

func rollingWindow(now time.Time, days int) models.DateWindow {
	s := now.AddDate(0, 0, -days)
	e := now
	return models.DateWindow{Start: &s, End: &e}
}
