package metrics

import (
	"time"

	"github.com/spf13/cast"

	"nli/internal/models"
)

// resolveDiaperSubtype applies the field precedence for the diaper
// discriminator: the current field wins, the deprecated alias fills in for
// older records.
func resolveDiaperSubtype(current, legacy string) string {
	if current != "" {
		return current
	}
	return legacy
}

// diaperSubtypeName maps raw discriminator values onto the three reported
// sub-types. Unknown values are excluded from the sub-type tally but still
// count as diaper events.
func diaperSubtypeName(raw string) string {
	switch raw {
	case "wet", "pee":
		return "wet"
	case "dirty", "poo", "poop":
		return "dirty"
	case "both", "mixed":
		return "mixed"
	}
	return ""
}

func numeric(v any) float64 {
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0
	}
	return f
}

// BuildActivityReport classifies one child's events into the fixed category
// buckets and derives the per-category figures. Events outside the window or
// with unrecognized labels contribute to nothing. emailOf resolves a linked
// account id to its email; a failed resolution just omits that entry.
func BuildActivityReport(p models.ChildProfile, w models.DateWindow, now time.Time, emailOf func(id string) (string, bool)) *models.ActivityReport {
	report := &models.ActivityReport{
		ChildID:      p.ID,
		Name:         p.Name,
		Sex:          p.Sex,
		BirthDate:    p.BirthDate,
		ParentEmails: resolveParentEmails(p, emailOf),
	}
	if birth, ok := ParseBirthDate(p.BirthDate); ok {
		report.Age = AgeString(birth, now)
	}

	events := FilterByWindow(p.Events, w, func(e models.ActivityEvent) any { return e.OccurredAt })

	tempSum, tempN := 0.0, 0
	for _, e := range events {
		category, ok := Categorize(e.Type)
		if !ok {
			continue
		}
		report.TotalEvents++
		switch category {
		case CategoryFeeding:
			report.FeedingCount++
			report.FeedingVolume += numeric(e.Value)
		case CategoryDiaper:
			report.DiaperCount++
			if name := diaperSubtypeName(resolveDiaperSubtype(e.Subtype, e.Kind)); name != "" {
				if report.DiaperSubtypes == nil {
					report.DiaperSubtypes = make(map[string]int)
				}
				report.DiaperSubtypes[name]++
			}
		case CategorySleep:
			report.SleepCount++
			report.SleepDuration += numeric(e.Value)
		case CategoryTemperature:
			report.TemperatureCount++
			if reading, err := cast.ToFloat64E(e.Value); err == nil && reading > 0 {
				tempSum += reading
				tempN++
			}
		case CategoryNursing:
			report.NursingCount++
			report.NursingDuration += numeric(e.LeftDuration) + numeric(e.RightDuration)
		case CategoryHealth:
			report.HealthCount++
		}
	}
	if tempN > 0 {
		report.TemperatureAverage = tempSum / float64(tempN)
	}

	return report
}

func resolveParentEmails(p models.ChildProfile, emailOf func(id string) (string, bool)) []string {
	emails := make([]string, 0, len(p.ParentIDs))
	seen := make(map[string]struct{})
	for _, id := range p.ParentIDs {
		email, ok := emailOf(id)
		if !ok || email == "" {
			continue
		}
		if _, dup := seen[email]; dup {
			continue
		}
		seen[email] = struct{}{}
		emails = append(emails, email)
	}
	if p.OwnerEmail != "" {
		if _, dup := seen[p.OwnerEmail]; !dup {
			emails = append(emails, p.OwnerEmail)
		}
	}
	return emails
}
