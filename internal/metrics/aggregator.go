package metrics

import (
	"math"
	"time"

	"nli/internal/models"
)

const recentActivityDays = 7

// Aggregate computes the full metrics snapshot over window-filtered accounts
// and profiles. Installs arrive unfiltered and are filtered here on their own
// timestamp. The funnel tiers deliberately use each profile's lifetime event
// count, not the window-scoped one: they represent engagement tiers, not
// period activity. Recency is measured against now regardless of the window.
func Aggregate(accounts []models.Account, profiles []models.ChildProfile, installs []models.InstallRecord, w models.DateWindow, now time.Time) *models.MetricsSnapshot {
	snap := &models.MetricsSnapshot{
		TotalAccounts: len(accounts),
		TotalChildren: len(profiles),
	}

	for _, a := range accounts {
		if a.Deleted {
			snap.DeletedAccounts++
		}
	}

	for _, p := range profiles {
		n := len(p.Events)
		if n >= 1 {
			snap.ChildrenWithEvents++
		}
		if n > 5 {
			snap.ChildrenOver5Events++
		}
		if n > 30 {
			snap.ChildrenOver30Events++
		}
		if n > 100 {
			snap.ChildrenOver100++
		}
	}

	snap.OrphanAccounts = CountOrphans(accounts, LinkedAccountIDs(profiles))
	snap.SharedChildren = CountShared(profiles)
	snap.RecentlyActive = CountRecentlyActive(profiles, now)
	snap.InstallsByPlatform = tallyInstalls(installs, w)
	snap.Averages = averageStats(accounts, profiles)
	snap.Distribution = distribution(profiles)

	return snap
}

// CountRecentlyActive tallies profiles with at least one event whose
// occurrence instant falls within the trailing seven days before ref.
func CountRecentlyActive(profiles []models.ChildProfile, ref time.Time) int {
	cutoff := ref.AddDate(0, 0, -recentActivityDays)
	n := 0
	for _, p := range profiles {
		for _, e := range p.Events {
			t, ok := NormalizeDate(e.OccurredAt)
			if !ok {
				continue
			}
			if t.After(cutoff) && !t.After(ref) {
				n++
				break
			}
		}
	}
	return n
}

func tallyInstalls(installs []models.InstallRecord, w models.DateWindow) map[string]int {
	filtered := FilterByWindow(installs, w, func(i models.InstallRecord) any { return i.InstalledAt })
	if len(filtered) == 0 {
		return nil
	}
	byPlatform := make(map[string]int)
	for _, i := range filtered {
		platform := i.Platform
		if platform == "" {
			platform = "unknown"
		}
		byPlatform[platform]++
	}
	return byPlatform
}

func averageStats(accounts []models.Account, profiles []models.ChildProfile) *models.AverageStats {
	if len(profiles) == 0 {
		return nil
	}

	totalEvents, totalParents := 0, 0
	for _, p := range profiles {
		totalEvents += len(p.Events)
		totalParents += len(p.ParentIDs)
	}

	avg := &models.AverageStats{
		EventsPerChild:      round1(float64(totalEvents) / float64(len(profiles))),
		ParentsPerChild:     round1(float64(totalParents) / float64(len(profiles))),
		AccountLifetimeDays: meanLifetimeDays(accounts),
	}
	avg.TopCategory, avg.TopCategoryCount = topCategory(tallyCategories(profiles))
	return avg
}

func tallyCategories(profiles []models.ChildProfile) map[Category]int {
	counts := make(map[Category]int)
	for _, p := range profiles {
		for _, e := range p.Events {
			if c, ok := Categorize(e.Type); ok {
				counts[c]++
			}
		}
	}
	return counts
}

// topCategory picks the bucket with the strictly greatest count; ties keep
// the first bucket in enumeration order.
func topCategory(counts map[Category]int) (string, int) {
	best, bestCount := "", 0
	for _, c := range Categories {
		if counts[c] > bestCount {
			best, bestCount = string(c), counts[c]
		}
	}
	return best, bestCount
}

func meanLifetimeDays(accounts []models.Account) int {
	total, n := 0.0, 0
	for _, a := range accounts {
		if !a.Deleted {
			continue
		}
		created, okC := NormalizeDate(a.CreatedAt)
		deleted, okD := NormalizeDate(a.DeletedAt)
		if !okC || !okD {
			continue
		}
		total += deleted.Sub(created).Hours() / 24
		n++
	}
	if n == 0 {
		return 0
	}
	return int(math.Round(total / float64(n)))
}

func distribution(profiles []models.ChildProfile) []models.CategoryBucket {
	counts := tallyCategories(profiles)
	total := 0
	for _, n := range counts {
		total += n
	}
	if total == 0 {
		return nil
	}
	buckets := make([]models.CategoryBucket, 0, len(Categories))
	for _, c := range Categories {
		buckets = append(buckets, models.CategoryBucket{
			Category: string(c),
			Count:    counts[c],
			Percent:  int(math.Round(float64(counts[c]) / float64(total) * 100)),
		})
	}
	return buckets
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
