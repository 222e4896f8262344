package metrics

import "nli/internal/models"

// ComputeTrend re-runs a minimal aggregation over the equal-length window
// immediately preceding w, against the unfiltered collections. The recency
// check anchors to the shifted window's end rather than the real current
// instant, so the comparison measures what "recently active" meant back then.
// Returns nil for unbounded windows, which have no preceding period.
func ComputeTrend(accounts []models.Account, profiles []models.ChildProfile, w models.DateWindow) *models.ComparisonSnapshot {
	if !w.Bounded() {
		return nil
	}
	prev := w.Shifted()

	prevAccounts := FilterByWindow(accounts, prev, func(a models.Account) any { return a.CreatedAt })
	prevProfiles := FilterByWindow(profiles, prev, func(p models.ChildProfile) any { return p.CreatedAt })

	return &models.ComparisonSnapshot{
		TotalAccounts:  len(prevAccounts),
		TotalChildren:  len(prevProfiles),
		RecentlyActive: CountRecentlyActive(prevProfiles, *prev.End),
	}
}
