package metrics

import "nli/internal/models"

// LinkedAccountIDs collects every account identifier referenced by any
// profile's parent-link list.
func LinkedAccountIDs(profiles []models.ChildProfile) map[string]struct{} {
	linked := make(map[string]struct{})
	for _, p := range profiles {
		for _, id := range p.ParentIDs {
			if id != "" {
				linked[id] = struct{}{}
			}
		}
	}
	return linked
}

// EmailIndex maps account id to email over the full, unfiltered account
// collection. Used for display enrichment only, never for filtering.
func EmailIndex(accounts []models.Account) map[string]string {
	idx := make(map[string]string, len(accounts))
	for _, a := range accounts {
		if a.ID != "" {
			idx[a.ID] = a.Email
		}
	}
	return idx
}

// CountOrphans tallies accounts whose id appears in no profile's parent-link
// list.
func CountOrphans(accounts []models.Account, linked map[string]struct{}) int {
	n := 0
	for _, a := range accounts {
		if _, ok := linked[a.ID]; !ok {
			n++
		}
	}
	return n
}

// CountShared tallies profiles linked to more than one account.
func CountShared(profiles []models.ChildProfile) int {
	n := 0
	for _, p := range profiles {
		if len(p.ParentIDs) > 1 {
			n++
		}
	}
	return n
}
