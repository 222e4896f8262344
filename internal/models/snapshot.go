package models

// MetricsSnapshot is the full aggregation output for one window. Averages,
// Distribution and Previous are nil when there is not enough data to compute
// them; consumers must read nil as "insufficient data", not zero.
type MetricsSnapshot struct {
	TotalAccounts   int `json:"total_accounts"`
	TotalChildren   int `json:"total_children"`
	OrphanAccounts  int `json:"orphan_accounts"`
	DeletedAccounts int `json:"deleted_accounts"`

	// Engagement funnel over lifetime event counts. The tiers are
	// independent tallies, not a partition.
	ChildrenWithEvents   int `json:"children_with_events"`
	ChildrenOver5Events  int `json:"children_over_5_events"`
	ChildrenOver30Events int `json:"children_over_30_events"`
	ChildrenOver100      int `json:"children_over_100_events"`

	SharedChildren int `json:"shared_children"`
	RecentlyActive int `json:"recently_active"`

	InstallsByPlatform map[string]int `json:"installs_by_platform,omitempty"`

	Averages     *AverageStats       `json:"averages,omitempty"`
	Distribution []CategoryBucket    `json:"distribution,omitempty"`
	Previous     *ComparisonSnapshot `json:"previous,omitempty"`
}

// AverageStats is computed only when at least one child profile survives
// the window filter.
type AverageStats struct {
	EventsPerChild   float64 `json:"events_per_child"`
	ParentsPerChild  float64 `json:"parents_per_child"`
	TopCategory      string  `json:"top_category"`
	TopCategoryCount int     `json:"top_category_count"`
	// Mean lifetime in whole days over deleted accounts that have both a
	// creation and a deletion instant; zero when no such account exists.
	AccountLifetimeDays int `json:"account_lifetime_days"`
}

// CategoryBucket is one slice of the global event-category distribution.
type CategoryBucket struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
	Percent  int    `json:"percent"`
}

// ComparisonSnapshot is the minimal snapshot of the preceding equal-length
// window, used for directional deltas only.
type ComparisonSnapshot struct {
	TotalAccounts  int `json:"total_accounts"`
	TotalChildren  int `json:"total_children"`
	RecentlyActive int `json:"recently_active"`
}
