package models

// ActivityReport is the per-child breakdown served by the child lookup
// endpoint. Counts cover only events that matched a known category; events
// with unrecognized labels are excluded from every figure.
type ActivityReport struct {
	ChildID      string   `json:"child_id"`
	Name         string   `json:"name"`
	Sex          string   `json:"sex,omitempty"`
	BirthDate    string   `json:"birth_date,omitempty"`
	Age          string   `json:"age,omitempty"`
	ParentEmails []string `json:"parent_emails"`

	TotalEvents int `json:"total_events"`

	FeedingCount  int     `json:"feeding_count"`
	FeedingVolume float64 `json:"feeding_volume"`

	DiaperCount    int            `json:"diaper_count"`
	DiaperSubtypes map[string]int `json:"diaper_subtypes,omitempty"`

	SleepCount    int     `json:"sleep_count"`
	SleepDuration float64 `json:"sleep_duration"`

	TemperatureCount   int     `json:"temperature_count"`
	TemperatureAverage float64 `json:"temperature_average"`

	NursingCount    int     `json:"nursing_count"`
	NursingDuration float64 `json:"nursing_duration"`

	HealthCount int `json:"health_count"`
}
