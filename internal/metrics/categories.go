package metrics

import "strings"

// Category is one of the six fixed buckets free-form event labels resolve
// into.
type Category string

const (
	CategoryFeeding     Category = "feeding"
	CategoryDiaper      Category = "diaper"
	CategorySleep       Category = "sleep"
	CategoryTemperature Category = "temperature"
	CategoryNursing     Category = "nursing"
	CategoryHealth      Category = "health"
)

// Categories is the fixed enumeration order used for distribution output and
// for breaking most-frequent ties.
var Categories = []Category{
	CategoryFeeding,
	CategoryDiaper,
	CategorySleep,
	CategoryTemperature,
	CategoryNursing,
	CategoryHealth,
}

type categoryRule struct {
	category Category
	keywords []string
}

// categoryRules is evaluated top to bottom, first match wins. Nursing sits
// above feeding so that "breastfeeding" labels do not land in the feeding
// bucket via the "feed" keyword.
var categoryRules = []categoryRule{
	{CategoryNursing, []string{"breast", "nurs"}},
	{CategoryFeeding, []string{"feed", "bottle", "formula"}},
	{CategoryDiaper, []string{"diaper", "nappy"}},
	{CategorySleep, []string{"sleep", "nap"}},
	{CategoryTemperature, []string{"temp"}},
	{CategoryHealth, []string{"health", "doctor", "medic"}},
}

// Categorize resolves a free-form event label to a bucket by case-insensitive
// substring match. Labels matching no rule return false and are excluded from
// every tally.
func Categorize(label string) (Category, bool) {
	l := strings.ToLower(label)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(l, kw) {
				return rule.category, true
			}
		}
	}
	return "", false
}
