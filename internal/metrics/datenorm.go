package metrics

import (
	"strings"
	"time"

	"github.com/spf13/cast"
)

// TimeConvertible is the opaque timestamp shape some sources hand us: an
// object that knows how to turn itself into a time.Time.
type TimeConvertible interface {
	ToTime() time.Time
}

var stringLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// NormalizeDate converts any of the date encodings found in the raw
// collections into a single comparable instant. The second return is false
// when the value is absent, of an unrecognized shape, or does not parse to a
// valid calendar date. It never panics; absence is a normal outcome that
// downstream filters turn into exclusion.
func NormalizeDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return d, !d.IsZero()
	case *time.Time:
		if d == nil {
			return time.Time{}, false
		}
		return *d, !d.IsZero()
	case TimeConvertible:
		t := d.ToTime()
		return t, !t.IsZero()
	case string:
		return parseDateString(d)
	case map[string]any:
		return parseSecondsObject(d)
	}
	return time.Time{}, false
}

func parseDateString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range stringLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseSecondsObject handles the document-store timestamp serialization:
// an object carrying epoch seconds plus nanoseconds, with or without
// underscore-prefixed keys.
func parseSecondsObject(m map[string]any) (time.Time, bool) {
	sec, ok := lookupNumeric(m, "seconds", "_seconds")
	if !ok {
		return time.Time{}, false
	}
	nanos, _ := lookupNumeric(m, "nanoseconds", "_nanoseconds")
	return time.Unix(sec, nanos).UTC(), true
}

func lookupNumeric(m map[string]any, keys ...string) (int64, bool) {
	for _, k := range keys {
		raw, present := m[k]
		if !present {
			continue
		}
		n, err := cast.ToInt64E(raw)
		if err != nil {
			continue
		}
		return n, true
	}
	return 0, false
}

// ParseBirthDate parses the ambiguous birth-date string used on child
// profiles: day/month/year with slash separators, falling back to the
// regular encodings.
func ParseBirthDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("02/01/2006", s); err == nil {
		return t, true
	}
	return parseDateString(s)
}

// AgeString renders the elapsed time between a birth date and now as a short
// human label ("2y 4m", "8m", "15d"). Empty when birth is unparseable or in
// the future.
func AgeString(birth, now time.Time) string {
	if birth.IsZero() || birth.After(now) {
		return ""
	}
	years := now.Year() - birth.Year()
	months := int(now.Month()) - int(birth.Month())
	if now.Day() < birth.Day() {
		months--
	}
	if months < 0 {
		years--
		months += 12
	}
	switch {
	case years > 0 && months > 0:
		return cast.ToString(years) + "y " + cast.ToString(months) + "m"
	case years > 0:
		return cast.ToString(years) + "y"
	case months > 0:
		return cast.ToString(months) + "m"
	default:
		days := int(now.Sub(birth).Hours() / 24)
		return cast.ToString(days) + "d"
	}
}
