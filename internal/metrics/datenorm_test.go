package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate_Nil(t *testing.T) {
	_, ok := NormalizeDate(nil)
	assert.False(t, ok)
}

func TestNormalizeDate_RFC3339String(t *testing.T) {
	got, ok := NormalizeDate("2024-03-15T10:30:00Z")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC), got.UTC())
}

func TestNormalizeDate_DateOnlyString(t *testing.T) {
	got, ok := NormalizeDate("2024-03-15")
	require.True(t, ok)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 15, got.Day())
}

func TestNormalizeDate_Garbage(t *testing.T) {
	_, ok := NormalizeDate("not a date")
	assert.False(t, ok)

	_, ok = NormalizeDate("")
	assert.False(t, ok)

	_, ok = NormalizeDate(42)
	assert.False(t, ok)
}

func TestNormalizeDate_TimeValue(t *testing.T) {
	now := time.Now()
	got, ok := NormalizeDate(now)
	require.True(t, ok)
	assert.Equal(t, now, got)

	_, ok = NormalizeDate(time.Time{})
	assert.False(t, ok)
}

func TestNormalizeDate_SecondsObject(t *testing.T) {
	// JSON-decoded document-store timestamps arrive as float64 values.
	got, ok := NormalizeDate(map[string]any{"seconds": float64(1700000000), "nanoseconds": float64(0)})
	require.True(t, ok)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), got)
}

func TestNormalizeDate_UnderscoreSecondsObject(t *testing.T) {
	got, ok := NormalizeDate(map[string]any{"_seconds": float64(1700000000)})
	require.True(t, ok)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), got)
}

func TestNormalizeDate_ObjectWithoutSeconds(t *testing.T) {
	_, ok := NormalizeDate(map[string]any{"foo": "bar"})
	assert.False(t, ok)
}

type fixedInstant time.Time

func (f fixedInstant) ToTime() time.Time { return time.Time(f) }

func TestNormalizeDate_TimeConvertible(t *testing.T) {
	want := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	got, ok := NormalizeDate(fixedInstant(want))
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestParseBirthDate_SlashFormat(t *testing.T) {
	got, ok := ParseBirthDate("25/12/2023")
	require.True(t, ok)
	assert.Equal(t, time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC), got)
}

func TestParseBirthDate_FallsBackToISO(t *testing.T) {
	got, ok := ParseBirthDate("2023-12-25")
	require.True(t, ok)
	assert.Equal(t, 25, got.Day())
}

func TestParseBirthDate_Invalid(t *testing.T) {
	_, ok := ParseBirthDate("soon")
	assert.False(t, ok)
}

func TestAgeString(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2y 3m", AgeString(time.Date(2022, 3, 10, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, "1y", AgeString(time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, "5m", AgeString(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, "14d", AgeString(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, "", AgeString(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, "", AgeString(time.Time{}, now))
}
