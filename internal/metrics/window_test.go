package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)

func TestResolveWindow_All(t *testing.T) {
	w, err := ResolveWindow(PresetAll, nil, nil, testNow)
	require.NoError(t, err)
	assert.False(t, w.Bounded())
}

func TestResolveWindow_Today(t *testing.T) {
	w, err := ResolveWindow(PresetToday, nil, nil, testNow)
	require.NoError(t, err)
	require.True(t, w.Bounded())
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), *w.Start)
	assert.Equal(t, time.Date(2024, 6, 15, 23, 59, 59, 999_000_000, time.UTC), *w.End)
}

func TestResolveWindow_Yesterday(t *testing.T) {
	w, err := ResolveWindow(PresetYesterday, nil, nil, testNow)
	require.NoError(t, err)
	require.True(t, w.Bounded())
	assert.Equal(t, 14, w.Start.Day())
	assert.Equal(t, 14, w.End.Day())
}

func TestResolveWindow_Rolling(t *testing.T) {
	for preset, days := range map[Preset]int{Preset7Days: 7, Preset30Days: 30, Preset3Months: 90} {
		w, err := ResolveWindow(preset, nil, nil, testNow)
		require.NoError(t, err)
		require.True(t, w.Bounded())
		// Rolling windows anchor to the current instant, not midnight.
		assert.Equal(t, testNow, *w.End)
		assert.Equal(t, testNow.AddDate(0, 0, -days), *w.Start)
	}
}

func TestResolveWindow_Custom(t *testing.T) {
	from := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	w, err := ResolveWindow(PresetCustom, &from, &to, testNow)
	require.NoError(t, err)
	require.True(t, w.Bounded())
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), *w.Start)
	assert.Equal(t, time.Date(2024, 1, 20, 23, 59, 59, 999_000_000, time.UTC), *w.End)
}

func TestResolveWindow_CustomMissingBounds(t *testing.T) {
	from := testNow
	_, err := ResolveWindow(PresetCustom, &from, nil, testNow)
	assert.Error(t, err)
}

func TestResolveWindow_UnknownPreset(t *testing.T) {
	_, err := ResolveWindow(Preset("fortnight"), nil, nil, testNow)
	assert.Error(t, err)
}

func TestDateWindow_Shifted(t *testing.T) {
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	w, err := ResolveWindow(PresetCustom, &start, &end, testNow)
	require.NoError(t, err)

	prev := w.Shifted()
	require.True(t, prev.Bounded())
	assert.Equal(t, w.End.Sub(*w.Start), prev.End.Sub(*prev.Start))
	assert.True(t, prev.End.Before(*w.End))
}
