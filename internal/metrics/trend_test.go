package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nli/internal/models"
)

func TestComputeTrend_UnboundedWindow(t *testing.T) {
	assert.Nil(t, ComputeTrend(nil, nil, models.DateWindow{}))
}

func TestComputeTrend_ShiftedWindowCounts(t *testing.T) {
	// window [day 10, day 20] → comparison [day 0, day 10]
	day := func(n int) string {
		return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n).Format(time.RFC3339)
	}
	w := boundedWindow(t, "2024-01-11", "2024-01-21")

	accounts := []models.Account{
		{ID: "a1", CreatedAt: day(5)},
		{ID: "a2", CreatedAt: day(15)},
	}
	profiles := []models.ChildProfile{
		{ID: "c1", CreatedAt: day(5)},
		{ID: "c2", CreatedAt: day(12)},
	}

	prev := ComputeTrend(accounts, profiles, w)
	require.NotNil(t, prev)
	assert.Equal(t, 1, prev.TotalAccounts)
	assert.Equal(t, 1, prev.TotalChildren)
}

func TestComputeTrend_RecencyAnchorsToShiftedEnd(t *testing.T) {
	w := boundedWindow(t, "2024-03-11", "2024-03-20")
	prevEnd := w.Shifted().End

	profiles := []models.ChildProfile{
		{
			ID:        "c1",
			CreatedAt: prevEnd.AddDate(0, 0, -5).Format(time.RFC3339),
			Events: []models.ActivityEvent{
				{Type: "sleep", OccurredAt: prevEnd.AddDate(0, 0, -2).Format(time.RFC3339)},
			},
		},
	}

	prev := ComputeTrend(nil, profiles, w)
	require.NotNil(t, prev)
	// The event is ancient relative to real now but recent relative to the
	// comparison window's end.
	assert.Equal(t, 1, prev.RecentlyActive)
}
