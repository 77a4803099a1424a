package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultHolidays_NinePerYear(t *testing.T) {
	holidays := DefaultHolidays(2025)
	require.Len(t, holidays, 9)

	dates := make(map[string]string, len(holidays))
	for _, h := range holidays {
		dates[h.Date] = h.Name
	}
	assert.Len(t, dates, 9, "no duplicate dates")
}

func TestDefaultHolidays_FixedDates2025(t *testing.T) {
	dates := holidayDates(t, 2025)
	assert.Contains(t, dates, "2025-01-01")
	assert.Contains(t, dates, "2025-07-04")
	assert.Contains(t, dates, "2025-12-24")
	assert.Contains(t, dates, "2025-12-25")
	assert.Contains(t, dates, "2025-12-26")
}

func TestDefaultHolidays_FloatingDates2025(t *testing.T) {
	dates := holidayDates(t, 2025)
	assert.Contains(t, dates, "2025-05-26", "Memorial Day: last Monday of May")
	assert.Contains(t, dates, "2025-09-01", "Labor Day: first Monday of September")
	assert.Contains(t, dates, "2025-11-27", "Thanksgiving: fourth Thursday of November")
	assert.Contains(t, dates, "2025-11-28", "day after Thanksgiving")
}

func TestDefaultHolidays_FloatingDates2026(t *testing.T) {
	dates := holidayDates(t, 2026)
	assert.Contains(t, dates, "2026-05-25")
	assert.Contains(t, dates, "2026-09-07")
	assert.Contains(t, dates, "2026-11-26")
}

func holidayDates(t *testing.T, year int) []string {
	t.Helper()
	holidays := DefaultHolidays(year)
	dates := make([]string, 0, len(holidays))
	for _, h := range holidays {
		dates = append(dates, h.Date)
	}
	return dates
}
