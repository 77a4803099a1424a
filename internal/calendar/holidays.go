package calendar

import (
	"time"

	"github.com/mhutchins/crewcal/internal/domain"
)

// DefaultHolidays returns the standard US construction-industry holidays for
// one year: New Year's Day, Memorial Day, Independence Day, Labor Day,
// Thanksgiving and the day after, and Christmas Eve through the day after
// Christmas. Nine dates per year.
func DefaultHolidays(year int) []domain.Holiday {
	thanksgiving := thanksgivingDay(year)
	days := []struct {
		date time.Time
		name string
	}{
		{date(year, time.January, 1), "New Year's Day"},
		{memorialDay(year), "Memorial Day"},
		{date(year, time.July, 4), "Independence Day"},
		{laborDay(year), "Labor Day"},
		{thanksgiving, "Thanksgiving"},
		{thanksgiving.AddDate(0, 0, 1), "Day After Thanksgiving"},
		{date(year, time.December, 24), "Christmas Eve"},
		{date(year, time.December, 25), "Christmas Day"},
		{date(year, time.December, 26), "Day After Christmas"},
	}

	holidays := make([]domain.Holiday, 0, len(days))
	for _, d := range days {
		holidays = append(holidays, domain.Holiday{
			Date: d.date.Format(ISODate),
			Name: d.name,
		})
	}
	return holidays
}

// memorialDay is the last Monday of May.
func memorialDay(year int) time.Time {
	may31 := date(year, time.May, 31)
	back := (int(may31.Weekday()) + 6) % 7
	return may31.AddDate(0, 0, -back)
}

// laborDay is the first Monday of September.
func laborDay(year int) time.Time {
	sep1 := date(year, time.September, 1)
	forward := (8 - int(sep1.Weekday())) % 7
	return sep1.AddDate(0, 0, forward)
}

// thanksgivingDay is the fourth Thursday of November.
func thanksgivingDay(year int) time.Time {
	nov1 := date(year, time.November, 1)
	toThursday := (int(time.Thursday) - int(nov1.Weekday()) + 7) % 7
	return nov1.AddDate(0, 0, toThursday+21)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
