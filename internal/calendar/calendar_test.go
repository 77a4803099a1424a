package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, IsWeekend(day(2025, time.January, 4)), "Saturday")
	assert.True(t, IsWeekend(day(2025, time.January, 5)), "Sunday")
	assert.False(t, IsWeekend(day(2025, time.January, 6)), "Monday")
	assert.False(t, IsWeekend(day(2025, time.January, 10)), "Friday")
}

func TestIsNonWorkDay_WeekendsRegardlessOfHolidays(t *testing.T) {
	empty := NewHolidaySet(nil)
	// Every Saturday and Sunday of January 2025.
	for _, d := range []int{4, 5, 11, 12, 18, 19, 25, 26} {
		assert.True(t, IsNonWorkDay(day(2025, time.January, d), empty), "Jan %d", d)
	}
}

func TestIsNonWorkDay_Holiday(t *testing.T) {
	holidays := NewHolidaySet([]string{"2025-07-04"})
	assert.True(t, IsNonWorkDay(day(2025, time.July, 4), holidays), "listed holiday (a Friday)")
	assert.False(t, IsNonWorkDay(day(2025, time.July, 3), holidays))
}

func TestNextWorkday(t *testing.T) {
	empty := NewHolidaySet(nil)

	// Workday passes through unchanged.
	mon := day(2025, time.January, 6)
	assert.Equal(t, mon, NextWorkday(mon, empty))

	// Saturday rolls to Monday.
	assert.Equal(t, mon, NextWorkday(day(2025, time.January, 4), empty))

	// Holiday Friday rolls over the weekend to Monday.
	holidays := NewHolidaySet([]string{"2025-01-03"})
	assert.Equal(t, mon, NextWorkday(day(2025, time.January, 3), holidays))
}

func TestAddWorkdays_ZeroReturnsStart(t *testing.T) {
	d := day(2025, time.January, 6)
	assert.Equal(t, d, AddWorkdays(d, 0, nil))
}

func TestAddWorkdays_CountsStartAsFirstDay(t *testing.T) {
	// Mon Jan 6 + 5 workdays spans Mon..Fri inclusive.
	got := AddWorkdays(day(2025, time.January, 6), 5, nil)
	assert.Equal(t, day(2025, time.January, 10), got)
}

func TestAddWorkdays_SkipsWeekend(t *testing.T) {
	// 10 workdays from Mon Jan 13 crosses the Jan 18-19 weekend.
	got := AddWorkdays(day(2025, time.January, 13), 10, nil)
	assert.Equal(t, day(2025, time.January, 24), got)
}

func TestAddWorkdays_SkipsHolidays(t *testing.T) {
	holidays := NewHolidaySet([]string{"2025-01-08"})
	// Mon 6, Tue 7, (Wed 8 holiday), Thu 9 → 3 workdays.
	got := AddWorkdays(day(2025, time.January, 6), 3, holidays)
	assert.Equal(t, day(2025, time.January, 9), got)
}

func TestAddWorkdays_MonotoneAndLandsOnWorkday(t *testing.T) {
	holidays := NewHolidaySet([]string{"2025-01-01", "2025-01-08"})
	start := day(2024, time.December, 28) // a Saturday
	for n := 1; n <= 15; n++ {
		got := AddWorkdays(start, n, holidays)
		assert.False(t, got.Before(start), "n=%d", n)
		assert.False(t, IsNonWorkDay(got, holidays), "n=%d lands on %s", n, got.Format(ISODate))
	}
}

func TestAddLag_ZeroIsNextWorkdayStrictlyAfter(t *testing.T) {
	// Lag 0 after Fri Jan 10 is Mon Jan 13.
	got := AddLag(day(2025, time.January, 10), 0, nil)
	assert.Equal(t, day(2025, time.January, 13), got)

	// Lag 0 after Mon Jan 6 is Tue Jan 7.
	got = AddLag(day(2025, time.January, 6), 0, nil)
	assert.Equal(t, day(2025, time.January, 7), got)
}

func TestAddLag_CountsWorkdaysOnly(t *testing.T) {
	// Two lag days after Fri Jan 10: the weekend does not count, so the
	// lag lands Tue Jan 14.
	got := AddLag(day(2025, time.January, 10), 2, nil)
	assert.Equal(t, day(2025, time.January, 14), got)
}

func TestAddLag_SkipsHolidays(t *testing.T) {
	holidays := NewHolidaySet([]string{"2025-01-13"})
	// One lag day after Fri Jan 10: Sat, Sun, and the Monday holiday are
	// all skipped, landing Tue Jan 14.
	got := AddLag(day(2025, time.January, 10), 1, holidays)
	assert.Equal(t, day(2025, time.January, 14), got)
}
