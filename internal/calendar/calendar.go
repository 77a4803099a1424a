// Package calendar implements workday-aware date arithmetic: weekend and
// holiday predicates, workday addition, and finish-to-start lag placement.
// All functions are pure; the holiday set is passed in by the caller.
package calendar

import "time"

// ISODate is the date-only layout used everywhere dates cross a boundary
// (holiday keys, stored phase dates, customer schedule rows).
const ISODate = "2006-01-02"

// HolidaySet is a set of holiday dates keyed by ISO date string.
type HolidaySet map[string]struct{}

// NewHolidaySet builds a HolidaySet from ISO date strings. Duplicates
// collapse; a nil or empty input yields an empty set.
func NewHolidaySet(dates []string) HolidaySet {
	set := make(HolidaySet, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return set
}

// Contains reports whether the given date is in the set.
func (s HolidaySet) Contains(d time.Time) bool {
	_, ok := s[d.Format(ISODate)]
	return ok
}

// IsWeekend reports whether d falls on a Saturday or Sunday.
func IsWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsNonWorkDay reports whether d is a weekend day or a listed holiday.
// An empty holiday set degrades to pure weekend checking.
func IsNonWorkDay(d time.Time, holidays HolidaySet) bool {
	return IsWeekend(d) || holidays.Contains(d)
}

// NextWorkday returns d unchanged if it is a workday, otherwise the first
// workday after it.
func NextWorkday(d time.Time, holidays HolidaySet) time.Time {
	for IsNonWorkDay(d, holidays) {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// AddWorkdays returns the date on which the nth workday falls, counting
// start itself as the first workday if it is one. AddWorkdays(d, 0) = d,
// so a zero-duration phase starts and ends on the same day. Callers wanting
// "phase spans n workdays inclusive of start" must pass a start that is
// already a workday.
func AddWorkdays(start time.Time, n int, holidays HolidaySet) time.Time {
	if n <= 0 {
		return start
	}
	d := start
	counted := 0
	for {
		if !IsNonWorkDay(d, holidays) {
			counted++
			if counted == n {
				return d
			}
		}
		d = d.AddDate(0, 0, 1)
	}
}

// AddLag returns the first workday at least lagDays workdays strictly after
// after. Lag days are counted on workdays only, so a lag of 2 after a Friday
// lands on the following Tuesday. AddLag(d, 0) is the next workday strictly
// after d.
func AddLag(after time.Time, lagDays int, holidays HolidaySet) time.Time {
	d := after
	counted := 0
	for counted < lagDays {
		d = d.AddDate(0, 0, 1)
		if !IsNonWorkDay(d, holidays) {
			counted++
		}
	}
	if lagDays <= 0 {
		d = d.AddDate(0, 0, 1)
	}
	return NextWorkday(d, holidays)
}
