package scheduler

import (
	"time"

	"github.com/mhutchins/crewcal/internal/calendar"
	"github.com/mhutchins/crewcal/internal/domain"
)

// DeriveCustomerSchedule rebuilds the compact customer-facing schedule from
// a project's published phases (callers pass phases already filtered to
// publishToCustomer, ordered by start date). Zero-duration phases are
// excluded entirely.
//
// The derivation ignores each phase's stored dates beyond finding the
// earliest one: phases are re-laid back-to-back from that date using only
// their durations and list order, skipping weekends. Holidays are
// deliberately not consulted here; the customer view trades holiday
// precision for a simple contiguous timeline.
//
// Deterministic and idempotent: the same phases in the same order always
// produce the same schedule.
func DeriveCustomerSchedule(projectID string, phases []domain.ProjectPhase) domain.ProjectSchedule {
	var published []domain.ProjectPhase
	for _, p := range phases {
		if p.DurationDays > 0 {
			published = append(published, p)
		}
	}

	sched := domain.ProjectSchedule{ProjectID: projectID}
	if len(published) == 0 {
		return sched
	}

	start := published[0].StartDate
	for _, p := range published {
		if p.StartDate.Before(start) {
			start = p.StartDate
		}
		if p.EndDate.Before(start) {
			start = p.EndDate
		}
	}

	minDate, maxDate := start, start
	current := start
	rows := make([]domain.SchedulePhase, 0, len(published))
	for _, p := range published {
		phaseStart := current
		phaseEnd := calendar.AddWorkdays(phaseStart, p.DurationDays, nil)
		rows = append(rows, domain.SchedulePhase{
			Name:      p.Name,
			Workdays:  p.DurationDays,
			StartDate: phaseStart.Format(calendar.ISODate),
			EndDate:   phaseEnd.Format(calendar.ISODate),
			Color:     p.Color,
		})
		if phaseStart.Before(minDate) {
			minDate = phaseStart
		}
		if phaseEnd.After(maxDate) {
			maxDate = phaseEnd
		}
		current = phaseEnd.AddDate(0, 0, 1)
	}

	projectStart := start
	sched.ProjectStartDate = &projectStart
	sched.TotalDurationDays = inclusiveDaySpan(minDate, maxDate)
	sched.Phases = rows
	return sched
}

// inclusiveDaySpan counts calendar days from a through b, both ends
// included.
func inclusiveDaySpan(a, b time.Time) int {
	if b.Before(a) {
		return 0
	}
	return int(b.Sub(a).Hours()/24) + 1
}
