package scheduler

import (
	"time"

	"github.com/mhutchins/crewcal/internal/calendar"
	"github.com/mhutchins/crewcal/internal/domain"
)

// ShiftPhases applies a flat calendar-day delay to every phase starting on
// or after cutoff. The shift is deliberately not workday-aware: a shifted
// boundary may land on a weekend, and the customer-schedule derivation run
// afterwards rebuilds presentable dates from durations. Returns the shifted
// phases and the before/after audit snapshot; phases starting before cutoff
// are untouched and not returned.
func ShiftPhases(phases []domain.ProjectPhase, cutoff time.Time, delayDays int) ([]domain.ProjectPhase, []domain.PhaseShift) {
	var shifted []domain.ProjectPhase
	var shifts []domain.PhaseShift
	for _, p := range phases {
		if p.StartDate.Before(cutoff) {
			continue
		}
		moved := p
		moved.StartDate = p.StartDate.AddDate(0, 0, delayDays)
		moved.EndDate = p.EndDate.AddDate(0, 0, delayDays)
		shifted = append(shifted, moved)
		shifts = append(shifts, domain.PhaseShift{
			PhaseID:       p.ID,
			Name:          p.Name,
			OriginalStart: p.StartDate.Format(calendar.ISODate),
			NewStart:      moved.StartDate.Format(calendar.ISODate),
			OriginalEnd:   p.EndDate.Format(calendar.ISODate),
			NewEnd:        moved.EndDate.Format(calendar.ISODate),
		})
	}
	return shifted, shifts
}
