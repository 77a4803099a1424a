// Package scheduler computes concrete phase dates from a phase template:
// a dependency-aware walk over the template items that places each phase on
// workdays, honoring finish-to-start chains with lag. It also derives the
// customer-facing schedule projection and global delay shifts. The package
// is pure; persistence happens in the service layer.
package scheduler

import (
	"time"

	"github.com/mhutchins/crewcal/internal/calendar"
	"github.com/mhutchins/crewcal/internal/domain"
)

// ScheduledPhase is one computed phase, pre-persistence.
type ScheduledPhase struct {
	Item         domain.PhaseTemplateItem
	Start        time.Time
	End          time.Time
	DurationDays int
}

// Schedule walks templateItems in order and computes start/end dates for
// each, starting the project at projectStart (normalized forward to a
// workday). Items with a predecessor start after the predecessor's end plus
// lag; items without one are scheduled back-to-back after whatever preceded
// them in list order, modeling a single crew moving through the phases.
//
// Callers must validate the template first (see ValidateTemplate); items are
// assumed sorted so predecessors appear before their successors.
func Schedule(templateItems []domain.PhaseTemplateItem, holidays calendar.HolidaySet, projectStart time.Time) []ScheduledPhase {
	current := calendar.NextWorkday(projectStart, holidays)
	scheduled := make([]ScheduledPhase, 0, len(templateItems))
	byItemID := make(map[string]int, len(templateItems))

	for _, item := range templateItems {
		if item.PredecessorItemID != nil {
			if idx, ok := byItemID[*item.PredecessorItemID]; ok {
				current = calendar.AddLag(scheduled[idx].End, item.LagDays, holidays)
			}
		}
		current = calendar.NextWorkday(current, holidays)

		duration := item.DefaultDurationDays
		if duration < 0 {
			duration = 0
		}
		start := current
		end := start
		if duration > 0 {
			end = calendar.AddWorkdays(start, duration, holidays)
		}

		byItemID[item.ID] = len(scheduled)
		scheduled = append(scheduled, ScheduledPhase{
			Item:         item,
			Start:        start,
			End:          end,
			DurationDays: duration,
		})

		// Cursor for the next item when it has no predecessor of its own.
		current = calendar.NextWorkday(end.AddDate(0, 0, 1), holidays)
	}

	return scheduled
}

// Dependencies maps the template's predecessor edges onto concrete phase
// IDs. phaseIDByItem maps template item ID to the persisted phase ID. Items
// whose own or predecessor mapping is missing are skipped.
func Dependencies(projectID string, templateItems []domain.PhaseTemplateItem, phaseIDByItem map[string]string) []domain.PhaseDependency {
	var deps []domain.PhaseDependency
	for _, item := range templateItems {
		if item.PredecessorItemID == nil {
			continue
		}
		predID, ok := phaseIDByItem[*item.PredecessorItemID]
		if !ok {
			continue
		}
		succID, ok := phaseIDByItem[item.ID]
		if !ok {
			continue
		}
		deps = append(deps, domain.PhaseDependency{
			ProjectID:          projectID,
			PredecessorPhaseID: predID,
			SuccessorPhaseID:   succID,
			Type:               domain.DependencyFinishToStart,
			LagDays:            item.LagDays,
		})
	}
	return deps
}
