package service

import (
	"context"
	"time"

	"github.com/mhutchins/crewcal/internal/domain"
	"github.com/mhutchins/crewcal/internal/repository"
	"github.com/mhutchins/crewcal/internal/scheduler"
)

type syncService struct {
	phases    repository.PhaseRepo
	schedules repository.ScheduleRepo
	observer  UseCaseObserver
}

func NewSyncService(phases repository.PhaseRepo, schedules repository.ScheduleRepo, observers ...UseCaseObserver) SyncService {
	return &syncService{
		phases:    phases,
		schedules: schedules,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// SyncProject is a read-aggregate-write projection: it reads the published
// phases, re-derives the compact customer timeline from their durations and
// order, and fully replaces the project's schedule row. Re-running with
// unchanged phases writes an identical row.
func (s *syncService) SyncProject(ctx context.Context, projectID string) (sched *domain.ProjectSchedule, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		fields := map[string]any{"project": projectID}
		if sched != nil {
			fields["phases"] = len(sched.Phases)
			fields["total_days"] = sched.TotalDurationDays
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "sync-schedule",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	published, err := s.phases.ListPublished(ctx, projectID)
	if err != nil {
		return nil, err
	}

	derived := scheduler.DeriveCustomerSchedule(projectID, published)
	if err = s.schedules.Upsert(ctx, &derived); err != nil {
		return nil, err
	}
	return &derived, nil
}
