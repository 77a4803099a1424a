package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mhutchins/crewcal/internal/db"
	"github.com/mhutchins/crewcal/internal/domain"
	"github.com/mhutchins/crewcal/internal/repository"
	"github.com/mhutchins/crewcal/internal/scheduler"
)

type delayService struct {
	projects   repository.ProjectRepo
	phases     repository.PhaseRepo
	exceptions repository.ExceptionRepo
	sync       SyncService
	uow        db.UnitOfWork
	observer   UseCaseObserver
}

func NewDelayService(
	projects repository.ProjectRepo,
	phases repository.PhaseRepo,
	exceptions repository.ExceptionRepo,
	sync SyncService,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) DelayService {
	return &delayService{
		projects:   projects,
		phases:     phases,
		exceptions: exceptions,
		sync:       sync,
		uow:        uow,
		observer:   useCaseObserverOrNoop(observers),
	}
}

// ApplyGlobalDelay iterates projects sequentially, best-effort: one
// project's failure is recorded and the loop moves on. Each affected
// project's phase shifts, audit snapshot, and activity entry commit in one
// transaction; the customer-schedule resync runs after that commit and a
// resync failure does not roll the shift back.
func (s *delayService) ApplyGlobalDelay(ctx context.Context, exceptionDate time.Time, reason string, delayDays int) (result *DelayResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"exception_date": exceptionDate.Format("2006-01-02"),
		"delay_days":     delayDays,
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "apply-global-delay",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if delayDays <= 0 {
		return nil, fmt.Errorf("delay days must be positive, got %d", delayDays)
	}

	exception := &domain.GlobalException{
		ID:            uuid.New().String(),
		ExceptionDate: exceptionDate,
		Type:          domain.ExceptionWeather,
		Reason:        reason,
		DelayDays:     delayDays,
		CreatedAt:     time.Now().UTC(),
	}
	if err = s.exceptions.CreateGlobal(ctx, exception); err != nil {
		return nil, err
	}

	projectIDs, err := s.projects.ListIDs(ctx)
	if err != nil {
		return nil, err
	}

	affected := 0
	failed := 0
	for _, projectID := range projectIDs {
		shifted, perr := s.delayProject(ctx, projectID, exception)
		if perr != nil {
			failed++
			fields[fmt.Sprintf("project_%s_error", projectID)] = perr.Error()
			continue
		}
		if !shifted {
			continue
		}
		affected++

		// Republish the customer view. The shift is already committed; a
		// sync failure here is recorded, not rolled back.
		if _, serr := s.sync.SyncProject(ctx, projectID); serr != nil {
			fields[fmt.Sprintf("project_%s_sync_error", projectID)] = serr.Error()
		}
	}

	fields["projects_affected"] = affected
	fields["projects_failed"] = failed
	return &DelayResult{
		ExceptionID:      exception.ID,
		ProjectsAffected: affected,
	}, nil
}

// delayProject shifts one project's phases inside a transaction. Reports
// whether any phase was shifted.
func (s *delayService) delayProject(ctx context.Context, projectID string, exception *domain.GlobalException) (bool, error) {
	phases, err := s.phases.ListStartingOnOrAfter(ctx, projectID, exception.ExceptionDate)
	if err != nil {
		return false, err
	}
	if len(phases) == 0 {
		return false, nil
	}

	shifted, shifts := scheduler.ShiftPhases(phases, exception.ExceptionDate, exception.DelayDays)
	if len(shifted) == 0 {
		return false, nil
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPhases := repository.NewSQLitePhaseRepo(tx)
		txExceptions := repository.NewSQLiteExceptionRepo(tx)
		txActivities := repository.NewSQLiteActivityRepo(tx)

		for _, p := range shifted {
			if err := txPhases.UpdateDates(ctx, p.ID, p.StartDate, p.EndDate); err != nil {
				return err
			}
		}

		now := time.Now().UTC()
		if err := txExceptions.CreateProject(ctx, &domain.ProjectException{
			ID:                uuid.New().String(),
			ProjectID:         projectID,
			GlobalExceptionID: exception.ID,
			PhasesAffected:    shifts,
			DelayAppliedDays:  exception.DelayDays,
			CreatedAt:         now,
		}); err != nil {
			return err
		}

		pid := projectID
		return txActivities.Append(ctx, &domain.Activity{
			ID:        uuid.New().String(),
			ProjectID: &pid,
			Kind:      "schedule_delayed",
			Message:   fmt.Sprintf("Shifted %d phases by %d days (%s)", len(shifted), exception.DelayDays, exception.Reason),
			CreatedAt: now,
		})
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
