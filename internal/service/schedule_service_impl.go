package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mhutchins/crewcal/internal/calendar"
	"github.com/mhutchins/crewcal/internal/db"
	"github.com/mhutchins/crewcal/internal/domain"
	"github.com/mhutchins/crewcal/internal/repository"
	"github.com/mhutchins/crewcal/internal/scheduler"
)

type scheduleService struct {
	projects  repository.ProjectRepo
	templates repository.TemplateRepo
	holidays  repository.HolidayRepo
	phases    repository.PhaseRepo
	schedules repository.ScheduleRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewScheduleService(
	projects repository.ProjectRepo,
	templates repository.TemplateRepo,
	holidays repository.HolidayRepo,
	phases repository.PhaseRepo,
	schedules repository.ScheduleRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ScheduleService {
	return &scheduleService{
		projects:  projects,
		templates: templates,
		holidays:  holidays,
		phases:    phases,
		schedules: schedules,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *scheduleService) Generate(ctx context.Context, projectID, templateName string, publishToCustomer bool) (result *GenerateResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"project":  projectID,
		"template": templateName,
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "generate-schedule",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, projectID)
	}

	tmpl, err := s.templates.GetByName(ctx, templateName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, templateName)
	}
	if err != nil {
		return nil, err
	}

	items, err := s.templates.ListItems(ctx, tmpl.ID)
	if err != nil {
		return nil, err
	}
	if err = scheduler.ValidateTemplate(items); err != nil {
		return nil, err
	}

	dates, err := s.holidays.ListDates(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading holiday calendar: %w", err)
	}
	holidaySet := calendar.NewHolidaySet(dates)

	scheduled := scheduler.Schedule(items, holidaySet, project.StartDate)

	// Persist phases and their dependency edges atomically.
	now := time.Now().UTC()
	phaseIDByItem := make(map[string]string, len(scheduled))
	phaseRows := make([]domain.ProjectPhase, 0, len(scheduled))
	for _, sp := range scheduled {
		itemID := sp.Item.ID
		phase := domain.ProjectPhase{
			ID:                uuid.New().String(),
			ProjectID:         projectID,
			TemplateItemID:    &itemID,
			Name:              sp.Item.Name,
			Status:            domain.PhasePlanned,
			StartDate:         sp.Start,
			EndDate:           sp.End,
			DurationDays:      sp.DurationDays,
			PublishToCustomer: publishToCustomer,
			Color:             sp.Item.DefaultColor,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		phaseIDByItem[itemID] = phase.ID
		phaseRows = append(phaseRows, phase)
	}
	deps := scheduler.Dependencies(projectID, items, phaseIDByItem)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPhases := repository.NewSQLitePhaseRepo(tx)
		txDeps := repository.NewSQLiteDependencyRepo(tx)
		txActivities := repository.NewSQLiteActivityRepo(tx)

		for i := range phaseRows {
			if err := txPhases.Create(ctx, &phaseRows[i]); err != nil {
				return fmt.Errorf("creating phase %q: %w", phaseRows[i].Name, err)
			}
		}
		for i := range deps {
			if err := txDeps.Create(ctx, &deps[i]); err != nil {
				return fmt.Errorf("creating dependency: %w", err)
			}
		}

		pid := projectID
		return txActivities.Append(ctx, &domain.Activity{
			ID:        uuid.New().String(),
			ProjectID: &pid,
			Kind:      "schedule_generated",
			Message:   fmt.Sprintf("Generated %d phases from template %q", len(phaseRows), tmpl.Name),
			CreatedAt: time.Now().UTC(),
		})
	})
	if err != nil {
		return nil, err
	}

	fields["phases"] = len(phaseRows)
	fields["dependencies"] = len(deps)
	return &GenerateResult{
		PhasesCreated:       len(phaseRows),
		DependenciesCreated: len(deps),
	}, nil
}

func (s *scheduleService) GetSchedule(ctx context.Context, projectID string) (*domain.ProjectSchedule, error) {
	sched, err := s.schedules.Get(ctx, projectID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("no schedule published for project %s", projectID)
	}
	return sched, err
}

func (s *scheduleService) ListPhases(ctx context.Context, projectID string) ([]domain.ProjectPhase, error) {
	return s.phases.ListByProject(ctx, projectID)
}
