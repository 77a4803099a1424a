package repository

import (
	"context"
	"time"

	"github.com/mhutchins/crewcal/internal/domain"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	ListIDs(ctx context.Context) ([]string, error)
}

type TemplateRepo interface {
	Create(ctx context.Context, t *domain.PhaseTemplate) error
	CreateItem(ctx context.Context, item *domain.PhaseTemplateItem) error
	GetByName(ctx context.Context, name string) (*domain.PhaseTemplate, error)
	List(ctx context.Context) ([]*domain.PhaseTemplate, error)
	// ListItems returns a template's items ordered by sort_order.
	ListItems(ctx context.Context, templateID string) ([]domain.PhaseTemplateItem, error)
}

type HolidayRepo interface {
	// InsertIfAbsent inserts a holiday unless its date is already present.
	// Reports whether a row was inserted.
	InsertIfAbsent(ctx context.Context, h domain.Holiday) (bool, error)
	List(ctx context.Context) ([]domain.Holiday, error)
	ListDates(ctx context.Context) ([]string, error)
}

type PhaseRepo interface {
	Create(ctx context.Context, p *domain.ProjectPhase) error
	GetByID(ctx context.Context, id string) (*domain.ProjectPhase, error)
	// ListByProject returns all of a project's phases ordered by start_date.
	ListByProject(ctx context.Context, projectID string) ([]domain.ProjectPhase, error)
	// ListPublished returns the customer-visible phases ordered by start_date.
	ListPublished(ctx context.Context, projectID string) ([]domain.ProjectPhase, error)
	// ListStartingOnOrAfter returns phases whose start date is on or after
	// cutoff, ordered by start_date.
	ListStartingOnOrAfter(ctx context.Context, projectID string, cutoff time.Time) ([]domain.ProjectPhase, error)
	UpdateDates(ctx context.Context, id string, start, end time.Time) error
}

type DependencyRepo interface {
	Create(ctx context.Context, d *domain.PhaseDependency) error
	ListByProject(ctx context.Context, projectID string) ([]domain.PhaseDependency, error)
}

type ScheduleRepo interface {
	// Upsert fully replaces the project's schedule row.
	Upsert(ctx context.Context, s *domain.ProjectSchedule) error
	Get(ctx context.Context, projectID string) (*domain.ProjectSchedule, error)
}

type ExceptionRepo interface {
	CreateGlobal(ctx context.Context, e *domain.GlobalException) error
	CreateProject(ctx context.Context, e *domain.ProjectException) error
	ListGlobal(ctx context.Context) ([]domain.GlobalException, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.ProjectException, error)
}

type ActivityRepo interface {
	Append(ctx context.Context, a *domain.Activity) error
	ListByProject(ctx context.Context, projectID string) ([]domain.Activity, error)
}
