package service

import (
	"context"
	"time"

	"github.com/mhutchins/crewcal/internal/domain"
)

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
}

type TemplateService interface {
	// ImportFile loads a phase template definition from a JSON file,
	// validates its dependency structure, and persists it.
	ImportFile(ctx context.Context, path string) (*domain.PhaseTemplate, error)
	List(ctx context.Context) ([]*domain.PhaseTemplate, error)
	GetByName(ctx context.Context, name string) (*domain.PhaseTemplate, []domain.PhaseTemplateItem, error)
}

type HolidayService interface {
	// SeedDefaultHolidays inserts the standard US holidays for the given
	// years. Idempotent and best-effort: a storage failure stops seeding
	// but is not returned as an error. Reports how many rows were inserted.
	SeedDefaultHolidays(ctx context.Context, years []int) int
	List(ctx context.Context, year int) ([]domain.Holiday, error)
}

// GenerateResult reports what one scheduling run created.
type GenerateResult struct {
	PhasesCreated       int
	DependenciesCreated int
}

type ScheduleService interface {
	// Generate computes and persists concrete phases plus their dependency
	// edges for a project from a named template. All-or-nothing: runs in a
	// single transaction.
	Generate(ctx context.Context, projectID, templateName string, publishToCustomer bool) (*GenerateResult, error)
	GetSchedule(ctx context.Context, projectID string) (*domain.ProjectSchedule, error)
	ListPhases(ctx context.Context, projectID string) ([]domain.ProjectPhase, error)
}

type SyncService interface {
	// SyncProject rebuilds the customer-facing schedule projection for one
	// project from its published phases. Idempotent full-replace upsert.
	SyncProject(ctx context.Context, projectID string) (*domain.ProjectSchedule, error)
}

// DelayResult reports the outcome of a global delay application.
type DelayResult struct {
	ExceptionID      string
	ProjectsAffected int
}

type DelayService interface {
	// ApplyGlobalDelay shifts every phase starting on or after the exception
	// date forward by delayDays calendar days, across all projects, then
	// resynchronizes each affected project's customer schedule. Per-project
	// failures are recorded and skipped; the loop continues.
	ApplyGlobalDelay(ctx context.Context, exceptionDate time.Time, reason string, delayDays int) (*DelayResult, error)
}
