package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/mhutchins/crewcal/internal/domain"
)

// Project options
type ProjectOption func(*domain.Project)

func WithProjectStart(d time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.StartDate = d
	}
}

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		StartDate: time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC),
		Status:    domain.ProjectActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func NewTestTemplate(name string) *domain.PhaseTemplate {
	return &domain.PhaseTemplate{
		ID:           uuid.New().String(),
		Name:         name,
		BuildingType: "test",
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	}
}

// Template item options
type ItemOption func(*domain.PhaseTemplateItem)

func WithPredecessor(itemID string, lagDays int) ItemOption {
	return func(i *domain.PhaseTemplateItem) {
		i.PredecessorItemID = &itemID
		i.LagDays = lagDays
	}
}

func WithColor(color string) ItemOption {
	return func(i *domain.PhaseTemplateItem) {
		i.DefaultColor = color
	}
}

func NewTestItem(templateID, name string, durationDays, sortOrder int, opts ...ItemOption) domain.PhaseTemplateItem {
	item := domain.PhaseTemplateItem{
		ID:                  uuid.New().String(),
		TemplateID:          templateID,
		Name:                name,
		DefaultDurationDays: durationDays,
		SortOrder:           sortOrder,
	}
	for _, opt := range opts {
		opt(&item)
	}
	return item
}

// Phase options
type PhaseOption func(*domain.ProjectPhase)

func WithPublish(publish bool) PhaseOption {
	return func(p *domain.ProjectPhase) {
		p.PublishToCustomer = publish
	}
}

func WithPhaseStatus(s domain.PhaseStatus) PhaseOption {
	return func(p *domain.ProjectPhase) {
		p.Status = s
	}
}

func WithPhaseColor(color string) PhaseOption {
	return func(p *domain.ProjectPhase) {
		p.Color = color
	}
}

func NewTestPhase(projectID, name string, start time.Time, durationDays int, opts ...PhaseOption) *domain.ProjectPhase {
	now := time.Now().UTC()
	end := start
	if durationDays > 0 {
		end = start.AddDate(0, 0, durationDays-1)
	}
	p := &domain.ProjectPhase{
		ID:                uuid.New().String(),
		ProjectID:         projectID,
		Name:              name,
		Status:            domain.PhasePlanned,
		StartDate:         start,
		EndDate:           end,
		DurationDays:      durationDays,
		PublishToCustomer: true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Date is shorthand for a UTC midnight date in fixtures.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
