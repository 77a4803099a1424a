package domain

import "time"

// ProjectPhase is a concrete scheduled phase of one project. Created in bulk
// by the scheduler; dates may later be shifted by global delays or edited by
// hand.
type ProjectPhase struct {
	ID                string
	ProjectID         string
	TemplateItemID    *string
	Name              string
	Status            PhaseStatus
	StartDate         time.Time
	EndDate           time.Time
	DurationDays      int
	PublishToCustomer bool
	Color             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// PhaseDependency mirrors a template's predecessor edge onto concrete phase
// IDs. Predecessor and successor always belong to the same project.
type PhaseDependency struct {
	ProjectID          string
	PredecessorPhaseID string
	SuccessorPhaseID   string
	Type               DependencyType
	LagDays            int
}
