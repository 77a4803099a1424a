package domain

import "time"

// PhaseTemplate is a named, building-type-specific list of construction
// phases (e.g. "Barndominium"). Templates are reference data: the scheduler
// reads them, never mutates them.
type PhaseTemplate struct {
	ID           string
	Name         string
	BuildingType string
	Active       bool
	CreatedAt    time.Time
}

// PhaseTemplateItem is one row of a phase template. PredecessorItemID, when
// set, defines a finish-to-start dependency on another item in the same
// template; LagDays is the workday gap between the predecessor's end and
// this item's start.
type PhaseTemplateItem struct {
	ID                  string
	TemplateID          string
	Name                string
	DefaultDurationDays int
	DefaultColor        string
	PredecessorItemID   *string
	LagDays             int
	SortOrder           int
}
