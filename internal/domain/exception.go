package domain

import "time"

// GlobalException is a schedule-wide delay event (weather, typically) that
// shifts every project's future phases.
type GlobalException struct {
	ID            string
	ExceptionDate time.Time
	Type          ExceptionType
	Reason        string
	DelayDays     int
	CreatedAt     time.Time
}

// PhaseShift is the before/after audit snapshot of one shifted phase.
// Serialized as JSON into project_exceptions.phases_affected.
type PhaseShift struct {
	PhaseID       string `json:"phaseId"`
	Name          string `json:"name"`
	OriginalStart string `json:"originalStart"`
	NewStart      string `json:"newStart"`
	OriginalEnd   string `json:"originalEnd"`
	NewEnd        string `json:"newEnd"`
}

// ProjectException records how one project was affected by a global
// exception. PhasesAffected is a snapshot taken at shift time, never
// re-derived.
type ProjectException struct {
	ID                string
	ProjectID         string
	GlobalExceptionID string
	PhasesAffected    []PhaseShift
	DelayAppliedDays  int
	CreatedAt         time.Time
}
