package domain

import "time"

// SchedulePhase is one row of the customer-facing schedule projection.
// Serialized as JSON into the project_schedules.schedule_data column.
type SchedulePhase struct {
	Name      string `json:"name"`
	Workdays  int    `json:"workdays"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Color     string `json:"color,omitempty"`
}

// ProjectSchedule is the derived customer view of a project's published
// phases. One row per project, rebuilt wholesale by the synchronizer.
type ProjectSchedule struct {
	ProjectID         string
	ProjectStartDate  *time.Time
	TotalDurationDays int
	Phases            []SchedulePhase
	UpdatedAt         time.Time
}
