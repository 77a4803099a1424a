package domain

type PhaseStatus string

const (
	PhasePlanned    PhaseStatus = "Planned"
	PhaseInProgress PhaseStatus = "In Progress"
	PhaseComplete   PhaseStatus = "Complete"
	PhaseOnHold     PhaseStatus = "On Hold"
)

type DependencyType string

const (
	// DependencyFinishToStart is the only dependency type the scheduler
	// emits: a successor cannot start until its predecessor finishes.
	DependencyFinishToStart DependencyType = "FS"
)

type ExceptionType string

const (
	ExceptionWeather ExceptionType = "weather"
)

type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "active"
	ProjectOnHold   ProjectStatus = "on_hold"
	ProjectComplete ProjectStatus = "complete"
)
