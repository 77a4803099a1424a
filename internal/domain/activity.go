package domain

import "time"

// Activity is one audit-log entry. ProjectID is nil for system-wide events.
type Activity struct {
	ID        string
	ProjectID *string
	Kind      string
	Message   string
	CreatedAt time.Time
}
