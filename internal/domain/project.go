package domain

import "time"

type Project struct {
	ID        string
	Name      string
	StartDate time.Time
	Status    ProjectStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
