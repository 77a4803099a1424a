package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/mhutchins/crewcal/internal/db"
	"github.com/mhutchins/crewcal/internal/domain"
)

// SQLiteScheduleRepo implements ScheduleRepo over SQLite. The schedule_data
// column holds the customer-facing phase rows as a JSON array.
type SQLiteScheduleRepo struct {
	conn db.DBTX
}

func NewSQLiteScheduleRepo(conn db.DBTX) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{conn: conn}
}

func (r *SQLiteScheduleRepo) Upsert(ctx context.Context, s *domain.ProjectSchedule) error {
	data, err := json.Marshal(s.Phases)
	if err != nil {
		return fmt.Errorf("encoding schedule data: %w", err)
	}
	if s.Phases == nil {
		data = []byte("[]")
	}

	var startDate interface{}
	if s.ProjectStartDate != nil {
		startDate = s.ProjectStartDate.Format(dateLayout)
	}

	query := `INSERT INTO project_schedules
		(project_id, project_start_date, total_duration_days, schedule_data, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(project_id) DO UPDATE SET
			project_start_date = excluded.project_start_date,
			total_duration_days = excluded.total_duration_days,
			schedule_data = excluded.schedule_data,
			updated_at = excluded.updated_at`
	_, err = r.conn.ExecContext(ctx, query,
		s.ProjectID, startDate, s.TotalDurationDays, string(data), nowUTC())
	if err != nil {
		return fmt.Errorf("upserting project schedule: %w", err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) Get(ctx context.Context, projectID string) (*domain.ProjectSchedule, error) {
	query := `SELECT project_id, project_start_date, total_duration_days, schedule_data, updated_at
		FROM project_schedules WHERE project_id = ?`
	var s domain.ProjectSchedule
	var startDate sql.NullString
	var data, updatedAt string
	err := r.conn.QueryRowContext(ctx, query, projectID).Scan(
		&s.ProjectID, &startDate, &s.TotalDurationDays, &data, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("getting project schedule: %w", err)
	}
	s.ProjectStartDate = parseNullableDate(startDate)
	s.UpdatedAt = parseTime(updatedAt)
	if err := json.Unmarshal([]byte(data), &s.Phases); err != nil {
		return nil, fmt.Errorf("decoding schedule data: %w", err)
	}
	return &s, nil
}
