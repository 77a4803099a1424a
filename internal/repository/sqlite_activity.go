package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mhutchins/crewcal/internal/db"
	"github.com/mhutchins/crewcal/internal/domain"
)

// SQLiteActivityRepo implements ActivityRepo over SQLite.
type SQLiteActivityRepo struct {
	conn db.DBTX
}

func NewSQLiteActivityRepo(conn db.DBTX) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{conn: conn}
}

func (r *SQLiteActivityRepo) Append(ctx context.Context, a *domain.Activity) error {
	query := `INSERT INTO activities (id, project_id, kind, message, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.conn.ExecContext(ctx, query,
		a.ID, nullableString(a.ProjectID), a.Kind, a.Message, a.CreatedAt.Format(timeLayout))
	if err != nil {
		return fmt.Errorf("appending activity: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) ListByProject(ctx context.Context, projectID string) ([]domain.Activity, error) {
	query := `SELECT id, project_id, kind, message, created_at
		FROM activities WHERE project_id = ? ORDER BY created_at`
	rows, err := r.conn.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		var a domain.Activity
		var pid sql.NullString
		var createdAt string
		if err := rows.Scan(&a.ID, &pid, &a.Kind, &a.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning activity: %w", err)
		}
		a.ProjectID = stringPtr(pid)
		a.CreatedAt = parseTime(createdAt)
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activities: %w", err)
	}
	return activities, nil
}
