package repository

import (
	"context"
	"fmt"

	"github.com/mhutchins/crewcal/internal/db"
	"github.com/mhutchins/crewcal/internal/domain"
)

// SQLiteDependencyRepo implements DependencyRepo over SQLite.
type SQLiteDependencyRepo struct {
	conn db.DBTX
}

func NewSQLiteDependencyRepo(conn db.DBTX) *SQLiteDependencyRepo {
	return &SQLiteDependencyRepo{conn: conn}
}

func (r *SQLiteDependencyRepo) Create(ctx context.Context, d *domain.PhaseDependency) error {
	query := `INSERT INTO phase_dependencies
		(project_id, predecessor_phase_id, successor_phase_id, dep_type, lag_days)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.conn.ExecContext(ctx, query,
		d.ProjectID, d.PredecessorPhaseID, d.SuccessorPhaseID, string(d.Type), d.LagDays)
	if err != nil {
		return fmt.Errorf("inserting phase dependency: %w", err)
	}
	return nil
}

func (r *SQLiteDependencyRepo) ListByProject(ctx context.Context, projectID string) ([]domain.PhaseDependency, error) {
	query := `SELECT project_id, predecessor_phase_id, successor_phase_id, dep_type, lag_days
		FROM phase_dependencies WHERE project_id = ?`
	rows, err := r.conn.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing phase dependencies: %w", err)
	}
	defer rows.Close()

	var deps []domain.PhaseDependency
	for rows.Next() {
		var d domain.PhaseDependency
		var depType string
		if err := rows.Scan(&d.ProjectID, &d.PredecessorPhaseID, &d.SuccessorPhaseID, &depType, &d.LagDays); err != nil {
			return nil, fmt.Errorf("scanning phase dependency: %w", err)
		}
		d.Type = domain.DependencyType(depType)
		deps = append(deps, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating phase dependencies: %w", err)
	}
	return deps, nil
}
