package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mhutchins/crewcal/internal/db"
	"github.com/mhutchins/crewcal/internal/domain"
)

// SQLiteExceptionRepo implements ExceptionRepo over SQLite.
type SQLiteExceptionRepo struct {
	conn db.DBTX
}

func NewSQLiteExceptionRepo(conn db.DBTX) *SQLiteExceptionRepo {
	return &SQLiteExceptionRepo{conn: conn}
}

func (r *SQLiteExceptionRepo) CreateGlobal(ctx context.Context, e *domain.GlobalException) error {
	query := `INSERT INTO global_exceptions (id, exception_date, type, reason, delay_days, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.conn.ExecContext(ctx, query,
		e.ID,
		e.ExceptionDate.Format(dateLayout),
		string(e.Type),
		e.Reason,
		e.DelayDays,
		e.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting global exception: %w", err)
	}
	return nil
}

func (r *SQLiteExceptionRepo) CreateProject(ctx context.Context, e *domain.ProjectException) error {
	affected, err := json.Marshal(e.PhasesAffected)
	if err != nil {
		return fmt.Errorf("encoding phases affected: %w", err)
	}
	query := `INSERT INTO project_exceptions
		(id, project_id, global_exception_id, phases_affected, delay_applied_days, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err = r.conn.ExecContext(ctx, query,
		e.ID, e.ProjectID, e.GlobalExceptionID, string(affected), e.DelayAppliedDays,
		e.CreatedAt.Format(timeLayout))
	if err != nil {
		return fmt.Errorf("inserting project exception: %w", err)
	}
	return nil
}

func (r *SQLiteExceptionRepo) ListGlobal(ctx context.Context) ([]domain.GlobalException, error) {
	query := `SELECT id, exception_date, type, reason, delay_days, created_at
		FROM global_exceptions ORDER BY exception_date`
	rows, err := r.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing global exceptions: %w", err)
	}
	defer rows.Close()

	var exceptions []domain.GlobalException
	for rows.Next() {
		var e domain.GlobalException
		var exceptionDate, exceptionType, createdAt string
		if err := rows.Scan(&e.ID, &exceptionDate, &exceptionType, &e.Reason, &e.DelayDays, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning global exception: %w", err)
		}
		e.ExceptionDate = parseDate(exceptionDate)
		e.Type = domain.ExceptionType(exceptionType)
		e.CreatedAt = parseTime(createdAt)
		exceptions = append(exceptions, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating global exceptions: %w", err)
	}
	return exceptions, nil
}

func (r *SQLiteExceptionRepo) ListByProject(ctx context.Context, projectID string) ([]domain.ProjectException, error) {
	query := `SELECT id, project_id, global_exception_id, phases_affected, delay_applied_days, created_at
		FROM project_exceptions WHERE project_id = ? ORDER BY created_at`
	rows, err := r.conn.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing project exceptions: %w", err)
	}
	defer rows.Close()

	var exceptions []domain.ProjectException
	for rows.Next() {
		var e domain.ProjectException
		var affected, createdAt string
		if err := rows.Scan(&e.ID, &e.ProjectID, &e.GlobalExceptionID, &affected, &e.DelayAppliedDays, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning project exception: %w", err)
		}
		if err := json.Unmarshal([]byte(affected), &e.PhasesAffected); err != nil {
			return nil, fmt.Errorf("decoding phases affected: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		exceptions = append(exceptions, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating project exceptions: %w", err)
	}
	return exceptions, nil
}
