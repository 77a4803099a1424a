package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mhutchins/crewcal/internal/db"
	"github.com/mhutchins/crewcal/internal/domain"
)

// SQLitePhaseRepo implements PhaseRepo over SQLite.
type SQLitePhaseRepo struct {
	conn db.DBTX
}

func NewSQLitePhaseRepo(conn db.DBTX) *SQLitePhaseRepo {
	return &SQLitePhaseRepo{conn: conn}
}

const phaseColumns = `id, project_id, template_item_id, name, status, start_date, end_date,
	duration_days, publish_to_customer, color, created_at, updated_at`

func (r *SQLitePhaseRepo) Create(ctx context.Context, p *domain.ProjectPhase) error {
	query := `INSERT INTO project_phases (` + phaseColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.conn.ExecContext(ctx, query,
		p.ID,
		p.ProjectID,
		nullableString(p.TemplateItemID),
		p.Name,
		string(p.Status),
		p.StartDate.Format(dateLayout),
		p.EndDate.Format(dateLayout),
		p.DurationDays,
		boolToInt(p.PublishToCustomer),
		p.Color,
		p.CreatedAt.Format(timeLayout),
		p.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting project phase: %w", err)
	}
	return nil
}

func (r *SQLitePhaseRepo) GetByID(ctx context.Context, id string) (*domain.ProjectPhase, error) {
	query := `SELECT ` + phaseColumns + ` FROM project_phases WHERE id = ?`
	row := r.conn.QueryRowContext(ctx, query, id)
	p, err := scanPhase(row)
	if err != nil {
		return nil, fmt.Errorf("getting phase: %w", err)
	}
	return p, nil
}

func (r *SQLitePhaseRepo) ListByProject(ctx context.Context, projectID string) ([]domain.ProjectPhase, error) {
	query := `SELECT ` + phaseColumns + `
		FROM project_phases WHERE project_id = ? ORDER BY start_date, created_at`
	return r.queryPhases(ctx, query, projectID)
}

func (r *SQLitePhaseRepo) ListPublished(ctx context.Context, projectID string) ([]domain.ProjectPhase, error) {
	query := `SELECT ` + phaseColumns + `
		FROM project_phases WHERE project_id = ? AND publish_to_customer = 1
		ORDER BY start_date, created_at`
	return r.queryPhases(ctx, query, projectID)
}

func (r *SQLitePhaseRepo) ListStartingOnOrAfter(ctx context.Context, projectID string, cutoff time.Time) ([]domain.ProjectPhase, error) {
	query := `SELECT ` + phaseColumns + `
		FROM project_phases WHERE project_id = ? AND start_date >= ?
		ORDER BY start_date, created_at`
	return r.queryPhases(ctx, query, projectID, cutoff.Format(dateLayout))
}

func (r *SQLitePhaseRepo) UpdateDates(ctx context.Context, id string, start, end time.Time) error {
	query := `UPDATE project_phases SET start_date = ?, end_date = ?, updated_at = ? WHERE id = ?`
	res, err := r.conn.ExecContext(ctx, query,
		start.Format(dateLayout), end.Format(dateLayout), nowUTC(), id)
	if err != nil {
		return fmt.Errorf("updating phase dates: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking phase update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("phase %s not found", id)
	}
	return nil
}

func (r *SQLitePhaseRepo) queryPhases(ctx context.Context, query string, args ...any) ([]domain.ProjectPhase, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing phases: %w", err)
	}
	defer rows.Close()

	var phases []domain.ProjectPhase
	for rows.Next() {
		p, err := scanPhase(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning phase: %w", err)
		}
		phases = append(phases, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating phases: %w", err)
	}
	return phases, nil
}

func scanPhase(row rowScanner) (*domain.ProjectPhase, error) {
	var p domain.ProjectPhase
	var templateItemID sql.NullString
	var status, startDate, endDate, createdAt, updatedAt string
	var publish int
	if err := row.Scan(
		&p.ID, &p.ProjectID, &templateItemID, &p.Name, &status, &startDate,
		&endDate, &p.DurationDays, &publish, &p.Color, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	p.TemplateItemID = stringPtr(templateItemID)
	p.Status = domain.PhaseStatus(status)
	p.StartDate = parseDate(startDate)
	p.EndDate = parseDate(endDate)
	p.PublishToCustomer = intToBool(publish)
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	return &p, nil
}
