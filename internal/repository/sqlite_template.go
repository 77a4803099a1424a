package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mhutchins/crewcal/internal/db"
	"github.com/mhutchins/crewcal/internal/domain"
)

// SQLiteTemplateRepo implements TemplateRepo over SQLite.
type SQLiteTemplateRepo struct {
	conn db.DBTX
}

func NewSQLiteTemplateRepo(conn db.DBTX) *SQLiteTemplateRepo {
	return &SQLiteTemplateRepo{conn: conn}
}

func (r *SQLiteTemplateRepo) Create(ctx context.Context, t *domain.PhaseTemplate) error {
	query := `INSERT INTO phase_templates (id, name, building_type, active, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.conn.ExecContext(ctx, query,
		t.ID, t.Name, t.BuildingType, boolToInt(t.Active), t.CreatedAt.Format(timeLayout))
	if err != nil {
		return fmt.Errorf("inserting phase template: %w", err)
	}
	return nil
}

func (r *SQLiteTemplateRepo) CreateItem(ctx context.Context, item *domain.PhaseTemplateItem) error {
	query := `INSERT INTO phase_template_items
		(id, template_id, name, default_duration_days, default_color, predecessor_item_id, lag_days, sort_order)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.conn.ExecContext(ctx, query,
		item.ID,
		item.TemplateID,
		item.Name,
		item.DefaultDurationDays,
		item.DefaultColor,
		nullableString(item.PredecessorItemID),
		item.LagDays,
		item.SortOrder,
	)
	if err != nil {
		return fmt.Errorf("inserting template item: %w", err)
	}
	return nil
}

func (r *SQLiteTemplateRepo) GetByName(ctx context.Context, name string) (*domain.PhaseTemplate, error) {
	query := `SELECT id, name, building_type, active, created_at
		FROM phase_templates WHERE name = ? AND active = 1`
	var t domain.PhaseTemplate
	var active int
	var createdAt string
	err := r.conn.QueryRowContext(ctx, query, name).Scan(
		&t.ID, &t.Name, &t.BuildingType, &active, &createdAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("getting template %q: %w", name, err)
	}
	t.Active = intToBool(active)
	t.CreatedAt = parseTime(createdAt)
	return &t, nil
}

func (r *SQLiteTemplateRepo) List(ctx context.Context) ([]*domain.PhaseTemplate, error) {
	query := `SELECT id, name, building_type, active, created_at
		FROM phase_templates ORDER BY name`
	rows, err := r.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	defer rows.Close()

	var templates []*domain.PhaseTemplate
	for rows.Next() {
		var t domain.PhaseTemplate
		var active int
		var createdAt string
		if err := rows.Scan(&t.ID, &t.Name, &t.BuildingType, &active, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning template: %w", err)
		}
		t.Active = intToBool(active)
		t.CreatedAt = parseTime(createdAt)
		templates = append(templates, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating templates: %w", err)
	}
	return templates, nil
}

func (r *SQLiteTemplateRepo) ListItems(ctx context.Context, templateID string) ([]domain.PhaseTemplateItem, error) {
	query := `SELECT id, template_id, name, default_duration_days, default_color,
			predecessor_item_id, lag_days, sort_order
		FROM phase_template_items WHERE template_id = ? ORDER BY sort_order`
	rows, err := r.conn.QueryContext(ctx, query, templateID)
	if err != nil {
		return nil, fmt.Errorf("listing template items: %w", err)
	}
	defer rows.Close()

	var items []domain.PhaseTemplateItem
	for rows.Next() {
		var item domain.PhaseTemplateItem
		var pred sql.NullString
		if err := rows.Scan(
			&item.ID, &item.TemplateID, &item.Name, &item.DefaultDurationDays,
			&item.DefaultColor, &pred, &item.LagDays, &item.SortOrder); err != nil {
			return nil, fmt.Errorf("scanning template item: %w", err)
		}
		item.PredecessorItemID = stringPtr(pred)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating template items: %w", err)
	}
	return items, nil
}
