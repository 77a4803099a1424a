package repository

import (
	"context"
	"fmt"

	"github.com/mhutchins/crewcal/internal/db"
	"github.com/mhutchins/crewcal/internal/domain"
)

// SQLiteHolidayRepo implements HolidayRepo over SQLite. The holiday date is
// the primary key, so seeding is naturally idempotent.
type SQLiteHolidayRepo struct {
	conn db.DBTX
}

func NewSQLiteHolidayRepo(conn db.DBTX) *SQLiteHolidayRepo {
	return &SQLiteHolidayRepo{conn: conn}
}

func (r *SQLiteHolidayRepo) InsertIfAbsent(ctx context.Context, h domain.Holiday) (bool, error) {
	query := `INSERT OR IGNORE INTO holidays (holiday_date, name) VALUES (?, ?)`
	res, err := r.conn.ExecContext(ctx, query, h.Date, h.Name)
	if err != nil {
		return false, fmt.Errorf("inserting holiday %s: %w", h.Date, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking holiday insert: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteHolidayRepo) List(ctx context.Context) ([]domain.Holiday, error) {
	query := `SELECT holiday_date, name FROM holidays ORDER BY holiday_date`
	rows, err := r.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing holidays: %w", err)
	}
	defer rows.Close()

	var holidays []domain.Holiday
	for rows.Next() {
		var h domain.Holiday
		if err := rows.Scan(&h.Date, &h.Name); err != nil {
			return nil, fmt.Errorf("scanning holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating holidays: %w", err)
	}
	return holidays, nil
}

func (r *SQLiteHolidayRepo) ListDates(ctx context.Context) ([]string, error) {
	rows, err := r.conn.QueryContext(ctx, `SELECT holiday_date FROM holidays`)
	if err != nil {
		return nil, fmt.Errorf("listing holiday dates: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scanning holiday date: %w", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating holiday dates: %w", err)
	}
	return dates, nil
}
