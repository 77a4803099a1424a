package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent, so the
// full list is re-run on every startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		start_date TEXT NOT NULL,
		status     TEXT NOT NULL DEFAULT 'active'
		           CHECK(status IN ('active','on_hold','complete')),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS phase_templates (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL UNIQUE,
		building_type TEXT NOT NULL DEFAULT '',
		active        INTEGER NOT NULL DEFAULT 1,
		created_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS phase_template_items (
		id                    TEXT PRIMARY KEY,
		template_id           TEXT NOT NULL REFERENCES phase_templates(id) ON DELETE CASCADE,
		name                  TEXT NOT NULL,
		default_duration_days INTEGER NOT NULL DEFAULT 0,
		default_color         TEXT NOT NULL DEFAULT '',
		predecessor_item_id   TEXT REFERENCES phase_template_items(id),
		lag_days              INTEGER NOT NULL DEFAULT 0,
		sort_order            INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_template_items_template ON phase_template_items(template_id)`,

	`CREATE TABLE IF NOT EXISTS holidays (
		holiday_date TEXT PRIMARY KEY,
		name         TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS project_phases (
		id                  TEXT PRIMARY KEY,
		project_id          TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		template_item_id    TEXT,
		name                TEXT NOT NULL,
		status              TEXT NOT NULL DEFAULT 'Planned',
		start_date          TEXT NOT NULL,
		end_date            TEXT NOT NULL,
		duration_days       INTEGER NOT NULL DEFAULT 0,
		publish_to_customer INTEGER NOT NULL DEFAULT 0,
		color               TEXT NOT NULL DEFAULT '',
		created_at          TEXT NOT NULL,
		updated_at          TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_project_phases_project ON project_phases(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_project_phases_start ON project_phases(start_date)`,

	`CREATE TABLE IF NOT EXISTS phase_dependencies (
		project_id           TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		predecessor_phase_id TEXT NOT NULL REFERENCES project_phases(id) ON DELETE CASCADE,
		successor_phase_id   TEXT NOT NULL REFERENCES project_phases(id) ON DELETE CASCADE,
		dep_type             TEXT NOT NULL DEFAULT 'FS',
		lag_days             INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (predecessor_phase_id, successor_phase_id)
	)`,

	`CREATE TABLE IF NOT EXISTS project_schedules (
		project_id          TEXT PRIMARY KEY REFERENCES projects(id) ON DELETE CASCADE,
		project_start_date  TEXT,
		total_duration_days INTEGER NOT NULL DEFAULT 0,
		schedule_data       TEXT NOT NULL DEFAULT '[]',
		updated_at          TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS global_exceptions (
		id             TEXT PRIMARY KEY,
		exception_date TEXT NOT NULL,
		type           TEXT NOT NULL DEFAULT 'weather',
		reason         TEXT NOT NULL DEFAULT '',
		delay_days     INTEGER NOT NULL,
		created_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS project_exceptions (
		id                  TEXT PRIMARY KEY,
		project_id          TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		global_exception_id TEXT NOT NULL REFERENCES global_exceptions(id) ON DELETE CASCADE,
		phases_affected     TEXT NOT NULL DEFAULT '[]',
		delay_applied_days  INTEGER NOT NULL,
		created_at          TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS activities (
		id         TEXT PRIMARY KEY,
		project_id TEXT REFERENCES projects(id) ON DELETE CASCADE,
		kind       TEXT NOT NULL,
		message    TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,
}
