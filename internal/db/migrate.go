package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		state       TEXT NOT NULL DEFAULT 'pending'
		            CHECK(state IN ('pending','in_progress','completed','archived')),
		priority    INTEGER,
		due_date    TEXT,
		project_id  TEXT,
		synced_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_state ON tasks(state)`,

	`CREATE TABLE IF NOT EXISTS plannings (
		id            TEXT PRIMARY KEY,
		task_id       TEXT NOT NULL,
		planned_date  TEXT NOT NULL,
		start_hour    TEXT,
		end_hour      TEXT,
		priority      INTEGER CHECK(priority IS NULL OR priority BETWEEN 0 AND 5),
		done          INTEGER NOT NULL DEFAULT 0,
		task_title    TEXT NOT NULL DEFAULT '',
		task_state    TEXT NOT NULL DEFAULT 'pending',
		task_priority INTEGER,
		synced_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_plannings_date ON plannings(planned_date)`,
	`CREATE INDEX IF NOT EXISTS idx_plannings_task ON plannings(task_id)`,

	`CREATE TABLE IF NOT EXISTS sync_meta (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
}
