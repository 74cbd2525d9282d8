package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS work_sessions (
		id                  TEXT PRIMARY KEY,
		date                TEXT NOT NULL,
		start_time          TEXT NOT NULL,
		breakfast_start     TEXT,
		breakfast_end       TEXT,
		snack_start         TEXT,
		snack_end           TEXT,
		end_time            TEXT,
		status              TEXT NOT NULL DEFAULT 'working'
		                    CHECK(status IN ('working','breakfast','snack','finished')),
		total_work_minutes  INTEGER,
		total_break_minutes INTEGER,
		actual_work_minutes INTEGER
	)`,

	`CREATE INDEX IF NOT EXISTS idx_work_sessions_date ON work_sessions(date)`,

	// At most one open session across all dates. The partial unique index
	// over a constant expression rejects a second row with a NULL end_time,
	// closing the read-then-write race between two concurrent starts.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_work_sessions_single_open
		ON work_sessions((1)) WHERE end_time IS NULL`,
}
