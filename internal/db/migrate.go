package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies all schema statements in order. Every statement is
// idempotent, so running it against an already-migrated database is a no-op.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// seq is a rowid alias on purpose: clearing the table restarts the
	// numbering at 1, so a cleared ledger counts from scratch.
	`CREATE TABLE IF NOT EXISTS entries (
		seq          INTEGER PRIMARY KEY,
		id           TEXT    NOT NULL UNIQUE,
		name         TEXT    NOT NULL,
		start_min    INTEGER NOT NULL CHECK(start_min BETWEEN 0 AND 1439),
		end_min      INTEGER NOT NULL CHECK(end_min BETWEEN 0 AND 1439),
		duration_min INTEGER NOT NULL CHECK(duration_min > 0),
		created_at   TEXT    NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_entries_name ON entries(name)`,
}
