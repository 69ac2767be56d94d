package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// MemoryDSN is the only store the binary ever opens: the ledger lives for
// one session and dies with the process.
const MemoryDSN = ":memory:"

// Open opens a SQLite database for the given DSN, applies pragmas and runs
// the schema migrations. Callers outside the test harness always pass
// MemoryDSN.
func Open(dsn string) (*sql.DB, error) {
	sqldb, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Every pooled connection to ":memory:" gets its own private database,
	// so the pool must stay pinned to a single connection for the session
	// to see one store.
	sqldb.SetMaxOpenConns(1)
	sqldb.SetMaxIdleConns(1)

	if _, err := sqldb.Exec("PRAGMA foreign_keys = ON"); err != nil {
		sqldb.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if err := Migrate(sqldb); err != nil {
		sqldb.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return sqldb, nil
}
