package testutil

import (
	"database/sql"
	"testing"

	"github.com/st325a1114/bokunokada/internal/db"
)

// NewTestDB opens a fresh in-memory ledger store with migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.Open(db.MemoryDSN)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}
