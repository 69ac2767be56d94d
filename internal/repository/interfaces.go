package repository

import (
	"context"

	"github.com/st325a1114/bokunokada/internal/domain"
)

// EntryRepo is the append-only store behind the day ledger. Entries are
// never updated in place: the only mutations are appending one entry and
// clearing the whole ledger.
type EntryRepo interface {
	// Append stores e and fills in its Seq.
	Append(ctx context.Context, e *domain.Entry) error
	// ListAll returns every entry in insertion order.
	ListAll(ctx context.Context) ([]*domain.Entry, error)
	// TotalsByName returns per-activity duration totals ordered by name.
	TotalsByName(ctx context.Context) ([]domain.Bucket, error)
	// DeleteAll empties the ledger. Clearing an empty ledger is a no-op.
	DeleteAll(ctx context.Context) error
}
