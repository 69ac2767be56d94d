package service

import (
	"context"

	"github.com/st325a1114/bokunokada/internal/domain"
)

// LedgerService owns one session's 24-hour schedule ledger. It is handed to
// the presentation layer as an explicit object; there is no package-global
// ledger anywhere.
type LedgerService interface {
	// AddEntry validates and records one named block. On validation failure
	// the ledger is left exactly as it was.
	AddEntry(ctx context.Context, name string, start, end domain.ClockTime) (*domain.Entry, error)
	// Entries returns the raw ledger in insertion order.
	Entries(ctx context.Context) ([]*domain.Entry, error)
	// ClearAll empties the ledger. Idempotent.
	ClearAll(ctx context.Context) error
	// Summarize reconciles the ledger against the full day. Recomputed from
	// the stored entries on every call, never cached.
	Summarize(ctx context.Context) (*domain.DaySummary, error)
}
