package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/st325a1114/bokunokada/internal/domain"
)

// MustClock parses a "HH:MM" literal, failing the test on bad input.
func MustClock(t *testing.T, s string) domain.ClockTime {
	t.Helper()
	c, err := domain.ParseClock(s)
	if err != nil {
		t.Fatalf("bad clock literal %q: %v", s, err)
	}
	return c
}

// Entry options
type EntryOption func(*domain.Entry)

func WithEntryID(id string) EntryOption {
	return func(e *domain.Entry) {
		e.ID = id
	}
}

func WithCreatedAt(ts time.Time) EntryOption {
	return func(e *domain.Entry) {
		e.CreatedAt = ts
	}
}

// NewTestEntry builds a store-ready ledger entry from clock literals,
// deriving the duration the same way the service does.
func NewTestEntry(t *testing.T, name, start, end string, opts ...EntryOption) *domain.Entry {
	t.Helper()
	e, err := domain.NewEntry(name, MustClock(t, start), MustClock(t, end))
	if err != nil {
		t.Fatalf("bad test entry %q %s-%s: %v", name, start, end, err)
	}
	e.ID = uuid.New().String()
	e.CreatedAt = time.Now().UTC()
	for _, opt := range opts {
		opt(e)
	}
	return e
}
