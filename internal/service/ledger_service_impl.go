package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/st325a1114/bokunokada/internal/domain"
	"github.com/st325a1114/bokunokada/internal/repository"
)

type ledgerService struct {
	entries  repository.EntryRepo
	observer Observer
}

func NewLedgerService(entries repository.EntryRepo, observers ...Observer) LedgerService {
	return &ledgerService{
		entries:  entries,
		observer: observerOrNoop(observers),
	}
}

func (s *ledgerService) AddEntry(ctx context.Context, name string, start, end domain.ClockTime) (entry *domain.Entry, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"name": name,
	}
	defer func() {
		s.observer.Observe(ctx, Event{
			Op:        "add-entry",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	entry, err = domain.NewEntry(name, start, end)
	if err != nil {
		return nil, err
	}
	entry.ID = uuid.New().String()
	entry.CreatedAt = time.Now().UTC()
	fields["duration_min"] = entry.DurationMin

	if err = s.entries.Append(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *ledgerService) Entries(ctx context.Context) ([]*domain.Entry, error) {
	return s.entries.ListAll(ctx)
}

func (s *ledgerService) ClearAll(ctx context.Context) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.Observe(ctx, Event{
			Op:        "clear-day",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
		})
	}()

	return s.entries.DeleteAll(ctx)
}

func (s *ledgerService) Summarize(ctx context.Context) (*domain.DaySummary, error) {
	totals, err := s.entries.TotalsByName(ctx)
	if err != nil {
		return nil, err
	}
	summary := domain.Reconcile(totals)
	return &summary, nil
}
