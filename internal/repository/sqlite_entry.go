package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/st325a1114/bokunokada/internal/db"
	"github.com/st325a1114/bokunokada/internal/domain"
)

// SQLiteEntryRepo implements EntryRepo on the session's SQLite store.
type SQLiteEntryRepo struct {
	db db.DBTX
}

// NewSQLiteEntryRepo creates a new SQLiteEntryRepo.
func NewSQLiteEntryRepo(dbtx db.DBTX) *SQLiteEntryRepo {
	return &SQLiteEntryRepo{db: dbtx}
}

var _ EntryRepo = (*SQLiteEntryRepo)(nil)

func (r *SQLiteEntryRepo) Append(ctx context.Context, e *domain.Entry) error {
	query := `INSERT INTO entries (id, name, start_min, end_min, duration_min, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Name,
		int(e.Start),
		int(e.End),
		e.DurationMin,
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting entry: %w", err)
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading entry seq: %w", err)
	}
	e.Seq = int(seq)
	return nil
}

func (r *SQLiteEntryRepo) ListAll(ctx context.Context) ([]*domain.Entry, error) {
	query := `SELECT seq, id, name, start_min, end_min, duration_min, created_at
		FROM entries ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLiteEntryRepo) TotalsByName(ctx context.Context) ([]domain.Bucket, error) {
	query := `SELECT name, SUM(duration_min) FROM entries GROUP BY name ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("totalling entries by name: %w", err)
	}
	defer rows.Close()

	var buckets []domain.Bucket
	for rows.Next() {
		var b domain.Bucket
		if err := rows.Scan(&b.Label, &b.Minutes); err != nil {
			return nil, fmt.Errorf("scanning bucket row: %w", err)
		}
		buckets = append(buckets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating buckets: %w", err)
	}
	return buckets, nil
}

func (r *SQLiteEntryRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("clearing entries: %w", err)
	}
	return nil
}

// scanEntries scans entry rows, decoding clock minutes and timestamps.
func (r *SQLiteEntryRepo) scanEntries(rows *sql.Rows) ([]*domain.Entry, error) {
	var entries []*domain.Entry
	for rows.Next() {
		var e domain.Entry
		var startMin, endMin int
		var createdAtStr string

		err := rows.Scan(&e.Seq, &e.ID, &e.Name, &startMin, &endMin, &e.DurationMin, &createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("scanning entry row: %w", err)
		}

		e.Start = domain.ClockTime(startMin)
		e.End = domain.ClockTime(endMin)
		e.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}

		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}
	return entries, nil
}
