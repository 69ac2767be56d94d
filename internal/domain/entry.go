package domain

import (
	"fmt"
	"strings"
	"time"
)

// Entry is one recorded block of the day. Entries are append-only: once
// stored they are never edited, only cleared wholesale.
type Entry struct {
	Seq         int
	ID          string
	Name        string
	Start       ClockTime
	End         ClockTime
	DurationMin int
	CreatedAt   time.Time
}

// NewEntry validates the activity name and endpoints and derives the
// duration. Seq, ID and CreatedAt are filled in when the entry is stored.
func NewEntry(name string, start, end ClockTime) (*Entry, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrEmptyName
	}
	if !start.Valid() || !end.Valid() {
		return nil, fmt.Errorf("clock value out of range: %w", ErrInvalidInterval)
	}
	minutes, err := IntervalMinutes(start, end)
	if err != nil {
		return nil, err
	}
	return &Entry{
		Name:        trimmed,
		Start:       start,
		End:         end,
		DurationMin: minutes,
	}, nil
}

// Wraps reports whether the entry crosses midnight. Endpoints are stored
// exactly as entered; wrapping is a property of the pair, not a rewrite.
func (e *Entry) Wraps() bool { return e.Start > e.End }
