package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the length of the ledger's day.
const MinutesPerDay = 1440

// ClockTime is a time of day expressed as minutes since midnight (0..1439).
// It carries no date and no timezone.
type ClockTime int

// NewClock builds a ClockTime from an hour (0-23) and a minute (0-59).
func NewClock(hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("hour %d out of range 0-23", hour)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("minute %d out of range 0-59", minute)
	}
	return ClockTime(hour*60 + minute), nil
}

// ParseClock parses a wall-clock string like "09:30" into a ClockTime.
// A single-digit hour is accepted; surrounding whitespace is ignored.
func ParseClock(s string) (ClockTime, error) {
	raw := strings.TrimSpace(s)
	hh, mm, ok := strings.Cut(raw, ":")
	if !ok {
		return 0, fmt.Errorf("invalid clock time %q: want HH:MM", raw)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: bad hour", raw)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: bad minute", raw)
	}
	return NewClock(hour, minute)
}

func (c ClockTime) Hour() int   { return int(c) / 60 }
func (c ClockTime) Minute() int { return int(c) % 60 }

// Valid reports whether c lies within the day.
func (c ClockTime) Valid() bool { return c >= 0 && c < MinutesPerDay }

// String renders c as zero-padded "HH:MM".
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// IntervalMinutes computes the length of the span from start to end. When
// start is later than end the span wraps past midnight into the next day:
// (MinutesPerDay - start) + end. Equal endpoints are rejected rather than
// guessed at, since a zero-length block and a full-day block would be
// indistinguishable.
func IntervalMinutes(start, end ClockTime) (int, error) {
	if start == end {
		return 0, fmt.Errorf("start %s equals end %s: %w", start, end, ErrInvalidInterval)
	}
	minutes := int(end - start)
	if start > end {
		minutes = (MinutesPerDay - int(start)) + int(end)
	}
	if minutes > MinutesPerDay {
		// Unreachable for in-range endpoints; kept as a hard ceiling.
		return 0, fmt.Errorf("span of %d minutes: %w", minutes, ErrDurationExceeded)
	}
	return minutes, nil
}
