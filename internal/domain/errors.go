package domain

import "errors"

// Validation failures returned by NewEntry and IntervalMinutes. Each one
// rejects the input outright; the ledger is never touched on failure.
var (
	// ErrEmptyName means the activity name was blank after trimming.
	ErrEmptyName = errors.New("activity name is empty")

	// ErrInvalidInterval means start and end describe no usable span.
	ErrInvalidInterval = errors.New("start and end describe no interval")

	// ErrDurationExceeded means a computed span was longer than a day.
	ErrDurationExceeded = errors.New("interval exceeds 24 hours")
)
