package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. empty title, malformed URL, invalid trip window).
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// Scheduling rule violations. Each wraps ErrValidation, so callers that only
// care about "bad input" can keep matching on ErrValidation.
var (
	// ErrActivityOutOfRange means an activity's occurs_at falls outside the
	// owning trip's [starts_at, ends_at] window.
	ErrActivityOutOfRange = fmt.Errorf("%w: activity date is outside the trip window", ErrValidation)

	// ErrStartInPast means a proposed trip start is earlier than now.
	ErrStartInPast = fmt.Errorf("%w: trip start date is in the past", ErrValidation)

	// ErrEndBeforeStart means a proposed trip end is earlier than its start.
	ErrEndBeforeStart = fmt.Errorf("%w: trip end date is before the start date", ErrValidation)
)
