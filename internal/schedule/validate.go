package schedule

import (
	"time"

	"github.com/pkordes/trip-planner/internal/domain"
)

// ValidateActivityTime checks that occursAt lies within the trip window.
// Both boundaries are inclusive.
// Returns domain.ErrActivityOutOfRange otherwise.
func ValidateActivityTime(trip domain.Trip, occursAt time.Time) error {
	if occursAt.Before(trip.StartsAt) || occursAt.After(trip.EndsAt) {
		return domain.ErrActivityOutOfRange
	}
	return nil
}

// ValidateTripWindow checks a proposed trip window against now.
// The start is checked first: a window that both starts in the past and ends
// before it starts reports domain.ErrStartInPast.
func ValidateTripWindow(startsAt, endsAt, now time.Time) error {
	if startsAt.Before(now) {
		return domain.ErrStartInPast
	}
	if endsAt.Before(startsAt) {
		return domain.ErrEndBeforeStart
	}
	return nil
}
