// Package service contains the business logic for the trip planner.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here: services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
	"github.com/pkordes/trip-planner/internal/schedule"
)

// minDestinationLen is the shortest destination accepted, in characters.
const minDestinationLen = 4

// Clock returns the current time. Services take one so tests can pin "now".
type Clock func() time.Time

// TripService implements business logic for Trip operations.
type TripService struct {
	repo repo.TripRepo
	now  Clock
}

// NewTripService constructs a TripService backed by the provided TripRepo.
// A nil clock means time.Now.
func NewTripService(r repo.TripRepo, now Clock) *TripService {
	if now == nil {
		now = time.Now
	}
	return &TripService{repo: r, now: now}
}

// Create validates and persists a new trip.
// Returns domain.ErrValidation (or one of the window sentinels wrapping it)
// when the destination or window is invalid.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip, s.now()); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.repo.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single trip by ID.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// Update replaces the destination and window of an existing trip.
// The trip must exist (domain.ErrNotFound) and the new window must pass
// schedule.ValidateTripWindow before anything is written.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if _, err := s.repo.GetByID(ctx, trip.ID); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	if err := validateTrip(trip, s.now()); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.repo.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// validateTrip enforces business rules common to both Create and Update.
//   - Destination must have at least minDestinationLen non-blank characters.
//   - The window must start no earlier than now and end no earlier than it starts.
func validateTrip(trip domain.Trip, now time.Time) error {
	if utf8.RuneCountInString(strings.TrimSpace(trip.Destination)) < minDestinationLen {
		return fmt.Errorf("%w: destination must be at least %d characters", domain.ErrValidation, minDestinationLen)
	}
	return schedule.ValidateTripWindow(trip.StartsAt, trip.EndsAt, now)
}
