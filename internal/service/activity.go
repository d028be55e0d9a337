package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
	"github.com/pkordes/trip-planner/internal/schedule"
)

// ActivityService implements business logic for Activity operations.
// It holds the trips repo because every activity rule is relative to the
// owning trip's window.
type ActivityService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
	calendar   schedule.Calendar
}

// NewActivityService constructs an ActivityService. The calendar decides which
// day an activity is bucketed under.
func NewActivityService(trips repo.TripRepo, activities repo.ActivityRepo, calendar schedule.Calendar) *ActivityService {
	return &ActivityService{trips: trips, activities: activities, calendar: calendar}
}

// Create verifies the parent trip exists, checks the title and that OccursAt
// lies inside the trip window, then persists.
// Returns domain.ErrNotFound for an unknown trip and
// domain.ErrActivityOutOfRange for a date outside the window.
func (s *ActivityService) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	trip, err := s.trips.GetByID(ctx, activity.TripID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	if strings.TrimSpace(activity.Title) == "" {
		return domain.Activity{}, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if err := schedule.ValidateActivityTime(trip, activity.OccursAt); err != nil {
		return domain.Activity{}, err
	}
	result, err := s.activities.Create(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return result, nil
}

// ListByTrip returns the trip and its activities ordered by occurs_at.
// The activities slice is never nil.
func (s *ActivityService) ListByTrip(ctx context.Context, tripID uuid.UUID) (domain.Trip, []domain.Activity, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Trip{}, nil, fmt.Errorf("service.ActivityService.ListByTrip: %w", err)
	}
	activities, err := s.activities.ListByTripID(ctx, tripID)
	if err != nil {
		return domain.Trip{}, nil, fmt.Errorf("service.ActivityService.ListByTrip: %w", err)
	}
	if activities == nil {
		activities = []domain.Activity{}
	}
	return trip, activities, nil
}

// ListByDay returns one bucket per calendar day of the trip, each holding
// that day's activities in chronological order.
func (s *ActivityService) ListByDay(ctx context.Context, tripID uuid.UUID) ([]domain.DayActivities, error) {
	trip, activities, err := s.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return s.calendar.BucketActivitiesByDay(trip, activities), nil
}
