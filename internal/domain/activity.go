package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is something scheduled to happen at a point in time during a trip.
// OccursAt lies inside the trip window at the time the activity is created.
type Activity struct {
	ID        uuid.UUID `json:"id"`
	TripID    uuid.UUID `json:"trip_id"`
	Title     string    `json:"title"`
	OccursAt  time.Time `json:"occurs_at"`
	CreatedAt time.Time `json:"created_at"`
}

// DayActivities is one calendar day of a trip together with the activities
// that occur on it. Activities is empty, never nil, for a day with nothing
// scheduled.
type DayActivities struct {
	Date       time.Time  `json:"date"`
	Activities []Activity `json:"activities"`
}
