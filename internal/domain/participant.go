package domain

import (
	"time"

	"github.com/google/uuid"
)

// Participant is a person invited to a trip.
// A participant starts unconfirmed; Name is filled in when they confirm.
type Participant struct {
	ID          uuid.UUID `json:"id"`
	TripID      uuid.UUID `json:"trip_id"`
	Name        *string   `json:"name"`
	Email       string    `json:"email"`
	IsConfirmed bool      `json:"is_confirmed"`
	CreatedAt   time.Time `json:"created_at"`
}

// NotificationOutcome is the result of one invite dispatch attempt sequence.
// It is never persisted.
type NotificationOutcome struct {
	ParticipantID uuid.UUID
	Email         string
	MessageID     string
	Attempts      int
	Err           error
}

// Success reports whether the notification was accepted by the notifier.
func (o NotificationOutcome) Success() bool {
	return o.Err == nil
}
