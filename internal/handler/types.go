package handler

import (
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Request and response bodies. Field names and shapes follow
// openapi/openapi.yaml.

// TripRequest is the body of POST /trips and PUT /trips/{tripId}.
type TripRequest struct {
	Destination string     `json:"destination"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
}

// Trip is the wire form of a trip.
type Trip struct {
	Id          uuid.UUID `json:"id"`
	Destination string    `json:"destination"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ActivityRequest is the body of POST /trips/{tripId}/activities.
type ActivityRequest struct {
	Title    string     `json:"title"`
	OccursAt *time.Time `json:"occurs_at"`
}

// Activity is the wire form of an activity.
type Activity struct {
	Id        uuid.UUID `json:"id"`
	TripId    uuid.UUID `json:"trip_id"`
	Title     string    `json:"title"`
	OccursAt  time.Time `json:"occurs_at"`
	CreatedAt time.Time `json:"created_at"`
}

// DayActivities is one calendar day of the itinerary.
type DayActivities struct {
	Date       openapi_types.Date `json:"date"`
	Activities []Activity         `json:"activities"`
}

// ActivitiesResponse is the body of GET /trips/{tripId}/activities.
type ActivitiesResponse struct {
	Activities []DayActivities `json:"activities"`
}

// InviteRequest is the body of POST /trips/{tripId}/invites.
type InviteRequest struct {
	EmailsParticipants []openapi_types.Email `json:"emails_participants"`
}

// Participant is the projected wire form of a participant.
type Participant struct {
	Id          uuid.UUID `json:"id"`
	Name        *string   `json:"name"`
	Email       string    `json:"email"`
	IsConfirmed bool      `json:"is_confirmed"`
}

// ParticipantsResponse is the body of the invite and participant list endpoints.
type ParticipantsResponse struct {
	Participants []Participant `json:"participants"`
}

// LinkRequest is the body of POST /trips/{tripId}/links.
type LinkRequest struct {
	Title string `json:"title"`
	Url   string `json:"url"`
}

// Link is the wire form of a link.
type Link struct {
	Id        uuid.UUID `json:"id"`
	TripId    uuid.UUID `json:"trip_id"`
	Title     string    `json:"title"`
	Url       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// LinksResponse is the body of GET /trips/{tripId}/links.
type LinksResponse struct {
	Links []Link `json:"links"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}
