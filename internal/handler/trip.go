package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
)

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var body TripRequest
	if !decodeBody(w, r, &body) {
		return
	}
	trip, msg := requestToTrip(uuid.Nil, body)
	if msg != "" {
		requestError(w, msg)
		return
	}

	created, err := s.trips.Create(r.Context(), trip)
	if err != nil {
		s.serviceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// GetTrip handles GET /trips/{tripId}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "tripId")
	if !ok {
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		s.serviceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// UpdateTrip handles PUT /trips/{tripId}.
// The new window is checked against the current time: a start in the past
// is invalid_start_date, an end before the start is invalid_end_date.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "tripId")
	if !ok {
		return
	}
	var body TripRequest
	if !decodeBody(w, r, &body) {
		return
	}
	trip, msg := requestToTrip(id, body)
	if msg != "" {
		requestError(w, msg)
		return
	}

	updated, err := s.trips.Update(r.Context(), trip)
	if err != nil {
		s.serviceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// --- mapping helpers --------------------------------------------------------

// requestToTrip converts a TripRequest body into a domain.Trip.
// Returns a non-empty message if required fields are missing.
func requestToTrip(id uuid.UUID, body TripRequest) (domain.Trip, string) {
	switch {
	case body.StartsAt == nil:
		return domain.Trip{}, "starts_at is required"
	case body.EndsAt == nil:
		return domain.Trip{}, "ends_at is required"
	}
	return domain.Trip{
		ID:          id,
		Destination: body.Destination,
		StartsAt:    *body.StartsAt,
		EndsAt:      *body.EndsAt,
	}, ""
}

func tripToResponse(t domain.Trip) Trip {
	return Trip{
		Id:          t.ID,
		Destination: t.Destination,
		StartsAt:    t.StartsAt,
		EndsAt:      t.EndsAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
