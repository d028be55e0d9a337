package handler

import (
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/trip-planner/internal/domain"
)

// CreateActivity handles POST /trips/{tripId}/activities.
// occurs_at must fall inside the trip window, boundaries included.
func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripId")
	if !ok {
		return
	}
	var body ActivityRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if body.OccursAt == nil {
		requestError(w, "occurs_at is required")
		return
	}

	created, err := s.activities.Create(r.Context(), domain.Activity{
		TripID:   tripID,
		Title:    body.Title,
		OccursAt: *body.OccursAt,
	})
	if err != nil {
		s.serviceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusCreated, activityToResponse(created))
}

// GetActivities handles GET /trips/{tripId}/activities.
// It returns one entry per calendar day of the trip, empty days included.
func (s *Server) GetActivities(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripId")
	if !ok {
		return
	}

	days, err := s.activities.ListByDay(r.Context(), tripID)
	if err != nil {
		s.serviceError(w, r, err, "trip not found")
		return
	}

	out := make([]DayActivities, len(days))
	for i, d := range days {
		acts := make([]Activity, len(d.Activities))
		for j, a := range d.Activities {
			acts[j] = activityToResponse(a)
		}
		out[i] = DayActivities{Date: openapi_types.Date{Time: d.Date}, Activities: acts}
	}
	writeJSON(w, http.StatusOK, ActivitiesResponse{Activities: out})
}

func activityToResponse(a domain.Activity) Activity {
	return Activity{
		Id:        a.ID,
		TripId:    a.TripID,
		Title:     a.Title,
		OccursAt:  a.OccursAt,
		CreatedAt: a.CreatedAt,
	}
}
