package handler

import (
	"net/http"

	"github.com/pkordes/trip-planner/internal/domain"
)

// CreateLink handles POST /trips/{tripId}/links.
func (s *Server) CreateLink(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripId")
	if !ok {
		return
	}
	var body LinkRequest
	if !decodeBody(w, r, &body) {
		return
	}

	created, err := s.links.Create(r.Context(), domain.Link{
		TripID: tripID,
		Title:  body.Title,
		URL:    body.Url,
	})
	if err != nil {
		s.serviceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusCreated, linkToResponse(created))
}

// GetLinks handles GET /trips/{tripId}/links.
func (s *Server) GetLinks(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripId")
	if !ok {
		return
	}

	links, err := s.links.ListByTrip(r.Context(), tripID)
	if err != nil {
		s.serviceError(w, r, err, "trip not found")
		return
	}
	out := make([]Link, len(links))
	for i, l := range links {
		out[i] = linkToResponse(l)
	}
	writeJSON(w, http.StatusOK, LinksResponse{Links: out})
}

func linkToResponse(l domain.Link) Link {
	return Link{
		Id:        l.ID,
		TripId:    l.TripID,
		Title:     l.Title,
		Url:       l.URL,
		CreatedAt: l.CreatedAt,
	}
}
