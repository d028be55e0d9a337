package handler

import (
	"net/http"

	"github.com/pkordes/trip-planner/internal/domain"
)

// CreateInvites handles POST /trips/{tripId}/invites.
// It answers 200 with the created participants once they are stored, even if
// some invitation emails could not be delivered.
func (s *Server) CreateInvites(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripId")
	if !ok {
		return
	}
	var body InviteRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if len(body.EmailsParticipants) == 0 {
		requestError(w, "emails_participants must not be empty")
		return
	}

	emails := make([]string, len(body.EmailsParticipants))
	for i, e := range body.EmailsParticipants {
		emails[i] = string(e)
	}

	participants, err := s.invites.IssueInvites(r.Context(), tripID, emails)
	if err != nil {
		s.serviceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, ParticipantsResponse{Participants: participantsToResponse(participants)})
}

// GetParticipants handles GET /trips/{tripId}/participants.
func (s *Server) GetParticipants(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripId")
	if !ok {
		return
	}

	participants, err := s.participants.ListByTrip(r.Context(), tripID)
	if err != nil {
		s.serviceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, ParticipantsResponse{Participants: participantsToResponse(participants)})
}

func participantsToResponse(ps []domain.Participant) []Participant {
	out := make([]Participant, len(ps))
	for i, p := range ps {
		out[i] = Participant{
			Id:          p.ID,
			Name:        p.Name,
			Email:       p.Email,
			IsConfirmed: p.IsConfirmed,
		}
	}
	return out
}
