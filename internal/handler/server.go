// Package handler implements the HTTP handlers for the trip planner API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, trip.go, activity.go, etc.) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
}

// ActivityServicer defines the activity operations, including the per-day view.
type ActivityServicer interface {
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) (domain.Trip, []domain.Activity, error)
	ListByDay(ctx context.Context, tripID uuid.UUID) ([]domain.DayActivities, error)
}

// InviteServicer issues invitations.
type InviteServicer interface {
	IssueInvites(ctx context.Context, tripID uuid.UUID, emails []string) ([]domain.Participant, error)
}

// ParticipantServicer lists participants.
type ParticipantServicer interface {
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
}

// LinkServicer defines the link operations.
type LinkServicer interface {
	Create(ctx context.Context, link domain.Link) (domain.Link, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error)
}

// Services bundles the Server's dependencies. Any field may be nil when the
// routes that use it are not exercised, as in tests.
type Services struct {
	Trips        TripServicer
	Activities   ActivityServicer
	Invites      InviteServicer
	Participants ParticipantServicer
	Links        LinkServicer

	// Location fixes the calendar dates of the exported trip event. Nil is UTC.
	Location *time.Location
}

// Server hosts every API endpoint.
// Wire it in main.go via Routes. Methods are in domain-specific files but all
// operate on this struct.
type Server struct {
	trips        TripServicer
	activities   ActivityServicer
	invites      InviteServicer
	participants ParticipantServicer
	links        LinkServicer
	loc          *time.Location
	log          *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger discards logs.
func NewServer(svc Services, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	loc := svc.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Server{
		trips:        svc.Trips,
		activities:   svc.Activities,
		invites:      svc.Invites,
		participants: svc.Participants,
		links:        svc.Links,
		loc:          loc,
		log:          log,
	}
}

// Routes returns a chi router with every endpoint registered.
// Cross-cutting middleware (request id, logging, CORS, body limits) is the
// caller's concern.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.NotFound(s.routeNotFound)
	r.MethodNotAllowed(s.methodNotAllowed)

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.CreateTrip)
		r.Route("/{tripId}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)

			r.Post("/activities", s.CreateActivity)
			r.Get("/activities", s.GetActivities)
			r.Get("/activities.ics", s.GetItineraryCalendar)

			r.Post("/invites", s.CreateInvites)
			r.Get("/participants", s.GetParticipants)

			r.Post("/links", s.CreateLink)
			r.Get("/links", s.GetLinks)
		})
	})
	return r
}
