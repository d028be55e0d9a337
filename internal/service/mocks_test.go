package service_test

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/notify"
	"github.com/pkordes/trip-planner/internal/repo"
)

// mockTripRepo is a hand-written test double for repo.TripRepo.
// Each method is a function field; set only the ones your test needs.
type mockTripRepo struct {
	create  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	update  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}

// compile-time check: mockTripRepo must satisfy repo.TripRepo.
var _ repo.TripRepo = (*mockTripRepo)(nil)

// tripRepoWith returns a trip repo whose GetByID always returns trip.
func tripRepoWith(trip domain.Trip) *mockTripRepo {
	return &mockTripRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Trip, error) {
			trip.ID = id
			return trip, nil
		},
	}
}

// missingTripRepo returns a trip repo that knows no trips.
func missingTripRepo() *mockTripRepo {
	return &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
}

type mockActivityRepo struct {
	create       func(ctx context.Context, a domain.Activity) (domain.Activity, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
}

func (m *mockActivityRepo) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	return m.create(ctx, a)
}
func (m *mockActivityRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	return m.listByTripID(ctx, tripID)
}

var _ repo.ActivityRepo = (*mockActivityRepo)(nil)

type mockParticipantRepo struct {
	createBulk   func(ctx context.Context, tripID uuid.UUID, emails []string) ([]domain.Participant, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
}

func (m *mockParticipantRepo) CreateBulk(ctx context.Context, tripID uuid.UUID, emails []string) ([]domain.Participant, error) {
	return m.createBulk(ctx, tripID, emails)
}
func (m *mockParticipantRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	return m.listByTripID(ctx, tripID)
}

var _ repo.ParticipantRepo = (*mockParticipantRepo)(nil)

// recordingParticipantRepo stores created participants in memory, assigning
// fresh ids, so tests can assert on what was "persisted".
type recordingParticipantRepo struct {
	mu      sync.Mutex
	created []domain.Participant
}

func (r *recordingParticipantRepo) CreateBulk(_ context.Context, tripID uuid.UUID, emails []string) ([]domain.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Participant, 0, len(emails))
	for _, e := range emails {
		out = append(out, domain.Participant{ID: uuid.New(), TripID: tripID, Email: e})
	}
	r.created = append(r.created, out...)
	return out, nil
}

func (r *recordingParticipantRepo) ListByTripID(_ context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Participant
	for _, p := range r.created {
		if p.TripID == tripID {
			out = append(out, p)
		}
	}
	return out, nil
}

var _ repo.ParticipantRepo = (*recordingParticipantRepo)(nil)

type mockLinkRepo struct {
	create       func(ctx context.Context, l domain.Link) (domain.Link, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error)
}

func (m *mockLinkRepo) Create(ctx context.Context, l domain.Link) (domain.Link, error) {
	return m.create(ctx, l)
}
func (m *mockLinkRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error) {
	return m.listByTripID(ctx, tripID)
}

var _ repo.LinkRepo = (*mockLinkRepo)(nil)

// mockNotifier is a concurrency-safe notify.Notifier double.
// send decides each call's result; every message is recorded.
type mockNotifier struct {
	send func(ctx context.Context, msg notify.Message) (string, error)

	mu   sync.Mutex
	sent []notify.Message
}

func (m *mockNotifier) Send(ctx context.Context, msg notify.Message) (string, error) {
	m.mu.Lock()
	m.sent = append(m.sent, msg)
	m.mu.Unlock()
	if m.send == nil {
		return "msg-" + msg.To, nil
	}
	return m.send(ctx, msg)
}

func (m *mockNotifier) messages() []notify.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]notify.Message(nil), m.sent...)
}

var _ notify.Notifier = (*mockNotifier)(nil)
