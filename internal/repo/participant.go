package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/trip-planner/internal/domain"
)

// ParticipantRepo defines the persistence operations for Participants.
type ParticipantRepo interface {
	// CreateBulk inserts one unconfirmed participant per email, in order, and
	// returns the created records in the same order. Duplicate emails produce
	// duplicate rows. The batch is all-or-nothing.
	CreateBulk(ctx context.Context, tripID uuid.UUID, emails []string) ([]domain.Participant, error)

	// ListByTripID returns all participants of a trip in the order they were
	// invited, including within a single CreateBulk batch.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
}

// pgParticipantRepo is the Postgres implementation of ParticipantRepo.
type pgParticipantRepo struct {
	db db
}

// NewParticipantRepo constructs a ParticipantRepo backed by the provided db connection.
func NewParticipantRepo(db db) ParticipantRepo {
	return &pgParticipantRepo{db: db}
}

const participantColumns = `id, trip_id, name, email, is_confirmed, created_at`

// CreateBulk queues one INSERT ... RETURNING per email in a single pgx batch.
// A batch runs in an implicit transaction, so either every row is created or
// none is, and reading the results in queue order maps ids back to emails
// without a second query.
func (r *pgParticipantRepo) CreateBulk(ctx context.Context, tripID uuid.UUID, emails []string) ([]domain.Participant, error) {
	if len(emails) == 0 {
		return []domain.Participant{}, nil
	}

	const q = `
		INSERT INTO participants (trip_id, email)
		VALUES (@trip_id, @email)
		RETURNING ` + participantColumns

	batch := &pgx.Batch{}
	for _, email := range emails {
		batch.Queue(q, pgx.NamedArgs{"trip_id": tripID, "email": email})
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	participants := make([]domain.Participant, 0, len(emails))
	for range emails {
		p, err := scanParticipant(results.QueryRow())
		if err != nil {
			return nil, fmt.Errorf("repo.ParticipantRepo.CreateBulk: %w", err)
		}
		participants = append(participants, p)
	}

	if err := results.Close(); err != nil {
		return nil, fmt.Errorf("repo.ParticipantRepo.CreateBulk: close batch: %w", err)
	}
	return participants, nil
}

func (r *pgParticipantRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	const q = `
		SELECT ` + participantColumns + `
		FROM participants
		WHERE trip_id = @trip_id
		ORDER BY seq ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ParticipantRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	var participants []domain.Participant
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ParticipantRepo.ListByTripID: scan: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ParticipantRepo.ListByTripID: rows: %w", err)
	}

	return participants, nil
}

// scanParticipant maps a row into a domain.Participant.
// A NULL name becomes a nil Name.
func scanParticipant(s scanner) (domain.Participant, error) {
	var (
		p      domain.Participant
		id     pgtype.UUID
		tripID pgtype.UUID
		name   pgtype.Text
	)

	if err := s.Scan(&id, &tripID, &name, &p.Email, &p.IsConfirmed, &p.CreatedAt); err != nil {
		return domain.Participant{}, notFoundOr(err)
	}

	p.ID = uuid.UUID(id.Bytes)
	p.TripID = uuid.UUID(tripID.Bytes)
	if name.Valid {
		n := name.String
		p.Name = &n
	}
	return p, nil
}
