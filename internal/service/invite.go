package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/notify"
	"github.com/pkordes/trip-planner/internal/repo"
)

// InviteRenderer builds the invitation email for one participant.
type InviteRenderer interface {
	RenderInvite(in notify.Invite) (notify.Message, error)
}

// InviteConfig tunes invitation dispatch.
// Zero values fall back to the defaults noted on each field.
type InviteConfig struct {
	// BaseURL prefixes every confirmation link.
	BaseURL string

	// Concurrency caps in-flight notifications per batch. Default 8.
	Concurrency int

	// SendTimeout bounds one participant's dispatch, retries included. Default 10s.
	SendTimeout time.Duration

	// DispatchTimeout bounds a whole batch. Participants not yet notified
	// when it expires are reported as failed without a send. Default 30s.
	DispatchTimeout time.Duration

	// MaxAttempts is the total number of send attempts per participant. Default 3.
	MaxAttempts int

	// RetryInterval is the first backoff delay between attempts. Default 200ms.
	RetryInterval time.Duration
}

func (c InviteConfig) withDefaults() InviteConfig {
	if c.Concurrency <= 0 {
		c.Concurrency = 8
	}
	if c.SendTimeout <= 0 {
		c.SendTimeout = 10 * time.Second
	}
	if c.DispatchTimeout <= 0 {
		c.DispatchTimeout = 30 * time.Second
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 3
	}
	if c.RetryInterval <= 0 {
		c.RetryInterval = 200 * time.Millisecond
	}
	return c
}

// InviteService issues participant invitations for a trip and notifies each
// invitee. Participant records are durable; notification is best-effort and
// never fails the operation.
type InviteService struct {
	trips        repo.TripRepo
	participants repo.ParticipantRepo
	notifier     notify.Notifier
	renderer     InviteRenderer
	cfg          InviteConfig
	log          *slog.Logger
	tracer       trace.Tracer
}

// NewInviteService constructs an InviteService. A nil logger discards logs.
func NewInviteService(
	trips repo.TripRepo,
	participants repo.ParticipantRepo,
	notifier notify.Notifier,
	renderer InviteRenderer,
	cfg InviteConfig,
	log *slog.Logger,
) *InviteService {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &InviteService{
		trips:        trips,
		participants: participants,
		notifier:     notifier,
		renderer:     renderer,
		cfg:          cfg.withDefaults(),
		log:          log,
		tracer:       otel.Tracer("github.com/pkordes/trip-planner/internal/service"),
	}
}

// ConfirmationLink returns the stable URL a participant uses to confirm
// attendance: {baseURL}/participants/{id}/confirm.
func ConfirmationLink(baseURL string, participantID uuid.UUID) string {
	return strings.TrimRight(baseURL, "/") + "/participants/" + participantID.String() + "/confirm"
}

// IssueInvites creates one unconfirmed participant per email and sends each
// an invitation. Emails keep their order and duplicates are not merged.
//
// Returns domain.ErrNotFound for an unknown trip and domain.ErrValidation for
// an empty list or a malformed address; nothing is written in either case.
// Once the participants are created the call succeeds: notification failures
// are logged and reported through Dispatch's outcomes, never returned.
func (s *InviteService) IssueInvites(ctx context.Context, tripID uuid.UUID, emails []string) ([]domain.Participant, error) {
	ctx, span := s.tracer.Start(ctx, "InviteService.IssueInvites",
		trace.WithAttributes(
			attribute.String("trip.id", tripID.String()),
			attribute.Int("invite.count", len(emails)),
		))
	defer span.End()

	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("service.InviteService.IssueInvites: %w", err)
	}

	cleaned, err := validateEmails(emails)
	if err != nil {
		return nil, err
	}

	participants, err := s.participants.CreateBulk(ctx, trip.ID, cleaned)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create participants")
		return nil, fmt.Errorf("service.InviteService.IssueInvites: %w", err)
	}

	// The records exist now; a caller hanging up must not abort their
	// notifications. The batch is still bounded by cfg.DispatchTimeout.
	outcomes := s.Dispatch(context.WithoutCancel(ctx), trip, participants)

	failed := 0
	for _, o := range outcomes {
		if !o.Success() {
			failed++
		}
	}
	span.SetAttributes(attribute.Int("invite.failed", failed))
	s.log.InfoContext(ctx, "invites issued",
		"trip_id", trip.ID,
		"participants", len(participants),
		"notified", len(outcomes)-failed,
		"failed", failed,
	)

	return participants, nil
}

// Dispatch notifies every participant concurrently, at most cfg.Concurrency
// at a time, and waits for all of them to settle. One participant's failure
// neither cancels nor delays the others. Outcomes are in participant order.
//
// The whole call returns within cfg.DispatchTimeout however many waves the
// batch needs; participants still queued at the deadline fail with
// context.DeadlineExceeded and zero attempts.
func (s *InviteService) Dispatch(ctx context.Context, trip domain.Trip, participants []domain.Participant) []domain.NotificationOutcome {
	outcomes := make([]domain.NotificationOutcome, len(participants))

	ctx, cancel := context.WithTimeout(ctx, s.cfg.DispatchTimeout)
	defer cancel()

	// The group's goroutines never return an error, so Wait is purely
	// wait-for-all; SetLimit provides the backpressure.
	var g errgroup.Group
	g.SetLimit(s.cfg.Concurrency)
	for i, p := range participants {
		g.Go(func() error {
			outcomes[i] = s.notifyOne(ctx, trip, p)
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

// notifyOne renders and sends one invitation, retrying transient failures
// with exponential backoff within cfg.SendTimeout.
func (s *InviteService) notifyOne(ctx context.Context, trip domain.Trip, p domain.Participant) domain.NotificationOutcome {
	ctx, span := s.tracer.Start(ctx, "InviteService.notify",
		trace.WithAttributes(attribute.String("participant.id", p.ID.String())))
	defer span.End()

	outcome := domain.NotificationOutcome{ParticipantID: p.ID, Email: p.Email}
	if err := ctx.Err(); err != nil {
		outcome.Err = fmt.Errorf("dispatch deadline: %w", err)
		s.recordFailure(ctx, span, outcome)
		return outcome
	}

	msg, err := s.renderer.RenderInvite(notify.Invite{
		To:               p.Email,
		Destination:      trip.Destination,
		StartsAt:         trip.StartsAt,
		EndsAt:           trip.EndsAt,
		ConfirmationLink: ConfirmationLink(s.cfg.BaseURL, p.ID),
	})
	if err != nil {
		outcome.Err = fmt.Errorf("render invite: %w", err)
		s.recordFailure(ctx, span, outcome)
		return outcome
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.SendTimeout)
	defer cancel()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.cfg.RetryInterval

	outcome.MessageID, outcome.Err = backoff.Retry(ctx, func() (string, error) {
		outcome.Attempts++
		id, err := s.notifier.Send(ctx, msg)
		if err != nil && notify.IsPermanent(err) {
			return "", backoff.Permanent(err)
		}
		return id, err
	},
		backoff.WithBackOff(b),
		backoff.WithMaxTries(uint(s.cfg.MaxAttempts)),
	)
	if outcome.Err != nil {
		s.recordFailure(ctx, span, outcome)
		return outcome
	}

	span.SetAttributes(attribute.Int("notify.attempts", outcome.Attempts))
	s.log.DebugContext(ctx, "invite sent",
		"participant_id", p.ID,
		"message_id", outcome.MessageID,
		"attempts", outcome.Attempts,
	)
	return outcome
}

func (s *InviteService) recordFailure(ctx context.Context, span trace.Span, o domain.NotificationOutcome) {
	span.RecordError(o.Err)
	span.SetStatus(codes.Error, "notify failed")
	s.log.WarnContext(ctx, "invite notification failed",
		"participant_id", o.ParticipantID,
		"email", o.Email,
		"attempts", o.Attempts,
		"error", o.Err,
	)
}

// validateEmails trims each address and rejects the batch if it is empty or
// any entry is not a bare addr-spec ("a@b.com", not "A <a@b.com>").
func validateEmails(emails []string) ([]string, error) {
	if len(emails) == 0 {
		return nil, fmt.Errorf("%w: at least one email is required", domain.ErrValidation)
	}
	cleaned := make([]string, len(emails))
	for i, e := range emails {
		e = strings.TrimSpace(e)
		addr, err := mail.ParseAddress(e)
		if err != nil || addr.Address != e {
			return nil, fmt.Errorf("%w: invalid email %q", domain.ErrValidation, e)
		}
		cleaned[i] = e
	}
	return cleaned, nil
}
