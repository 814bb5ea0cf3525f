package commands

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation.go -package=commandsmock

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"table-reservation/internal/domain/reservation"
	"table-reservation/internal/infra"
	"table-reservation/internal/pkg/clock"
	"table-reservation/internal/pkg/errs"
	"table-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

const maxCodeAttempts = 5

type ValidationError = shared.ValidationError

// CapacityError reports that the window around the requested slot is full.
type CapacityError struct {
	Required  int
	Available int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("no capacity: %d tables required, %d available", e.Required, e.Available)
}

func (e *CapacityError) Is(target error) bool {
	return target == errs.ErrNoCapacity
}

// Message is the text shown to the customer.
func (e *CapacityError) Message() string {
	available := e.Available
	if available < 0 {
		available = 0
	}
	return fmt.Sprintf(
		"Désolé, nous n'avons pas assez de tables disponibles à cette heure. Nous avons %d tables disponibles, mais vous avez besoin de %d tables.",
		available, e.Required)
}

type Result struct {
	// Token is empty when the confirmation could not be stored for the redirect.
	Token        string
	Confirmation reservation.PendingConfirmation
}

type ReservationCommands interface {
	Submit(ctx context.Context, req reservation.Request) (*Result, error)
}

type Options struct {
	MailTimeout     time.Duration
	ConfirmationTTL time.Duration
	EventSubject    string
}

type ReservationDeps struct {
	UoW      shared.UnitOfWork
	Codes    reservation.CodeGenerator
	Notifier Notifier
	Renderer EmailRenderer
	Events   EventPublisher
	Store    shared.ConfirmationStore
	Clock    clock.Clock
	Policy   reservation.Policy
	Options  Options
	Logger   *slog.Logger
}

type reservationUseCaseImpl struct {
	ReservationDeps
}

func NewReservationCommands(deps ReservationDeps) ReservationCommands {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Options.MailTimeout <= 0 {
		deps.Options.MailTimeout = 10 * time.Second
	}
	if deps.Options.ConfirmationTTL <= 0 {
		deps.Options.ConfirmationTTL = 15 * time.Minute
	}
	if deps.Options.EventSubject == "" {
		deps.Options.EventSubject = "reservation.confirmed"
	}
	return &reservationUseCaseImpl{ReservationDeps: deps}
}

// ReservationConfirmedEvent is published once a reservation is stored.
type ReservationConfirmedEvent struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	Code          string    `json:"code"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	PartySize     int       `json:"party_size"`
	Tables        int       `json:"tables"`
	EmailSent     bool      `json:"email_sent"`
	CreatedAt     time.Time `json:"created_at"`
}

func (uc *reservationUseCaseImpl) Submit(ctx context.Context, req reservation.Request) (*Result, error) {
	booking, violations := req.Parse(uc.Policy, uc.Clock.Now())
	if len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	res, err := uc.reserve(ctx, booking)
	if err != nil {
		var capErr *CapacityError
		if errs.As(err, &capErr) {
			uc.Logger.Info("reservation rejected: no capacity",
				"scheduled_at", booking.ScheduledAt,
				"party_size", booking.PartySize,
				"tables_required", capErr.Required,
				"tables_available", capErr.Available)
			return nil, capErr
		}
		uc.Logger.Error("reservation could not be persisted",
			"scheduled_at", booking.ScheduledAt,
			"error", err.Error())
		return nil, errs.Mark(err, errs.ErrPersistence)
	}

	// The reservation stands from here on; later steps run even if the client went away.
	afterCtx := context.WithoutCancel(ctx)

	emailSent := uc.notify(afterCtx, res)
	uc.publish(afterCtx, res, emailSent)

	pc := reservation.NewPendingConfirmation(res, uc.Policy.Location, emailSent)
	token := uuid.NewString()
	if err := uc.Store.Put(afterCtx, token, pc, uc.Options.ConfirmationTTL); err != nil {
		uc.Logger.Error("failed to store pending confirmation",
			"code", res.Code().String(),
			"error", err.Error())
		token = ""
	}

	uc.Logger.Info("reservation confirmed",
		"code", res.Code().String(),
		"scheduled_at", res.ScheduledAt(),
		"party_size", res.PartySize(),
		"email_sent", emailSent)

	return &Result{Token: token, Confirmation: pc}, nil
}

// reserve checks capacity and inserts in one transaction, holding the service-day lock
// so concurrent submissions for the same day cannot both pass the check.
func (uc *reservationUseCaseImpl) reserve(ctx context.Context, b reservation.Booking) (*reservation.Reservation, error) {
	var created *reservation.Reservation

	err := uc.UoW.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		repo := tx.Reservations()

		if err := repo.LockServiceDay(ctx, tx.DB(), uc.Policy.ServiceDay(b.ScheduledAt)); err != nil {
			return err
		}

		booked, err := repo.BookedTables(ctx, tx.DB(), uc.Policy.Window(b.ScheduledAt), uc.Policy.SeatsPerTable)
		if err != nil {
			return err
		}

		availability := uc.Policy.Evaluate(b.PartySize, booked)
		if !availability.IsAvailable {
			return &CapacityError{Required: availability.TablesRequired, Available: availability.TablesAvailable}
		}

		res, err := uc.insertWithFreshCode(ctx, tx, b)
		if err != nil {
			return err
		}
		created = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (uc *reservationUseCaseImpl) insertWithFreshCode(ctx context.Context, tx shared.Tx, b reservation.Booking) (*reservation.Reservation, error) {
	var res *reservation.Reservation

	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code, err := uc.Codes.Generate()
		if err != nil {
			return nil, errs.Wrap(err, "generate reservation code")
		}

		if res == nil {
			if res, err = reservation.NewReservation(code, b); err != nil {
				return nil, err
			}
		} else {
			res = res.WithCode(code)
		}

		err = tx.Reservations().Insert(ctx, tx.DB(), res)
		if err == nil {
			return res, nil
		}
		if !infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, err
		}
		uc.Logger.Warn("reservation code collision, regenerating",
			"attempt", attempt,
			"code", code.String())
	}

	return nil, errs.ErrCodeExhausted
}

func (uc *reservationUseCaseImpl) notify(ctx context.Context, res *reservation.Reservation) bool {
	pc := reservation.NewPendingConfirmation(res, uc.Policy.Location, false)
	msg, err := uc.Renderer.RenderConfirmation(ConfirmationEmail{
		To:        res.Email().String(),
		Name:      pc.Name,
		Code:      pc.Code,
		Date:      pc.Date,
		Time:      pc.Time,
		PartySize: pc.PartySize,
	})
	if err != nil {
		uc.Logger.Error("failed to render confirmation email",
			"code", pc.Code,
			"error", err.Error())
		return false
	}

	sendCtx, cancel := context.WithTimeout(ctx, uc.Options.MailTimeout)
	defer cancel()

	if err := uc.Notifier.Send(sendCtx, msg); err != nil {
		uc.Logger.Warn("confirmation email not sent",
			"code", pc.Code,
			"to", msg.To,
			"error", err.Error())
		return false
	}
	return true
}

func (uc *reservationUseCaseImpl) publish(ctx context.Context, res *reservation.Reservation, emailSent bool) {
	payload, err := json.Marshal(ReservationConfirmedEvent{
		ReservationID: res.ID(),
		Code:          res.Code().String(),
		ScheduledAt:   res.ScheduledAt(),
		PartySize:     res.PartySize(),
		Tables:        uc.Policy.TablesRequired(res.PartySize()),
		EmailSent:     emailSent,
		CreatedAt:     res.CreatedAt(),
	})
	if err != nil {
		uc.Logger.Error("failed to encode reservation event", "error", err.Error())
		return
	}

	pubCtx, cancel := context.WithTimeout(ctx, uc.Options.MailTimeout)
	defer cancel()

	if err := uc.Events.Publish(pubCtx, uc.Options.EventSubject, payload); err != nil {
		uc.Logger.Warn("failed to publish reservation event",
			"code", res.Code().String(),
			"error", err.Error())
	}
}
