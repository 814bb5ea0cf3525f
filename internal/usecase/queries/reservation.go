package queries

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation.go -package=queriesmock

import (
	"context"
	"time"

	"table-reservation/internal/domain/reservation"
	"table-reservation/internal/infra"
	"table-reservation/internal/pkg/clock"
	"table-reservation/internal/pkg/errs"
	"table-reservation/internal/usecase/shared"
)

var ErrReservationNotFound = errs.New("reservation not found")

// Read models (DTO for read side)
type ReservationView struct {
	Code      string `json:"code"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	PartySize int    `json:"party_size"`
	Status    string `json:"status"`
}

type AvailabilityView struct {
	Date            string `json:"date"`
	Time            string `json:"time"`
	PartySize       int    `json:"party_size"`
	IsAvailable     bool   `json:"is_available"`
	TablesRequired  int    `json:"tables_required"`
	TablesAvailable int    `json:"tables_available"`
}

type ReservationReadStore interface {
	FindByCode(ctx context.Context, code reservation.Code) (*reservation.Reservation, error)
	BookedTables(ctx context.Context, window reservation.Window, seatsPerTable int) (int, error)
}

type ReservationQueries interface {
	GetByCode(ctx context.Context, code string) (*ReservationView, error)
	CheckAvailability(ctx context.Context, slot reservation.Slot) (*AvailabilityView, error)
}

type reservationQueriesImpl struct {
	store  ReservationReadStore
	policy reservation.Policy
	clock  clock.Clock
}

func NewReservationQueries(store ReservationReadStore, policy reservation.Policy, clk clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{store: store, policy: policy, clock: clk}
}

func (q *reservationQueriesImpl) GetByCode(ctx context.Context, code string) (*ReservationView, error) {
	c, err := reservation.ParseCode(code)
	if err != nil {
		return nil, ErrReservationNotFound
	}

	res, err := q.store.FindByCode(ctx, c)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	at := res.ScheduledAt().In(q.location())
	return &ReservationView{
		Code:      res.Code().String(),
		Date:      at.Format(reservation.DateLayout),
		Time:      at.Format(reservation.TimeLayout),
		PartySize: res.PartySize(),
		Status:    res.Status().String(),
	}, nil
}

// CheckAvailability is advisory; the authoritative check runs again when the reservation is submitted.
func (q *reservationQueriesImpl) CheckAvailability(ctx context.Context, slot reservation.Slot) (*AvailabilityView, error) {
	at, partySize, violations := slot.Parse(q.policy, q.clock.Now())
	if len(violations) > 0 {
		return nil, &shared.ValidationError{Violations: violations}
	}

	booked, err := q.store.BookedTables(ctx, q.policy.Window(at), q.policy.SeatsPerTable)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	a := q.policy.Evaluate(partySize, booked)
	return &AvailabilityView{
		Date:            at.Format(reservation.DateLayout),
		Time:            at.Format(reservation.TimeLayout),
		PartySize:       partySize,
		IsAvailable:     a.IsAvailable,
		TablesRequired:  a.TablesRequired,
		TablesAvailable: max(a.TablesAvailable, 0),
	}, nil
}

func (q *reservationQueriesImpl) location() *time.Location {
	if q.policy.Location == nil {
		return time.Local
	}
	return q.policy.Location
}
