package reservation

import (
	"time"

	"github.com/google/uuid"
)

type Reservation struct {
	id          uuid.UUID
	code        Code
	name        Name
	email       Email
	phone       Phone
	scheduledAt time.Time
	partySize   int
	status      Status
	createdAt   time.Time
}

// NewReservation creates a confirmed reservation for a validated booking.
// createdAt stays zero until the row is persisted.
func NewReservation(code Code, b Booking) (*Reservation, error) {
	if !code.IsValid() {
		return nil, ErrInvalidCodeFormat
	}
	if b.PartySize <= 0 {
		return nil, ErrPartySizeRange
	}
	return &Reservation{
		id:          uuid.New(),
		code:        code,
		name:        b.Name,
		email:       b.Email,
		phone:       b.Phone,
		scheduledAt: b.ScheduledAt,
		partySize:   b.PartySize,
		status:      StatusConfirmed,
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	code Code,
	name Name,
	email Email,
	phone Phone,
	scheduledAt time.Time,
	partySize int,
	status Status,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		code:        code,
		name:        name,
		email:       email,
		phone:       phone,
		scheduledAt: scheduledAt,
		partySize:   partySize,
		status:      status,
		createdAt:   createdAt,
	}
}

// WithCode returns a copy carrying a different code, used when the previous one collided.
func (r *Reservation) WithCode(code Code) *Reservation {
	cp := *r
	cp.code = code
	return &cp
}

func (r *Reservation) MarkPersisted(createdAt time.Time) {
	r.createdAt = createdAt
}

func (r *Reservation) IsConfirmed() bool {
	return r.status == StatusConfirmed
}

func (r *Reservation) ID() uuid.UUID          { return r.id }
func (r *Reservation) Code() Code             { return r.code }
func (r *Reservation) Name() Name             { return r.name }
func (r *Reservation) Email() Email           { return r.email }
func (r *Reservation) Phone() Phone           { return r.phone }
func (r *Reservation) ScheduledAt() time.Time { return r.scheduledAt }
func (r *Reservation) PartySize() int         { return r.partySize }
func (r *Reservation) Status() Status         { return r.status }
func (r *Reservation) CreatedAt() time.Time   { return r.createdAt }
