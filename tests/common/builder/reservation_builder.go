//go:build unit || e2e

package builder

import (
	"net/url"
	"strconv"
	"time"

	"table-reservation/internal/domain/reservation"
)

type ReservationBuilder struct {
	Name      string
	Email     string
	Phone     string
	Date      string
	Time      string
	PartySize string
	Code      reservation.Code
}

// NewReservationBuilder returns a valid request for tomorrow at 19:00 relative to now.
func NewReservationBuilder(now time.Time) *ReservationBuilder {
	return &ReservationBuilder{
		Name:      "Alice Martin",
		Email:     "alice@example.com",
		Phone:     "+33612345678",
		Date:      now.AddDate(0, 0, 1).Format(reservation.DateLayout),
		Time:      "19:00",
		PartySize: "2",
		Code:      "RES-ABCD1234",
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) WithPartySize(n int) *ReservationBuilder {
	r.PartySize = strconv.Itoa(n)
	return r
}

// Build methods
func (r *ReservationBuilder) BuildRequest() reservation.Request {
	return reservation.Request{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Date:      r.Date,
		Time:      r.Time,
		PartySize: r.PartySize,
	}
}

func (r *ReservationBuilder) BuildBooking(policy reservation.Policy, now time.Time) (reservation.Booking, []reservation.Violation) {
	return r.BuildRequest().Parse(policy, now)
}

func (r *ReservationBuilder) BuildDomain(policy reservation.Policy, now time.Time) (*reservation.Reservation, error) {
	b, violations := r.BuildBooking(policy, now)
	if len(violations) > 0 {
		return nil, violations[0]
	}
	return reservation.NewReservation(r.Code, b)
}

func (r *ReservationBuilder) BuildForm() url.Values {
	return url.Values{
		"nom":       {r.Name},
		"email":     {r.Email},
		"telephone": {r.Phone},
		"date":      {r.Date},
		"heure":     {r.Time},
		"personnes": {r.PartySize},
	}
}
