package request

import (
	"table-reservation/internal/domain/reservation"
)

// ReservationForm is the HTML form posted to /reservation. Field names follow the form inputs.
type ReservationForm struct {
	Name      string `form:"nom"`
	Email     string `form:"email"`
	Phone     string `form:"telephone"`
	Date      string `form:"date"`
	Time      string `form:"heure"`
	PartySize string `form:"personnes"`
}

func (f ReservationForm) ToDomain() reservation.Request {
	return reservation.Request{
		Name:      f.Name,
		Email:     f.Email,
		Phone:     f.Phone,
		Date:      f.Date,
		Time:      f.Time,
		PartySize: f.PartySize,
	}
}

type AvailabilityQuery struct {
	Date      string `form:"date"`
	Time      string `form:"heure"`
	PartySize string `form:"personnes"`
}

func (q AvailabilityQuery) ToDomain() reservation.Slot {
	return reservation.Slot{
		Date:      q.Date,
		Time:      q.Time,
		PartySize: q.PartySize,
	}
}
