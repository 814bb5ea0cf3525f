package reservation

import (
	"time"

	"github.com/google/uuid"
)

// PendingConfirmation is what the confirmation page needs after the redirect.
// It is rendered once and then discarded.
type PendingConfirmation struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	PartySize     int       `json:"party_size"`
	EmailSent     bool      `json:"email_sent"`
}

func NewPendingConfirmation(r *Reservation, loc *time.Location, emailSent bool) PendingConfirmation {
	at := r.ScheduledAt()
	if loc != nil {
		at = at.In(loc)
	}
	return PendingConfirmation{
		ReservationID: r.ID(),
		Code:          r.Code().String(),
		Name:          r.Name().String(),
		Date:          at.Format(DateLayout),
		Time:          at.Format(TimeLayout),
		PartySize:     r.PartySize(),
		EmailSent:     emailSent,
	}
}
