//go:build unit || e2e

package confirmation_test

import (
	"table-reservation/internal/domain/reservation"

	"github.com/google/uuid"
)

func samplePending() reservation.PendingConfirmation {
	return reservation.PendingConfirmation{
		ReservationID: uuid.New(),
		Code:          "RES-ABCD1234",
		Name:          "Alice Martin",
		Date:          "2026-10-20",
		Time:          "19:30",
		PartySize:     4,
		EmailSent:     true,
	}
}
