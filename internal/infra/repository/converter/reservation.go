package converter

import (
	"fmt"
	"math"

	"table-reservation/internal/domain/reservation"
	"table-reservation/internal/infra/pgquery"
	"table-reservation/internal/pkg/pgconv"
)

func ReservationToInfra(res *reservation.Reservation) pgquery.InsertReservationParams {
	size := res.PartySize()
	if size > math.MaxInt32 || size < 0 {
		panic(fmt.Sprintf("party size out of int32 range: %d", size))
	}

	return pgquery.InsertReservationParams{
		ID:          pgconv.UUIDToPgtype(res.ID()),
		Code:        res.Code().String(),
		Name:        res.Name().String(),
		Email:       res.Email().String(),
		Phone:       res.Phone().String(),
		ScheduledAt: pgconv.TimeToPgtype(res.ScheduledAt()),
		PartySize:   int32(size),
		Status:      res.Status().String(),
	}
}

// ReservationFromInfra rebuilds the aggregate from a stored row. Stored values were
// validated on the way in, so the value objects are rebuilt without re-checking.
func ReservationFromInfra(row pgquery.Reservations) (*reservation.Reservation, error) {
	code, err := reservation.ParseCode(row.Code)
	if err != nil {
		return nil, err
	}
	status := reservation.Status(row.Status)
	if !status.IsValid() {
		return nil, reservation.ErrInvalidStatus
	}
	name, _ := reservation.NewName(row.Name)
	email, _ := reservation.NewEmail(row.Email)
	phone, _ := reservation.NewPhone(row.Phone)

	return reservation.ReconstructReservation(
		pgconv.UUIDFromPgtype(row.ID),
		code,
		name,
		email,
		phone,
		pgconv.TimeFromPgtype(row.ScheduledAt),
		int(row.PartySize),
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}
