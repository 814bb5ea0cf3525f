package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

import (
	"context"
	"time"

	"table-reservation/internal/domain/reservation"
	"table-reservation/internal/infra/pgquery"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Reservations() ReservationRepository
	DB() pgquery.DBTX
}

type ReservationRepository interface {
	// LockServiceDay blocks concurrent writers for the same day until the transaction ends.
	LockServiceDay(ctx context.Context, tx pgquery.DBTX, day time.Time) error
	BookedTables(ctx context.Context, tx pgquery.DBTX, window reservation.Window, seatsPerTable int) (int, error)
	// Insert fails with a DUPLICATE_KEY repository error when the code is taken.
	Insert(ctx context.Context, tx pgquery.DBTX, res *reservation.Reservation) error
}
