package repository

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/repository/reservation.go -package=repositorymock

import (
	"context"
	"hash/fnv"
	"time"

	"table-reservation/internal/domain/reservation"
	"table-reservation/internal/infra"
	"table-reservation/internal/infra/pgquery"
	"table-reservation/internal/infra/repository/converter"
	"table-reservation/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationWriteQueries interface {
	InsertReservation(ctx context.Context, db pgquery.DBTX, arg pgquery.InsertReservationParams) (pgtype.Timestamptz, error)
	SumBookedTables(ctx context.Context, db pgquery.DBTX, arg pgquery.SumBookedTablesParams) (int64, error)
	LockServiceDay(ctx context.Context, db pgquery.DBTX, key int64) error
}

// ReservationRepository runs every statement on the transaction handed to it.
type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{queries: queries}
}

func (r *ReservationRepository) LockServiceDay(ctx context.Context, tx pgquery.DBTX, day time.Time) error {
	if err := r.queries.LockServiceDay(ctx, tx, ServiceDayLockKey(day)); err != nil {
		return infra.WrapRepoErr("failed to lock service day", err)
	}
	return nil
}

func (r *ReservationRepository) BookedTables(ctx context.Context, tx pgquery.DBTX, window reservation.Window, seatsPerTable int) (int, error) {
	booked, err := r.queries.SumBookedTables(ctx, tx, pgquery.SumBookedTablesParams{
		WindowStart:   pgconv.TimeToPgtype(window.Start),
		WindowEnd:     pgconv.TimeToPgtype(window.End),
		SeatsPerTable: int32(seatsPerTable), // #nosec G115 -- small configured value
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum booked tables", err)
	}
	return int(booked), nil
}

func (r *ReservationRepository) Insert(ctx context.Context, tx pgquery.DBTX, res *reservation.Reservation) error {
	params := converter.ReservationToInfra(res)

	createdAt, err := r.queries.InsertReservation(ctx, tx, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			// ON CONFLICT (code) DO NOTHING returned nothing
			return infra.NewRepoErr(infra.KindDuplicateKey, "reservation code already taken", err)
		}
		return infra.WrapRepoErr("failed to insert reservation", err)
	}

	res.MarkPersisted(pgconv.TimeFromPgtype(createdAt))
	return nil
}

// ServiceDayLockKey maps a calendar day onto a stable advisory lock key.
func ServiceDayLockKey(day time.Time) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("reservations:" + day.Format("2006-01-02")))
	return int64(h.Sum64()) // #nosec G115 -- wraparound is fine for a lock key
}
