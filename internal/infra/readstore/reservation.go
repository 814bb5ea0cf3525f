package readstore

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/readstore/reservation.go -package=readstoremock

import (
	"context"

	"table-reservation/internal/domain/reservation"
	"table-reservation/internal/infra"
	"table-reservation/internal/infra/pgquery"
	"table-reservation/internal/infra/repository/converter"
	"table-reservation/internal/pkg/pgconv"
)

type ReservationReadQueries interface {
	GetReservationByCode(ctx context.Context, db pgquery.DBTX, code string) (pgquery.Reservations, error)
	SumBookedTables(ctx context.Context, db pgquery.DBTX, arg pgquery.SumBookedTablesParams) (int64, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      pgquery.DBTX
}

func NewReservationReadStore(queries ReservationReadQueries, db pgquery.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByCode(ctx context.Context, code reservation.Code) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByCode(ctx, r.db, code.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found", err)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by code", err)
	}

	res, err := converter.ReservationFromInfra(row)
	if err != nil {
		return nil, infra.NewRepoErr(infra.KindDBFailure, "stored reservation is malformed", err)
	}
	return res, nil
}

func (r *ReservationReadStore) BookedTables(ctx context.Context, window reservation.Window, seatsPerTable int) (int, error) {
	booked, err := r.queries.SumBookedTables(ctx, r.db, pgquery.SumBookedTablesParams{
		WindowStart:   pgconv.TimeToPgtype(window.Start),
		WindowEnd:     pgconv.TimeToPgtype(window.End),
		SeatsPerTable: int32(seatsPerTable), // #nosec G115 -- small configured value
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum booked tables", err)
	}
	return int(booked), nil
}
