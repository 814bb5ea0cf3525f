package pgquery

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

type Reservations struct {
	ID          pgtype.UUID
	Code        string
	Name        string
	Email       string
	Phone       string
	ScheduledAt pgtype.Timestamptz
	PartySize   int32
	Status      string
	CreatedAt   pgtype.Timestamptz
}

const insertReservation = `
INSERT INTO reservations (id, code, name, email, phone, scheduled_at, party_size, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (code) DO NOTHING
RETURNING created_at
`

type InsertReservationParams struct {
	ID          pgtype.UUID
	Code        string
	Name        string
	Email       string
	Phone       string
	ScheduledAt pgtype.Timestamptz
	PartySize   int32
	Status      string
}

// InsertReservation returns pgx.ErrNoRows when the code is already taken.
func (q *Queries) InsertReservation(ctx context.Context, db DBTX, arg InsertReservationParams) (pgtype.Timestamptz, error) {
	row := db.QueryRow(ctx, insertReservation,
		arg.ID,
		arg.Code,
		arg.Name,
		arg.Email,
		arg.Phone,
		arg.ScheduledAt,
		arg.PartySize,
		arg.Status,
	)
	var createdAt pgtype.Timestamptz
	err := row.Scan(&createdAt)
	return createdAt, err
}

const sumBookedTables = `
SELECT COALESCE(SUM(CEIL(party_size / $3::numeric)), 0)::bigint AS booked_tables
FROM reservations
WHERE status = 'confirmed'
  AND scheduled_at BETWEEN $1 AND $2
`

type SumBookedTablesParams struct {
	WindowStart   pgtype.Timestamptz
	WindowEnd     pgtype.Timestamptz
	SeatsPerTable int32
}

func (q *Queries) SumBookedTables(ctx context.Context, db DBTX, arg SumBookedTablesParams) (int64, error) {
	row := db.QueryRow(ctx, sumBookedTables, arg.WindowStart, arg.WindowEnd, arg.SeatsPerTable)
	var booked int64
	err := row.Scan(&booked)
	return booked, err
}

const lockServiceDay = `SELECT pg_advisory_xact_lock($1)`

// LockServiceDay serializes writers for one service day until the surrounding transaction ends.
func (q *Queries) LockServiceDay(ctx context.Context, db DBTX, key int64) error {
	_, err := db.Exec(ctx, lockServiceDay, key)
	return err
}

const getReservationByCode = `
SELECT id, code, name, email, phone, scheduled_at, party_size, status, created_at
FROM reservations
WHERE code = $1
`

func (q *Queries) GetReservationByCode(ctx context.Context, db DBTX, code string) (Reservations, error) {
	row := db.QueryRow(ctx, getReservationByCode, code)
	var i Reservations
	err := row.Scan(
		&i.ID,
		&i.Code,
		&i.Name,
		&i.Email,
		&i.Phone,
		&i.ScheduledAt,
		&i.PartySize,
		&i.Status,
		&i.CreatedAt,
	)
	return i, err
}
