//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// SeededReservation is a row written directly to the table, bypassing the workflow.
type SeededReservation struct {
	Code        string
	ScheduledAt time.Time
	PartySize   int
	Status      string
}

// CreateTestReservation inserts a reservation row and returns its id.
func CreateTestReservation(t *testing.T, db DBLike, r SeededReservation) uuid.UUID {
	t.Helper()

	if r.Status == "" {
		r.Status = "confirmed"
	}
	id := uuid.New()

	_, err := db.Exec(context.Background(),
		`INSERT INTO reservations (id, code, name, email, phone, scheduled_at, party_size, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, r.Code, "Client Test", "client@example.com", "0612345678", r.ScheduledAt, r.PartySize, r.Status)
	require.NoError(t, err)

	return id
}

// FillTables books n full tables at the given time, one reservation per table.
func FillTables(t *testing.T, db DBLike, at time.Time, n, seatsPerTable int) {
	t.Helper()

	for i := range n {
		CreateTestReservation(t, db, SeededReservation{
			Code:        fmt.Sprintf("RES-FULL%04d", i),
			ScheduledAt: at,
			PartySize:   seatsPerTable,
		})
	}
}

// CountReservations counts confirmed rows scheduled inside [from, to].
func CountReservations(t *testing.T, db DBLike, from, to time.Time) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM reservations WHERE status = 'confirmed' AND scheduled_at BETWEEN $1 AND $2`,
		from, to).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except the migration ledger
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
