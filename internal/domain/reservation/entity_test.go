//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"table-reservation/internal/domain/reservation"
	"table-reservation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entityCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	errIs  error
}

func TestReservation(t *testing.T) {
	policy := reservation.DefaultPolicy()
	now := time.Date(2025, 6, 10, 15, 30, 0, 0, policy.Location)

	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder(now).BuildDomain(policy, now)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, reservation.StatusConfirmed, actual.Status())
		assert.True(t, actual.IsConfirmed())
		assert.Equal(t, "RES-ABCD1234", actual.Code().String())
		assert.Equal(t, 2, actual.PartySize())
		assert.True(t, actual.CreatedAt().IsZero())
	})

	t.Run("code validation", func(t *testing.T) {
		runEntityCases(t, policy, now, []entityCase{
			{
				name:   "lowercase code",
				mutate: func(b *builder.ReservationBuilder) { b.Code = "RES-abcd1234" },
				errIs:  reservation.ErrInvalidCodeFormat,
			},
			{
				name:   "missing prefix",
				mutate: func(b *builder.ReservationBuilder) { b.Code = "ABCD1234" },
				errIs:  reservation.ErrInvalidCodeFormat,
			},
			{
				name:   "generated style code",
				mutate: func(b *builder.ReservationBuilder) { b.Code = "RES-Z9Y8X7W6" },
			},
		})
	})

	t.Run("regenerated code keeps identity", func(t *testing.T) {
		original, err := builder.NewReservationBuilder(now).BuildDomain(policy, now)
		require.NoError(t, err)

		retried := original.WithCode("RES-00000000")

		assert.Equal(t, original.ID(), retried.ID())
		assert.Equal(t, "RES-00000000", retried.Code().String())
		assert.Equal(t, "RES-ABCD1234", original.Code().String())
	})

	t.Run("pending confirmation renders local date and time", func(t *testing.T) {
		r, err := builder.NewReservationBuilder(now).BuildDomain(policy, now)
		require.NoError(t, err)

		pc := reservation.NewPendingConfirmation(r, time.UTC, true)

		assert.Equal(t, r.ID(), pc.ReservationID)
		assert.Equal(t, "2025-06-11", pc.Date)
		assert.Equal(t, "17:00", pc.Time) // 19:00 in Paris during summer time
		assert.Equal(t, "Alice Martin", pc.Name)
		assert.True(t, pc.EmailSent)

		pc = reservation.NewPendingConfirmation(r, policy.Location, false)
		assert.Equal(t, "19:00", pc.Time)
		assert.False(t, pc.EmailSent)
	})
}

func runEntityCases(t *testing.T, policy reservation.Policy, now time.Time, cases []entityCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReservationBuilder(now).With(c.mutate).BuildDomain(policy, now)

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
