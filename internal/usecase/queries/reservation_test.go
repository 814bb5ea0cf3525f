//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"table-reservation/internal/domain/reservation"
	"table-reservation/internal/infra"
	"table-reservation/internal/pkg/clock"
	"table-reservation/internal/pkg/errs"
	"table-reservation/internal/usecase/queries"
	"table-reservation/internal/usecase/shared"
	"table-reservation/tests/common/builder"
	queriesmock "table-reservation/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newQueries(t *testing.T) (queries.ReservationQueries, *queriesmock.MockReservationReadStore, *clock.MockClock, reservation.Policy) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockReservationReadStore(ctrl)
	policy := reservation.DefaultPolicy()
	clk := clock.NewMockClock(time.Date(2026, 10, 16, 10, 0, 0, 0, policy.Location))
	return queries.NewReservationQueries(store, policy, clk), store, clk, policy
}

func TestReservationQueries_CheckAvailability(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		slot      reservation.Slot
		booked    int
		storeErr  error
		want      *queries.AvailabilityView
		wantErrIs error
	}{
		{
			name:   "success: room to spare",
			slot:   reservation.Slot{Date: "2026-10-17", Time: "20:00", PartySize: "5"},
			booked: 10,
			want: &queries.AvailabilityView{
				Date: "2026-10-17", Time: "20:00", PartySize: 5,
				IsAvailable: true, TablesRequired: 2, TablesAvailable: 5,
			},
		},
		{
			name:   "success: full window",
			slot:   reservation.Slot{Date: "2026-10-17", Time: "20:00", PartySize: "1"},
			booked: 16,
			want: &queries.AvailabilityView{
				Date: "2026-10-17", Time: "20:00", PartySize: 1,
				IsAvailable: false, TablesRequired: 1, TablesAvailable: 0,
			},
		},
		{
			name:      "error: store failure",
			slot:      reservation.Slot{Date: "2026-10-17", Time: "20:00", PartySize: "2"},
			storeErr:  infra.NewRepoErr(infra.KindDBFailure, "boom", errors.New("boom")),
			wantErrIs: errs.ErrDatabaseOperationFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q, store, _, policy := newQueries(t)

			at := time.Date(2026, 10, 17, 20, 0, 0, 0, policy.Location)
			store.EXPECT().BookedTables(ctx, policy.Window(at), policy.SeatsPerTable).Return(tc.booked, tc.storeErr)

			got, err := q.CheckAvailability(ctx, tc.slot)

			if tc.wantErrIs != nil {
				assert.True(t, errs.Is(err, tc.wantErrIs))
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("availability mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReservationQueries_CheckAvailability_InvalidSlot(t *testing.T) {
	q, _, _, _ := newQueries(t)

	_, err := q.CheckAvailability(context.Background(), reservation.Slot{Date: "2026-10-01", Time: "23:00", PartySize: "x"})

	var verr *shared.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, reservation.HasKind(verr.Violations, reservation.FieldDate, reservation.KindPastDate))
	assert.True(t, reservation.HasKind(verr.Violations, reservation.FieldTime, reservation.KindOutsideServiceHours))
	assert.True(t, reservation.HasKind(verr.Violations, reservation.FieldPartySize, reservation.KindOutOfRange))
}

func TestReservationQueries_GetByCode(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		q, store, clk, policy := newQueries(t)
		res, err := builder.NewReservationBuilder(clk.Now()).WithPartySize(3).BuildDomain(policy, clk.Now())
		require.NoError(t, err)
		store.EXPECT().FindByCode(ctx, reservation.Code("RES-ABCD1234")).Return(res, nil)

		view, err := q.GetByCode(ctx, "RES-ABCD1234")

		require.NoError(t, err)
		assert.Equal(t, &queries.ReservationView{
			Code: "RES-ABCD1234", Date: "2026-10-17", Time: "19:00", PartySize: 3, Status: "confirmed",
		}, view)
	})

	t.Run("malformed code never reaches the store", func(t *testing.T) {
		q, _, _, _ := newQueries(t)

		_, err := q.GetByCode(ctx, "nope")

		assert.True(t, errs.Is(err, queries.ErrReservationNotFound))
	})

	t.Run("not found", func(t *testing.T) {
		q, store, _, _ := newQueries(t)
		store.EXPECT().FindByCode(ctx, gomock.Any()).
			Return(nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found", errors.New("no rows")))

		_, err := q.GetByCode(ctx, "RES-ZZZZ0000")

		assert.True(t, errs.Is(err, queries.ErrReservationNotFound))
	})

	t.Run("store failure", func(t *testing.T) {
		q, store, _, _ := newQueries(t)
		store.EXPECT().FindByCode(ctx, gomock.Any()).
			Return(nil, infra.NewRepoErr(infra.KindDBFailure, "boom", errors.New("boom")))

		_, err := q.GetByCode(ctx, "RES-ZZZZ0000")

		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
		assert.False(t, errs.Is(err, queries.ErrReservationNotFound))
	})
}
