//go:build unit

package confirmation_test

import (
	"context"
	"testing"
	"time"

	"table-reservation/internal/infra/confirmation"
	"table-reservation/internal/pkg/clock"
	"table-reservation/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_TakeIsSingleUse(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC))
	store := confirmation.NewMemoryStore(clk)
	pc := samplePending()

	require.NoError(t, store.Put(ctx, "tok", pc, time.Minute))

	got, err := store.Take(ctx, "tok")
	require.NoError(t, err)
	if diff := cmp.Diff(pc, *got); diff != "" {
		t.Errorf("pending confirmation mismatch (-want +got):\n%s", diff)
	}

	_, err = store.Take(ctx, "tok")
	assert.ErrorIs(t, err, errs.ErrConfirmationNotFound)
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC))
	store := confirmation.NewMemoryStore(clk)

	require.NoError(t, store.Put(ctx, "tok", samplePending(), time.Minute))
	clk.Add(time.Minute)

	_, err := store.Take(ctx, "tok")
	assert.ErrorIs(t, err, errs.ErrConfirmationNotFound)
}

func TestMemoryStore_PutSweepsExpired(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC))
	store := confirmation.NewMemoryStore(clk)

	require.NoError(t, store.Put(ctx, "old", samplePending(), time.Minute))
	clk.Add(2 * time.Minute)
	require.NoError(t, store.Put(ctx, "new", samplePending(), time.Minute))

	assert.Equal(t, 1, store.Len())
}

func TestMemoryStore_UnknownToken(t *testing.T) {
	store := confirmation.NewMemoryStore(clock.NewMockClock(time.Now()))

	_, err := store.Take(context.Background(), "missing")

	assert.ErrorIs(t, err, errs.ErrConfirmationNotFound)
}
