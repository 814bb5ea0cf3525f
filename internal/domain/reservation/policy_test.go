//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"table-reservation/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
)

func TestTablesRequired(t *testing.T) {
	cases := map[int]int{
		1:  1,
		4:  1,
		5:  2,
		8:  2,
		20: 5,
	}
	for partySize, want := range cases {
		assert.Equal(t, want, reservation.TablesRequired(partySize, 4), "party of %d", partySize)
	}

	assert.Equal(t, 0, reservation.TablesRequired(0, 4))
	assert.Equal(t, 0, reservation.TablesRequired(3, 0))
}

func TestPolicyEvaluate(t *testing.T) {
	policy := reservation.DefaultPolicy()

	t.Run("empty room accepts any party up to full capacity", func(t *testing.T) {
		for partySize := 1; partySize <= policy.TotalTables*policy.SeatsPerTable; partySize++ {
			got := policy.Evaluate(partySize, 0)
			assert.True(t, got.IsAvailable, "party of %d", partySize)
			assert.Equal(t, policy.TotalTables, got.TablesAvailable)
		}
	})

	t.Run("full room rejects any party", func(t *testing.T) {
		for _, partySize := range []int{1, 4, 20} {
			got := policy.Evaluate(partySize, policy.TotalTables)
			assert.False(t, got.IsAvailable, "party of %d", partySize)
			assert.Equal(t, 0, got.TablesAvailable)
		}
	})

	t.Run("exact fit is available", func(t *testing.T) {
		got := policy.Evaluate(8, 13)
		assert.Equal(t, reservation.Availability{IsAvailable: true, TablesRequired: 2, TablesAvailable: 2}, got)
	})

	t.Run("one table short", func(t *testing.T) {
		got := policy.Evaluate(9, 13)
		assert.Equal(t, reservation.Availability{IsAvailable: false, TablesRequired: 3, TablesAvailable: 2}, got)
	})
}

func TestPolicyWindow(t *testing.T) {
	policy := reservation.DefaultPolicy()
	slot := time.Date(2025, 6, 11, 19, 0, 0, 0, policy.Location)

	w := policy.Window(slot)

	assert.Equal(t, slot.Add(-time.Hour), w.Start)
	assert.Equal(t, slot.Add(2*time.Hour), w.End)
	assert.True(t, w.Contains(w.Start))
	assert.True(t, w.Contains(w.End))
	assert.True(t, w.Contains(slot))
	assert.False(t, w.Contains(w.Start.Add(-time.Minute)))
	assert.False(t, w.Contains(w.End.Add(time.Minute)))
}

func TestPolicyServiceDay(t *testing.T) {
	policy := reservation.DefaultPolicy()

	day := policy.ServiceDay(time.Date(2025, 6, 10, 23, 30, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2025, 6, 11, 0, 0, 0, 0, policy.Location), day)
}
