//go:build unit

package reservation_test

import (
	"testing"

	"table-reservation/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomCodeGenerator(t *testing.T) {
	gen := reservation.NewRandomCodeGenerator()

	t.Run("codes match the customer format", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			code, err := gen.Generate()
			require.NoError(t, err)
			assert.Regexp(t, `^RES-[A-Z0-9]{8}$`, code.String())
			assert.True(t, code.IsValid())
		}
	})

	t.Run("no collisions across a large sample", func(t *testing.T) {
		const n = 5000
		seen := make(map[reservation.Code]struct{}, n)
		for i := 0; i < n; i++ {
			code, err := gen.Generate()
			require.NoError(t, err)
			_, dup := seen[code]
			require.False(t, dup, "duplicate code %s after %d draws", code, i)
			seen[code] = struct{}{}
		}
	})
}

func TestParseCode(t *testing.T) {
	_, err := reservation.ParseCode("RES-AB12CD34")
	assert.NoError(t, err)

	for _, bad := range []string{"", "RES-ab12cd34", "RES-AB12CD3", "RES-AB12CD345", "ABC-AB12CD34"} {
		_, err := reservation.ParseCode(bad)
		assert.ErrorIs(t, err, reservation.ErrInvalidCodeFormat, bad)
	}
}
