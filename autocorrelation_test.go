package lpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func directAutocorrelate(x []float64, lagCount int) []float64 {
	n := len(x)
	r := make([]float64, lagCount)
	for lag := 0; lag < lagCount; lag++ {
		var sum float64
		for i := 0; i < n-lag; i++ {
			sum += x[i] * x[i+lag]
		}
		r[lag] = sum
	}
	return r
}

// Invariant: the blocked kernel agrees with the direct definition to
// within ~1 ULP per accumulated term.
func TestAutocorrelateAgreesWithDirectDefinition(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 200).Draw(rt, "n")
		lagCount := rapid.IntRange(1, n).Draw(rt, "lagCount")
		x := make([]float64, n)
		for i := range x {
			x[i] = rapid.Float64Range(-1000, 1000).Draw(rt, "x")
		}

		dst := make([]float64, lagCount)
		require.NoError(rt, autocorrelate(dst, x, lagCount))
		want := directAutocorrelate(x, lagCount)

		tolerance := 1e-9 * float64(n) * 1000 * 1000
		for lag := range want {
			assert.InDelta(rt, want[lag], dst[lag], tolerance)
		}
	})
}

func TestAutocorrelateInvalidArguments(t *testing.T) {
	assert.ErrorIs(t, autocorrelate(make([]float64, 1), []float64{1, 2, 3}, 0), ErrInvalidArgument)
	assert.ErrorIs(t, autocorrelate(make([]float64, 1), []float64{1, 2, 3}, 4), ErrInvalidArgument)
	assert.ErrorIs(t, autocorrelate(make([]float64, 0), []float64{1, 2, 3}, 1), ErrInvalidArgument)
}
