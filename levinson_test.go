package lpc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevinsonDurbinSilence(t *testing.T) {
	p := 4
	r := make([]float64, p+1)
	a := make([]float64, p+2)
	k := make([]float64, p+2)
	u := make([]float64, p+2)
	v := make([]float64, p+2)

	energy, err := levinsonDurbin(r, p, a, k, u, v)
	require.NoError(t, err)
	assert.Equal(t, 0.0, energy)
	for i := 1; i <= p; i++ {
		assert.Equal(t, 0.0, a[i])
		assert.Equal(t, 0.0, k[i])
	}
}

// Scenario 1: a squarewave-like alternating signal should produce a
// first PARCOR coefficient with magnitude > 0.99.
func TestLevinsonDurbinAlternatingSignalStrongFirstParcor(t *testing.T) {
	const n = 64
	x := make([]float64, n)
	for i := range x {
		if i%2 == 0 {
			x[i] = 1
		} else {
			x[i] = -1
		}
	}

	p := 4
	windowed := make([]float64, n)
	require.NoError(t, applyWindow(windowed, x, WindowRectangular))

	r := make([]float64, p+1)
	require.NoError(t, autocorrelate(r, windowed, p+1))

	a := make([]float64, p+2)
	k := make([]float64, p+2)
	u := make([]float64, p+2)
	v := make([]float64, p+2)
	_, err := levinsonDurbin(r, p, a, k, u, v)
	require.NoError(t, err)

	assert.Greater(t, math.Abs(k[1]), 0.99)

	intCoef := make([]int32, p)
	rshift, err := QuantizeCoefficients(a[1:p+1], 12, intCoef)
	require.NoError(t, err)

	xi := make([]int32, n)
	for i, v := range x {
		xi[i] = int32(v * (1 << 14))
	}
	residual := make([]int32, n)
	require.NoError(t, Predict(xi, intCoef, rshift, residual))
	reconstructed := make([]int32, n)
	copy(reconstructed, residual)
	require.NoError(t, Synthesize(reconstructed, intCoef, rshift))
	assert.Equal(t, xi, reconstructed)
}

// Scenario 2: a pure sine block, windowed, should let both Levinson-Durbin
// and the auxiliary-function solver cut residual energy by >= 20 dB.
func TestLevinsonDurbinAndAFReduceSineEnergy(t *testing.T) {
	const n = 512
	x := make([]float64, n)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * float64(i) / 32)
	}

	p := 8
	windowed := make([]float64, n)
	require.NoError(t, applyWindow(windowed, x, WindowSine))

	r := make([]float64, p+1)
	require.NoError(t, autocorrelate(r, windowed, p+1))

	a := make([]float64, p+2)
	k := make([]float64, p+2)
	u := make([]float64, p+2)
	v := make([]float64, p+2)
	_, err := levinsonDurbin(r, p, a, k, u, v)
	require.NoError(t, err)

	inputEnergy := energyOf(windowed)
	ldResidualEnergy := residualEnergy(windowed, a[1:p+1])
	assert.GreaterOrEqual(t, 10*math.Log10(inputEnergy/ldResidualEnergy), 20.0)

	afA := make([]float64, p)
	copy(afA, a[1:p+1])
	weight := make([]float64, n)
	m := makeRowView(p)
	rhs := make([]float64, p)
	invDiag := make([]float64, p)
	require.NoError(t, auxFunctionSolve(windowed, p, 8, afA, weight, m, rhs, invDiag))

	afResidualEnergy := residualEnergy(windowed, afA)
	assert.GreaterOrEqual(t, 10*math.Log10(inputEnergy/afResidualEnergy), 20.0)
}

func energyOf(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v * v
	}
	return sum
}

func residualEnergy(x []float64, a []float64) float64 {
	p := len(a)
	var sum float64
	for t := p; t < len(x); t++ {
		r := x[t]
		for i := 0; i < p; i++ {
			r += a[i] * x[t-i-1]
		}
		sum += r * r
	}
	return sum
}
