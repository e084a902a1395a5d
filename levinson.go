package lpc

import "math"

// levinsonDurbin runs the Toeplitz recursion on the autocorrelation
// vector r[0..p], producing LPC coefficients a[0..p] (a[0]=1) and PARCOR
// coefficients k[0..p] (k[0] unused, set to 0), using scratch u and v
// each of length at least p+2. It returns the final prediction error
// energy E; the diagnostics formulas do not use it (they work from r[0]
// and the PARCOR vector).
//
// Degenerate input (r[0] smaller than the smallest positive normal
// float32, i.e. near silence) yields the all-zero predictor rather than a
// division blowing up, and is not itself a failure.
func levinsonDurbin(r []float64, p int, a, k, u, v []float64) (energy float64, err error) {
	if p < 1 {
		return 0, ErrInvalidArgument
	}

	const minR0 = 0x1p-126 // smallest positive normal float32

	a[0] = 1
	k[0] = 0
	if r[0] < minR0 {
		for i := 1; i <= p; i++ {
			a[i] = 0
			k[i] = 0
		}
		return 0, nil
	}

	a[1] = -r[1] / r[0]
	e := r[0] + r[1]*a[1]
	k[1] = r[1] / r[0]

	for m := 1; m < p; m++ {
		var acc float64
		for i := 0; i <= m; i++ {
			acc += a[i] * r[m+1-i]
		}
		gamma := -acc / e
		if err := assertf(math.Abs(gamma) < 1, "levinsonDurbin: |gamma|>=1 at order %d", m); err != nil {
			return 0, err
		}
		e *= 1 - gamma*gamma
		if err := assertf(e >= 0, "levinsonDurbin: negative error energy at order %d", m); err != nil {
			return 0, err
		}

		u[0] = 1
		for i := 1; i <= m; i++ {
			u[i] = a[i]
		}
		u[m+1] = 0

		v[0] = 0
		for i := 1; i <= m; i++ {
			v[i] = a[m+1-i]
		}
		v[m+1] = 1

		for i := 0; i <= m+1; i++ {
			a[i] = u[i] + gamma*v[i]
		}
		k[m+1] = -gamma
	}

	return e, nil
}
