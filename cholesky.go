package lpc

import "math"

// choleskySolve solves A*x = b for symmetric positive-definite A of
// dimension d using an in-place LDL^T-style factorization: the strictly
// lower triangle of A is overwritten with the L factor, and invDiag[i] is
// set to 1/sqrt of the i-th pivot (A[i][i] minus the squares of the L
// entries already in row i). A is a row-view matrix (a 2-D
// view over flat storage, not an array of independently allocated rows)
// of size at least d x d; only the leading d x d block is read or
// written. invDiag and x must have length >= d.
//
// Inverse square roots are computed via pow(s, -0.5) rather than
// 1/sqrt(s): the two are not guaranteed bit-identical on every platform,
// and callers that must reproduce a fixed rounding path across runs need
// the same one every time.
func choleskySolve(a [][]float64, b []float64, d int, invDiag, x []float64) error {
	for i := 0; i < d; i++ {
		for j := i; j < d; j++ {
			sum := a[i][j]
			for k := 0; k < i; k++ {
				sum -= a[i][k] * a[j][k]
			}
			if i == j {
				if sum <= 0 {
					return errSingularMatrix
				}
				invDiag[i] = math.Pow(sum, -0.5)
			} else {
				a[j][i] = sum * invDiag[i]
			}
		}
	}

	// Forward substitution: solve L*y = b, storing y in x.
	for i := 0; i < d; i++ {
		sum := b[i]
		for k := 0; k < i; k++ {
			sum -= a[i][k] * x[k]
		}
		x[i] = sum * invDiag[i]
	}

	// Back substitution: solve L^T*x = y in place.
	for i := d - 1; i >= 0; i-- {
		sum := x[i]
		for k := i + 1; k < d; k++ {
			sum -= a[k][i] * x[k]
		}
		x[i] = sum * invDiag[i]
	}
	return nil
}
