package lpc

import "math"

const (
	afResidualFloor = 1e-6
	afConvergeEps   = 1e-8
)

// auxFunctionSolve minimises sum_{t=p..n-1} |x[t] + sum_{i=0..p-1} a_i*x[t-i-1]|
// by iteratively reweighted least squares, seeding from the caller's initial
// predictor and re-solving a Cholesky system each iteration. a (the
// working/output coefficient vector, indices 0..p-1, no leading 1) must
// have length >= p; weight must have length >= len(x); m is a (p+1)x(p+1)
// scratch matrix (only the leading p x p block is used); rhs and invDiag
// must have length >= p.
func auxFunctionSolve(x []float64, p, maxIter int, a, weight []float64, m [][]float64, rhs, invDiag []float64) error {
	n := len(x)
	if p < 1 || n <= p || maxIter < 1 {
		return ErrInvalidArgument
	}

	prevObj := math.Inf(1)

	for iter := 0; iter < maxIter; iter++ {
		var objSum float64
		for t := p; t < n; t++ {
			r := x[t]
			for i := 0; i < p; i++ {
				r += a[i] * x[t-i-1]
			}
			ar := math.Abs(r)
			objSum += ar
			if ar < afResidualFloor {
				ar = afResidualFloor
			}
			weight[t] = 1 / ar
		}
		obj := objSum / float64(n-p)

		for i := 0; i < p; i++ {
			for j := i; j < p; j++ {
				var sum float64
				for t := p; t < n; t++ {
					sum += weight[t] * x[t-i-1] * x[t-j-1]
				}
				m[i][j] = sum
				m[j][i] = sum
			}
			var bsum float64
			for t := p; t < n; t++ {
				bsum -= weight[t] * x[t] * x[t-i-1]
			}
			rhs[i] = bsum
		}

		if err := choleskySolve(m, rhs, p, invDiag, a); err != nil {
			// Singular when the input is all-zero, and also when the
			// reweighted normal matrix is rank-deficient for a non-zero
			// input (e.g. a signal that fewer than p taps predict exactly):
			// either way the zero predictor is reported as a successful,
			// neutral result.
			for i := 0; i < p; i++ {
				a[i] = 0
			}
			return nil
		}

		if math.Abs(prevObj-obj) < afConvergeEps {
			break
		}
		prevObj = obj
	}

	return nil
}
