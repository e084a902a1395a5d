package lpc

import "math"

// laplaceBeta is log2(sqrt(2)*e) ~= 1.9427, the Laplace-entropy bits
// constant term of the estimated code length of a Laplace-distributed
// residual.
var laplaceBeta = math.Log2(math.Sqrt2 * math.E)

// estimatedCodeLength computes bits/sample from the zero-lag
// autocorrelation r0, the sample count n, the source bit depth bps, and
// the PARCOR coefficients k[1..p] (k[0] is unused and ignored) produced
// by running Levinson-Durbin on the same block.
//
// L = beta + 1/2 * (log2(r0 * 2^(2*(bps-1)) / n) + sum log2(1 - k_i^2))
//
// If r0 scaled by the source's dynamic range underflows to near zero the
// block carries no information and L is reported as 0; if the computed L
// is non-positive it is clamped to 1 bit/sample, since a predictor is
// never reported as requiring less than one bit to describe a sample.
func estimatedCodeLength(r0 float64, n, bps, p int, k []float64) float64 {
	scaled := r0 * math.Pow(2, 2*float64(bps-1))
	if scaled < 1e-9 {
		return 0
	}

	l := laplaceBeta + 0.5*math.Log2(scaled/float64(n))
	for i := 1; i <= p; i++ {
		l += 0.5 * math.Log2(1-k[i]*k[i])
	}

	if l <= 0 {
		return 1
	}
	return l
}

// calculateMDL computes n*sum(ln(1-k_i^2)) + p*ln(n) from the PARCOR
// coefficients k[1..p] produced by Levinson-Durbin on a block of n
// samples. Unlike estimatedCodeLength, the result is never clamped: a
// negative MDL is a legitimate, informative score for order comparison.
func calculateMDL(n, p int, k []float64) float64 {
	var sum float64
	for i := 1; i <= p; i++ {
		sum += math.Log(1 - k[i]*k[i])
	}
	return float64(n)*sum + float64(p)*math.Log(float64(n))
}

// EstimateCodeLength windows x, runs Levinson-Durbin, and returns the
// estimated bits/sample for a source of bit depth bps and predictor
// order p.
func (c *Calculator) EstimateCodeLength(x []float64, bps, p int, w Window) (float64, error) {
	r0, err := c.runLevinsonForDiagnostics(x, p, w)
	if err != nil {
		return 0, err
	}
	return estimatedCodeLength(r0, len(x), bps, p, c.parcor), nil
}

// CalculateMDL windows x, runs Levinson-Durbin, and returns the Minimum
// Description Length score for predictor order p.
func (c *Calculator) CalculateMDL(x []float64, p int, w Window) (float64, error) {
	if _, err := c.runLevinsonForDiagnostics(x, p, w); err != nil {
		return 0, err
	}
	return calculateMDL(len(x), p, c.parcor), nil
}

// runLevinsonForDiagnostics validates bounds, windows x into c.windowed,
// autocorrelates into c.autocorr, and runs Levinson-Durbin into
// c.a/c.parcor, returning r[0] for the caller's formula.
func (c *Calculator) runLevinsonForDiagnostics(x []float64, p int, w Window) (float64, error) {
	if err := c.checkBounds(p, len(x)); err != nil {
		return 0, err
	}
	windowed := c.windowed[:len(x)]
	if err := applyWindow(windowed, x, w); err != nil {
		return 0, err
	}
	if err := autocorrelate(c.autocorr, windowed, p+1); err != nil {
		return 0, err
	}
	if _, err := levinsonDurbin(c.autocorr, p, c.a, c.parcor, c.u, c.v); err != nil {
		return 0, err
	}
	return c.autocorr[0], nil
}
