package lpc

import "math"

// QuantizeCoefficients converts P float coefficients to a fixed-point
// representation of precision bits (1<=bits), writing intCoef[i] in
// [-2^(b-1), 2^(b-1)) and returning the shared right-shift rshift such
// that coef_i ~= intCoef[i] * 2^-rshift.
//
// Quantization is tail-first error-diffused rounding: rounding error from
// each coefficient is carried into the next one processed, starting from
// the last (least perceptually important) tap and working toward the
// first. Rounding is half-away-from-zero rather than round-to-even, to
// bit-match files produced by systems that quantize LPC coefficients
// this way.
func QuantizeCoefficients(coef []float64, bits int, intCoef []int32) (rshift uint, err error) {
	p := len(coef)
	if bits < 1 || len(intCoef) != p || p == 0 {
		return 0, ErrInvalidArgument
	}

	maxAbs := 0.0
	for _, c := range coef {
		if a := math.Abs(c); a > maxAbs {
			maxAbs = a
		}
	}

	if maxAbs <= math.Ldexp(1, -(bits - 1)) {
		for i := range intCoef {
			intCoef[i] = 0
		}
		return uint(bits), nil
	}

	ndigit := int(math.Floor(math.Log2(maxAbs))) + 1
	shift := (bits - 1) - ndigit
	if err := assertf(shift > 0, "QuantizeCoefficients: non-positive rshift (bits=%d, ndigit=%d)", bits, ndigit); err != nil {
		return 0, err
	}

	lo := int32(-(int64(1) << uint(bits-1)))
	hi := int32((int64(1) << uint(bits-1)) - 1)

	diffusedErr := 0.0
	for i := p - 1; i >= 0; i-- {
		diffusedErr += math.Ldexp(coef[i], shift)
		q := roundHalfAwayFromZero(diffusedErr)
		if q < int64(lo) {
			q = int64(lo)
		} else if q > int64(hi) {
			q = int64(hi)
		}
		diffusedErr -= float64(q)
		intCoef[i] = int32(q)
	}

	return uint(shift), nil
}

func roundHalfAwayFromZero(x float64) int64 {
	if x >= 0 {
		return int64(math.Floor(x + 0.5))
	}
	return int64(math.Ceil(x - 0.5))
}
