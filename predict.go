package lpc

// Predict and Synthesize are the integer analysis/synthesis filters. Both
// use a fixed-point predictor (coef, rshift) where coef_i*2^-rshift is the
// real-valued tap weight, and accumulate into a 32-bit signed register
// pre-seeded with the rounding constant 2^(rshift-1) before shifting.
//
// Prediction of sample t uses t'=min(t,P) previous samples, so the first
// P taps are implicitly zero-padded by the loop bound rather than by the
// caller. Predict's input and output arrays may alias: since residual[t]
// only ever depends on x at indices strictly less than t (never on another
// residual[t']), processing t from n-1 down to 0 writes each output slot
// strictly after every input it reads has been consumed, making the result
// observably identical to first copying x into residual and then updating
// in place regardless of processing order.

// Predict writes residual[t] = x[t] + ((2^(rshift-1) + sum coef[o]*x[t-o-1]) >> rshift)
// for each t, where the sum ranges over o=0..min(t,len(coef))-1.
func Predict(x, coef []int32, rshift uint, residual []int32) error {
	if rshift == 0 {
		return ErrInvalidArgument
	}
	n := len(x)
	if len(residual) != n {
		return ErrInvalidArgument
	}
	p := len(coef)
	round := int32(1) << (rshift - 1)

	for t := n - 1; t >= 0; t-- {
		taps := t
		if taps > p {
			taps = p
		}
		acc := round
		for o := 0; o < taps; o++ {
			acc += coef[o] * x[t-o-1]
		}
		residual[t] = x[t] + (acc >> rshift)
	}
	return nil
}

// Synthesize reconstructs x in place from the residual it was predicted
// into: x[t] -= ((2^(rshift-1) + sum coef[o]*x[t-o-1]) >> rshift), reading
// already-reconstructed samples as history. Synthesize(Predict(x)) is the
// identity for any rshift>=1, the round-trip invariant the enclosing codec
// relies on.
func Synthesize(x, coef []int32, rshift uint) error {
	if rshift == 0 {
		return ErrInvalidArgument
	}
	n := len(x)
	p := len(coef)
	round := int32(1) << (rshift - 1)

	for t := 0; t < n; t++ {
		taps := t
		if taps > p {
			taps = p
		}
		acc := round
		for o := 0; o < taps; o++ {
			acc += coef[o] * x[t-o-1]
		}
		x[t] = x[t] - (acc >> rshift)
	}
	return nil
}
