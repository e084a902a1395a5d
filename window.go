package lpc

import "math"

// Window selects the windowing function applied to a sample block before
// autocorrelation or Burg analysis.
type Window int

const (
	// WindowRectangular leaves samples unweighted (a straight copy).
	WindowRectangular Window = iota
	// WindowSine applies sin(pi*i/(n-1)).
	WindowSine
	// WindowWelch applies 4*i*(n-1-i)/(n-1)^2, computed from both ends to
	// preserve symmetry.
	WindowWelch
)

// applyWindow writes the elementwise-weighted signal into dst, which must
// have the same length as x. n=1 is degenerate for Sine/Welch (division by
// zero in (n-1)) and is rejected here with ErrInvalidArgument.
func applyWindow(dst, x []float64, w Window) error {
	n := len(x)
	switch w {
	case WindowRectangular:
		copy(dst, x)
		return nil
	case WindowSine:
		if n < 2 {
			return ErrInvalidArgument
		}
		scale := math.Pi / float64(n-1)
		for i := 0; i < n; i++ {
			dst[i] = x[i] * math.Sin(scale*float64(i))
		}
		return nil
	case WindowWelch:
		if n < 2 {
			return ErrInvalidArgument
		}
		half := (n - 1) / 2
		denom := float64(n-1) * float64(n-1)
		for i := 0; i <= half; i++ {
			j := n - 1 - i
			weight := 4 * float64(i) * float64(j) / denom
			dst[i] = x[i] * weight
			dst[j] = x[j] * weight
		}
		return nil
	default:
		return ErrInvalidArgument
	}
}
