// errors.go defines the result taxonomy for the lpc package.
package lpc

import "errors"

// Result is a C-ABI-style result tag, returned (wrapped in an error) by
// every operation. The zero value, ResultOK, is never itself returned as
// an error; operations that succeed return a nil error.
type Result int

const (
	// ResultOK indicates success. Never surfaced as an error value.
	ResultOK Result = iota
	// ResultInvalidArgument indicates a null pointer, bad window tag, or
	// out-of-range precision/rshift/order argument.
	ResultInvalidArgument
	// ResultExceedMaxOrder indicates the requested order exceeds the
	// Calculator's configured MaxOrder.
	ResultExceedMaxOrder
	// ResultExceedMaxNumSamples indicates the sample count exceeds the
	// Calculator's configured MaxNumSamples.
	ResultExceedMaxNumSamples
	// ResultFailedToCalculate indicates an unrecoverable numerical
	// breakdown internal to an estimator.
	ResultFailedToCalculate
)

func (r Result) Error() string {
	switch r {
	case ResultOK:
		return "lpc: ok"
	case ResultInvalidArgument:
		return "lpc: invalid argument"
	case ResultExceedMaxOrder:
		return "lpc: order exceeds max_order"
	case ResultExceedMaxNumSamples:
		return "lpc: sample count exceeds max_num_samples"
	case ResultFailedToCalculate:
		return "lpc: failed to calculate"
	default:
		return "lpc: unknown result"
	}
}

// Sentinel errors matching each Result, so callers can use errors.Is.
var (
	ErrInvalidArgument     error = ResultInvalidArgument
	ErrExceedMaxOrder      error = ResultExceedMaxOrder
	ErrExceedMaxNumSamples error = ResultExceedMaxNumSamples
	ErrFailedToCalculate   error = ResultFailedToCalculate

	// errSingularMatrix is internal: Cholesky reports it on a non-positive
	// pivot; callers above recover from it locally and never let it cross
	// the public boundary.
	errSingularMatrix = errors.New("lpc: singular matrix")
)
