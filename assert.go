package lpc

import "fmt"

// assertf checks a numerical invariant (|gamma|<1, E>=0, rshift positivity,
// ...). In normal builds a failed invariant surfaces as ErrFailedToCalculate
// so a programming error cannot crash the caller's process; building with
// -tags lpcdebug instead panics immediately, for catching a broken
// invariant during development rather than silently degrading.
func assertf(ok bool, format string, args ...any) error {
	if ok {
		return nil
	}
	if lpcDebugAssertions {
		panic(fmt.Sprintf(format, args...))
	}
	return ResultFailedToCalculate
}
