//go:build !lpcdebug

package lpc

const lpcDebugAssertions = false
