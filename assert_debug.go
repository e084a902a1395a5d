//go:build lpcdebug

package lpc

const lpcDebugAssertions = true
