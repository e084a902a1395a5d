// Package lpc implements the numerical core of a linear predictive coding
// library for a lossless audio codec.
//
// Given a block of real-valued audio samples, a Calculator estimates the
// coefficients of an all-pole predictor of a requested order (via
// Levinson-Durbin, an auxiliary-function IRLS method, or Burg's lattice
// method), quantizes those coefficients to a fixed-point representation,
// and uses the quantized predictor to turn sample blocks into residuals
// (Predict) or residuals back into samples (Synthesize). It also reports
// two scalar diagnostics, an estimated per-sample bit length and an MDL
// score, used by a caller to choose a predictor order.
//
// # Scope
//
// This package covers coefficient estimation, the supporting linear
// algebra (Cholesky solve, lagged autocorrelation), fixed-point
// quantization, integer prediction/synthesis filters, and the diagnostics
// above. It does not cover workspace allocation beyond a single arena,
// window-function application beyond its narrow internal use, bitstream
// framing, channel decorrelation, preemphasis, CRC computation, or bit-level
// I/O — those are the responsibility of an enclosing codec.
//
// # Concurrency
//
// A Calculator is not internally synchronized. Each instance may be used
// by at most one goroutine at a time; callers that need parallelism create
// one Calculator per worker.
package lpc
