// Command lpcstat is a small demo harness for the lpc package: it reads a
// raw 16-bit PCM file, runs all three coefficient estimators on one block,
// prints their diagnostics, and round-trips the quantized Levinson-Durbin
// predictor through Predict/Synthesize to confirm bit-exact recovery.
package main

import (
	"encoding/binary"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/thesyncim/lpccore"
)

func main() {
	var (
		inputPath = pflag.StringP("input", "i", "", "raw 16-bit little-endian mono PCM file")
		order     = pflag.IntP("order", "p", 8, "predictor order")
		bits      = pflag.IntP("bits", "b", 12, "quantization precision in bits")
		window    = pflag.StringP("window", "w", "sine", "window: rectangular, sine, welch")
		maxIter   = pflag.IntP("af-iterations", "a", 8, "auxiliary-function solver iterations")
		verbose   = pflag.BoolP("verbose", "v", false, "enable debug logging")
		help      = pflag.BoolP("help", "h", false, "display this help text")
	)
	pflag.Usage = func() {
		os.Stderr.WriteString("lpcstat: inspect LPC coefficient estimators on a PCM file\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if *help || *inputPath == "" {
		pflag.Usage()
		if *inputPath == "" {
			os.Exit(2)
		}
		return
	}

	win, err := parseWindow(*window)
	if err != nil {
		logger.Fatal("invalid window", "window", *window, "err", err)
	}

	samples, err := readPCM16(*inputPath)
	if err != nil {
		logger.Fatal("reading PCM file", "path", *inputPath, "err", err)
	}
	logger.Debug("loaded samples", "count", len(samples), "path", *inputPath)

	x := make([]float64, len(samples))
	for i, s := range samples {
		x[i] = float64(s)
	}

	cfg := lpc.Config{MaxOrder: uint32(*order), MaxNumSamples: uint32(len(x))}
	calc, err := lpc.New(cfg)
	if err != nil {
		logger.Fatal("creating calculator", "err", err)
	}
	defer calc.Close()

	ld := make([]float64, *order)
	if err := calc.CalculateLPCCoefficients(x, *order, win, ld); err != nil {
		logger.Fatal("Levinson-Durbin", "err", err)
	}
	logger.Info("levinson-durbin", "coefficients", ld)

	af := make([]float64, *order)
	if err := calc.CalculateLPCCoefficientsAF(x, *order, *maxIter, win, af); err != nil {
		logger.Fatal("auxiliary-function", "err", err)
	}
	logger.Info("auxiliary-function", "coefficients", af)

	burg := make([]float64, *order)
	if err := calc.CalculateLPCCoefficientsBurg(x, *order, burg); err != nil {
		logger.Fatal("burg", "err", err)
	}
	logger.Info("burg", "coefficients", burg)

	codeLength, err := calc.EstimateCodeLength(x, 16, *order, win)
	if err != nil {
		logger.Fatal("estimate code length", "err", err)
	}
	mdl, err := calc.CalculateMDL(x, *order, win)
	if err != nil {
		logger.Fatal("calculate MDL", "err", err)
	}
	logger.Info("diagnostics", "bits_per_sample", codeLength, "mdl", mdl)

	intCoef := make([]int32, *order)
	rshift, err := lpc.QuantizeCoefficients(ld, *bits, intCoef)
	if err != nil {
		logger.Fatal("quantize", "err", err)
	}

	residual := make([]int32, len(samples))
	if err := lpc.Predict(samples, intCoef, rshift, residual); err != nil {
		logger.Fatal("predict", "err", err)
	}

	reconstructed := make([]int32, len(samples))
	copy(reconstructed, residual)
	if err := lpc.Synthesize(reconstructed, intCoef, rshift); err != nil {
		logger.Fatal("synthesize", "err", err)
	}

	mismatches := 0
	for i := range samples {
		if reconstructed[i] != samples[i] {
			mismatches++
		}
	}
	logger.Info("round-trip", "rshift", rshift, "mismatches", mismatches, "samples", len(samples))
}

func parseWindow(name string) (lpc.Window, error) {
	switch name {
	case "rectangular":
		return lpc.WindowRectangular, nil
	case "sine":
		return lpc.WindowSine, nil
	case "welch":
		return lpc.WindowWelch, nil
	default:
		return 0, lpc.ErrInvalidArgument
	}
}

func readPCM16(path string) ([]int32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	raw := make([]byte, info.Size())
	if _, err := f.ReadAt(raw, 0); err != nil {
		return nil, err
	}

	n := len(raw) / 2
	samples := make([]int32, n)
	for i := 0; i < n; i++ {
		samples[i] = int32(int16(binary.LittleEndian.Uint16(raw[2*i : 2*i+2])))
	}
	return samples, nil
}
