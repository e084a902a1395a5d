package lpc

import "unsafe"

// Config parameterizes a Calculator by two caps: the largest predictor
// order and the largest sample block it will ever be asked to process.
type Config struct {
	MaxOrder      uint32
	MaxNumSamples uint32
}

func (cfg Config) validate() error {
	if cfg.MaxOrder == 0 || cfg.MaxNumSamples == 0 {
		return ErrInvalidArgument
	}
	return nil
}

// arenaLayout describes the offsets (in float64 units) of every scratch
// buffer the Calculator carves out of its single flat arena: autocorrelation,
// PARCOR, coefficients, the Levinson-Durbin u/v rotation vectors, the
// (order+1)x(order+1) covariance/normal-equations matrix, the windowed
// signal, and the auxiliary-function solver's rhs, diagInv, weight, and
// seed buffers. Every buffer is sized purely off (MaxOrder, MaxNumSamples)
// and carved from the same arena, preserving the "single contiguous arena"
// contract.
type arenaLayout struct {
	m, n int // MaxOrder, MaxNumSamples as ints

	autocorrOff, autocorrLen int
	parcorOff, parcorLen     int
	aOff, aLen               int
	uOff, uLen               int
	vOff, vLen               int
	rOff, rLen               int // (m+1)*(m+1) flat
	windowedOff, windowedLen int
	rhsOff, rhsLen           int
	diagInvOff, diagInvLen   int
	weightOff, weightLen     int
	seedOff, seedLen         int

	total int
}

func computeLayout(cfg Config) arenaLayout {
	m := int(cfg.MaxOrder)
	n := int(cfg.MaxNumSamples)

	var l arenaLayout
	l.m, l.n = m, n

	off := 0
	take := func(length int) int {
		o := off
		off += length
		return o
	}

	l.autocorrOff, l.autocorrLen = take(m+1), m+1
	l.parcorOff, l.parcorLen = take(m+1), m+1
	l.aOff, l.aLen = take(m+2), m+2
	l.uOff, l.uLen = take(m+2), m+2
	l.vOff, l.vLen = take(m+2), m+2
	l.rOff, l.rLen = take((m+1)*(m+1)), (m+1)*(m+1)
	l.windowedOff, l.windowedLen = take(n), n
	l.rhsOff, l.rhsLen = take(m+1), m+1
	l.diagInvOff, l.diagInvLen = take(m+1), m+1
	l.weightOff, l.weightLen = take(n), n
	l.seedOff, l.seedLen = take(m+1), m+1

	l.total = off
	return l
}

const arenaAlignBytes = 16

func alignUp(nBytes int) int {
	rem := nBytes % arenaAlignBytes
	if rem == 0 {
		return nBytes
	}
	return nBytes + (arenaAlignBytes - rem)
}

// CalculateWorkSize returns the exact number of bytes a byte-oriented arena
// must supply for the given configuration, or an error if cfg is invalid.
func CalculateWorkSize(cfg Config) (int, error) {
	if err := cfg.validate(); err != nil {
		return -1, err
	}
	l := computeLayout(cfg)
	return alignUp(l.total * 8), nil
}

// CalculateWorkSizeFloats returns the number of float64 elements a
// NewWithArena caller must supply for the given configuration.
func CalculateWorkSizeFloats(cfg Config) (int, error) {
	if err := cfg.validate(); err != nil {
		return -1, err
	}
	l := computeLayout(cfg)
	return l.total, nil
}

// Calculator is a reusable compute context for LPC estimation, quantization
// plumbing, and diagnostics, parameterized by (MaxOrder, MaxNumSamples). It
// is not safe for concurrent use; create one Calculator per worker.
type Calculator struct {
	cfg    Config
	layout arenaLayout
	arena  []float64

	autocorr []float64
	parcor   []float64
	a        []float64
	u        []float64
	v        []float64
	r        [][]float64 // row view over a flat (m+1)*(m+1) backing slice
	windowed []float64
	rhs      []float64
	diagInv  []float64
	weight   []float64
	seed     []float64
}

// New creates a Calculator that self-allocates its arena.
func New(cfg Config) (*Calculator, error) {
	return NewWithArena(cfg, nil)
}

// NewWithArena creates a Calculator backed by the supplied float64 arena.
// If arena is nil, the Calculator self-allocates. A non-nil arena smaller
// than CalculateWorkSizeFloats(cfg) is a validation failure.
func NewWithArena(cfg Config, arena []float64) (*Calculator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	layout := computeLayout(cfg)
	if arena == nil {
		arena = make([]float64, layout.total)
	} else if len(arena) < layout.total {
		return nil, ErrInvalidArgument
	}

	c := &Calculator{cfg: cfg, layout: layout, arena: arena}
	c.autocorr = arena[layout.autocorrOff : layout.autocorrOff+layout.autocorrLen]
	c.parcor = arena[layout.parcorOff : layout.parcorOff+layout.parcorLen]
	c.a = arena[layout.aOff : layout.aOff+layout.aLen]
	c.u = arena[layout.uOff : layout.uOff+layout.uLen]
	c.v = arena[layout.vOff : layout.vOff+layout.vLen]
	c.windowed = arena[layout.windowedOff : layout.windowedOff+layout.windowedLen]
	c.rhs = arena[layout.rhsOff : layout.rhsOff+layout.rhsLen]
	c.diagInv = arena[layout.diagInvOff : layout.diagInvOff+layout.diagInvLen]
	c.weight = arena[layout.weightOff : layout.weightOff+layout.weightLen]
	c.seed = arena[layout.seedOff : layout.seedOff+layout.seedLen]

	flat := arena[layout.rOff : layout.rOff+layout.rLen]
	dim := int(cfg.MaxOrder) + 1
	c.r = make([][]float64, dim)
	for i := 0; i < dim; i++ {
		c.r[i] = flat[i*dim : (i+1)*dim]
	}

	return c, nil
}

// CreateWithByteArena mirrors the C-ABI "bring your own buffer" contract
// of CalculateWorkSize/Create: arena must be at least CalculateWorkSize(cfg)
// bytes, 8-byte aligned, and is reinterpreted in place as the Calculator's
// float64 arena. Most Go callers should prefer NewWithArena.
func CreateWithByteArena(cfg Config, arena []byte) (*Calculator, error) {
	need, err := CalculateWorkSize(cfg)
	if err != nil {
		return nil, err
	}
	if len(arena) < need {
		return nil, ErrInvalidArgument
	}
	if uintptr(unsafe.Pointer(&arena[0]))%8 != 0 {
		return nil, ErrInvalidArgument
	}
	floats := unsafe.Slice((*float64)(unsafe.Pointer(&arena[0])), len(arena)/8)
	return NewWithArena(cfg, floats)
}

// Close releases the Calculator. It tolerates a nil receiver and performs
// no work beyond dropping references, since all memory is either caller-
// owned (the arena) or garbage-collected.
func (c *Calculator) Close() error {
	if c == nil {
		return nil
	}
	c.arena = nil
	return nil
}
