package random

import (
	"github.com/lazybeaver/xorshift"
)

type xorShiftSingleThreadedGenerator struct {
	sequence xorshift.XorShift
}

// NewXorShiftSingleThreadedGenerator creates a SingleThreadedGenerator
// that is backed by the xorshift64* algorithm. It is not suitable for
// cryptographic purposes.
func NewXorShiftSingleThreadedGenerator(seed uint64) SingleThreadedGenerator {
	// The all-zero state is a fixed point of xorshift.
	if seed == 0 {
		seed = 1
	}
	return &xorShiftSingleThreadedGenerator{
		sequence: xorshift.NewXorShift64Star(seed),
	}
}

func (g *xorShiftSingleThreadedGenerator) Float64() float64 {
	return uint64ToFloat64(g.sequence.Next())
}

func (g *xorShiftSingleThreadedGenerator) Uint64() uint64 {
	return g.sequence.Next()
}

// uint64ToFloat64 maps the upper 53 bits of a 64-bit value onto
// [0.0, 1.0), which is the precision of a float64 mantissa.
func uint64ToFloat64(v uint64) float64 {
	return float64(v>>11) / (1 << 53)
}
