package random

import (
	"math/rand/v2"
)

// SingleThreadedGenerator is a Random Number Generator (RNG) that
// cannot be used concurrently. Every Monte Carlo worker owns exactly
// one instance of it. This interface is a subset of Go's rand.Rand.
type SingleThreadedGenerator interface {
	// Generates a number in range [0.0, 1.0).
	Float64() float64
	// Generates an arbitrary 64-bit integer value.
	Uint64() uint64
}

var _ SingleThreadedGenerator = (*rand.Rand)(nil)

// DeviateSourceFactory creates a SingleThreadedGenerator that yields a
// deterministic sequence for a given seed. Calling it twice with the
// same seed restarts the same sequence.
type DeviateSourceFactory func(seed uint64) SingleThreadedGenerator
