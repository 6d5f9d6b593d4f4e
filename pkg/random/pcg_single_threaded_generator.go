package random

import (
	"math/rand/v2"

	"github.com/lazybeaver/xorshift"
)

// NewPCGSingleThreadedGenerator creates a SingleThreadedGenerator that
// is backed by Go's PCG implementation. PCG takes a 128-bit seed. The
// upper half is derived from the provided seed by running it through a
// single round of xorshift64*, so that neighbouring seeds don't yield
// correlated streams.
func NewPCGSingleThreadedGenerator(seed uint64) SingleThreadedGenerator {
	mixer := seed
	if mixer == 0 {
		mixer = 1
	}
	return rand.New(rand.NewPCG(seed, xorshift.NewXorShift64Star(mixer).Next()))
}
