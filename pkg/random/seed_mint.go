package random

import (
	"encoding/binary"
	"io"
	"sync"

	"github.com/buildbarn/bb-montecarlo/pkg/util"

	"google.golang.org/grpc/codes"
)

// SeedMint hands out seeds for DeviateSourceFactory, drawing them from
// a shared entropy stream. The entropy stream does not need to be safe
// for concurrent use, as SeedMint serializes access to it.
//
// Seeds are only practically decorrelated. They are not suitable for
// cryptographic purposes, even if the entropy stream is.
type SeedMint struct {
	lock    sync.Mutex
	entropy io.Reader
	err     error
}

// NewSeedMint creates a SeedMint that reads from a given entropy
// stream, such as crypto/rand.Reader.
func NewSeedMint(entropy io.Reader) *SeedMint {
	return &SeedMint{
		entropy: entropy,
	}
}

// NextSeed draws a single seed from the entropy stream. Once the
// entropy stream has failed, the same error is returned for all
// successive calls without reading from the stream again.
func (m *SeedMint) NextSeed() (uint64, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.err != nil {
		return 0, m.err
	}
	var b [8]byte
	if _, err := io.ReadFull(m.entropy, b[:]); err != nil {
		m.err = util.StatusWrapWithCode(err, codes.Unavailable, "Entropy source exhausted")
		return 0, m.err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}
