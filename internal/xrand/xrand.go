package xrand

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Source produces uniformly distributed integers in a half-open range.
type Source interface {
	// Uint64N returns a uniformly distributed integer in [0, n). It panics if n is 0.
	Uint64N(n uint64) uint64
}

type chaCha8Source struct {
	r *rand.Rand
}

func (s chaCha8Source) Uint64N(n uint64) uint64 {
	return s.r.Uint64N(n)
}

// NewSeeded returns a ChaCha8 backed source whose stream is fully determined by seed.
func NewSeeded(seed uint64) Source {
	var key [32]byte
	state := seed
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(key[i*8:], splitMix64(&state))
	}
	return chaCha8Source{r: rand.New(rand.NewChaCha8(key))}
}

// New returns a ChaCha8 backed source seeded from the operating system entropy source.
func New() Source {
	var key [32]byte
	if _, err := crand.Read(key[:]); err != nil {
		panic("xrand: failed to read entropy: " + err.Error())
	}
	return chaCha8Source{r: rand.New(rand.NewChaCha8(key))}
}

// splitMix64 expands a 64 bit seed into successive 64 bit outputs.
func splitMix64(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
