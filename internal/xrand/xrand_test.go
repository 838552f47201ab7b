package xrand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeededDeterminism(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Uint64N(1_000_000), b.Uint64N(1_000_000))
	}
}

func TestNewSeededDifferentSeeds(t *testing.T) {
	a := NewSeeded(1)
	b := NewSeeded(2)

	equal := true
	for i := 0; i < 16; i++ {
		if a.Uint64N(1_000_000) != b.Uint64N(1_000_000) {
			equal = false
		}
	}
	assert.False(t, equal, "different seeds must produce different streams")
}

func TestUint64NBounds(t *testing.T) {
	source := NewSeeded(7)
	for i := 0; i < 10_000; i++ {
		assert.Less(t, source.Uint64N(10), uint64(10))
	}
}

func TestNewEntropySource(t *testing.T) {
	source := New()
	require.NotNil(t, source)
	assert.Less(t, source.Uint64N(100), uint64(100))
}
