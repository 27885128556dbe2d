package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNGDeterminism(t *testing.T) {
	a := NewRNG(4711)
	b := NewRNG(4711)

	assert.Equal(t, a.Ints(32, 1000), b.Ints(32, 1000))
	assert.Equal(t, a.Strings(16, 1, 8), b.Strings(16, 1, 8))
}

func TestRNGReset(t *testing.T) {
	rng := NewRNG(4711)

	first := rng.Ints(16, 1000)
	rng.Reset()
	second := rng.Ints(16, 1000)

	assert.Equal(t, first, second)
}

func TestRNGString(t *testing.T) {
	rng := NewRNG(4711)

	s := rng.String(12)

	assert.Len(t, s, 12)
	for _, c := range s {
		assert.GreaterOrEqual(t, c, 'a')
		assert.LessOrEqual(t, c, 'z')
	}
}

func TestRNGIntRange(t *testing.T) {
	rng := NewRNG(4711)

	for range 100 {
		n := rng.IntRange(10, 20)
		assert.GreaterOrEqual(t, n, 10)
		assert.Less(t, n, 20)
	}
}
