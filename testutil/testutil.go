package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// IntRange returns a pseudo-random number in [lo,hi).
func (r *RNG) IntRange(lo, hi int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return lo + r.rand.Intn(hi-lo)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Float64 returns a pseudo-random float64 in [0,1).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// NormFloat64 returns a standard normal pseudo-random float64.
func (r *RNG) NormFloat64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.NormFloat64()
}

const stringAlphabet = "abcdefghijklmnopqrstuvwxyz"

// String returns a pseudo-random lowercase string of length n.
func (r *RNG) String(n int) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	buf := make([]byte, n)
	for i := range buf {
		buf[i] = stringAlphabet[r.rand.Intn(len(stringAlphabet))]
	}
	return string(buf)
}

// Ints returns n pseudo-random ints in [0,max).
func (r *RNG) Ints(n, max int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Intn(max)
	}
	return out
}

// Strings returns n pseudo-random lowercase strings, each of a length in
// [minLen,maxLen].
func (r *RNG) Strings(n, minLen, maxLen int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = r.String(r.IntRange(minLen, maxLen+1))
	}
	return out
}

// Pick returns a pseudo-random element of xs.
func Pick[T any](r *RNG, xs []T) T {
	return xs[r.Intn(len(xs))]
}
