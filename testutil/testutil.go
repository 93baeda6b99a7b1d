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

// Index returns a pseudo-random bit index in [0,width).
func (r *RNG) Index(width uint) uint {
	r.mu.Lock()
	defer r.mu.Unlock()
	return uint(r.rand.Intn(int(width)))
}

// Indices returns num pseudo-random bit indices in [0,width).
// Duplicates are allowed.
func (r *RNG) Indices(num int, width uint) []uint {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]uint, num)
	for i := range out {
		out[i] = uint(r.rand.Intn(int(width)))
	}
	return out
}

// MixedIndices returns num pseudo-random bit indices where roughly one in
// four lies in [width, 2*width) and the rest in [0, width).
func (r *RNG) MixedIndices(num int, width uint) []uint {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]uint, num)
	for i := range out {
		idx := uint(r.rand.Intn(int(width)))
		if r.rand.Intn(4) == 0 {
			idx += width
		}
		out[i] = idx
	}
	return out
}

// Mask returns the reference bit pattern for indices as a []bool of length
// width, skipping indices at or beyond width.
func Mask(indices []uint, width uint) []bool {
	out := make([]bool, width)
	for _, idx := range indices {
		if idx < width {
			out[idx] = true
		}
	}
	return out
}
