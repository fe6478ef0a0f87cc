package core

import "math/rand"

// RNG is a thin convenience wrapper around a single seeded rand source.
// Simulations share one RNG per run so that a fixed seed reproduces an
// identical run deterministically.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// Seed re-seeds the generator in place.
func (r *RNG) Seed(seed int64) {
	r.r.Seed(seed)
}

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int {
	return r.r.Intn(n)
}

// Shuffle randomizes the order of n elements using the provided swap.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.r.Shuffle(n, swap)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
