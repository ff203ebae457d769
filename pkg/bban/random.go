package bban

import "math/rand/v2"

// RandomSource yields uniformly distributed integers in [0, n).
// *math/rand/v2.Rand satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// NewSeededSource returns a deterministic source: the same seed always
// produces the same sequence.
func NewSeededSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewSource returns a freshly seeded, non-deterministic source.
func NewSource() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
