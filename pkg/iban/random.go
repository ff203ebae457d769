package iban

import (
	"math/rand/v2"

	"ibankit/pkg/bban"
	"ibankit/pkg/country"
)

// NewSeededSource returns a deterministic random source for Random,
// RandomFor and Builder.Random.
func NewSeededSource(seed uint64) *rand.Rand {
	return bban.NewSeededSource(seed)
}

// Random returns a valid IBAN for a country drawn from src. A nil src uses a
// freshly seeded source.
func Random(src bban.RandomSource) (IBAN, error) {
	return NewBuilder().Random(src).BuildRandom()
}

// RandomFor returns a valid IBAN for code drawn from src.
func RandomFor(code country.Code, src bban.RandomSource) (IBAN, error) {
	return NewBuilder().CountryCode(code).Random(src).BuildRandom()
}
