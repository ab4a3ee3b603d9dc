// Package rng provides the random-number sources used to shuffle decks.
//
// A Source is either deterministic (NewSeeded, a linear congruential generator
// for reproducible games and tests) or non-deterministic (NewCrypto, backed by
// the kyber suite random stream).
package rng

// Source generates non-negative pseudo-random integers.
type Source interface {
	// Next returns a value in [0, 2^31-1].
	Next() int
	// Intn returns a value in [0, max). It panics if max <= 0.
	Intn(max int) int
	// Range returns a value in [min, max). It panics if min >= max.
	Range(min, max int) int
}

func checkIntn(max int) {
	if max <= 0 {
		panic("rng: max must be positive")
	}
}

func checkRange(min, max int) {
	if min >= max {
		panic("rng: min must be less than max")
	}
}
