// Package rng provides the single sequential random source threaded through
// generation. Every stage draws from the same Source so that one seed
// reproduces one dungeon.
package rng

import (
	"math/rand"
	"time"
)

// Source is the subset of *rand.Rand used by the generator
type Source interface {
	Intn(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// New returns a deterministic source for the given seed
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RandomSeed returns a non-zero seed derived from the clock
func RandomSeed() int64 {
	seed := time.Now().UnixNano()
	if seed == 0 {
		seed = 1
	}
	return seed
}

// Chance returns true with probability 1/denominator.
// A denominator of zero or less never fires.
func Chance(src Source, denominator int) bool {
	if denominator <= 0 {
		return false
	}
	return src.Intn(denominator) == 0
}

// Between returns a uniformly chosen integer in [lo, hi]
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.Intn(hi-lo+1)
}
