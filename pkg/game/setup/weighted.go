package setup

import (
	"dungen/pkg/engine/rng"
)

// WeightedPick draws one accepted candidate with probability proportional
// to its weight. This is the same distribution as repeating each candidate
// weight times and drawing uniformly, without building the multiset.
// Candidates with a weight below one are never drawn. Returns
// ErrExhaustedCandidates when nothing is eligible.
func WeightedPick[T any](src rng.Source, candidates []T, weight func(T) int, accept func(T) bool) (T, error) {
	var zero T

	total := 0
	for _, c := range candidates {
		if w := weight(c); w > 0 && accept(c) {
			total += w
		}
	}
	if total == 0 {
		return zero, ErrExhaustedCandidates
	}

	roll := src.Intn(total)
	for _, c := range candidates {
		w := weight(c)
		if w <= 0 || !accept(c) {
			continue
		}
		if roll < w {
			return c, nil
		}
		roll -= w
	}

	// Unreachable while accept is a pure function
	return zero, ErrExhaustedCandidates
}
