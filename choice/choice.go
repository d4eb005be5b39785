package choice

import (
	"math/rand"

	"github.com/Primav1022/SynWorld-VSIbench/core"
)

// Build — shuffled multiple-choice construction with a verified answer key.
//
// Description:
//
//	Build takes the canonical correct value and a pool that contains it,
//	shuffles a copy of the pool with the supplied deterministic RNG,
//	formats the options as "A. value" ... and maps the correct value to
//	its post-shuffle letter.
//
// Contract:
//  1. 2 ≤ len(pool) ≤ 26, else ErrPoolSize.
//  2. correct occurs in pool exactly once (by string equality), else
//     ErrCorrectMissing / ErrCorrectDuplicated.
//  3. The correct value is located again after the shuffle; if it cannot
//     be found the call fails with ErrCorrectMissing. It never silently
//     defaults to letter "A".
//
// The input pool is not mutated.
//
// Complexity: O(n) time, O(n) space.
func Build(correct string, pool []string, rng *rand.Rand) (Choice, error) {
	if len(pool) < minPool || len(pool) > maxPool {
		return Choice{}, ErrPoolSize
	}

	seen := 0
	for _, v := range pool {
		if v == correct {
			seen++
		}
	}
	if seen == 0 {
		return Choice{}, ErrCorrectMissing
	}
	if seen > 1 {
		return Choice{}, ErrCorrectDuplicated
	}

	values := make([]string, len(pool))
	copy(values, pool)
	core.ShuffleStrings(values, rng)

	index := -1
	options := make([]string, len(values))
	for i, v := range values {
		options[i] = Letter(i) + ". " + v
		if v == correct {
			index = i
		}
	}
	if index < 0 {
		// Unreachable after the occurrence check, but a lost correct value
		// must surface as an error, never as letter "A".
		return Choice{}, ErrCorrectMissing
	}

	return Choice{
		Values:  values,
		Options: options,
		Index:   index,
		Answer:  Letter(index),
	}, nil
}

// Alternatives collects up to want distinct incorrect values from gen,
// deduplicated as a set against the correct value and against each other.
// gen is drawn at most maxTries times; when the budget runs out before
// want values are collected, the partial set is returned together with
// ErrAlternativeSpace so the caller can decide whether fewer options are
// acceptable.
//
// Complexity: O(maxTries) draws, O(want) space.
func Alternatives(correct string, want, maxTries int, gen func() string) ([]string, error) {
	taken := map[string]struct{}{correct: {}}
	out := make([]string, 0, want)

	for tries := 0; len(out) < want && tries < maxTries; tries++ {
		cand := gen()
		if _, dup := taken[cand]; dup {
			continue
		}
		taken[cand] = struct{}{}
		out = append(out, cand)
	}
	if len(out) < want {
		return out, ErrAlternativeSpace
	}
	return out, nil
}

// Letter maps an option index to its letter: 0 → "A", 1 → "B", ...
func Letter(i int) string {
	return string(rune('A' + i))
}
