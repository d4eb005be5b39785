// Package core - RNG utilities shared by all question solvers.
//
// This file centralizes deterministic random generation for the engine.
//
// Goals:
//   - Determinism: same seed ⇒ identical question sets across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; helpers degrade to the default stream.
//   - Performance: O(1) factories, O(n) shuffles, O(k) samples.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines.
//   - Use DeriveRand to create independent streams for parallel enumeration
//     shards; streams depend only on (seed, stream), never on draw order, so
//     output is identical for any worker count.
package core

import "math/rand"

// defaultSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using a SplitMix64-style avalanche mix, eliminating correlations
// between neighbouring streams.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	// Canonical SplitMix64 multipliers/finalizer (Vigna 2014).
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// DeriveRand creates an independent deterministic RNG stream from a base
// seed and a stream identifier. Unlike chaining draws off a shared RNG,
// the derived stream is a pure function of (seed, stream): shard i always
// sees the same sequence no matter which worker runs it or in what order.
// The seed==0 policy of NewRand applies.
//
// Complexity: O(1).
func DeriveRand(seed int64, stream uint64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewSource(deriveSeed(s, stream)))
}

// ShuffleStrings performs an in-place Fisher–Yates shuffle of a using rng.
// If rng==nil, a deterministic default stream is used (seed==0 policy).
//
// Complexity: O(n) time, O(1) extra space.
func ShuffleStrings(a []string, rng *rand.Rand) {
	n := len(a)
	if n <= 1 {
		return
	}
	r := rng
	if r == nil {
		r = NewRand(0)
	}
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// SampleStrings returns k elements of a drawn without replacement, via a
// partial Fisher–Yates over a copy. If k >= len(a), a full shuffled copy is
// returned. If rng==nil, the default deterministic stream is used. For
// k<0, the result is empty.
//
// Complexity: O(n) space, O(k) draws.
func SampleStrings(a []string, k int, rng *rand.Rand) []string {
	if k < 0 {
		k = 0
	}
	pool := make([]string, len(a))
	copy(pool, a)
	if k >= len(pool) {
		ShuffleStrings(pool, rng)
		return pool
	}
	r := rng
	if r == nil {
		r = NewRand(0)
	}
	for i := 0; i < k; i++ {
		j := i + r.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
