// Package generate - deterministic RNG stream derivation.
//
// Each attempt gets independent search and assembly streams derived from
// the session RNG, so a fixed seed reproduces the exact emitted set while
// consecutive attempts stay decorrelated.
package generate

import "math/rand"

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64-style finalizer, eliminating correlations between
// derived streams.
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG creates an independent deterministic stream from base. Int63()
// advances base state intentionally, so reusing a stream id by mistake
// still yields distinct children.
// Complexity: O(1).
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
