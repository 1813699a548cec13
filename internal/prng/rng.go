// Package prng centralizes deterministic random generation shared by
// distfield (start-cell jitter) and pathfind (tie-break shuffles), grounded
// on the teacher's tsp package RNG utilities.
//
// Determinism: the same seed always produces the same stream, independent
// of platform. No time-based source is ever used.
//
// Concurrency: *rand.Rand is NOT goroutine-safe; each call site should hold
// its own instance (matching the engine's single-threaded-per-instance
// contract).
package prng

import "math/rand"

// FromSeed returns a deterministic *rand.Rand for seed.
func FromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent value and a stream identifier into a new
// 64-bit seed via a SplitMix64-style avalanche finalizer, so a situation
// described by (parent, stream) always derives the same seed, while
// different situations diverge quickly.
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// ShuffleInts performs an in-place Fisher-Yates shuffle of a using rng.
func ShuffleInts(a []int, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
