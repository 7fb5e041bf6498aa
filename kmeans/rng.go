// SPDX-License-Identifier: MIT

// Package kmeans - RNG utilities for seeding and restarts.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Every Fit call owns its streams.
package kmeans

import (
	"math/rand"
	"time"
)

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// baseRNG returns the parent stream for a Fit call: the fixed seed when one
// was given, the wall clock otherwise.
func baseRNG(o Options) *rand.Rand {
	if o.seeded {
		return rngFromSeed(o.seed)
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// (SplitMix64 finalizer).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// deriveRNG creates the independent stream of one restart. base.Int63() is
// consumed once so consecutive derivations never coincide.
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(base.Int63(), stream)))
}
