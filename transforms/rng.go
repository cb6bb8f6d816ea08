// SPDX-License-Identifier: MIT

// Package transforms - random streams.
//
// This file centralizes every random draw made by the package.
//
// Goals:
//   - Injection: every draw goes through an explicit *rand.Rand; nil means
//     the process-wide generator of math/rand/v2.
//   - Determinism: same seed ⇒ identical draws ⇒ identical augmentations.
//   - Independence: DeriveStream gives each worker a decorrelated stream.
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe. Do not share one across goroutines.

package transforms

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// defaultStreamSeed is used when callers pass seed == 0.
const defaultStreamSeed uint64 = 1

// NewStream returns a deterministic PCG-backed stream.
// Policy: seed == 0 ⇒ defaultStreamSeed.
//
// Complexity: O(1).
func NewStream(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = defaultStreamSeed
	}
	return rand.New(rand.NewPCG(seed, mixSeed(seed, 0)))
}

// DeriveStream creates an independent deterministic stream from base and a
// stream identifier (worker index, sample index, ...). base == nil derives
// from defaultStreamSeed; otherwise base is advanced by one draw so repeated
// derivations with the same id still differ.
//
// Complexity: O(1).
func DeriveStream(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultStreamSeed
	if base != nil {
		parent = base.Uint64()
	}
	s := mixSeed(parent, stream)

	return rand.New(rand.NewPCG(s, mixSeed(s, stream+1)))
}

// mixSeed is a SplitMix64 finalizer over (parent, stream).
func mixSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// source converts r to a distuv source, keeping nil as an untyped nil so
// distuv falls back to the global generator.
func source(r *rand.Rand) rand.Source {
	if r == nil {
		return nil
	}
	return r
}

// uniform draws a real from [lo, hi).
func uniform(r *rand.Rand, lo, hi float64) float64 {
	return distuv.Uniform{Min: lo, Max: hi, Src: source(r)}.Rand()
}

// randint draws an integer from [lo, hi] (both inclusive). hi < lo yields lo.
func randint(r *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	n := hi - lo + 1
	if r == nil {
		return lo + rand.IntN(n)
	}
	return lo + r.IntN(n)
}
