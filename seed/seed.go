// SPDX-License-Identifier: MIT
// Package: districts/seed
//
// seed.go: the global world seed and the deterministic streams derived from it.
//
// Contract:
//   • Seed is read-only after construction; every consumer derives its own
//     stream instead of sharing a *rand.Rand (no cross-goroutine RNG state).
//   • Stream(key...) is a pure function of (seed, key...): equal inputs give
//     identical draw sequences on every run and platform.
//   • Keys are mixed with SplitMix64 so that adjacent node ids or iterations
//     produce uncorrelated streams.
//
// Usage:
//   • Collapse uses Stream(node.Value, iteration, salt, phase).
//   • Connectivity uses Offset(ConnectivityOffset).Stream().
//   • Layout uses Offset(LayoutOffset).Stream().

package seed

import (
	"math/rand/v2"
)

// Seed is the single global seed all generation randomness is derived from.
type Seed uint64

// ConnectivityOffset separates the connectivity stream from any collapse
// stream derived from the same world seed.
const ConnectivityOffset uint64 = 0x9E3779B97F4A7C15

// LayoutOffset separates the stream used to place nodes.
const LayoutOffset uint64 = 0xD1B54A32D192ED03

// golden is the SplitMix64 increment.
const golden uint64 = 0x9E3779B97F4A7C15

// New returns a Seed holding v.
func New(v uint64) Seed { return Seed(v) }

// Value returns the raw seed value.
func (s Seed) Value() uint64 { return uint64(s) }

// Offset returns a new Seed equal to s XOR-mixed with off. The result is used
// for streams that must not overlap the base stream.
// Complexity: O(1).
func (s Seed) Offset(off uint64) Seed {
	return Seed(Mix(uint64(s) ^ off))
}

// Stream returns a fresh PCG-backed generator keyed by (s, keys...).
// Each call allocates a new generator; callers own it exclusively.
// Complexity: O(len(keys)).
func (s Seed) Stream(keys ...uint64) *rand.Rand {
	hi := Mix(uint64(s))
	lo := Mix(uint64(s) + golden)
	for i, k := range keys {
		// Position-dependent mixing keeps (a,b) and (b,a) apart.
		hi = Mix(hi ^ k + uint64(i+1)*golden)
		lo = Mix(lo + k ^ hi)
	}

	return rand.New(rand.NewPCG(hi, lo))
}

// Mix is the SplitMix64 finalizer. It is a bijection on uint64 with good
// avalanche behavior, which is all that is needed to decorrelate keys.
func Mix(z uint64) uint64 {
	z += golden
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB

	return z ^ (z >> 31)
}

// Unit maps v into [0,1) using its top 53 bits. It is used for id-derived
// variance that must not consume a stream.
func Unit(v uint64) float64 {
	return float64(Mix(v)>>11) / (1 << 53)
}
