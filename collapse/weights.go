// SPDX-License-Identifier: MIT
// Package: districts/collapse
//
// weights.go: initial candidate weights.
//
// Every node starts with the four assignable tiles. A weight is shaped by:
//   1. centrality: central favored near the origin, peripheral far from it;
//   2. an id-derived variance in [1-V, 1+V] that consumes no stream draws;
//   3. seeded jitter on one stream-chosen candidate.

package collapse

import (
	"math/rand/v2"

	"github.com/katalvlaran/districts/core"
	"github.com/katalvlaran/districts/seed"
)

// centralityBias is the weight multiplier floor before centrality is added.
const centralityBias = 0.5

// initialCandidates computes the starting candidates for id.
// Complexity: O(1).
func initialCandidates(id core.NodeID, p Params, r *rand.Rand) [len(core.AllTiles)]core.Candidate {
	c := p.centrality(id.Coord.Length())
	variance := 1 + (2*seed.Unit(uint64(id.Value))-1)*p.NodeVariance

	var out [len(core.AllTiles)]core.Candidate
	for i, t := range core.AllTiles {
		w := p.BaseWeight
		switch {
		case t.IsCentral():
			w *= centralityBias + c
		case t.IsPeripheral():
			w *= centralityBias + (1 - c)
		}
		out[i] = core.Candidate{Tile: t, Weight: w * variance}
	}

	j := r.IntN(len(out))
	out[j].Weight *= p.InitJitterMin + r.Float64()*(p.InitJitterMax-p.InitJitterMin)

	return out
}
