// SPDX-License-Identifier: MIT
// Package: districts/collapse
//
// select.go: weighted random selection.

package collapse

import (
	"math/rand/v2"

	"github.com/katalvlaran/districts/core"
)

// Weighted is a read-only indexed candidate list. *core.CandidateSet
// satisfies it.
type Weighted interface {
	Len() int
	At(i int) core.Candidate
}

// Select picks an index of ws with probability proportional to its weight.
//
// A uniform draw in [0, total) is compared against the running cumulative
// weight; the first index whose cumulative weight meets the draw wins. If
// floating-point rounding lets the walk finish without a match, the last index
// is returned. When total ≤ 0 the pick is uniform. Returns -1 for an empty list.
//
// Complexity: O(n) time, O(1) space. Consumes exactly one draw from r when
// ws is non-empty.
func Select(ws Weighted, r *rand.Rand) int {
	n := ws.Len()
	if n == 0 {
		return -1
	}

	total := 0.0
	for i := 0; i < n; i++ {
		total += ws.At(i).Weight
	}
	if total <= 0 {
		return r.IntN(n)
	}

	draw := r.Float64() * total
	cum := 0.0
	for i := 0; i < n; i++ {
		cum += ws.At(i).Weight
		if cum >= draw {
			return i
		}
	}

	return n - 1
}
