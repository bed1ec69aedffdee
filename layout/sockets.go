// SPDX-License-Identifier: MIT
// Package: districts/layout
//
// sockets.go: ready-made SocketFn policies.

package layout

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/districts/core"
)

// RandomSockets returns a SocketFn that gives each node, with probability p,
// between 1 and maxSockets sockets with random ids. Panics if p ∉ [0,1] or
// maxSockets < 1.
func RandomSockets(p float64, maxSockets int) SocketFn {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("layout: RandomSockets(p=%g) out of [0,1]", p))
	}
	if maxSockets < 1 {
		panic("layout: RandomSockets(maxSockets<1)")
	}
	return func(_ core.NodeID, r *rand.Rand) []core.Socket {
		if r.Float64() >= p {
			return nil
		}
		out := make([]core.Socket, 1+r.IntN(maxSockets))
		for i := range out {
			out[i] = core.Socket(r.Uint32())
		}
		return out
	}
}

// DistrictSockets gives every level-0 node one socket derived from its id
// and leaves deeper levels without sockets. It draws nothing from r.
func DistrictSockets(id core.NodeID, _ *rand.Rand) []core.Socket {
	if !id.IsDistrict() {
		return nil
	}
	return []core.Socket{core.Socket(id.Value)}
}
