// SPDX-License-Identifier: MIT
// Package: districts/route
//
// graph.go: index-based adjacency snapshot of a World.
//
// Connections are stored on their source only. A Bidirectional connection is
// expanded into two arcs here; a OneWay connection yields one.

package route

import (
	"github.com/katalvlaran/districts/core"
)

type arc struct {
	to       int // arena index
	cost     float64
	polarity core.Polarity
}

type graph struct {
	values []uint32
	index  map[uint32]int
	out    [][]arc
}

// snapshot copies the connection lists of w.
// Complexity: O(V + E).
func snapshot(w *core.World) *graph {
	n := w.Len()
	g := &graph{
		values: make([]uint32, n),
		index:  make(map[uint32]int, n),
		out:    make([][]arc, n),
	}
	for i := 0; i < n; i++ {
		v := w.Node(i).ID.Value
		g.values[i] = v
		g.index[v] = i
	}
	for i := 0; i < n; i++ {
		conns, err := w.Connections(g.values[i])
		if err != nil {
			continue
		}
		for _, c := range conns {
			j, ok := g.index[c.To]
			if !ok {
				continue
			}
			g.out[i] = append(g.out[i], arc{to: j, cost: c.TraversalCost, polarity: c.RequiredPolarity})
			if c.Type == core.Bidirectional {
				g.out[j] = append(g.out[j], arc{to: i, cost: c.TraversalCost, polarity: c.RequiredPolarity})
			}
		}
	}

	return g
}

// passable reports whether a traveller of polarity p may use a.
func (a arc) passable(p core.Polarity) bool {
	return a.polarity == core.PolarityNone || a.polarity == p
}
