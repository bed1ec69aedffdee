// SPDX-License-Identifier: MIT
// Package: districts/route
//
// components.go: connected components of the district graph.

package route

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/districts/core"
)

// Components groups the district (level-0) nodes of w into connected
// components, ignoring edge direction and polarity. Components are ordered by
// their smallest member, members ascending.
//
// A fully connected district graph yields exactly one component.
// Time:   O(V + E).
// Memory: O(V + E).
func Components(w *core.World) [][]uint32 {
	if w == nil {
		return nil
	}
	g := snapshot(w)
	n := len(g.values)

	// Undirected view: OneWay arcs count both ways here.
	undirected := make([][]int, n)
	for u, arcs := range g.out {
		for _, a := range arcs {
			undirected[u] = append(undirected[u], a.to)
			undirected[a.to] = append(undirected[a.to], u)
		}
	}

	seen := make([]bool, n)
	var comps [][]uint32
	for i := 0; i < n; i++ {
		if seen[i] || !w.Node(i).ID.IsDistrict() {
			continue
		}
		queue := []int{i}
		seen[i] = true
		var comp []uint32
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, g.values[u])
			for _, v := range undirected[u] {
				if !seen[v] && w.Node(v).ID.IsDistrict() {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		slices.Sort(comp)
		comps = append(comps, comp)
	}

	slices.SortFunc(comps, func(a, b []uint32) int {
		return cmp.Compare(a[0], b[0])
	})
	return comps
}
