// SPDX-License-Identifier: MIT
// Package: districts/route
//
// dijkstra.go: single-source shortest paths over traversal costs.
//
// Lazy decrease-key: improved distances push a fresh heap entry and stale
// entries are skipped when popped. Exploration stops once the cheapest
// frontier entry exceeds MaxCost.
//
// Complexity:
//   • Time:  O((V + E) log V)
//   • Space: O(V + E)

package route

import (
	"container/heap"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/districts/core"
)

// ShortestPaths computes minimum traversal costs from Options.Source to every
// node of w.
//
// Validation order:
//  1. Source set (ErrNoSource).
//  2. w non-nil (ErrNilWorld).
//  3. Source present (core.ErrNodeNotFound).
//
// Connection costs are non-negative by construction in core.World.
func ShortestPaths(w *core.World, opts ...Option) (*Result, error) {
	cfg := DefaultOptions(0)
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == 0 {
		return nil, ErrNoSource
	}
	if w == nil {
		return nil, ErrNilWorld
	}
	if _, ok := w.Index(cfg.Source); !ok {
		return nil, fmt.Errorf("ShortestPaths(%d): %w", cfg.Source, core.ErrNodeNotFound)
	}

	g := snapshot(w)
	r := &runner{
		g:       g,
		cfg:     cfg,
		dist:    make([]float64, len(g.values)),
		prev:    make([]int, len(g.values)),
		visited: make([]bool, len(g.values)),
	}
	r.init()
	r.process()

	return r.result(), nil
}

// Path returns the cheapest node sequence from → to and its total cost.
func Path(w *core.World, from, to uint32, opts ...Option) ([]uint32, float64, error) {
	res, err := ShortestPaths(w, slices.Concat(opts, []Option{Source(from), WithReturnPath()})...)
	if err != nil {
		return nil, 0, err
	}
	if _, ok := res.Dist[to]; !ok {
		return nil, 0, fmt.Errorf("Path(%d→%d): %w", from, to, core.ErrNodeNotFound)
	}
	p, err := res.PathTo(to)
	if err != nil {
		return nil, 0, fmt.Errorf("Path(%d→%d): %w", from, to, err)
	}
	return p, res.Dist[to], nil
}

type runner struct {
	g       *graph
	cfg     Options
	dist    []float64
	prev    []int // -1 = none
	visited []bool
	pq      nodePQ
}

func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = -1
	}
	src := r.g.index[r.cfg.Source]
	r.dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{idx: src, dist: 0})
}

func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.idx
		if r.visited[u] {
			continue
		}
		if item.dist > r.cfg.MaxCost {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

func (r *runner) relax(u int) {
	for _, a := range r.g.out[u] {
		if !a.passable(r.cfg.Polarity) {
			continue
		}
		nd := r.dist[u] + a.cost
		if nd > r.cfg.MaxCost || nd >= r.dist[a.to] {
			continue
		}
		r.dist[a.to] = nd
		r.prev[a.to] = u
		heap.Push(&r.pq, &nodeItem{idx: a.to, dist: nd})
	}
}

func (r *runner) result() *Result {
	res := &Result{
		Source: r.cfg.Source,
		Dist:   make(map[uint32]float64, len(r.dist)),
	}
	if r.cfg.ReturnPath {
		res.Prev = make(map[uint32]uint32, len(r.dist))
	}
	for i, d := range r.dist {
		v := r.g.values[i]
		// Nodes relaxed past MaxCost but never settled stay unreachable.
		if !r.visited[i] {
			d = math.Inf(1)
		}
		res.Dist[v] = d
		if res.Prev != nil {
			if p := r.prev[i]; p >= 0 && r.visited[i] {
				res.Prev[v] = r.g.values[p]
			} else {
				res.Prev[v] = 0
			}
		}
	}
	return res
}

// nodeItem is a heap entry: arena index and tentative cost.
type nodeItem struct {
	idx  int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then index for
// deterministic pops among equal costs.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].idx < pq[j].idx
}
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
