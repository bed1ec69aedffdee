// SPDX-License-Identifier: MIT
// Package: districts/connectivity
//
// builder.go: k-nearest-neighbor edges plus random long edges.
//
// Algorithm:
//   1. Guard: run only when the layout is done and no connection count is
//      recorded yet.
//   2. Collect level-0 nodes in arena order; fewer than 2 ⇒ skip.
//   3. For each source, order every other site by (distance, arena index)
//      and plan edges to the nearest k = min(K, n-1), skipping targets
//      already connected from that source.
//   4. Plan max(1, n/divisor) random long edges, re-rolling a self target
//      once; skip self and already-connected targets.
//   5. Apply the plan in one locked pass, then record the total count.
//
// Determinism:
//   • Sites are visited in arena order, ties broken by arena index, and the
//     long-edge stream is seed.Offset(ConnectivityOffset).Stream().
// Complexity:
//   • O(n² log n) time, O(n + E) space.

package connectivity

import (
	"log/slog"
	"math/rand/v2"

	"github.com/tidwall/btree"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/districts/core"
	"github.com/katalvlaran/districts/metrics"
	"github.com/katalvlaran/districts/seed"
)

// SkipReason explains why Build did nothing.
type SkipReason string

const (
	NotSkipped       SkipReason = ""
	LayoutPending    SkipReason = "layout not done"
	AlreadyConnected SkipReason = "connection count already recorded"
	TooFewNodes      SkipReason = "fewer than 2 district nodes"
)

// Result reports one Build call.
type Result struct {
	Skipped      SkipReason
	Sites        int // level-0 nodes considered
	Neighbor     int // neighbor edges planned
	LongAttempts int
	Long         int // long edges planned
	Applied      int // edges actually appended
	Total        int // connection count recorded on the layout signal
}

// Builder links the district nodes of a World. It is stateless between
// calls; the idempotency guard lives on the World's layout signal.
type Builder struct {
	k            int
	longDivisor  int
	neighborCost float64
	longCost     float64
	logger       *slog.Logger
}

// NewBuilder returns a Builder with the package defaults, then applies opts.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		k:            DefaultK,
		longDivisor:  DefaultLongEdgeDivisor,
		neighborCost: DefaultNeighborCost,
		longCost:     DefaultLongCost,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// site is a level-0 node in coordinate space.
type site struct {
	id  uint32
	pos [2]float64
}

// candidate orders other sites around one source.
type candidate struct {
	dist float64
	idx  int // position in the sites slice
}

func byDistance(a, b candidate) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	return a.idx < b.idx
}

type edgeKey struct{ from, to uint32 }

// plan accumulates edges before they touch the World.
type plan struct {
	w     *core.World
	edges []core.Connection
	seen  map[edgeKey]struct{}
}

// add queues from→to unless it is a self loop or already present.
func (p *plan) add(from, to uint32, cost float64) bool {
	if from == to {
		return false
	}
	k := edgeKey{from, to}
	if _, dup := p.seen[k]; dup || p.w.HasConnection(from, to) {
		return false
	}
	p.seen[k] = struct{}{}
	p.edges = append(p.edges, core.Connection{
		From:             from,
		To:               to,
		Type:             core.Bidirectional,
		RequiredPolarity: core.PolarityNone,
		TraversalCost:    cost,
	})
	return true
}

// Build runs the connectivity pass over w. Running it again after a
// successful pass is a no-op.
func (b *Builder) Build(w *core.World) Result {
	var res Result

	sig := w.Layout()
	switch {
	case !sig.Done:
		res.Skipped = LayoutPending
	case sig.ConnectionCount != 0:
		res.Skipped = AlreadyConnected
	}
	if res.Skipped != NotSkipped {
		b.logger.Debug("connectivity skipped", slog.String("reason", string(res.Skipped)))
		return res
	}

	sites := collect(w)
	res.Sites = len(sites)
	if len(sites) < 2 {
		res.Skipped = TooFewNodes
		b.logger.Debug("connectivity skipped", slog.String("reason", string(res.Skipped)), slog.Int("sites", len(sites)))
		return res
	}

	p := &plan{w: w, seen: make(map[edgeKey]struct{})}
	res.Neighbor = b.planNeighbors(p, sites)
	res.LongAttempts, res.Long = b.planLong(p, sites, w.Seed().Offset(seed.ConnectivityOffset).Stream())

	res.Applied = w.ApplyConnections(p.edges)
	res.Total = w.TotalConnections()
	w.RecordConnectionCount(res.Total)

	metrics.ConnectionsCreated.WithLabelValues(metrics.KindNeighbor).Add(float64(res.Neighbor))
	metrics.ConnectionsCreated.WithLabelValues(metrics.KindLong).Add(float64(res.Long))
	b.logger.Info("connectivity built",
		slog.Int("sites", res.Sites),
		slog.Int("neighbor", res.Neighbor),
		slog.Int("long", res.Long),
		slog.Int("long_attempts", res.LongAttempts),
		slog.Int("total", res.Total),
	)

	return res
}

func collect(w *core.World) []site {
	sites := make([]site, 0, w.Len())
	for i := 0; i < w.Len(); i++ {
		id := w.Node(i).ID
		if !id.IsDistrict() {
			continue
		}
		sites = append(sites, site{id: id.Value, pos: [2]float64{float64(id.Coord.X), float64(id.Coord.Y)}})
	}
	return sites
}

func (b *Builder) planNeighbors(p *plan, sites []site) int {
	k := min(b.k, len(sites)-1)
	order := btree.NewBTreeG[candidate](byDistance)
	added := 0

	for i := range sites {
		order.Clear()
		for j := range sites {
			if j == i {
				continue
			}
			order.Set(candidate{dist: floats.Distance(sites[i].pos[:], sites[j].pos[:], 2), idx: j})
		}

		taken := 0
		order.Scan(func(c candidate) bool {
			if p.add(sites[i].id, sites[c.idx].id, b.neighborCost*c.dist) {
				added++
			}
			taken++
			return taken < k
		})
	}

	return added
}

func (b *Builder) planLong(p *plan, sites []site, r *rand.Rand) (attempts, added int) {
	n := len(sites)
	attempts = max(1, n/b.longDivisor)

	for a := 0; a < attempts; a++ {
		src := r.IntN(n)
		dst := r.IntN(n)
		if dst == src {
			dst = r.IntN(n)
		}
		if dst == src {
			continue
		}
		d := floats.Distance(sites[src].pos[:], sites[dst].pos[:], 2)
		if p.add(sites[src].id, sites[dst].id, b.longCost*d) {
			added++
		}
	}

	return attempts, added
}
