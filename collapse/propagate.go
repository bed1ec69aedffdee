// SPDX-License-Identifier: MIT
// Package: districts/collapse
//
// propagate.go: one propagation pass over a node's candidates.
//
// Predicates are evaluated in a fixed order (biome → polarity → socket), each
// against its own fresh draw, and stop at the first rejection. Candidates are
// visited from the last index down so RemoveAt never skips an element.
// Survivors are re-weighted: decay, positional damping, then jitter.

package collapse

import (
	"math/rand/v2"

	"github.com/katalvlaran/districts/core"
	"github.com/katalvlaran/districts/metrics"
)

// predicate identifies the constraint that removed a candidate.
type predicate uint8

const (
	predicateNone predicate = iota
	predicateBiome
	predicatePolarity
	predicateSocket
)

// Resolved once; WithLabelValues hashes labels on every call.
var (
	rejectedBiome    = metrics.CandidatesRejected.WithLabelValues(metrics.PredicateBiome)
	rejectedPolarity = metrics.CandidatesRejected.WithLabelValues(metrics.PredicatePolarity)
	rejectedSocket   = metrics.CandidatesRejected.WithLabelValues(metrics.PredicateSocket)
)

// site is the per-node context the predicates read.
type site struct {
	dist       float64
	centrality float64
	odd        bool
	sockets    bool
}

func (e *Engine) siteOf(n *core.Node) site {
	d := n.ID.Coord.Length()
	return site{
		dist:       d,
		centrality: e.params.centrality(d),
		odd:        n.ID.Coord.Parity() == 1,
		sockets:    n.HasSockets(),
	}
}

// reject evaluates the predicates for t in order.
func (e *Engine) reject(t core.Tile, s site, r *rand.Rand) predicate {
	p := &e.params
	if t.IsCentral() && s.dist > p.BiomeThreshold && r.Float64() < p.BiomeRejection {
		return predicateBiome
	}
	if t.IsPolaritySensitive() && s.odd && r.Float64() < p.PolarityRejection {
		return predicatePolarity
	}
	if t.IsSocketSensitive() && s.sockets && s.dist < p.SocketRadius && r.Float64() < p.SocketRejection {
		return predicateSocket
	}

	return predicateNone
}

// reweight applies decay, positional damping and jitter to a surviving weight.
func (e *Engine) reweight(c core.Candidate, s site, dt float64, r *rand.Rand) float64 {
	p := &e.params

	w := c.Weight * (1 - p.DecayRate*dt)
	if w < p.MinWeight {
		w = p.MinWeight
	}

	switch {
	case c.Tile.IsCentral():
		w *= 1 - p.DistanceDamping*(1-s.centrality)
	case c.Tile.IsPeripheral():
		w *= 1 - p.DistanceDamping*s.centrality
	}

	w *= 1 + (2*r.Float64()-1)*p.Jitter
	if w < p.MinWeight {
		w = p.MinWeight
	}

	return w
}

// propagate runs one pass and returns the number of removed candidates.
// Complexity: O(k) for k candidates.
func (e *Engine) propagate(n *core.Node, dt float64, r *rand.Rand) int {
	set := n.Candidates
	s := e.siteOf(n)
	removed := 0

	for i := set.Len() - 1; i >= 0; i-- {
		c := set.At(i)
		switch e.reject(c.Tile, s, r) {
		case predicateBiome:
			rejectedBiome.Inc()
		case predicatePolarity:
			rejectedPolarity.Inc()
		case predicateSocket:
			rejectedSocket.Inc()
		default:
			set.SetWeight(i, e.reweight(c, s, dt, r))
			continue
		}
		set.RemoveAt(i)
		removed++
	}

	return removed
}
