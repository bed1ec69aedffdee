// SPDX-License-Identifier: MIT
// Package: districts/connectivity
//
// options.go: Builder configuration.
//
// Option constructors PANIC on meaningless input; Build never panics.

package connectivity

import (
	"log/slog"
	"math"
)

// Defaults.
const (
	DefaultK               = 3    // nearest neighbors per source
	DefaultLongEdgeDivisor = 3    // long-edge attempts = max(1, n/divisor)
	DefaultNeighborCost    = 0.10 // traversal cost per unit of distance, neighbor edges
	DefaultLongCost        = 0.15 // traversal cost per unit of distance, long edges
)

// Option customizes a Builder.
type Option func(*Builder)

// WithK sets the neighbor count. Panics if k < 1.
func WithK(k int) Option {
	if k < 1 {
		panic("connectivity: WithK(k<1)")
	}
	return func(b *Builder) { b.k = k }
}

// WithLongEdgeDivisor sets the long-edge divisor. Panics if d < 1.
func WithLongEdgeDivisor(d int) Option {
	if d < 1 {
		panic("connectivity: WithLongEdgeDivisor(d<1)")
	}
	return func(b *Builder) { b.longDivisor = d }
}

// WithCosts sets the per-distance traversal cost factors. Panics on negative
// or non-finite values.
func WithCosts(neighbor, long float64) Option {
	if !cost(neighbor) || !cost(long) {
		panic("connectivity: WithCosts: factors must be finite and ≥ 0")
	}
	return func(b *Builder) {
		b.neighborCost = neighbor
		b.longCost = long
	}
}

// WithLogger sets the builder logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("connectivity: WithLogger(nil)")
	}
	return func(b *Builder) { b.logger = l }
}

func cost(f float64) bool { return f >= 0 && !math.IsInf(f, 0) && !math.IsNaN(f) }
