// SPDX-License-Identifier: MIT
// Package: districts/route
//
// types.go: sentinels, options and results for route queries.

package route

import (
	"errors"
	"math"

	"github.com/katalvlaran/districts/core"
)

var (
	// ErrNoSource indicates that no source node was given (Source(0) or none).
	ErrNoSource = errors.New("route: source node not set")

	// ErrNilWorld indicates that a nil *core.World was passed.
	ErrNilWorld = errors.New("route: world is nil")

	// ErrUnreachable indicates that no path respects the query constraints.
	ErrUnreachable = errors.New("route: target unreachable")

	// ErrBadMaxCost indicates that MaxCost was set to a negative or NaN value.
	ErrBadMaxCost = errors.New("route: MaxCost must be non-negative")
)

// Options configures ShortestPaths.
type Options struct {
	// Source is the NodeID value to start from. Required.
	Source uint32
	// ReturnPath requests the predecessor map.
	ReturnPath bool
	// MaxCost stops exploration beyond this total traversal cost.
	MaxCost float64
	// Polarity of the traveller. Edges requiring the other polarity are
	// impassable; PolarityNone travellers may only use unrestricted edges.
	Polarity core.Polarity
}

// Option represents a functional option for configuring ShortestPaths.
type Option func(*Options)

// DefaultOptions returns Options for source with no cost cap.
func DefaultOptions(source uint32) Options {
	return Options{Source: source, MaxCost: math.Inf(1)}
}

// Source sets the start node.
func Source(value uint32) Option {
	return func(o *Options) { o.Source = value }
}

// WithReturnPath requests the predecessor map.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxCost caps the explored traversal cost. Panics on negative or NaN.
func WithMaxCost(max float64) Option {
	if !(max >= 0) {
		panic(ErrBadMaxCost.Error())
	}
	return func(o *Options) { o.MaxCost = max }
}

// WithPolarity sets the traveller polarity.
func WithPolarity(p core.Polarity) Option {
	return func(o *Options) { o.Polarity = p }
}

// Result holds single-source shortest paths.
type Result struct {
	Source uint32
	// Dist maps every node value to its minimum cost; +Inf if unreachable.
	Dist map[uint32]float64
	// Prev maps a reached node to its predecessor; nil unless ReturnPath.
	// The source and unreachable nodes map to 0.
	Prev map[uint32]uint32
}

// Reachable reports whether v was reached.
func (r *Result) Reachable(v uint32) bool {
	d, ok := r.Dist[v]
	return ok && !math.IsInf(d, 1)
}

// PathTo rebuilds the node sequence source→v from Prev.
// Returns ErrUnreachable if v was not reached, or nil if Prev is absent.
func (r *Result) PathTo(v uint32) ([]uint32, error) {
	if !r.Reachable(v) {
		return nil, ErrUnreachable
	}
	if r.Prev == nil {
		return nil, nil
	}
	var rev []uint32
	for cur := v; cur != 0; cur = r.Prev[cur] {
		rev = append(rev, cur)
		if cur == r.Source {
			break
		}
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev, nil
}
