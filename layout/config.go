// SPDX-License-Identifier: MIT
// Package: districts/layout
//
// config.go: internal configuration, defaults and functional options.
//
// Design:
//   • layoutConfig is the single source of truth for all placement knobs and
//     is passed to constructors by value.
//   • newLayoutConfig applies options in order (later overrides earlier).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//
// Deterministic defaults:
//   • idBase   = 1    (NodeID values 1, 2, 3, ... in placement order)
//   • spacing  = 1    (grid units between neighbouring placements)
//   • rng      = world seed offset by seed.LayoutOffset (set by BuildWorld)
//   • socketFn = nil  (no socket data)

package layout

import (
	"math/rand/v2"

	"github.com/katalvlaran/districts/core"
)

const (
	defaultIDBase  uint32 = 1
	defaultSpacing int32  = 1
)

// SocketFn returns the socket buffer for a freshly placed node. Returning an
// empty slice leaves the node without sockets. It must draw only from r.
type SocketFn func(id core.NodeID, r *rand.Rand) []core.Socket

// layoutConfig aggregates every knob the constructors read.
type layoutConfig struct {
	idBase   uint32
	spacing  int32
	rng      *rand.Rand
	socketFn SocketFn
}

// Option customizes placement before BuildWorld runs any constructor.
type Option func(*layoutConfig)

func newLayoutConfig(opts ...Option) layoutConfig {
	cfg := layoutConfig{
		idBase:  defaultIDBase,
		spacing: defaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// nextID returns the id value for the next node placed into w.
func (c layoutConfig) nextID(w *core.World) uint32 {
	return c.idBase + uint32(w.Len())
}

// WithIDBase sets the first NodeID value. Panics on 0, which is reserved.
func WithIDBase(base uint32) Option {
	if base == 0 {
		panic("layout: WithIDBase(0)")
	}
	return func(c *layoutConfig) { c.idBase = base }
}

// WithSpacing sets the grid distance between adjacent placements in Line,
// Grid and Children. Panics if d < 1.
func WithSpacing(d int32) Option {
	if d < 1 {
		panic("layout: WithSpacing(d<1)")
	}
	return func(c *layoutConfig) { c.spacing = d }
}

// WithRand supplies an explicit RNG instead of the seed-derived stream.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("layout: WithRand(nil)")
	}
	return func(c *layoutConfig) { c.rng = r }
}

// WithSocketFn attaches socket data to every placed node. Panics on nil.
func WithSocketFn(fn SocketFn) Option {
	if fn == nil {
		panic("layout: WithSocketFn(nil)")
	}
	return func(c *layoutConfig) { c.socketFn = fn }
}
