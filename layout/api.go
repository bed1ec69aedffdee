// SPDX-License-Identifier: MIT
// Package: districts/layout
//
// api.go: BuildWorld and the shared placement helper.
//
// Contract:
//   • One orchestrator: BuildWorld(seed, opts, cons...). Creates the World,
//     resolves the config, runs cons in order.
//   • Determinism: same seed, options and constructor order ⇒ identical
//     NodeIDs, coordinates and sockets.

package layout

import (
	"fmt"

	"github.com/katalvlaran/districts/core"
	"github.com/katalvlaran/districts/seed"
)

// Constructor places nodes into w using the resolved config. Constructors
// validate their parameters before placing anything and return sentinel
// errors wrapped with their method name.
type Constructor func(w *core.World, cfg layoutConfig) error

// BuildWorld creates a World bound to s and applies every constructor in
// order. Unless WithRand is given, stochastic constructors draw from
// s.Offset(seed.LayoutOffset), a stream disjoint from collapse and
// connectivity.
//
// The returned World is still open: callers run collapse and then
// MarkLayoutDone before connectivity.
//
// Complexity: Σ cost of the constructors.
func BuildWorld(s seed.Seed, opts []Option, cons ...Constructor) (*core.World, error) {
	w := core.NewWorld(s)
	cfg := newLayoutConfig(opts...)
	if cfg.rng == nil {
		cfg.rng = s.Offset(seed.LayoutOffset).Stream()
	}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildWorld: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(w, cfg); err != nil {
			return nil, fmt.Errorf("BuildWorld: %w", err)
		}
	}

	return w, nil
}

// place adds one node and attaches its sockets.
func place(w *core.World, cfg layoutConfig, method string, id core.NodeID) error {
	if err := w.AddNode(id); err != nil {
		return fmt.Errorf("%s: AddNode(%d): %w", method, id.Value, err)
	}
	if cfg.socketFn == nil {
		return nil
	}
	if sockets := cfg.socketFn(id, cfg.rng); len(sockets) > 0 {
		if err := w.SetSockets(id.Value, sockets); err != nil {
			return fmt.Errorf("%s: SetSockets(%d): %w", method, id.Value, err)
		}
	}

	return nil
}

// district returns a level-0 NodeID at (x, y) with the next free value.
func district(w *core.World, cfg layoutConfig, x, y int32) core.NodeID {
	return core.NodeID{Value: cfg.nextID(w), Coord: core.Coord{X: x, Y: y}}
}
