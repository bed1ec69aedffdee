// SPDX-License-Identifier: MIT
// Package: districts/layout
//
// impl_ring.go: Ring(n, radius) and Scatter(n, radius).
//
// Ring is deterministic without an RNG: node i sits at angle 2πi/n, rounded to
// the integer grid. Small radii may round two nodes onto one coordinate; that
// is allowed, coordinates are not identities.
//
// Scatter draws integer points uniformly from the disk of the given radius by
// rejection sampling from its bounding square. The acceptance rate is π/4, so
// maxScatterAttempts failures in a row are practically impossible; reaching
// it returns ErrConstructFailed instead of looping forever.

package layout

import (
	"fmt"
	"math"

	"github.com/katalvlaran/districts/core"
)

const (
	methodRing         = "Ring"
	methodScatter      = "Scatter"
	minRingLen         = 3
	minScatterLen      = 1
	maxScatterAttempts = 64
)

// Ring places n districts evenly on a circle around the origin.
// Complexity: O(n).
func Ring(n int, radius float64) Constructor {
	return func(w *core.World, cfg layoutConfig) error {
		if n < minRingLen {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodRing, n, minRingLen, ErrTooFewNodes)
		}
		if !(radius > 0) {
			return fmt.Errorf("%s: radius=%g: %w", methodRing, radius, ErrBadRadius)
		}
		step := 2 * math.Pi / float64(n)
		for i := 0; i < n; i++ {
			sin, cos := math.Sincos(step * float64(i))
			x := int32(math.Round(radius * cos))
			y := int32(math.Round(radius * sin))
			if err := place(w, cfg, methodRing, district(w, cfg, x, y)); err != nil {
				return err
			}
		}
		return nil
	}
}

// Scatter places n districts at random integer points inside the disk.
// Requires an RNG; BuildWorld always provides one.
// Complexity: O(n) expected.
func Scatter(n int, radius float64) Constructor {
	return func(w *core.World, cfg layoutConfig) error {
		if n < minScatterLen {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodScatter, n, minScatterLen, ErrTooFewNodes)
		}
		if !(radius > 0) {
			return fmt.Errorf("%s: radius=%g: %w", methodScatter, radius, ErrBadRadius)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodScatter, ErrNeedRandSource)
		}

		span := int(math.Floor(radius))
		for i := 0; i < n; i++ {
			placed := false
			for a := 0; a < maxScatterAttempts; a++ {
				x := cfg.rng.IntN(2*span+1) - span
				y := cfg.rng.IntN(2*span+1) - span
				if math.Hypot(float64(x), float64(y)) > radius {
					continue
				}
				if err := place(w, cfg, methodScatter, district(w, cfg, int32(x), int32(y))); err != nil {
					return err
				}
				placed = true
				break
			}
			if !placed {
				return fmt.Errorf("%s: node %d after %d attempts: %w",
					methodScatter, i, maxScatterAttempts, ErrConstructFailed)
			}
		}
		return nil
	}
}
