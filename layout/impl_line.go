// SPDX-License-Identifier: MIT
// Package: districts/layout
//
// impl_line.go: Line(n) and Grid(rows, cols).
//
// Both centre their placements on the origin so centrality-based weighting
// in collapse sees a symmetric world:
//   • Line:  x = (i - n/2)·spacing, y = 0, for i ∈ [0..n-1].
//   • Grid:  x = (c - cols/2)·spacing, y = (r - rows/2)·spacing, row-major.

package layout

import (
	"fmt"

	"github.com/katalvlaran/districts/core"
)

const (
	methodLine = "Line"
	methodGrid = "Grid"
	minLineLen = 1
	minGridDim = 1
)

// Line places n districts on the x-axis.
// Complexity: O(n).
func Line(n int) Constructor {
	return func(w *core.World, cfg layoutConfig) error {
		if n < minLineLen {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodLine, n, minLineLen, ErrTooFewNodes)
		}
		for i := 0; i < n; i++ {
			x := int32(i-n/2) * cfg.spacing
			if err := place(w, cfg, methodLine, district(w, cfg, x, 0)); err != nil {
				return err
			}
		}
		return nil
	}
}

// Grid places rows×cols districts in row-major order.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(w *core.World, cfg layoutConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewNodes)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				x := int32(c-cols/2) * cfg.spacing
				y := int32(r-rows/2) * cfg.spacing
				if err := place(w, cfg, methodGrid, district(w, cfg, x, y)); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
