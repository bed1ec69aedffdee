// SPDX-License-Identifier: MIT
// Package: districts/layout
//
// impl_children.go: Children(perParent).
//
// Adds perParent level+1 nodes around every node that exists when the
// constructor runs. Children are placed on the eight neighbouring cells of
// their parent (scaled by spacing) in a fixed clockwise order starting east,
// and carry ParentID = parent.Value. Connectivity only links level-0 nodes,
// so children take part in collapse but not in the district graph.

package layout

import (
	"fmt"

	"github.com/katalvlaran/districts/core"
)

const (
	methodChildren = "Children"
	minChildren    = 1
)

// childOffsets is the clockwise neighbourhood starting east.
var childOffsets = [...]core.Coord{
	{X: 1, Y: 0}, {X: 1, Y: -1}, {X: 0, Y: -1}, {X: -1, Y: -1},
	{X: -1, Y: 0}, {X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// Children places perParent children around each existing node.
// Complexity: O(n·perParent).
func Children(perParent int) Constructor {
	return func(w *core.World, cfg layoutConfig) error {
		if perParent < minChildren {
			return fmt.Errorf("%s: perParent=%d (must be ≥ %d): %w",
				methodChildren, perParent, minChildren, ErrTooFewNodes)
		}
		if perParent > len(childOffsets) {
			return fmt.Errorf("%s: perParent=%d (at most %d): %w",
				methodChildren, perParent, len(childOffsets), ErrTooManyChildren)
		}

		parents := w.Len()
		for i := 0; i < parents; i++ {
			parent := w.Node(i).ID
			for k := 0; k < perParent; k++ {
				off := childOffsets[k]
				id := core.NodeID{
					Value:    cfg.nextID(w),
					Level:    parent.Level + 1,
					ParentID: parent.Value,
					Coord: core.Coord{
						X: parent.Coord.X + off.X*cfg.spacing,
						Y: parent.Coord.Y + off.Y*cfg.spacing,
					},
				}
				if err := place(w, cfg, methodChildren, id); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
