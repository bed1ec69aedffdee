// Package layout places district nodes into a fresh core.World.
//
// Placement is composed from Constructors run in order by BuildWorld:
//
//	w, err := layout.BuildWorld(seed.New(42),
//		[]layout.Option{layout.WithSocketFn(layout.DistrictSockets)},
//		layout.Grid(4, 4),
//		layout.Children(2),
//	)
//
// Available constructors:
//
//	Line(n)            – n districts on the x-axis, centred on the origin
//	Grid(rows, cols)   – row-major grid centred on the origin
//	Ring(n, radius)    – n districts evenly spaced on a circle
//	Scatter(n, radius) – n districts at seeded random points in a disk
//	Children(k)        – k level+1 nodes around every existing node
//
// NodeID values are assigned sequentially from WithIDBase (default 1) in
// placement order, so composing constructors never produces duplicates.
// Every random draw comes from the world seed offset by seed.LayoutOffset,
// keeping placement reproducible and independent of collapse.
package layout
