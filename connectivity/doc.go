// Package connectivity links the district (level-0) nodes of a World once
// collapse has finished.
//
// Every district gets Bidirectional edges to its k nearest districts, costed
// at DefaultNeighborCost per unit of distance, plus max(1, n/3) random long
// edges at the higher DefaultLongCost so shortest-path searches prefer local
// hops but still find shortcuts.
//
// Edges are stored on the source's list only. The pass is guarded by the
// World's layout signal: it waits for MarkLayoutDone and, once it records a
// connection count, never runs again for that World.
package connectivity
