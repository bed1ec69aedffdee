// Package core holds the in-memory records every generation pass works on.
//
// A World is an arena of Node records addressed by index. Each node carries:
//
//   - NodeID: value, hierarchy level (0 = district), parent back-reference and
//     signed grid coordinates. Immutable after placement.
//   - CollapseState: status, entropy, iteration, assigned tile.
//   - CandidateSet: ordered (tile, weight) options, shrink-only per run.
//   - Sockets: optional adjacency data owned by an external prototype system.
//   - Connections: append-only outgoing list, unique per target.
//
// Lifecycle:
//
//	AddNode (placement)  →  collapse ticks  →  MarkLayoutDone  →  connectivity
//
// Concurrency model:
//
//	– Collapse state and candidates are owned per index and mutated without
//	  locks by exactly one worker; distinct indices never alias.
//	– Connection lists and the LayoutSignal are guarded by a sync.RWMutex.
//	  Connect checks duplicates and appends under the write lock, so
//	  concurrent writers cannot insert the same target twice.
//
// Determinism:
//
//	– Nodes are enumerated in placement order.
//	– Snapshot copies state in that same order for stable encodings.
//
// Errors are sentinels (ErrNodeNotFound, ErrDuplicateConnection, ...);
// branch on them with errors.Is.
package core
