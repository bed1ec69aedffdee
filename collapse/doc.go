// Package collapse assigns one tile to every node of a World through a
// seeded, per-node constraint-propagation state machine.
//
// Each node starts with the four assignable tiles, weighted by how close it
// lies to the origin. Every tick an in-progress node runs three rejection
// predicates over its candidates:
//
//	biome    – central tiles beyond BiomeThreshold are rejected with BiomeRejection
//	polarity – polarity-sensitive tiles on odd-parity coordinates, PolarityRejection
//	socket   – even tiles near the origin on nodes with sockets, SocketRejection
//
// Survivors decay, are damped by distance and jittered by ±Jitter. A node
// completes when one candidate remains, becomes a Contradiction when none do,
// and is forced to a weighted-random pick once its iteration exceeds
// MaxIterations.
//
// Determinism:
//
//	Every random draw comes from seed.Stream keyed by the node's id value,
//	iteration and salt. Two runs over the same World layout and seed produce
//	identical states, whatever the worker count.
//
// Node-local problems (missing storage, exhausted candidates, degenerate
// weights) never fail a Tick; they surface as Outcome.Reason with one of the
// package sentinels.
package collapse
