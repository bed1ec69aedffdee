// Package districts generates seeded district layouts.
//
// A run places district nodes on a plane, collapses every node to one of four
// tiles through weighted candidates and constraint propagation, then links
// the districts with nearest-neighbor and random long edges.
//
//	seed/         deterministic per-purpose random streams
//	core/         World arena: nodes, candidate sets, connections, layout signal
//	layout/       node placement (line, grid, ring, scatter, children, sockets)
//	collapse/     per-node state machine and the parallel world tick
//	connectivity/ k-nearest and long edges once the layout is done
//	route/        shortest paths and connected components over connections
//	worldgen/     the full run: ticks, retries, connectivity, report
//	config/       YAML configuration and component wiring
//	logging/      slog construction
//	metrics/      Prometheus collectors
//
// The same seed, layout and parameters always yield the same world,
// independent of the number of collapse workers.
//
//	go run ./cmd/districtgen generate --seed 42
package districts
