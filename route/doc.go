// Package route answers path queries over a World's connection graph.
//
// Connectivity stores each edge on its source only; route expands
// Bidirectional connections into arcs both ways and keeps OneWay connections
// forward only. Traversal costs are the connections' TraversalCost values,
// so neighbor edges (0.1·distance) are preferred over long edges
// (0.15·distance) of similar length.
//
// Entry points:
//
//	ShortestPaths(w, Source(v), WithReturnPath(), WithMaxCost(x), WithPolarity(p))
//	Path(w, from, to)  – node sequence and total cost
//	Components(w)      – connected groups of district nodes
//
// Queries copy the adjacency at call time and never mutate the World.
package route
