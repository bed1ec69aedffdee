// Package worldgen drives one complete district generation run: collapse
// ticks until every node is terminal, optional retries of unresolved nodes,
// the layout-done signal, connectivity and a run report.
//
//	cfg := config.Default()
//	w, rep, err := worldgen.Generate(ctx, cfg, logger)
//
// Unresolved nodes are part of a valid result. Errors are reserved for a
// cancelled context, an exhausted tick budget and layout failures.
package worldgen
