package worldgen

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/districts/config"
	"github.com/katalvlaran/districts/core"
	"github.com/katalvlaran/districts/layout"
)

// FromConfig builds a Generator from a validated config.
func FromConfig(cfg config.Config, logger *slog.Logger) *Generator {
	return New(
		WithEngine(cfg.Engine(logger)),
		WithBuilder(cfg.Builder(logger)),
		WithMaxTicks(cfg.Generator.MaxTicks),
		WithTickDelta(cfg.Generator.TickDelta),
		WithRetries(cfg.Generator.Retries),
		WithLogger(logger),
	)
}

// Generate places the configured layout and runs a Generator over it.
// The world is returned whenever layout succeeded, even if Run failed.
func Generate(ctx context.Context, cfg config.Config, logger *slog.Logger) (*core.World, *Report, error) {
	w, err := layout.BuildWorld(cfg.WorldSeed(), cfg.Layout.Options(), cfg.Layout.Constructors()...)
	if err != nil {
		return nil, nil, fmt.Errorf("worldgen: layout: %w", err)
	}
	rep, err := FromConfig(cfg, logger).Run(ctx, w)
	return w, rep, err
}
