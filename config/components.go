package config

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/districts/collapse"
	"github.com/katalvlaran/districts/connectivity"
	"github.com/katalvlaran/districts/layout"
	"github.com/katalvlaran/districts/logging"
	"github.com/katalvlaran/districts/seed"
)

// Constructors returns the layout constructors for the configured shape,
// followed by Children when children > 0. Call on a validated config.
func (c LayoutConfig) Constructors() []layout.Constructor {
	var cons []layout.Constructor
	switch c.Shape {
	case ShapeGrid:
		cons = append(cons, layout.Grid(c.Rows, c.Cols))
	case ShapeRing:
		cons = append(cons, layout.Ring(c.Count, c.Radius))
	case ShapeScatter:
		cons = append(cons, layout.Scatter(c.Count, c.Radius))
	default:
		cons = append(cons, layout.Line(c.Count))
	}
	if c.Children > 0 {
		cons = append(cons, layout.Children(c.Children))
	}
	return cons
}

// Options returns the layout options for the section.
func (c LayoutConfig) Options() []layout.Option {
	opts := []layout.Option{layout.WithSpacing(c.Spacing)}
	if c.SocketProbability > 0 {
		opts = append(opts, layout.WithSocketFn(layout.RandomSockets(c.SocketProbability, c.MaxSockets)))
	}
	return opts
}

// WorldSeed returns the configured world seed.
func (c Config) WorldSeed() seed.Seed { return seed.New(c.Seed) }

// Engine builds a collapse engine. Call on a validated config.
func (c Config) Engine(logger *slog.Logger) *collapse.Engine {
	return collapse.NewEngine(
		collapse.WithParams(c.Collapse.Params()),
		collapse.WithWorkers(c.Collapse.Workers),
		collapse.WithLogger(logger),
	)
}

// Builder builds a connectivity builder. Call on a validated config.
func (c Config) Builder(logger *slog.Logger) *connectivity.Builder {
	return connectivity.NewBuilder(
		connectivity.WithK(c.Connectivity.K),
		connectivity.WithLongEdgeDivisor(c.Connectivity.LongEdgeDivisor),
		connectivity.WithCosts(c.Connectivity.NeighborCost, c.Connectivity.LongCost),
		connectivity.WithLogger(logger),
	)
}

// Logger builds the configured logger writing to w.
func (c LoggingConfig) Logger(w io.Writer) (*slog.Logger, error) {
	lvl, err := logging.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	return logging.New(logging.Config{Level: lvl, JSON: c.JSON, Writer: w}), nil
}
