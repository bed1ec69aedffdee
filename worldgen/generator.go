// SPDX-License-Identifier: MIT
// Package: districts/worldgen
//
// generator.go: the tick loop, retries and the post-collapse passes.
//
// Order of a run:
//   1. Tick until no node is active or the tick budget runs out.
//   2. Reset Contradiction/Failed nodes with a salt bump and tick again,
//      at most Retries times.
//   3. MarkLayoutDone, connectivity.Build, route.Components.
//
// Determinism:
//   • Everything except RunID and Duration depends only on the world seed
//     and the options.

package worldgen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/districts/collapse"
	"github.com/katalvlaran/districts/connectivity"
	"github.com/katalvlaran/districts/core"
	"github.com/katalvlaran/districts/metrics"
	"github.com/katalvlaran/districts/route"
)

// DefaultMaxTicks leaves headroom over collapse.DefaultMaxIterations for the
// init tick and the forced-collapse tick.
const DefaultMaxTicks = 120

// ErrIncomplete indicates that some nodes were still active when the tick
// budget ran out; the layout is not marked done.
var ErrIncomplete = errors.New("worldgen: tick budget exhausted before every node was terminal")

// Generator runs the collapse and connectivity passes over a World.
type Generator struct {
	engine   *collapse.Engine
	builder  *connectivity.Builder
	maxTicks int
	dt       float64
	retries  int
	logger   *slog.Logger
}

// Option customizes a Generator.
type Option func(*Generator)

// WithEngine sets the collapse engine. Panics on nil.
func WithEngine(e *collapse.Engine) Option {
	if e == nil {
		panic("worldgen: WithEngine(nil)")
	}
	return func(g *Generator) { g.engine = e }
}

// WithBuilder sets the connectivity builder. Panics on nil.
func WithBuilder(b *connectivity.Builder) Option {
	if b == nil {
		panic("worldgen: WithBuilder(nil)")
	}
	return func(g *Generator) { g.builder = b }
}

// WithMaxTicks bounds the ticks of each attempt. Panics if n < 1.
func WithMaxTicks(n int) Option {
	if n < 1 {
		panic("worldgen: WithMaxTicks(n<1)")
	}
	return func(g *Generator) { g.maxTicks = n }
}

// WithTickDelta sets the delta passed to every tick. Panics if dt < 0.
func WithTickDelta(dt float64) Option {
	if dt < 0 {
		panic("worldgen: WithTickDelta(dt<0)")
	}
	return func(g *Generator) { g.dt = dt }
}

// WithRetries sets how many times unresolved nodes are reset and collapsed
// again with a new salt. 0 disables retries. Panics if n < 0.
func WithRetries(n int) Option {
	if n < 0 {
		panic("worldgen: WithRetries(n<0)")
	}
	return func(g *Generator) { g.retries = n }
}

// WithLogger sets the run logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("worldgen: WithLogger(nil)")
	}
	return func(g *Generator) { g.logger = l }
}

// New returns a Generator with default engine and builder, 120 ticks per
// attempt, collapse.DefaultTickDelta and no retries.
func New(opts ...Option) *Generator {
	g := &Generator{
		maxTicks: DefaultMaxTicks,
		dt:       collapse.DefaultTickDelta,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.engine == nil {
		g.engine = collapse.NewEngine(collapse.WithLogger(g.logger))
	}
	if g.builder == nil {
		g.builder = connectivity.NewBuilder(connectivity.WithLogger(g.logger))
	}

	return g
}

// Run collapses every node of w, retries unresolved nodes if configured,
// marks the layout done and builds connectivity.
//
// Unresolved nodes (Contradiction, Failed) are a valid outcome: they are
// logged at Warn and counted in the report, not returned as errors.
//
// Errors:
//   - ctx.Err() wrapped, if cancelled during collapse.
//   - ErrIncomplete if active nodes remain after the tick budget.
//
// The report is returned in every case.
func (g *Generator) Run(ctx context.Context, w *core.World) (*Report, error) {
	start := time.Now()
	rep := &Report{RunID: uuid.NewString(), Seed: w.Seed().Value()}
	log := g.logger.With(slog.String("run_id", rep.RunID))
	log.Info("generation started", slog.Uint64("seed", rep.Seed), slog.Int("nodes", w.Len()))

	defer func() {
		rep.Duration = time.Since(start)
		metrics.GenerationDuration.Observe(rep.Duration.Seconds())
	}()

	for attempt := 0; ; attempt++ {
		rep.Attempts++
		ticks, err := g.collapse(ctx, w, log)
		rep.Ticks += ticks
		if err != nil {
			rep.tally(w)
			return rep, err
		}

		unresolved := g.unresolved(w)
		if len(unresolved) == 0 || attempt == g.retries {
			break
		}
		for _, i := range unresolved {
			g.engine.Reset(w.Node(i), uint64(attempt+1))
		}
		rep.Retried += len(unresolved)
		log.Info("retrying unresolved nodes", slog.Int("attempt", attempt+1), slog.Int("nodes", len(unresolved)))
	}

	w.MarkLayoutDone()
	res := g.builder.Build(w)
	rep.NeighborEdges = res.Neighbor
	rep.LongEdges = res.Long
	rep.Connections = w.Layout().ConnectionCount
	rep.Components = len(route.Components(w))
	rep.tally(w)

	log.Info("generation finished",
		slog.Int("ticks", rep.Ticks),
		slog.Int("unresolved", rep.Unresolved()),
		slog.Int("connections", rep.Connections),
		slog.Int("components", rep.Components),
	)

	return rep, nil
}

// collapse ticks until every node is terminal and returns the ticks used.
func (g *Generator) collapse(ctx context.Context, w *core.World, log *slog.Logger) (int, error) {
	for tick := 1; tick <= g.maxTicks; tick++ {
		stats, err := g.engine.Tick(ctx, w, g.dt)
		g.logResolved(w, stats.Resolved, log)
		if err != nil {
			return tick, fmt.Errorf("worldgen: tick %d: %w", tick, err)
		}
		if stats.Active() == 0 {
			return tick, nil
		}
	}
	if !w.AllTerminal() {
		return g.maxTicks, fmt.Errorf("worldgen: %d ticks: %w", g.maxTicks, ErrIncomplete)
	}
	return g.maxTicks, nil
}

func (g *Generator) logResolved(w *core.World, outs []collapse.Outcome, log *slog.Logger) {
	for _, o := range outs {
		if o.To == core.Completed {
			continue
		}
		iteration := 0
		if n, err := w.Lookup(o.Node); err == nil {
			iteration = n.State.Iteration
		}
		log.Warn("node unresolved",
			slog.Uint64("node", uint64(o.Node)),
			slog.String("status", o.To.String()),
			slog.Int("iteration", iteration),
			slog.Any("reason", o.Reason),
		)
	}
}

func (g *Generator) unresolved(w *core.World) []int {
	var out []int
	for i := 0; i < w.Len(); i++ {
		switch w.Node(i).State.Status {
		case core.Contradiction, core.Failed:
			out = append(out, i)
		}
	}
	return out
}
