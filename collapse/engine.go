// SPDX-License-Identifier: MIT
// Package: districts/collapse
//
// engine.go: the per-node state machine and the parallel world tick.
//
// Transitions per Step:
//   Initialized → InProgress | Failed
//   InProgress  → InProgress | Completed | Contradiction | Failed
//   Completed, Contradiction, Failed are absorbing.
//
// Determinism:
//   • Every draw of a Step comes from seed.Stream(value, iteration, salt, phase),
//     so results never depend on visit order or worker count.
// Concurrency:
//   • Tick partitions the arena into contiguous chunks, one goroutine each.
//     A Step touches only its own node.

package collapse

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/districts/core"
	"github.com/katalvlaran/districts/metrics"
	"github.com/katalvlaran/districts/seed"
)

// Stream phases keep the init draws apart from the first propagation draws.
const (
	phaseInit uint64 = iota + 1
	phaseTick
)

// ctxCheckEvery bounds how many nodes a worker steps between cancellation checks.
const ctxCheckEvery = 64

// Engine advances node state machines. It holds no per-world state and is
// safe for concurrent use on distinct worlds.
type Engine struct {
	params  Params
	workers int
	logger  *slog.Logger
}

// NewEngine builds an Engine with DefaultParams, GOMAXPROCS workers and the
// default slog logger, then applies opts.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		params: DefaultParams(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Params returns the engine's heuristic parameters.
func (e *Engine) Params() Params { return e.params }

// Outcome records what one Step did to one node.
type Outcome struct {
	Node     uint32
	From, To core.Status
	Removed  int   // candidates eliminated by propagation
	Forced   bool  // went through a forced collapse
	Reason   error // set when To is Contradiction or Failed
}

// Terminated reports whether this Step moved the node into a terminal status.
func (o Outcome) Terminated() bool { return !o.From.IsTerminal() && o.To.IsTerminal() }

// Step advances n by one state-machine step using stream seed s.
// Terminal nodes are returned unchanged.
//
// Complexity: O(k) for k candidates.
func (e *Engine) Step(s seed.Seed, n *core.Node, dt float64) Outcome {
	out := Outcome{Node: n.ID.Value, From: n.State.Status}

	switch n.State.Status {
	case core.Completed, core.Contradiction, core.Failed:
	case core.Initialized:
		e.initialize(s, n, &out)
	case core.InProgress:
		e.advance(s, n, dt, &out)
	default:
		// Unknown status: restart the node.
		n.State.Status = core.Initialized
		if n.Candidates != nil {
			n.Candidates.Reset()
		}
	}
	out.To = n.State.Status

	return out
}

func (e *Engine) initialize(s seed.Seed, n *core.Node, out *Outcome) {
	if n.Candidates == nil {
		fail(n, out, ErrMissingStorage)
		return
	}

	r := s.Stream(uint64(n.ID.Value), uint64(n.State.Iteration), n.State.Salt, phaseInit)
	cands := initialCandidates(n.ID, e.params, r)
	if err := n.Candidates.Populate(cands[:]...); err != nil {
		fail(n, out, fmt.Errorf("initialize %d: %w", n.ID.Value, err))
		return
	}
	n.State.Entropy = n.Candidates.Len()
	n.State.Status = core.InProgress
}

func (e *Engine) advance(s seed.Seed, n *core.Node, dt float64, out *Outcome) {
	set := n.Candidates
	if set == nil {
		fail(n, out, ErrMissingStorage)
		return
	}
	switch set.Len() {
	case 0:
		n.State.Status = core.Contradiction
		out.Reason = ErrExhausted
		return
	case 1:
		n.State.Complete(set.At(0).Tile)
		return
	}

	r := s.Stream(uint64(n.ID.Value), uint64(n.State.Iteration), n.State.Salt, phaseTick)
	if n.State.Iteration > e.params.MaxIterations {
		e.force(n, r, out)
		return
	}

	out.Removed = e.propagate(n, dt, r)
	n.State.Iteration++
	n.State.Entropy = set.Len()

	if n.State.Iteration > e.params.MaxIterations && set.Len() > 1 {
		e.force(n, r, out)
	}
}

// force commits a weighted-random pick or fails on a zero-weight set.
func (e *Engine) force(n *core.Node, r *rand.Rand, out *Outcome) {
	out.Forced = true
	set := n.Candidates
	if set.TotalWeight() <= 0 {
		fail(n, out, ErrDegenerateWeights)
		return
	}
	n.State.Complete(set.At(Select(set, r)).Tile)
	n.State.Entropy = 1
}

func fail(n *core.Node, out *Outcome, err error) {
	n.State.Status = core.Failed
	out.Reason = err
}

// Reset returns n to Initialized for a recovery attempt. Its salt advances by
// bump so the retry draws from a different stream. Iteration is kept: the
// forced-collapse budget spans every attempt.
func (e *Engine) Reset(n *core.Node, bump uint64) {
	n.State = core.CollapseState{
		Status:    core.Initialized,
		Iteration: n.State.Iteration,
		Salt:      n.State.Salt + bump,
	}
	if n.Candidates != nil {
		n.Candidates.Reset()
	}
}

// TickStats summarizes one world tick.
type TickStats struct {
	Counts   [core.Failed + 1]int // status counts after the tick
	Removed  int
	Forced   int
	Resolved []Outcome // nodes that reached a terminal status this tick
}

// Count returns the number of nodes in status st after the tick.
func (t TickStats) Count(st core.Status) int {
	if !st.Valid() {
		return 0
	}
	return t.Counts[st]
}

// Active returns the number of non-terminal nodes after the tick.
func (t TickStats) Active() int {
	return t.Counts[core.Initialized] + t.Counts[core.InProgress]
}

func (t *TickStats) record(o Outcome) {
	if o.To.Valid() {
		t.Counts[o.To]++
	}
	t.Removed += o.Removed
	if o.Forced {
		t.Forced++
	}
	if o.Terminated() {
		t.Resolved = append(t.Resolved, o)
	}
}

func (t *TickStats) merge(o TickStats) {
	for i := range t.Counts {
		t.Counts[i] += o.Counts[i]
	}
	t.Removed += o.Removed
	t.Forced += o.Forced
	t.Resolved = append(t.Resolved, o.Resolved...)
}

// Tick steps every node of w once, in parallel.
//
// Errors:
//   - ErrNegativeDelta if dt < 0.
//   - ctx.Err() if the context is cancelled; nodes already stepped keep
//     their new state.
//
// Node-local failures are reported in TickStats.Resolved, never as errors.
// Complexity: O(n·k) work spread over min(workers, n) goroutines.
func (e *Engine) Tick(ctx context.Context, w *core.World, dt float64) (TickStats, error) {
	var stats TickStats
	if dt < 0 {
		return stats, fmt.Errorf("Tick(dt=%g): %w", dt, ErrNegativeDelta)
	}
	n := w.Len()
	if n == 0 {
		return stats, nil
	}

	workers := e.workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, n)
	chunk := (n + workers - 1) / workers
	partial := make([]TickStats, workers)
	s := w.Seed()

	g, gctx := errgroup.WithContext(ctx)
	for k := 0; k < workers; k++ {
		lo, hi := k*chunk, min((k+1)*chunk, n)
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			st := &partial[k]
			for i := lo; i < hi; i++ {
				if (i-lo)%ctxCheckEvery == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				st.record(e.Step(s, w.Node(i), dt))
			}
			return nil
		})
	}
	err := g.Wait()

	for _, p := range partial {
		stats.merge(p)
	}
	for _, o := range stats.Resolved {
		metrics.NodesTerminal.WithLabelValues(o.To.String()).Inc()
	}
	if err != nil {
		return stats, fmt.Errorf("Tick: %w", err)
	}
	metrics.CollapseTicks.Inc()

	e.logger.Debug("collapse tick",
		slog.Int("nodes", n),
		slog.Int("active", stats.Active()),
		slog.Int("resolved", len(stats.Resolved)),
		slog.Int("removed", stats.Removed),
		slog.Int("forced", stats.Forced),
	)

	return stats, nil
}
