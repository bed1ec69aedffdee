package worldgen_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/districts/config"
	"github.com/katalvlaran/districts/core"
	"github.com/katalvlaran/districts/logging"
	"github.com/katalvlaran/districts/seed"
	"github.com/katalvlaran/districts/worldgen"
)

func lineWorld(t *testing.T, s uint64, n int) *core.World {
	t.Helper()
	w := core.NewWorld(seed.New(s))
	for i := 0; i < n; i++ {
		id := core.NodeID{Value: uint32(i + 1), Coord: core.Coord{X: int32(i - n/2)}}
		require.NoError(t, w.AddNode(id))
	}
	return w
}

func TestRun_Scenario(t *testing.T) {
	w := lineWorld(t, 42, 5)
	g := worldgen.New(worldgen.WithLogger(logging.Discard()))

	rep, err := g.Run(context.Background(), w)
	require.NoError(t, err)

	_, err = uuid.Parse(rep.RunID)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), rep.Seed)
	assert.Equal(t, 5, rep.Nodes)
	assert.Equal(t, 1, rep.Attempts)
	assert.Equal(t, 5, rep.Statuses[core.Completed.String()])
	assert.Zero(t, rep.Unresolved())

	tiles := 0
	for _, c := range rep.Tiles {
		tiles += c
	}
	assert.Equal(t, 5, tiles)
	assert.Positive(t, rep.IterationMean)
	assert.Positive(t, rep.Ticks)
	assert.LessOrEqual(t, rep.Ticks, worldgen.DefaultMaxTicks)

	layoutSig := w.Layout()
	require.True(t, layoutSig.Done)
	assert.Equal(t, 5, layoutSig.NodeCount)
	assert.Equal(t, w.TotalConnections(), rep.Connections)
	assert.Equal(t, rep.Connections, layoutSig.ConnectionCount)
	assert.Equal(t, 15, rep.NeighborEdges)
	assert.Equal(t, 1, rep.Components)
}

func TestRun_Deterministic(t *testing.T) {
	run := func() core.WorldView {
		w := lineWorld(t, 9, 7)
		_, err := worldgen.New(worldgen.WithLogger(logging.Discard())).Run(context.Background(), w)
		require.NoError(t, err)
		return w.Snapshot()
	}
	require.Equal(t, run(), run())
}

func TestRun_MissingStorageRetried(t *testing.T) {
	w := lineWorld(t, 42, 5)
	w.Node(0).Candidates = nil

	g := worldgen.New(worldgen.WithLogger(logging.Discard()), worldgen.WithRetries(2))
	rep, err := g.Run(context.Background(), w)
	require.NoError(t, err)

	// Missing storage fails on every attempt.
	assert.Equal(t, 3, rep.Attempts)
	assert.Equal(t, 2, rep.Retried)
	assert.Equal(t, 1, rep.Statuses[core.Failed.String()])
	assert.Equal(t, 4, rep.Statuses[core.Completed.String()])
	assert.Equal(t, 1, rep.Unresolved())
	assert.Equal(t, uint64(3), w.Node(0).State.Salt) // 1 + 2
	assert.True(t, w.Layout().Done)
}

func TestRun_NoRetriesByDefault(t *testing.T) {
	w := lineWorld(t, 42, 3)
	w.Node(1).Candidates = nil

	rep, err := worldgen.New(worldgen.WithLogger(logging.Discard())).Run(context.Background(), w)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Attempts)
	assert.Zero(t, rep.Retried)
	assert.Zero(t, w.Node(1).State.Salt)
}

func TestRun_TickBudget(t *testing.T) {
	w := lineWorld(t, 42, 5)
	g := worldgen.New(worldgen.WithLogger(logging.Discard()), worldgen.WithMaxTicks(1))

	rep, err := g.Run(context.Background(), w)
	require.ErrorIs(t, err, worldgen.ErrIncomplete)
	require.NotNil(t, rep)
	assert.Equal(t, 1, rep.Ticks)
	assert.Equal(t, 5, rep.Statuses[core.InProgress.String()])
	assert.False(t, w.Layout().Done)
	assert.Zero(t, w.TotalConnections())
}

func TestRun_Cancelled(t *testing.T) {
	w := lineWorld(t, 42, 5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := worldgen.New(worldgen.WithLogger(logging.Discard())).Run(ctx, w)
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, w.Layout().Done)
}

func TestRun_SingleNode(t *testing.T) {
	w := lineWorld(t, 1, 1)
	rep, err := worldgen.New(worldgen.WithLogger(logging.Discard())).Run(context.Background(), w)
	require.NoError(t, err)
	assert.Zero(t, rep.IterationStdDev)
	assert.Zero(t, rep.Connections)
	assert.Equal(t, 1, rep.Components)
}

func TestGenerate_FromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Layout.Shape = config.ShapeGrid
	cfg.Layout.Rows, cfg.Layout.Cols = 3, 3
	cfg.Collapse.Workers = 2
	require.NoError(t, cfg.Validate())

	w, rep, err := worldgen.Generate(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)
	require.Equal(t, 9, w.Len())
	assert.Equal(t, 9, rep.Nodes)
	assert.True(t, w.AllTerminal())
	assert.True(t, w.Layout().Done)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { worldgen.WithEngine(nil) })
	assert.Panics(t, func() { worldgen.WithBuilder(nil) })
	assert.Panics(t, func() { worldgen.WithMaxTicks(0) })
	assert.Panics(t, func() { worldgen.WithTickDelta(-1) })
	assert.Panics(t, func() { worldgen.WithRetries(-1) })
	assert.Panics(t, func() { worldgen.WithLogger(nil) })
}
