package connectivity_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/districts/connectivity"
	"github.com/katalvlaran/districts/core"
	"github.com/katalvlaran/districts/logging"
	"github.com/katalvlaran/districts/seed"
)

// BuilderSuite runs the connectivity pass over the five-district line
// (-2,0)…(2,0) with seed 42.
type BuilderSuite struct {
	suite.Suite
	w *core.World
	b *connectivity.Builder
}

func (s *BuilderSuite) SetupTest() {
	s.w = lineWorld(s.T(), 42, 5)
	s.w.MarkLayoutDone()
	s.b = connectivity.NewBuilder(connectivity.WithLogger(logging.Discard()))
}

func lineWorld(t *testing.T, sd uint64, n int) *core.World {
	t.Helper()
	w := core.NewWorld(seed.New(sd))
	for i := 0; i < n; i++ {
		require.NoError(t, w.AddNode(core.NodeID{Value: uint32(i + 1), Coord: core.Coord{X: int32(i - n/2)}}))
	}
	return w
}

func gridWorld(t *testing.T, sd uint64, rows, cols int) *core.World {
	t.Helper()
	w := core.NewWorld(seed.New(sd))
	v := uint32(1)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			require.NoError(t, w.AddNode(core.NodeID{Value: v, Coord: core.Coord{X: int32(x), Y: int32(y)}}))
			v++
		}
	}
	w.MarkLayoutDone()
	return w
}

func all(t *testing.T, w *core.World) map[uint32][]core.Connection {
	t.Helper()
	out := make(map[uint32][]core.Connection, w.Len())
	for i := 0; i < w.Len(); i++ {
		v := w.Node(i).ID.Value
		cs, err := w.Connections(v)
		require.NoError(t, err)
		out[v] = cs
	}
	return out
}

func (s *BuilderSuite) TestScenario() {
	res := s.b.Build(s.w)

	s.Require().Equal(connectivity.NotSkipped, res.Skipped)
	s.Require().Equal(5, res.Sites)
	s.Require().Equal(15, res.Neighbor)
	s.Require().Equal(1, res.LongAttempts)
	s.Require().LessOrEqual(res.Long, 1)
	s.Require().Equal(res.Neighbor+res.Long, res.Applied)
	s.Require().Equal(res.Applied, res.Total)
	s.Require().Equal(res.Total, s.w.Layout().ConnectionCount)

	pairs := make(map[[2]uint32]struct{})
	for from, cs := range all(s.T(), s.w) {
		targets := make(map[uint32]struct{})
		for _, c := range cs {
			s.Require().Equal(from, c.From)
			s.Require().NotEqual(c.From, c.To, "self loop")
			s.Require().Equal(core.Bidirectional, c.Type)
			s.Require().Equal(core.PolarityNone, c.RequiredPolarity)
			_, dup := targets[c.To]
			s.Require().False(dup, "duplicate target %d from %d", c.To, from)
			targets[c.To] = struct{}{}

			a, b := min(c.From, c.To), max(c.From, c.To)
			pairs[[2]uint32{a, b}] = struct{}{}
		}
	}
	s.Require().GreaterOrEqual(len(pairs), 8)
}

func (s *BuilderSuite) TestNeighborCostsAndTieBreak() {
	s.b.Build(s.w)

	// x=0 has two neighbors at distance 1, then a tie at distance 2 that the
	// lower arena index (x=-2) wins.
	cs, err := s.w.Connections(3)
	s.Require().NoError(err)
	s.Require().GreaterOrEqual(len(cs), 3)
	s.Require().Equal([]uint32{2, 4, 1}, []uint32{cs[0].To, cs[1].To, cs[2].To})
	s.Require().InDelta(0.1, cs[0].TraversalCost, 1e-12)
	s.Require().InDelta(0.2, cs[2].TraversalCost, 1e-12)
}

func (s *BuilderSuite) TestIdempotent() {
	first := s.b.Build(s.w)
	before := all(s.T(), s.w)

	second := s.b.Build(s.w)
	s.Require().Equal(connectivity.AlreadyConnected, second.Skipped)
	s.Require().Equal(before, all(s.T(), s.w))
	s.Require().Equal(first.Total, s.w.Layout().ConnectionCount)
}

func (s *BuilderSuite) TestExistingConnectionSkipped() {
	s.Require().NoError(s.w.Connect(core.Connection{From: 1, To: 2, Type: core.OneWay, TraversalCost: 5}))

	res := s.b.Build(s.w)
	s.Require().Equal(14, res.Neighbor)

	cs, err := s.w.Connections(1)
	s.Require().NoError(err)
	s.Require().Equal(core.OneWay, cs[0].Type)
	s.Require().Equal(res.Total, s.w.TotalConnections())
}

func TestBuilderSuite(t *testing.T) {
	suite.Run(t, new(BuilderSuite))
}

func TestBuild_LayoutPending(t *testing.T) {
	w := lineWorld(t, 1, 5)
	res := connectivity.NewBuilder(connectivity.WithLogger(logging.Discard())).Build(w)

	require.Equal(t, connectivity.LayoutPending, res.Skipped)
	require.Zero(t, w.TotalConnections())
	require.Zero(t, w.Layout().ConnectionCount)
}

func TestBuild_TooFewNodes(t *testing.T) {
	b := connectivity.NewBuilder(connectivity.WithLogger(logging.Discard()))
	for _, n := range []int{0, 1} {
		w := lineWorld(t, 1, n)
		w.MarkLayoutDone()
		res := b.Build(w)
		require.Equal(t, connectivity.TooFewNodes, res.Skipped)
		require.Zero(t, w.Layout().ConnectionCount)
	}
}

func TestBuild_TwoNodes(t *testing.T) {
	w := lineWorld(t, 9, 2)
	w.MarkLayoutDone()
	res := connectivity.NewBuilder(connectivity.WithLogger(logging.Discard())).Build(w)

	require.Equal(t, 2, res.Neighbor)
	require.Zero(t, res.Long) // the only pair is already linked both ways
	require.Equal(t, 2, res.Total)
}

func TestBuild_IgnoresChildLevels(t *testing.T) {
	w := lineWorld(t, 3, 4)
	require.NoError(t, w.AddNode(core.NodeID{Value: 100, Level: 1, ParentID: 1, Coord: core.Coord{X: -2, Y: 1}}))
	require.NoError(t, w.AddNode(core.NodeID{Value: 101, Level: 1, ParentID: 2, Coord: core.Coord{X: -1, Y: 1}}))
	w.MarkLayoutDone()

	res := connectivity.NewBuilder(connectivity.WithLogger(logging.Discard())).Build(w)
	require.Equal(t, 4, res.Sites)
	for from, cs := range all(t, w) {
		if from >= 100 {
			require.Empty(t, cs)
			continue
		}
		for _, c := range cs {
			require.Less(t, c.To, uint32(100))
		}
	}
}

func TestBuild_Deterministic(t *testing.T) {
	a := gridWorld(t, 77, 4, 5)
	b := gridWorld(t, 77, 4, 5)
	builder := connectivity.NewBuilder(connectivity.WithLogger(logging.Discard()))

	ra, rb := builder.Build(a), builder.Build(b)
	require.Equal(t, ra, rb)
	require.Equal(t, all(t, a), all(t, b))
}

func TestBuild_Options(t *testing.T) {
	w := gridWorld(t, 5, 3, 3)
	res := connectivity.NewBuilder(
		connectivity.WithLogger(logging.Discard()),
		connectivity.WithK(1),
		connectivity.WithLongEdgeDivisor(1),
		connectivity.WithCosts(1, 2),
	).Build(w)

	require.Equal(t, 9, res.Neighbor)
	require.Equal(t, 9, res.LongAttempts)
	cs, err := w.Connections(1)
	require.NoError(t, err)
	require.InDelta(t, 1.0, cs[0].TraversalCost, 1e-12)
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { connectivity.WithK(0) })
	require.Panics(t, func() { connectivity.WithLongEdgeDivisor(0) })
	require.Panics(t, func() { connectivity.WithCosts(-1, 1) })
	require.Panics(t, func() { connectivity.WithLogger(nil) })
}
