package collapse

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/districts/core"
	"github.com/katalvlaran/districts/logging"
)

func dampingEngine(t *testing.T) *Engine {
	t.Helper()
	p := DefaultParams()
	p.DecayRate = 0
	p.Jitter = 0
	p.DistanceDamping = 0.1
	require.NoError(t, p.Validate())
	return NewEngine(WithParams(p), WithLogger(logging.Discard()))
}

func TestReweight_DampingDirection(t *testing.T) {
	e := dampingEngine(t)
	origin := e.siteOf(&core.Node{ID: core.NodeID{Value: 1}})
	far := e.siteOf(&core.Node{ID: core.NodeID{Value: 2, Coord: core.Coord{X: 20}}})
	require.InDelta(t, 1, origin.centrality, 1e-12)
	require.InDelta(t, 0, far.centrality, 1e-12)

	tests := []struct {
		name string
		tile core.Tile
		at   site
		want float64
	}{
		{"central at origin", core.TileCentral, origin, 1},
		{"central far away", core.TileCentral, far, 0.9},
		{"outskirt at origin", core.TileOutskirt, origin, 0.9},
		{"outskirt far away", core.TileOutskirt, far, 1},
		{"frontier at origin", core.TileFrontier, origin, 0.9},
		{"frontier far away", core.TileFrontier, far, 1},
		{"polar at origin", core.TilePolar, origin, 1},
		{"polar far away", core.TilePolar, far, 1},
	}
	r := rand.New(rand.NewPCG(1, 2))
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := e.reweight(core.Candidate{Tile: tc.tile, Weight: 1}, tc.at, DefaultTickDelta, r)
			require.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

func TestReweight_FloorsAtMinWeight(t *testing.T) {
	e := dampingEngine(t)
	far := e.siteOf(&core.Node{ID: core.NodeID{Value: 2, Coord: core.Coord{X: 20}}})
	r := rand.New(rand.NewPCG(3, 4))

	got := e.reweight(core.Candidate{Tile: core.TileCentral, Weight: 0}, far, DefaultTickDelta, r)
	require.Equal(t, e.params.MinWeight, got)
}

func TestReject_PolarityChargedBeforeSocket(t *testing.T) {
	p := DefaultParams()
	p.PolarityRejection = 1
	p.SocketRejection = 1
	e := NewEngine(WithParams(p), WithLogger(logging.Discard()))
	r := rand.New(rand.NewPCG(5, 6))

	odd := site{dist: 1, centrality: p.centrality(1), odd: true, sockets: true}
	even := odd
	even.odd = false
	bare := odd
	bare.sockets = false

	require.Equal(t, predicatePolarity, e.reject(core.TilePolar, odd, r))
	require.Equal(t, predicateSocket, e.reject(core.TilePolar, even, r))
	require.Equal(t, predicateSocket, e.reject(core.TileFrontier, odd, r))
	require.Equal(t, predicateNone, e.reject(core.TileFrontier, bare, r))
	require.Equal(t, predicateNone, e.reject(core.TileCentral, odd, r))
	require.Equal(t, predicateNone, e.reject(core.TileOutskirt, odd, r))
}
