package worldgen

import (
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/districts/core"
)

// Report summarizes one generation run.
type Report struct {
	RunID    string `json:"run_id" yaml:"run_id"`
	Seed     uint64 `json:"seed" yaml:"seed"`
	Nodes    int    `json:"nodes" yaml:"nodes"`
	Ticks    int    `json:"ticks" yaml:"ticks"`
	Attempts int    `json:"attempts" yaml:"attempts"`
	Retried  int    `json:"retried" yaml:"retried"`

	Statuses map[string]int `json:"statuses" yaml:"statuses"`
	Tiles    map[string]int `json:"tiles" yaml:"tiles"`

	IterationMean   float64 `json:"iteration_mean" yaml:"iteration_mean"`
	IterationStdDev float64 `json:"iteration_stddev" yaml:"iteration_stddev"`

	NeighborEdges int `json:"neighbor_edges" yaml:"neighbor_edges"`
	LongEdges     int `json:"long_edges" yaml:"long_edges"`
	Connections   int `json:"connections" yaml:"connections"`
	Components    int `json:"components" yaml:"components"`

	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Unresolved returns the number of Contradiction and Failed nodes.
func (r *Report) Unresolved() int {
	return r.Statuses[core.Contradiction.String()] + r.Statuses[core.Failed.String()]
}

// tally fills the status, tile and iteration fields from w.
func (r *Report) tally(w *core.World) {
	r.Nodes = w.Len()
	r.Statuses = make(map[string]int)
	r.Tiles = make(map[string]int)
	iters := make([]float64, 0, w.Len())

	for i := 0; i < w.Len(); i++ {
		st := w.Node(i).State
		r.Statuses[st.Status.String()]++
		if st.IsCollapsed {
			r.Tiles[st.AssignedTile.String()]++
		}
		iters = append(iters, float64(st.Iteration))
	}

	switch len(iters) {
	case 0:
	case 1:
		r.IterationMean = iters[0]
	default:
		r.IterationMean, r.IterationStdDev = stat.MeanStdDev(iters, nil)
	}
}
