// Package metrics holds the Prometheus collectors for district generation.
//
// Collectors are package-level and registered on the default registry through
// promauto, so any process that links this package can expose them with
// promhttp without extra wiring.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values for CandidatesRejected.
const (
	PredicateBiome    = "biome"
	PredicatePolarity = "polarity"
	PredicateSocket   = "socket"
)

// Label values for ConnectionsCreated.
const (
	KindNeighbor = "neighbor"
	KindLong     = "long"
)

var (
	// CollapseTicks counts engine ticks over a whole world.
	CollapseTicks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "districts_collapse_ticks_total",
			Help: "Total number of collapse ticks processed",
		},
	)

	// NodesTerminal counts nodes entering a terminal status, by status.
	NodesTerminal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "districts_nodes_terminal_total",
			Help: "Nodes that reached a terminal collapse status",
		},
		[]string{"status"},
	)

	// CandidatesRejected counts candidates removed by constraint propagation.
	CandidatesRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "districts_candidates_rejected_total",
			Help: "Candidates removed by constraint propagation, by predicate",
		},
		[]string{"predicate"},
	)

	// ConnectionsCreated counts edges added by the connectivity pass.
	ConnectionsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "districts_connections_created_total",
			Help: "Connections created by the connectivity builder, by kind",
		},
		[]string{"kind"},
	)

	// GenerationDuration measures one full generation run.
	GenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "districts_generation_duration_seconds",
			Help:    "Wall time of a full generation run",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)
)
