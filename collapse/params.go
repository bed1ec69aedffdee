// SPDX-License-Identifier: MIT
// Package: districts/collapse
//
// params.go: tunable heuristics of the collapse.
//
// The rejection probabilities and damping rates are illustrative placeholder
// heuristics, not balance values. Useful tuning ranges:
//   • *Rejection ∈ [0,1]; 0 disables a predicate, 1 makes it absolute.
//   • DistanceDamping ∈ [0, 0.05]; it compounds once per tick, so values near
//     0.1 flatten every weight to MinWeight within the iteration budget.
//   • Jitter ∈ [0, 0.1]; larger values drown out positional weighting.

package collapse

import (
	"fmt"
)

// Deterministic defaults (named, no magic numbers).
const (
	DefaultWorldRadius       = 10.0 // distance at which centrality reaches 0
	DefaultMaxIterations     = 100  // forced collapse once iteration exceeds this
	DefaultBiomeThreshold    = 5.0  // distance beyond which central tiles are rejected
	DefaultBiomeRejection    = 0.9  // P(reject central | beyond threshold)
	DefaultPolarityRejection = 0.2  // P(reject polar | odd parity)
	DefaultSocketRadius      = 3.0  // distance below which socket checks apply
	DefaultSocketRejection   = 0.3  // P(reject even tile | near center with sockets)
	DefaultDecayRate         = 0.1  // weight decay per second of tick delta
	DefaultMinWeight         = 1e-4 // positive floor for surviving weights
	DefaultDistanceDamping   = 0.01 // per-tick positional damping
	DefaultJitter            = 0.05 // ±5% multiplicative jitter per tick
	DefaultNodeVariance      = 0.05 // ±5% id-derived variance at init
	DefaultInitJitterMin     = 0.8  // lower bound of the one-candidate init jitter
	DefaultInitJitterMax     = 1.2  // upper bound of the one-candidate init jitter
	DefaultBaseWeight        = 1.0  // weight before positional shaping
	DefaultTickDelta         = 1 / 60.0
)

// Params carries every collapse heuristic. The zero value is invalid; start
// from DefaultParams.
type Params struct {
	WorldRadius       float64
	MaxIterations     int
	BiomeThreshold    float64
	BiomeRejection    float64
	PolarityRejection float64
	SocketRadius      float64
	SocketRejection   float64
	DecayRate         float64
	MinWeight         float64
	DistanceDamping   float64
	Jitter            float64
	NodeVariance      float64
	InitJitterMin     float64
	InitJitterMax     float64
	BaseWeight        float64
}

// DefaultParams returns the documented defaults.
func DefaultParams() Params {
	return Params{
		WorldRadius:       DefaultWorldRadius,
		MaxIterations:     DefaultMaxIterations,
		BiomeThreshold:    DefaultBiomeThreshold,
		BiomeRejection:    DefaultBiomeRejection,
		PolarityRejection: DefaultPolarityRejection,
		SocketRadius:      DefaultSocketRadius,
		SocketRejection:   DefaultSocketRejection,
		DecayRate:         DefaultDecayRate,
		MinWeight:         DefaultMinWeight,
		DistanceDamping:   DefaultDistanceDamping,
		Jitter:            DefaultJitter,
		NodeVariance:      DefaultNodeVariance,
		InitJitterMin:     DefaultInitJitterMin,
		InitJitterMax:     DefaultInitJitterMax,
		BaseWeight:        DefaultBaseWeight,
	}
}

// Validate reports the first meaningless field, wrapped with ErrInvalidParams.
// Complexity: O(1).
func (p Params) Validate() error {
	switch {
	case p.WorldRadius <= 0:
		return fmt.Errorf("WorldRadius=%g must be > 0: %w", p.WorldRadius, ErrInvalidParams)
	case p.MaxIterations < 1:
		return fmt.Errorf("MaxIterations=%d must be ≥ 1: %w", p.MaxIterations, ErrInvalidParams)
	case p.BiomeThreshold < 0, p.SocketRadius < 0:
		return fmt.Errorf("BiomeThreshold=%g SocketRadius=%g must be ≥ 0: %w",
			p.BiomeThreshold, p.SocketRadius, ErrInvalidParams)
	case !unit(p.BiomeRejection), !unit(p.PolarityRejection), !unit(p.SocketRejection):
		return fmt.Errorf("rejection probabilities must be in [0,1]: %w", ErrInvalidParams)
	case p.DecayRate < 0, p.DistanceDamping < 0 || p.DistanceDamping >= 1:
		return fmt.Errorf("DecayRate=%g DistanceDamping=%g out of range: %w",
			p.DecayRate, p.DistanceDamping, ErrInvalidParams)
	case p.MinWeight <= 0:
		return fmt.Errorf("MinWeight=%g must be > 0: %w", p.MinWeight, ErrInvalidParams)
	case !unit(p.Jitter), !unit(p.NodeVariance):
		return fmt.Errorf("Jitter=%g NodeVariance=%g must be in [0,1]: %w",
			p.Jitter, p.NodeVariance, ErrInvalidParams)
	case p.InitJitterMin <= 0 || p.InitJitterMax < p.InitJitterMin:
		return fmt.Errorf("init jitter range [%g,%g] invalid: %w",
			p.InitJitterMin, p.InitJitterMax, ErrInvalidParams)
	case p.BaseWeight <= 0:
		return fmt.Errorf("BaseWeight=%g must be > 0: %w", p.BaseWeight, ErrInvalidParams)
	}

	return nil
}

// centrality maps a distance from the origin into [0,1]; 1 at the origin.
func (p Params) centrality(dist float64) float64 {
	r := dist / p.WorldRadius
	if r >= 1 {
		return 0
	}
	return 1 - r
}

func unit(v float64) bool { return v >= 0 && v <= 1 }
