// Package config loads district generation settings from YAML.
//
// A file only needs the keys it changes: Parse decodes over Default(), then
// validates struct tags with go-playground/validator and the collapse
// parameter ranges. Unknown keys are rejected so typos surface early.
//
//	seed: 42
//	layout:
//	  shape: grid
//	  rows: 5
//	  cols: 5
//	generator:
//	  retries: 2
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/districts/collapse"
	"github.com/katalvlaran/districts/connectivity"
)

// ErrInvalidConfig wraps every decoding or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Layout shapes.
const (
	ShapeLine    = "line"
	ShapeGrid    = "grid"
	ShapeRing    = "ring"
	ShapeScatter = "scatter"
)

// Config is the root of a generation config file.
type Config struct {
	Seed         uint64             `yaml:"seed"`
	Layout       LayoutConfig       `yaml:"layout"`
	Collapse     CollapseConfig     `yaml:"collapse"`
	Connectivity ConnectivityConfig `yaml:"connectivity"`
	Generator    GeneratorConfig    `yaml:"generator"`
	Logging      LoggingConfig      `yaml:"logging"`
}

// LayoutConfig selects how district nodes are placed.
type LayoutConfig struct {
	Shape             string  `yaml:"shape" validate:"oneof=line grid ring scatter"`
	Count             int     `yaml:"count" validate:"required_unless=Shape grid,gte=0,lte=100000"`
	Rows              int     `yaml:"rows" validate:"required_if=Shape grid,gte=0"`
	Cols              int     `yaml:"cols" validate:"required_if=Shape grid,gte=0"`
	Radius            float64 `yaml:"radius" validate:"gte=0"`
	Spacing           int32   `yaml:"spacing" validate:"gte=1"`
	Children          int     `yaml:"children" validate:"gte=0,lte=8"`
	SocketProbability float64 `yaml:"socket_probability" validate:"gte=0,lte=1"`
	MaxSockets        int     `yaml:"max_sockets" validate:"gte=1,lte=16"`
}

// CollapseConfig mirrors collapse.Params plus the worker count.
type CollapseConfig struct {
	Workers           int     `yaml:"workers" validate:"gte=0"`
	WorldRadius       float64 `yaml:"world_radius" validate:"gt=0"`
	MaxIterations     int     `yaml:"max_iterations" validate:"gte=1"`
	BiomeThreshold    float64 `yaml:"biome_threshold" validate:"gte=0"`
	BiomeRejection    float64 `yaml:"biome_rejection" validate:"gte=0,lte=1"`
	PolarityRejection float64 `yaml:"polarity_rejection" validate:"gte=0,lte=1"`
	SocketRadius      float64 `yaml:"socket_radius" validate:"gte=0"`
	SocketRejection   float64 `yaml:"socket_rejection" validate:"gte=0,lte=1"`
	DecayRate         float64 `yaml:"decay_rate" validate:"gte=0"`
	MinWeight         float64 `yaml:"min_weight" validate:"gt=0"`
	DistanceDamping   float64 `yaml:"distance_damping" validate:"gte=0,lt=1"`
	Jitter            float64 `yaml:"jitter" validate:"gte=0,lte=1"`
	NodeVariance      float64 `yaml:"node_variance" validate:"gte=0,lte=1"`
	InitJitterMin     float64 `yaml:"init_jitter_min" validate:"gt=0"`
	InitJitterMax     float64 `yaml:"init_jitter_max" validate:"gtefield=InitJitterMin"`
	BaseWeight        float64 `yaml:"base_weight" validate:"gt=0"`
}

// ConnectivityConfig configures the connectivity pass.
type ConnectivityConfig struct {
	K               int     `yaml:"k" validate:"gte=1"`
	LongEdgeDivisor int     `yaml:"long_edge_divisor" validate:"gte=1"`
	NeighborCost    float64 `yaml:"neighbor_cost" validate:"gte=0"`
	LongCost        float64 `yaml:"long_cost" validate:"gte=0"`
}

// GeneratorConfig drives the tick loop.
type GeneratorConfig struct {
	MaxTicks  int     `yaml:"max_ticks" validate:"gte=1"`
	TickDelta float64 `yaml:"tick_delta" validate:"gte=0"`
	Retries   int     `yaml:"retries" validate:"gte=0,lte=16"`
}

// LoggingConfig selects log level and format.
type LoggingConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `yaml:"json"`
}

// Default returns the built-in configuration: five districts on a line,
// seed 42, default collapse and connectivity parameters.
func Default() Config {
	p := collapse.DefaultParams()
	return Config{
		Seed: 42,
		Layout: LayoutConfig{
			Shape:      ShapeLine,
			Count:      5,
			Radius:     8,
			Spacing:    1,
			MaxSockets: 2,
		},
		Collapse: CollapseConfig{
			WorldRadius:       p.WorldRadius,
			MaxIterations:     p.MaxIterations,
			BiomeThreshold:    p.BiomeThreshold,
			BiomeRejection:    p.BiomeRejection,
			PolarityRejection: p.PolarityRejection,
			SocketRadius:      p.SocketRadius,
			SocketRejection:   p.SocketRejection,
			DecayRate:         p.DecayRate,
			MinWeight:         p.MinWeight,
			DistanceDamping:   p.DistanceDamping,
			Jitter:            p.Jitter,
			NodeVariance:      p.NodeVariance,
			InitJitterMin:     p.InitJitterMin,
			InitJitterMax:     p.InitJitterMax,
			BaseWeight:        p.BaseWeight,
		},
		Connectivity: ConnectivityConfig{
			K:               connectivity.DefaultK,
			LongEdgeDivisor: connectivity.DefaultLongEdgeDivisor,
			NeighborCost:    connectivity.DefaultNeighborCost,
			LongCost:        connectivity.DefaultLongCost,
		},
		Generator: GeneratorConfig{
			MaxTicks:  120,
			TickDelta: collapse.DefaultTickDelta,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes data over Default() and validates the result. Empty input
// yields the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks struct tags and collapse parameter ranges.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if (c.Layout.Shape == ShapeRing || c.Layout.Shape == ShapeScatter) && c.Layout.Radius <= 0 {
		return fmt.Errorf("%w: layout.radius must be > 0 for shape %q", ErrInvalidConfig, c.Layout.Shape)
	}
	if err := c.Collapse.Params().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Encode writes c as YAML.
func (c Config) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return enc.Close()
}

// Params converts the section into collapse.Params.
func (c CollapseConfig) Params() collapse.Params {
	return collapse.Params{
		WorldRadius:       c.WorldRadius,
		MaxIterations:     c.MaxIterations,
		BiomeThreshold:    c.BiomeThreshold,
		BiomeRejection:    c.BiomeRejection,
		PolarityRejection: c.PolarityRejection,
		SocketRadius:      c.SocketRadius,
		SocketRejection:   c.SocketRejection,
		DecayRate:         c.DecayRate,
		MinWeight:         c.MinWeight,
		DistanceDamping:   c.DistanceDamping,
		Jitter:            c.Jitter,
		NodeVariance:      c.NodeVariance,
		InitJitterMin:     c.InitJitterMin,
		InitJitterMax:     c.InitJitterMax,
		BaseWeight:        c.BaseWeight,
	}
}
