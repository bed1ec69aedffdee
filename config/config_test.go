package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/districts/collapse"
	"github.com/katalvlaran/districts/config"
	"github.com/katalvlaran/districts/layout"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, config.ShapeLine, cfg.Layout.Shape)
	assert.Equal(t, 5, cfg.Layout.Count)
	assert.Equal(t, 120, cfg.Generator.MaxTicks)
	assert.Zero(t, cfg.Generator.Retries)
	assert.Equal(t, collapse.DefaultParams(), cfg.Collapse.Params())
}

func TestParse_EmptyYieldsDefaults(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := config.Parse([]byte(`
seed: 7
layout:
  shape: grid
  rows: 4
  cols: 6
  children: 2
collapse:
  workers: 3
  polarity_rejection: 0.5
generator:
  retries: 2
logging:
  level: debug
  json: true
`))
	require.NoError(t, err)

	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, config.ShapeGrid, cfg.Layout.Shape)
	assert.Equal(t, 4, cfg.Layout.Rows)
	assert.Equal(t, 6, cfg.Layout.Cols)
	assert.Equal(t, 3, cfg.Collapse.Workers)
	assert.Equal(t, 0.5, cfg.Collapse.PolarityRejection)
	// Untouched keys keep their defaults.
	assert.Equal(t, collapse.DefaultBiomeRejection, cfg.Collapse.BiomeRejection)
	assert.Equal(t, 2, cfg.Generator.Retries)
	assert.True(t, cfg.Logging.JSON)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"unknown key":        "sede: 3\n",
		"bad yaml":           "layout: [\n",
		"bad shape":          "layout:\n  shape: hexagon\n",
		"grid without rows":  "layout:\n  shape: grid\n  cols: 3\n",
		"ring without r":     "layout:\n  shape: ring\n  radius: 0\n",
		"zero count":         "layout:\n  count: 0\n",
		"too many children":  "layout:\n  children: 9\n",
		"socket probability": "layout:\n  socket_probability: 2\n",
		"rejection range":    "collapse:\n  biome_rejection: 1.5\n",
		"init jitter order":  "collapse:\n  init_jitter_min: 1.5\n  init_jitter_max: 1.0\n",
		"damping":            "collapse:\n  distance_damping: 1\n",
		"max ticks":          "generator:\n  max_ticks: 0\n",
		"retries":            "generator:\n  retries: -1\n",
		"log level":          "logging:\n  level: loud\n",
		"connectivity k":     "connectivity:\n  k: 0\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestValidate_CountPerShape(t *testing.T) {
	tests := []struct {
		name   string
		layout config.LayoutConfig
		valid  bool
	}{
		{"grid ignores count", config.LayoutConfig{Shape: config.ShapeGrid, Rows: 2, Cols: 2, Spacing: 1, MaxSockets: 1}, true},
		{"grid negative count", config.LayoutConfig{Shape: config.ShapeGrid, Count: -1, Rows: 2, Cols: 2, Spacing: 1, MaxSockets: 1}, false},
		{"line needs count", config.LayoutConfig{Shape: config.ShapeLine, Spacing: 1, MaxSockets: 1}, false},
		{"ring needs count", config.LayoutConfig{Shape: config.ShapeRing, Radius: 3, Spacing: 1, MaxSockets: 1}, false},
		{"scatter with count", config.LayoutConfig{Shape: config.ShapeScatter, Count: 4, Radius: 3, Spacing: 1, MaxSockets: 1}, true},
		{"count too large", config.LayoutConfig{Shape: config.ShapeLine, Count: 100001, Spacing: 1, MaxSockets: 1}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Layout = tc.layout
			err := cfg.Validate()
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, config.ErrInvalidConfig)
			}
		})
	}

	cfg, err := config.Parse([]byte("layout:\n  shape: grid\n  rows: 2\n  cols: 3\n  count: 0\n"))
	require.NoError(t, err)
	require.Zero(t, cfg.Layout.Count)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "districts.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 99\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, uint64(99), cfg.Seed)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestEncode_ParsesBack(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 1234
	cfg.Layout.Shape = config.ShapeScatter
	cfg.Layout.Count = 12

	var buf bytes.Buffer
	require.NoError(t, cfg.Encode(&buf))
	back, err := config.Parse(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, cfg, back)
}

func TestLayoutConstructors(t *testing.T) {
	tests := []struct {
		layout config.LayoutConfig
		nodes  int
	}{
		{config.LayoutConfig{Shape: config.ShapeLine, Count: 5, Spacing: 1, MaxSockets: 1}, 5},
		{config.LayoutConfig{Shape: config.ShapeGrid, Rows: 3, Cols: 4, Spacing: 1, MaxSockets: 1}, 12},
		{config.LayoutConfig{Shape: config.ShapeRing, Count: 6, Radius: 5, Spacing: 1, MaxSockets: 1}, 6},
		{config.LayoutConfig{Shape: config.ShapeScatter, Count: 7, Radius: 5, Spacing: 1, MaxSockets: 1}, 7},
		{config.LayoutConfig{Shape: config.ShapeLine, Count: 3, Children: 2, Spacing: 2, SocketProbability: 1, MaxSockets: 1}, 9},
	}
	for _, tc := range tests {
		t.Run(tc.layout.Shape, func(t *testing.T) {
			cfg := config.Default()
			cfg.Layout = tc.layout
			require.NoError(t, cfg.Validate())

			w, err := layout.BuildWorld(cfg.WorldSeed(), tc.layout.Options(), tc.layout.Constructors()...)
			require.NoError(t, err)
			require.Equal(t, tc.nodes, w.Len())
			if tc.layout.SocketProbability == 1 {
				require.True(t, w.Node(0).HasSockets())
			}
		})
	}
}

func TestComponents(t *testing.T) {
	cfg := config.Default()
	cfg.Collapse.MaxIterations = 7

	logger, err := cfg.Logging.Logger(&bytes.Buffer{})
	require.NoError(t, err)
	require.NotNil(t, logger)

	e := cfg.Engine(logger)
	require.Equal(t, 7, e.Params().MaxIterations)
	require.NotNil(t, cfg.Builder(logger))

	_, err = config.LoggingConfig{Level: "loud"}.Logger(&bytes.Buffer{})
	require.Error(t, err)
}
