// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/districts/config"
)

// Output formats.
const (
	formatYAML = "yaml"
	formatJSON = "json"
)

// flags shared by every subcommand. Zero values mean "keep the config".
type flags struct {
	configPath string
	seed       uint64
	shape      string
	count      int
	rows       int
	cols       int
	children   int
	retries    int
	workers    int
	logLevel   string
	format     string
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:          "districtgen",
		Short:        "Generate seeded district layouts",
		Long:         "districtgen places district nodes, collapses each to a tile and builds the connection graph between them.",
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "YAML config file (defaults when empty)")
	pf.Uint64Var(&f.seed, "seed", 0, "world seed")
	pf.StringVar(&f.shape, "layout", "", "layout shape: line, grid, ring or scatter")
	pf.IntVar(&f.count, "count", 0, "district count for line, ring and scatter")
	pf.IntVar(&f.rows, "rows", 0, "grid rows")
	pf.IntVar(&f.cols, "cols", 0, "grid columns")
	pf.IntVar(&f.children, "children", 0, "child nodes per district")
	pf.IntVar(&f.retries, "retries", 0, "recovery attempts for unresolved nodes")
	pf.IntVar(&f.workers, "workers", 0, "collapse workers (0 = GOMAXPROCS)")
	pf.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVarP(&f.format, "format", "f", formatYAML, "output format: yaml or json")

	root.AddCommand(newGenerateCmd(f), newRouteCmd(f), newConfigCmd(f))

	return root
}

// load reads the config file, if any, and applies the flags the user set.
func (f *flags) load(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return config.Config{}, err
		}
	}

	set := cmd.Flags().Changed
	if set("seed") {
		cfg.Seed = f.seed
	}
	if set("layout") {
		cfg.Layout.Shape = f.shape
	}
	if set("count") {
		cfg.Layout.Count = f.count
	}
	if set("rows") {
		cfg.Layout.Rows = f.rows
	}
	if set("cols") {
		cfg.Layout.Cols = f.cols
	}
	if set("children") {
		cfg.Layout.Children = f.children
	}
	if set("retries") {
		cfg.Generator.Retries = f.retries
	}
	if set("workers") {
		cfg.Collapse.Workers = f.workers
	}
	if set("log-level") {
		cfg.Logging.Level = f.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// logger writes to stderr so stdout carries only the document.
func (f *flags) logger(cmd *cobra.Command, cfg config.Config) (*slog.Logger, error) {
	return cfg.Logging.Logger(cmd.ErrOrStderr())
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want yaml or json)", format)
	}
}
