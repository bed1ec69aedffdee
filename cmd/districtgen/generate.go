// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/districts/core"
	"github.com/katalvlaran/districts/worldgen"
)

// document is the generate output.
type document struct {
	Report *worldgen.Report `json:"report" yaml:"report"`
	World  core.WorldView   `json:"world" yaml:"world"`
}

func newGenerateCmd(f *flags) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a world and print it with its run report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, rep, err := f.generate(cmd)
			if err != nil {
				return err
			}

			doc := document{Report: rep, World: w.Snapshot()}
			if out == "" {
				return encode(cmd.OutOrStdout(), f.format, doc)
			}
			return writeFile(out, f.format, doc)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the document to a file instead of stdout")

	return cmd
}

// writeFile encodes v into path. A failed Close is reported like a failed
// write, since buffered data may not have reached the file.
func writeFile(path, format string, v any) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("generate: close %s: %w", path, cerr)
		}
	}()
	return encode(file, format, v)
}

// generate loads the effective config and runs one generation.
// Unresolved nodes are reported, not returned as errors.
func (f *flags) generate(cmd *cobra.Command) (*core.World, *worldgen.Report, error) {
	cfg, err := f.load(cmd)
	if err != nil {
		return nil, nil, err
	}
	logger, err := f.logger(cmd, cfg)
	if err != nil {
		return nil, nil, err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return worldgen.Generate(ctx, cfg, logger)
}

func newConfigCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.load(cmd)
			if err != nil {
				return err
			}
			return cfg.Encode(cmd.OutOrStdout())
		},
	}
}
