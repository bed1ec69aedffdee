// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/districts/core"
	"github.com/katalvlaran/districts/route"
)

// routeAnswer is the route output.
type routeAnswer struct {
	From     uint32   `json:"from" yaml:"from"`
	To       uint32   `json:"to" yaml:"to"`
	Path     []uint32 `json:"path" yaml:"path"`
	Cost     float64  `json:"cost" yaml:"cost"`
	Polarity string   `json:"polarity" yaml:"polarity"`
}

var polarities = map[string]core.Polarity{
	"none": core.PolarityNone,
	"even": core.PolarityEven,
	"odd":  core.PolarityOdd,
}

func newRouteCmd(f *flags) *cobra.Command {
	var (
		from, to uint32
		polarity string
		maxCost  float64
	)
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Generate a world and print the cheapest path between two nodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, ok := polarities[polarity]
			if !ok {
				return fmt.Errorf("route: unknown polarity %q (want none, even or odd)", polarity)
			}
			if !(maxCost >= 0) {
				return fmt.Errorf("route: max-cost=%g: %w", maxCost, route.ErrBadMaxCost)
			}

			w, _, err := f.generate(cmd)
			if err != nil {
				return err
			}

			opts := []route.Option{route.WithPolarity(p)}
			if cmd.Flags().Changed("max-cost") {
				opts = append(opts, route.WithMaxCost(maxCost))
			}
			path, cost, err := route.Path(w, from, to, opts...)
			if err != nil {
				return err
			}
			return encode(cmd.OutOrStdout(), f.format, routeAnswer{
				From: from, To: to, Path: path, Cost: cost, Polarity: polarity,
			})
		},
	}

	fl := cmd.Flags()
	fl.Uint32Var(&from, "from", 0, "source node id")
	fl.Uint32Var(&to, "to", 0, "target node id")
	fl.StringVar(&polarity, "polarity", "none", "traveller polarity: none, even or odd")
	fl.Float64Var(&maxCost, "max-cost", 0, "stop exploring beyond this total cost")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
