package main

import (
	"fmt"

	"deedles.dev/xselect"
	"deedles.dev/xselect/geom"
	"deedles.dev/xselect/handle"
	"github.com/spf13/cobra"
)

func knobsCmd() *cobra.Command {
	var radius float64

	cmd := &cobra.Command{
		Use:   "knobs x y width height",
		Short: "Print the handle knobs of a selection",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseFloats(args)
			if err != nil {
				return err
			}

			r := geom.XYWH(vals[0], vals[1], vals[2], vals[3])
			for d, knob := range handle.Knobs(r, radius) {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%-11v %v anchor=%v\n", d, knob, handle.Anchor(d, r))
				if err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().Float64VarP(&radius, "radius", "r", xselect.DefaultKnobRadius, "knob radius")

	return cmd
}
