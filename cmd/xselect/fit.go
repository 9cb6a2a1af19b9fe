package main

import (
	"fmt"

	"deedles.dev/xselect/geom"
	"github.com/spf13/cobra"
)

func fitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fit width height x y target-width target-height",
		Short: "Fit a size into a target rectangle",
		Long: `Fit prints the largest rectangle with the aspect ratio of width:height
that fits inside the target rectangle, centered in it.

A size that is zero, negative or infinite produces an empty rectangle.`,
		Args: cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseFloats(args)
			if err != nil {
				return err
			}

			original := geom.Rect[float64]{Max: geom.Pt(vals[0], vals[1])}
			target := geom.XYWH(vals[2], vals[3], vals[4], vals[5])
			fit := geom.FitRect(original, target)

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "origin=%v size=%v scale=%v\n",
				fit.Origin(),
				fit.Size(),
				geom.FitScale(original.Size(), target.Size()),
			)
			return err
		},
	}

	return cmd
}
