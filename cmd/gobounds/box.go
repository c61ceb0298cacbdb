package main

import (
	"fmt"

	"github.com/philipparndt/gobounds/pkg/geometry"
	"github.com/spf13/cobra"
)

var (
	boxMin, boxMax       []float64
	boxCenter, boxExtent []float64
)

var boxCmd = &cobra.Command{
	Use:   "box",
	Short: "Build a box from corners or from center and extent",
	Long: `Build a box either from --min and --max corners or from --center and a
full --extent, and print its metrics. Coordinates are given as x,y,z.`,
	Example: `  gobounds box --min 0,0,0 --max 2,3,4
  gobounds box --center 1,1,1 --extent 2,2,2`,
	Args: cobra.NoArgs,
	RunE: runBox,
}

func init() {
	rootCmd.AddCommand(boxCmd)

	boxCmd.Flags().Float64SliceVar(&boxMin, "min", nil, "Minimum corner x,y,z")
	boxCmd.Flags().Float64SliceVar(&boxMax, "max", nil, "Maximum corner x,y,z")
	boxCmd.Flags().Float64SliceVar(&boxCenter, "center", nil, "Box center x,y,z")
	boxCmd.Flags().Float64SliceVar(&boxExtent, "extent", nil, "Full box size x,y,z")

	boxCmd.MarkFlagsRequiredTogether("min", "max")
	boxCmd.MarkFlagsRequiredTogether("center", "extent")
	boxCmd.MarkFlagsMutuallyExclusive("min", "center")
	boxCmd.MarkFlagsOneRequired("min", "center")
}

func toVector(name string, xyz []float64) (geometry.Vector3, error) {
	if len(xyz) != 3 {
		return geometry.Vector3{}, fmt.Errorf("--%s needs 3 coordinates, got %d", name, len(xyz))
	}
	return geometry.NewVector3(xyz[0], xyz[1], xyz[2]), nil
}

func runBox(cmd *cobra.Command, args []string) error {
	var b geometry.AABB

	if cmd.Flags().Changed("min") {
		lo, err := toVector("min", boxMin)
		if err != nil {
			return err
		}
		hi, err := toVector("max", boxMax)
		if err != nil {
			return err
		}
		if lo.X > hi.X || lo.Y > hi.Y || lo.Z > hi.Z {
			logger.Warn("minimum corner exceeds maximum on some axis", "min", lo, "max", hi)
		}
		b = geometry.AABBFromMinMax(lo, hi)
	} else {
		center, err := toVector("center", boxCenter)
		if err != nil {
			return err
		}
		extent, err := toVector("extent", boxExtent)
		if err != nil {
			return err
		}
		if extent.X < 0 || extent.Y < 0 || extent.Z < 0 {
			logger.Warn("negative extent produces an inverted box", "extent", extent)
		}
		b = geometry.AABBFromCenterExtent(center, extent)
	}

	w := cmd.OutOrStdout()
	printTitle(w, "Box")
	printBox(w, b)
	return nil
}
