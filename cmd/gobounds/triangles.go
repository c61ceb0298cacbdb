package main

import (
	"fmt"

	"github.com/philipparndt/gobounds/internal/loader"
	"github.com/philipparndt/gobounds/pkg/analysis"
	"github.com/spf13/cobra"
)

var (
	triCount    int
	triSmallest bool
)

var trianglesCmd = &cobra.Command{
	Use:   "triangles [file]",
	Short: "Rank facets by the surface area of their bounding boxes",
	Long:  "List the facets whose bounding boxes have the largest (or smallest) surface area, the cost input of surface-area-heuristic BVH builders.",
	Args:  cobra.ExactArgs(1),
	RunE:  runTriangles,
}

func init() {
	rootCmd.AddCommand(trianglesCmd)

	trianglesCmd.Flags().IntVarP(&triCount, "count", "n", 10, "Number of triangles to display")
	trianglesCmd.Flags().BoolVarP(&triSmallest, "smallest", "s", false, "Show smallest boxes instead of largest")
}

func runTriangles(cmd *cobra.Command, args []string) error {
	filename := args[0]
	w := cmd.OutOrStdout()

	res, err := loader.Load(cmd.Context(), filename, loader.Options{OpenSCAD: cfg.OpenSCAD, Logger: logger})
	if err != nil {
		return err
	}
	model := res.Model

	var boxes []analysis.TriangleBox
	var title string
	if triSmallest {
		boxes = analysis.SmallestTriangleBoxes(model, triCount)
		title = fmt.Sprintf("Top %d Smallest Facet Boxes", len(boxes))
	} else {
		boxes = analysis.LargestTriangleBoxes(model, triCount)
		title = fmt.Sprintf("Top %d Largest Facet Boxes", len(boxes))
	}

	printTitle(w, title)
	fmt.Fprintf(w, "Total triangles: %d\n\n", model.TriangleCount())

	for _, tb := range boxes {
		tri := model.Triangles[tb.Index]
		fmt.Fprintf(w, "Triangle #%d:\n", tb.Index)
		fmt.Fprintf(w, "  Box: %s\n", analysis.FormatBox(tb.Box))
		fmt.Fprintf(w, "  Box Surface Area: %.6f square units\n", tb.Area)
		fmt.Fprintf(w, "  Triangle Area: %.6f square units\n", tri.Area())
		fmt.Fprintf(w, "  Vertices: %s, %s, %s\n\n",
			analysis.FormatVector(tri.V1),
			analysis.FormatVector(tri.V2),
			analysis.FormatVector(tri.V3))
	}
	return nil
}
