package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/philipparndt/gobounds/pkg/analysis"
	"github.com/philipparndt/gobounds/pkg/geometry"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	sectionColor = color.New(color.Bold)
)

func printTitle(w io.Writer, title string) {
	titleColor.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", len(title)))
}

func printSection(w io.Writer, name string) {
	sectionColor.Fprintf(w, "%s:\n", name)
}

// printBox writes the corners and derived metrics of a box
func printBox(w io.Writer, b geometry.AABB) {
	if b.IsEmpty() {
		fmt.Fprintln(w, "  (empty)")
		return
	}
	fmt.Fprintf(w, "  Min: %s\n", analysis.FormatVector(b.Min))
	fmt.Fprintf(w, "  Max: %s\n", analysis.FormatVector(b.Max))
	fmt.Fprintf(w, "  Center: %s\n", analysis.FormatVector(b.Center()))
	fmt.Fprintf(w, "  Extent: %s\n", analysis.FormatVector(b.Extent()))
	fmt.Fprintf(w, "  Surface Area: %.6f square units\n", b.SurfaceArea())
	fmt.Fprintf(w, "  Volume: %.6f cubic units\n", b.Volume())
	fmt.Fprintf(w, "  Diagonal: %.6f units\n", b.Diagonal())
	fmt.Fprintf(w, "  Longest Axis: %s\n", analysis.AxisName(b.LongestAxis()))
}

func printReport(w io.Writer, file string, report *analysis.Report) {
	printTitle(w, "Bounding Box Report")
	if report.Name != "" {
		fmt.Fprintf(w, "Name: %s\n", report.Name)
	}
	fmt.Fprintf(w, "File: %s\n\n", file)

	printSection(w, "Model")
	fmt.Fprintf(w, "  Triangles: %d\n", report.TriangleCount)
	fmt.Fprintf(w, "  Mesh Area: %.6f square units\n\n", report.MeshArea)

	printSection(w, "Bounding Box")
	printBox(w, report.Bounds)

	if !report.Empty {
		fmt.Fprintln(w)
		printSection(w, "Facet Boxes")
		fmt.Fprintf(w, "  Average Surface Area: %.6f square units\n", report.AvgFacetArea)
	}
}
