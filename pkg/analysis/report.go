package analysis

import (
	"context"
	"fmt"
	"sort"

	"github.com/philipparndt/gobounds/pkg/bounds"
	"github.com/philipparndt/gobounds/pkg/geometry"
	"github.com/philipparndt/gobounds/pkg/stl"
)

// TriangleBox pairs a facet with its bounding box
type TriangleBox struct {
	Index int
	Box   geometry.AABB
	Area  float64 // surface area of Box
}

// Report contains the bounding measurements of a model
type Report struct {
	Name          string
	TriangleCount int
	Bounds        geometry.AABB
	Center        geometry.Vector3
	Extent        geometry.Vector3
	SurfaceArea   float64 // of the bounding box
	Volume        float64
	Diagonal      float64
	LongestAxis   int
	MeshArea      float64 // sum of triangle areas
	AvgFacetArea  float64 // mean facet box surface area
	Empty         bool
}

// AnalyzeModel bounds every facet of the model and folds the facet boxes
// using the given number of workers.
func AnalyzeModel(ctx context.Context, model *stl.Model, workers int) (*Report, error) {
	boxes := model.TriangleBounds()

	bbox, err := bounds.MergeParallel(ctx, boxes, workers)
	if err != nil {
		return nil, fmt.Errorf("failed to merge triangle bounds: %w", err)
	}

	report := &Report{
		Name:          model.Name,
		TriangleCount: model.TriangleCount(),
		Bounds:        bbox,
		MeshArea:      model.SurfaceArea(),
		Empty:         bbox.IsEmpty(),
	}
	if report.Empty {
		return report, nil
	}

	report.Center = bbox.Center()
	report.Extent = bbox.Extent()
	report.SurfaceArea = bbox.SurfaceArea()
	report.Volume = bbox.Volume()
	report.Diagonal = bbox.Diagonal()
	report.LongestAxis = bbox.LongestAxis()

	total := 0.0
	for _, b := range boxes {
		total += b.SurfaceArea()
	}
	report.AvgFacetArea = total / float64(len(boxes))

	return report, nil
}

// MergeReports combines the bounds of several reports into one box
func MergeReports(reports ...*Report) geometry.AABB {
	merged := geometry.NewAABB()
	for _, r := range reports {
		merged.Expand(r.Bounds)
	}
	return merged
}

func triangleBoxes(model *stl.Model) []TriangleBox {
	boxes := make([]TriangleBox, len(model.Triangles))
	for i, tri := range model.Triangles {
		b := tri.Bounds()
		boxes[i] = TriangleBox{Index: i, Box: b, Area: b.SurfaceArea()}
	}
	return boxes
}

// LargestTriangleBoxes returns the N facets with the largest box surface area
func LargestTriangleBoxes(model *stl.Model, count int) []TriangleBox {
	boxes := triangleBoxes(model)
	sort.SliceStable(boxes, func(i, j int) bool {
		return boxes[i].Area > boxes[j].Area
	})
	return head(boxes, count)
}

// SmallestTriangleBoxes returns the N facets with the smallest box surface area
func SmallestTriangleBoxes(model *stl.Model, count int) []TriangleBox {
	boxes := triangleBoxes(model)
	sort.SliceStable(boxes, func(i, j int) bool {
		return boxes[i].Area < boxes[j].Area
	})
	return head(boxes, count)
}

func head(boxes []TriangleBox, count int) []TriangleBox {
	if count < 0 {
		count = 0
	}
	if count > len(boxes) {
		count = len(boxes)
	}
	return boxes[:count]
}

// AxisName returns "X", "Y" or "Z"
func AxisName(axis int) string {
	return [...]string{"X", "Y", "Z"}[axis]
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

// FormatBox formats a box as "min .. max"
func FormatBox(b geometry.AABB) string {
	if b.IsEmpty() {
		return "(empty)"
	}
	return fmt.Sprintf("%s .. %s", FormatVector(b.Min), FormatVector(b.Max))
}
