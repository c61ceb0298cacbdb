package analysis

import (
	"context"
	"testing"

	"github.com/philipparndt/gobounds/pkg/geometry"
	"github.com/philipparndt/gobounds/pkg/stl"
	"github.com/stretchr/testify/require"
)

var vec = geometry.NewVector3

func testModel() *stl.Model {
	model := stl.NewModel("test")
	// box area 2*(1*1) = 2
	model.AddTriangle(geometry.NewTriangle(vec(0, 0, 1), vec(0, 0, 0), vec(1, 0, 0), vec(0, 1, 0)))
	// box area 2*(2*3) = 12
	model.AddTriangle(geometry.NewTriangle(vec(0, 0, 1), vec(0, 0, 4), vec(2, 0, 4), vec(0, 3, 4)))
	// box area 2*(1*1 + 1*1 + 1*1) = 6
	model.AddTriangle(geometry.NewTriangle(vec(0, 0, 1), vec(1, 1, 1), vec(2, 1, 2), vec(1, 2, 2)))
	return model
}

func TestAnalyzeModel(t *testing.T) {
	report, err := AnalyzeModel(context.Background(), testModel(), 2)
	require.NoError(t, err)

	require.Equal(t, "test", report.Name)
	require.Equal(t, 3, report.TriangleCount)
	require.False(t, report.Empty)
	require.Equal(t, vec(0, 0, 0), report.Bounds.Min)
	require.Equal(t, vec(2, 3, 4), report.Bounds.Max)
	require.Equal(t, vec(1, 1.5, 2), report.Center)
	require.Equal(t, vec(2, 3, 4), report.Extent)
	require.InDelta(t, 52.0, report.SurfaceArea, 1e-10)
	require.InDelta(t, 24.0, report.Volume, 1e-10)
	require.Equal(t, 2, report.LongestAxis)
	require.InDelta(t, (2.0+12.0+6.0)/3.0, report.AvgFacetArea, 1e-10)
}

func TestAnalyzeEmptyModel(t *testing.T) {
	report, err := AnalyzeModel(context.Background(), stl.NewModel("none"), 4)
	require.NoError(t, err)

	require.True(t, report.Empty)
	require.Zero(t, report.TriangleCount)
	require.Zero(t, report.SurfaceArea)
	require.Equal(t, "(empty)", FormatBox(report.Bounds))
}

func TestAnalyzeModelInvalidWorkers(t *testing.T) {
	_, err := AnalyzeModel(context.Background(), testModel(), 0)
	require.Error(t, err)
}

func TestRankTriangleBoxes(t *testing.T) {
	model := testModel()

	largest := LargestTriangleBoxes(model, 2)
	require.Len(t, largest, 2)
	require.Equal(t, 1, largest[0].Index)
	require.Equal(t, 2, largest[1].Index)
	require.InDelta(t, 12.0, largest[0].Area, 1e-10)

	smallest := SmallestTriangleBoxes(model, 10)
	require.Len(t, smallest, 3)
	require.Equal(t, []int{0, 2, 1}, []int{smallest[0].Index, smallest[1].Index, smallest[2].Index})

	require.Empty(t, LargestTriangleBoxes(model, -1))
}

func TestMergeReports(t *testing.T) {
	a := &Report{Bounds: geometry.AABBFromMinMax(vec(0, 0, 0), vec(1, 1, 1))}
	b := &Report{Bounds: geometry.AABBFromMinMax(vec(2, 2, 2), vec(3, 3, 3))}
	empty := &Report{Bounds: geometry.NewAABB(), Empty: true}

	merged := MergeReports(a, empty, b)
	require.Equal(t, vec(0, 0, 0), merged.Min)
	require.Equal(t, vec(3, 3, 3), merged.Max)
	require.True(t, MergeReports().IsEmpty())
}

func TestFormat(t *testing.T) {
	require.Equal(t, "(1.000000, -2.500000, 0.000000)", FormatVector(vec(1, -2.5, 0)))
	require.Equal(t, "(0.000000, 0.000000, 0.000000) .. (1.000000, 1.000000, 1.000000)",
		FormatBox(geometry.AABBFromMinMax(vec(0, 0, 0), vec(1, 1, 1))))
	require.Equal(t, "Z", AxisName(2))
}
