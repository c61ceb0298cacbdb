package stl

import (
	"github.com/philipparndt/gobounds/pkg/geometry"
)

// Model represents a complete STL model
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// TriangleBounds returns one bounding box per facet, in facet order.
func (m *Model) TriangleBounds() []geometry.AABB {
	boxes := make([]geometry.AABB, len(m.Triangles))
	for i, triangle := range m.Triangles {
		boxes[i] = triangle.Bounds()
	}
	return boxes
}

// BoundingBox folds the facet boxes of the model into one box.
// A model without triangles returns the empty box.
func (m *Model) BoundingBox() geometry.AABB {
	bbox := geometry.NewAABB()
	for _, triangle := range m.Triangles {
		bbox.Expand(triangle.Bounds())
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the mesh
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}
