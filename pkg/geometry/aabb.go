package geometry

import "math"

// AABB is an axis-aligned bounding box spanning Min to Max.
//
// The zero value is a degenerate box at the origin, not an empty box. Use
// NewAABB to start an accumulation.
type AABB struct {
	Min Vector3
	Max Vector3
}

// NewAABB returns the empty box: Min is +MaxFloat64 and Max is -MaxFloat64 on
// every axis. It is the identity for Expand, so folding any number of boxes
// into it yields their union. Metrics of the empty box are meaningless.
func NewAABB() AABB {
	return AABB{
		Min: Splat(math.MaxFloat64),
		Max: Splat(-math.MaxFloat64),
	}
}

// AABBFromMinMax returns a box with the given corners. The corners are not
// checked; an inverted pair gives an inverted box.
func AABBFromMinMax(min, max Vector3) AABB {
	return AABB{Min: min, Max: max}
}

// AABBFromCenterExtent returns a box of full size extent centered on center.
func AABBFromCenterExtent(center, extent Vector3) AABB {
	half := extent.Div(2.0)
	return AABB{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

// AABBFromVertices returns the tightest box containing the three vertices of
// a triangle. Each axis is bounded independently.
func AABBFromVertices(v0, v1, v2 Vector3) AABB {
	return AABB{
		Min: v0.Min(v1).Min(v2),
		Max: v0.Max(v1).Max(v2),
	}
}

// Expand grows b in place to the smallest box containing both b and other.
func (b *AABB) Expand(other AABB) {
	if other.Min.X < b.Min.X {
		b.Min.X = other.Min.X
	}
	if other.Min.Y < b.Min.Y {
		b.Min.Y = other.Min.Y
	}
	if other.Min.Z < b.Min.Z {
		b.Min.Z = other.Min.Z
	}

	if other.Max.X > b.Max.X {
		b.Max.X = other.Max.X
	}
	if other.Max.Y > b.Max.Y {
		b.Max.Y = other.Max.Y
	}
	if other.Max.Z > b.Max.Z {
		b.Max.Z = other.Max.Z
	}
}

// ExpandPoint grows b in place to include point.
func (b *AABB) ExpandPoint(point Vector3) {
	b.Expand(AABB{Min: point, Max: point})
}

// Union returns the smallest box containing both b and other, leaving b
// unchanged.
func (b AABB) Union(other AABB) AABB {
	b.Expand(other)
	return b
}

// IsEmpty reports whether Max is below Min on any axis, which is the case for
// the box returned by NewAABB.
func (b AABB) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

// Center returns the midpoint of the box.
func (b AABB) Center() Vector3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Extent returns the size of the box along each axis.
func (b AABB) Extent() Vector3 {
	return b.Max.Sub(b.Min)
}

// SurfaceArea returns the total area of the six faces of the box.
func (b AABB) SurfaceArea() float64 {
	e := b.Extent()
	return 2.0 * (e.X*e.Y + e.Z*e.Y + e.X*e.Z)
}

// Volume returns the volume of the box
func (b AABB) Volume() float64 {
	e := b.Extent()
	return e.X * e.Y * e.Z
}

// Diagonal returns the length of the box diagonal
func (b AABB) Diagonal() float64 {
	return b.Extent().Length()
}

// LongestAxis returns 0, 1 or 2 for the axis with the largest extent.
// Ties go to the lower axis.
func (b AABB) LongestAxis() int {
	e := b.Extent()
	axis := 0
	if e.Y > e.Axis(axis) {
		axis = 1
	}
	if e.Z > e.Axis(axis) {
		axis = 2
	}
	return axis
}

// Contains reports whether point lies inside the box or on its boundary.
func (b AABB) Contains(point Vector3) bool {
	return point.X >= b.Min.X && point.X <= b.Max.X &&
		point.Y >= b.Min.Y && point.Y <= b.Max.Y &&
		point.Z >= b.Min.Z && point.Z <= b.Max.Z
}
