package bvh

import (
	"math"

	"github.com/tavianator/bvh/types"
)

// Axis selects one of the three coordinate axes. It doubles as an index
// into Vec3 components.
type Axis uint8

const (
	XAxis Axis = iota
	YAxis
	ZAxis
)

// AABB is an axis-aligned bounding box described by its two extreme corners.
type AABB struct {
	Min types.Vec3
	Max types.Vec3
}

// Create an AABB from its two extreme corners.
func NewAABB(min, max types.Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// EmptyAABB returns the identity element for Join and Grow: combining it
// with any box yields that box unchanged.
func EmptyAABB() AABB {
	return AABB{
		Min: types.Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32},
		Max: types.Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32},
	}
}

// Join returns the smallest box enclosing both a and other.
func (a AABB) Join(other AABB) AABB {
	return AABB{
		Min: types.MinVec3(a.Min, other.Min),
		Max: types.MaxVec3(a.Max, other.Max),
	}
}

// Grow returns the smallest box enclosing a and the point p.
func (a AABB) Grow(p types.Vec3) AABB {
	return AABB{
		Min: types.MinVec3(a.Min, p),
		Max: types.MaxVec3(a.Max, p),
	}
}

// Center returns the box centroid.
func (a AABB) Center() types.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// Size returns the box extent along each axis.
func (a AABB) Size() types.Vec3 {
	return a.Max.Sub(a.Min)
}

// Extent returns the box extent along a single axis.
func (a AABB) Extent(axis Axis) float32 {
	return a.Max[axis] - a.Min[axis]
}

// SurfaceArea returns the total area of the six box faces.
func (a AABB) SurfaceArea() float32 {
	side := a.Size()
	return 2 * (side[0]*side[1] + side[1]*side[2] + side[0]*side[2])
}

// LargestAxis returns the axis along which the box is widest.
func (a AABB) LargestAxis() Axis {
	side := a.Size()
	if side[0] > side[1] && side[0] > side[2] {
		return XAxis
	}
	if side[1] > side[2] {
		return YAxis
	}
	return ZAxis
}

// ContainsPoint checks whether p lies inside the box.
func (a AABB) ContainsPoint(p types.Vec3) bool {
	return p[0] >= a.Min[0] && p[0] <= a.Max[0] &&
		p[1] >= a.Min[1] && p[1] <= a.Max[1] &&
		p[2] >= a.Min[2] && p[2] <= a.Max[2]
}

// ContainsAABB checks whether other lies entirely inside the box.
func (a AABB) ContainsAABB(other AABB) bool {
	return a.ContainsPoint(other.Min) && a.ContainsPoint(other.Max)
}
