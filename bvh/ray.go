package bvh

import "github.com/tavianator/bvh/types"

// Ray is a half line described by an origin and a unit direction. The
// reciprocal direction and its per-axis signs are precomputed once so the
// box test below runs without branching on direction components.
type Ray struct {
	Origin    types.Vec3
	Direction types.Vec3

	invDir types.Vec3
	sign   [3]int
}

// Create a ray. The direction is normalized.
func NewRay(origin, direction types.Vec3) *Ray {
	r := &Ray{
		Origin:    origin,
		Direction: direction.Normalize(),
	}
	for axis := 0; axis < 3; axis++ {
		r.invDir[axis] = 1.0 / r.Direction[axis]
		if r.invDir[axis] < 0 {
			r.sign[axis] = 1
		}
	}
	return r
}

// IntersectsAABB runs a slab test against the box: the ray's entry/exit
// parameters are intersected across the three axis slabs, selecting each
// slab's near plane by the precomputed direction sign. Boxes entirely
// behind the ray origin do not count as hits.
func (r *Ray) IntersectsAABB(box AABB) bool {
	bounds := [2]types.Vec3{box.Min, box.Max}

	tMin := (bounds[r.sign[0]][0] - r.Origin[0]) * r.invDir[0]
	tMax := (bounds[1-r.sign[0]][0] - r.Origin[0]) * r.invDir[0]

	tyMin := (bounds[r.sign[1]][1] - r.Origin[1]) * r.invDir[1]
	tyMax := (bounds[1-r.sign[1]][1] - r.Origin[1]) * r.invDir[1]

	if tMin > tyMax || tyMin > tMax {
		return false
	}
	if tyMin > tMin {
		tMin = tyMin
	}
	if tyMax < tMax {
		tMax = tyMax
	}

	tzMin := (bounds[r.sign[2]][2] - r.Origin[2]) * r.invDir[2]
	tzMax := (bounds[1-r.sign[2]][2] - r.Origin[2]) * r.invDir[2]

	if tMin > tzMax || tzMin > tMax {
		return false
	}
	if tzMax < tMax {
		tMax = tzMax
	}

	return tMax >= 0
}
