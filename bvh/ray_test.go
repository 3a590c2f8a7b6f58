package bvh

import (
	"testing"

	"github.com/tavianator/bvh/types"
)

func TestNewRayNormalizesDirection(t *testing.T) {
	ray := NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, 10))
	if ray.Direction != types.XYZ(0, 0, 1) {
		t.Fatalf("expected normalized direction (0 0 1); got %v", ray.Direction)
	}
}

func TestRayIntersectsAABB(t *testing.T) {
	box := NewAABB(types.XYZ(1, 1, 1), types.XYZ(2, 2, 2))

	cases := []struct {
		name      string
		origin    types.Vec3
		direction types.Vec3
		want      bool
	}{
		{"axis ray through the box", types.XYZ(0, 1.5, 1.5), types.XYZ(1, 0, 0), true},
		{"diagonal ray through the box", types.XYZ(0, 0, 0), types.XYZ(1, 1, 1), true},
		{"ray pointing away from the box", types.XYZ(4, 1.5, 1.5), types.XYZ(1, 0, 0), false},
		{"negative direction toward the box", types.XYZ(4, 1.5, 1.5), types.XYZ(-1, 0, 0), true},
		{"origin inside the box", types.XYZ(1.5, 1.5, 1.5), types.XYZ(1, 0, 0), true},
		{"parallel ray beside the box", types.XYZ(0, 5, 1.5), types.XYZ(1, 0, 0), false},
		{"ray passing over the box", types.XYZ(0, 3, 1.5), types.XYZ(1, 0.1, 0), false},
		{"ray grazing toward a corner", types.XYZ(0, 0, 1.5), types.XYZ(1, 1, 0), true},
	}

	for _, c := range cases {
		ray := NewRay(c.origin, c.direction)
		if got := ray.IntersectsAABB(box); got != c.want {
			t.Fatalf("%s: expected %t; got %t", c.name, c.want, got)
		}
	}
}

func TestRayIntersectsAABBNegativeAxes(t *testing.T) {
	box := NewAABB(types.XYZ(-2, -2, -2), types.XYZ(-1, -1, -1))

	hit := NewRay(types.XYZ(0, 0, 0), types.XYZ(-1, -1, -1))
	if !hit.IntersectsAABB(box) {
		t.Fatalf("expected ray along the negative diagonal to hit the box")
	}

	miss := NewRay(types.XYZ(0, 0, 0), types.XYZ(1, 1, 1))
	if miss.IntersectsAABB(box) {
		t.Fatalf("expected ray along the positive diagonal to miss the box")
	}
}
