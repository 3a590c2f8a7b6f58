package cmd

import (
	"github.com/tavianator/bvh/bvh"
	"github.com/tavianator/bvh/types"
)

// Cube is an axis-aligned cube serving as the generated benchmark shape.
type Cube struct {
	bbox bvh.AABB
}

func (c *Cube) BBox() bvh.AABB {
	return c.bbox
}

// Generate count unit half-extent cubes centered at the integer points
// (0,0,0), (1,1,1), ... along the main diagonal. Adjacent cubes overlap,
// so a diagonal ray sweeps through every one of them.
func diagonalScene(count int) []bvh.Bounded {
	offset := types.XYZ(1, 1, 1)
	shapes := make([]bvh.Bounded, count)
	for i := 0; i < count; i++ {
		pos := types.XYZ(float32(i), float32(i), float32(i))
		shapes[i] = &Cube{
			bbox: bvh.NewAABB(pos.Sub(offset), pos.Add(offset)),
		}
	}
	return shapes
}
