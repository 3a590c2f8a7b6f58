package bvh

import (
	"testing"

	"github.com/tavianator/bvh/types"
)

// compareFlat walks the flat array and the recursive tree in lockstep.
func compareFlat(t *testing.T, nodes []FlatNode, slots []int, idx int, n *Node, bounds AABB) {
	flat := &nodes[idx]

	if flat.BBox() != bounds {
		t.Fatalf("node %d: expected bounds %v; got %v", idx, bounds, flat.BBox())
	}
	if flat.IsLeaf() != n.IsLeaf() {
		t.Fatalf("node %d: leaf/inner mismatch with the recursive tree", idx)
	}

	if n.IsLeaf() {
		firstSlot, count := flat.ShapeSlots()
		if count != len(n.Shapes()) {
			t.Fatalf("node %d: expected %d shape slots; got %d", idx, len(n.Shapes()), count)
		}
		for i, want := range n.Shapes() {
			if got := slots[firstSlot+i]; got != want {
				t.Fatalf("node %d: expected shape %d in slot %d; got %d", idx, want, firstSlot+i, got)
			}
		}
		return
	}

	left, right := flat.ChildNodes()
	if left <= idx || right <= idx {
		t.Fatalf("node %d: expected children after their parent; got %d and %d", idx, left, right)
	}
	compareFlat(t, nodes, slots, left, n.left, n.leftBounds)
	compareFlat(t, nodes, slots, right, n.right, n.rightBounds)
}

func TestFlatten(t *testing.T) {
	shapes := randomShapes(200, 21)
	tree := Build(shapes)

	nodes, slots := tree.Flatten(shapes)

	stats := tree.Stats()
	if len(nodes) != stats.Nodes {
		t.Fatalf("expected %d flat nodes; got %d", stats.Nodes, len(nodes))
	}
	if len(slots) != len(shapes) {
		t.Fatalf("expected %d shape slots; got %d", len(shapes), len(slots))
	}

	occurrences := make([]int, len(shapes))
	for _, idx := range slots {
		occurrences[idx]++
	}
	for idx, count := range occurrences {
		if count != 1 {
			t.Fatalf("expected shape %d in exactly one slot; found %d times", idx, count)
		}
	}

	// The root bounds must cover the whole scene.
	rootBounds := nodes[0].BBox()
	for idx, shape := range shapes {
		if !rootBounds.ContainsAABB(shape.BBox()) {
			t.Fatalf("expected root bounds to contain shape %d", idx)
		}
	}

	compareFlat(t, nodes, slots, 0, tree.Root(), tree.Root().bounds(shapes))
}

func TestFlattenSingleLeaf(t *testing.T) {
	shapes := diagonalShapes(3)
	tree := Build(shapes)

	nodes, slots := tree.Flatten(shapes)
	if len(nodes) != 1 {
		t.Fatalf("expected one flat node for a leaf-only tree; got %d", len(nodes))
	}
	if !nodes[0].IsLeaf() {
		t.Fatalf("expected the single flat node to be a leaf")
	}

	firstSlot, count := nodes[0].ShapeSlots()
	if firstSlot != 0 || count != 3 {
		t.Fatalf("expected slots [0, 3); got offset %d count %d", firstSlot, count)
	}
	if slots[0] != 0 || slots[1] != 1 || slots[2] != 2 {
		t.Fatalf("expected identity slots; got %v", slots)
	}

	want := NewAABB(types.XYZ(-1, -1, -1), types.XYZ(3, 3, 3))
	if got := nodes[0].BBox(); got != want {
		t.Fatalf("expected root bounds %v; got %v", want, got)
	}
}
