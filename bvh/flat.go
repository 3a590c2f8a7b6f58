package bvh

import "github.com/tavianator/bvh/types"

// FlatNode is a tree node packed into 32 bytes for consumers that want the
// hierarchy as a contiguous array, e.g. for upload to a compute device.
// The W components of Min and Max carry the links:
//
// If this is an inner node then Min W is > 0 and contains the index of the
// left child while Max W contains the index of the right child. If this is
// a leaf then Min W is <= 0 and contains the negated offset of the leaf's
// first shape slot while Max W contains the negated shape count.
type FlatNode struct {
	Min types.Vec4
	Max types.Vec4
}

// SetBBox sets the node bounds without touching the links.
func (n *FlatNode) SetBBox(bounds AABB) {
	n.Min[0], n.Min[1], n.Min[2] = bounds.Min[0], bounds.Min[1], bounds.Min[2]
	n.Max[0], n.Max[1], n.Max[2] = bounds.Max[0], bounds.Max[1], bounds.Max[2]
}

// BBox returns the node bounds.
func (n *FlatNode) BBox() AABB {
	return AABB{
		Min: n.Min.Vec3(),
		Max: n.Max.Vec3(),
	}
}

// IsLeaf checks whether the node encodes a leaf.
func (n *FlatNode) IsLeaf() bool {
	return n.Min[3] <= 0
}

// SetChildNodes links an inner node to its children.
func (n *FlatNode) SetChildNodes(left, right int) {
	n.Min[3] = float32(left)
	n.Max[3] = float32(right)
}

// ChildNodes returns the child indices of an inner node.
func (n *FlatNode) ChildNodes() (left, right int) {
	return int(n.Min[3]), int(n.Max[3])
}

// SetShapes records the shape slot range of a leaf.
func (n *FlatNode) SetShapes(firstSlot, count int) {
	n.Min[3] = -float32(firstSlot)
	n.Max[3] = -float32(count)
}

// ShapeSlots returns the slot offset and count of a leaf.
func (n *FlatNode) ShapeSlots() (firstSlot, count int) {
	return int(-n.Min[3]), int(-n.Max[3])
}

// Flatten packs the tree into a flat node array plus a shape slot array.
// nodes[0] is the root; every leaf's shape indices are stored contiguously
// in slots and referenced by offset and count. The recursive tree stores
// bounds only on the parent side, so the root bounds are recomputed from
// shapes here; all other nodes take the bounds their parent recorded at
// split time. The flat form is a projection of the tree, not a
// serialization format.
func (t *Tree) Flatten(shapes []Bounded) (nodes []FlatNode, slots []int) {
	f := &flattener{
		nodes: make([]FlatNode, 0),
		slots: make([]int, 0),
	}
	f.flatten(t.root, t.root.bounds(shapes))
	return f.nodes, f.slots
}

type flattener struct {
	nodes []FlatNode
	slots []int
}

// flatten appends n and its subtree in depth-first order and returns the
// index assigned to n. Children always land at indices greater than their
// parent, so child links are strictly positive and cannot collide with the
// leaf encoding.
func (f *flattener) flatten(n *Node, bounds AABB) int {
	nodeIndex := len(f.nodes)
	f.nodes = append(f.nodes, FlatNode{})
	f.nodes[nodeIndex].SetBBox(bounds)

	if n.IsLeaf() {
		firstSlot := len(f.slots)
		f.slots = append(f.slots, n.shapes...)
		f.nodes[nodeIndex].SetShapes(firstSlot, len(n.shapes))
		return nodeIndex
	}

	left := f.flatten(n.left, n.leftBounds)
	right := f.flatten(n.right, n.rightBounds)
	f.nodes[nodeIndex].SetChildNodes(left, right)
	return nodeIndex
}

// bounds computes the subtree bounds. Only the root ever needs this; every
// other node's bounds were fixed by its parent at split time.
func (n *Node) bounds(shapes []Bounded) AABB {
	if n.IsLeaf() {
		box := EmptyAABB()
		for _, idx := range n.shapes {
			box = box.Join(shapes[idx].BBox())
		}
		return box
	}
	return n.leftBounds.Join(n.rightBounds)
}
