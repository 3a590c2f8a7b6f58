package bvh

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/tavianator/bvh/log"
)

const (
	// Partitions with this many shapes or fewer become leaves directly;
	// a linear scan over such a group is cheaper than further splits.
	maxLeafShapes = 5

	// The builder stops splitting when the shape centroids span less than
	// this along their widest axis. Binning near-coincident centroids
	// separates nothing and could recurse without shrinking.
	minCentroidExtent float32 = 1e-5

	// Number of fixed bins used to approximate the SAH-optimal split.
	numBuckets = 6
)

var logger = log.New("builder")

// The Bounded interface is implemented by all shapes that can be
// partitioned by the builder. BBox must be pure: it is queried repeatedly
// during construction and once more per candidate during traversal.
type Bounded interface {
	BBox() AABB
}

// Node is a node of a bounding volume hierarchy. A leaf holds the indices
// of the shapes routed to it; an inner node holds its two subtrees together
// with each subtree's bounds, fixed at the moment of the split. No node
// stores bounds for itself, so a ray missing the whole tree pays two box
// tests at the root instead of one, but traversal only ever touches nodes
// whose bounds were actually hit.
type Node struct {
	leftBounds  AABB
	left        *Node
	rightBounds AABB
	right       *Node

	// Shape indices for leaf nodes; nil for inner nodes.
	shapes []int
}

// IsLeaf checks whether the node is a leaf.
func (n *Node) IsLeaf() bool {
	return n.shapes != nil
}

// Shapes returns the shape indices held by a leaf node.
func (n *Node) Shapes() []int {
	return n.shapes
}

func newLeaf(indices []int) *Node {
	if indices == nil {
		indices = []int{}
	}
	return &Node{shapes: indices}
}

// A bucket accumulates the shape count and bounds union of one spatial bin.
type bucket struct {
	size int
	aabb AABB
}

// Returns an empty bucket.
func emptyBucket() bucket {
	return bucket{aabb: EmptyAABB()}
}

// Extend the bucket by one shape bounding box.
func (b *bucket) addAABB(aabb AABB) {
	b.size++
	b.aabb = b.aabb.Join(aabb)
}

// Join two buckets.
func joinBuckets(a, b bucket) bucket {
	return bucket{
		size: a.size + b.size,
		aabb: a.aabb.Join(b.aabb),
	}
}

// buildNode recursively partitions indices into a subtree using binned SAH
// splits. indices is the exact set of shape indices the returned subtree
// must hold; every index ends up in exactly one descendant leaf. The result
// is deterministic given the shape bounds and the order of indices.
func buildNode(shapes []Bounded, indices []int) *Node {
	// Accumulate the union of the shape bounds and the union of their
	// centroids in a single pass.
	boundsUnion := EmptyAABB()
	centroidUnion := EmptyAABB()
	for _, idx := range indices {
		shapeBox := shapes[idx].BBox()
		boundsUnion = boundsUnion.Join(shapeBox)
		centroidUnion = centroidUnion.Grow(shapeBox.Center())
	}

	if len(indices) <= maxLeafShapes {
		return newLeaf(indices)
	}

	splitAxis := centroidUnion.LargestAxis()
	splitExtent := centroidUnion.Extent(splitAxis)
	if splitExtent < minCentroidExtent {
		return newLeaf(indices)
	}

	// Bin each shape by the relative position of its centroid along the
	// split axis. relative lands in [0, 1]; the 0.01 shaved off the scale
	// factor keeps the topmost centroid inside the last bucket instead of
	// overflowing it. Changing this factor changes bucket assignment and
	// therefore tree shape.
	var buckets [numBuckets]bucket
	var bucketIndices [numBuckets][]int
	for i := range buckets {
		buckets[i] = emptyBucket()
	}
	for _, idx := range indices {
		shapeBox := shapes[idx].BBox()
		relative := (shapeBox.Center()[splitAxis] - centroidUnion.Min[splitAxis]) / splitExtent
		bucketNum := int(relative * (numBuckets - 0.01))

		buckets[bucketNum].addAABB(shapeBox)
		bucketIndices[bucketNum] = append(bucketIndices[bucketNum], idx)
	}

	// Score every bucket boundary with the surface area heuristic and keep
	// the first cheapest one. A boundary that leaves one side empty scores
	// NaN (zero count times unbounded area) and is never selected; at least
	// two buckets are populated here, so some boundary always wins.
	minBucket := 0
	minCost := float32(math.Inf(1))
	leftBounds := EmptyAABB()
	rightBounds := EmptyAABB()
	for i := 0; i < numBuckets-1; i++ {
		childL := emptyBucket()
		for _, b := range buckets[:i+1] {
			childL = joinBuckets(childL, b)
		}
		childR := emptyBucket()
		for _, b := range buckets[i+1:] {
			childR = joinBuckets(childR, b)
		}

		cost := (float32(childL.size)*childL.aabb.SurfaceArea() +
			float32(childR.size)*childR.aabb.SurfaceArea()) /
			boundsUnion.SurfaceArea()
		if cost < minCost {
			minBucket = i
			minCost = cost
			leftBounds = childL.aabb
			rightBounds = childR.aabb
		}
	}

	// Concatenate the bucket index lists on each side of the winning
	// boundary and recurse.
	var leftIndices, rightIndices []int
	for _, list := range bucketIndices[:minBucket+1] {
		leftIndices = append(leftIndices, list...)
	}
	for _, list := range bucketIndices[minBucket+1:] {
		rightIndices = append(rightIndices, list...)
	}

	return &Node{
		leftBounds:  leftBounds,
		left:        buildNode(shapes, leftIndices),
		rightBounds: rightBounds,
		right:       buildNode(shapes, rightIndices),
	}
}

// traverse appends to out the indices of every leaf whose ancestor bounds
// chain the ray hit. Both children of an inner node are tested; their
// bounds may overlap and the ray can enter both.
func (n *Node) traverse(ray *Ray, out *[]int) {
	if n.IsLeaf() {
		*out = append(*out, n.shapes...)
		return
	}
	if ray.IntersectsAABB(n.leftBounds) {
		n.left.traverse(ray, out)
	}
	if ray.IntersectsAABB(n.rightBounds) {
		n.right.traverse(ray, out)
	}
}

// TraverseIndices returns the indices of every shape the ray might hit.
// The result is a superset of the shapes whose own bounds the ray actually
// intersects: leaf members only inherited their ancestors' box tests.
func (n *Node) TraverseIndices(ray *Ray) []int {
	indices := make([]int, 0)
	n.traverse(ray, &indices)
	return indices
}

// prettyPrint writes a textual walk of the subtree, indented by depth.
func (n *Node) prettyPrint(w io.Writer, depth int) {
	padding := strings.Repeat(" ", depth)
	if n.IsLeaf() {
		fmt.Fprintf(w, "%sshapes\t%v\n", padding, n.shapes)
		return
	}
	fmt.Fprintf(w, "%sleft\n", padding)
	n.left.prettyPrint(w, depth+1)
	fmt.Fprintf(w, "%sright\n", padding)
	n.right.prettyPrint(w, depth+1)
}

// Tree is a bounding volume hierarchy over a shape collection. It holds
// only the root node; shape data stays with the caller and is addressed by
// index. Once built the tree is immutable, so any number of concurrent
// traversals may run against it without synchronization.
type Tree struct {
	root *Node
}

// Build constructs a tree over shapes using binned SAH partitioning.
// Building is a pure function of the shape bounds; rebuilding replaces the
// whole tree. An empty collection yields a single empty leaf.
func Build(shapes []Bounded) *Tree {
	indices := make([]int, len(shapes))
	for i := range indices {
		indices[i] = i
	}

	start := time.Now()
	tree := &Tree{root: buildNode(shapes, indices)}

	s := tree.Stats()
	logger.Debugf(
		"tree build time: %d ms, maxDepth: %d, nodes: %d, leafs: %d",
		time.Since(start).Nanoseconds()/1e6,
		s.MaxDepth, s.Nodes, s.Leafs,
	)
	return tree
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	return t.root
}

// TraverseIndices returns the candidate shape indices for the ray. See
// Node.TraverseIndices.
func (t *Tree) TraverseIndices(ray *Ray) []int {
	return t.root.TraverseIndices(ray)
}

// Traverse returns references to the shapes whose bounding boxes the ray
// intersects. The candidate set from the tree walk is re-tested against
// each shape's own bounds, so the result is exact regardless of tree
// shape. Output order follows the tree walk (left subtree first), not
// distance along the ray.
func (t *Tree) Traverse(ray *Ray, shapes []Bounded) []Bounded {
	indices := t.root.TraverseIndices(ray)
	hit := make([]Bounded, 0, len(indices))
	for _, idx := range indices {
		if ray.IntersectsAABB(shapes[idx].BBox()) {
			hit = append(hit, shapes[idx])
		}
	}
	return hit
}

// PrettyPrint writes a tree-like visualization of the hierarchy to w. For
// debugging only; the output format carries no compatibility promise.
func (t *Tree) PrettyPrint(w io.Writer) {
	t.root.prettyPrint(w, 0)
}
