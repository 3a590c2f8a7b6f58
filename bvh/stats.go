package bvh

// Stats describes the structure of a built tree.
type Stats struct {
	Nodes       int
	Leafs       int
	MaxDepth    int
	TotalShapes int
}

// AvgLeafShapes returns the mean number of shapes per leaf.
func (s Stats) AvgLeafShapes() float64 {
	if s.Leafs == 0 {
		return 0
	}
	return float64(s.TotalShapes) / float64(s.Leafs)
}

// Stats walks the tree and collects structural statistics.
func (t *Tree) Stats() Stats {
	var s Stats
	t.root.collectStats(0, &s)
	return s
}

func (n *Node) collectStats(depth int, s *Stats) {
	s.Nodes++
	if depth > s.MaxDepth {
		s.MaxDepth = depth
	}

	if n.IsLeaf() {
		s.Leafs++
		s.TotalShapes += len(n.shapes)
		return
	}

	n.left.collectStats(depth+1, s)
	n.right.collectStats(depth+1, s)
}
