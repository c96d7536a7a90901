package spatial

// Stats summarises the shape of a tree
type Stats struct {
	Nodes    int `json:"nodes" yaml:"nodes"`
	Leaves   int `json:"leaves" yaml:"leaves"`
	MaxDepth int `json:"max_depth" yaml:"max_depth"`
	Objects  int `json:"objects" yaml:"objects"`
	// Stored counts leaf slots, so an object in several leaves counts once
	// per leaf.
	Stored int `json:"stored" yaml:"stored"`
}

// Stats walks the subtree and collects node and entry counts
func (qt *QuadTree[K]) Stats() Stats {
	var s Stats
	qt.Walk(func(node *QuadTree[K]) bool {
		s.Nodes++
		if node.IsLeaf() {
			s.Leaves++
			s.Stored += len(node.entries)
		}
		s.MaxDepth = max(s.MaxDepth, node.depth)
		return true
	})
	s.Objects = qt.NumObjects()
	return s
}
