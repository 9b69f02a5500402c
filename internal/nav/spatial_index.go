package nav

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// SeedEntry wraps a seed point for R-tree storage
type SeedEntry struct {
	ID    Node
	Point orb.Point
}

// Bounds implements rtreego.Spatial interface
func (s *SeedEntry) Bounds() rtreego.Rect {
	return rtreego.Point{s.Point.X(), s.Point.Y()}.ToRect(0)
}

// SeedIndex answers nearest-seed queries over a fixed seed set
type SeedIndex struct {
	tree  *rtreego.Rtree
	bound orb.Bound
}

// NewSeedIndex creates a new spatial index over the seeds
func NewSeedIndex(seeds []orb.Point) *SeedIndex {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node

	var bound orb.Bound
	for i, seed := range seeds {
		if i == 0 {
			bound = seed.Bound()
		} else {
			bound = bound.Extend(seed)
		}
		tree.Insert(&SeedEntry{ID: Node(i), Point: seed})
	}

	return &SeedIndex{tree: tree, bound: bound}
}

// Bound returns the bounding box of all seeds
func (si *SeedIndex) Bound() orb.Bound {
	return si.bound
}

// Nearest returns the seed closest to p after clamping p into the seed bound
func (si *SeedIndex) Nearest(p orb.Point) (Node, bool) {
	if si.tree.Size() == 0 {
		return 0, false
	}
	p = ClampPoint(p, si.bound)
	entry := si.tree.NearestNeighbor(rtreego.Point{p.X(), p.Y()})
	if entry == nil {
		return 0, false
	}
	return entry.(*SeedEntry).ID, true
}
