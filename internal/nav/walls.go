package nav

import (
	"slices"

	"github.com/paulmach/orb"
	"github.com/zyedidia/generic/mapset"
)

// Walls is a toggleable set of blocked nodes. Every node starts unblocked.
type Walls struct {
	set mapset.Set[Node]
}

// NewWalls creates an empty wall set, optionally pre-blocking nodes.
func NewWalls(blocked ...Node) *Walls {
	w := &Walls{set: mapset.New[Node]()}
	for _, n := range blocked {
		w.set.Put(n)
	}
	return w
}

// Toggle flips n and returns whether it is now blocked.
func (w *Walls) Toggle(n Node) bool {
	if w.set.Has(n) {
		w.set.Remove(n)
		return false
	}
	w.set.Put(n)
	return true
}

// Set blocks or unblocks n.
func (w *Walls) Set(n Node, blocked bool) {
	if blocked {
		w.set.Put(n)
	} else {
		w.set.Remove(n)
	}
}

func (w *Walls) IsBlocked(n Node) bool {
	return w.set.Has(n)
}

// Passable is the Traversable view of the wall set.
func (w *Walls) Passable(n Node) bool {
	return !w.set.Has(n)
}

func (w *Walls) Len() int {
	return w.set.Size()
}

// Blocked returns the blocked nodes in ascending order.
func (w *Walls) Blocked() []Node {
	nodes := make([]Node, 0, w.set.Size())
	w.set.Each(func(n Node) {
		nodes = append(nodes, n)
	})
	slices.Sort(nodes)
	return nodes
}

// BlockPolygons blocks every cell of g whose center lies inside one of the
// polygons and returns how many cells were newly blocked.
func (w *Walls) BlockPolygons(g *Grid, polygons []orb.Polygon) int {
	added := 0
	for i := 0; i < g.Len(); i++ {
		n := Node(i)
		if w.set.Has(n) {
			continue
		}
		if IsPointInPolygons(g.WorldPositionOf(n), polygons) {
			w.set.Put(n)
			added++
		}
	}
	return added
}
