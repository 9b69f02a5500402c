package nav

import (
	"slices"

	"github.com/paulmach/orb"
)

// Node identifies one discretized map location (a grid cell or a seed region).
type Node int

// SpatialIndex maps world positions to nodes and back.
type SpatialIndex interface {
	// NodeAt clamps p into the index's span and returns the node covering it.
	NodeAt(p orb.Point) Node
	WorldPositionOf(n Node) orb.Point
}

// Adjacency yields the nodes directly reachable from n, ignoring obstacles.
type Adjacency interface {
	Neighbors(n Node) []Node
}

// Metric prices a single edge and estimates the remaining distance to a goal.
type Metric interface {
	Cost(from, to Node) float64
	Heuristic(from, goal Node) float64
}

// Graph is what the planner searches over.
type Graph interface {
	Adjacency
	Metric
}

// Traversable reports whether the search may enter n.
type Traversable func(n Node) bool

// Path is the result of one planner invocation.
//
// The start node is excluded and the goal node included. Elements are stored
// goal-first: p[0] is the goal and p[len(p)-1] is the step adjacent to the
// start. Use Next for the first step to take, or TravelOrder for a
// start-first copy.
type Path []Node

// Next returns the first node to travel to.
func (p Path) Next() (Node, bool) {
	if len(p) == 0 {
		return 0, false
	}
	return p[len(p)-1], true
}

// Goal returns the final node of the path.
func (p Path) Goal() (Node, bool) {
	if len(p) == 0 {
		return 0, false
	}
	return p[0], true
}

// TravelOrder returns a start-first copy of the path.
func (p Path) TravelOrder() []Node {
	out := slices.Clone([]Node(p))
	slices.Reverse(out)
	return out
}

// Contains reports whether n lies on the path.
func (p Path) Contains(n Node) bool {
	return slices.Contains(p, n)
}

// Map bundles a spatial index, a searchable graph and the traversability
// predicate consulted while expanding edges.
type Map struct {
	Index    SpatialIndex
	Graph    Graph
	Passable Traversable
}

// FindPath plans between two world positions.
func (m Map) FindPath(from, to orb.Point) Path {
	return FindPath(m.Graph, m.Passable, m.Index.NodeAt(from), m.Index.NodeAt(to))
}
