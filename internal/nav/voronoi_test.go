package nav

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGraphMap(t *testing.T, threshold float64) *GraphMap {
	t.Helper()
	opts := DefaultGraphMapOptions()
	opts.Scale = 50
	opts.Threshold = threshold
	m, err := NewGraphMap(opts)
	require.NoError(t, err)
	return m
}

// hullNodes returns the seeds touching an open half-edge.
func hullNodes(m *GraphMap) map[Node]bool {
	hull := make(map[Node]bool)
	for e, opposite := range m.halfedges {
		if opposite == -1 {
			hull[Node(m.triangles[e])] = true
			hull[Node(m.triangles[nextHalfedge(e)])] = true
		}
	}
	return hull
}

func edgeSet(m *GraphMap) map[[2]Node]bool {
	set := make(map[[2]Node]bool)
	for _, e := range m.Edges() {
		set[e] = true
		set[[2]Node{e[1], e[0]}] = true
	}
	return set
}

func TestGraphMapConstruction(t *testing.T) {
	m := newTestGraphMap(t, 0.75)

	assert.Equal(t, 16*16, m.Len())
	assert.Equal(t, m.NumTriangles()*3, m.NumEdges())
	assert.Len(t, m.Centroids(), m.NumTriangles())

	for i := 0; i < m.Len(); i++ {
		n := Node(i)
		assert.GreaterOrEqual(t, m.Elevation(n), 0.0)
		assert.LessOrEqual(t, m.Elevation(n), 1.0)
		assert.GreaterOrEqual(t, m.Moisture(n), 0.0)
		assert.LessOrEqual(t, m.Moisture(n), 1.0)
		assert.Equal(t, m.Elevation(n) > 0.75, m.Blocked(n))
	}
}

func TestGraphMapDeterministic(t *testing.T) {
	a := newTestGraphMap(t, 0.75)
	b := newTestGraphMap(t, 0.75)

	assert.Equal(t, a.Seeds(), b.Seeds())
	assert.Equal(t, a.elevation, b.elevation)
	assert.Equal(t, a.adjacency, b.adjacency)
}

func TestGraphMapNodeAt(t *testing.T) {
	m := newTestGraphMap(t, 0.75)

	for i := 0; i < m.Len(); i++ {
		n := Node(i)
		assert.Equal(t, n, m.NodeAt(m.WorldPositionOf(n)))
	}

	far := orb.Point{1e6, -1e6}
	assert.Equal(t, m.NodeAt(ClampPoint(far, m.Bound())), m.NodeAt(far))
	assert.Equal(t, m.NodeAt(far), m.NodeAt(far))
}

func TestGraphMapAdjacency(t *testing.T) {
	m := newTestGraphMap(t, 0.75)
	edges := edgeSet(m)
	hull := hullNodes(m)

	for i := 0; i < m.Len(); i++ {
		a := Node(i)
		for _, b := range m.Neighbors(a) {
			assert.True(t, edges[[2]Node{a, b}], "%d -> %d is not a Delaunay edge", a, b)
			if !hull[a] && !hull[b] {
				assert.Contains(t, m.Neighbors(b), a, "interior adjacency must be symmetric")
			}
		}
		if !hull[a] {
			assert.GreaterOrEqual(t, len(m.Neighbors(a)), 3)
		}
	}
}

func TestGraphMapBoundaryGap(t *testing.T) {
	seeds := []orb.Point{{0, 0}, {10, 0}, {0, 10}, {10, 10}, {5, 4}}
	m, err := NewGraphMapFromSeeds(seeds, GraphMapOptions{Threshold: 2})
	require.NoError(t, err)

	center := Node(4)
	assert.ElementsMatch(t, []Node{0, 1, 2, 3}, m.Neighbors(center))

	edges := edgeSet(m)
	for _, corner := range []Node{0, 1, 2, 3} {
		neighbors := m.Neighbors(corner)
		assert.NotEmpty(t, neighbors)
		assert.Contains(t, neighbors, center)
		for _, n := range neighbors {
			assert.True(t, edges[[2]Node{corner, n}])
		}
	}
}

func TestGraphMapFindPath(t *testing.T) {
	m := newTestGraphMap(t, 2)
	from := m.NodeAt(orb.Point{100, 100})
	to := m.NodeAt(orb.Point{650, 600})
	require.False(t, hullNodes(m)[from] || hullNodes(m)[to])

	path := m.Map().FindPath(orb.Point{100, 100}, orb.Point{650, 600})
	require.NotEmpty(t, path)
	assert.Equal(t, to, path[0])
	assert.False(t, path.Contains(from))

	prev := from
	cost := 0.0
	for _, n := range path.TravelOrder() {
		assert.Contains(t, m.Neighbors(prev), n)
		cost += m.Cost(prev, n)
		prev = n
	}
	assert.GreaterOrEqual(t, cost, m.Heuristic(from, to))
}

func TestGraphMapAllBlocked(t *testing.T) {
	m := newTestGraphMap(t, -1)
	from := m.NodeAt(orb.Point{0, 0})
	to := m.NodeAt(orb.Point{750, 750})

	assert.Empty(t, FindPath(m, m.Passable, from, to))
	assert.Empty(t, FindPath(m, m.Passable, from, from))
}

func TestGraphMapInvalidOptions(t *testing.T) {
	_, err := NewGraphMap(GraphMapOptions{Size: 0})
	assert.Error(t, err)

	_, err = NewGraphMapFromSeeds([]orb.Point{{0, 0}, {1, 1}}, GraphMapOptions{})
	assert.Error(t, err)
}
