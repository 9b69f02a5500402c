package nav

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/fogleman/delaunay"
	"github.com/ojrac/opensimplex-go"
	"github.com/paulmach/orb"
	"github.com/tanema/gween/ease"
)

// GraphMapOptions controls procedural construction of a GraphMap.
type GraphMapOptions struct {
	// Size is the number of jittered grid steps per axis; Size+1 seeds are
	// placed along each axis.
	Size   int
	Jitter float64
	// Scale converts seed-grid units into world units.
	Scale float64
	// Seed drives jitter and noise so a map can be rebuilt exactly.
	Seed int64
	// Threshold is the elevation above which a region is impassable.
	Threshold float64
	// Redistribution reshapes raw elevation in [0,1]. Nil keeps it linear.
	Redistribution ease.TweenFunc
}

// DefaultGraphMapOptions mirrors the Voronoi demo: a 15x15 jittered lattice.
func DefaultGraphMapOptions() GraphMapOptions {
	return GraphMapOptions{
		Size:           15,
		Jitter:         0.5,
		Scale:          1,
		Seed:           1,
		Threshold:      0.75,
		Redistribution: ease.InOutQuad,
	}
}

// GraphMap is the irregular map variant: seed regions connected along the
// edges of their Delaunay triangulation.
//
// Everything is computed once in the constructor. Adjacency is immutable;
// only the caller's traversability predicate may vary.
type GraphMap struct {
	seeds     []orb.Point
	triangles []int
	halfedges []int
	centroids []orb.Point
	adjacency [][]Node
	elevation []float64
	moisture  []float64
	threshold float64
	index     *SeedIndex
}

// NewGraphMap places jittered seeds and builds the map from them.
func NewGraphMap(opts GraphMapOptions) (*GraphMap, error) {
	if opts.Size <= 0 {
		return nil, fmt.Errorf("invalid graph map size %d", opts.Size)
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	seeds := make([]orb.Point, 0, (opts.Size+1)*(opts.Size+1))
	for x := 0; x <= opts.Size; x++ {
		for y := 0; y <= opts.Size; y++ {
			seeds = append(seeds, orb.Point{
				(float64(x) + opts.Jitter*(rng.Float64()-rng.Float64())) * opts.Scale,
				(float64(y) + opts.Jitter*(rng.Float64()-rng.Float64())) * opts.Scale,
			})
		}
	}

	return NewGraphMapFromSeeds(seeds, opts)
}

// NewGraphMapFromSeeds builds a map over caller-supplied seed points. Seed i
// becomes node i. Only Seed, Threshold and Redistribution of opts are used.
func NewGraphMapFromSeeds(seeds []orb.Point, opts GraphMapOptions) (*GraphMap, error) {
	if len(seeds) < 3 {
		return nil, errors.New("graph map needs at least 3 seeds")
	}

	points := make([]delaunay.Point, len(seeds))
	for i, seed := range seeds {
		points[i] = delaunay.Point{X: seed.X(), Y: seed.Y()}
	}

	triangulation, err := delaunay.Triangulate(points)
	if err != nil {
		return nil, fmt.Errorf("failed to triangulate seeds: %w", err)
	}

	m := &GraphMap{
		seeds:     seeds,
		triangles: triangulation.Triangles,
		halfedges: triangulation.Halfedges,
		threshold: opts.Threshold,
		index:     NewSeedIndex(seeds),
	}
	m.centroids = m.calculateCentroids()
	m.adjacency = m.buildAdjacency()
	m.elevation, m.moisture = m.generateTerrain(opts)

	return m, nil
}

func nextHalfedge(e int) int {
	if e%3 == 2 {
		return e - 2
	}
	return e + 1
}

func (m *GraphMap) calculateCentroids() []orb.Point {
	numTriangles := len(m.triangles) / 3
	centroids := make([]orb.Point, numTriangles)
	for t := 0; t < numTriangles; t++ {
		var sumX, sumY float64
		for i := 0; i < 3; i++ {
			p := m.seeds[m.triangles[3*t+i]]
			sumX += p.X()
			sumY += p.Y()
		}
		centroids[t] = orb.Point{sumX / 3, sumY / 3}
	}
	return centroids
}

// buildAdjacency circulates around every seed through the half-edge table,
// starting from the first half-edge found that points into it. Circulation
// stops at an open half-edge, so seeds on the hull can miss neighbors and
// the result is not guaranteed symmetric there.
func (m *GraphMap) buildAdjacency() [][]Node {
	adjacency := make([][]Node, len(m.seeds))
	seen := make([]bool, len(m.seeds))

	for e := range m.triangles {
		r := m.triangles[nextHalfedge(e)]
		if seen[r] {
			continue
		}
		seen[r] = true

		var neighbors []Node
		incoming := e
		for {
			neighbors = append(neighbors, Node(m.triangles[incoming]))
			incoming = m.halfedges[nextHalfedge(incoming)]
			if incoming == -1 || incoming == e {
				break
			}
		}
		adjacency[r] = neighbors
	}

	return adjacency
}

// generateTerrain produces per-seed elevation and moisture in [0,1]. Elevation
// blends simplex noise with a falloff toward the map edge so the center rises.
func (m *GraphMap) generateTerrain(opts GraphMapOptions) ([]float64, []float64) {
	elevationNoise := opensimplex.NewNormalized(opts.Seed)
	moistureNoise := opensimplex.NewNormalized(opts.Seed + 1)

	bound := m.index.Bound()
	center := bound.Center()
	halfW := math.Max(bound.Max.X()-center.X(), 1e-9)
	halfH := math.Max(bound.Max.Y()-center.Y(), 1e-9)

	elevation := make([]float64, len(m.seeds))
	moisture := make([]float64, len(m.seeds))
	for i, p := range m.seeds {
		nx := (p.X() - center.X()) / halfW
		ny := (p.Y() - center.Y()) / halfH
		d := math.Min(1, math.Sqrt(nx*nx+ny*ny)/math.Sqrt2)

		e := (elevationNoise.Eval2(nx*2, ny*2) + (1 - d)) / 2
		if opts.Redistribution != nil {
			e = float64(opts.Redistribution(float32(e), 0, 1, 1))
		}
		elevation[i] = Clamp(e, 0, 1)
		moisture[i] = Clamp(moistureNoise.Eval2(nx*4, ny*4), 0, 1)
	}
	return elevation, moisture
}

// Len returns the number of regions.
func (m *GraphMap) Len() int {
	return len(m.seeds)
}

// NumTriangles returns the triangle count of the triangulation.
func (m *GraphMap) NumTriangles() int {
	return len(m.triangles) / 3
}

// NumEdges returns the half-edge count of the triangulation.
func (m *GraphMap) NumEdges() int {
	return len(m.halfedges)
}

// Seeds returns the seed points; node i is Seeds()[i].
func (m *GraphMap) Seeds() []orb.Point {
	return m.seeds
}

// Centroids returns the centroid of every triangle.
func (m *GraphMap) Centroids() []orb.Point {
	return m.centroids
}

func (m *GraphMap) Bound() orb.Bound {
	return m.index.Bound()
}

// NodeAt returns the region whose seed is nearest to p.
func (m *GraphMap) NodeAt(p orb.Point) Node {
	n, _ := m.index.Nearest(p)
	return n
}

// WorldPositionOf returns the seed point of n.
func (m *GraphMap) WorldPositionOf(n Node) orb.Point {
	return m.seeds[n]
}

func (m *GraphMap) Neighbors(n Node) []Node {
	return m.adjacency[n]
}

// Cost is the distance between the two seeds.
func (m *GraphMap) Cost(from, to Node) float64 {
	return Distance(m.seeds[from], m.seeds[to])
}

// Heuristic is the straight-line distance to the goal seed.
func (m *GraphMap) Heuristic(from, goal Node) float64 {
	return Distance(m.seeds[from], m.seeds[goal])
}

func (m *GraphMap) Elevation(n Node) float64 {
	return m.elevation[n]
}

func (m *GraphMap) Moisture(n Node) float64 {
	return m.moisture[n]
}

// Threshold returns the elevation above which regions are blocked.
func (m *GraphMap) Threshold() float64 {
	return m.threshold
}

// Blocked reports whether n is too high to enter.
func (m *GraphMap) Blocked(n Node) bool {
	return m.elevation[n] > m.threshold
}

func (m *GraphMap) Passable(n Node) bool {
	return !m.Blocked(n)
}

// Edges returns every Delaunay edge once, as pairs of nodes.
func (m *GraphMap) Edges() [][2]Node {
	edges := make([][2]Node, 0, len(m.triangles)/2)
	for e := range m.triangles {
		if e > m.halfedges[e] {
			edges = append(edges, [2]Node{
				Node(m.triangles[e]),
				Node(m.triangles[nextHalfedge(e)]),
			})
		}
	}
	return edges
}

// Map bundles the graph map with its elevation predicate.
func (m *GraphMap) Map() Map {
	return Map{Index: m, Graph: m, Passable: m.Passable}
}
