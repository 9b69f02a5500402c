package nav

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWallsToggle(t *testing.T) {
	w := NewWalls()
	assert.False(t, w.IsBlocked(3))
	assert.True(t, w.Passable(3))

	assert.True(t, w.Toggle(3))
	assert.True(t, w.IsBlocked(3))
	assert.False(t, w.Passable(3))

	assert.False(t, w.Toggle(3))
	assert.False(t, w.IsBlocked(3))
	assert.Zero(t, w.Len())
}

func TestWallsBlockedSorted(t *testing.T) {
	w := NewWalls(9, 2, 5)
	w.Set(7, true)
	w.Set(2, false)

	assert.Equal(t, []Node{5, 7, 9}, w.Blocked())
	assert.Equal(t, 3, w.Len())
}

const obstaclesGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"name": "pond"},
      "geometry": {
        "type": "Polygon",
        "coordinates": [[[0,0],[100,0],[100,100],[0,100],[0,0]]]
      }
    },
    {
      "type": "Feature",
      "properties": {},
      "geometry": {
        "type": "MultiPolygon",
        "coordinates": [
          [[[300,300],[360,300],[360,360],[300,360],[300,300]]],
          [[[700,0],[800,0],[800,40],[700,40],[700,0]]]
        ]
      }
    },
    {
      "type": "Feature",
      "properties": {},
      "geometry": {"type": "Point", "coordinates": [1, 1]}
    }
  ]
}`

func TestLoadObstacles(t *testing.T) {
	polygons, err := LoadObstacles([]byte(obstaclesGeoJSON))
	require.NoError(t, err)
	require.Len(t, polygons, 3)

	assert.True(t, IsPointInPolygons(orb.Point{50, 50}, polygons))
	assert.True(t, IsPointInPolygons(orb.Point{330, 330}, polygons))
	assert.False(t, IsPointInPolygons(orb.Point{200, 200}, polygons))
}

func TestLoadObstaclesInvalid(t *testing.T) {
	_, err := LoadObstacles([]byte("not json"))
	assert.Error(t, err)

	_, err = LoadObstaclesFile("does-not-exist.geojson")
	assert.Error(t, err)
}

func TestWallsBlockPolygons(t *testing.T) {
	g := NewGrid(16, 16, 50, orb.Point{0, 0})
	polygons, err := LoadObstacles([]byte(obstaclesGeoJSON))
	require.NoError(t, err)

	w := NewWalls()
	added := w.BlockPolygons(g, polygons)

	// pond covers centers (25,25),(75,25),(25,75),(75,75); the square at
	// 300..360 covers (325,325); the strip at y<40 covers (725,25),(775,25)
	assert.Equal(t, 7, added)
	assert.True(t, w.IsBlocked(g.NodeOf(1, 1)))
	assert.True(t, w.IsBlocked(g.NodeOf(6, 6)))
	assert.True(t, w.IsBlocked(g.NodeOf(0, 15)))
	assert.False(t, w.IsBlocked(g.NodeOf(2, 2)))

	assert.Zero(t, w.BlockPolygons(g, polygons))
}
