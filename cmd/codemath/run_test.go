package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/flswld/halo/logger"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dzz9143/code-math/internal/config"
	"github.com/dzz9143/code-math/internal/nav"
)

func TestMain(m *testing.M) {
	logger.InitLogger(&logger.Config{
		AppName: "codemath_test",
		Level:   logger.ParseLevel("ERROR"),
	})
	code := m.Run()
	logger.CloseLogger()
	os.Exit(code)
}

func TestParsePoint(t *testing.T) {
	p, err := parsePoint("12.5, 40")
	require.NoError(t, err)
	assert.Equal(t, orb.Point{12.5, 40}, p)

	for _, bad := range []string{"", "1", "1,2,3", "a,2", "1,b"} {
		_, err := parsePoint(bad)
		assert.Error(t, err, bad)
	}
}

func TestGraphMapOptions(t *testing.T) {
	opts := graphMapOptions(config.Voronoi{Size: 4, Jitter: 0.25, Scale: 10, Seed: 9, Threshold: 0.6})
	assert.Equal(t, 4, opts.Size)
	assert.Equal(t, 0.25, opts.Jitter)
	assert.Equal(t, 10.0, opts.Scale)
	assert.Equal(t, int64(9), opts.Seed)
	assert.Equal(t, 0.6, opts.Threshold)
	assert.NotNil(t, opts.Redistribution)
}

const obstacles = `{
  "type": "FeatureCollection",
  "features": [{
    "type": "Feature",
    "properties": {},
    "geometry": {
      "type": "Polygon",
      "coordinates": [[[110, 110], [190, 110], [190, 140], [110, 140], [110, 110]]]
    }
  }]
}`

func TestBuildGrid(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "obstacles.geojson")
	require.NoError(t, os.WriteFile(file, []byte(obstacles), 0o644))

	c := config.Default().Grid
	c.Walls = [][2]int{{0, 1}, {5, 5}}
	c.ObstaclesFile = file

	g, walls, err := buildGrid(c)
	require.NoError(t, err)
	assert.True(t, walls.IsBlocked(g.NodeOf(0, 1)))
	assert.True(t, walls.IsBlocked(g.NodeOf(5, 5)))
	assert.True(t, walls.IsBlocked(g.NodeOf(2, 2)))
	assert.True(t, walls.IsBlocked(g.NodeOf(2, 3)))
	assert.False(t, walls.IsBlocked(g.NodeOf(0, 0)))

	c.ObstaclesFile = filepath.Join(dir, "missing.geojson")
	_, _, err = buildGrid(c)
	assert.Error(t, err)
}

func TestRunGridExports(t *testing.T) {
	out := filepath.Join(t.TempDir(), "grid.geojson")
	cfg := config.Default()
	cfg.Agent.Speed = 10

	err := runGrid(cfg, runOptions{ticks: 20, target: "25,775", export: out})
	require.NoError(t, err)

	_, kinds := readKinds(t, out)
	assert.Equal(t, 1, kinds["bounds"])
	assert.Equal(t, 1, kinds["path"])
}

func readKinds(t *testing.T, filename string) (*geojson.FeatureCollection, map[string]int) {
	t.Helper()
	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	fc, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)

	kinds := map[string]int{}
	for _, f := range fc.Features {
		kinds[f.Properties.MustString("kind")]++
	}
	return fc, kinds
}

func TestRunGridToArrivalExportsPath(t *testing.T) {
	out := filepath.Join(t.TempDir(), "grid.geojson")
	cfg := config.Default()
	cfg.Agent.Speed = 10

	err := runGrid(cfg, runOptions{ticks: 2000, target: "25,775", export: out})
	require.NoError(t, err)

	fc, kinds := readKinds(t, out)
	assert.Equal(t, 1, kinds["bounds"])
	require.Equal(t, 1, kinds["path"])
	for _, f := range fc.Features {
		if f.Properties.MustString("kind") == "path" {
			// after arrival only the last planned step remains
			assert.Equal(t, 1.0, f.Properties.MustFloat64("steps"))
		}
	}
}

func TestRunVoronoiExports(t *testing.T) {
	out := filepath.Join(t.TempDir(), "voronoi.geojson")
	cfg := config.Default()
	cfg.Voronoi.Threshold = 2
	cfg.Agent.Speed = 10
	cfg.Agent.StartX, cfg.Agent.StartY = 100, 100

	err := runVoronoi(cfg, runOptions{ticks: 2000, target: "650,600", export: out})
	require.NoError(t, err)

	m, err := nav.NewGraphMap(graphMapOptions(cfg.Voronoi))
	require.NoError(t, err)

	_, kinds := readKinds(t, out)
	assert.Equal(t, 1, kinds["bounds"])
	assert.Equal(t, m.Len(), kinds["seed"])
	assert.Equal(t, len(m.Edges()), kinds["edge"])
	assert.Equal(t, 1, kinds["path"])
}

func TestVoronoiCmdFlags(t *testing.T) {
	c := VoronoiCmd()
	for _, name := range []string{"config", "ticks", "target", "export"} {
		assert.NotNil(t, c.Flags().Lookup(name), name)
	}
	assert.Equal(t, "voronoi", c.Use)
}

func TestRunGridRejectsBadTarget(t *testing.T) {
	err := runGrid(config.Default(), runOptions{ticks: 5, target: "nowhere"})
	assert.Error(t, err)
}
