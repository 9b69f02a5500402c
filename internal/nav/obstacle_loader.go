package nav

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// LoadObstacles parses a GeoJSON FeatureCollection and returns its polygons.
// Only the outer ring of each Polygon and MultiPolygon member is kept; other
// geometry types are ignored.
func LoadObstacles(data []byte) ([]orb.Polygon, error) {
	featureCollection, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse obstacles: %w", err)
	}

	var polygons []orb.Polygon
	for _, feature := range featureCollection.Features {
		polygons = append(polygons, outerRings(feature.Geometry)...)
	}
	return polygons, nil
}

// LoadObstaclesFile reads obstacles from a GeoJSON file on disk.
func LoadObstaclesFile(filename string) ([]orb.Polygon, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return LoadObstacles(data)
}

// outerRings converts a geometry to our polygon list, first ring only
func outerRings(geometry orb.Geometry) []orb.Polygon {
	var polygons []orb.Polygon

	switch g := geometry.(type) {
	case orb.Polygon:
		if len(g) > 0 {
			polygons = append(polygons, orb.Polygon{g[0]})
		}

	case orb.MultiPolygon:
		for _, polygon := range g {
			if len(polygon) > 0 {
				polygons = append(polygons, orb.Polygon{polygon[0]})
			}
		}
	}

	return polygons
}
