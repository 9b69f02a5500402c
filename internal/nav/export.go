package nav

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/simplify"
)

// PathLine converts a path into a travel-order line string starting at start.
// Collinear runs are collapsed so the overlay only keeps the turns.
func PathLine(index SpatialIndex, start orb.Point, path Path) orb.LineString {
	line := orb.LineString{start}
	for _, n := range path.TravelOrder() {
		line = append(line, index.WorldPositionOf(n))
	}
	if len(line) < 3 {
		return line
	}
	return simplify.DouglasPeucker(0).LineString(line)
}

func pathFeature(index SpatialIndex, start orb.Point, path Path) *geojson.Feature {
	feature := geojson.NewFeature(PathLine(index, start, path))
	feature.Properties["kind"] = "path"
	feature.Properties["steps"] = len(path)
	return feature
}

// ExportGrid renders walls as polygons and the path as a line string.
func ExportGrid(g *Grid, walls *Walls, start orb.Point, path Path) *geojson.FeatureCollection {
	featureCollection := geojson.NewFeatureCollection()

	bounds := geojson.NewFeature(g.Bound().ToPolygon())
	bounds.Properties["kind"] = "bounds"
	bounds.Properties["rows"] = g.Rows
	bounds.Properties["cols"] = g.Cols
	featureCollection.Append(bounds)

	if walls != nil {
		for _, n := range walls.Blocked() {
			if !g.Contains(n) {
				continue
			}
			row, col := g.RowCol(n)
			feature := geojson.NewFeature(g.CellBound(n).ToPolygon())
			feature.Properties["kind"] = "wall"
			feature.Properties["node"] = int(n)
			feature.Properties["row"] = row
			feature.Properties["col"] = col
			featureCollection.Append(feature)
		}
	}

	if len(path) > 0 {
		featureCollection.Append(pathFeature(g, start, path))
	}
	return featureCollection
}

// ExportGraph renders the map bound, Delaunay edges, seeds with their terrain
// values, and the path.
func ExportGraph(m *GraphMap, start orb.Point, path Path) *geojson.FeatureCollection {
	featureCollection := geojson.NewFeatureCollection()

	bounds := geojson.NewFeature(m.Bound().ToPolygon())
	bounds.Properties["kind"] = "bounds"
	bounds.Properties["regions"] = m.Len()
	bounds.Properties["threshold"] = m.Threshold()
	featureCollection.Append(bounds)

	for _, edge := range m.Edges() {
		feature := geojson.NewFeature(orb.LineString{
			m.WorldPositionOf(edge[0]),
			m.WorldPositionOf(edge[1]),
		})
		feature.Properties["kind"] = "edge"
		featureCollection.Append(feature)
	}

	for i := 0; i < m.Len(); i++ {
		n := Node(i)
		feature := geojson.NewFeature(m.WorldPositionOf(n))
		feature.Properties["kind"] = "seed"
		feature.Properties["node"] = i
		feature.Properties["elevation"] = m.Elevation(n)
		feature.Properties["moisture"] = m.Moisture(n)
		feature.Properties["blocked"] = m.Blocked(n)
		featureCollection.Append(feature)
	}

	if len(path) > 0 {
		featureCollection.Append(pathFeature(m, start, path))
	}
	return featureCollection
}
