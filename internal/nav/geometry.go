package nav

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Distance calculates Euclidean distance between two world positions
func Distance(a, b orb.Point) float64 {
	return planar.Distance(a, b)
}

// Clamp limits v to the closed range [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(math.Min(v, hi), lo)
}

// ClampPoint moves p onto the nearest position inside bound
func ClampPoint(p orb.Point, bound orb.Bound) orb.Point {
	return orb.Point{
		Clamp(p.X(), bound.Min.X(), bound.Max.X()),
		Clamp(p.Y(), bound.Min.Y(), bound.Max.Y()),
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// IsPointInPolygons checks whether p lies inside any of the polygons
func IsPointInPolygons(p orb.Point, polygons []orb.Polygon) bool {
	for _, polygon := range polygons {
		if planar.PolygonContains(polygon, p) {
			return true
		}
	}
	return false
}
