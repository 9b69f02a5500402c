package sim

import (
	"github.com/paulmach/orb"

	"github.com/dzz9143/code-math/internal/nav"
)

// Terrain is the map the world is played on.
type Terrain interface {
	Map() nav.Map
	Bound() orb.Bound
}

// Toggler is implemented by terrains whose obstacles can be edited by
// clicking.
type Toggler interface {
	// ToggleAt flips the obstacle under p and reports the node and whether
	// it is now blocked.
	ToggleAt(p orb.Point) (nav.Node, bool)
}

// GridTerrain is a regular grid with click-toggled walls.
type GridTerrain struct {
	Grid  *nav.Grid
	Walls *nav.Walls
}

func NewGridTerrain(g *nav.Grid, walls *nav.Walls) *GridTerrain {
	if walls == nil {
		walls = nav.NewWalls()
	}
	return &GridTerrain{Grid: g, Walls: walls}
}

func (t *GridTerrain) Map() nav.Map {
	return t.Grid.Map(t.Walls)
}

func (t *GridTerrain) Bound() orb.Bound {
	return t.Grid.Bound()
}

func (t *GridTerrain) ToggleAt(p orb.Point) (nav.Node, bool) {
	n := t.Grid.NodeAt(p)
	return n, t.Walls.Toggle(n)
}

var (
	_ Terrain = (*GridTerrain)(nil)
	_ Toggler = (*GridTerrain)(nil)
	_ Terrain = (*nav.GraphMap)(nil)
)
