package nav

import (
	"math"

	"github.com/paulmach/orb"
)

// Grid is a regular rectangular map addressed by row and column.
//
// Node ids are row*Cols + col and only mean something for the grid that
// produced them. Dimensions never change after construction.
type Grid struct {
	Rows     int
	Cols     int
	CellSize float64
	Origin   orb.Point // top left corner
}

// NewGrid creates a grid of rows x cols square cells.
func NewGrid(rows, cols int, cellSize float64, origin orb.Point) *Grid {
	return &Grid{
		Rows:     rows,
		Cols:     cols,
		CellSize: cellSize,
		Origin:   origin,
	}
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return g.Rows * g.Cols
}

// Bound returns the world-space rectangle covered by the grid.
func (g *Grid) Bound() orb.Bound {
	return orb.Bound{
		Min: g.Origin,
		Max: orb.Point{
			g.Origin.X() + float64(g.Cols)*g.CellSize,
			g.Origin.Y() + float64(g.Rows)*g.CellSize,
		},
	}
}

// NodeOf returns the node at row, col.
func (g *Grid) NodeOf(row, col int) Node {
	return Node(row*g.Cols + col)
}

// RowCol splits a node into its row and column.
func (g *Grid) RowCol(n Node) (row, col int) {
	return int(n) / g.Cols, int(n) % g.Cols
}

// Contains reports whether n addresses a cell of this grid.
func (g *Grid) Contains(n Node) bool {
	return n >= 0 && int(n) < g.Len()
}

// NodeAt returns the cell under p. Positions outside the grid clamp to the
// nearest edge cell.
func (g *Grid) NodeAt(p orb.Point) Node {
	p = ClampPoint(p, g.Bound())
	col := int(math.Floor((p.X() - g.Origin.X()) / g.CellSize))
	row := int(math.Floor((p.Y() - g.Origin.Y()) / g.CellSize))
	return g.NodeOf(clampInt(row, 0, g.Rows-1), clampInt(col, 0, g.Cols-1))
}

// WorldPositionOf returns the center of the cell.
func (g *Grid) WorldPositionOf(n Node) orb.Point {
	row, col := g.RowCol(n)
	return orb.Point{
		g.Origin.X() + (float64(col)+0.5)*g.CellSize,
		g.Origin.Y() + (float64(row)+0.5)*g.CellSize,
	}
}

// CellBound returns the world-space rectangle of one cell.
func (g *Grid) CellBound(n Node) orb.Bound {
	row, col := g.RowCol(n)
	corner := orb.Point{
		g.Origin.X() + float64(col)*g.CellSize,
		g.Origin.Y() + float64(row)*g.CellSize,
	}
	return orb.Bound{
		Min: corner,
		Max: orb.Point{corner.X() + g.CellSize, corner.Y() + g.CellSize},
	}
}

// Neighbors returns the 4-connected neighborhood in up, right, down, left
// order. Walls are not consulted.
func (g *Grid) Neighbors(n Node) []Node {
	row, col := g.RowCol(n)
	neighbors := make([]Node, 0, 4)
	if row-1 >= 0 {
		neighbors = append(neighbors, g.NodeOf(row-1, col))
	}
	if col+1 < g.Cols {
		neighbors = append(neighbors, g.NodeOf(row, col+1))
	}
	if row+1 < g.Rows {
		neighbors = append(neighbors, g.NodeOf(row+1, col))
	}
	if col-1 >= 0 {
		neighbors = append(neighbors, g.NodeOf(row, col-1))
	}
	return neighbors
}

// Cost is uniform: every grid step costs 1.
func (g *Grid) Cost(from, to Node) float64 {
	return 1
}

// Heuristic is the straight-line distance in cell units.
func (g *Grid) Heuristic(from, goal Node) float64 {
	r1, c1 := g.RowCol(from)
	r2, c2 := g.RowCol(goal)
	dr := float64(r1 - r2)
	dc := float64(c1 - c2)
	return math.Sqrt(dr*dr + dc*dc)
}

// Map bundles the grid with a wall set. A nil walls means no obstacles.
func (g *Grid) Map(walls *Walls) Map {
	m := Map{Index: g, Graph: g}
	if walls != nil {
		m.Passable = walls.Passable
	}
	return m
}
