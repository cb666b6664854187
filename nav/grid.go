// Package nav implements spatial queries over a static 2D occupancy grid:
// walkability lookups, a circular collision probe, a ray marcher, and a
// weighted A* pathfinder with 8-directional movement.
package nav

import "fmt"

// Point represents an integer coordinate on the occupancy grid.
type Point struct {
	X int
	Y int
}

// Grid is an immutable rectangular occupancy map. It is safe for
// concurrent readers once constructed.
type Grid struct {
	width, height int
	blocked       []bool
}

// NewGrid builds a Grid from a row-major cell matrix where true marks a
// blocked cell. The matrix must be non-empty and rectangular.
func NewGrid(cells [][]bool) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("nav: empty grid")
	}
	width := len(cells[0])
	g := &Grid{
		width:   width,
		height:  len(cells),
		blocked: make([]bool, width*len(cells)),
	}
	for y, row := range cells {
		if len(row) != width {
			return nil, fmt.Errorf("nav: ragged grid: row %d has %d cells, want %d", y, len(row), width)
		}
		copy(g.blocked[y*width:(y+1)*width], row)
	}
	return g, nil
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// Walkable reports whether the cell can be occupied. Coordinates outside
// the grid are never walkable.
func (g *Grid) Walkable(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return !g.blocked[y*g.width+x]
}
