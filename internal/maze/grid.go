package maze

import (
	"errors"
	"fmt"

	"pacmaze/internal/geom"
)

var ErrMaskSize = errors.New("mask size does not match maze dimensions")

// Point is a tile coordinate.
type Point struct {
	X, Y int
}

// Grid is the static walkability table. Its shape and tile kinds never change
// after NewGrid; only tile occupants do.
type Grid struct {
	width, height int
	tiles         []Tile // Row-major, y = 0 is the bottom row
}

// NewGrid builds a grid from a row-major mask whose first row is the top of
// the maze. Tile space has y growing upward, so mask row r lands on y = h-1-r.
func NewGrid(mask []bool, width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid maze dimensions %dx%d", width, height)
	}
	if len(mask) != width*height {
		return nil, fmt.Errorf("%w: got %d cells for %dx%d", ErrMaskSize, len(mask), width, height)
	}

	g := &Grid{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
	for row := 0; row < height; row++ {
		y := (height - 1) - row
		for x := 0; x < width; x++ {
			if mask[row*width+x] {
				g.tiles[y*width+x].Kind = Path
			}
		}
	}
	return g, nil
}

// Size returns the grid dimensions in tiles.
func (g *Grid) Size() (width, height int) {
	return g.width, g.height
}

// InBounds reports whether (x, y) names a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Lookup returns the tile at (x, y). Out of bounds is not an error, just no tile.
func (g *Grid) Lookup(x, y int) (*Tile, bool) {
	if !g.InBounds(x, y) {
		return nil, false
	}
	return &g.tiles[y*g.width+x], true
}

// Adjacent returns the neighbour of (x, y) in direction d. It does not wrap:
// stepping off any edge yields no tile.
func (g *Grid) Adjacent(x, y int, d geom.Direction) (Point, *Tile, bool) {
	dx, dy := d.Delta()
	if dx == 0 && dy == 0 {
		return Point{}, nil, false
	}
	nx, ny := x+dx, y+dy
	tile, ok := g.Lookup(nx, ny)
	if !ok {
		return Point{}, nil, false
	}
	return Point{X: nx, Y: ny}, tile, true
}

// Walkable reports whether (x, y) is an in-bounds path tile.
func (g *Grid) Walkable(x, y int) bool {
	tile, ok := g.Lookup(x, y)
	return ok && tile.IsValidPath()
}

// PathCount returns the number of walkable tiles.
func (g *Grid) PathCount() int {
	n := 0
	for i := range g.tiles {
		if g.tiles[i].Kind == Path {
			n++
		}
	}
	return n
}
