package tui

import (
	"pacmaze/internal/geom"
	"pacmaze/internal/maze"
	"pacmaze/internal/sprite"
)

const (
	glyphWall    = '#'
	glyphPath    = '.'
	glyphStopped = 'O'
	glyphTaken   = 'o' // path tile with occupants
)

// moverGlyph picks a character that shows which way a mover faces.
func moverGlyph(m *sprite.Mover) rune {
	if !m.Animating {
		return glyphStopped
	}
	switch m.Facing {
	case geom.Up:
		return '^'
	case geom.Down:
		return 'v'
	case geom.Left:
		return '<'
	case geom.Right:
		return '>'
	}
	return glyphStopped
}

// Project renders the maze one tile per cell, top row first, with movers
// drawn on the tile they currently occupy.
func Project(grid *maze.Grid, movers []*sprite.Mover) [][]rune {
	w, h := grid.Size()
	rows := make([][]rune, h)
	for row := range rows {
		y := (h - 1) - row
		rows[row] = make([]rune, w)
		for x := 0; x < w; x++ {
			tile, _ := grid.Lookup(x, y)
			switch {
			case !tile.IsValidPath():
				rows[row][x] = glyphWall
			case len(tile.Occupants()) > 0:
				rows[row][x] = glyphTaken
			default:
				rows[row][x] = glyphPath
			}
		}
	}
	for _, m := range movers {
		x, y := m.TileInfo.Tile()
		if !grid.InBounds(x, y) {
			continue
		}
		rows[(h-1)-y][x] = moverGlyph(m)
	}
	return rows
}
