package coords

import "pacmaze/internal/geom"

// center is the integer midpoint of a tile. Odd tile sizes round down.
func (l Layout) center() int {
	return l.TileSize / 2
}

// PastCenter reports whether t has crossed its tile's midpoint along the axis
// of facing. Decreasing directions use a strict comparison so an exactly
// centered mover counts as not yet past center.
func (l Layout) PastCenter(t TileInfo, facing geom.Direction) bool {
	c := l.center()
	switch facing {
	case geom.Up:
		return t.YOffset >= c
	case geom.Down:
		return t.YOffset < c
	case geom.Right:
		return t.XOffset >= c
	case geom.Left:
		return t.XOffset < c
	}
	return false
}

// Alignment returns the perpendicular nudge that pulls a mover facing facing
// back onto the center line of its lane. It reports false when already centered.
func (l Layout) Alignment(t TileInfo, facing geom.Direction) (geom.Direction, bool) {
	c := l.center()
	switch facing {
	case geom.Up, geom.Down:
		switch {
		case t.XOffset > c:
			return geom.Left, true
		case t.XOffset < c:
			return geom.Right, true
		}
	case geom.Left, geom.Right:
		switch {
		case t.YOffset > c:
			return geom.Down, true
		case t.YOffset < c:
			return geom.Up, true
		}
	}
	return geom.None, false
}
