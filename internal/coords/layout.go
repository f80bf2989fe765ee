package coords

import (
	"fmt"

	"pacmaze/internal/config"
	"pacmaze/internal/geom"
	"pacmaze/internal/mathutil"

	"golang.org/x/image/math/f64"
)

// TileInfo is a position decomposed into a tile coordinate and the offset
// inside that tile. Offsets are always in [0, TileSize).
type TileInfo struct {
	X, Y             int
	XOffset, YOffset int
}

// Tile returns the tile coordinate.
func (t TileInfo) Tile() (x, y int) {
	return t.X, t.Y
}

func (t TileInfo) String() string {
	return fmt.Sprintf("tile (%d, %d) offset (%d, %d)", t.X, t.Y, t.XOffset, t.YOffset)
}

// Layout maps between world space and the tile grid. World space is the
// playfield in unscaled units, with Origin at its bottom-left corner, multiplied
// by Scale.
type Layout struct {
	Origin   f64.Vec2
	TileSize int
	Scale    float64
	Width    int // Tiles across, used for edge detection
	Height   int
}

// NewLayout builds a layout from the maze section of the config.
func NewLayout(cfg *config.Config) Layout {
	m := cfg.Maze
	return Layout{
		Origin:   f64.Vec2{m.BoundingBox.Left, m.BoundingBox.Bottom},
		TileSize: cfg.GetTileSize(),
		Scale:    cfg.GetScale(),
		Width:    m.Width,
		Height:   m.Height,
	}
}

// Offset is a helper for building optional offset arguments.
func Offset(v int) *int {
	return &v
}

// TileToPosition returns the world position of a point inside tile (x, y).
// A nil offset places the point at the tile's center on that axis.
func (l Layout) TileToPosition(x, y int, xOff, yOff *int) f64.Vec2 {
	half := float64(l.TileSize) / 2

	px := l.Origin[0] + float64(x*l.TileSize)
	if xOff != nil {
		px += float64(*xOff)
	} else {
		px += half
	}

	py := l.Origin[1] + float64(y*l.TileSize)
	if yOff != nil {
		py += float64(*yOff)
	} else {
		py += half
	}

	return f64.Vec2{px * l.Scale, py * l.Scale}
}

// TileCenter returns the world position of the center of tile (x, y).
func (l Layout) TileCenter(x, y int) f64.Vec2 {
	return l.TileToPosition(x, y, nil, nil)
}

// PositionToTile is the inverse of TileToPosition. Conversion truncates, so the
// tile origin sits at its lower-left corner; positions left of or below the
// playfield saturate to tile 0 with offset 0. Coordinates past the right or top
// edge are returned as-is and must be bounds-checked against the grid.
func (l Layout) PositionToTile(p f64.Vec2) TileInfo {
	x := mathutil.TruncNonNeg(p[0]/l.Scale - l.Origin[0])
	y := mathutil.TruncNonNeg(p[1]/l.Scale - l.Origin[1])
	return TileInfo{
		X:       x / l.TileSize,
		Y:       y / l.TileSize,
		XOffset: x % l.TileSize,
		YOffset: y % l.TileSize,
	}
}

// Edge reports which horizontal map edge the tile sits on, if any.
func (l Layout) Edge(t TileInfo) (geom.Direction, bool) {
	switch t.X {
	case 0:
		return geom.Left, true
	case l.Width - 1:
		return geom.Right, true
	}
	return geom.None, false
}

// TeleportDistance is how far a mover jumps when it runs through a tunnel:
// every tile except the two edge tiles, in scaled world units.
func (l Layout) TeleportDistance() float64 {
	return float64((l.Width-2)*l.TileSize) * l.Scale
}
