package movement

import (
	"errors"
	"fmt"
	"log"
	"math"

	"pacmaze/internal/coords"
	"pacmaze/internal/geom"
	"pacmaze/internal/maze"
	"pacmaze/internal/sprite"

	"golang.org/x/image/math/f64"
)

// ErrCorneringAxis marks a cornering nudge on an axis that already moved this
// tick. It only happens if velocity and facing disagree, which is a bug.
var ErrCorneringAxis = errors.New("cornering on an axis with commanded movement")

// Resolver validates and applies mover motion against a maze. The grid is
// shared read-only, so one resolver may step many movers concurrently as long
// as each mover is stepped by a single goroutine.
type Resolver struct {
	grid   *maze.Grid
	layout coords.Layout
	speed  float64
	logger *log.Logger // nil disables movement logging
}

// NewResolver creates a resolver. speed is in world units per second.
func NewResolver(grid *maze.Grid, layout coords.Layout, speed float64, logger *log.Logger) *Resolver {
	return &Resolver{
		grid:   grid,
		layout: layout,
		speed:  speed,
		logger: logger,
	}
}

// Layout returns the coordinate mapping the resolver works in.
func (r *Resolver) Layout() coords.Layout {
	return r.layout
}

// Grid returns the maze the resolver validates against.
func (r *Resolver) Grid() *maze.Grid {
	return r.grid
}

// Place puts m at a point inside tile (x, y) and recomputes its tile info.
// Nil offsets center the mover on that axis.
func (r *Resolver) Place(m *sprite.Mover, x, y int, xOff, yOff *int) {
	m.Position = r.layout.TileToPosition(x, y, xOff, yOff)
	m.SetTileInfo(r.layout.PositionToTile(m.Position))
}

// ChangeDirection handles a directional intent. The turn is accepted only when
// the tile next to the mover's current tile in direction d is a path; a
// rejected turn leaves velocity and facing untouched.
func (r *Resolver) ChangeDirection(m *sprite.Mover, d geom.Direction, indexes []int) bool {
	if d == geom.None {
		return false
	}

	x, y := m.TileInfo.Tile()
	_, tile, ok := r.grid.Adjacent(x, y, d)
	if !ok || !tile.IsValidPath() {
		r.logf("mover %s cannot turn %s at (%d, %d)", m.ID, d, x, y)
		return false
	}

	m.Turn(geom.Scale(d.Unit(), r.speed), d, indexes)
	return true
}

// Step integrates m's velocity over dt seconds. An obstructed move leaves the
// mover where it was and clears Animating; it is not clamped to the wall.
// It reports whether the move was committed.
func (r *Resolver) Step(m *sprite.Mover, dt float64) bool {
	dx := dt * m.Velocity[0]
	dy := dt * m.Velocity[1]
	proposed := geom.Add(m.Position, f64.Vec2{dx, dy})

	info := r.layout.PositionToTile(proposed)
	if !r.validMove(info, m.Facing) {
		m.Animating = false
		return false
	}

	r.corner(info, m.Facing, &proposed, dx, dy)
	info = r.teleport(info, m.Facing, &proposed)

	m.Position = proposed
	if m.SetTileInfo(info) {
		r.logf("mover %s entered %s", m.ID, info)
	}
	m.Animating = true
	return true
}

// validMove checks the proposed tile and, once the mover is past the tile's
// center, the tile beyond it. The look-ahead stops movers at the center of a
// dead end rather than letting them clip into the wall.
func (r *Resolver) validMove(info coords.TileInfo, facing geom.Direction) bool {
	if _, ok := r.grid.Lookup(info.X, info.Y); !ok {
		return false
	}
	if !r.layout.PastCenter(info, facing) {
		return true
	}
	_, next, ok := r.grid.Adjacent(info.X, info.Y, facing)
	return ok && next.IsValidPath()
}

// corner nudges the axis perpendicular to travel toward the lane center by the
// distance travelled along the other axis this tick.
func (r *Resolver) corner(info coords.TileInfo, facing geom.Direction, p *f64.Vec2, dx, dy float64) {
	nudge, ok := r.layout.Alignment(info, facing)
	if !ok {
		return
	}

	// Nudge axis index and the movement along it and across it this tick
	axis, along, across := 0, dx, dy
	if nudge.Vertical() {
		axis, along, across = 1, dy, dx
	}
	if along != 0 {
		panic(fmt.Errorf("%w: nudge %s with movement %v", ErrCorneringAxis, nudge, along))
	}
	u := nudge.Unit()
	p[axis] += u[axis] * math.Abs(across)
}

// teleport wraps a mover running off a horizontal edge to the other side.
func (r *Resolver) teleport(info coords.TileInfo, facing geom.Direction, p *f64.Vec2) coords.TileInfo {
	edge, ok := r.layout.Edge(info)
	if !ok || edge != facing {
		return info
	}

	switch facing {
	case geom.Right:
		p[0] -= r.layout.TeleportDistance()
	case geom.Left:
		p[0] += r.layout.TeleportDistance()
	default:
		return info
	}
	return r.layout.PositionToTile(*p)
}

func (r *Resolver) logf(format string, args ...any) {
	if r.logger != nil {
		r.logger.Printf(format, args...)
	}
}
