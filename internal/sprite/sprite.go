package sprite

import (
	"pacmaze/internal/coords"
	"pacmaze/internal/geom"

	"golang.org/x/image/math/f64"
)

// Mover is the per-entity movement record. Position and TileInfo are written by
// the movement resolver; Facing, Velocity and the animation fields change only
// through Turn and Animate.
type Mover struct {
	ID       string
	Facing   geom.Direction
	Velocity f64.Vec2 // World units per second
	Position f64.Vec2

	TextureIndexes []int // Opaque to movement, forwarded to the animator
	Animating      bool  // True only while the last move was unobstructed
	AnimationTick  int

	// Zero until the mover is first placed or stepped; nothing reads it
	// before the resolver has run once.
	TileInfo coords.TileInfo
}

// New creates a stationary mover facing the given direction.
func New(id string, facing geom.Direction, indexes []int) *Mover {
	return &Mover{
		ID:             id,
		Facing:         facing,
		TextureIndexes: indexes,
	}
}

// Turn applies an accepted direction change. Velocity is always replaced so a
// stopped mover can resume; the animation restarts only when facing changes.
func (m *Mover) Turn(velocity f64.Vec2, facing geom.Direction, indexes []int) {
	m.Velocity = velocity
	if facing != m.Facing {
		m.Facing = facing
		m.TextureIndexes = indexes
		m.AnimationTick = 0
	}
}

// SetTileInfo stores the recomputed tile info and reports whether the mover
// entered a different tile.
func (m *Mover) SetTileInfo(info coords.TileInfo) bool {
	changed := info.X != m.TileInfo.X || info.Y != m.TileInfo.Y
	m.TileInfo = info
	return changed
}

// Animate advances the animation by one frame while the mover is animating and
// returns the texture index to draw. It returns -1 when there are no indexes.
func (m *Mover) Animate() int {
	if len(m.TextureIndexes) == 0 {
		return -1
	}
	if m.Animating {
		m.AnimationTick = (m.AnimationTick + 1) % len(m.TextureIndexes)
	}
	return m.Frame()
}

// Frame returns the current texture index without advancing.
func (m *Mover) Frame() int {
	if len(m.TextureIndexes) == 0 {
		return -1
	}
	return m.TextureIndexes[m.AnimationTick%len(m.TextureIndexes)]
}
