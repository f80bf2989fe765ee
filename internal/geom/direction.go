package geom

import (
	"golang.org/x/image/math/f64"
)

// Direction is one of the four cardinal directions a mover can face.
// The zero value None stands for "no intent" and is never a facing.
type Direction int

const (
	None Direction = iota
	Up
	Left
	Right
	Down
)

// Directions lists the four cardinal directions in input priority order.
var Directions = [...]Direction{Up, Left, Down, Right}

// Unit returns the unit vector for the direction in world space (x right, y up).
func (d Direction) Unit() f64.Vec2 {
	switch d {
	case Up:
		return f64.Vec2{0, 1}
	case Down:
		return f64.Vec2{0, -1}
	case Left:
		return f64.Vec2{-1, 0}
	case Right:
		return f64.Vec2{1, 0}
	default:
		return f64.Vec2{}
	}
}

// Delta returns the tile-step for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Vertical reports whether the direction travels along the y axis.
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Left:
		return "left"
	case Right:
		return "right"
	case Down:
		return "down"
	default:
		return "none"
	}
}
