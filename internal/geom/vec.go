package geom

import (
	"golang.org/x/image/math/f64"
)

// Add returns a + b.
func Add(a, b f64.Vec2) f64.Vec2 {
	return f64.Vec2{a[0] + b[0], a[1] + b[1]}
}

// Scale returns v * s.
func Scale(v f64.Vec2, s float64) f64.Vec2 {
	return f64.Vec2{v[0] * s, v[1] * s}
}
