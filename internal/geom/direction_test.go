package geom

import (
	"testing"

	"golang.org/x/image/math/f64"
)

func TestUnitMatchesDelta(t *testing.T) {
	for _, d := range Directions {
		dx, dy := d.Delta()
		u := d.Unit()
		if u[0] != float64(dx) || u[1] != float64(dy) {
			t.Errorf("%s: unit %v does not match delta (%d, %d)", d, u, dx, dy)
		}
	}
	if (None.Unit() != f64.Vec2{}) {
		t.Errorf("expected zero unit vector for none")
	}
}

func TestVertical(t *testing.T) {
	tests := []struct {
		in   Direction
		want bool
	}{
		{Up, true},
		{Down, true},
		{Left, false},
		{Right, false},
		{None, false},
	}
	for _, tt := range tests {
		if got := tt.in.Vertical(); got != tt.want {
			t.Errorf("%s.Vertical() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestScaleAndAdd(t *testing.T) {
	v := Add(f64.Vec2{1, 2}, Scale(Right.Unit(), 240*0.5))
	if v[0] != 121 || v[1] != 2 {
		t.Errorf("unexpected vector %v", v)
	}
}
