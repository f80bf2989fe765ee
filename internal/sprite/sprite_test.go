package sprite

import (
	"testing"

	"pacmaze/internal/coords"
	"pacmaze/internal/geom"

	"golang.org/x/image/math/f64"
)

func TestNew_Defaults(t *testing.T) {
	m := New("man", geom.Right, []int{0, 1, 2})
	if m.Facing != geom.Right || m.Animating || m.AnimationTick != 0 {
		t.Fatalf("unexpected initial state %+v", m)
	}
	if (m.Velocity != f64.Vec2{}) || (m.TileInfo != coords.TileInfo{}) {
		t.Errorf("expected zero velocity and tile info")
	}
}

func TestTurn_SameFacingKeepsAnimation(t *testing.T) {
	m := New("man", geom.Right, []int{0, 1, 2})
	m.AnimationTick = 2

	m.Turn(f64.Vec2{240, 0}, geom.Right, []int{9, 9, 9})
	if m.Velocity != (f64.Vec2{240, 0}) {
		t.Errorf("expected velocity to update, got %v", m.Velocity)
	}
	if m.AnimationTick != 2 || m.TextureIndexes[0] != 0 {
		t.Errorf("expected animation untouched when facing is unchanged")
	}
}

func TestTurn_NewFacingResetsAnimation(t *testing.T) {
	m := New("man", geom.Right, []int{0, 1, 2})
	m.AnimationTick = 1

	m.Turn(f64.Vec2{0, 240}, geom.Up, []int{28, 29, 2})
	if m.Facing != geom.Up || m.AnimationTick != 0 || m.Frame() != 28 {
		t.Errorf("expected reset animation facing up, got %+v", m)
	}
}

func TestSetTileInfo(t *testing.T) {
	m := New("man", geom.Left, nil)
	if !m.SetTileInfo(coords.TileInfo{X: 3, Y: 4, XOffset: 1}) {
		t.Errorf("expected tile change")
	}
	if m.SetTileInfo(coords.TileInfo{X: 3, Y: 4, XOffset: 5}) {
		t.Errorf("offset-only change must not count as a new tile")
	}
	if m.TileInfo.XOffset != 5 {
		t.Errorf("tile info not stored")
	}
}

func TestAnimate(t *testing.T) {
	m := New("man", geom.Right, []int{0, 1, 2})

	if got := m.Animate(); got != 0 {
		t.Errorf("idle mover must not advance, got frame %d", got)
	}

	m.Animating = true
	want := []int{1, 2, 0, 1}
	for i, w := range want {
		if got := m.Animate(); got != w {
			t.Errorf("step %d: expected frame %d, got %d", i, w, got)
		}
	}

	empty := New("ghost", geom.Up, nil)
	empty.Animating = true
	if empty.Animate() != -1 {
		t.Errorf("expected -1 without indexes")
	}
}

func TestTimer(t *testing.T) {
	timer := NewTimer(0.04)
	if timer.Tick(0.03) {
		t.Errorf("fired early")
	}
	if !timer.Tick(0.015) {
		t.Errorf("expected fire after 0.045s")
	}
	if timer.Tick(0.01) {
		t.Errorf("remainder must carry over without firing")
	}
	if !timer.Tick(0.2) || timer.Tick(0) {
		t.Errorf("long frame fires once and drains")
	}
}
