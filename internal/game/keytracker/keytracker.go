// keytracker.go - minimal input utility for Ebiten v2
// Provides IsKeyJustPressed functionality for a set of keys.
package keytracker

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyStateTracker tracks the previous state of every key it has been asked about.
type KeyStateTracker struct {
	prevPressed map[ebiten.Key]bool
	pressed     func(ebiten.Key) bool
}

// New creates a tracker reading live keyboard state.
func New() *KeyStateTracker {
	return NewWithSource(ebiten.IsKeyPressed)
}

// NewWithSource creates a tracker reading key state from pressed.
func NewWithSource(pressed func(ebiten.Key) bool) *KeyStateTracker {
	return &KeyStateTracker{
		prevPressed: make(map[ebiten.Key]bool),
		pressed:     pressed,
	}
}

// IsKeyJustPressed returns true if the key was not pressed last call but is pressed now.
func (k *KeyStateTracker) IsKeyJustPressed(key ebiten.Key) bool {
	pressed := k.pressed(key)
	justPressed := pressed && !k.prevPressed[key]
	k.prevPressed[key] = pressed
	return justPressed
}
