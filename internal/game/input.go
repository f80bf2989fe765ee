package game

import (
	"pacmaze/internal/game/keytracker"
	"pacmaze/internal/geom"
	"pacmaze/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
)

// directionKeys is checked in order; the first held direction wins.
var directionKeys = []struct {
	dir  geom.Direction
	keys []ebiten.Key
}{
	{geom.Up, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{geom.Left, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{geom.Down, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{geom.Right, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
}

// InputHandler turns keyboard state into world requests
type InputHandler struct {
	game    *PacGame
	pressed func(ebiten.Key) bool
	toggles *keytracker.KeyStateTracker
}

// NewInputHandler creates an input handler reading key state from pressed
func NewInputHandler(game *PacGame, pressed func(ebiten.Key) bool) *InputHandler {
	return &InputHandler{
		game:    game,
		pressed: pressed,
		toggles: keytracker.NewWithSource(pressed),
	}
}

// ReadIntent returns the held direction, or None.
func ReadIntent(pressed func(ebiten.Key) bool) geom.Direction {
	for _, dk := range directionKeys {
		for _, key := range dk.keys {
			if pressed(key) {
				return dk.dir
			}
		}
	}
	return geom.None
}

// HandleInput queues the player's intent and handles debug toggles.
// A held key is re-requested every tick so a turn lands as soon as the
// neighbouring tile opens up.
func (ih *InputHandler) HandleInput() {
	ih.game.world.Request(sim.PlayerID, ReadIntent(ih.pressed))

	if ih.toggles.IsKeyJustPressed(ebiten.KeyG) {
		ih.game.showGrid = !ih.game.showGrid
	}
	if ih.toggles.IsKeyJustPressed(ebiten.KeyP) {
		ih.game.perfDebugEnabled = !ih.game.perfDebugEnabled
	}
	if ih.toggles.IsKeyJustPressed(ebiten.KeyR) {
		ih.game.world.ResetMetrics()
	}
}
