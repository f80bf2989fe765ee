package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GameLoop manages the main game update and render cycle
type GameLoop struct {
	game         *PacGame
	inputHandler *InputHandler
	renderer     *Renderer
}

// NewGameLoop creates a new game loop manager
func NewGameLoop(game *PacGame) *GameLoop {
	return &GameLoop{
		game:         game,
		inputHandler: NewInputHandler(game, ebiten.IsKeyPressed),
		renderer:     NewRenderer(game),
	}
}

// Update handles all game logic updates for one frame. Ebiten calls it at a
// fixed TPS, so the tick delta is constant.
func (gl *GameLoop) Update() error {
	gl.inputHandler.HandleInput()
	gl.game.world.Tick(1 / float64(ebiten.TPS()))
	gl.maybeLogPerf()
	return nil
}

// Draw handles all rendering for one frame
func (gl *GameLoop) Draw(screen *ebiten.Image) {
	gl.renderer.Draw(screen)
}

// Layout returns the screen dimensions
func (gl *GameLoop) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return gl.game.config.GetScreenWidth(), gl.game.config.GetScreenHeight()
}
