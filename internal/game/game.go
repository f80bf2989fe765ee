package game

import (
	"fmt"
	"time"

	"pacmaze/internal/config"
	"pacmaze/internal/sim"
	"pacmaze/internal/sprite"

	"github.com/hajimehoshi/ebiten/v2"
)

// PacGame is the ebiten front end: it samples the keyboard, ticks the world
// and draws the maze with its movers.
type PacGame struct {
	config   *config.Config
	world    *sim.World
	player   *sprite.Mover
	gameLoop *GameLoop

	showGrid         bool
	perfDebugEnabled bool
	perfLastLog      time.Time
}

// NewPacGame spawns the player into world and wires the game loop.
func NewPacGame(cfg *config.Config, world *sim.World) (*PacGame, error) {
	player, err := world.SpawnPlayer()
	if err != nil {
		return nil, fmt.Errorf("failed to spawn player: %w", err)
	}

	g := &PacGame{
		config:   cfg,
		world:    world,
		player:   player,
		showGrid: cfg.Debug.DrawGrid,
	}
	g.gameLoop = NewGameLoop(g)
	return g, nil
}

func (g *PacGame) Update() error {
	return g.gameLoop.Update()
}

func (g *PacGame) Draw(screen *ebiten.Image) {
	g.gameLoop.Draw(screen)
}

func (g *PacGame) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.gameLoop.Layout(outsideWidth, outsideHeight)
}
