package main

import (
	"log"

	"pacmaze/internal/config"
	"pacmaze/internal/game"
	"pacmaze/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	// Load configuration
	cfg := config.MustLoadConfig("config.yaml")

	grid, err := sim.LoadGrid(cfg)
	if err != nil {
		log.Fatalf("Failed to load maze: %v", err)
	}

	world := sim.NewWorld(cfg, grid, log.Default())
	defer world.Close()

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.Display.TPS > 0 {
		ebiten.SetTPS(cfg.Display.TPS)
	}

	g, err := game.NewPacGame(cfg, world)
	if err != nil {
		log.Fatal(err)
	}
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
