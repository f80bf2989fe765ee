package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"pacmaze/internal/config"
	"pacmaze/internal/sim"
	"pacmaze/internal/tui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := config.MustLoadConfig("config.yaml")

	// The terminal belongs to the viewer, so logs go to a file or nowhere.
	logger := log.New(io.Discard, "", log.LstdFlags)
	if cfg.Debug.LogMovement {
		f, err := os.Create("pacmaze-tui.log")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	grid, err := sim.LoadGrid(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load maze: %v\n", err)
		os.Exit(1)
	}
	world := sim.NewWorld(cfg, grid, logger)
	defer world.Close()
	if _, err := world.SpawnPlayer(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to spawn player: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := tui.NewViewer(screen, world, cfg.Display.TPS).Run(ctx); err != nil && err != context.Canceled {
		logger.Printf("viewer stopped: %v", err)
	}
}
