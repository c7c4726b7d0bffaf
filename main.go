package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/agesail/pkg/app"
	"github.com/decker502/agesail/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Main] Failed to load configuration: %v", err)
	}

	a, err := app.New(cfg, defaultLayout)
	if err != nil {
		log.Fatalf("[Main] Failed to start: %v", err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(a); err != nil {
		log.Fatalf("[Main] Game exited with error: %v", err)
	}
}
