package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"stagseek/internal/config"
)

// Screen Constants (16:9, the map is panned and zoomed inside it)
const (
	ScreenWidth  = 1920
	ScreenHeight = 1080
	WindowTitle  = "Stag Seek"
)

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal(err)
	}
	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	// 1. Window Setup
	ebiten.SetWindowSize(int(ScreenWidth*cfg.Scale), int(ScreenHeight*cfg.Scale))
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)

	// 2. Initialize Game
	game := NewGame(cfg)

	// 3. Run Loop
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
