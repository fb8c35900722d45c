//go:build !js

package main

import (
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"stagseek/internal/config"
	"stagseek/internal/shell"
	"stagseek/internal/store"
)

func newAssetFS(cfg *config.Config) fs.FS {
	return os.DirFS(cfg.AssetDir)
}

func newStore(cfg *config.Config) store.Store {
	return store.NewFileStore(cfg.SavePath)
}

func newScreen() shell.Screen {
	return windowScreen{}
}

// windowScreen toggles the desktop window's fullscreen mode.
type windowScreen struct{}

func (windowScreen) IsFullscreen() bool { return ebiten.IsFullscreen() }

func (windowScreen) SetFullscreen(on bool) error {
	ebiten.SetFullscreen(on)
	return nil
}
