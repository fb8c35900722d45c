//go:build js && wasm

package main

import (
	"io/fs"
	"strings"
	"syscall/js"

	"stagseek/internal/assets"
	"stagseek/internal/config"
	"stagseek/internal/shell"
	"stagseek/internal/store"
)

// newAssetFS fetches assets from the page's origin, under the same directory
// name the desktop build reads from disk.
func newAssetFS(cfg *config.Config) fs.FS {
	origin := js.Global().Get("location").Get("origin").String()
	return assets.HTTPFS{Base: origin + "/" + strings.Trim(cfg.AssetDir, "/")}
}

func newStore(*config.Config) store.Store {
	return store.NewLocalStorage()
}

func newScreen() shell.Screen {
	return &shell.DocumentScreen{}
}
