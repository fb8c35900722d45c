package main

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"stagseek/internal/assets"
	"stagseek/internal/config"
	"stagseek/internal/shell"
	"stagseek/internal/store"
)

var ColBg = color.RGBA{0x66, 0x46, 0x46, 0xff}

// Game holds what survives a restart: loaded sprites, audio, the result
// store and the display. Everything about the round lives in the scene.
type Game struct {
	Tick int

	sprites    *sprites
	sound      *soundPlayer
	store      store.Store
	fullscreen *shell.Fullscreen
	scene      *Scene
}

func NewGame(cfg *config.Config) *Game {
	m := assets.NewManager(newAssetFS(cfg))

	g := &Game{
		sprites:    loadSprites(m),
		sound:      newSoundPlayer(m, cfg.Muted),
		store:      newStore(cfg),
		fullscreen: &shell.Fullscreen{Screen: newScreen()},
	}
	g.restart()
	return g
}

// restart throws the scene away and builds a fresh one, as a page reload
// would. Only the persisted result carries over.
func (g *Game) restart() {
	if g.scene != nil {
		log.Printf("game: restarting")
	}
	g.scene = newScene(g.sprites, g.store, g.sound.Play, g.fullscreen.Toggle)
}

// Update: Logic (60 TPS)
func (g *Game) Update() error {
	g.Tick++

	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.fullscreen.Toggle()
	}
	if g.scene.Over() && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.scene.requestRestart()
	}

	if err := g.scene.Update(); err != nil {
		return err
	}
	if g.scene.restartRequested() {
		g.restart()
	}
	return nil
}

// Draw: Rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColBg)
	g.scene.Draw(screen)
}

// Layout: fixed logical screen, ebiten scales it into the window. The outside
// size drives the orientation lock.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.orientation.Check(outsideWidth, outsideHeight)
	return ScreenWidth, ScreenHeight
}
