// Command stagseek-term plays the stag hunt in a terminal. The map is sampled
// into colored cells; drag with the mouse to pan, scroll to zoom and click a
// stag to claim it.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"stagseek/internal/assets"
	"stagseek/internal/config"
	"stagseek/internal/store"
)

const (
	logDir      = "logs"
	logFileName = "stagseek-term.log"
	frameRate   = 30
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

	m := assets.NewManager(os.DirFS(cfg.AssetDir))
	art, err := loadArt(m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stagseek-term: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	var chime chimer = silent{}
	if !cfg.Muted {
		if b, err := newBeeper(loadClip(m)); err != nil {
			// Non-fatal, the game runs without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			chime = b
		}
	}

	g := newTermGame(screen, art, store.NewFileStore(cfg.SavePath), chime)
	run(g)
}

// run pumps terminal events and frames through a single goroutine so the
// round is never touched concurrently.
func run(g *termGame) {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	frame := time.NewTicker(time.Second / frameRate)
	defer frame.Stop()
	last := time.Now()

	g.draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok || g.handle(ev) {
				return
			}
		case now := <-frame.C:
			g.update(now.Sub(last))
			last = now
			g.draw()
		}
	}
}

// setupLogging keeps log output off the terminal: a file under logs/ when
// debugging, discarded otherwise.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
