package main

import (
	"fmt"
	"image"
	"log"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"stagseek/internal/anim"
	"stagseek/internal/assets"
	"stagseek/internal/entity"
	"stagseek/internal/round"
	"stagseek/internal/shell"
	"stagseek/internal/store"
	"stagseek/internal/viewport"
)

// Each terminal cell stands for a cellW x cellH block of screen pixels, so
// the viewport keeps working in the same units as the ebiten frontend.
const (
	cellW   = 8
	cellH   = 16
	hudRows = 1

	mousePointer = 0
)

// art holds the decoded images the terminal samples colors from.
type art struct {
	background image.Image
	stags      []image.Image
}

func loadArt(m *assets.Manager) (*art, error) {
	bg, err := m.Image(assets.Background)
	if err != nil {
		return nil, err
	}
	a := &art{background: bg}
	for i := 1; i <= round.TargetCount; i++ {
		img, err := m.Image(assets.Stag(i))
		if err != nil {
			return nil, err
		}
		a.stags = append(a.stags, img)
	}
	return a, nil
}

func (a *art) sizes() []entity.Size {
	out := make([]entity.Size, len(a.stags))
	for i, img := range a.stags {
		b := img.Bounds()
		out[i] = entity.Size{W: float64(b.Dx()), H: float64(b.Dy())}
	}
	return out
}

type termGame struct {
	screen tcell.Screen
	art    *art
	store  store.Store
	chime  chimer

	round       *round.Round
	targets     *entity.Registry
	view        *viewport.Viewport
	anims       anim.Set
	hud         *termHUD
	orientation shell.Orientation

	mouseDown bool
	cols      int
	rows      int
}

func newTermGame(screen tcell.Screen, a *art, st store.Store, chime chimer) *termGame {
	g := &termGame{
		screen: screen,
		art:    a,
		store:  st,
		chime:  chime,
	}
	g.reset()
	return g
}

// reset starts over with a fresh round, like reloading the page. Only the
// stored result survives.
func (g *termGame) reset() {
	g.hud = newTermHUD()
	if res, ok, err := g.store.Load(); err != nil {
		log.Printf("term: loading last result: %v", err)
	} else if ok {
		g.hud.ShowLastResult(res)
	}

	g.round = round.New(g.hud, g.store)
	g.targets = entity.NewRegistry(g.round, entity.DefaultPlacements, g.art.sizes())
	g.targets.OnFound = func(t *entity.Target) {
		g.anims.Reveal(t.Index, t.X, t.Y, t.Scale)
		g.chime.Chime()
	}
	g.anims = anim.Set{}
	g.round.OnEnd(func(round.Outcome) { g.anims.StopPulses() })
	g.orientation.Round = g.round
	g.mouseDown = false

	g.view = viewport.New(0, 0)
	b := g.art.background.Bounds()
	g.view.SetBounds(float64(b.Dx()), float64(b.Dy()))
	g.resize(g.screen.Size())
	g.view.CenterOn(float64(b.Dx())/2, float64(b.Dy())/2)
}

func (g *termGame) resize(cols, rows int) {
	g.cols, g.rows = cols, rows
	g.view.SetViewSize(float64(cols*cellW), float64(max(0, rows-hudRows)*cellH))
	g.orientation.Check(cols*cellW, rows*cellH)
}

// cellToScreen maps the center of a terminal cell into viewport pixels.
func cellToScreen(cx, cy int) (float64, float64) {
	return float64(cx*cellW + cellW/2), float64((cy-hudRows)*cellH + cellH/2)
}

func screenToCell(x, y float64) (int, int) {
	return int(math.Floor(x / cellW)), int(math.Floor(y/cellH)) + hudRows
}

func (g *termGame) update(dt time.Duration) {
	if g.orientation.Overlay() {
		return
	}
	g.round.Advance(dt)
	g.anims.Update(dt)
}

// handle processes one terminal event and reports whether to quit.
func (g *termGame) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.resize(ev.Size())

	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return true
		case ev.Key() != tcell.KeyRune:
		case ev.Rune() == 'q':
			return true
		case ev.Rune() == 'r' && g.round.Over():
			g.reset()
		case (ev.Rune() == '+' || ev.Rune() == '=') && g.interactive():
			g.view.Wheel(-1)
		case ev.Rune() == '-' && g.interactive():
			g.view.Wheel(1)
		}

	case *tcell.EventMouse:
		g.handleMouse(ev)
	}
	return false
}

func (g *termGame) interactive() bool {
	return !g.round.Over() && !g.orientation.Overlay()
}

func (g *termGame) handleMouse(ev *tcell.EventMouse) {
	cx, cy := ev.Position()
	btn := ev.Buttons()
	left := btn&tcell.Button1 != 0

	// A release always ends the gesture, even under the rotate overlay.
	if !left && g.mouseDown {
		g.mouseDown = false
		g.view.PointerUp(mousePointer)
	}
	if g.orientation.Overlay() {
		return
	}

	if g.interactive() {
		if btn&tcell.WheelUp != 0 {
			g.view.Wheel(-1)
		}
		if btn&tcell.WheelDown != 0 {
			g.view.Wheel(1)
		}
	}

	switch {
	case left && !g.mouseDown:
		g.mouseDown = true
		g.press(cx, cy)
	case left && g.interactive():
		x, y := cellToScreen(cx, cy)
		g.view.PointerMove(mousePointer, x, y)
	}
}

func (g *termGame) press(cx, cy int) {
	if g.round.Over() {
		if g.restartHit(cx, cy) {
			g.reset()
		}
		return
	}
	if cy < hudRows {
		return
	}
	x, y := cellToScreen(cx, cy)
	wx, wy := g.view.ScreenToWorld(x, y)
	g.targets.Select(g.targets.TargetAt(wx, wy))
	g.view.PointerDown(mousePointer, x, y)
}

// termHUD is the terminal presentation port. It only keeps strings; draw
// lays them out.
type termHUD struct {
	time       string
	found      [round.TargetCount]bool
	end        *termPopup
	lastResult string
}

type termPopup struct {
	won   bool
	title string
	score string
	time  string
}

func newTermHUD() *termHUD {
	return &termHUD{time: round.FormatTime(round.Duration)}
}

func (h *termHUD) SetTimeDisplay(remaining int) {
	h.time = round.FormatTime(max(0, remaining))
}

func (h *termHUD) MarkTargetFound(index int) {
	if index < 1 || index > len(h.found) {
		return
	}
	h.found[index-1] = true
}

func (h *termHUD) ShowRoundEnd(res round.Result, won bool) {
	score, remaining := shell.EndLines(res)
	h.end = &termPopup{won: won, title: shell.EndTitle(won), score: score, time: remaining}
}

func (h *termHUD) ShowLastResult(res round.Result) {
	h.lastResult = shell.Summary(res, true)
}

// statusLine is the top row: countdown and found indicators.
func (h *termHUD) statusLine() string {
	marks := make([]rune, len(h.found))
	for i, f := range h.found {
		marks[i] = '○'
		if f {
			marks[i] = '●'
		}
	}
	return fmt.Sprintf(" TIME %s  %s ", h.time, string(marks))
}
