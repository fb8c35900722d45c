package main

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"stagseek/internal/entity"
)

var (
	colBg      = color.RGBA{0x66, 0x46, 0x46, 0xff}
	styleHUD   = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleGold  = tcell.StyleDefault.Background(tcell.NewRGBColor(0xff, 0xd7, 0x00))
	styleCoin  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xff, 0xd7, 0x00))
	stylePanel = tcell.StyleDefault.Background(tcell.NewRGBColor(0x1c, 0x14, 0x10)).Foreground(tcell.ColorWhite)
	styleBtn   = tcell.StyleDefault.Background(tcell.NewRGBColor(0x8b, 0x5a, 0x2b)).Foreground(tcell.ColorWhite)
)

const (
	popupW     = 44
	popupH     = 9
	restartBtn = "[ RESTART ]"
)

func (g *termGame) draw() {
	g.screen.Clear()
	if g.orientation.Overlay() {
		g.drawOrientation()
		g.screen.Show()
		return
	}

	for cy := hudRows; cy < g.rows; cy++ {
		for cx := 0; cx < g.cols; cx++ {
			x, y := cellToScreen(cx, cy)
			wx, wy := g.view.ScreenToWorld(x, y)
			g.screen.SetContent(cx, cy, ' ', nil, tcell.StyleDefault.Background(toTcell(g.sample(wx, wy))))
		}
	}
	for _, t := range g.targets.Targets {
		if t.Found {
			g.drawFrame(t)
		}
	}
	for _, f := range g.anims.Flights {
		cx, cy := screenToCell(g.view.WorldToScreen(f.Position()))
		if cy >= hudRows {
			g.setRune(cx, cy, '●', styleCoin)
		}
	}

	g.drawHUD()
	if g.hud.end != nil {
		g.drawPopup()
	}
	g.screen.Show()
}

// sample returns the color under a world point: the topmost opaque stag
// pixel, else the map, else the backdrop.
func (g *termGame) sample(wx, wy float64) color.Color {
	for i := len(g.targets.Targets) - 1; i >= 0; i-- {
		t := g.targets.Targets[i]
		if c, ok := g.sampleTarget(t, wx, wy); ok {
			return c
		}
	}
	p := image.Pt(int(wx), int(wy))
	if wx < 0 || wy < 0 || !p.In(g.art.background.Bounds()) {
		return colBg
	}
	return g.art.background.At(p.X, p.Y)
}

func (g *termGame) sampleTarget(t *entity.Target, wx, wy float64) (color.Color, bool) {
	img := g.art.stags[t.Index-1]
	scale := g.anims.PulseScale(t.Index, t.Scale)
	if scale <= 0 {
		return nil, false
	}
	lx := (wx-t.X)/scale + t.W/2
	ly := (wy-t.Y)/scale + t.H/2
	if lx < 0 || ly < 0 || lx >= t.W || ly >= t.H {
		return nil, false
	}
	b := img.Bounds()
	c := img.At(b.Min.X+int(lx), b.Min.Y+int(ly))
	r, gr, bl, a := c.RGBA()
	if a < 0x8000 {
		return nil, false
	}
	if t.Found {
		return color.RGBA64{uint16(r / 2), uint16(gr / 2), uint16(bl / 2), 0xffff}, true
	}
	return c, true
}

// drawFrame outlines a found stag in gold.
func (g *termGame) drawFrame(t *entity.Target) {
	scale := g.anims.PulseScale(t.Index, t.Scale)
	hw, hh := t.W*scale/2, t.H*scale/2
	x0, y0 := screenToCell(g.view.WorldToScreen(t.X-hw, t.Y-hh))
	x1, y1 := screenToCell(g.view.WorldToScreen(t.X+hw, t.Y+hh))
	for cx := x0; cx <= x1; cx++ {
		g.setStyle(cx, y0, styleGold)
		g.setStyle(cx, y1, styleGold)
	}
	for cy := y0; cy <= y1; cy++ {
		g.setStyle(x0, cy, styleGold)
		g.setStyle(x1, cy, styleGold)
	}
}

func (g *termGame) drawHUD() {
	for cx := 0; cx < g.cols; cx++ {
		g.setRune(cx, 0, ' ', styleHUD)
	}
	g.text(0, 0, g.hud.statusLine(), styleHUD)
	if g.hud.lastResult != "" {
		g.text(g.cols-len(g.hud.lastResult)-1, 0, g.hud.lastResult, styleHUD)
	}
}

// popupRect centers the end-of-round box on the screen.
func (g *termGame) popupRect() image.Rectangle {
	x := (g.cols - popupW) / 2
	y := (g.rows - popupH) / 2
	return image.Rect(x, y, x+popupW, y+popupH)
}

func (g *termGame) restartButton() image.Rectangle {
	r := g.popupRect()
	x := r.Min.X + (popupW-len(restartBtn))/2
	return image.Rect(x, r.Max.Y-2, x+len(restartBtn), r.Max.Y-1)
}

func (g *termGame) restartHit(cx, cy int) bool {
	return g.hud.end != nil && image.Pt(cx, cy).In(g.restartButton())
}

func (g *termGame) drawPopup() {
	r := g.popupRect()
	for cy := r.Min.Y; cy < r.Max.Y; cy++ {
		for cx := r.Min.X; cx < r.Max.X; cx++ {
			g.setRune(cx, cy, ' ', stylePanel)
		}
	}
	p := g.hud.end
	title := stylePanel.Bold(true)
	if p.won {
		title = title.Foreground(tcell.NewRGBColor(0xff, 0xd7, 0x00))
	}
	g.centered(r.Min.Y+1, p.title, title)
	g.centered(r.Min.Y+3, p.score, stylePanel)
	g.centered(r.Min.Y+4, p.time, stylePanel)
	btn := g.restartButton()
	g.text(btn.Min.X, btn.Min.Y, restartBtn, styleBtn)
}

func (g *termGame) drawOrientation() {
	mid := g.rows / 2
	g.centered(mid-1, "Please rotate your device", styleHUD)
	g.centered(mid+1, "(widen the terminal to keep playing)", styleHUD)
}

func (g *termGame) centered(cy int, s string, style tcell.Style) {
	g.text((g.cols-len([]rune(s)))/2, cy, s, style)
}

func (g *termGame) text(cx, cy int, s string, style tcell.Style) {
	for _, r := range s {
		g.setRune(cx, cy, r, style)
		cx++
	}
}

func (g *termGame) setRune(cx, cy int, r rune, style tcell.Style) {
	if cx < 0 || cy < 0 || cx >= g.cols || cy >= g.rows {
		return
	}
	g.screen.SetContent(cx, cy, r, nil, style)
}

// setStyle recolors a cell's background, keeping its rune.
func (g *termGame) setStyle(cx, cy int, style tcell.Style) {
	if cx < 0 || cy < hudRows || cx >= g.cols || cy >= g.rows {
		return
	}
	r, _, _, _ := g.screen.GetContent(cx, cy)
	g.screen.SetContent(cx, cy, r, nil, style)
}

func toTcell(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
