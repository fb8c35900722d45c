package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"stagseek/internal/round"
	"stagseek/internal/shell"
)

// --- Colors ---
var (
	ColGold    = color.RGBA{0xff, 0xd7, 0x00, 0xff}
	ColPanel   = color.RGBA{0x1c, 0x14, 0x10, 0xe6}
	ColBar     = color.RGBA{0x00, 0x00, 0x00, 0x99}
	ColText    = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ColFaded   = color.RGBA{0x80, 0x80, 0x80, 0xff}
	ColButton  = color.RGBA{0x8b, 0x5a, 0x2b, 0xff}
	ColOverlay = color.RGBA{0x10, 0x10, 0x10, 0xff}
)

// HUD layout, in logical screen pixels.
const (
	barHeight    = 96
	textScale    = 4
	dotRadius    = 22
	dotSpacing   = 90
	popupW       = 900
	popupH       = 460
	buttonW      = 320
	buttonH      = 88
	fullscreenW  = 220
	fullscreenH  = 64
	screenMargin = 24
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

type endPopup struct {
	won   bool
	title string
	score string
	time  string
}

// hud is the ebiten rendition of the presentation port: time display, found
// indicators, end popups and the last result line.
type hud struct {
	timeText   string
	found      [round.TargetCount]bool
	end        *endPopup
	lastResult string

	fullscreenBtn image.Rectangle
	restartBtn    image.Rectangle
}

func newHUD() *hud {
	h := &hud{
		timeText: round.FormatTime(round.Duration),
	}
	h.fullscreenBtn = image.Rect(
		ScreenWidth-screenMargin-fullscreenW, (barHeight-fullscreenH)/2,
		ScreenWidth-screenMargin, (barHeight+fullscreenH)/2,
	)
	px := (ScreenWidth - buttonW) / 2
	py := (ScreenHeight+popupH)/2 - buttonH - 40
	h.restartBtn = image.Rect(px, py, px+buttonW, py+buttonH)
	return h
}

func (h *hud) SetTimeDisplay(remaining int) {
	h.timeText = round.FormatTime(max(0, remaining))
}

func (h *hud) MarkTargetFound(index int) {
	if index < 1 || index > len(h.found) {
		return
	}
	h.found[index-1] = true
}

func (h *hud) ShowRoundEnd(res round.Result, won bool) {
	score, remaining := shell.EndLines(res)
	h.end = &endPopup{
		won:   won,
		title: shell.EndTitle(won),
		score: score,
		time:  remaining,
	}
}

func (h *hud) ShowLastResult(res round.Result) {
	h.lastResult = shell.Summary(res, true)
}

func (h *hud) fullscreenHit(x, y int) bool {
	return image.Pt(x, y).In(h.fullscreenBtn)
}

func (h *hud) restartHit(x, y int) bool {
	return h.end != nil && image.Pt(x, y).In(h.restartBtn)
}

func (h *hud) Draw(screen *ebiten.Image) {
	// Top bar: time, indicators, fullscreen button
	vector.DrawFilledRect(screen, 0, 0, ScreenWidth, barHeight, ColBar, false)
	drawText(screen, "TIME "+h.timeText, screenMargin, barHeight/2-26, textScale, ColText)

	cx := float32(ScreenWidth)/2 - float32(dotSpacing*(len(h.found)-1))/2
	for i, found := range h.found {
		x := cx + float32(i*dotSpacing)
		if found {
			vector.DrawFilledCircle(screen, x, barHeight/2, dotRadius, ColGold, true)
		} else {
			vector.StrokeCircle(screen, x, barHeight/2, dotRadius, 3, ColFaded, true)
		}
	}

	drawButton(screen, h.fullscreenBtn, "FULL")

	if h.lastResult != "" {
		drawText(screen, h.lastResult, screenMargin, ScreenHeight-screenMargin-52, textScale-1, ColText)
	}

	if h.end != nil {
		h.drawPopup(screen)
	}
}

func (h *hud) drawPopup(screen *ebiten.Image) {
	x := float32(ScreenWidth-popupW) / 2
	y := float32(ScreenHeight-popupH) / 2
	vector.DrawFilledRect(screen, x, y, popupW, popupH, ColPanel, false)
	border := ColFaded
	if h.end.won {
		border = ColGold
	}
	vector.StrokeRect(screen, x, y, popupW, popupH, 6, border, false)

	mid := float64(ScreenWidth) / 2
	drawTextCentered(screen, h.end.title, mid, float64(y)+40, textScale+1, ColText)
	drawTextCentered(screen, h.end.score, mid, float64(y)+150, textScale, ColText)
	drawTextCentered(screen, h.end.time, mid, float64(y)+220, textScale, ColText)
	drawButton(screen, h.restartBtn, "RESTART")
}

func (h *hud) drawOrientation(screen *ebiten.Image) {
	screen.Fill(ColOverlay)
	mid := float64(ScreenWidth) / 2
	drawTextCentered(screen, "Please rotate your device", mid, ScreenHeight/2-60, textScale+2, ColText)
	drawTextCentered(screen, "to landscape to keep playing", mid, ScreenHeight/2+40, textScale, ColFaded)
}

func drawButton(screen *ebiten.Image, r image.Rectangle, label string) {
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), ColButton, false)
	cy := float64(r.Min.Y+r.Max.Y)/2 - 13*float64(textScale-1)/2
	drawTextCentered(screen, label, float64(r.Min.X+r.Max.X)/2, cy, textScale-1, ColText)
}

func drawText(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, hudFace, op)
}

func drawTextCentered(dst *ebiten.Image, s string, cx, y, scale float64, clr color.Color) {
	w, _ := text.Measure(s, hudFace, 0)
	drawText(dst, s, cx-w*scale/2, y, scale, clr)
}
