package main

import (
	"image"
	"log"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"stagseek/internal/anim"
	"stagseek/internal/entity"
	"stagseek/internal/round"
	"stagseek/internal/shell"
	"stagseek/internal/store"
	"stagseek/internal/viewport"
)

const mousePointer = -1

// Scene is one round on the map: camera, targets, animations and HUD.
type Scene struct {
	round       *round.Round
	targets     *entity.Registry
	view        *viewport.Viewport
	anims       anim.Set
	hud         *hud
	orientation shell.Orientation

	sprites      *sprites
	playSound    func()
	onFullscreen func()

	touches  []ebiten.TouchID
	pointers map[int]image.Point
	restart  bool
}

func newScene(sp *sprites, st store.Store, playSound, onFullscreen func()) *Scene {
	h := newHUD()
	if res, ok, err := st.Load(); err != nil {
		log.Printf("scene: loading last result: %v", err)
	} else if ok {
		h.ShowLastResult(res)
	}

	r := round.New(h, st)
	s := &Scene{
		round:        r,
		targets:      entity.NewRegistry(r, entity.DefaultPlacements, sp.sizes()),
		view:         viewport.New(ScreenWidth, ScreenHeight),
		hud:          h,
		sprites:      sp,
		playSound:    playSound,
		onFullscreen: onFullscreen,
		pointers:     make(map[int]image.Point),
	}
	s.orientation.Round = r
	s.targets.OnFound = s.reveal
	r.OnEnd(func(round.Outcome) { s.anims.StopPulses() })

	b := sp.background.Bounds()
	s.view.SetBounds(float64(b.Dx()), float64(b.Dy()))
	s.view.CenterOn(float64(b.Dx())/2, float64(b.Dy())/2)

	h.SetTimeDisplay(r.Remaining())
	return s
}

func (s *Scene) Over() bool { return s.round.Over() }

func (s *Scene) requestRestart()        { s.restart = true }
func (s *Scene) restartRequested() bool { return s.restart }

func (s *Scene) reveal(t *entity.Target) {
	s.anims.Reveal(t.Index, t.X, t.Y, t.Scale)
	if s.playSound != nil {
		s.playSound()
	}
}

// Update advances the round by one frame. Nothing moves while the rotate
// overlay is up, but contacts lifted meanwhile are still forgotten.
func (s *Scene) Update() error {
	s.syncPointers()
	if s.orientation.Overlay() {
		return nil
	}
	dt := time.Second / time.Duration(ebiten.TPS())
	s.round.Advance(dt)
	s.anims.Update(dt)
	s.handleInput()
	return nil
}

// syncPointers drops every pointer ebiten no longer reports as down.
func (s *Scene) syncPointers() {
	s.touches = ebiten.AppendTouchIDs(s.touches[:0])
	active := make([]int, 0, len(s.touches)+1)
	for _, id := range s.touches {
		active = append(active, int(id))
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		active = append(active, mousePointer)
	}
	for id := range s.pointers {
		if !slices.Contains(active, id) {
			delete(s.pointers, id)
		}
	}
	s.view.Retain(active)
}

func (s *Scene) handleInput() {
	// Mouse acts as one more pointer.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		s.press(mousePointer, x, y)
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		s.move(mousePointer, x, y)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		s.release(mousePointer)
	}

	s.touches = inpututil.AppendJustPressedTouchIDs(s.touches[:0])
	for _, id := range s.touches {
		x, y := ebiten.TouchPosition(id)
		s.press(int(id), x, y)
	}
	s.touches = ebiten.AppendTouchIDs(s.touches[:0])
	for _, id := range s.touches {
		x, y := ebiten.TouchPosition(id)
		s.move(int(id), x, y)
	}
	s.touches = inpututil.AppendJustReleasedTouchIDs(s.touches[:0])
	for _, id := range s.touches {
		s.release(int(id))
	}

	if _, dy := ebiten.Wheel(); dy != 0 && !s.round.Over() {
		// ebiten reports scrolling up as positive; the viewport takes DOM deltas.
		s.view.Wheel(-dy)
	}
}

func (s *Scene) press(id, x, y int) {
	s.pointers[id] = image.Pt(x, y)

	if s.hud.fullscreenHit(x, y) {
		if s.onFullscreen != nil {
			s.onFullscreen()
		}
		return
	}
	if s.round.Over() {
		if s.hud.restartHit(x, y) {
			s.requestRestart()
		}
		return
	}

	fx, fy := float64(x), float64(y)
	wx, wy := s.view.ScreenToWorld(fx, fy)
	s.targets.Select(s.targets.TargetAt(wx, wy))
	s.view.PointerDown(id, fx, fy)
}

func (s *Scene) move(id, x, y int) {
	last, ok := s.pointers[id]
	if !ok || last == image.Pt(x, y) {
		return
	}
	s.pointers[id] = image.Pt(x, y)
	if s.round.Over() {
		return
	}
	s.view.PointerMove(id, float64(x), float64(y))
}

func (s *Scene) release(id int) {
	delete(s.pointers, id)
	s.view.PointerUp(id)
}

func (s *Scene) Draw(screen *ebiten.Image) {
	if s.orientation.Overlay() {
		s.hud.drawOrientation(screen)
		return
	}

	// 1. Map
	op := &ebiten.DrawImageOptions{}
	s.applyCamera(&op.GeoM)
	screen.DrawImage(s.sprites.background, op)

	// 2. Stags
	for _, t := range s.targets.Targets {
		s.drawTarget(screen, t)
	}

	// 3. Coins on top
	for _, f := range s.anims.Flights {
		x, y := f.Position()
		s.drawCentered(screen, s.sprites.coin, x, y, f.Scale(), nil)
	}

	// 4. HUD and popups
	s.hud.Draw(screen)
}

func (s *Scene) applyCamera(m *ebiten.GeoM) {
	m.Translate(-s.view.ScrollX, -s.view.ScrollY)
	m.Scale(s.view.Zoom, s.view.Zoom)
}

func (s *Scene) drawTarget(screen *ebiten.Image, t *entity.Target) {
	img := s.sprites.stag(t.Index)
	if img == nil {
		return
	}
	scale := s.anims.PulseScale(t.Index, t.Scale)
	if !t.Found {
		s.drawCentered(screen, img, t.X, t.Y, scale, nil)
		return
	}

	// Found stags are faded and framed in gold.
	s.drawCentered(screen, img, t.X, t.Y, scale, func(op *ebiten.DrawImageOptions) {
		op.ColorScale.Scale(0.5, 0.5, 0.5, 1)
	})
	hw := t.W * scale / 2
	hh := t.H * scale / 2
	x0, y0 := s.view.WorldToScreen(t.X-hw, t.Y-hh)
	x1, y1 := s.view.WorldToScreen(t.X+hw, t.Y+hh)
	vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), 5, ColGold, true)
}

// drawCentered draws img centered on the world point (x, y) at scale.
func (s *Scene) drawCentered(screen, img *ebiten.Image, x, y, scale float64, style func(*ebiten.DrawImageOptions)) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	s.applyCamera(&op.GeoM)
	op.Filter = ebiten.FilterLinear
	if style != nil {
		style(op)
	}
	screen.DrawImage(img, op)
}
