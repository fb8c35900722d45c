package viewport

import (
	"math"
	"slices"
	"sort"
)

// Zoom limits and wheel steps.
const (
	MinZoom     = 0.5
	MaxZoom     = 3.0
	DefaultZoom = 0.5

	WheelZoomIn  = 1.1
	WheelZoomOut = 0.9
)

type Mode int

const (
	Idle Mode = iota
	Dragging
	Pinching
)

type point struct {
	x, y float64
}

type dragState struct {
	anchorX, anchorY float64 // world coords held under the pointer
}

type pinchState struct {
	ids         [2]int
	initialDist float64
	initialZoom float64
}

// Viewport is a camera over a world plane. Screen coordinates map to the
// world as world = scroll + screen/zoom.
type Viewport struct {
	Zoom    float64
	ScrollX float64
	ScrollY float64

	viewW, viewH   float64
	boundW, boundH float64
	bounded        bool
	mode           Mode
	drag           dragState
	pinch          pinchState
	pointers       map[int]point
}

func New(viewW, viewH float64) *Viewport {
	return &Viewport{
		Zoom:     DefaultZoom,
		viewW:    viewW,
		viewH:    viewH,
		pointers: make(map[int]point),
	}
}

func (v *Viewport) Mode() Mode { return v.mode }

// SetViewSize updates the screen size in pixels.
func (v *Viewport) SetViewSize(w, h float64) {
	v.viewW, v.viewH = w, h
	v.clampScroll()
}

func (v *Viewport) ViewSize() (float64, float64) {
	return v.viewW, v.viewH
}

// SetBounds keeps the camera inside a w x h world rectangle at the origin.
func (v *Viewport) SetBounds(w, h float64) {
	v.boundW, v.boundH = w, h
	v.bounded = w > 0 && h > 0
	v.clampScroll()
}

// CenterOn scrolls so that the world point (x, y) sits mid-screen.
func (v *Viewport) CenterOn(x, y float64) {
	v.ScrollX = x - v.viewW/(2*v.Zoom)
	v.ScrollY = y - v.viewH/(2*v.Zoom)
	v.clampScroll()
}

// SetZoom applies z clamped to [MinZoom, MaxZoom].
func (v *Viewport) SetZoom(z float64) {
	v.Zoom = Clamp(z, MinZoom, MaxZoom)
	v.clampScroll()
}

// Wheel zooms out on a positive delta and in otherwise.
func (v *Viewport) Wheel(deltaY float64) {
	factor := WheelZoomIn
	if deltaY > 0 {
		factor = WheelZoomOut
	}
	v.SetZoom(v.Zoom * factor)
}

// PointerDown registers a contact. A second simultaneous contact starts a
// pinch; a lone contact starts a drag unless a pinch is running.
func (v *Viewport) PointerDown(id int, x, y float64) {
	v.pointers[id] = point{x, y}

	if len(v.pointers) == 2 {
		a, b := v.pair()
		v.mode = Pinching
		v.pinch = pinchState{
			ids:         [2]int{a, b},
			initialDist: distance(v.pointers[a], v.pointers[b]),
			initialZoom: v.Zoom,
		}
		return
	}
	if v.mode == Pinching {
		return
	}
	v.mode = Dragging
	v.drag = dragState{
		anchorX: v.ScrollX + x/v.Zoom,
		anchorY: v.ScrollY + y/v.Zoom,
	}
}

func (v *Viewport) PointerMove(id int, x, y float64) {
	if _, ok := v.pointers[id]; ok {
		v.pointers[id] = point{x, y}
	}

	switch v.mode {
	case Pinching:
		a, okA := v.pointers[v.pinch.ids[0]]
		b, okB := v.pointers[v.pinch.ids[1]]
		if !okA || !okB || v.pinch.initialDist == 0 {
			return
		}
		v.SetZoom(v.pinch.initialZoom * (distance(a, b) / v.pinch.initialDist))
	case Dragging:
		v.ScrollX = v.drag.anchorX - x/v.Zoom
		v.ScrollY = v.drag.anchorY - y/v.Zoom
		v.clampScroll()
	}
}

// PointerUp ends any gesture, whichever contact was lifted.
func (v *Viewport) PointerUp(id int) {
	delete(v.pointers, id)
	v.mode = Idle
}

// Retain forgets every pointer not in active, the contacts the input system
// still reports as down. A release the caller never saw would otherwise
// leave a stale contact that turns the next lone touch into a pinch.
func (v *Viewport) Retain(active []int) {
	for id := range v.pointers {
		if !slices.Contains(active, id) {
			v.PointerUp(id)
		}
	}
}

// ScreenToWorld converts a screen position into world coordinates.
func (v *Viewport) ScreenToWorld(x, y float64) (float64, float64) {
	return v.ScrollX + x/v.Zoom, v.ScrollY + y/v.Zoom
}

func (v *Viewport) WorldToScreen(x, y float64) (float64, float64) {
	return (x - v.ScrollX) * v.Zoom, (y - v.ScrollY) * v.Zoom
}

// pair returns the two active pointer ids in a stable order.
func (v *Viewport) pair() (int, int) {
	ids := make([]int, 0, len(v.pointers))
	for id := range v.pointers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids[0], ids[1]
}

func (v *Viewport) clampScroll() {
	if !v.bounded || v.Zoom <= 0 {
		return
	}
	v.ScrollX = clampAxis(v.ScrollX, v.viewW/v.Zoom, v.boundW)
	v.ScrollY = clampAxis(v.ScrollY, v.viewH/v.Zoom, v.boundH)
}

// clampAxis keeps a span of the given size inside [0, bound]; a span wider
// than the bound is centered on it.
func clampAxis(scroll, span, bound float64) float64 {
	if span >= bound {
		return (bound - span) / 2
	}
	return Clamp(scroll, 0, bound-span)
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func distance(a, b point) float64 {
	return math.Hypot(b.x-a.x, b.y-a.y)
}
