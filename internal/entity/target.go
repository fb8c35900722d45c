package entity

import "fmt"

// Placement is where a target sits on the map and how large it is drawn.
type Placement struct {
	X, Y  float64 // center, world pixels
	Scale float64
}

// DefaultPlacements positions the five stags on Map3k.jpg.
var DefaultPlacements = []Placement{
	{X: 2742, Y: 694, Scale: 0.3},
	{X: 321, Y: 671, Scale: 0.4},
	{X: 1255, Y: 916, Scale: 0.4},
	{X: 1174, Y: 1535, Scale: 0.29},
	{X: 2866, Y: 1738, Scale: 0.3},
}

// Size is the unscaled pixel size of a target's image.
type Size struct {
	W, H float64
}

type Target struct {
	Index int // 1-based
	Placement
	Size

	Found       bool
	Interactive bool
}

// ImageName is the asset that draws this target.
func (t *Target) ImageName() string {
	return fmt.Sprintf("Stag%d.png", t.Index)
}

// Bounds returns the drawn rectangle in world coordinates.
func (t *Target) Bounds() (minX, minY, maxX, maxY float64) {
	hw := t.W * t.Scale / 2
	hh := t.H * t.Scale / 2
	return t.X - hw, t.Y - hh, t.X + hw, t.Y + hh
}

// Contains reports whether the world point lies on the target.
func (t *Target) Contains(wx, wy float64) bool {
	minX, minY, maxX, maxY := t.Bounds()
	return wx >= minX && wx <= maxX && wy >= minY && wy <= maxY
}
