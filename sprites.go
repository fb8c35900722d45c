package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"stagseek/internal/assets"
	"stagseek/internal/entity"
	"stagseek/internal/round"
)

type sprites struct {
	background *ebiten.Image
	stags      []*ebiten.Image
	coin       *ebiten.Image
}

// loadSprites uploads every image the scene draws. A missing or broken
// asset is fatal.
func loadSprites(m *assets.Manager) *sprites {
	sp := &sprites{
		background: loadImage(m, assets.Background),
		coin:       loadImage(m, assets.Coin),
	}
	for i := 1; i <= round.TargetCount; i++ {
		sp.stags = append(sp.stags, loadImage(m, assets.Stag(i)))
	}
	return sp
}

func loadImage(m *assets.Manager, name string) *ebiten.Image {
	img, err := m.Image(name)
	if err != nil {
		log.Fatalf("Failed to load image '%s': %v", name, err)
	}
	return ebiten.NewImageFromImage(img)
}

// sizes reports the unscaled size of each stag image for hit testing.
func (sp *sprites) sizes() []entity.Size {
	out := make([]entity.Size, len(sp.stags))
	for i, img := range sp.stags {
		b := img.Bounds()
		out[i] = entity.Size{W: float64(b.Dx()), H: float64(b.Dy())}
	}
	return out
}

func (sp *sprites) stag(index int) *ebiten.Image {
	if index < 1 || index > len(sp.stags) {
		return nil
	}
	return sp.stags[index-1]
}
