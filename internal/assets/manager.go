package assets

import (
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"io/fs"
)

// Asset names
const (
	Background = "Map3k.jpg"
	FoundSound = "sound.mp3"
	Coin       = "Stag1.png"
)

// Stag returns the image name of target i (1-based).
func Stag(i int) string {
	return fmt.Sprintf("Stag%d.png", i)
}

// Manager loads and caches decoded images from a file system.
type Manager struct {
	fsys   fs.FS
	images map[string]image.Image
}

func NewManager(fsys fs.FS) *Manager {
	return &Manager{
		fsys:   fsys,
		images: make(map[string]image.Image),
	}
}

// Image decodes a PNG or JPEG by name. Results are cached.
func (m *Manager) Image(name string) (image.Image, error) {
	if img, ok := m.images[name]; ok {
		return img, nil
	}
	f, err := m.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open image %q: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", name, err)
	}
	m.images[name] = img
	return img, nil
}

// Bytes reads a raw asset such as an audio clip.
func (m *Manager) Bytes(name string) ([]byte, error) {
	data, err := fs.ReadFile(m.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read asset %q: %w", name, err)
	}
	return data, nil
}
