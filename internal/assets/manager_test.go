package assets

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{0xff, 0xd7, 0x00, 0xff})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestManager_ImageDecodesAndCaches(t *testing.T) {
	fsys := fstest.MapFS{
		Stag(1): {Data: pngBytes(t, 64, 32)},
	}
	m := NewManager(fsys)

	img, err := m.Image(Stag(1))
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Errorf("bounds = %v, want 64x32", b)
	}

	delete(fsys, Stag(1))
	if _, err := m.Image(Stag(1)); err != nil {
		t.Errorf("cached Image failed: %v", err)
	}
}

func TestManager_Errors(t *testing.T) {
	m := NewManager(fstest.MapFS{
		"broken.png": {Data: []byte("not a png")},
	})
	if _, err := m.Image("missing.png"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing image err = %v, want ErrNotExist", err)
	}
	if _, err := m.Image("broken.png"); err == nil {
		t.Error("broken image decoded without error")
	}
	if _, err := m.Bytes(FoundSound); err == nil {
		t.Error("missing sound read without error")
	}
}

func TestStag(t *testing.T) {
	if Stag(4) != "Stag4.png" {
		t.Errorf("Stag(4) = %q", Stag(4))
	}
}

func TestHTTPFS(t *testing.T) {
	data := pngBytes(t, 8, 8)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/assets/"+Stag(2) {
			http.NotFound(w, r)
			return
		}
		w.Write(data)
	}))
	defer srv.Close()

	m := NewManager(HTTPFS{Base: srv.URL + "/assets/", Client: srv.Client()})
	img, err := m.Image(Stag(2))
	if err != nil {
		t.Fatalf("Image over HTTP: %v", err)
	}
	if img.Bounds().Dx() != 8 {
		t.Errorf("width = %d, want 8", img.Bounds().Dx())
	}

	if _, err := m.Bytes(FoundSound); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing asset err = %v, want ErrNotExist", err)
	}
	if _, err := (HTTPFS{Base: srv.URL}).Open("../escape"); !errors.Is(err, fs.ErrInvalid) {
		t.Errorf("invalid path err = %v, want ErrInvalid", err)
	}
}
