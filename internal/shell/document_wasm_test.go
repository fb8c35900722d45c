//go:build js && wasm

package shell

import (
	"syscall/js"
	"testing"
	"time"
)

// stubDocument installs a document whose fullscreen calls return promises
// settled by the JS event loop.
func stubDocument(t *testing.T, reject bool) {
	t.Helper()
	prev := js.Global().Get("document")
	t.Cleanup(func() { js.Global().Set("document", prev) })

	promise := js.Global().Get("Promise")
	request := js.FuncOf(func(js.Value, []js.Value) any {
		if reject {
			return promise.Call("reject", js.Global().Get("Error").New("denied"))
		}
		return promise.Call("resolve")
	})
	t.Cleanup(request.Release)

	doc := js.Global().Get("Object").New()
	el := js.Global().Get("Object").New()
	el.Set("requestFullscreen", request)
	doc.Set("documentElement", el)
	doc.Set("exitFullscreen", request)
	doc.Set("fullscreenElement", js.Null())
	js.Global().Set("document", doc)
}

func waitSettled(t *testing.T, d *DocumentScreen) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for d.Pending() > 0 {
		if time.Now().After(deadline) {
			t.Fatalf("%d fullscreen requests never settled", d.Pending())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestDocumentScreen_ReleasesCallbacks(t *testing.T) {
	for _, reject := range []bool{false, true} {
		stubDocument(t, reject)
		d := &DocumentScreen{}
		for i := 0; i < 3; i++ {
			if err := d.SetFullscreen(i%2 == 0); err != nil {
				t.Fatalf("SetFullscreen: %v", err)
			}
		}
		if d.Pending() != 3 {
			t.Errorf("Pending = %d, want 3", d.Pending())
		}
		waitSettled(t, d)
	}
}
