//go:build js && wasm

package shell

import (
	"fmt"
	"log"
	"syscall/js"
)

// DocumentScreen drives the browser Fullscreen API on the document element.
// The request is asynchronous; a rejected promise is logged.
type DocumentScreen struct {
	pending int
}

func (d *DocumentScreen) IsFullscreen() bool {
	el := js.Global().Get("document").Get("fullscreenElement")
	return !el.IsNull() && !el.IsUndefined()
}

func (d *DocumentScreen) SetFullscreen(on bool) error {
	doc := js.Global().Get("document")
	var target js.Value
	var method string
	if on {
		target, method = doc.Get("documentElement"), "requestFullscreen"
	} else {
		target, method = doc, "exitFullscreen"
	}
	if target.Get(method).IsUndefined() {
		return fmt.Errorf("%s not supported", method)
	}

	promise := target.Call(method)
	if promise.IsUndefined() {
		return nil
	}
	var onErr, settle js.Func
	onErr = js.FuncOf(func(_ js.Value, args []js.Value) any {
		msg := "unknown error"
		if len(args) > 0 && !args[0].Get("message").IsUndefined() {
			msg = args[0].Get("message").String()
		}
		log.Printf("shell: %s failed: %s", method, msg)
		return nil
	})
	settle = js.FuncOf(func(js.Value, []js.Value) any {
		onErr.Release()
		settle.Release()
		d.pending--
		return nil
	})
	d.pending++
	promise.Call("catch", onErr).Call("finally", settle)
	return nil
}

// Pending reports how many fullscreen requests are still unsettled. Their
// callbacks are released as each promise settles.
func (d *DocumentScreen) Pending() int {
	return d.pending
}
