//go:build js && wasm

package gui

import (
	"fmt"
	"syscall/js"
)

// DOMFullscreen requests fullscreen for the page through the browser
// Fullscreen API. Browsers only grant it from a user gesture, so it is bound
// to DOM events by BindFullscreenControls rather than polled from Update.
type DOMFullscreen struct{}

// ToggleFullscreen enters fullscreen, or leaves it when already active.
// A rejected request is reported to the user with alert.
func (DOMFullscreen) ToggleFullscreen() error {
	doc := js.Global().Get("document")
	if doc.Get("fullscreenElement").Truthy() {
		doc.Call("exitFullscreen")
		return nil
	}

	el := doc.Get("documentElement")
	if !el.Get("requestFullscreen").Truthy() {
		return fmt.Errorf("gui: fullscreen API unavailable")
	}

	var onOK, onErr js.Func
	release := func() {
		onOK.Release()
		onErr.Release()
	}
	onOK = js.FuncOf(func(js.Value, []js.Value) any {
		release()
		return nil
	})
	onErr = js.FuncOf(func(_ js.Value, args []js.Value) any {
		defer release()
		msg, name := "unknown", "Error"
		if len(args) > 0 && args[0].Truthy() {
			msg = args[0].Get("message").String()
			name = args[0].Get("name").String()
		}
		js.Global().Call("alert", fmt.Sprintf("Error attempting to enable full-screen mode: %s (%s)", msg, name))
		return nil
	})
	el.Call("requestFullscreen").Call("then", onOK, onErr)
	return nil
}

// BindFullscreenControls toggles fullscreen on the F key and on clicks of the
// element with id controlID, when the page has one. The returned func removes
// the listeners.
func BindFullscreenControls(controlID string) func() {
	var fs DOMFullscreen
	doc := js.Global().Get("document")

	onKey := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) > 0 {
			if k := args[0].Get("key").String(); k == "f" || k == "F" {
				_ = fs.ToggleFullscreen()
			}
		}
		return nil
	})
	onClick := js.FuncOf(func(js.Value, []js.Value) any {
		_ = fs.ToggleFullscreen()
		return nil
	})

	doc.Call("addEventListener", "keydown", onKey)
	control := doc.Call("getElementById", controlID)
	if control.Truthy() {
		control.Call("addEventListener", "click", onClick)
	}

	return func() {
		doc.Call("removeEventListener", "keydown", onKey)
		if control.Truthy() {
			control.Call("removeEventListener", "click", onClick)
		}
		onKey.Release()
		onClick.Release()
	}
}
