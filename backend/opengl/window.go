package opengl

import (
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/voxelforge/uitext"
)

// WindowController exposes the window operations the UI layer needs.
// Consumers receive this interface instead of reaching into the windowing
// backend directly.
type WindowController interface {
	SetFullscreen(fullscreen bool)
}

// WindowAdapter wires GLFW framebuffer-size events through a debouncer into
// the text engine, and implements WindowController on top of the window.
type WindowAdapter struct {
	window     *glfw.Window
	debounce   *uitext.ResizeDebouncer
	windowedX  int
	windowedY  int
	windowedW  int
	windowedH  int
	fullscreen bool
}

var _ WindowController = (*WindowAdapter)(nil)

// NewWindowAdapter creates the adapter and installs the framebuffer-size
// callback. A non-positive quiet duration uses the default quiet period.
func NewWindowAdapter(window *glfw.Window, quiet time.Duration) *WindowAdapter {
	a := &WindowAdapter{
		window:   window,
		debounce: uitext.NewResizeDebouncer(quiet),
	}
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		a.debounce.Notify(width, height)
	})
	return a
}

// Update applies a debounced resize to the engine and renderer.
// Call once per frame on the thread owning the GL context.
func (a *WindowAdapter) Update(engine *uitext.Engine, renderer *Renderer) {
	if width, height, ok := a.debounce.Poll(); ok {
		engine.SetWindowSize(width, height)
		renderer.Resize(width, height)
	}
}

// SetFullscreen toggles between fullscreen on the primary monitor and the
// previous windowed placement.
func (a *WindowAdapter) SetFullscreen(fullscreen bool) {
	if fullscreen == a.fullscreen {
		return
	}
	if fullscreen {
		a.windowedX, a.windowedY = a.window.GetPos()
		a.windowedW, a.windowedH = a.window.GetSize()
		monitor := glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()
		a.window.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
	} else {
		a.window.SetMonitor(nil, a.windowedX, a.windowedY, a.windowedW, a.windowedH, 0)
	}
	a.fullscreen = fullscreen
}
