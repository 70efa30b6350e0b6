// Example creates a GLFW window, bakes a font atlas set, and renders
// scaled text with a drop shadow. Resize the window to watch the engine
// re-select the atlas size while the rendered text size stays continuous.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/voxelforge/uitext"
	"github.com/voxelforge/uitext/backend/opengl"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	windowTitle  = "uitext example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("text renderer: %w", err)
	}
	defer renderer.Delete()

	engine := uitext.NewEngine(renderer)
	defer engine.Close()

	// Falls back to a system font when the asset is missing; on total
	// failure the engine keeps running in degraded (no-text) mode.
	if err := engine.Init("assets/fonts/default.ttf", 20); err != nil {
		fmt.Fprintln(os.Stderr, "font:", err)
	}
	engine.SetWindowSize(windowWidth, windowHeight)

	adapter := opengl.NewWindowAdapter(window, 0)

	for !window.ShouldClose() {
		glfw.PollEvents()
		adapter.Update(engine, renderer)

		gl.ClearColor(0.10, 0.12, 0.16, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		scale := engine.TextScale()
		lh := engine.LineHeight(scale)

		engine.DrawTextWithShadow("The quick brown fox jumps over the lazy dog", 40, 80, scale, uitext.ColorWhite)
		engine.DrawText(fmt.Sprintf("atlas %dpx  effective %.2f  text scale %.2f",
			engine.FontSize(), engine.Scale().EffectiveScale, scale),
			40, 80+lh, scale, uitext.Color{R: 0.6, G: 0.8, B: 1, A: 1})

		window.SwapBuffers()
	}
	return nil
}
