/*
Package uitext bakes scalable glyph atlases and renders arbitrarily scaled
text as batched textured quads, consistent with a window-size-driven UI
scaling model.

# Overview

The engine rasterizes the printable ASCII range of a TrueType/OpenType font
into grayscale atlases at several discrete pixel sizes, resolves the font
through a fallback chain (filesystem, embedded resources, system fonts), and
renders each string as a single vertex-buffer upload and a single draw call.
A scale resolver derives a window-relative effective scale and a correction
factor so that switching between discrete atlas sizes never changes the
rendered glyph size, only its sharpness.

The core package is GPU-independent: all texture and draw operations go
through the GPU interface, implemented for OpenGL in backend/opengl.

# Quick Start

	renderer, _ := opengl.NewRenderer(1920, 1080)
	engine := uitext.NewEngine(renderer)
	defer engine.Close()

	engine.Init("assets/fonts/default.ttf", 20)
	engine.SetWindowSize(1920, 1080)

	// Frame loop
	scale := engine.TextScale()
	engine.DrawTextWithShadow("Hello World", 40, 40, scale, uitext.ColorWhite)

If no font can be resolved the engine enters a degraded mode: draw calls
become no-ops and measurements return zero. A font problem never crashes
the host application.
*/
package uitext
