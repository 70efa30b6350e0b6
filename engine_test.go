package uitext_test

import (
	"errors"
	"math"
	"testing"

	"github.com/voxelforge/uitext"
)

func newTestEngine(t *testing.T, opts ...uitext.Option) (*uitext.Engine, *mockGPU) {
	t.Helper()
	gpu := &mockGPU{}
	fontPath := writeTempFont(t, testFontData)

	defaults := []uitext.Option{
		uitext.WithRasterizer(&stubRasterizer{}),
		uitext.WithResolver(uitext.NewResolver(uitext.WithSystemFontPaths([]string{}))),
	}
	engine := uitext.NewEngine(gpu, append(defaults, opts...)...)
	if err := engine.Init(fontPath, 20); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return engine, gpu
}

func newDegradedEngine(t *testing.T) (*uitext.Engine, *mockGPU) {
	t.Helper()
	gpu := &mockGPU{}
	engine := uitext.NewEngine(gpu,
		uitext.WithRasterizer(&stubRasterizer{}),
		uitext.WithResolver(uitext.NewResolver(uitext.WithSystemFontPaths([]string{}))),
	)
	err := engine.Init("does/not/exist.ttf", 20)
	if !errors.Is(err, uitext.ErrFontNotFound) {
		t.Fatalf("Init err = %v, want ErrFontNotFound", err)
	}
	if !engine.Degraded() {
		t.Fatal("engine must be degraded after total resolution failure")
	}
	return engine, gpu
}

func TestEngineInitBakesDefaults(t *testing.T) {
	engine, gpu := newTestEngine(t)
	if gpu.creates != 4 {
		t.Errorf("texture creates = %d, want 4", gpu.creates)
	}
	if engine.FontSize() != 20 {
		t.Errorf("initial font size = %d, want 20", engine.FontSize())
	}
	if engine.Degraded() {
		t.Error("engine must not be degraded after a successful init")
	}
}

func TestEngineInitFallbackTargetsNominalSize(t *testing.T) {
	gpu := &mockGPU{}
	sysFont := writeTempFont(t, testFontData)
	engine := uitext.NewEngine(gpu,
		uitext.WithRasterizer(&stubRasterizer{}),
		uitext.WithResolver(uitext.NewResolver(uitext.WithSystemFontPaths([]string{sysFont}))),
	)
	// Requested path is missing, so the system font supplies the data and
	// the nominal size wins over the 20px default.
	if err := engine.Init("does/not/exist.ttf", 32); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if engine.FontSize() != 32 {
		t.Errorf("fallback font size = %d, want nominal 32", engine.FontSize())
	}
}

func TestEngineInitAllSizesFailed(t *testing.T) {
	gpu := &mockGPU{}
	fontPath := writeTempFont(t, testFontData)
	engine := uitext.NewEngine(gpu,
		uitext.WithRasterizer(&stubRasterizer{failSizes: map[int]bool{16: true, 20: true, 24: true, 32: true}}),
		uitext.WithResolver(uitext.NewResolver(uitext.WithSystemFontPaths([]string{}))),
	)
	err := engine.Init(fontPath, 20)
	if !errors.Is(err, uitext.ErrAllSizesFailed) {
		t.Fatalf("Init err = %v, want ErrAllSizesFailed", err)
	}
	if !engine.Degraded() {
		t.Error("engine must be degraded when every size fails to bake")
	}
}

func TestEngineDrawText(t *testing.T) {
	engine, gpu := newTestEngine(t)

	engine.DrawText("AB", 0, 0, 1, uitext.ColorWhite)
	if gpu.draws != 1 {
		t.Fatalf("draws = %d, want exactly 1 per string", gpu.draws)
	}
	if len(gpu.lastVertices) != 12 {
		t.Errorf("vertices = %d, want 12 for two glyphs", len(gpu.lastVertices))
	}
	if gpu.lastTexture == 0 {
		t.Error("draw must bind the active atlas texture")
	}
}

func TestEngineDrawSkipsOutOfRange(t *testing.T) {
	engine, gpu := newTestEngine(t)

	// Control characters only: zero glyphs, so no upload and no draw.
	engine.DrawText("\x01\x02\t\x7f", 0, 0, 1, uitext.ColorWhite)
	if gpu.draws != 0 {
		t.Errorf("draws = %d for out-of-range-only string, want 0", gpu.draws)
	}

	engine.DrawText("", 0, 0, 1, uitext.ColorWhite)
	if gpu.draws != 0 {
		t.Errorf("draws = %d for empty string, want 0", gpu.draws)
	}
}

func TestEngineDrawNewline(t *testing.T) {
	engine, gpu := newTestEngine(t)

	engine.DrawText("A\nB", 10, 100, 1, uitext.ColorWhite)
	if len(gpu.lastVertices) != 12 {
		t.Fatalf("vertices = %d, want 12", len(gpu.lastVertices))
	}

	// Stub glyphs: XOff 0, YOff -6, line height 24 at the 20px atlas.
	first := gpu.lastVertices[0]
	second := gpu.lastVertices[6]
	if first.Pos != [2]float32{10, 94} {
		t.Errorf("first glyph at %v, want {10, 94}", first.Pos)
	}
	if second.Pos != [2]float32{10, 118} {
		t.Errorf("glyph after newline at %v, want pen X reset and Y advanced by line height", second.Pos)
	}
}

func TestEngineDrawTextWithShadow(t *testing.T) {
	engine, gpu := newTestEngine(t)

	engine.DrawTextWithShadow("A", 0, 0, 1, uitext.ColorWhite)
	if gpu.draws != 2 {
		t.Fatalf("draws = %d, want 2 (shadow pass + color pass)", gpu.draws)
	}
	shadow := gpu.drawColors[0]
	if shadow.R != 0 || shadow.G != 0 || shadow.B != 0 {
		t.Errorf("shadow pass color = %+v, want black", shadow)
	}
	if math.Abs(float64(shadow.A-uitext.DefaultShadowAlpha)) > 1e-6 {
		t.Errorf("shadow alpha = %v, want %v", shadow.A, uitext.DefaultShadowAlpha)
	}
	if gpu.drawColors[1] != uitext.ColorWhite {
		t.Errorf("color pass = %+v, want white", gpu.drawColors[1])
	}
}

func TestEngineTextWidth(t *testing.T) {
	engine, _ := newTestEngine(t)

	// Stub advance is a flat 10 per glyph.
	if got := engine.TextWidth("AB", 1); got != 20 {
		t.Errorf("TextWidth(\"AB\") = %v, want 20", got)
	}
	if got := engine.TextWidth("AB", 2); got != 40 {
		t.Errorf("TextWidth(\"AB\", 2) = %v, want 40", got)
	}
	// Out-of-range codes contribute zero advance.
	if got := engine.TextWidth("A\x01B", 1); got != 20 {
		t.Errorf("TextWidth with control char = %v, want 20", got)
	}
	// Multi-line measures the widest line.
	if got := engine.TextWidth("AB\nABC", 1); got != 30 {
		t.Errorf("TextWidth multi-line = %v, want 30", got)
	}
}

func TestEngineLineHeight(t *testing.T) {
	engine, _ := newTestEngine(t)
	// 20px atlas, line height 20 * 1.2 = 24.
	if got := engine.LineHeight(1); got != 24 {
		t.Errorf("LineHeight(1) = %v, want 24", got)
	}
	if got := engine.LineHeight(2); got != 48 {
		t.Errorf("LineHeight(2) = %v, want 48", got)
	}
}

func TestEngineScaleSelectsAtlas(t *testing.T) {
	engine, _ := newTestEngine(t)

	engine.SetWindowSize(960, 540)
	if engine.FontSize() != 16 {
		t.Errorf("font size after shrink = %d, want 16", engine.FontSize())
	}

	engine.SetWindowSize(1920, 1080)
	engine.SetUserScale(2.0)
	if engine.FontSize() != 32 {
		t.Errorf("font size at user scale 2 = %d, want 32", engine.FontSize())
	}
}

func TestEngineTextScaleIdentity(t *testing.T) {
	engine, _ := newTestEngine(t)

	for _, size := range [][2]int{{1920, 1080}, {960, 540}, {2560, 1440}, {3840, 2160}} {
		engine.SetWindowSize(size[0], size[1])
		rendered := float32(engine.FontSize()) * engine.TextScale()
		want := engine.Scale().EffectiveScale * uitext.BaseFontSize
		if math.Abs(float64(rendered-want)) > 1e-3 {
			t.Errorf("window %dx%d: rendered %v, want %v", size[0], size[1], rendered, want)
		}
	}
}

func TestEngineSetFontSize(t *testing.T) {
	engine, _ := newTestEngine(t)
	engine.SetFontSize(23)
	if engine.FontSize() != 24 {
		t.Errorf("SetFontSize(23) selected %d, want 24", engine.FontSize())
	}
}

func TestEngineDegradedMode(t *testing.T) {
	engine, gpu := newDegradedEngine(t)

	engine.DrawText("hello", 0, 0, 1, uitext.ColorWhite)
	engine.DrawTextWithShadow("hello", 0, 0, 1, uitext.ColorWhite)
	if gpu.draws != 0 {
		t.Errorf("draws = %d in degraded mode, want 0", gpu.draws)
	}
	if got := engine.TextWidth("hello", 1); got != 0 {
		t.Errorf("TextWidth = %v in degraded mode, want 0", got)
	}
	if got := engine.LineHeight(1); got != 0 {
		t.Errorf("LineHeight = %v in degraded mode, want 0", got)
	}
	if got := engine.FontSize(); got != 0 {
		t.Errorf("FontSize = %d in degraded mode, want 0", got)
	}

	// Scale changes must stay safe without any atlases.
	engine.SetWindowSize(800, 600)
	engine.SetUserScale(1.5)
	engine.SetFontSize(24)
}

func TestEngineCloseIdempotent(t *testing.T) {
	engine, gpu := newTestEngine(t)
	engine.Close()
	engine.Close()
	if gpu.deletes != gpu.creates {
		t.Errorf("deletes = %d, want %d (every created texture released once)", gpu.deletes, gpu.creates)
	}
}
