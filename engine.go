package uitext

import "fmt"

// Color is a normalized RGBA color applied uniformly to a whole string.
type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
)

// GPU is the rendering backend contract. backend/opengl provides the real
// implementation; tests inject mocks.
type GPU interface {
	TextureUploader

	// DrawBatch uploads the batch's vertex buffer once and issues exactly
	// one draw call for it, with the given atlas texture bound and the
	// color applied uniformly.
	DrawBatch(batch *TextBatch, texture uint32, color Color) error
}

// Default shadow parameters for DrawTextWithShadow.
const (
	DefaultShadowOffset float32 = 2.0
	DefaultShadowAlpha  float32 = 0.6
)

// DefaultAtlasSizes is the discrete size set baked on Init.
var DefaultAtlasSizes = []int{16, 20, 24, 32}

// Engine is the text rendering engine: it owns the font resolution result,
// the multi-size atlas cache and the reusable vertex batch, and exposes the
// draw and measurement surface the widget layer consumes.
//
// Single-threaded and frame-synchronous: all baking, uploading and drawing
// happen on the thread owning the graphics context.
type Engine struct {
	gpu      GPU
	resolver *Resolver
	rast     Rasterizer
	cache    *AtlasCache
	sizes    []int
	batch    TextBatch
	scale    ScaleState

	degraded     bool
	fallbackFont bool

	shadowOffset float32
	shadowAlpha  float32
}

// Option configures an Engine.
type Option func(*Engine)

// WithResolver replaces the default font resolver.
func WithResolver(r *Resolver) Option {
	return func(e *Engine) { e.resolver = r }
}

// WithRasterizer replaces the default OpenType rasterizer.
func WithRasterizer(r Rasterizer) Option {
	return func(e *Engine) { e.rast = r }
}

// WithAtlasSizes replaces the discrete atlas size set baked on Init.
func WithAtlasSizes(sizes ...int) Option {
	return func(e *Engine) { e.sizes = sizes }
}

// WithShadow sets the default shadow offset and alpha.
func WithShadow(offset, alpha float32) Option {
	return func(e *Engine) {
		e.shadowOffset = offset
		e.shadowAlpha = alpha
	}
}

// NewEngine creates an engine rendering through gpu. Call Init before
// drawing; call Close to release atlas textures.
func NewEngine(gpu GPU, opts ...Option) *Engine {
	e := &Engine{
		gpu:          gpu,
		resolver:     NewResolver(),
		rast:         NewRasterizer(),
		sizes:        DefaultAtlasSizes,
		scale:        ResolveScale(ReferenceWidth, ReferenceHeight, 1),
		shadowOffset: DefaultShadowOffset,
		shadowAlpha:  DefaultShadowAlpha,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.cache = NewAtlasCache(gpu, e.rast)
	return e
}

// Init resolves fontPath through the fallback chain and bakes the discrete
// atlas sizes. When the resolved source is a fallback font, the initially
// active size targets the caller's nominal size instead of the default,
// since fallback fonts are used as-is rather than at an authored size.
//
// On failure the engine enters degraded mode: drawing becomes a no-op and
// measurements return zero. The returned error is informational; the host
// application is never interrupted by a font problem.
func (e *Engine) Init(fontPath string, nominalSize int) error {
	e.degraded = false
	e.fallbackFont = false

	result, err := e.resolver.Resolve(fontPath)
	if err != nil {
		logger.Error("font resolution failed, text rendering disabled", "path", fontPath, "err", err)
		e.degraded = true
		return err
	}
	e.fallbackFont = result.Fallback()

	count := e.cache.Initialize(result.Data, e.sizes)
	if count == 0 {
		logger.Error("text rendering disabled", "source", result.Source, "err", ErrAllSizesFailed)
		e.degraded = true
		return fmt.Errorf("%w: source %s", ErrAllSizesFailed, result.Source)
	}

	if e.fallbackFont {
		e.cache.Select(nominalSize)
	} else {
		e.cache.Select(BaseFontSize)
	}
	logger.Info("font atlases baked",
		"source", result.Source, "sizes", e.cache.Sizes(), "active", e.cache.ActiveSize())
	return nil
}

// Degraded reports whether the engine is in degraded (no-text) mode.
func (e *Engine) Degraded() bool { return e.degraded }

// SetWindowSize recomputes the scale state from the new window dimensions
// and re-selects the recommended atlas size. Callers are expected to
// debounce resize bursts (see ResizeDebouncer).
func (e *Engine) SetWindowSize(width, height int) {
	e.scale = ResolveScale(width, height, e.scale.UserScale)
	e.applyScale()
}

// SetUserScale updates the user preference multiplier and re-selects the
// recommended atlas size.
func (e *Engine) SetUserScale(userScale float32) {
	e.scale = ResolveScale(e.scale.WindowWidth, e.scale.WindowHeight, userScale)
	e.applyScale()
}

// Scale returns the current scale state snapshot.
func (e *Engine) Scale() ScaleState { return e.scale }

func (e *Engine) applyScale() {
	if e.degraded {
		return
	}
	e.cache.Select(e.scale.RecommendedAtlasSize())
}

// SetFontSize selects the cached atlas nearest to size.
func (e *Engine) SetFontSize(size int) {
	if e.degraded {
		return
	}
	e.cache.Select(size)
}

// FontSize returns the active atlas pixel size, or 0 in degraded mode.
func (e *Engine) FontSize() int { return e.cache.ActiveSize() }

// TextScale returns the correction factor for the active atlas, so that the
// rendered glyph size tracks the effective scale regardless of which
// discrete atlas is active.
func (e *Engine) TextScale() float32 {
	return TextScaleFor(e.scale.EffectiveScale, e.cache.ActiveSize())
}

// DrawText renders text with its baseline starting at (x, y). The whole
// string is one vertex-buffer upload and one draw call. No-op in degraded
// mode or when no glyph is emitted.
func (e *Engine) DrawText(text string, x, y, scale float32, color Color) {
	if e.degraded || text == "" {
		return
	}
	atlas := e.cache.Active()
	if atlas == nil {
		return
	}

	e.batch.Reset()
	if e.batch.AppendString(atlas.Image, text, x, y, scale) == 0 {
		return
	}
	if err := e.gpu.DrawBatch(&e.batch, atlas.Texture, color); err != nil {
		logger.Warn("text draw failed", "err", err)
	}
}

// DrawTextWithShadow renders text with the engine's default drop shadow.
func (e *Engine) DrawTextWithShadow(text string, x, y, scale float32, color Color) {
	e.DrawTextShadowed(text, x, y, scale, color, e.shadowOffset, e.shadowAlpha)
}

// DrawTextShadowed renders text twice: a solid black pass offset by
// (shadowOffset, shadowOffset) at shadowAlpha, then the normal pass.
// Deliberately not a shader effect; the renderer stays shader-simple at
// the cost of double fill rate for shadowed text.
func (e *Engine) DrawTextShadowed(text string, x, y, scale float32, color Color, shadowOffset, shadowAlpha float32) {
	if e.degraded || text == "" {
		return
	}
	offset := max(float32(0), shadowOffset)
	alpha := clampf(shadowAlpha, 0, 1)

	e.DrawText(text, x+offset, y+offset, scale, Color{A: alpha})
	e.DrawText(text, x, y, scale, color)
}

// TextWidth measures text using the same advance table and walk rules as
// DrawText. Multi-line text measures as the widest line. Returns 0 in
// degraded mode; layout code must treat 0 as a valid answer.
func (e *Engine) TextWidth(text string, scale float32) float32 {
	if e.degraded {
		return 0
	}
	atlas := e.cache.Active()
	if atlas == nil {
		return 0
	}
	return measureWidth(atlas.Image, text, scale)
}

// LineHeight returns the active atlas's line height times scale, or 0 in
// degraded mode.
func (e *Engine) LineHeight(scale float32) float32 {
	if e.degraded {
		return 0
	}
	atlas := e.cache.Active()
	if atlas == nil {
		return 0
	}
	if scale <= 0 {
		scale = 1
	}
	return atlas.Image.LineHeight * scale
}

// Close releases every baked atlas texture. Safe to call more than once.
func (e *Engine) Close() {
	e.cache.Dispose()
}
