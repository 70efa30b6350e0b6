package uitext

// Reference resolution for scale calculations. At 1920x1080 the base scale
// is exactly 1.0; smaller windows scale down, larger windows scale up.
const (
	ReferenceWidth  = 1920
	ReferenceHeight = 1080
)

// Scale bounds. User preference is clamped tighter than the combined scale
// so a window resize can still push the effective scale past the user range.
const (
	MinScale     float32 = 0.5
	MaxScale     float32 = 3.0
	MinUserScale float32 = 0.5
	MaxUserScale float32 = 2.0
)

// BaseFontSize is the nominal atlas size that corresponds to an effective
// scale of 1.0. TextScaleFor is normalized against it.
const BaseFontSize = 20

// Effective scale thresholds for discrete atlas size selection.
const (
	atlasSize16Threshold float32 = 0.8
	atlasSize20Threshold float32 = 1.2
	atlasSize24Threshold float32 = 1.8
)

// BaseScale computes the window-relative scale factor: the mean of the two
// axis ratios against the reference resolution, clamped to [MinScale, MaxScale].
func BaseScale(windowWidth, windowHeight int) float32 {
	widthRatio := float32(windowWidth) / ReferenceWidth
	heightRatio := float32(windowHeight) / ReferenceHeight
	return clampf((widthRatio+heightRatio)/2, MinScale, MaxScale)
}

// EffectiveScale combines the window-relative base scale with the user
// preference multiplier. Both inputs are clamped before combining and the
// result is clamped again, so repeated resizes can never drift.
func EffectiveScale(windowWidth, windowHeight int, userScale float32) float32 {
	base := BaseScale(windowWidth, windowHeight)
	user := clampf(userScale, MinUserScale, MaxUserScale)
	return clampf(base*user, MinScale, MaxScale)
}

// RecommendedAtlasSize maps an effective scale to one of the discrete atlas
// sizes {16, 20, 24, 32}. Monotonic non-decreasing in effectiveScale.
func RecommendedAtlasSize(effectiveScale float32) int {
	switch {
	case effectiveScale < atlasSize16Threshold:
		return 16
	case effectiveScale < atlasSize20Threshold:
		return 20
	case effectiveScale < atlasSize24Threshold:
		return 24
	default:
		return 32
	}
}

// TextScaleFor returns the correction factor for rendering with an atlas of
// atlasPx so that the final glyph size matches the continuous target:
//
//	atlasPx * TextScaleFor(eff, atlasPx) == eff * BaseFontSize
//
// Switching atlases on resize therefore never changes the rendered glyph
// size discontinuously, only the sharpness of the rasterization.
func TextScaleFor(effectiveScale float32, atlasPx int) float32 {
	if atlasPx <= 0 {
		return effectiveScale
	}
	return effectiveScale / (float32(atlasPx) / BaseFontSize)
}

// ScaleState is a snapshot of the scaling inputs and the factors derived
// from them. It is always recomputed from current inputs via ResolveScale,
// never incrementally updated.
type ScaleState struct {
	WindowWidth    int
	WindowHeight   int
	UserScale      float32
	BaseScale      float32
	EffectiveScale float32
}

// ResolveScale derives a ScaleState from the current window dimensions and
// user preference. Pure function of its inputs.
func ResolveScale(windowWidth, windowHeight int, userScale float32) ScaleState {
	user := clampf(userScale, MinUserScale, MaxUserScale)
	return ScaleState{
		WindowWidth:    windowWidth,
		WindowHeight:   windowHeight,
		UserScale:      user,
		BaseScale:      BaseScale(windowWidth, windowHeight),
		EffectiveScale: EffectiveScale(windowWidth, windowHeight, user),
	}
}

// RecommendedAtlasSize returns the discrete atlas size for this scale.
func (s ScaleState) RecommendedAtlasSize() int {
	return RecommendedAtlasSize(s.EffectiveScale)
}

// TextScaleFor returns the atlas correction factor for this scale.
func (s ScaleState) TextScaleFor(atlasPx int) float32 {
	return TextScaleFor(s.EffectiveScale, atlasPx)
}

// ScaleDimension scales a pixel dimension authored at the reference
// resolution by the effective scale.
func (s ScaleState) ScaleDimension(pixels float32) float32 {
	return pixels * s.EffectiveScale
}

// ScaleWidth converts a percentage (0..1) of the window width to pixels.
func (s ScaleState) ScaleWidth(percent float32) float32 {
	return float32(s.WindowWidth) * percent
}

// ScaleHeight converts a percentage (0..1) of the window height to pixels.
func (s ScaleState) ScaleHeight(percent float32) float32 {
	return float32(s.WindowHeight) * percent
}

// ScaleX scales an X coordinate authored at the reference resolution.
func (s ScaleState) ScaleX(x float32) float32 { return x * s.EffectiveScale }

// ScaleY scales a Y coordinate authored at the reference resolution.
func (s ScaleState) ScaleY(y float32) float32 { return y * s.EffectiveScale }

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
