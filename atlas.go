package uitext

// Atlas bitmap dimensions and the baked character range.
// ASCII 32-126 covers every printable character; anything outside the range
// is skipped by the renderer with zero advance.
const (
	AtlasWidth  = 512
	AtlasHeight = 512
	FirstChar   = 32
	GlyphCount  = 95
)

// GlyphMetrics describes one baked glyph in atlas-pixel space.
// Immutable once baked.
type GlyphMetrics struct {
	// Bounding box of the rasterized glyph inside the atlas bitmap.
	X0, Y0, X1, Y1 int

	// Placement offset applied relative to the pen position. YOff is
	// negative for glyphs that extend above the baseline.
	XOff, YOff float32

	// Horizontal pen advance after drawing, in atlas-pixel units.
	XAdvance float32
}

// AtlasImage is the CPU side of a baked atlas: a single-channel grayscale
// bitmap plus the per-glyph metrics table and derived line height.
type AtlasImage struct {
	Pixels     []byte // Width*Height coverage values
	Width      int
	Height     int
	PixelSize  int
	LineHeight float32
	Glyphs     [GlyphCount]GlyphMetrics
}

// Glyph returns the metrics for r, or false if r is outside the baked range.
func (a *AtlasImage) Glyph(r rune) (GlyphMetrics, bool) {
	if r < FirstChar || r >= FirstChar+GlyphCount {
		return GlyphMetrics{}, false
	}
	return a.Glyphs[r-FirstChar], true
}

// FontAtlas pairs a baked atlas image with its GPU texture handle.
// Owned exclusively by the AtlasCache that baked it.
type FontAtlas struct {
	Texture uint32
	Image   *AtlasImage
}
