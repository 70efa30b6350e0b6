package uitext

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Rasterizer bakes a font at one pixel size into an AtlasImage.
// Implementations must be deterministic: identical inputs yield identical
// metrics and pixels.
type Rasterizer interface {
	Bake(fontData []byte, pixelSize int) (*AtlasImage, error)
}

// glyphPadding keeps neighbouring glyphs from bleeding into each other when
// the atlas is sampled with linear filtering at non-integer scales.
const glyphPadding = 1

// openTypeRasterizer bakes TrueType/OpenType outlines with x/image.
type openTypeRasterizer struct {
	width, height int
}

// NewRasterizer returns the default OpenType rasterizer targeting the
// standard 512x512 atlas bitmap.
func NewRasterizer() Rasterizer {
	return &openTypeRasterizer{width: AtlasWidth, height: AtlasHeight}
}

// Bake lays out all printable ASCII glyphs into shelf-packed rows of a
// single grayscale bitmap and records stb-style metrics for each: the
// atlas-space bounding box, the pen-relative placement offset, and the
// horizontal advance.
func (rz *openTypeRasterizer) Bake(fontData []byte, pixelSize int) (*AtlasImage, error) {
	parsed, err := opentype.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(pixelSize),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face at %dpx: %w", pixelSize, err)
	}
	defer face.Close()

	atlas := &AtlasImage{
		Pixels:     make([]byte, rz.width*rz.height),
		Width:      rz.width,
		Height:     rz.height,
		PixelSize:  pixelSize,
		LineHeight: float32(pixelSize) * 1.2,
	}

	x, y, rowHeight := glyphPadding, glyphPadding, 0
	for i := 0; i < GlyphCount; i++ {
		r := rune(FirstChar + i)
		// Dot at the origin: dr.Min carries the bearings directly.
		dr, mask, maskp, advance, ok := face.Glyph(fixed.Point26_6{}, r)
		if !ok {
			// Missing glyph in this face: zero metrics, zero advance.
			continue
		}
		w, h := dr.Dx(), dr.Dy()

		if x+w+glyphPadding > rz.width {
			x = glyphPadding
			y += rowHeight + glyphPadding
			rowHeight = 0
		}
		if w+2*glyphPadding > rz.width || y+h+glyphPadding > rz.height {
			return nil, fmt.Errorf("%w: %dpx exceeds %dx%d", ErrAtlasOverflow, pixelSize, rz.width, rz.height)
		}

		for yy := 0; yy < h; yy++ {
			for xx := 0; xx < w; xx++ {
				_, _, _, a := mask.At(maskp.X+xx, maskp.Y+yy).RGBA()
				atlas.Pixels[(y+yy)*rz.width+(x+xx)] = uint8(a >> 8)
			}
		}

		atlas.Glyphs[i] = GlyphMetrics{
			X0:       x,
			Y0:       y,
			X1:       x + w,
			Y1:       y + h,
			XOff:     float32(dr.Min.X),
			YOff:     float32(dr.Min.Y),
			XAdvance: float32(advance) / 64,
		}

		x += w + glyphPadding
		if h > rowHeight {
			rowHeight = h
		}
	}

	return atlas, nil
}
