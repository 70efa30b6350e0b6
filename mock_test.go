package uitext_test

import (
	"errors"
	"fmt"

	"github.com/voxelforge/uitext"
)

// stubRasterizer produces synthetic atlases without touching a real font:
// every baked glyph is a 4x6 box with a flat advance of 10 atlas pixels.
type stubRasterizer struct {
	failSizes map[int]bool
	bakes     int
}

func (s *stubRasterizer) Bake(fontData []byte, pixelSize int) (*uitext.AtlasImage, error) {
	if s.failSizes[pixelSize] {
		return nil, fmt.Errorf("bake %dpx: %w", pixelSize, uitext.ErrAtlasOverflow)
	}
	s.bakes++

	img := &uitext.AtlasImage{
		Pixels:     make([]byte, uitext.AtlasWidth*uitext.AtlasHeight),
		Width:      uitext.AtlasWidth,
		Height:     uitext.AtlasHeight,
		PixelSize:  pixelSize,
		LineHeight: float32(pixelSize) * 1.2,
	}
	for i := range img.Glyphs {
		img.Glyphs[i] = uitext.GlyphMetrics{
			X0: i * 5, Y0: 0, X1: i*5 + 4, Y1: 6,
			XOff: 0, YOff: -6,
			XAdvance: 10,
		}
	}
	return img, nil
}

// mockGPU records texture and draw activity without a graphics context.
type mockGPU struct {
	creates int
	deletes int
	draws   int

	failUpload bool
	nextTex    uint32

	lastTexture  uint32
	lastVertices []uitext.TextVertex
	drawColors   []uitext.Color
}

func (m *mockGPU) CreateAtlasTexture(pixels []byte, width, height int) (uint32, error) {
	if m.failUpload {
		return 0, errors.New("upload refused")
	}
	if len(pixels) != width*height {
		return 0, fmt.Errorf("bitmap size %d does not match %dx%d", len(pixels), width, height)
	}
	m.creates++
	m.nextTex++
	return m.nextTex, nil
}

func (m *mockGPU) DeleteTexture(texture uint32) {
	m.deletes++
}

func (m *mockGPU) DrawBatch(batch *uitext.TextBatch, texture uint32, color uitext.Color) error {
	m.draws++
	m.lastTexture = texture
	m.lastVertices = append([]uitext.TextVertex(nil), batch.Vertices...)
	m.drawColors = append(m.drawColors, color)
	return nil
}
