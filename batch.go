package uitext

// TextVertex is one interleaved vertex: screen position plus atlas UV.
// The layout matches the backend vertex attributes (2+2 floats).
type TextVertex struct {
	Pos [2]float32
	UV  [2]float32
}

// TextBatch accumulates glyph quads for a single upload and draw call.
// Two triangles (six vertices, no index buffer) per glyph. The buffer is
// growable and retains capacity across Reset, so a reused batch stops
// allocating once it has seen the longest string of the frame.
type TextBatch struct {
	Vertices []TextVertex
}

// Reset empties the batch, keeping allocated capacity.
func (b *TextBatch) Reset() {
	b.Vertices = b.Vertices[:0]
}

// GlyphCount returns the number of glyph quads in the batch.
func (b *TextBatch) GlyphCount() int {
	return len(b.Vertices) / 6
}

// AppendString walks text and appends six vertices per in-range glyph,
// starting the pen at (x, y) on the baseline. A '\n' resets the pen X and
// advances the pen Y by the atlas line height times scale. Codes outside
// the baked range are skipped with zero advance. Returns the number of
// glyphs emitted.
func (b *TextBatch) AppendString(atlas *AtlasImage, text string, x, y, scale float32) int {
	if atlas == nil || text == "" {
		return 0
	}
	if scale <= 0 {
		scale = 1
	}

	atlasW := float32(atlas.Width)
	atlasH := float32(atlas.Height)
	penX, penY := x, y
	emitted := 0

	for _, r := range text {
		if r == '\n' {
			penX = x
			penY += atlas.LineHeight * scale
			continue
		}
		g, ok := atlas.Glyph(r)
		if !ok {
			continue
		}

		gx := penX + g.XOff*scale
		gy := penY + g.YOff*scale
		gw := float32(g.X1-g.X0) * scale
		gh := float32(g.Y1-g.Y0) * scale

		u0 := float32(g.X0) / atlasW
		v0 := float32(g.Y0) / atlasH
		u1 := float32(g.X1) / atlasW
		v1 := float32(g.Y1) / atlasH

		b.Vertices = append(b.Vertices,
			TextVertex{Pos: [2]float32{gx, gy}, UV: [2]float32{u0, v0}},
			TextVertex{Pos: [2]float32{gx + gw, gy}, UV: [2]float32{u1, v0}},
			TextVertex{Pos: [2]float32{gx + gw, gy + gh}, UV: [2]float32{u1, v1}},
			TextVertex{Pos: [2]float32{gx + gw, gy + gh}, UV: [2]float32{u1, v1}},
			TextVertex{Pos: [2]float32{gx, gy + gh}, UV: [2]float32{u0, v1}},
			TextVertex{Pos: [2]float32{gx, gy}, UV: [2]float32{u0, v0}},
		)
		emitted++
		penX += g.XAdvance * scale
	}
	return emitted
}

// measureWidth computes the width of text using the exact walk rules of
// AppendString (same newline handling, same skip rule, same advance table)
// without emitting geometry. Multi-line text measures as the widest line.
func measureWidth(atlas *AtlasImage, text string, scale float32) float32 {
	if atlas == nil {
		return 0
	}
	if scale <= 0 {
		scale = 1
	}

	var widest, line float32
	for _, r := range text {
		if r == '\n' {
			if line > widest {
				widest = line
			}
			line = 0
			continue
		}
		g, ok := atlas.Glyph(r)
		if !ok {
			continue
		}
		line += g.XAdvance * scale
	}
	if line > widest {
		widest = line
	}
	return widest
}
