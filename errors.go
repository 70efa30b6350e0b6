package uitext

import "errors"

// Font problems are never fatal to the host application. All three errors
// resolve into degraded (no-text) mode at the engine level; they are exposed
// so callers can log or surface them.
var (
	// ErrFontNotFound is returned when every resolution candidate has been
	// exhausted without producing font data.
	ErrFontNotFound = errors.New("font not found")

	// ErrAtlasOverflow is returned when the glyph set does not fit in the
	// fixed atlas bitmap at the requested pixel size.
	ErrAtlasOverflow = errors.New("glyphs do not fit in atlas")

	// ErrAllSizesFailed is returned when no requested atlas size baked
	// successfully. Equivalent to ErrFontNotFound for rendering purposes.
	ErrAllSizesFailed = errors.New("no atlas size baked successfully")
)
