package uitext

import "sort"

// TextureUploader owns GPU texture creation and disposal for baked atlases.
type TextureUploader interface {
	// CreateAtlasTexture uploads a single-channel grayscale bitmap and
	// returns its texture handle. The texture must use linear filtering
	// and clamp-to-edge wrapping.
	CreateAtlasTexture(pixels []byte, width, height int) (uint32, error)

	// DeleteTexture releases a texture created by CreateAtlasTexture.
	DeleteTexture(texture uint32)
}

// AtlasCache bakes and retains atlases at several discrete pixel sizes for
// one logical font, so discrete size changes avoid runtime re-bake costs.
// It exclusively owns the atlas textures it creates.
type AtlasCache struct {
	gpu      TextureUploader
	rast     Rasterizer
	atlases  map[int]*FontAtlas
	active   int
	disposed bool
}

// NewAtlasCache creates an empty cache. Initialize bakes the sizes.
func NewAtlasCache(gpu TextureUploader, rast Rasterizer) *AtlasCache {
	return &AtlasCache{
		gpu:     gpu,
		rast:    rast,
		atlases: make(map[int]*FontAtlas),
	}
}

// Initialize bakes each requested size independently and returns how many
// succeeded. A failed bake at one size does not abort the others; the font
// load as a whole only fails when the count is zero. Any previously held
// atlases are released first.
func (c *AtlasCache) Initialize(fontData []byte, sizes []int) int {
	c.release()
	c.disposed = false

	count := 0
	for _, size := range sizes {
		img, err := c.rast.Bake(fontData, size)
		if err != nil {
			logger.Warn("atlas bake failed", "size", size, "err", err)
			continue
		}
		tex, err := c.gpu.CreateAtlasTexture(img.Pixels, img.Width, img.Height)
		if err != nil {
			logger.Warn("atlas upload failed", "size", size, "err", err)
			continue
		}
		c.atlases[size] = &FontAtlas{Texture: tex, Image: img}
		count++
	}
	return count
}

// Select makes the cached size nearest to the requested size active and
// returns it. An exact match always wins; distance ties keep the previously
// active size when it is among the tied candidates, so repeated near-equal
// requests are stable. Returns 0 when the cache is empty.
func (c *AtlasCache) Select(size int) int {
	if len(c.atlases) == 0 {
		return 0
	}
	if _, ok := c.atlases[size]; ok {
		c.active = size
		return size
	}

	best, bestDiff := 0, int(^uint(0)>>1)
	for _, s := range c.Sizes() {
		d := s - size
		if d < 0 {
			d = -d
		}
		if d < bestDiff || (d == bestDiff && s == c.active) {
			best, bestDiff = s, d
		}
	}
	c.active = best
	return best
}

// Get returns the atlas baked at exactly size, or nil.
func (c *AtlasCache) Get(size int) *FontAtlas {
	return c.atlases[size]
}

// Active returns the currently selected atlas, or nil if none is selected.
func (c *AtlasCache) Active() *FontAtlas {
	return c.atlases[c.active]
}

// ActiveSize returns the currently selected pixel size, or 0.
func (c *AtlasCache) ActiveSize() int {
	if _, ok := c.atlases[c.active]; !ok {
		return 0
	}
	return c.active
}

// Sizes returns the successfully baked sizes in ascending order.
func (c *AtlasCache) Sizes() []int {
	sizes := make([]int, 0, len(c.atlases))
	for s := range c.atlases {
		sizes = append(sizes, s)
	}
	sort.Ints(sizes)
	return sizes
}

// Dispose releases every atlas texture and metrics buffer.
// Safe to call multiple times.
func (c *AtlasCache) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.release()
}

func (c *AtlasCache) release() {
	for _, atlas := range c.atlases {
		if atlas.Texture != 0 {
			c.gpu.DeleteTexture(atlas.Texture)
		}
	}
	c.atlases = make(map[int]*FontAtlas)
	c.active = 0
}
