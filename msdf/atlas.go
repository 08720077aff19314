package msdf

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// AtlasConfig configures an AtlasManager.
type AtlasConfig struct {
	// Size is the atlas texture size (width = height). Must be a power
	// of 2.
	Size int

	// Padding is the gap, in pixels, left between neighboring glyphs so
	// their distance fields don't bleed into each other during
	// filtering.
	Padding int

	// MaxAtlases limits how many atlas textures the manager will create
	// before Get starts returning an AtlasFullError.
	MaxAtlases int

	// FixedCellSize, when non-zero, switches every page from the
	// variable-size ShelfAllocator to the uniform GridAllocator: every
	// glyph requested from this manager must then be rendered at exactly
	// this cell size. Atlases built for one fixed rendering size (e.g. a
	// UI icon set) trade away mixed glyph sizes for O(1) allocation.
	FixedCellSize int

	// Generator is the GeneratorConfig template used for every glyph;
	// each call to Get overrides its Width/Height/Transformation to fit
	// that glyph's own shape and requested cell size.
	Generator GeneratorConfig
}

// DefaultAtlasConfig returns a 1024x1024 atlas, 2px padding, up to 8
// atlas pages, and DefaultGeneratorConfig as the per-glyph template.
func DefaultAtlasConfig() AtlasConfig {
	return AtlasConfig{
		Size:       1024,
		Padding:    2,
		MaxAtlases: 8,
		Generator:  DefaultGeneratorConfig(),
	}
}

// Validate reports whether c is usable.
func (c *AtlasConfig) Validate() error {
	if c.Size < 64 || c.Size > 8192 {
		return &AtlasConfigError{Field: "Size", Reason: "must be between 64 and 8192"}
	}
	if c.Size&(c.Size-1) != 0 {
		return &AtlasConfigError{Field: "Size", Reason: "must be a power of 2"}
	}
	if c.Padding < 0 {
		return &AtlasConfigError{Field: "Padding", Reason: "must be non-negative"}
	}
	if c.MaxAtlases < 1 || c.MaxAtlases > 256 {
		return &AtlasConfigError{Field: "MaxAtlases", Reason: "must be between 1 and 256"}
	}
	return nil
}

// AtlasConfigError reports a field of AtlasConfig that failed
// validation.
type AtlasConfigError struct {
	Field  string
	Reason string
}

func (e *AtlasConfigError) Error() string {
	return fmt.Sprintf("msdf: invalid atlas config field %q: %s", e.Field, e.Reason)
}

// Atlas is a single MSDF texture page: a Bitmap plus the packer
// tracking which rectangles of it are occupied.
type Atlas struct {
	Bitmap    *Bitmap
	regions   map[GlyphKey]Region
	allocator cellAllocator
	dirty     bool
	index     int
}

func newAtlas(index, size, padding, fixedCellSize int) *Atlas {
	var allocator cellAllocator
	if fixedCellSize > 0 {
		allocator = NewGridAllocator(size, size, fixedCellSize, padding)
	} else {
		allocator = NewShelfAllocator(size, size, padding)
	}
	return &Atlas{
		Bitmap:    NewBitmap(size, size, 3),
		regions:   make(map[GlyphKey]Region),
		allocator: allocator,
		index:     index,
	}
}

// blit copies src into the atlas bitmap at (x, y), resampling with
// nearest-neighbor if src's dimensions differ from the destination
// cell's.
func (a *Atlas) blit(src *Bitmap, x, y, cellW, cellH int) {
	srcW, srcH := src.Width, src.Height
	for dy := 0; dy < cellH; dy++ {
		srcY := dy * srcH / cellH
		if srcY >= srcH {
			srcY = srcH - 1
		}
		for dx := 0; dx < cellW; dx++ {
			srcX := dx * srcW / cellW
			if srcX >= srcW {
				srcX = srcW - 1
			}
			px := src.Pixel(srcX, srcY)
			dst := a.Bitmap.Pixel(x+dx, y+dy)
			copy(dst, px)
		}
	}
	a.dirty = true
}

// GlyphCount returns the number of glyphs packed into this atlas.
func (a *Atlas) GlyphCount() int { return len(a.regions) }

// Utilization returns the fraction of the atlas's area currently
// occupied by allocated cells.
func (a *Atlas) Utilization() float64 { return a.allocator.Utilization() }

// IsDirty reports whether the atlas has changed since MarkClean.
func (a *Atlas) IsDirty() bool { return a.dirty }

// Region describes where a glyph's distance field sits within an atlas.
type Region struct {
	AtlasIndex          int
	U0, V0, U1, V1       float32
	X, Y, Width, Height int
}

// GlyphKey identifies one glyph at one rendered cell size within one
// font.
type GlyphKey struct {
	FontID  uint64
	GlyphID uint16
	Size    int16
}

// AtlasManager generates MSDFs on demand and packs them into a growing
// set of Atlas pages, caching the result per GlyphKey so repeated lookups
// of the same glyph are free.
type AtlasManager struct {
	mu      sync.RWMutex
	config  AtlasConfig
	atlases []*Atlas
	lookup  map[GlyphKey]Region

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewAtlasManager returns a manager using config.
func NewAtlasManager(config AtlasConfig) (*AtlasManager, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &AtlasManager{
		config:  config,
		atlases: make([]*Atlas, 0, config.MaxAtlases),
		lookup:  make(map[GlyphKey]Region),
	}, nil
}

// NewAtlasManagerDefault returns a manager using DefaultAtlasConfig.
func NewAtlasManagerDefault() *AtlasManager {
	m, _ := NewAtlasManager(DefaultAtlasConfig())
	return m
}

// Get returns the atlas region for key, generating and packing shape's
// MSDF at cellSize x cellSize if this is the first request for key.
func (m *AtlasManager) Get(key GlyphKey, shape *Shape, cellSize int) (Region, error) {
	m.mu.RLock()
	if region, ok := m.lookup[key]; ok {
		m.mu.RUnlock()
		m.hits.Add(1)
		return region, nil
	}
	m.mu.RUnlock()

	m.misses.Add(1)

	m.mu.Lock()
	defer m.mu.Unlock()

	if region, ok := m.lookup[key]; ok {
		return region, nil
	}

	region, err := m.generateAndPack(key, shape, cellSize)
	if err != nil {
		return Region{}, err
	}
	return region, nil
}

// generateAndPack must be called with the write lock held.
func (m *AtlasManager) generateAndPack(key GlyphKey, shape *Shape, cellSize int) (Region, error) {
	if m.config.FixedCellSize > 0 && cellSize != m.config.FixedCellSize {
		return Region{}, &ConfigError{Field: "cellSize", Reason: "must equal AtlasConfig.FixedCellSize when set"}
	}

	genConfig := m.config.Generator
	genConfig.Width, genConfig.Height = cellSize, cellSize
	projection, rng := FitProjection(shape.Bound(), cellSize, cellSize, genConfig.Transformation.DistanceMapping.Rng.Width())
	genConfig.Transformation = NewSDFTransformation(projection, NewDistanceMapping(rng))

	bmp, err := NewGenerator(genConfig).GenerateMSDF(shape)
	if err != nil {
		return Region{}, fmt.Errorf("msdf: generate glyph %v: %w", key, err)
	}

	atlas, err := m.findOrCreateAtlas()
	if err != nil {
		return Region{}, err
	}

	x, y, ok := atlas.allocator.Allocate(cellSize, cellSize)
	if !ok {
		return Region{}, ErrAllocationFailed
	}
	atlas.blit(bmp, x, y, cellSize, cellSize)

	atlasSize := float32(m.config.Size)
	region := Region{
		AtlasIndex: atlas.index,
		X:          x,
		Y:          y,
		Width:      cellSize,
		Height:     cellSize,
		U0:         float32(x) / atlasSize,
		V0:         float32(y) / atlasSize,
		U1:         float32(x+cellSize) / atlasSize,
		V1:         float32(y+cellSize) / atlasSize,
	}
	m.lookup[key] = region
	atlas.regions[key] = region
	return region, nil
}

// GetBatch is Get for many glyphs at once, reducing lock round-trips.
// keys, shapes, and cellSizes must have equal length.
func (m *AtlasManager) GetBatch(keys []GlyphKey, shapes []*Shape, cellSizes []int) ([]Region, error) {
	if len(keys) != len(shapes) || len(keys) != len(cellSizes) {
		return nil, ErrLengthMismatch
	}

	results := make([]Region, len(keys))
	var missing []int

	m.mu.RLock()
	for i, key := range keys {
		if region, ok := m.lookup[key]; ok {
			results[i] = region
			m.hits.Add(1)
		} else {
			missing = append(missing, i)
		}
	}
	m.mu.RUnlock()

	if len(missing) == 0 {
		return results, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, idx := range missing {
		key := keys[idx]
		if region, ok := m.lookup[key]; ok {
			results[idx] = region
			continue
		}
		m.misses.Add(1)
		region, err := m.generateAndPack(key, shapes[idx], cellSizes[idx])
		if err != nil {
			return nil, err
		}
		results[idx] = region
	}
	return results, nil
}

func (m *AtlasManager) findOrCreateAtlas() (*Atlas, error) {
	for _, atlas := range m.atlases {
		if atlas.allocator.RemainingHeight() > 0 {
			return atlas, nil
		}
	}
	if len(m.atlases) >= m.config.MaxAtlases {
		return nil, &AtlasFullError{MaxAtlases: m.config.MaxAtlases}
	}
	atlas := newAtlas(len(m.atlases), m.config.Size, m.config.Padding, m.config.FixedCellSize)
	m.atlases = append(m.atlases, atlas)
	return atlas, nil
}

// Clear discards every cached glyph and atlas page.
func (m *AtlasManager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.atlases = m.atlases[:0]
	m.lookup = make(map[GlyphKey]Region)
	m.hits.Store(0)
	m.misses.Store(0)
}

// Stats returns cumulative cache hit/miss counts and the current page
// count.
func (m *AtlasManager) Stats() (hits, misses uint64, atlasCount int) {
	m.mu.RLock()
	atlasCount = len(m.atlases)
	m.mu.RUnlock()
	return m.hits.Load(), m.misses.Load(), atlasCount
}

// GlyphCount returns the total number of cached glyphs across all
// pages.
func (m *AtlasManager) GlyphCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.lookup)
}

// AtlasCount returns the number of atlas pages currently allocated.
func (m *AtlasManager) AtlasCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.atlases)
}

// GetAtlas returns page index, or nil if index is out of range.
func (m *AtlasManager) GetAtlas(index int) *Atlas {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if index < 0 || index >= len(m.atlases) {
		return nil
	}
	return m.atlases[index]
}

// DirtyAtlases returns the indices of pages that have changed since
// their last MarkClean call.
func (m *AtlasManager) DirtyAtlases() []int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var dirty []int
	for i, atlas := range m.atlases {
		if atlas.dirty {
			dirty = append(dirty, i)
		}
	}
	return dirty
}

// MarkClean clears the dirty flag on page index.
func (m *AtlasManager) MarkClean(index int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if index >= 0 && index < len(m.atlases) {
		m.atlases[index].dirty = false
	}
}

// MarkAllClean clears the dirty flag on every page.
func (m *AtlasManager) MarkAllClean() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, atlas := range m.atlases {
		atlas.dirty = false
	}
}

// Config returns the manager's configuration.
func (m *AtlasManager) Config() AtlasConfig { return m.config }

// HasGlyph reports whether key is already cached.
func (m *AtlasManager) HasGlyph(key GlyphKey) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.lookup[key]
	return ok
}

// Remove evicts key from the cache. It does not reclaim the atlas space
// the glyph occupied.
func (m *AtlasManager) Remove(key GlyphKey) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	region, ok := m.lookup[key]
	if !ok {
		return false
	}
	delete(m.lookup, key)
	if region.AtlasIndex >= 0 && region.AtlasIndex < len(m.atlases) {
		delete(m.atlases[region.AtlasIndex].regions, key)
	}
	return true
}

// MemoryUsage returns the total byte size of every atlas page's pixel
// storage.
func (m *AtlasManager) MemoryUsage() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var total int64
	for _, atlas := range m.atlases {
		total += int64(len(atlas.Bitmap.Data)) * 4
	}
	return total
}

// AtlasInfo summarizes one atlas page.
type AtlasInfo struct {
	Index       int
	GlyphCount  int
	Utilization float64
	Dirty       bool
	MemoryBytes int
}

// AtlasInfos summarizes every atlas page currently allocated.
func (m *AtlasManager) AtlasInfos() []AtlasInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	infos := make([]AtlasInfo, len(m.atlases))
	for i, atlas := range m.atlases {
		infos[i] = AtlasInfo{
			Index:       i,
			GlyphCount:  len(atlas.regions),
			Utilization: atlas.Utilization(),
			Dirty:       atlas.dirty,
			MemoryBytes: len(atlas.Bitmap.Data) * 4,
		}
	}
	return infos
}

// AtlasFullError is returned by Get/GetBatch when every existing page is
// full and MaxAtlases pages already exist.
type AtlasFullError struct {
	MaxAtlases int
}

func (e *AtlasFullError) Error() string {
	return fmt.Sprintf("msdf: all %d atlases are full", e.MaxAtlases)
}
