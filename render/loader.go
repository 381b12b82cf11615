package render

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"sync"

	"github.com/GISLab-ELTE/spectral/raster"
)

// Cache provides thread-safe caching of rasters imported from image files.
//
// The cache stores imported rasters keyed by file path and band count, so
// repeated Load() calls for the same file skip both disk I/O and the
// channel-unpacking pass. Rasters remain cached until Evict() or Clear();
// long-running processes handling many files should clean up periodically.
//
// Cache is safe for concurrent use by multiple goroutines.
type Cache struct {
	mu      sync.RWMutex
	rasters map[cacheKey]*raster.Raster
}

type cacheKey struct {
	path  string
	bands int
}

// NewCache creates an empty raster cache ready for immediate use.
func NewCache() *Cache {
	return &Cache{
		rasters: make(map[cacheKey]*raster.Raster),
	}
}

// Load imports an image file as a raster, returning a cached copy when one
// exists. Supported formats are PNG, JPEG and GIF; bands follows the
// FromImage import modes.
//
// The raster is cached using the exact path string provided. Different paths
// to the same file result in separate cache entries.
func (c *Cache) Load(path string, bands int) (*raster.Raster, error) {
	key := cacheKey{path: path, bands: bands}

	c.mu.RLock()
	if r, ok := c.rasters[key]; ok {
		c.mu.RUnlock()
		return r, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	r, err := FromImage(img, bands)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.rasters[key] = r
	c.mu.Unlock()

	return r, nil
}

// Clear removes all rasters from the cache, freeing the associated memory.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.rasters = make(map[cacheKey]*raster.Raster)
	c.mu.Unlock()
}

// Evict removes a specific file's rasters from the cache. If the path is not
// cached, Evict does nothing.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	for key := range c.rasters {
		if key.path == path {
			delete(c.rasters, key)
		}
	}
	c.mu.Unlock()
}
