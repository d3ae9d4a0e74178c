package cache

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

import "github.com/u-235/mythodius/grid"

var _ GridCacheHandler = (*DefaultCacheHandler)(nil)

// The [GridCacheHandler] for a [DefaultCache]. It tracks the import
// configuration in a [Key] and only fills in the rune on each access.
//
// The rasterizer is not part of the key, so importers using different
// rasterizers must not share a cache.
type DefaultCacheHandler struct {
	cache *DefaultCache
	key   Key
}

// Implements [GridCacheHandler].NotifyFontChange(...)
func (self *DefaultCacheHandler) NotifyFontChange(font *sfnt.Font) {
	self.key.Font = font
}

// Implements [GridCacheHandler].NotifySizeChange(...)
func (self *DefaultCacheHandler) NotifySizeChange(size fixed.Int26_6) {
	self.key.Size = size
}

// Implements [GridCacheHandler].NotifyThresholdChange(...)
func (self *DefaultCacheHandler) NotifyThresholdChange(threshold uint8) {
	self.key.Threshold = threshold
}

// Implements [GridCacheHandler].GetGrid(...)
func (self *DefaultCacheHandler) GetGrid(codePoint rune) (*grid.Grid, bool) {
	self.key.Rune = codePoint
	return self.cache.GetGrid(self.key)
}

// Implements [GridCacheHandler].PassGrid(...)
func (self *DefaultCacheHandler) PassGrid(codePoint rune, cells *grid.Grid) {
	self.key.Rune = codePoint
	self.cache.PassGrid(self.key, cells)
}

// Returns the key for the given rune under the current configuration.
func (self *DefaultCacheHandler) Key(codePoint rune) Key {
	key := self.key
	key.Rune = codePoint
	return key
}

// Returns the underlying cache.
func (self *DefaultCacheHandler) Cache() *DefaultCache {
	return self.cache
}
