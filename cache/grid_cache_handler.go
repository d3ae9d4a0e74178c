package cache

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

import "github.com/u-235/mythodius/grid"

// A GridCacheHandler sits between a font importer and a grid cache.
// The importer reports configuration changes and then only needs runes
// to get and pass grids, while the handler decides how configurations
// map to cache keys.
//
// Handlers can't be used concurrently unless the implementation says
// otherwise.
type GridCacheHandler interface {
	// Called when the importer switches to a different font.
	NotifyFontChange(*sfnt.Font)

	// Called when the import size changes.
	NotifySizeChange(fixed.Int26_6)

	// Called when the coverage threshold changes.
	NotifyThresholdChange(uint8)

	// Returns the grid for the given rune under the current
	// configuration, if cached.
	GetGrid(rune) (*grid.Grid, bool)

	// Offers a freshly imported grid to the cache. Only called after
	// GetGrid() misses; the cache may ignore it.
	PassGrid(rune, *grid.Grid)
}
