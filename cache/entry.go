package cache

import "time"
import "sync/atomic"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

import "github.com/u-235/mythodius/grid"

// Identifies a cached grid: the font it was imported from, the import
// configuration and the rune.
type Key struct {
	Font      *sfnt.Font
	Size      fixed.Int26_6
	Threshold uint8
	Rune      rune
}

// Approximate overhead of a cache entry, without the grid cells.
const entryOverhead = 64

// Returns an approximation of the number of bytes the given grid
// takes once stored in the cache.
func GridByteSize(cells *grid.Grid) int {
	if cells == nil { return entryOverhead }
	return entryOverhead + cells.Width()*cells.Height()
}

type entry struct {
	cells *grid.Grid // read-only
	bytes int
	born  uint32
	hits  atomic.Uint32
}

func newEntry(cells *grid.Grid, now uint32) *entry {
	item := &entry{ cells: cells, bytes: GridByteSize(cells), born: now }
	item.hits.Store(1)
	return item
}

// Bytes served per clock tick, plus a fixed cost so fresh entries
// aren't evicted right away. Lowest values are evicted first.
func (self *entry) hotness(now uint32) int {
	const evictionCost = 1000
	age := int(now - self.born)
	if age == 0 { age = 1 }
	return (evictionCost + self.bytes*int(self.hits.Load()))/age
}

var clockStart = time.Now()

// Tests move the clock forward with this instead of sleeping.
var testClockOffset time.Duration

// Monotonic ticks of roughly 134ms.
func clockNow() uint32 {
	elapsed := time.Since(clockStart) + testClockOffset
	return uint32(int64(elapsed) >> 27)
}
